package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/export"
	"github.com/piwi3910/WallPanel/internal/model"
)

// exporter writes one output format.
type exporter struct {
	suffix string // appended to the base file name
	write  func(path string, result model.LayoutResult) error
}

var exporters = map[string]exporter{
	"pdf": {".pdf", func(path string, result model.LayoutResult) error {
		return export.ExportPDF(path, result, export.ReportOptionsFromConfig(cfg))
	}},
	"labels": {"_labels.pdf", export.ExportLabels},
	"csv":    {".csv", export.ExportCSV},
	"xlsx":   {".xlsx", export.ExportXLSX},
	"dxf":    {".dxf", export.ExportDXF},
	"chart":  {"_chart.html", export.ExportChart},
}

func formatNames() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeExports writes result in every format to dir/name+suffix and
// returns the paths written.
func writeExports(result model.LayoutResult, formats []string, dir, name string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	var paths []string
	for _, format := range formats {
		format = strings.ToLower(strings.TrimSpace(format))
		exp, ok := exporters[format]
		if !ok {
			return paths, fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(formatNames(), ", "))
		}
		path := filepath.Join(dir, name+exp.suffix)
		if err := exp.write(path, result); err != nil {
			return paths, fmt.Errorf("%s export failed: %w", format, err)
		}
		log.Printf("Wrote %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

var (
	exportFlags   requestFlags
	exportFormats []string
	exportDir     string
	exportName    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Compute a wall layout and write it to files",
	Long: `Plan a wall like "plan" does and write the result in one or more formats:
pdf (report), labels (QR piece labels), csv (cut list), xlsx (workbook),
dxf (drawing) and chart (efficiency chart as HTML).

Examples:
  wallpanel export --format pdf
  wallpanel export --format csv,xlsx,dxf --output-dir out --name kitchen
  wallpanel export --preset "Standard door wall" --format labels`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addRequestFlags(exportCmd, &exportFlags)
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", []string{"pdf"},
		"output formats ("+strings.Join(formatNames(), ", ")+")")
	exportCmd.Flags().StringVarP(&exportDir, "output-dir", "o", ".", "directory to write files to")
	exportCmd.Flags().StringVar(&exportName, "name", "wall_layout", "base file name")
}

func runExport(cmd *cobra.Command, args []string) error {
	req, err := exportFlags.request(cmd)
	if err != nil {
		return err
	}
	result, err := engine.New(req).Plan()
	if err != nil {
		return err
	}

	paths, err := writeExports(result, exportFormats, exportDir, exportName)
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return err
}
