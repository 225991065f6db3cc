package cmd

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/importer"
	"github.com/piwi3910/WallPanel/internal/model"
)

var (
	batchFlags   requestFlags
	batchFormats []string
	batchDir     string
)

var batchCmd = &cobra.Command{
	Use:   "batch <walls.csv|walls.xlsx|wall.dxf>",
	Short: "Plan every wall of a spreadsheet or drawing",
	Long: `Import walls (width, height and an optional door) from a CSV or Excel
sheet, or a single wall outline from a DXF drawing, plan each one with the
sheet and layout flags, and write the exports for each wall.

Examples:
  wallpanel batch walls.csv
  wallpanel batch walls.xlsx --format pdf,csv --output-dir out
  wallpanel batch outline.dxf --mode hybrid`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addRequestFlags(batchCmd, &batchFlags)
	batchCmd.Flags().StringSliceVarP(&batchFormats, "format", "f", []string{"csv"},
		"output formats ("+strings.Join(formatNames(), ", ")+")")
	batchCmd.Flags().StringVarP(&batchDir, "output-dir", "o", ".", "directory to write files to")
}

func runBatch(cmd *cobra.Command, args []string) error {
	base, err := batchFlags.request(cmd)
	if err != nil {
		return err
	}

	imported := importer.ImportFile(args[0])
	for _, e := range imported.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %s\n", e)
	}
	for _, w := range imported.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %s\n", w)
	}
	if len(imported.Walls) == 0 {
		return fmt.Errorf("no walls found in %s", args[0])
	}

	summaries, err := runWalls(imported.Walls, base, batchFormats, batchDir)
	printBatchSummary(cmd.OutOrStdout(), summaries)
	return err
}

// wallSummary is the outcome of one wall of a batch.
type wallSummary struct {
	Label  string
	Result model.LayoutResult
	Files  []string
	Err    error
}

// runWalls plans each wall on top of base and writes its exports. A wall
// that fails does not stop the batch; the first export error is returned
// after all walls ran.
func runWalls(walls []importer.WallEntry, base model.LayoutRequest, formats []string, dir string) ([]wallSummary, error) {
	summaries := make([]wallSummary, 0, len(walls))
	var firstErr error
	for i, wall := range walls {
		s := wallSummary{Label: wall.Label}
		s.Result, s.Err = engine.New(wall.Request(base)).Plan()
		if s.Err == nil {
			name := fmt.Sprintf("%02d_%s", i+1, fileSafe(wall.Label))
			s.Files, s.Err = writeExports(s.Result, formats, dir, name)
			if s.Err != nil && firstErr == nil {
				firstErr = s.Err
			}
		}
		if s.Err != nil {
			log.Printf("Wall %q: %v", wall.Label, s.Err)
		}
		summaries = append(summaries, s)
	}
	return summaries, firstErr
}

// fileSafe turns a wall label into a file name fragment.
func fileSafe(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "wall"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, filepath.Base(label))
}

func printBatchSummary(w io.Writer, summaries []wallSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WALL\tMODE\tPIECES\tCOVERAGE\tSTATUS")
	for _, s := range summaries {
		if s.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t%v\n", s.Label, s.Err)
			continue
		}
		status := fmt.Sprintf("%d files", len(s.Files))
		if n := len(s.Result.Warnings); n > 0 {
			status += fmt.Sprintf(", %d warnings", n)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f%%\t%s\n",
			s.Label, s.Result.ModeUsed, len(s.Result.Pieces), s.Result.FinalEfficiency(), status)
	}
	tw.Flush()
}
