package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/piwi3910/WallPanel/internal/model"
)

// CSVHeader is the column layout of the cut list CSV.
var CSVHeader = []string{"index", "width_mm", "height_mm"}

// WriteCSV writes the cut list as CSV, one row per piece in emission order.
func WriteCSV(w io.Writer, result model.LayoutResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range result.Pieces {
		row := []string{
			strconv.Itoa(p.Index),
			formatMM(p.Width),
			formatMM(p.Height),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write piece %d: %w", p.Index, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the cut list CSV to a file.
func ExportCSV(path string, result model.LayoutResult) error {
	if len(result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatMM prints whole millimetres without a fraction.
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
