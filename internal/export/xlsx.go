package export

import (
	"fmt"
	"io"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the XLSX workbook.
const (
	SheetCutList    = "Cut List"
	SheetEfficiency = "Efficiency"
)

var (
	cutListHeaders    = []string{"Index", "Kind", "X (mm)", "Y (mm)", "Width (mm)", "Height (mm)"}
	efficiencyHeaders = []string{"Mode", "Efficiency (%)", "Waste (%)", "Used Area (m²)"}
)

// BuildWorkbook lays the cut list and the efficiency table out in a new
// workbook. The row of the mode actually used is highlighted.
func BuildWorkbook(result model.LayoutResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetCutList); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetEfficiency); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	bestStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C8E6C9"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := make([][]interface{}, 0, len(result.Pieces))
	for _, p := range result.Pieces {
		rows = append(rows, []interface{}{p.Index, string(p.Kind), p.X, p.Y, p.Width, p.Height})
	}
	if err := writeTable(f, SheetCutList, cutListHeaders, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	rows = rows[:0]
	for _, e := range result.Efficiency {
		rows = append(rows, []interface{}{e.Mode.String(), e.EfficiencyPct, e.WastePct, e.UsedAreaM2})
	}
	if err := writeTable(f, SheetEfficiency, efficiencyHeaders, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	for i, e := range result.Efficiency {
		if e.Mode != result.ModeUsed {
			continue
		}
		first, _ := excelize.CoordinatesToCellName(1, i+2)
		last, _ := excelize.CoordinatesToCellName(len(efficiencyHeaders), i+2)
		if err := f.SetCellStyle(SheetEfficiency, first, last, bestStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write %s header: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", sheet, r+1, err)
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheet, "A", lastCol, 16)
}

// WriteXLSX writes the workbook to w.
func WriteXLSX(w io.Writer, result model.LayoutResult) error {
	f, err := BuildWorkbook(result)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// ExportXLSX saves the workbook to a file.
func ExportXLSX(path string, result model.LayoutResult) error {
	if len(result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	f, err := BuildWorkbook(result)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
