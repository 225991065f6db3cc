package widgets

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/model"
)

var efficiencyColumns = []string{"Mode", "Efficiency (%)", "Waste (%)", "Used (m²)"}

// EfficiencyCell returns the text of one cell of the efficiency table.
// Row 0 is the header; the mode the layout used is marked with a star.
func EfficiencyCell(result model.LayoutResult, row, col int) string {
	if row == 0 {
		if col < len(efficiencyColumns) {
			return efficiencyColumns[col]
		}
		return ""
	}
	if row-1 >= len(result.Efficiency) {
		return ""
	}
	r := result.Efficiency[row-1]
	switch col {
	case 0:
		if r.Mode == result.ModeUsed {
			return r.Mode.String() + " *"
		}
		return r.Mode.String()
	case 1:
		return fmt.Sprintf("%.2f", r.EfficiencyPct)
	case 2:
		return fmt.Sprintf("%.2f", r.WastePct)
	case 3:
		return fmt.Sprintf("%.2f", r.UsedAreaM2)
	}
	return ""
}

// NewEfficiencyTable builds a read-only table of the per-mode efficiency rows.
func NewEfficiencyTable(result model.LayoutResult) *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(result.Efficiency) + 1, len(efficiencyColumns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Efficiency (%)")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.SetText(EfficiencyCell(result, id.Row, id.Col))
			label.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
		},
	)
	for col := range efficiencyColumns {
		table.SetColumnWidth(col, 120)
	}
	return table
}
