package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/engine"
)

// comparisonRow returns the display cells for one scenario.
func comparisonRow(r engine.ComparisonResult) []string {
	if r.Err != nil {
		return []string{r.Scenario.Name, "-", "-", "-", r.Err.Error()}
	}
	return []string{
		r.Scenario.Name,
		r.Result.ModeUsed.String(),
		fmt.Sprintf("%d", r.PieceCount),
		fmt.Sprintf("%.2f%%", r.Efficiency),
		fmt.Sprintf("%.2f%%", r.WastePercent),
	}
}

// showCompareDialog plans what-if variants of the current parameters side
// by side.
func (a *App) showCompareDialog() {
	req, err := a.form.Request()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(req))

	bold := fyne.TextStyle{Bold: true}
	grid := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Mode", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Pieces", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Coverage", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Waste", fyne.TextAlignLeading, bold),
		widget.NewLabel(""),
	)

	var d dialog.Dialog
	for _, r := range results {
		r := r
		for _, cell := range comparisonRow(r) {
			grid.Add(widget.NewLabel(cell))
		}
		apply := widget.NewButton("Use", func() {
			a.applyRequest(r.Scenario.Request, r.Scenario.Name)
			d.Hide()
		})
		if r.Err != nil {
			apply.Disable()
		}
		grid.Add(apply)
	}

	d = dialog.NewCustom("Compare Scenarios", "Close", container.NewVScroll(grid), a.window)
	d.Resize(fyne.NewSize(800, 420))
	d.Show()
}
