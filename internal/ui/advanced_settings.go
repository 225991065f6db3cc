package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/engine"
)

// floatEntry creates an entry bound to a float. Unparseable text leaves the
// value unchanged.
func floatEntry(val *float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(*val, 'f', -1, 64))
	e.OnChanged = func(text string) {
		if v, err := parseMM("", text); err == nil {
			*val = v
		}
	}
	return e
}

// showAdvancedSettingsDialog edits the layout options that are not shown in
// the parameter panel.
func (a *App) showAdvancedSettingsDialog() {
	base := a.form.base

	cutInPlace := widget.NewCheck("", func(b bool) { base.CutInPlace = b })
	cutInPlace.Checked = base.CutInPlace

	snapSection := widget.NewCard("Grid Snapping",
		"Piece edges are rounded to this step",
		container.NewGridWithColumns(2,
			widget.NewLabel("Grid Step (mm)"), floatEntry(&base.GridStep),
		))

	headerSection := widget.NewCard("Header Merging",
		"Strips above the door up to this height join the panel above",
		container.NewGridWithColumns(2,
			widget.NewLabel("Header Threshold (mm)"), floatEntry(&base.HeaderThreshold),
		))

	cutSection := widget.NewCard("Door Cutting",
		"Keep full sheets and cut the door out on site",
		container.NewGridWithColumns(2,
			widget.NewLabel("Cut In Place"), cutInPlace,
		))

	modularity := widget.NewLabel(a.modularityText())
	modularity.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(snapSection, headerSection, cutSection, widget.NewSeparator(), modularity)

	d := dialog.NewCustomConfirm("Advanced Layout Options", "Apply", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		if base.GridStep < 0 || base.HeaderThreshold < 0 {
			dialog.ShowError(fmt.Errorf("grid step and header threshold must not be negative"), a.window)
			return
		}
		a.form.base.GridStep = base.GridStep
		a.form.base.HeaderThreshold = base.HeaderThreshold
		a.form.base.CutInPlace = base.CutInPlace
	}, a.window)
	d.Resize(fyne.NewSize(450, 420))
	d.Show()
}

// modularityText describes whether the wall width closes on whole sheet
// modules.
func (a *App) modularityText() string {
	req, err := a.form.Request()
	if err != nil {
		return err.Error()
	}
	m, ok := engine.CheckModularity(req.Wall.Width, req.Sheet.Width, req.Gap)
	if ok {
		return fmt.Sprintf("The wall closes on whole %.0f mm modules.", m.Module)
	}
	return m.Warning(req.Wall.Width, req.Sheet.Width, req.Gap)
}
