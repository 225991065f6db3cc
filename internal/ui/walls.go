package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/importer"
)

// ─── Wall Import ───────────────────────────────────────────

func (a *App) importWalls() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.handleImportResult(importer.ImportFile(path))
	}, a.window)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		log.Printf("Import warning: %s", w)
	}
	if len(result.Walls) == 0 {
		return
	}
	a.showWallsDialog(result.Walls)
}

// showWallsDialog lists imported walls; loading one plans it with the
// current sheet and layout options.
func (a *App) showWallsDialog(walls []importer.WallEntry) {
	rows := container.NewVBox(
		container.NewGridWithColumns(4,
			widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Wall (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Door (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		),
		widget.NewSeparator(),
	)

	var d dialog.Dialog
	for i := range walls {
		entry := walls[i]
		door := "none"
		if !entry.Door.Absent() {
			door = fmt.Sprintf("%.0f x %.0f @ %.0f", entry.Door.Width, entry.Door.Height, entry.Door.X)
		}
		rows.Add(container.NewGridWithColumns(4,
			widget.NewLabel(entry.Label),
			widget.NewLabel(fmt.Sprintf("%.0f x %.0f", entry.Wall.Width, entry.Wall.Height)),
			widget.NewLabel(door),
			widget.NewButtonWithIcon("Load", theme.NavigateNextIcon(), func() {
				base, err := a.form.Request()
				if err != nil {
					base = a.project.Request
				}
				a.applyRequest(entry.Request(base), "Load "+entry.Label)
				d.Hide()
			}),
		))
	}

	content := container.NewBorder(
		widget.NewLabel(fmt.Sprintf("Imported %d walls. Load one to plan it.", len(walls))),
		nil, nil, nil,
		container.NewVScroll(rows),
	)
	d = dialog.NewCustom("Imported Walls", "Close", content, a.window)
	d.Resize(fyne.NewSize(600, 400))
	d.Show()
}
