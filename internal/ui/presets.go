package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/piwi3910/WallPanel/internal/project"
)

// presetSummary describes the request a preset stores.
func presetSummary(p model.Preset) string {
	req := p.Request
	door := "no door"
	if !req.Door.Absent() {
		door = fmt.Sprintf("door %.0f x %.0f mm at %.0f mm", req.Door.Width, req.Door.Height, req.Door.X)
	}
	return fmt.Sprintf("Wall %.0f x %.0f mm, %s\nSheet %.0f x %.0f mm, gap %.0f mm, mode %s",
		req.Wall.Width, req.Wall.Height, door,
		req.Sheet.Width, req.Sheet.Height, req.Gap, req.Mode)
}

// showPresetManager opens the preset window where users can save the
// current parameters, apply a preset or delete one.
func (a *App) showPresetManager() {
	w := a.app.NewWindow("Presets")
	w.Resize(fyne.NewSize(650, 450))

	selectedIdx := -1
	detail := container.NewVBox(widget.NewLabel("Select a preset to view details."))

	var list *widget.List
	list = widget.NewList(
		func() int {
			return len(a.presets.Presets)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.DocumentIcon()),
				widget.NewLabel("Preset Name"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			box := obj.(*fyne.Container)
			box.Objects[1].(*widget.Label).SetText(a.presets.Presets[id].Name)
		},
	)

	resetDetail := func() {
		selectedIdx = -1
		list.UnselectAll()
		list.Refresh()
		detail.RemoveAll()
		detail.Add(widget.NewLabel("Select a preset to view details."))
		detail.Refresh()
	}

	list.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
		p := a.presets.Presets[id]
		detail.RemoveAll()
		detail.Add(widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		if p.Description != "" {
			detail.Add(widget.NewLabel(p.Description))
		}
		detail.Add(widget.NewLabel(presetSummary(p)))
		detail.Add(widget.NewLabel("Updated " + p.UpdatedAt))
		detail.Refresh()
	}

	saveBtn := widget.NewButtonWithIcon("Save Current...", theme.DocumentSaveIcon(), func() {
		a.showSavePresetDialog(w, resetDetail)
	})

	applyBtn := widget.NewButtonWithIcon("Apply", theme.ConfirmIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(a.presets.Presets) {
			dialog.ShowInformation("No Selection", "Select a preset to apply.", w)
			return
		}
		p := a.presets.Presets[selectedIdx]
		a.applyRequest(p.Request, "Apply preset "+p.Name)
		w.Close()
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		if selectedIdx < 0 || selectedIdx >= len(a.presets.Presets) {
			dialog.ShowInformation("No Selection", "Select a preset to delete.", w)
			return
		}
		name := a.presets.Presets[selectedIdx].Name
		dialog.ShowConfirm("Delete Preset", fmt.Sprintf("Delete preset %q?", name), func(ok bool) {
			if !ok {
				return
			}
			if err := project.DeletePreset(project.DefaultPresetPath(), name); err != nil {
				dialog.ShowError(err, w)
				return
			}
			a.presets.Remove(name)
			resetDetail()
		}, w)
	})

	toolbar := container.NewHBox(saveBtn, layout.NewSpacer(), applyBtn, deleteBtn)
	split := container.NewHSplit(list, container.NewVScroll(detail))
	split.Offset = 0.35

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, split))
	w.Show()
}

func (a *App) showSavePresetDialog(parent fyne.Window, onSaved func()) {
	req, err := a.form.Request()
	if err != nil {
		dialog.ShowError(err, parent)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g. Standard door wall")
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			p, err := project.SavePreset(project.DefaultPresetPath(), nameEntry.Text, descEntry.Text, req)
			if err != nil {
				dialog.ShowError(err, parent)
				return
			}
			a.presets.Put(p)
			onSaved()
		},
		parent,
	)
	form.Resize(fyne.NewSize(400, 260))
	form.Show()
}
