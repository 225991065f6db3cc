package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/WallPanel/internal/model"
)

var modeOptions = []string{"Auto", "Vertical", "Horizontal", "Hybrid"}

// formValues is the raw text of the parameter form.
type formValues struct {
	WallWidth, WallHeight        string
	DoorWidth, DoorHeight, DoorX string
	SheetWidth, SheetHeight, Gap string
	Mode                         string
	MergeHeaders, SidePanels     bool
}

// formatMM renders a length without trailing zeros.
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseMM reads a length, accepting a comma as decimal separator. An empty
// field reads as zero.
func parseMM(field, text string) (float64, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	if text == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", field, text)
	}
	return v, nil
}

func valuesFromRequest(req model.LayoutRequest) formValues {
	v := formValues{
		WallWidth:    formatMM(req.Wall.Width),
		WallHeight:   formatMM(req.Wall.Height),
		SheetWidth:   formatMM(req.Sheet.Width),
		SheetHeight:  formatMM(req.Sheet.Height),
		Gap:          formatMM(req.Gap),
		Mode:         req.Mode.String(),
		MergeHeaders: req.MergeHeaders,
		SidePanels:   req.SidePanels,
	}
	if !req.Door.Absent() {
		v.DoorWidth = formatMM(req.Door.Width)
		v.DoorHeight = formatMM(req.Door.Height)
		v.DoorX = formatMM(req.Door.X)
	}
	return v
}

// apply parses the form into a copy of base. Fields the form does not show
// (grid step, header threshold, cut in place) come from base. A door with
// no X offset is centered on the wall.
func (v formValues) apply(base model.LayoutRequest) (model.LayoutRequest, error) {
	req := base
	var err error
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"Wall width", v.WallWidth, &req.Wall.Width},
		{"Wall height", v.WallHeight, &req.Wall.Height},
		{"Door width", v.DoorWidth, &req.Door.Width},
		{"Door height", v.DoorHeight, &req.Door.Height},
		{"Sheet width", v.SheetWidth, &req.Sheet.Width},
		{"Sheet height", v.SheetHeight, &req.Sheet.Height},
		{"Gap", v.Gap, &req.Gap},
	}
	for _, f := range fields {
		if *f.dst, err = parseMM(f.name, f.text); err != nil {
			return base, err
		}
	}

	if strings.TrimSpace(v.DoorX) == "" {
		req.Door.X = req.Wall.Width/2 - req.Door.Width/2
	} else if req.Door.X, err = parseMM("Door X offset", v.DoorX); err != nil {
		return base, err
	}
	if req.Door.Absent() {
		req.Door = model.DoorSpec{}
	}

	if req.Mode, err = model.ParseLayoutMode(v.Mode); err != nil {
		return base, err
	}
	req.MergeHeaders = v.MergeHeaders
	req.SidePanels = v.SidePanels
	return req, nil
}

// parameterForm holds the entries of the wall parameter panel.
type parameterForm struct {
	wallWidth, wallHeight        *widget.Entry
	doorWidth, doorHeight, doorX *widget.Entry
	sheetWidth, sheetHeight, gap *widget.Entry
	mode                         *widget.Select
	mergeHeaders, sidePanels     *widget.Check

	// base carries the request fields edited in the advanced dialog.
	base model.LayoutRequest
}

func newParameterForm(req model.LayoutRequest) *parameterForm {
	mmEntry := func(placeholder string) *widget.Entry {
		e := widget.NewEntry()
		e.SetPlaceHolder(placeholder)
		return e
	}
	f := &parameterForm{
		wallWidth:    mmEntry("Width in mm"),
		wallHeight:   mmEntry("Height in mm"),
		doorWidth:    mmEntry("Empty for no door"),
		doorHeight:   mmEntry("Empty for no door"),
		doorX:        mmEntry("Empty to center"),
		sheetWidth:   mmEntry("Width in mm"),
		sheetHeight:  mmEntry("Height in mm"),
		gap:          mmEntry("Joint in mm"),
		mode:         widget.NewSelect(modeOptions, nil),
		mergeHeaders: widget.NewCheck("", nil),
		sidePanels:   widget.NewCheck("", nil),
	}
	f.Set(req)
	return f
}

// Set loads a request into the form.
func (f *parameterForm) Set(req model.LayoutRequest) {
	f.base = req
	v := valuesFromRequest(req)
	f.wallWidth.SetText(v.WallWidth)
	f.wallHeight.SetText(v.WallHeight)
	f.doorWidth.SetText(v.DoorWidth)
	f.doorHeight.SetText(v.DoorHeight)
	f.doorX.SetText(v.DoorX)
	f.sheetWidth.SetText(v.SheetWidth)
	f.sheetHeight.SetText(v.SheetHeight)
	f.gap.SetText(v.Gap)
	f.mode.SetSelected(v.Mode)
	f.mergeHeaders.SetChecked(v.MergeHeaders)
	f.sidePanels.SetChecked(v.SidePanels)
}

func (f *parameterForm) values() formValues {
	return formValues{
		WallWidth:    f.wallWidth.Text,
		WallHeight:   f.wallHeight.Text,
		DoorWidth:    f.doorWidth.Text,
		DoorHeight:   f.doorHeight.Text,
		DoorX:        f.doorX.Text,
		SheetWidth:   f.sheetWidth.Text,
		SheetHeight:  f.sheetHeight.Text,
		Gap:          f.gap.Text,
		Mode:         f.mode.Selected,
		MergeHeaders: f.mergeHeaders.Checked,
		SidePanels:   f.sidePanels.Checked,
	}
}

// Request parses the form into a layout request.
func (f *parameterForm) Request() (model.LayoutRequest, error) {
	return f.values().apply(f.base)
}

// Build lays the form out as cards.
func (f *parameterForm) Build() fyne.CanvasObject {
	row := func(label string, obj fyne.CanvasObject) []fyne.CanvasObject {
		return []fyne.CanvasObject{widget.NewLabel(label), obj}
	}
	grid := func(rows ...[]fyne.CanvasObject) *fyne.Container {
		var objs []fyne.CanvasObject
		for _, r := range rows {
			objs = append(objs, r...)
		}
		return container.NewGridWithColumns(2, objs...)
	}

	return container.NewVBox(
		widget.NewCard("Wall", "", grid(
			row("Width (mm)", f.wallWidth),
			row("Height (mm)", f.wallHeight),
		)),
		widget.NewCard("Door", "", grid(
			row("Width (mm)", f.doorWidth),
			row("Height (mm)", f.doorHeight),
			row("X Offset (mm)", f.doorX),
		)),
		widget.NewCard("Sheet", "", grid(
			row("Width (mm)", f.sheetWidth),
			row("Height (mm)", f.sheetHeight),
			row("Gap (mm)", f.gap),
		)),
		widget.NewCard("Layout", "", grid(
			row("Mode", f.mode),
			row("Merge Headers", f.mergeHeaders),
			row("Side Panels", f.sidePanels),
		)),
	)
}
