package cmd

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/piwi3910/WallPanel/internal/project"
)

// requestFlags holds the layout parameters shared by plan, export, batch
// and preset save. Only flags set on the command line override the base
// request.
type requestFlags struct {
	preset          string
	wallWidth       float64
	wallHeight      float64
	doorWidth       float64
	doorHeight      float64
	doorX           float64
	noDoor          bool
	sheetWidth      float64
	sheetHeight     float64
	gap             float64
	mode            string
	gridStep        float64
	mergeHeaders    bool
	headerThreshold float64
	sidePanels      bool
	cutInPlace      bool
}

func addRequestFlags(cmd *cobra.Command, f *requestFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.preset, "preset", "", "start from a saved preset")
	flags.Float64Var(&f.wallWidth, "wall-width", 6000, "wall width (mm)")
	flags.Float64Var(&f.wallHeight, "wall-height", 3000, "wall height (mm)")
	flags.Float64Var(&f.doorWidth, "door-width", 1200, "door width (mm)")
	flags.Float64Var(&f.doorHeight, "door-height", 2400, "door height (mm)")
	flags.Float64Var(&f.doorX, "door-x", 0, "door offset from the left wall edge (mm, default centered)")
	flags.BoolVar(&f.noDoor, "no-door", false, "plan a wall without a door")
	flags.Float64Var(&f.sheetWidth, "sheet-width", 1200, "sheet width (mm)")
	flags.Float64Var(&f.sheetHeight, "sheet-height", 2400, "sheet height (mm)")
	flags.Float64Var(&f.gap, "gap", 10, "joint between sheets (mm)")
	flags.StringVarP(&f.mode, "mode", "m", "auto", "layout mode (vertical, horizontal, hybrid, auto)")
	flags.Float64Var(&f.gridStep, "grid-step", 10, "snapping step (mm)")
	flags.BoolVar(&f.mergeHeaders, "merge-headers", false, "merge short headers above the door")
	flags.Float64Var(&f.headerThreshold, "header-threshold", model.DefaultHeaderThreshold, "tallest header to merge (mm)")
	flags.BoolVar(&f.sidePanels, "side-panels", false, "add filler panels beside the door")
	flags.BoolVar(&f.cutInPlace, "cut-in-place", false, "keep full sheets and cut the door on site")
}

// baseRequest returns the request the flags apply to: a saved preset when
// --preset is given, otherwise the defaults from the settings file.
func (f *requestFlags) baseRequest() (model.LayoutRequest, error) {
	if f.preset != "" {
		p, err := project.FindPreset(presetsPath, f.preset)
		if err != nil {
			return model.LayoutRequest{}, err
		}
		return p.Request, nil
	}
	req := model.DefaultRequest()
	cfg.ApplyToRequest(&req)
	req.Door = model.CenteredDoor(req.Wall, req.Door.Width, req.Door.Height)
	return req, nil
}

// request builds the layout request for cmd.
func (f *requestFlags) request(cmd *cobra.Command) (model.LayoutRequest, error) {
	base, err := f.baseRequest()
	if err != nil {
		return model.LayoutRequest{}, err
	}
	return f.apply(cmd, base)
}

// apply overrides base with every flag the user set. A door without an
// explicit offset is re-centered when the wall or door width changes.
func (f *requestFlags) apply(cmd *cobra.Command, base model.LayoutRequest) (model.LayoutRequest, error) {
	req := base
	changed := cmd.Flags().Changed

	floats := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"wall-width", f.wallWidth, &req.Wall.Width},
		{"wall-height", f.wallHeight, &req.Wall.Height},
		{"door-width", f.doorWidth, &req.Door.Width},
		{"door-height", f.doorHeight, &req.Door.Height},
		{"door-x", f.doorX, &req.Door.X},
		{"sheet-width", f.sheetWidth, &req.Sheet.Width},
		{"sheet-height", f.sheetHeight, &req.Sheet.Height},
		{"gap", f.gap, &req.Gap},
		{"grid-step", f.gridStep, &req.GridStep},
		{"header-threshold", f.headerThreshold, &req.HeaderThreshold},
	}
	for _, fl := range floats {
		if changed(fl.name) {
			*fl.dst = fl.src
		}
	}

	if !changed("door-x") && (changed("wall-width") || changed("door-width")) {
		req.Door.X = req.Wall.Width/2 - req.Door.Width/2
	}
	if f.noDoor {
		req.Door = model.DoorSpec{}
	}

	if changed("mode") {
		mode, err := model.ParseLayoutMode(f.mode)
		if err != nil {
			return model.LayoutRequest{}, err
		}
		req.Mode = mode
	}
	if changed("merge-headers") {
		req.MergeHeaders = f.mergeHeaders
	}
	if changed("side-panels") {
		req.SidePanels = f.sidePanels
	}
	if changed("cut-in-place") {
		req.CutInPlace = f.cutInPlace
	}
	return req, nil
}
