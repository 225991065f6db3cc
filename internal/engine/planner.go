package engine

import (
	"fmt"

	"github.com/piwi3910/WallPanel/internal/model"
)

// Planner runs the full layout pipeline for one request.
type Planner struct {
	Request model.LayoutRequest
}

func New(req model.LayoutRequest) *Planner {
	return &Planner{Request: req}
}

// Plan scores every mode, builds the grid for the chosen one, cuts the door
// out of it and applies the optional header merge and side panels.
//
// Only a non-positive wall is an error. Sheets that do not fit, a missing
// door or a zero grid step all produce a valid, possibly empty, result.
func (p *Planner) Plan() (model.LayoutResult, error) {
	req := p.Request
	if err := req.Validate(); err != nil {
		return model.LayoutResult{}, err
	}

	result := model.LayoutResult{
		ID:      model.NewResultID(),
		Request: req,
	}

	door := req.Door.ClipTo(req.Wall)
	if !req.Door.Absent() && door != req.Door {
		if door.Absent() {
			result.Warnings = append(result.Warnings, "door lies outside the wall and was ignored")
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"door clipped to the wall: %.0f x %.0f mm at x=%.0f", door.Width, door.Height, door.X))
		}
	}

	scores, err := EvaluateAll(req.Wall, door, req.Sheet, req.Gap)
	if err != nil {
		return model.LayoutResult{}, err
	}
	result.Efficiency = EfficiencyTable(scores)

	mode := req.Mode
	if mode < model.ModeVertical || mode > model.ModeAuto {
		return model.LayoutResult{}, fmt.Errorf("%w: %d", model.ErrUnknownMode, int(mode))
	}
	if mode == model.ModeAuto {
		mode = SelectBest(scores)
	}
	result.ModeUsed = mode

	base := BuildGrid(mode, req.Wall.Width, req.Wall.Height, req.Sheet.Width, req.Sheet.Height, req.Gap)
	if len(base) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"sheet %.0f x %.0f mm does not fit the wall", req.Sheet.Width, req.Sheet.Height))
	}

	var cut []model.Rect
	if req.CutInPlace {
		cut = snapPieces(base, req.GridStep)
	} else {
		cut = CutDoor(base, door, req.GridStep)
	}

	kinds := make(map[model.Rect]model.PieceKind, len(cut))
	for _, r := range cut {
		kinds[r] = classify(r, base, door, req.Sheet, req.CutInPlace)
	}

	pieces := cut
	if req.MergeHeaders {
		threshold := req.HeaderThreshold
		if threshold <= 0 {
			threshold = model.DefaultHeaderThreshold
		}
		pieces = MergeHeaders(pieces, door, threshold)
	}
	merged := len(pieces)

	if req.SidePanels {
		pieces = AddSidePanels(pieces, door, req.Sheet.Width, req.Gap, req.GridStep, req.Wall.Width, req.Wall.Height)
	}

	result.Pieces = make([]model.Piece, len(pieces))
	for i, r := range pieces {
		kind, ok := kinds[r]
		switch {
		case i >= merged:
			kind = model.KindSide
		case !ok:
			kind = model.KindHeader
		}
		result.Pieces[i] = model.Piece{Index: i + 1, Kind: kind, Rect: r}
	}

	if m, ok := CheckModularity(req.Wall.Width, req.Sheet.Width, req.Gap); !ok {
		result.Warnings = append(result.Warnings, m.Warning(req.Wall.Width, req.Sheet.Width, req.Gap))
	}

	return result, nil
}

// classify names the origin of a cut piece by the grid cell it came from.
func classify(r model.Rect, base []model.Rect, door model.DoorSpec, sheet model.SheetSpec, inPlace bool) model.PieceKind {
	for _, b := range base {
		if r.X < b.X || r.Y < b.Y || r.Right() > b.Right() || r.Top() > b.Top() {
			continue
		}
		if !inPlace && !door.Absent() && b.Overlaps(door.Rect()) {
			return model.KindFragment
		}
		if b.Width == sheet.Width && b.Height == sheet.Height {
			return model.KindSheet
		}
		return model.KindRemainder
	}
	return model.KindFragment
}
