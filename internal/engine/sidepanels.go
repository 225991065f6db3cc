package engine

import (
	"math"

	"github.com/piwi3910/WallPanel/internal/model"
)

// AddSidePanels appends filler pieces beside the door when a door edge falls
// strictly inside a sheet column rather than on a column boundary.
//
// The left filler covers the part of the column between the column start and
// the door. The right filler covers the rest of the column module after the
// door edge. Both are floor-anchored, as tall as the door (capped at the wall
// height), snapped to the grid step, and kept inside the wall. Fillers are
// appended as-is; they may coincide with pieces already in the list.
func AddSidePanels(pieces []model.Rect, door model.DoorSpec, sheetW, gap, step, wallW, wallH float64) []model.Rect {
	out := make([]model.Rect, 0, len(pieces)+2)
	out = append(out, pieces...)
	if door.Absent() || sheetW <= 0 {
		return out
	}

	module := sheetW + gap
	if module <= 0 {
		module = sheetW
	}
	h := math.Min(door.Height, wallH)

	left := door.X
	if off := columnOffset(left, module); off > 0 && off < sheetW {
		w := Snap(off, step)
		if w > 0 && w >= step {
			out = append(out, model.NewRect(left-w, 0, w, h))
		}
	}

	right := door.X + door.Width
	if off := columnOffset(right, module); off > 0 && off < sheetW {
		w := Snap(module-off, step)
		if right+w > wallW {
			w = Snap(wallW-right, step)
		}
		if w > 0 && w >= step {
			out = append(out, model.NewRect(right, 0, w, h))
		}
	}
	return out
}

// columnOffset is the distance from the start of the column containing x to x.
func columnOffset(x, module float64) float64 {
	k := math.Floor(x / module)
	return x - k*module
}
