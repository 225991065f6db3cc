package engine

import (
	"math"

	"github.com/piwi3910/WallPanel/internal/model"
)

// MinFragment is the largest width or height (mm) of a residual that is
// still thrown away before snapping.
const MinFragment = 5.0

// Snap floors v to a multiple of step. A non-positive step disables snapping.
func Snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Floor(v/step) * step
}

// CutDoor subtracts the door from every base rectangle, drops slivers and
// snaps what remains to the grid step. An absent door only filters and snaps.
func CutDoor(base []model.Rect, door model.DoorSpec, step float64) []model.Rect {
	if door.Absent() {
		return snapPieces(base, step)
	}

	hole := door.Rect()
	residuals := make([]model.Rect, 0, len(base)+4)
	for _, r := range base {
		residuals = append(residuals, Subtract(r, hole)...)
	}
	return snapPieces(residuals, step)
}

// snapPieces drops residuals of MinFragment or less on either axis, floors
// the rest to the grid step and drops those that fall below one step.
// Positions are kept.
func snapPieces(rects []model.Rect, step float64) []model.Rect {
	out := make([]model.Rect, 0, len(rects))
	for _, r := range rects {
		if r.Width <= MinFragment || r.Height <= MinFragment {
			continue
		}
		w := Snap(r.Width, step)
		h := Snap(r.Height, step)
		if w <= 0 || h <= 0 || (step > 0 && (w < step || h < step)) {
			continue
		}
		out = append(out, model.NewRect(r.X, r.Y, w, h))
	}
	return out
}
