package engine

import (
	"math"

	"github.com/piwi3910/WallPanel/internal/model"
)

// Subtract returns the parts of rect not covered by hole, as up to four
// rectangles in a fixed order: left, right, bottom, top. The left and right
// strips span the full height of rect; the bottom and top strips span only
// the horizontal extent of the overlap. Without overlap rect is returned
// unchanged.
func Subtract(rect, hole model.Rect) []model.Rect {
	ix := math.Max(rect.X, hole.X)
	iy := math.Max(rect.Y, hole.Y)
	ax := math.Min(rect.Right(), hole.Right())
	ay := math.Min(rect.Top(), hole.Top())

	if ix >= ax || iy >= ay {
		return []model.Rect{rect}
	}

	out := make([]model.Rect, 0, 4)
	if ix > rect.X {
		out = append(out, model.NewRect(rect.X, rect.Y, ix-rect.X, rect.Height))
	}
	if ax < rect.Right() {
		out = append(out, model.NewRect(ax, rect.Y, rect.Right()-ax, rect.Height))
	}
	if iy > rect.Y {
		out = append(out, model.NewRect(ix, rect.Y, ax-ix, iy-rect.Y))
	}
	if ay < rect.Top() {
		out = append(out, model.NewRect(ix, ay, ax-ix, rect.Top()-ay))
	}
	return out
}
