package engine

import (
	"math"

	"github.com/piwi3910/WallPanel/internal/model"
)

// GridCounts returns how many full sheet modules fit across and up the wall.
// Each module is a sheet followed by a gap, and the last gap is not needed,
// hence the extra gap added to the span.
func GridCounts(wallW, wallH, sheetW, sheetH, gap float64) (cols, rows int) {
	return fitCount(wallW, sheetW, gap), fitCount(wallH, sheetH, gap)
}

func fitCount(span, size, gap float64) int {
	period := size + gap
	if size <= 0 || period <= 0 {
		return 0
	}
	n := math.Floor((span + gap) / period)
	if n < 0 {
		return 0
	}
	return int(n)
}

// remainderHeight is the height left above rows stacked sheets.
func remainderHeight(wallH, sheetH, gap float64, rows int) float64 {
	if rows == 0 {
		return wallH
	}
	n := float64(rows)
	return wallH - (n*sheetH + (n-1)*gap)
}

// BuildGrid tiles a wallW x wallH plane with sheets in the given mode and
// returns the unclipped base grid. The emission order is the numbering
// order: column-major for Vertical, row-major for Horizontal, and base band
// before the remainder band for Hybrid. Degenerate input yields an empty or
// remainder-only grid. ModeAuto is not a tiling and yields nothing.
func BuildGrid(mode model.LayoutMode, wallW, wallH, sheetW, sheetH, gap float64) []model.Rect {
	cols, rows := GridCounts(wallW, wallH, sheetW, sheetH, gap)
	if cols == 0 {
		return nil
	}

	periodX := sheetW + gap
	periodY := sheetH + gap

	switch mode {
	case model.ModeVertical:
		return buildVertical(cols, rows, periodX, periodY, wallH, sheetW, sheetH, gap)
	case model.ModeHorizontal:
		return buildHorizontal(cols, rows, periodX, periodY, wallH, sheetW, sheetH, gap)
	case model.ModeHybrid:
		return buildHybrid(cols, periodX, wallH, sheetW, sheetH, gap)
	default:
		return nil
	}
}

func buildVertical(cols, rows int, periodX, periodY, wallH, sheetW, sheetH, gap float64) []model.Rect {
	remH := remainderHeight(wallH, sheetH, gap, rows)
	rects := make([]model.Rect, 0, cols*(rows+1))
	for c := 0; c < cols; c++ {
		x := float64(c) * periodX
		for r := 0; r < rows; r++ {
			rects = append(rects, model.NewRect(x, float64(r)*periodY, sheetW, sheetH))
		}
		if remH >= 1 {
			rects = append(rects, model.NewRect(x, wallH-remH, sheetW, remH))
		}
	}
	return rects
}

func buildHorizontal(cols, rows int, periodX, periodY, wallH, sheetW, sheetH, gap float64) []model.Rect {
	remH := remainderHeight(wallH, sheetH, gap, rows)
	rects := make([]model.Rect, 0, cols*(rows+1))
	for r := 0; r < rows; r++ {
		y := float64(r) * periodY
		for c := 0; c < cols; c++ {
			rects = append(rects, model.NewRect(float64(c)*periodX, y, sheetW, sheetH))
		}
	}
	if remH >= 1 {
		for c := 0; c < cols; c++ {
			rects = append(rects, model.NewRect(float64(c)*periodX, wallH-remH, sheetW, remH))
		}
	}
	return rects
}

func buildHybrid(cols int, periodX, wallH, sheetW, sheetH, gap float64) []model.Rect {
	// A wall lower than one sheet gets a single band clipped to the wall.
	baseH := math.Min(sheetH, wallH)
	remH := wallH - (sheetH + gap)

	rects := make([]model.Rect, 0, cols*2)
	for c := 0; c < cols; c++ {
		rects = append(rects, model.NewRect(float64(c)*periodX, 0, sheetW, baseH))
	}
	if remH >= 1 {
		y := sheetH + gap
		for c := 0; c < cols; c++ {
			rects = append(rects, model.NewRect(float64(c)*periodX, y, sheetW, remH))
		}
	}
	return rects
}
