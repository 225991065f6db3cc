package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/WallPanel/internal/model"
)

// Efficiency is the raw score of one layout mode on the uncut grid.
type Efficiency struct {
	Mode       model.LayoutMode
	Efficiency float64 // used area / wall area, 0..1
	Waste      float64 // 1 - Efficiency, floored at 0
	UsedArea   float64 // sq mm, grid area minus the door
}

// Row converts the score into reporting units.
func (e Efficiency) Row() model.EfficiencyRow {
	return model.NewEfficiencyRow(e.Mode, e.Efficiency, e.Waste, e.UsedArea)
}

// Evaluate scores one mode by the area of its unclipped base grid net of the
// door. It is a fast proxy for comparing modes, not the final cut area.
func Evaluate(wall model.WallSpec, door model.DoorSpec, sheet model.SheetSpec, gap float64, mode model.LayoutMode) (Efficiency, error) {
	if wall.Width <= 0 || wall.Height <= 0 {
		return Efficiency{}, fmt.Errorf("%w: wall must be positive, got %.0f x %.0f mm", model.ErrInvalidGeometry, wall.Width, wall.Height)
	}

	grid := BuildGrid(mode, wall.Width, wall.Height, sheet.Width, sheet.Height, gap)
	used := math.Max(0, model.TotalArea(grid)-door.Area())
	eff := used / wall.Area()

	return Efficiency{
		Mode:       mode,
		Efficiency: eff,
		Waste:      math.Max(0, 1-eff),
		UsedArea:   used,
	}, nil
}

// EvaluateAll scores every candidate mode in evaluation order.
func EvaluateAll(wall model.WallSpec, door model.DoorSpec, sheet model.SheetSpec, gap float64) ([]Efficiency, error) {
	scores := make([]Efficiency, 0, len(model.CandidateModes))
	for _, mode := range model.CandidateModes {
		e, err := Evaluate(wall, door, sheet, gap, mode)
		if err != nil {
			return nil, err
		}
		scores = append(scores, e)
	}
	return scores, nil
}

// SelectBest returns the mode with the highest efficiency. Ties go to the
// earliest score, so callers must pass scores in evaluation order.
func SelectBest(scores []Efficiency) model.LayoutMode {
	if len(scores) == 0 {
		return model.ModeVertical
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Efficiency > best.Efficiency {
			best = s
		}
	}
	return best.Mode
}

// EfficiencyTable converts scores into report rows.
func EfficiencyTable(scores []Efficiency) []model.EfficiencyRow {
	rows := make([]model.EfficiencyRow, len(scores))
	for i, s := range scores {
		rows[i] = s.Row()
	}
	return rows
}
