package engine

import (
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testWall  = model.WallSpec{Width: 6000, Height: 3000}
	testSheet = model.SheetSpec{Width: 1200, Height: 2400}
)

func TestEvaluate_CenteredDoor(t *testing.T) {
	door := model.CenteredDoor(testWall, 1200, 2400)

	e, err := Evaluate(testWall, door, testSheet, 10, model.ModeVertical)
	require.NoError(t, err)

	assert.Equal(t, model.ModeVertical, e.Mode)
	assert.InDelta(t, 4*1200*3000-1200*2400, e.UsedArea, 1e-6)
	assert.InDelta(t, 0.64, e.Efficiency, 1e-9)
	assert.InDelta(t, 0.36, e.Waste, 1e-9)
}

func TestEvaluate_UsedAreaFlooredAtZero(t *testing.T) {
	wall := model.WallSpec{Width: 1000, Height: 1000}
	door := model.DoorSpec{Width: 900, Height: 900}

	e, err := Evaluate(wall, door, testSheet, 10, model.ModeVertical)
	require.NoError(t, err)

	assert.Equal(t, 0.0, e.UsedArea)
	assert.Equal(t, 0.0, e.Efficiency)
	assert.Equal(t, 1.0, e.Waste)
}

func TestEvaluate_InvalidWall(t *testing.T) {
	_, err := Evaluate(model.WallSpec{Width: 0, Height: 3000}, model.DoorSpec{}, testSheet, 10, model.ModeVertical)
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)

	_, err = EvaluateAll(model.WallSpec{Width: 6000, Height: -1}, model.DoorSpec{}, testSheet, 10)
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)
}

func TestEvaluateAll_Order(t *testing.T) {
	scores, err := EvaluateAll(testWall, model.DoorSpec{}, testSheet, 10)
	require.NoError(t, err)

	require.Len(t, scores, 3)
	assert.Equal(t, model.ModeVertical, scores[0].Mode)
	assert.Equal(t, model.ModeHorizontal, scores[1].Mode)
	assert.Equal(t, model.ModeHybrid, scores[2].Mode)
	// Hybrid loses the joint above its base band.
	assert.Greater(t, scores[0].Efficiency, scores[2].Efficiency)
}

func TestSelectBest_TieGoesToEvaluationOrder(t *testing.T) {
	// Vertical and Horizontal always cover the same area on a plain wall.
	scores, err := EvaluateAll(testWall, model.DoorSpec{}, testSheet, 10)
	require.NoError(t, err)
	require.Equal(t, scores[0].Efficiency, scores[1].Efficiency)

	assert.Equal(t, model.ModeVertical, SelectBest(scores))
}

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name   string
		scores []Efficiency
		want   model.LayoutMode
	}{
		{"empty", nil, model.ModeVertical},
		{"all tied", []Efficiency{
			{Mode: model.ModeVertical, Efficiency: 0.5},
			{Mode: model.ModeHorizontal, Efficiency: 0.5},
			{Mode: model.ModeHybrid, Efficiency: 0.5},
		}, model.ModeVertical},
		{"later tie keeps first max", []Efficiency{
			{Mode: model.ModeVertical, Efficiency: 0.4},
			{Mode: model.ModeHorizontal, Efficiency: 0.6},
			{Mode: model.ModeHybrid, Efficiency: 0.6},
		}, model.ModeHorizontal},
		{"hybrid best", []Efficiency{
			{Mode: model.ModeVertical, Efficiency: 0.4},
			{Mode: model.ModeHorizontal, Efficiency: 0.4},
			{Mode: model.ModeHybrid, Efficiency: 0.7},
		}, model.ModeHybrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectBest(tt.scores))
		})
	}
}

func TestEfficiencyTable(t *testing.T) {
	door := model.CenteredDoor(testWall, 1200, 2400)
	scores, err := EvaluateAll(testWall, door, testSheet, 10)
	require.NoError(t, err)

	rows := EfficiencyTable(scores)

	require.Len(t, rows, 3)
	assert.Equal(t, model.EfficiencyRow{
		Mode:          model.ModeVertical,
		EfficiencyPct: 64,
		WastePct:      36,
		UsedAreaM2:    11.52,
	}, rows[0])
	assert.Equal(t, 63.73, rows[2].EfficiencyPct)
	assert.Equal(t, 11.47, rows[2].UsedAreaM2)
}
