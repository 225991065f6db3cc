package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnap(t *testing.T) {
	assert.Equal(t, 1190.0, Snap(1192, 10))
	assert.Equal(t, 900.0, Snap(1192, 300))
	assert.Equal(t, 600.0, Snap(600, 300))
	assert.Equal(t, 0.0, Snap(250, 300))
	assert.Equal(t, 1192.5, Snap(1192.5, 0), "non-positive step disables snapping")
	assert.Equal(t, 1192.5, Snap(1192.5, -10))
}

func TestSnap_Idempotent(t *testing.T) {
	for _, step := range []float64{1, 3, 10, 25, 300, 1210} {
		for v := 0.0; v < 5000; v += 37.3 {
			once := Snap(v, step)
			assert.Equal(t, once, Snap(once, step), "v=%v step=%v", v, step)
		}
	}
}

func TestCutDoor_AbsentDoorPassThrough(t *testing.T) {
	base := BuildGrid(model.ModeVertical, 6000, 3000, 1200, 2400, 10)

	out := CutDoor(base, model.DoorSpec{}, 10)
	assert.Equal(t, base, out)
	// Cutting again changes nothing.
	assert.Equal(t, out, CutDoor(out, model.DoorSpec{}, 10))
}

func TestCutDoor_DropsSlivers(t *testing.T) {
	base := []model.Rect{model.NewRect(0, 0, 1200, 2400)}
	door := model.DoorSpec{X: 4, Width: 1192, Height: 2000}

	out := CutDoor(base, door, 10)

	// Left and right strips are 4mm wide and thrown away.
	require.Len(t, out, 1)
	assert.Equal(t, model.NewRect(4, 2000, 1190, 400), out[0])
}

func TestCutDoor_SnapsToCoarseStep(t *testing.T) {
	base := []model.Rect{model.NewRect(0, 0, 1200, 2400)}
	door := model.DoorSpec{X: 4, Width: 1192, Height: 2000}

	out := CutDoor(base, door, 300)

	require.Len(t, out, 1)
	assert.Equal(t, model.NewRect(4, 2000, 900, 300), out[0])
}

func TestCutDoor_DropsBelowOneStep(t *testing.T) {
	base := []model.Rect{model.NewRect(0, 0, 1200, 2400)}
	door := model.DoorSpec{X: 250, Width: 950, Height: 2400}

	assert.Empty(t, CutDoor(base, door, 300), "250mm strip is below one 300mm step")
	assert.Len(t, CutDoor(base, door, 10), 1)
}

func TestCutDoor_MinimumFragmentGuarantee(t *testing.T) {
	base := BuildGrid(model.ModeVertical, 6000, 3000, 1200, 2400, 10)
	doors := []model.DoorSpec{
		{X: 2400, Width: 1200, Height: 2400},
		{X: 1213, Width: 907, Height: 2103},
		{X: 0, Width: 850, Height: 2050},
		{X: 5000, Width: 1000, Height: 2900},
	}

	for _, step := range []float64{10, 50, 300} {
		for _, door := range doors {
			for _, p := range CutDoor(base, door, step) {
				assert.GreaterOrEqual(t, p.Width, step)
				assert.GreaterOrEqual(t, p.Height, step)
				assert.Equal(t, 0.0, math.Mod(p.Width, step))
				assert.Equal(t, 0.0, math.Mod(p.Height, step))
				assert.False(t, p.Overlaps(door.Rect()), "piece %+v overlaps door %+v", p, door)
			}
		}
	}
}

func TestCutDoor_ScenarioCenteredDoorOnColumn(t *testing.T) {
	// Five gapless columns; the door occupies the middle column below the
	// remainder band exactly.
	base := BuildGrid(model.ModeVertical, 6000, 3000, 1200, 2400, 0)
	door := model.DoorSpec{X: 2400, Width: 1200, Height: 2400}

	out := CutDoor(base, door, 300)

	require.Len(t, out, 9)
	assert.InDelta(t, 6000.0*3000-1200*2400, model.TotalArea(out), 1e-6)
	for _, p := range out {
		assert.Equal(t, 0.0, math.Mod(p.Width, 300))
		assert.Equal(t, 0.0, math.Mod(p.Height, 300))
	}
	assert.Contains(t, out, model.NewRect(2400, 2400, 1200, 600), "remainder above the door is kept")
}
