package engine

import (
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerFixture() ([]model.Rect, model.DoorSpec) {
	door := model.DoorSpec{X: 0, Width: 1200, Height: 2100}
	base := BuildGrid(model.ModeVertical, 3000, 3000, 1200, 2400, 0)
	return CutDoor(base, door, 10), door
}

func TestMergeHeaders_MergesStripWithPanelAbove(t *testing.T) {
	pieces, door := headerFixture()
	require.Equal(t, []model.Rect{
		model.NewRect(0, 2100, 1200, 300),
		model.NewRect(0, 2400, 1200, 600),
		model.NewRect(1200, 0, 1200, 2400),
		model.NewRect(1200, 2400, 1200, 600),
	}, pieces)

	out := MergeHeaders(pieces, door, 300)

	assert.Equal(t, []model.Rect{
		model.NewRect(0, 2100, 1200, 900),
		model.NewRect(1200, 0, 1200, 2400),
		model.NewRect(1200, 2400, 1200, 600),
	}, out)
	assert.InDelta(t, model.TotalArea(pieces), model.TotalArea(out), 1e-9)
}

func TestMergeHeaders_TallHeaderKept(t *testing.T) {
	pieces, door := headerFixture()

	out := MergeHeaders(pieces, door, 250)
	assert.Equal(t, pieces, out)

	// The threshold has a 1mm allowance.
	out = MergeHeaders(pieces, door, 299)
	assert.Len(t, out, 3)
}

func TestMergeHeaders_RequiresSameColumn(t *testing.T) {
	door := model.DoorSpec{X: 100, Width: 900, Height: 2000}
	pieces := []model.Rect{
		model.NewRect(0, 2000, 1200, 200),
		model.NewRect(0, 2200, 1190, 800), // narrower
	}

	assert.Equal(t, pieces, MergeHeaders(pieces, door, 300))
}

func TestMergeHeaders_RequiresContact(t *testing.T) {
	door := model.DoorSpec{X: 100, Width: 900, Height: 2000}
	pieces := []model.Rect{
		model.NewRect(0, 2000, 1200, 200),
		model.NewRect(0, 2210, 1200, 790), // 10mm joint between them
	}

	assert.Equal(t, pieces, MergeHeaders(pieces, door, 300))

	pieces[1] = model.NewRect(0, 2200.5, 1200, 799.5)
	assert.Equal(t, []model.Rect{model.NewRect(0, 2000, 1200, 999.5)}, MergeHeaders(pieces, door, 300))
}

func TestMergeHeaders_HeaderMustSpanDoor(t *testing.T) {
	door := model.DoorSpec{X: 100, Width: 1500, Height: 2000}
	pieces := []model.Rect{
		model.NewRect(0, 2000, 1200, 200),
		model.NewRect(0, 2200, 1200, 800),
	}

	assert.Equal(t, pieces, MergeHeaders(pieces, door, 300))
}

func TestMergeHeaders_SinglePass(t *testing.T) {
	door := model.DoorSpec{X: 0, Width: 1200, Height: 2000}
	pieces := []model.Rect{
		model.NewRect(0, 2000, 1200, 100),
		model.NewRect(0, 2100, 1200, 100),
		model.NewRect(0, 2200, 1200, 800),
	}

	out := MergeHeaders(pieces, door, 300)

	// The header takes the first contiguous upper only; the merged piece is
	// not merged again.
	assert.Equal(t, []model.Rect{
		model.NewRect(0, 2000, 1200, 200),
		model.NewRect(0, 2200, 1200, 800),
	}, out)
}

func TestMergeHeaders_NoDoor(t *testing.T) {
	pieces, _ := headerFixture()
	assert.Equal(t, pieces, MergeHeaders(pieces, model.DoorSpec{}, 300))
}

func TestMergeHeaders_DoesNotMutateInput(t *testing.T) {
	pieces, door := headerFixture()
	before := append([]model.Rect(nil), pieces...)

	MergeHeaders(pieces, door, 300)
	assert.Equal(t, before, pieces)
}
