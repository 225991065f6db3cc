package engine

import (
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRequest() model.LayoutRequest {
	req := model.DefaultRequest()
	req.Door = model.DoorSpec{}
	req.Mode = model.ModeVertical
	return req
}

func assertNoOverlap(t *testing.T, pieces []model.Piece) {
	t.Helper()
	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			assert.False(t, pieces[i].Overlaps(pieces[j].Rect),
				"piece %d %+v overlaps piece %d %+v", pieces[i].Index, pieces[i].Rect, pieces[j].Index, pieces[j].Rect)
		}
	}
}

func TestPlan_PlainWall(t *testing.T) {
	result, err := New(plainRequest()).Plan()
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, model.ModeVertical, result.ModeUsed)
	require.Len(t, result.Pieces, 8)

	counts := result.CountByKind()
	assert.Equal(t, 4, counts[model.KindSheet])
	assert.Equal(t, 4, counts[model.KindRemainder])
	for i, p := range result.Pieces {
		assert.Equal(t, i+1, p.Index)
	}
	assert.Equal(t, 600.0, result.Pieces[1].Height)
	assertNoOverlap(t, result.Pieces)
}

func TestPlan_InvalidWall(t *testing.T) {
	req := plainRequest()
	req.Wall.Height = 0

	_, err := New(req).Plan()
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)
}

func TestPlan_UnknownMode(t *testing.T) {
	req := plainRequest()
	req.Mode = model.LayoutMode(42)

	_, err := New(req).Plan()
	assert.ErrorIs(t, err, model.ErrUnknownMode)
}

func TestPlan_AutoPicksBest(t *testing.T) {
	req := model.DefaultRequest()

	result, err := New(req).Plan()
	require.NoError(t, err)

	assert.Equal(t, model.ModeVertical, result.ModeUsed)
	require.Len(t, result.Efficiency, 3)
	row, ok := result.Row(model.ModeVertical)
	require.True(t, ok)
	assert.Equal(t, 64.0, row.EfficiencyPct)
	assertNoOverlap(t, result.Pieces)
	for _, p := range result.Pieces {
		assert.False(t, p.Overlaps(req.Door.Rect()))
		assert.True(t, p.Within(req.Wall.Width, req.Wall.Height))
	}
}

func TestPlan_CenteredDoorOnColumn(t *testing.T) {
	req := plainRequest()
	req.Gap = 0
	req.GridStep = 300
	req.Door = model.DoorSpec{X: 2400, Width: 1200, Height: 2400}

	result, err := New(req).Plan()
	require.NoError(t, err)

	require.Len(t, result.Pieces, 9)
	assert.InDelta(t, 6000.0*3000-1200*2400, result.PieceArea(), 1e-6)
	assert.Empty(t, result.Warnings, "a gapless 6000mm wall closes on 1200mm modules")
}

func TestPlan_HeaderMerge(t *testing.T) {
	req := plainRequest()
	req.Wall = model.WallSpec{Width: 3000, Height: 3000}
	req.Gap = 0
	req.Door = model.DoorSpec{X: 0, Width: 1200, Height: 2100}
	req.MergeHeaders = true

	result, err := New(req).Plan()
	require.NoError(t, err)

	require.Len(t, result.Pieces, 3)
	assert.Equal(t, model.KindHeader, result.Pieces[0].Kind)
	assert.Equal(t, model.NewRect(0, 2100, 1200, 900), result.Pieces[0].Rect)
	assert.Equal(t, model.KindSheet, result.Pieces[1].Kind)
	assert.Equal(t, model.KindRemainder, result.Pieces[2].Kind)
}

func TestPlan_HeaderMergeDefaultThreshold(t *testing.T) {
	req := plainRequest()
	req.Wall = model.WallSpec{Width: 3000, Height: 3000}
	req.Gap = 0
	req.Door = model.DoorSpec{X: 0, Width: 1200, Height: 2100}
	req.MergeHeaders = true
	req.HeaderThreshold = 0

	result, err := New(req).Plan()
	require.NoError(t, err)
	assert.Len(t, result.Pieces, 3)
}

func TestPlan_SidePanels(t *testing.T) {
	req := plainRequest()
	req.Door = model.DoorSpec{X: 100, Width: 900, Height: 2000}
	req.SidePanels = true

	result, err := New(req).Plan()
	require.NoError(t, err)

	n := len(result.Pieces)
	require.GreaterOrEqual(t, n, 2)
	left, right := result.Pieces[n-2], result.Pieces[n-1]
	assert.Equal(t, model.KindSide, left.Kind)
	assert.Equal(t, model.KindSide, right.Kind)
	assert.Equal(t, model.NewRect(0, 0, 100, 2000), left.Rect)
	assert.Equal(t, model.NewRect(1000, 0, 210, 2000), right.Rect)
	assert.Equal(t, n, right.Index)
}

func TestPlan_FragmentsAroundDoor(t *testing.T) {
	req := plainRequest()
	req.Door = model.DoorSpec{X: 100, Width: 900, Height: 2000}

	result, err := New(req).Plan()
	require.NoError(t, err)

	counts := result.CountByKind()
	// Left, right and top residuals of the first sheet.
	assert.Equal(t, 3, counts[model.KindFragment])
	assert.Equal(t, 3, counts[model.KindSheet])
	assert.Equal(t, 4, counts[model.KindRemainder])
	assertNoOverlap(t, result.Pieces)
}

func TestPlan_CutInPlaceKeepsFullSheets(t *testing.T) {
	req := model.DefaultRequest()
	req.Mode = model.ModeVertical
	req.CutInPlace = true

	result, err := New(req).Plan()
	require.NoError(t, err)

	require.Len(t, result.Pieces, 8)
	assert.Equal(t, 4, result.CountByKind()[model.KindSheet])
}

func TestPlan_DoorClippedToWall(t *testing.T) {
	req := plainRequest()
	req.Door = model.DoorSpec{X: 5500, Width: 1200, Height: 2400}

	result, err := New(req).Plan()
	require.NoError(t, err)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "door clipped")
	for _, p := range result.Pieces {
		assert.True(t, p.Within(6000, 3000))
	}
}

func TestPlan_DoorOutsideWall(t *testing.T) {
	req := plainRequest()
	req.Door = model.DoorSpec{X: 7000, Width: 1200, Height: 2400}

	result, err := New(req).Plan()
	require.NoError(t, err)

	assert.Len(t, result.Pieces, 8)
	assert.Contains(t, result.Warnings[0], "outside the wall")
}

func TestPlan_SheetTooLarge(t *testing.T) {
	req := plainRequest()
	req.Sheet = model.SheetSpec{Width: 7000, Height: 2400}

	result, err := New(req).Plan()
	require.NoError(t, err)

	assert.Empty(t, result.Pieces)
	assert.Contains(t, result.Warnings[0], "does not fit")
}

func TestPlan_RequestNotMutated(t *testing.T) {
	req := model.DefaultRequest()
	req.MergeHeaders = true
	req.SidePanels = true
	before := req

	result, err := New(req).Plan()
	require.NoError(t, err)

	assert.Equal(t, before, req)
	assert.Equal(t, before, result.Request)
}

func TestPlan_NoOverlapAcrossModes(t *testing.T) {
	doors := []model.DoorSpec{
		{},
		{X: 2400, Width: 1200, Height: 2400},
		{X: 1213, Width: 907, Height: 2103},
		{X: 0, Width: 850, Height: 2050},
	}
	for _, mode := range model.CandidateModes {
		for _, door := range doors {
			req := plainRequest()
			req.Mode = mode
			req.Door = door
			req.MergeHeaders = true

			result, err := New(req).Plan()
			require.NoError(t, err)
			assertNoOverlap(t, result.Pieces)
		}
	}
}
