package engine

import (
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtract_HoleInside(t *testing.T) {
	out := Subtract(model.NewRect(0, 0, 100, 100), model.NewRect(25, 25, 50, 50))

	require.Len(t, out, 4)
	assert.Equal(t, model.NewRect(0, 0, 25, 100), out[0], "left")
	assert.Equal(t, model.NewRect(75, 0, 25, 100), out[1], "right")
	assert.Equal(t, model.NewRect(25, 0, 50, 25), out[2], "bottom")
	assert.Equal(t, model.NewRect(25, 75, 50, 25), out[3], "top")
}

func TestSubtract_NoOverlap(t *testing.T) {
	r := model.NewRect(0, 0, 100, 100)

	assert.Equal(t, []model.Rect{r}, Subtract(r, model.NewRect(200, 0, 50, 50)))
	// Touching along an edge is not an overlap.
	assert.Equal(t, []model.Rect{r}, Subtract(r, model.NewRect(100, 0, 50, 50)))
	assert.Equal(t, []model.Rect{r}, Subtract(r, model.NewRect(0, 100, 50, 50)))
}

func TestSubtract_FullCover(t *testing.T) {
	out := Subtract(model.NewRect(10, 10, 50, 50), model.NewRect(0, 0, 100, 100))
	assert.Empty(t, out)
}

func TestSubtract_FloorAnchoredDoor(t *testing.T) {
	// Door covers the lower part of the sheet only: a single top strip remains.
	out := Subtract(model.NewRect(0, 0, 1200, 2400), model.NewRect(0, 0, 1200, 2100))

	require.Len(t, out, 1)
	assert.Equal(t, model.NewRect(0, 2100, 1200, 300), out[0])
}

func TestSubtract_Conservation(t *testing.T) {
	tests := []struct {
		name       string
		rect, hole model.Rect
	}{
		{"inside", model.NewRect(0, 0, 100, 100), model.NewRect(10, 20, 30, 40)},
		{"left edge", model.NewRect(0, 0, 1200, 2400), model.NewRect(-300, 0, 900, 2000)},
		{"right edge", model.NewRect(1210, 0, 1200, 2400), model.NewRect(2400, 0, 1200, 2400)},
		{"corner", model.NewRect(0, 0, 100, 100), model.NewRect(50, 50, 100, 100)},
		{"wider hole", model.NewRect(0, 2410, 1200, 590), model.NewRect(-10, 0, 1300, 2600)},
		{"disjoint", model.NewRect(0, 0, 100, 100), model.NewRect(300, 300, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Subtract(tt.rect, tt.hole)

			overlap := 0.0
			if in, ok := tt.rect.Intersect(tt.hole); ok {
				overlap = in.Area()
			}
			assert.InDelta(t, tt.rect.Area()-overlap, model.TotalArea(out), 1e-9)

			for i, a := range out {
				assert.True(t, a.Valid())
				assert.False(t, a.Overlaps(tt.hole), "residual %d overlaps the hole", i)
			}
		})
	}
}
