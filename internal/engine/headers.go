package engine

import (
	"math"

	"github.com/piwi3910/WallPanel/internal/model"
)

// edgeTolerance is how far apart (mm) two edges may be and still count as touching.
const edgeTolerance = 1.0

// MergeHeaders fuses thin header strips sitting on the door with the panel
// directly above them.
//
// A header is a piece whose bottom edge is within 1mm of the door top and
// which spans the whole door width. Each header no taller than threshold+1
// is merged with the first piece above the door that starts at the header's
// top edge and has the same x and width. The merged piece takes the header's
// place in the list and the upper piece is dropped.
//
// This is a single pass: a merged piece is never merged again, and each
// header takes at most one partner.
func MergeHeaders(pieces []model.Rect, door model.DoorSpec, threshold float64) []model.Rect {
	out := make([]model.Rect, 0, len(pieces))
	if door.Absent() {
		return append(out, pieces...)
	}

	doorTop := door.Rect().Top()
	doorLeft := door.X
	doorRight := door.X + door.Width
	spansDoor := func(r model.Rect) bool {
		return r.X <= doorLeft && r.Right() >= doorRight
	}

	merged := make(map[int]model.Rect)
	removed := make(map[int]bool)

	for i, h := range pieces {
		if removed[i] {
			continue
		}
		if math.Abs(h.Y-doorTop) > edgeTolerance || !spansDoor(h) || h.Height > threshold+edgeTolerance {
			continue
		}
		for j, u := range pieces {
			if j == i || removed[j] {
				continue
			}
			if _, taken := merged[j]; taken {
				continue
			}
			if u.Y <= doorTop || !spansDoor(u) {
				continue
			}
			if math.Abs(u.Y-h.Top()) > edgeTolerance || u.X != h.X || u.Width != h.Width {
				continue
			}
			merged[i] = model.NewRect(h.X, h.Y, h.Width, h.Height+u.Height)
			removed[j] = true
			break
		}
	}

	for i, p := range pieces {
		if removed[i] {
			continue
		}
		if m, ok := merged[i]; ok {
			out = append(out, m)
			continue
		}
		out = append(out, p)
	}
	return out
}
