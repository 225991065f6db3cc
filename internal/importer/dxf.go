package importer

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a 2D vertex read from a drawing.
type point struct {
	X, Y float64
}

// segment represents a line segment between two points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// floorTolerance is how close (drawing units, mm) a door sill must be to
// the wall floor line.
const floorTolerance = 1.0

// ImportDXF reads a survey drawing of one wall. Each closed shape
// (LWPOLYLINE or chain of connected LINEs) is reduced to its bounding box.
// The largest box is the wall; the largest other box standing on the wall
// floor is the door. Coordinates are shifted so the wall starts at (0, 0).
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var boxes []model.Rect
	var segments []segment
	skipped := 0

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			pts := make([]point, len(e.Vertices))
			for i, v := range e.Vertices {
				pts[i] = point{X: v[0], Y: v[1]}
			}
			boxes = append(boxes, boundingBox(pts))

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})

		default:
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}

	for _, outline := range chainSegments(segments, 0.01) {
		boxes = append(boxes, boundingBox(outline))
	}

	if len(boxes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Area() > boxes[j].Area()
	})

	wallBox := boxes[0]
	if wallBox.Width < 0.01 || wallBox.Height < 0.01 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Wall outline is degenerate (%.2f x %.2f mm)", wallBox.Width, wallBox.Height))
		return result
	}

	entry := WallEntry{
		Label: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Wall:  model.WallSpec{Width: wallBox.Width, Height: wallBox.Height},
	}

	ignored := 0
	for _, b := range boxes[1:] {
		onFloor := math.Abs(b.Y-wallBox.Y) <= floorTolerance
		inside := b.X >= wallBox.X-floorTolerance && b.Right() <= wallBox.Right()+floorTolerance
		if entry.Door.Absent() && onFloor && inside && b.Width >= 0.01 && b.Height >= 0.01 {
			entry.Door = model.DoorSpec{Width: b.Width, Height: b.Height, X: b.X - wallBox.X}
			continue
		}
		ignored++
	}
	if ignored > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Ignored %d shapes that are neither wall nor door", ignored))
	}

	result.Walls = append(result.Walls, entry)
	return result
}

// boundingBox returns the axis-aligned box around a set of points.
func boundingBox(pts []point) model.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return model.NewRect(minX, minY, maxX-minX, maxY-minY)
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
// Open chains are dropped.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}
