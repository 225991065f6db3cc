package model

import "math"

// Rect is an axis-aligned rectangle in mm. Y grows upward from the floor
// (y = 0) and X grows to the right.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Area returns the area in square mm.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Valid reports whether the rectangle has positive extent on both axes.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Top() && o.Y < r.Top()
}

// Intersect returns the overlapping region of r and o and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.Right(), o.Right())
	y2 := math.Min(r.Top(), o.Top())
	if x1 >= x2 || y1 >= y2 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Within reports whether r lies entirely inside the box [0,w] x [0,h].
func (r Rect) Within(w, h float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Top() <= h
}

// TotalArea sums the area of all rectangles.
func TotalArea(rects []Rect) float64 {
	var total float64
	for _, r := range rects {
		total += r.Area()
	}
	return total
}
