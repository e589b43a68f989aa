package shape

import "math"

// Point represents a 2D point in device pixels.
// The y axis grows downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle given by its edges.
// A Rect with Left >= Right or Top >= Bottom is empty.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R is a convenience function to create a Rect from its edges.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area.
// NaN edges count as empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right) || !(r.Top < r.Bottom)
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// union grows r to include p. An unset rect (ok == false) becomes the
// degenerate rect at p.
func union(r Rect, ok bool, p Point) Rect {
	if !ok {
		return Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}
	}
	return Rect{
		Left:   math.Min(r.Left, p.X),
		Top:    math.Min(r.Top, p.Y),
		Right:  math.Max(r.Right, p.X),
		Bottom: math.Max(r.Bottom, p.Y),
	}
}
