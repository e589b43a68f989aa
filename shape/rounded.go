package shape

import "math"

// Radii holds the four corner radii of a rounded rectangle, in pixels.
type Radii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns Radii with all four corners set to r.
func UniformRadii(r float64) Radii {
	return Radii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Sanitize returns a copy with negative, infinite and NaN radii replaced by
// zero.
func (r Radii) Sanitize() Radii {
	return Radii{
		TopLeft:     nonNegative(r.TopLeft),
		TopRight:    nonNegative(r.TopRight),
		BottomRight: nonNegative(r.BottomRight),
		BottomLeft:  nonNegative(r.BottomLeft),
	}
}

// IsZero reports whether every corner is sharp.
func (r Radii) IsZero() bool {
	return r == Radii{}
}

// Fit returns the radii scaled down so that, on every side of a w by h
// rectangle, the two adjacent radii sum to at most the side length.
// All corners share the same scale factor so the shape keeps its proportions.
func (r Radii) Fit(w, h float64) Radii {
	r = r.Sanitize()
	// Clamp to the shorter side first so the pair sums stay finite.
	limit := math.Max(math.Min(w, h), 0)
	r.TopLeft = math.Min(r.TopLeft, limit)
	r.TopRight = math.Min(r.TopRight, limit)
	r.BottomRight = math.Min(r.BottomRight, limit)
	r.BottomLeft = math.Min(r.BottomLeft, limit)

	scale := 1.0
	scale = fitScale(scale, w, r.TopLeft+r.TopRight)
	scale = fitScale(scale, w, r.BottomLeft+r.BottomRight)
	scale = fitScale(scale, h, r.TopLeft+r.BottomLeft)
	scale = fitScale(scale, h, r.TopRight+r.BottomRight)
	if scale < 1 {
		r.TopLeft *= scale
		r.TopRight *= scale
		r.BottomRight *= scale
		r.BottomLeft *= scale
	}
	return r
}

func fitScale(scale, side, sum float64) float64 {
	if sum > side && sum > 0 {
		return math.Min(scale, side/sum)
	}
	return scale
}

func nonNegative(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}

// RoundedRect builds the closed outline of the rectangle
// [left, right] x [top, bottom] with each corner replaced by a circular arc
// of the given radius. A zero radius leaves a sharp vertex.
//
// The outline starts at the end of the top-left arc and runs clockwise on
// screen: top edge, top-right arc, right edge, bottom-right arc, bottom edge,
// bottom-left arc, left edge, top-left arc.
//
// Degenerate rectangles (left >= right or top >= bottom) produce an empty path.
func RoundedRect(left, top, right, bottom float64, radii Radii) *Path {
	p := NewPath()
	bounds := R(left, top, right, bottom)
	if bounds.IsEmpty() {
		return p
	}
	r := radii.Fit(bounds.Width(), bounds.Height())

	const quarter = math.Pi / 2

	p.MoveTo(left+r.TopLeft, top)
	p.LineTo(right-r.TopRight, top)
	if r.TopRight > 0 {
		p.ArcTo(right-r.TopRight, top+r.TopRight, r.TopRight, -quarter, quarter)
	} else {
		p.LineTo(right, top)
	}
	p.LineTo(right, bottom-r.BottomRight)
	if r.BottomRight > 0 {
		p.ArcTo(right-r.BottomRight, bottom-r.BottomRight, r.BottomRight, 0, quarter)
	} else {
		p.LineTo(right, bottom)
	}
	p.LineTo(left+r.BottomLeft, bottom)
	if r.BottomLeft > 0 {
		p.ArcTo(left+r.BottomLeft, bottom-r.BottomLeft, r.BottomLeft, quarter, quarter)
	} else {
		p.LineTo(left, bottom)
	}
	p.LineTo(left, top+r.TopLeft)
	if r.TopLeft > 0 {
		p.ArcTo(left+r.TopLeft, top+r.TopLeft, r.TopLeft, math.Pi, quarter)
	}
	p.Close()
	return p
}

// CornerRadius returns the radius actually used at the given corner of an
// outline built by RoundedRect, or 0 when that corner is sharp. An arc
// belongs to the corner its midpoint faces.
func CornerRadius(p *Path, corner Corner) float64 {
	for _, a := range p.Arcs() {
		if arcCorner(a) == corner {
			return a.Radius
		}
	}
	return 0
}

func arcCorner(a ArcTo) Corner {
	mid := a.StartAngle + a.Sweep/2
	right := math.Cos(mid) > 0
	lower := math.Sin(mid) > 0
	switch {
	case !lower && !right:
		return TopLeft
	case !lower:
		return TopRight
	case right:
		return BottomRight
	default:
		return BottomLeft
	}
}

// Corner names one corner of a rectangle.
type Corner int

// Corners of a rectangle.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// String returns the corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}
