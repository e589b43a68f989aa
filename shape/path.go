package shape

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc around Center. The arc starts at StartAngle
// and sweeps by Sweep radians; positive sweeps turn clockwise on screen
// because the y axis points down.
type ArcTo struct {
	Center     Point
	Radius     float64
	StartAngle float64
	Sweep      float64
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Start returns the first point of the arc.
func (a ArcTo) Start() Point {
	return a.pointAt(a.StartAngle)
}

// End returns the last point of the arc.
func (a ArcTo) End() Point {
	return a.pointAt(a.StartAngle + a.Sweep)
}

func (a ArcTo) pointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Cubic is a cubic Bezier segment starting at the previous point.
type Cubic struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Cubics approximates the arc with cubic Bezier curves of at most
// 90 degrees each.
func (a ArcTo) Cubics() []Cubic {
	if a.Sweep == 0 || a.Radius <= 0 {
		return nil
	}
	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a.Sweep) / maxAngle))
	step := a.Sweep / float64(n)

	out := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		a1 := a.StartAngle + float64(i)*step
		a2 := a1 + step
		out = append(out, a.segment(a1, a2))
	}
	return out
}

// segment builds the cubic for a single arc span of at most 90 degrees.
func (a ArcTo) segment(a1, a2 float64) Cubic {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)
	r := a.Radius

	x1 := a.Center.X + r*cos1
	y1 := a.Center.Y + r*sin1
	x2 := a.Center.X + r*cos2
	y2 := a.Center.Y + r*sin2

	return Cubic{
		Control1: Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		Control2: Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		Point:    Pt(x2, y2),
	}
}

// Path is a sequence of line and arc segments.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 10),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y). Zero-length lines are dropped.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	if !p.HasCurrentPoint() {
		p.MoveTo(x, y)
		return
	}
	if pt == p.current {
		return
	}
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo appends a circular arc. If the path has no current point the arc
// start becomes the subpath start; otherwise a line joins the current
// point to the arc start when they differ.
func (p *Path) ArcTo(cx, cy, r, startAngle, sweep float64) {
	arc := ArcTo{Center: Pt(cx, cy), Radius: r, StartAngle: startAngle, Sweep: sweep}
	from := arc.Start()
	if !p.HasCurrentPoint() {
		p.MoveTo(from.X, from.Y)
	} else if from.Distance(p.current) > 1e-9 {
		p.LineTo(from.X, from.Y)
	}
	p.elements = append(p.elements, arc)
	p.current = arc.End()
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.HasCurrentPoint() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// IsClosed reports whether the path is non-empty and ends with Close.
func (p *Path) IsClosed() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Arcs returns the arc elements in path order.
func (p *Path) Arcs() []ArcTo {
	var arcs []ArcTo
	for _, elem := range p.elements {
		if a, ok := elem.(ArcTo); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// Bounds returns the tight bounding box of the path. Empty paths return
// the zero Rect.
func (p *Path) Bounds() Rect {
	var (
		b  Rect
		ok bool
	)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b, ok = union(b, ok, e.Point), true
		case LineTo:
			b, ok = union(b, ok, e.Point), true
		case ArcTo:
			b, ok = union(b, ok, e.Start()), true
			b = union(b, true, e.End())
			for _, ex := range arcExtremes(e) {
				b = union(b, true, ex)
			}
		}
	}
	return b
}

// arcExtremes returns the axis-extreme points the arc passes through.
func arcExtremes(a ArcTo) []Point {
	lo, hi := a.StartAngle, a.StartAngle+a.Sweep
	if lo > hi {
		lo, hi = hi, lo
	}
	var pts []Point
	first := math.Ceil(lo / (math.Pi / 2))
	for k := first; k*(math.Pi/2) <= hi; k++ {
		pts = append(pts, a.pointAt(k*(math.Pi/2)))
	}
	return pts
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	result := &Path{
		elements: make([]PathElement, 0, len(p.elements)),
		start:    p.start.Add(d),
		current:  p.current.Add(d),
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: e.Point.Add(d)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: e.Point.Add(d)})
		case ArcTo:
			e.Center = e.Center.Add(d)
			result.elements = append(result.elements, e)
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}
