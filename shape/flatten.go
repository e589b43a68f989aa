package shape

import "math"

// DefaultTolerance is the maximum distance, in pixels, between a flattened
// arc and the true curve.
const DefaultTolerance = 0.1

// Flatten converts the path into polylines, one per subpath. Arcs are split
// into chords whose deviation from the curve stays below tolerance.
// Closed subpaths do not repeat their first point.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var (
		out     [][]Point
		current []Point
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = []Point{e.Point}
		case LineTo:
			current = append(current, e.Point)
		case ArcTo:
			current = appendArc(current, e, tolerance)
		case Close:
			if n := len(current); n > 1 && current[0].Distance(current[n-1]) < 1e-9 {
				current = current[:n-1]
			}
			flush()
		}
	}
	flush()
	return out
}

// appendArc appends chord endpoints for a, skipping its start point which
// is already the current point.
func appendArc(pts []Point, a ArcTo, tolerance float64) []Point {
	n := arcSegments(a.Radius, math.Abs(a.Sweep), tolerance)
	step := a.Sweep / float64(n)
	for i := 1; i <= n; i++ {
		pts = append(pts, a.pointAt(a.StartAngle+float64(i)*step))
	}
	return pts
}

// arcSegments returns how many chords keep the sagitta below tolerance.
func arcSegments(r, sweep, tolerance float64) int {
	if r <= tolerance {
		return 1
	}
	maxStep := 2 * math.Acos(1-tolerance/r)
	n := int(math.Ceil(sweep / maxStep))
	if n < 1 {
		n = 1
	}
	return n
}

// Contains reports whether pt lies inside the path using the non-zero
// winding rule on the flattened outline. Open subpaths are treated as
// closed.
func (p *Path) Contains(pt Point) bool {
	winding := 0
	for _, poly := range p.Flatten(DefaultTolerance) {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && cross(a, b, pt) > 0 {
					winding++
				}
			} else if b.Y <= pt.Y && cross(a, b, pt) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// cross is positive when c lies to the left of the directed line a->b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}
