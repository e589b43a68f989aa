// Package shape builds the rounded-rectangle outlines used to fill and clip
// shadow containers.
//
// Paths are made of [MoveTo], [LineTo], [ArcTo] and [Close] elements. Arcs are
// kept as true circular arcs so callers can inspect corner radii; renderers
// that only understand Bezier curves convert them with [ArcTo.Cubics].
//
//	outline := shape.RoundedRect(8, 8, 192, 92, shape.UniformRadii(16))
//	for _, poly := range outline.Flatten(shape.DefaultTolerance) {
//	    // feed poly to a rasterizer
//	}
//
// All functions are pure and safe to call on every frame.
package shape
