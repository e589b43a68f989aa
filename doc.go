// Package shadowlayout implements a card-style container that draws a soft
// drop shadow and a background with four independently rounded corners
// around exactly one child.
//
// # Overview
//
// A [Container] owns the shadow, corner, margin and color state and
// implements the three passes a host layout system drives:
//
//	c := shadowlayout.New(
//	    shadowlayout.WithChild(child),
//	    shadowlayout.WithHost(host),
//	)
//	c.SetUniformShadowMargin(shadowlayout.UniformOf(8))
//	c.SetUniformCornerRadius(shadowlayout.UniformOf(16.0))
//	c.SetShadowRadius(6)
//
//	size := c.Measure(shadowlayout.Exactly(200), shadowlayout.Exactly(100))
//	c.Layout(shadowlayout.Rect{Right: size.Width, Bottom: size.Height})
//	c.Draw(renderer)
//
// # Shadow margins
//
// Shadow margins reserve a band around the child into which the blurred
// shadow renders. The child is laid out inside the band and the rounded
// outline is traced along its inner edge. The effective shadow radius never
// exceeds the largest margin, see [EffectiveShadowRadius].
//
// # Drawing
//
// [Container.Draw] replays the same sequence every frame: fill the outline
// with the background color carrying the shadow, clip to the outline, draw
// the children, draw the foreground overlay. The [Renderer] interface keeps
// the container independent of any graphics API; the ggcanvas package
// provides an implementation on top of gg.
//
// # Threading
//
// A Container is not safe for concurrent use. All setters and passes must
// run on the host's UI goroutine. Setters notify the [Host] with
// RequestLayout when child placement changes and Invalidate when only
// pixels change.
package shadowlayout
