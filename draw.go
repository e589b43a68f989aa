package shadowlayout

import "github.com/gogpu/shadowlayout/shape"

// Outline returns the rounded outline for the current size, traced along
// the inner edge of the shadow margins.
func (c *Container) Outline() *shape.Path {
	w, h := c.size()
	m := c.margins
	return shape.RoundedRect(
		float64(m.Left), float64(m.Top),
		float64(w-m.Right), float64(h-m.Bottom),
		c.radii,
	)
}

// BackgroundPaint returns the paint of the background fill: the background
// color carrying the effective shadow.
func (c *Container) BackgroundPaint() Paint {
	return Paint{
		Color:     c.backgroundColor,
		Shadow:    c.ShadowStyle(),
		AntiAlias: true,
	}
}

// Draw renders one frame: fill the outline with the background and its
// shadow, clip to the outline, draw the children, then the foreground.
// The clip stays set on r when Draw returns.
func (c *Container) Draw(r Renderer) {
	if r == nil {
		return
	}
	outline := c.Outline()
	r.FillPath(outline, c.BackgroundPaint())
	r.ClipTo(outline)
	r.DrawChildren()
	c.drawForeground(r)
}

// size is the laid out size, or the measured size before the first layout.
func (c *Container) size() (int, int) {
	if c.laidOut {
		return c.bounds.Width(), c.bounds.Height()
	}
	return c.measured.Width, c.measured.Height
}
