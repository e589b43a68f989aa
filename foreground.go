package shadowlayout

import "slices"

// Foreground returns the overlay drawable, or nil.
func (c *Container) Foreground() Drawable { return c.foreground }

// ForegroundSpec returns the overlay drawable with its placement.
func (c *Container) ForegroundSpec() ForegroundSpec {
	return ForegroundSpec{
		Drawable:      c.foreground,
		Gravity:       c.foregroundGravity,
		DrawInPadding: c.foregroundDrawInPadding,
	}
}

// SetForegroundSpec replaces drawable, gravity and padding mode together.
func (c *Container) SetForegroundSpec(spec ForegroundSpec) {
	c.foregroundDrawInPadding = spec.DrawInPadding
	c.SetForegroundGravity(spec.Gravity)
	c.SetForeground(spec.Drawable)
}

// SetForeground swaps the overlay drawable. The previous drawable's
// callback is detached before the new one is installed, so it can no longer
// trigger redraws of this container. Drawables must be comparable, which
// pointer types are.
func (c *Container) SetForeground(d Drawable) {
	if c.foreground != nil {
		c.foreground.SetCallback(nil)
	}
	c.foreground = d

	c.updateForegroundColor()

	if d != nil {
		d.SetCallback(c)
		if s, ok := d.(Stateful); ok && s.IsStateful() {
			s.SetState(c.drawableState)
		}
	}
	c.foregroundBoundsChanged = true
	c.requestLayout()
}

// ForegroundGravity returns the overlay gravity.
func (c *Container) ForegroundGravity() Gravity { return c.foregroundGravity }

// SetForegroundGravity changes the overlay gravity. An axis without any
// gravity bit defaults to start or top.
func (c *Container) SetForegroundGravity(g Gravity) {
	if g.Horizontal() == 0 {
		g |= GravityStart
	}
	if g.Vertical() == 0 {
		g |= GravityTop
	}
	if c.foregroundGravity == g {
		return
	}
	c.foregroundGravity = g
	c.foregroundBoundsChanged = true
	c.requestLayout()
}

// ForegroundDrawInPadding reports whether the overlay covers the padding.
func (c *Container) ForegroundDrawInPadding() bool { return c.foregroundDrawInPadding }

// SetForegroundDrawInPadding chooses between the whole container and its
// padding box as the overlay area.
func (c *Container) SetForegroundDrawInPadding(v bool) {
	if c.foregroundDrawInPadding == v {
		return
	}
	c.foregroundDrawInPadding = v
	c.foregroundBoundsChanged = true
	c.invalidate()
}

// InvalidateDrawable implements Callback. Only the current foreground can
// schedule a redraw.
func (c *Container) InvalidateDrawable(d Drawable) {
	if c.VerifyDrawable(d) {
		c.invalidate()
	}
}

// VerifyDrawable reports whether d is the container's foreground.
func (c *Container) VerifyDrawable(d Drawable) bool {
	return d != nil && d == c.foreground
}

// DrawableStateChanged forwards the host's state set to the foreground.
func (c *Container) DrawableStateChanged(states []State) {
	c.drawableState = slices.Clone(states)
	if s, ok := c.foreground.(Stateful); ok && s.IsStateful() {
		if s.SetState(c.drawableState) {
			c.invalidate()
		}
	}
}

// DrawableState returns the last state set passed to DrawableStateChanged.
func (c *Container) DrawableState() []State { return slices.Clone(c.drawableState) }

// JumpDrawablesToCurrentState ends any transition the foreground is running.
func (c *Container) JumpDrawablesToCurrentState() {
	if a, ok := c.foreground.(Animated); ok {
		a.JumpToCurrentState()
	}
}

// DrawableHotspotChanged forwards a touch point to the foreground.
func (c *Container) DrawableHotspotChanged(x, y float64) {
	if h, ok := c.foreground.(Hotspotter); ok {
		h.SetHotspot(x, y)
	}
}

// updateForegroundColor applies the foreground color: as a tint when the
// drawable supports one, otherwise as a src-atop color filter.
func (c *Container) updateForegroundColor() {
	switch d := c.foreground.(type) {
	case nil:
	case Tintable:
		d.SetTint(c.foregroundColor)
	case ColorFilterable:
		d.SetColorFilter(c.foregroundColor, FilterSrcAtop)
	}
}

func (c *Container) drawForeground(r Renderer) {
	if c.foreground == nil {
		return
	}
	if c.foregroundBoundsChanged {
		c.foregroundBoundsChanged = false
		c.updateForegroundBounds()
	}
	r.DrawOverlay(c.foreground, c.overlayBounds)
}

func (c *Container) updateForegroundBounds() {
	w, h := c.size()
	self := Rect{Right: w, Bottom: h}
	if !c.foregroundDrawInPadding {
		self = self.Inset(c.padding)
	}
	iw, ih := c.foreground.IntrinsicSize()
	c.overlayBounds = ApplyGravity(c.foregroundGravity, iw, ih, self, c.direction)
	c.foreground.SetBounds(c.overlayBounds)

	Logger().Debug("shadowlayout: foreground bounds",
		"left", c.overlayBounds.Left, "top", c.overlayBounds.Top,
		"right", c.overlayBounds.Right, "bottom", c.overlayBounds.Bottom)
}
