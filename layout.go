package shadowlayout

// Layout positions the container at bounds (in its parent's coordinates)
// and places the child inside it. The child receives coordinates relative
// to the container. A change of size or position marks the foreground
// bounds for recomputation on the next draw.
func (c *Container) Layout(bounds Rect) {
	old := c.bounds
	first := !c.laidOut
	c.bounds = bounds
	c.laidOut = true

	if first || old.Width() != bounds.Width() || old.Height() != bounds.Height() {
		c.SizeChanged(bounds.Width(), bounds.Height(), old.Width(), old.Height())
	}
	c.layoutChild(bounds, c.forceLeftGravity)
	if first || old != bounds {
		c.foregroundBoundsChanged = true
	}
}

// Bounds returns the rectangle passed to the last Layout call.
func (c *Container) Bounds() Rect { return c.bounds }

// SizeChanged records a size change reported by the host. It marks the
// foreground bounds for recomputation on the next draw.
func (c *Container) SizeChanged(w, h, oldW, oldH int) {
	c.foregroundBoundsChanged = true
	Logger().Debug("shadowlayout: size changed", "width", w, "height", h, "old_width", oldW, "old_height", oldH)
}

// ForegroundBoundsDirty reports whether the foreground bounds will be
// recomputed on the next draw.
func (c *Container) ForegroundBoundsDirty() bool { return c.foregroundBoundsChanged }

// layoutChild places the child by its gravity. Center wins over right and
// bottom, as in ApplyGravity. When forceLeft is set, right and end gravity
// leave the child at x = 0.
func (c *Container) layoutChild(bounds Rect, forceLeft bool) {
	child := c.child
	if child == nil || child.Visibility() == Gone {
		return
	}

	parentLeft := c.padding.Left
	parentRight := bounds.Width() - c.padding.Right
	parentTop := c.padding.Top
	parentBottom := bounds.Height() - c.padding.Bottom

	lp := child.LayoutParams()
	width := c.childMeasured.Width
	height := c.childMeasured.Height

	gravity := lp.Gravity
	if gravity == NoGravity {
		gravity = DefaultChildGravity
	}
	absolute := gravity.Absolute(c.direction)

	var childLeft, childTop int
	switch h := absolute.Horizontal(); {
	case h&GravityCenterHorizontal != 0:
		childLeft = parentLeft + (parentRight-parentLeft-width)/2 +
			lp.Margins.Left - lp.Margins.Right + c.margins.Left - c.margins.Right
	case h&GravityRight != 0:
		if !forceLeft {
			childLeft = parentRight - width - lp.Margins.Right - c.margins.Right
		}
	default:
		childLeft = parentLeft + lp.Margins.Left + c.margins.Left
	}

	switch v := absolute.Vertical(); {
	case v&GravityCenterVertical != 0:
		childTop = parentTop + (parentBottom-parentTop-height)/2 +
			lp.Margins.Top - lp.Margins.Bottom + c.margins.Top - c.margins.Bottom
	case v&GravityBottom != 0:
		childTop = parentBottom - height - lp.Margins.Bottom - c.margins.Bottom
	default:
		childTop = parentTop + lp.Margins.Top + c.margins.Top
	}

	placed := Rect{Left: childLeft, Top: childTop, Right: childLeft + width, Bottom: childTop + height}
	child.Layout(placed)
	Logger().Debug("shadowlayout: child placed",
		"gravity", gravity.String(), "left", placed.Left, "top", placed.Top,
		"width", width, "height", height)
}
