package shadowlayout

// Measure sizes the container and its child under the given constraints.
//
// On an axis where the container's own layout params ask for MatchParent,
// the child is measured exactly inside the shadow band. On the other axes
// the child is measured against the incoming spec and the shadow margins
// are added around it. The result is at least the minimum size and the
// foreground's minimum size, never exceeds an exact or at-most bound, and
// carries the child's measured-state flags.
//
// A Gone child is skipped and contributes nothing. Measure has no hidden
// state: identical inputs give identical results.
func (c *Container) Measure(width, height MeasureSpec) MeasuredSize {
	fillWidth := c.params.Width == MatchParent
	fillHeight := c.params.Height == MatchParent

	widthSpec := width
	if fillWidth {
		widthSpec = Exactly(DefaultSize(0, width) - c.margins.Left - c.margins.Right)
	}
	heightSpec := height
	if fillHeight {
		heightSpec = Exactly(DefaultSize(0, height) - c.margins.Top - c.margins.Bottom)
	}

	var (
		maxWidth, maxHeight     int
		widthState, heightState MeasuredState
	)
	if c.child != nil && c.child.Visibility() != Gone {
		lp := c.child.LayoutParams()
		childWidth := ChildMeasureSpec(widthSpec, c.padding.Horizontal()+lp.Margins.Horizontal(), lp.Width)
		childHeight := ChildMeasureSpec(heightSpec, c.padding.Vertical()+lp.Margins.Vertical(), lp.Height)
		m := c.child.Measure(childWidth, childHeight)
		c.childMeasured = m

		maxWidth = m.Width + lp.Margins.Horizontal()
		if !fillWidth {
			maxWidth += c.margins.Horizontal()
		}
		maxHeight = m.Height + lp.Margins.Vertical()
		if !fillHeight {
			maxHeight += c.margins.Vertical()
		}
		widthState |= m.WidthState
		heightState |= m.HeightState
	}

	maxWidth += c.padding.Horizontal()
	maxHeight += c.padding.Vertical()

	maxWidth = max(maxWidth, c.minSize.Width)
	maxHeight = max(maxHeight, c.minSize.Height)
	if c.foreground != nil {
		fw, fh := c.foreground.MinimumSize()
		maxWidth = max(maxWidth, fw)
		maxHeight = max(maxHeight, fh)
	}

	var out MeasuredSize
	out.Width, out.WidthState = ResolveSizeAndState(maxWidth, width, widthState)
	out.Height, out.HeightState = ResolveSizeAndState(maxHeight, height, heightState)
	c.measured = out

	Logger().Debug("shadowlayout: measured",
		"width_spec", width.String(), "height_spec", height.String(),
		"width", out.Width, "height", out.Height,
		"child_width", c.childMeasured.Width, "child_height", c.childMeasured.Height)
	return out
}

// MeasuredSize returns the result of the last Measure call.
func (c *Container) MeasuredSize() MeasuredSize { return c.measured }
