package shadowlayout

// Option configures a Container during creation.
//
// Example:
//
//	c := shadowlayout.New(
//	    shadowlayout.WithChild(card),
//	    shadowlayout.WithPadding(shadowlayout.UniformInsets(4)),
//	)
type Option func(*Container)

// WithHost installs the host that receives layout and redraw requests.
// A nil host is ignored.
func WithHost(h Host) Option {
	return func(c *Container) {
		if h != nil {
			c.host = h
		}
	}
}

// WithChild sets the participating child.
func WithChild(n Node) Option {
	return func(c *Container) {
		c.child = n
	}
}

// WithLayoutParams sets how the container asks its parent to size it.
// The default is MatchParent on both axes.
func WithLayoutParams(p LayoutParams) Option {
	return func(c *Container) {
		c.params = p
	}
}

// WithPadding sets the container padding.
func WithPadding(p Insets) Option {
	return func(c *Container) {
		c.padding = p.clamped()
	}
}

// WithMinimumSize sets the suggested minimum size.
func WithMinimumSize(s Size) Option {
	return func(c *Container) {
		c.minSize = Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
	}
}

// WithLayoutDirection sets the direction used to resolve start and end.
func WithLayoutDirection(d LayoutDirection) Option {
	return func(c *Container) {
		c.direction = d
	}
}

// WithShadow sets the shadow style.
func WithShadow(s ShadowStyle) Option {
	return func(c *Container) {
		c.shadow = ShadowStyle{
			Radius:  nonNegative(s.Radius),
			OffsetX: finite(s.OffsetX),
			OffsetY: finite(s.OffsetY),
			Color:   s.Color,
		}
	}
}

// WithShadowMargins sets the shadow margins.
func WithShadowMargins(m Insets) Option {
	return func(c *Container) {
		c.margins = m.clamped()
	}
}

// WithCornerRadii sets the corner radii.
func WithCornerRadii(r CornerRadii) Option {
	return func(c *Container) {
		c.radii = r.Sanitize()
	}
}
