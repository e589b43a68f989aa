package shadowlayout

// Rect is an integer rectangle in device pixels, given by its edges.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// Inset returns r shrunk by the insets on each side.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// Insets holds one non-negative amount per side. It is used for padding,
// child margins and shadow margins.
type Insets struct {
	Left, Top, Right, Bottom int
}

// UniformInsets returns Insets with all four sides set to v.
func UniformInsets(v int) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() int { return in.Top + in.Bottom }

// Max returns the largest of the four sides.
func (in Insets) Max() int {
	return max(in.Left, in.Top, in.Right, in.Bottom)
}

// clamped returns a copy with negative sides replaced by zero.
func (in Insets) clamped() Insets {
	return Insets{
		Left:   max(in.Left, 0),
		Top:    max(in.Top, 0),
		Right:  max(in.Right, 0),
		Bottom: max(in.Bottom, 0),
	}
}

// Size is a width and height in device pixels.
type Size struct {
	Width, Height int
}
