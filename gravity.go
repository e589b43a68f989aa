package shadowlayout

import (
	"fmt"
	"strings"
)

// Gravity places a box of a given size inside a larger box. Horizontal and
// vertical bits combine freely; Start and End are resolved against the
// layout direction before use.
//
// When several bits of one axis are set, center wins over right (or
// bottom), which wins over left (or top). ApplyGravity checks fill first.
type Gravity uint16

const (
	// NoGravity requests the default placement (top, start).
	NoGravity Gravity = 0

	GravityLeft Gravity = 1 << iota
	GravityRight
	GravityCenterHorizontal
	GravityFillHorizontal
	GravityStart
	GravityEnd

	GravityTop
	GravityBottom
	GravityCenterVertical
	GravityFillVertical
)

// Combined gravities.
const (
	GravityCenter = GravityCenterHorizontal | GravityCenterVertical
	GravityFill   = GravityFillHorizontal | GravityFillVertical

	// HorizontalGravityMask selects the horizontal bits, relative ones included.
	HorizontalGravityMask = GravityLeft | GravityRight | GravityCenterHorizontal |
		GravityFillHorizontal | GravityStart | GravityEnd
	// VerticalGravityMask selects the vertical bits.
	VerticalGravityMask = GravityTop | GravityBottom | GravityCenterVertical | GravityFillVertical

	relativeGravityMask = GravityStart | GravityEnd
)

// DefaultChildGravity is used for a child whose layout params carry NoGravity.
const DefaultChildGravity = GravityTop | GravityStart

// LayoutDirection is the reading direction used to resolve Start and End.
type LayoutDirection int

const (
	// LeftToRight maps Start to left.
	LeftToRight LayoutDirection = iota
	// RightToLeft maps Start to right.
	RightToLeft
)

// Absolute replaces Start and End with Left and Right for the direction.
func (g Gravity) Absolute(dir LayoutDirection) Gravity {
	if g&relativeGravityMask == 0 {
		return g
	}
	start, end := GravityLeft, GravityRight
	if dir == RightToLeft {
		start, end = GravityRight, GravityLeft
	}
	out := g &^ relativeGravityMask
	if g&GravityStart != 0 {
		out |= start
	}
	if g&GravityEnd != 0 {
		out |= end
	}
	return out
}

// Horizontal returns the horizontal bits.
func (g Gravity) Horizontal() Gravity { return g & HorizontalGravityMask }

// Vertical returns the vertical bits.
func (g Gravity) Vertical() Gravity { return g & VerticalGravityMask }

// ApplyGravity places a w by h box inside container. A fill bit on an axis,
// or a non-positive size, stretches the box to the container on that axis.
// Centered boxes larger than the container overflow on both sides.
func ApplyGravity(g Gravity, w, h int, container Rect, dir LayoutDirection) Rect {
	g = g.Absolute(dir)
	var out Rect

	switch hg := g.Horizontal(); {
	case w <= 0 || hg&GravityFillHorizontal != 0 || hg == GravityLeft|GravityRight:
		out.Left, out.Right = container.Left, container.Right
	case hg&GravityCenterHorizontal != 0:
		out.Left = container.Left + (container.Width()-w)/2
		out.Right = out.Left + w
	case hg&GravityRight != 0:
		out.Right = container.Right
		out.Left = out.Right - w
	default:
		out.Left = container.Left
		out.Right = out.Left + w
	}

	switch vg := g.Vertical(); {
	case h <= 0 || vg&GravityFillVertical != 0 || vg == GravityTop|GravityBottom:
		out.Top, out.Bottom = container.Top, container.Bottom
	case vg&GravityCenterVertical != 0:
		out.Top = container.Top + (container.Height()-h)/2
		out.Bottom = out.Top + h
	case vg&GravityBottom != 0:
		out.Bottom = container.Bottom
		out.Top = out.Bottom - h
	default:
		out.Top = container.Top
		out.Bottom = out.Top + h
	}
	return out
}

var gravityNames = []struct {
	name string
	g    Gravity
}{
	// Combined names first so String prefers them.
	{"fill", GravityFill},
	{"center", GravityCenter},
	{"fill_horizontal", GravityFillHorizontal},
	{"fill_vertical", GravityFillVertical},
	{"center_horizontal", GravityCenterHorizontal},
	{"center_vertical", GravityCenterVertical},
	{"left", GravityLeft},
	{"right", GravityRight},
	{"start", GravityStart},
	{"end", GravityEnd},
	{"top", GravityTop},
	{"bottom", GravityBottom},
}

// String returns the gravity as "|"-separated names, e.g. "top|end".
func (g Gravity) String() string {
	if g == NoGravity {
		return "none"
	}
	var parts []string
	rest := g
	for _, n := range gravityNames {
		if rest&n.g == n.g {
			parts = append(parts, n.name)
			rest &^= n.g
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseGravity parses "|"-separated gravity names such as "center" or
// "bottom|end". The empty string and "none" yield NoGravity.
func ParseGravity(s string) (Gravity, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return NoGravity, nil
	}
	var g Gravity
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, n := range gravityNames {
			if n.name == part {
				g |= n.g
				found = true
				break
			}
		}
		if !found {
			return NoGravity, fmt.Errorf("%w: %q", ErrInvalidGravity, part)
		}
	}
	return g, nil
}
