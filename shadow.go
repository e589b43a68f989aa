package shadowlayout

import "github.com/gogpu/gg"

// ShadowStyle describes the drop shadow attached to the background fill.
type ShadowStyle struct {
	// Radius is the blur radius in pixels.
	Radius float64
	// OffsetX and OffsetY move the shadow relative to the shape.
	OffsetX float64
	OffsetY float64
	Color   gg.RGBA
}

// Visible reports whether the shadow would paint anything.
func (s ShadowStyle) Visible() bool {
	return s.Radius > 0 && s.Color.A > 0
}

// EffectiveShadowRadius clamps the configured blur radius to the widest
// shadow margin so the blur stays inside the reserved band. With all
// margins zero the configured radius is returned unchanged.
func EffectiveShadowRadius(configured float64, margins Insets) float64 {
	limit := float64(margins.Max())
	if limit != 0 && configured > limit {
		return limit
	}
	return configured
}

// Paint is the style of a single fill.
type Paint struct {
	Color     gg.RGBA
	Shadow    ShadowStyle
	AntiAlias bool
}
