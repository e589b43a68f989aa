package shadowlayout

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/shadowlayout/shape"
)

// CornerRadii holds the four corner radii of the background outline.
type CornerRadii = shape.Radii

// Host schedules passes for a Container. The container calls it from
// setters; it never runs a pass itself.
type Host interface {
	// RequestLayout asks for a new measure and layout pass.
	RequestLayout()
	// Invalidate asks for a redraw.
	Invalidate()
}

type nopHost struct{}

func (nopHost) RequestLayout() {}
func (nopHost) Invalidate()    {}

// Container is a card with a drop shadow, rounded corners, an optional
// foreground overlay and exactly one child.
//
// Container is not safe for concurrent use.
type Container struct {
	host      Host
	child     Node
	params    LayoutParams
	direction LayoutDirection
	padding   Insets
	minSize   Size

	shadow          ShadowStyle // Radius holds the configured value
	radii           CornerRadii
	margins         Insets
	backgroundColor gg.RGBA
	foregroundColor gg.RGBA

	foreground              Drawable
	foregroundGravity       Gravity
	foregroundDrawInPadding bool
	drawableState           []State

	measured      MeasuredSize
	childMeasured MeasuredSize
	bounds        Rect
	laidOut       bool

	// foregroundBoundsChanged is set on every size change and consumed by
	// the next foreground draw.
	foregroundBoundsChanged bool
	overlayBounds           Rect

	// forceLeftGravity suppresses right/end child gravity. Nothing sets it.
	forceLeftGravity bool
}

// New creates a Container with default colors, no margins, sharp corners
// and match-parent layout params.
func New(opts ...Option) *Container {
	c := &Container{
		host: nopHost{},
		params: LayoutParams{
			Width:  MatchParent,
			Height: MatchParent,
		},
		shadow: ShadowStyle{
			OffsetY: 1,
			Color:   DefaultShadowColor,
		},
		backgroundColor:         DefaultBackgroundColor,
		foregroundColor:         DefaultForegroundColor,
		foregroundGravity:       GravityFill,
		foregroundDrawInPadding: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Container) requestLayout() {
	c.host.RequestLayout()
	c.host.Invalidate()
}

func (c *Container) invalidate() {
	c.host.Invalidate()
}

// Child returns the participating child, or nil.
func (c *Container) Child() Node { return c.child }

// SetChild replaces the participating child.
func (c *Container) SetChild(n Node) {
	c.child = n
	c.requestLayout()
}

// LayoutParams returns the container's own placement request.
func (c *Container) LayoutParams() LayoutParams { return c.params }

// SetLayoutParams changes how the container asks its parent to size it.
func (c *Container) SetLayoutParams(p LayoutParams) {
	c.params = p
	c.requestLayout()
}

// LayoutDirection returns the direction used to resolve start and end.
func (c *Container) LayoutDirection() LayoutDirection { return c.direction }

// SetLayoutDirection changes the direction used to resolve start and end.
func (c *Container) SetLayoutDirection(d LayoutDirection) {
	if c.direction == d {
		return
	}
	c.direction = d
	c.foregroundBoundsChanged = true
	c.requestLayout()
}

// Padding returns the container padding.
func (c *Container) Padding() Insets { return c.padding }

// SetPadding sets the container padding. Negative sides clamp to zero.
func (c *Container) SetPadding(p Insets) {
	c.padding = p.clamped()
	c.foregroundBoundsChanged = true
	c.requestLayout()
}

// MinimumSize returns the suggested minimum size.
func (c *Container) MinimumSize() Size { return c.minSize }

// SetMinimumSize sets the suggested minimum size.
func (c *Container) SetMinimumSize(s Size) {
	c.minSize = Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
	c.requestLayout()
}

// ShadowColor returns the shadow color.
func (c *Container) ShadowColor() gg.RGBA { return c.shadow.Color }

// SetShadowColor sets the shadow color.
func (c *Container) SetShadowColor(col gg.RGBA) {
	c.shadow.Color = col
	c.invalidate()
}

// BackgroundColor returns the fill color of the rounded shape.
func (c *Container) BackgroundColor() gg.RGBA { return c.backgroundColor }

// SetBackgroundColor sets the fill color of the rounded shape.
func (c *Container) SetBackgroundColor(col gg.RGBA) {
	c.backgroundColor = col
	c.invalidate()
}

// ForegroundColor returns the tint applied to the foreground drawable.
func (c *Container) ForegroundColor() gg.RGBA { return c.foregroundColor }

// SetForegroundColor sets the tint applied to the foreground drawable.
func (c *Container) SetForegroundColor(col gg.RGBA) {
	c.foregroundColor = col
	c.updateForegroundColor()
	c.invalidate()
}

// ShadowRadius returns the effective blur radius, clamped to the widest
// shadow margin.
func (c *Container) ShadowRadius() float64 {
	return EffectiveShadowRadius(c.shadow.Radius, c.margins)
}

// SetShadowRadius sets the blur radius. Negative values clamp to zero.
func (c *Container) SetShadowRadius(r float64) {
	c.shadow.Radius = nonNegative(r)
	c.invalidate()
}

// ShadowDx returns the horizontal shadow offset.
func (c *Container) ShadowDx() float64 { return c.shadow.OffsetX }

// SetShadowDx sets the horizontal shadow offset.
func (c *Container) SetShadowDx(dx float64) {
	c.shadow.OffsetX = finite(dx)
	c.invalidate()
}

// ShadowDy returns the vertical shadow offset.
func (c *Container) ShadowDy() float64 { return c.shadow.OffsetY }

// SetShadowDy sets the vertical shadow offset.
func (c *Container) SetShadowDy(dy float64) {
	c.shadow.OffsetY = finite(dy)
	c.invalidate()
}

// ShadowStyle returns the shadow as it is painted, with the effective radius.
func (c *Container) ShadowStyle() ShadowStyle {
	s := c.shadow
	s.Radius = c.ShadowRadius()
	return s
}

// SetShadowStyle replaces radius, offsets and color at once.
func (c *Container) SetShadowStyle(s ShadowStyle) {
	c.shadow = ShadowStyle{
		Radius:  nonNegative(s.Radius),
		OffsetX: finite(s.OffsetX),
		OffsetY: finite(s.OffsetY),
		Color:   s.Color,
	}
	c.invalidate()
}

// ShadowMargins returns the band reserved for the shadow on each side.
func (c *Container) ShadowMargins() Insets { return c.margins }

// SetShadowMargins sets all four shadow margins. Negative values clamp to zero.
func (c *Container) SetShadowMargins(left, top, right, bottom int) {
	c.setMargins(Insets{Left: left, Top: top, Right: right, Bottom: bottom})
}

// SetUniformShadowMargin sets every side to the uniform value, or leaves
// the per-side values unchanged for UseIndividual.
func (c *Container) SetUniformShadowMargin(u Uniform[int]) {
	if v, ok := u.Get(); ok {
		c.setMargins(UniformInsets(v))
	}
}

// SetShadowMarginLeft sets the left shadow margin.
func (c *Container) SetShadowMarginLeft(v int) {
	m := c.margins
	m.Left = v
	c.setMargins(m)
}

// SetShadowMarginTop sets the top shadow margin.
func (c *Container) SetShadowMarginTop(v int) {
	m := c.margins
	m.Top = v
	c.setMargins(m)
}

// SetShadowMarginRight sets the right shadow margin.
func (c *Container) SetShadowMarginRight(v int) {
	m := c.margins
	m.Right = v
	c.setMargins(m)
}

// SetShadowMarginBottom sets the bottom shadow margin.
func (c *Container) SetShadowMarginBottom(v int) {
	m := c.margins
	m.Bottom = v
	c.setMargins(m)
}

// Margins move the child, so they need a layout pass as well as a redraw.
func (c *Container) setMargins(m Insets) {
	c.margins = m.clamped()
	c.requestLayout()
}

// CornerRadii returns the four corner radii.
func (c *Container) CornerRadii() CornerRadii { return c.radii }

// SetCornerRadii sets all four corner radii. Negative values clamp to zero.
func (c *Container) SetCornerRadii(tl, tr, br, bl float64) {
	c.setRadii(CornerRadii{TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl})
}

// SetUniformCornerRadius sets every corner to the uniform value, or leaves
// the per-corner values unchanged for UseIndividual.
func (c *Container) SetUniformCornerRadius(u Uniform[float64]) {
	if v, ok := u.Get(); ok {
		c.setRadii(shape.UniformRadii(v))
	}
}

// SetCornerRadiusTopLeft sets the top-left corner radius.
func (c *Container) SetCornerRadiusTopLeft(r float64) {
	radii := c.radii
	radii.TopLeft = r
	c.setRadii(radii)
}

// SetCornerRadiusTopRight sets the top-right corner radius.
func (c *Container) SetCornerRadiusTopRight(r float64) {
	radii := c.radii
	radii.TopRight = r
	c.setRadii(radii)
}

// SetCornerRadiusBottomRight sets the bottom-right corner radius.
func (c *Container) SetCornerRadiusBottomRight(r float64) {
	radii := c.radii
	radii.BottomRight = r
	c.setRadii(radii)
}

// SetCornerRadiusBottomLeft sets the bottom-left corner radius.
func (c *Container) SetCornerRadiusBottomLeft(r float64) {
	radii := c.radii
	radii.BottomLeft = r
	c.setRadii(radii)
}

// Radii only change pixels.
func (c *Container) setRadii(r CornerRadii) {
	c.radii = r.Sanitize()
	c.invalidate()
}

func nonNegative(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
