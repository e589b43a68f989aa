package shadowlayout

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Attributes is the declarative configuration of a Container, the values
// a layout resource would carry. Colors use "#AARRGGBB" notation.
//
// A nil ShadowMargin or CornerRadius means the per-side or per-corner
// fields apply.
type Attributes struct {
	ShadowColor     string  `toml:"shadow_color"`
	ForegroundColor string  `toml:"foreground_color"`
	BackgroundColor string  `toml:"background_color"`
	ShadowDx        float64 `toml:"shadow_dx"`
	ShadowDy        float64 `toml:"shadow_dy"`
	ShadowRadius    float64 `toml:"shadow_radius"`

	ShadowMargin       *int `toml:"shadow_margin"`
	ShadowMarginLeft   int  `toml:"shadow_margin_left"`
	ShadowMarginTop    int  `toml:"shadow_margin_top"`
	ShadowMarginRight  int  `toml:"shadow_margin_right"`
	ShadowMarginBottom int  `toml:"shadow_margin_bottom"`

	CornerRadius   *float64 `toml:"corner_radius"`
	CornerRadiusTL float64  `toml:"corner_radius_tl"`
	CornerRadiusTR float64  `toml:"corner_radius_tr"`
	CornerRadiusBR float64  `toml:"corner_radius_br"`
	CornerRadiusBL float64  `toml:"corner_radius_bl"`

	Foreground              string `toml:"foreground"`
	ForegroundGravity       string `toml:"foreground_gravity"`
	ForegroundDrawInPadding *bool  `toml:"foreground_draw_in_padding"`

	Padding int `toml:"padding"`
}

// DefaultAttributes returns the attribute values used when a key is absent.
func DefaultAttributes() Attributes {
	return Attributes{
		ShadowColor:       FormatColor(DefaultShadowColor),
		ForegroundColor:   FormatColor(DefaultForegroundColor),
		BackgroundColor:   FormatColor(DefaultBackgroundColor),
		ShadowDy:          1,
		ForegroundGravity: "fill",
	}
}

// DecodeAttributes reads TOML attributes from r on top of the defaults.
func DecodeAttributes(r io.Reader) (Attributes, error) {
	a := DefaultAttributes()
	if _, err := toml.NewDecoder(r).Decode(&a); err != nil {
		return Attributes{}, fmt.Errorf("shadowlayout: decode attributes: %w", err)
	}
	return a, nil
}

// LoadAttributes reads TOML attributes from a file.
func LoadAttributes(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, fmt.Errorf("shadowlayout: load attributes: %w", err)
	}
	return DecodeAttributes(bytes.NewReader(data))
}

// DrawableResolver turns a foreground resource name into a drawable.
type DrawableResolver interface {
	Drawable(name string) (Drawable, error)
}

// DrawableResolverFunc adapts a function to DrawableResolver.
type DrawableResolverFunc func(name string) (Drawable, error)

// Drawable calls f(name).
func (f DrawableResolverFunc) Drawable(name string) (Drawable, error) { return f(name) }

// NewFromAttributes creates a Container configured by a. Options are applied
// after the attributes, so they can override them. The resolver may be nil
// when a.Foreground is empty.
func NewFromAttributes(a Attributes, resolver DrawableResolver, opts ...Option) (*Container, error) {
	c := New()
	if err := a.applyTo(c, resolver); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (a Attributes) applyTo(c *Container, resolver DrawableResolver) error {
	shadowColor, err := ParseColor(a.ShadowColor)
	if err != nil {
		return fmt.Errorf("shadowlayout: shadow_color: %w", err)
	}
	foregroundColor, err := ParseColor(a.ForegroundColor)
	if err != nil {
		return fmt.Errorf("shadowlayout: foreground_color: %w", err)
	}
	backgroundColor, err := ParseColor(a.BackgroundColor)
	if err != nil {
		return fmt.Errorf("shadowlayout: background_color: %w", err)
	}
	gravity, err := ParseGravity(a.ForegroundGravity)
	if err != nil {
		return fmt.Errorf("shadowlayout: foreground_gravity: %w", err)
	}

	c.shadow = ShadowStyle{
		Radius:  nonNegative(a.ShadowRadius),
		OffsetX: finite(a.ShadowDx),
		OffsetY: finite(a.ShadowDy),
		Color:   shadowColor,
	}
	c.foregroundColor = foregroundColor
	c.backgroundColor = backgroundColor
	c.padding = UniformInsets(a.Padding).clamped()

	c.margins = Insets{
		Left:   a.ShadowMarginLeft,
		Top:    a.ShadowMarginTop,
		Right:  a.ShadowMarginRight,
		Bottom: a.ShadowMarginBottom,
	}.clamped()
	if a.ShadowMargin != nil {
		c.SetUniformShadowMargin(UniformOf(*a.ShadowMargin))
	}

	c.radii = CornerRadii{
		TopLeft:     a.CornerRadiusTL,
		TopRight:    a.CornerRadiusTR,
		BottomRight: a.CornerRadiusBR,
		BottomLeft:  a.CornerRadiusBL,
	}.Sanitize()
	if a.CornerRadius != nil {
		c.SetUniformCornerRadius(UniformOf(*a.CornerRadius))
	}

	if a.ForegroundDrawInPadding != nil {
		c.foregroundDrawInPadding = *a.ForegroundDrawInPadding
	}
	c.SetForegroundGravity(gravity)

	if a.Foreground != "" {
		if resolver == nil {
			return fmt.Errorf("%w: %q (no resolver)", ErrUnknownDrawable, a.Foreground)
		}
		d, err := resolver.Drawable(a.Foreground)
		if err != nil {
			return fmt.Errorf("shadowlayout: foreground %q: %w", a.Foreground, err)
		}
		c.SetForeground(d)
	}
	return nil
}
