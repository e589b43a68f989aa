package shadowlayout

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.ShadowColor() != DefaultShadowColor {
		t.Errorf("ShadowColor() = %v", c.ShadowColor())
	}
	if c.ForegroundColor() != DefaultForegroundColor {
		t.Errorf("ForegroundColor() = %v", c.ForegroundColor())
	}
	if c.BackgroundColor() != gg.White {
		t.Errorf("BackgroundColor() = %v", c.BackgroundColor())
	}
	if c.ShadowDx() != 0 || c.ShadowDy() != 1 || c.ShadowRadius() != 0 {
		t.Errorf("shadow = (%v, %v) r%v, want (0, 1) r0", c.ShadowDx(), c.ShadowDy(), c.ShadowRadius())
	}
	if c.ShadowMargins() != (Insets{}) || !c.CornerRadii().IsZero() {
		t.Error("new container has margins or radii")
	}
	if c.ForegroundGravity() != GravityFill || !c.ForegroundDrawInPadding() {
		t.Error("unexpected foreground placement defaults")
	}
	if lp := c.LayoutParams(); lp.Width != MatchParent || lp.Height != MatchParent {
		t.Errorf("LayoutParams() = %+v", lp)
	}
}

func TestUniformShadowMargin(t *testing.T) {
	c := New()
	c.SetShadowMargins(1, 2, 3, 4)

	c.SetUniformShadowMargin(UseIndividual[int]())
	if want := (Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}); c.ShadowMargins() != want {
		t.Errorf("UseIndividual changed margins to %+v", c.ShadowMargins())
	}
	c.SetUniformShadowMargin(UniformOf(-5))
	if want := (Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}); c.ShadowMargins() != want {
		t.Errorf("negative uniform changed margins to %+v", c.ShadowMargins())
	}

	c.SetUniformShadowMargin(UniformOf(6))
	if c.ShadowMargins() != UniformInsets(6) {
		t.Errorf("ShadowMargins() = %+v, want all 6", c.ShadowMargins())
	}
	c.SetShadowMarginTop(9)
	if want := (Insets{Left: 6, Top: 9, Right: 6, Bottom: 6}); c.ShadowMargins() != want {
		t.Errorf("ShadowMargins() = %+v, want %+v", c.ShadowMargins(), want)
	}
}

func TestUniformCornerRadius(t *testing.T) {
	c := New()
	c.SetCornerRadii(1, 2, 3, 4)

	c.SetUniformCornerRadius(UseIndividual[float64]())
	if want := (CornerRadii{TopLeft: 1, TopRight: 2, BottomRight: 3, BottomLeft: 4}); c.CornerRadii() != want {
		t.Errorf("UseIndividual changed radii to %+v", c.CornerRadii())
	}
	c.SetUniformCornerRadius(UniformOf(12.0))
	c.SetCornerRadiusBottomLeft(0)
	want := CornerRadii{TopLeft: 12, TopRight: 12, BottomRight: 12, BottomLeft: 0}
	if c.CornerRadii() != want {
		t.Errorf("CornerRadii() = %+v, want %+v", c.CornerRadii(), want)
	}
}

func TestSetterClamping(t *testing.T) {
	c := New()
	c.SetShadowMargins(-1, 2, -3, 4)
	if want := (Insets{Top: 2, Bottom: 4}); c.ShadowMargins() != want {
		t.Errorf("ShadowMargins() = %+v, want %+v", c.ShadowMargins(), want)
	}
	c.SetCornerRadii(-1, math.NaN(), 5, -0.5)
	if want := (CornerRadii{BottomRight: 5}); c.CornerRadii() != want {
		t.Errorf("CornerRadii() = %+v, want %+v", c.CornerRadii(), want)
	}
	c.SetCornerRadiusTopLeft(math.Inf(1))
	if got := c.CornerRadii().TopLeft; got != 0 {
		t.Errorf("infinite top-left radius stored as %v, want 0", got)
	}
	c.SetShadowRadius(-3)
	if c.ShadowRadius() != 0 {
		t.Errorf("ShadowRadius() = %v, want 0", c.ShadowRadius())
	}
	c.SetShadowDx(math.Inf(1))
	if c.ShadowDx() != 0 {
		t.Errorf("ShadowDx() = %v, want 0", c.ShadowDx())
	}
	c.SetPadding(Insets{Left: -2, Right: 3})
	if want := (Insets{Right: 3}); c.Padding() != want {
		t.Errorf("Padding() = %+v, want %+v", c.Padding(), want)
	}
}

func TestShadowRadiusEffective(t *testing.T) {
	c := New()
	c.SetShadowRadius(20)
	if c.ShadowRadius() != 20 {
		t.Errorf("without margins ShadowRadius() = %v, want 20", c.ShadowRadius())
	}
	c.SetShadowMargins(4, 8, 4, 6)
	if c.ShadowRadius() != 8 {
		t.Errorf("ShadowRadius() = %v, want 8", c.ShadowRadius())
	}
	c.SetShadowMargins(30, 30, 30, 30)
	if c.ShadowRadius() != 20 {
		t.Errorf("widening margins: ShadowRadius() = %v, want configured 20", c.ShadowRadius())
	}
	if s := c.ShadowStyle(); s.Radius != 20 {
		t.Errorf("ShadowStyle().Radius = %v", s.Radius)
	}
}

func TestSetterNotifications(t *testing.T) {
	tests := []struct {
		name   string
		set    func(c *Container)
		layout bool
	}{
		{"shadow color", func(c *Container) { c.SetShadowColor(gg.Black) }, false},
		{"background color", func(c *Container) { c.SetBackgroundColor(gg.Black) }, false},
		{"foreground color", func(c *Container) { c.SetForegroundColor(gg.Black) }, false},
		{"shadow radius", func(c *Container) { c.SetShadowRadius(3) }, false},
		{"shadow dx", func(c *Container) { c.SetShadowDx(3) }, false},
		{"shadow dy", func(c *Container) { c.SetShadowDy(3) }, false},
		{"shadow style", func(c *Container) { c.SetShadowStyle(ShadowStyle{Radius: 2}) }, false},
		{"corner radii", func(c *Container) { c.SetCornerRadii(1, 1, 1, 1) }, false},
		{"corner top left", func(c *Container) { c.SetCornerRadiusTopLeft(2) }, false},
		{"uniform corner", func(c *Container) { c.SetUniformCornerRadius(UniformOf(3.0)) }, false},
		{"draw in padding", func(c *Container) { c.SetForegroundDrawInPadding(false) }, false},
		{"shadow margins", func(c *Container) { c.SetShadowMargins(1, 1, 1, 1) }, true},
		{"shadow margin left", func(c *Container) { c.SetShadowMarginLeft(2) }, true},
		{"shadow margin bottom", func(c *Container) { c.SetShadowMarginBottom(2) }, true},
		{"uniform margin", func(c *Container) { c.SetUniformShadowMargin(UniformOf(2)) }, true},
		{"padding", func(c *Container) { c.SetPadding(UniformInsets(1)) }, true},
		{"minimum size", func(c *Container) { c.SetMinimumSize(Size{Width: 1}) }, true},
		{"child", func(c *Container) { c.SetChild(newFakeNode(1, 1)) }, true},
		{"layout params", func(c *Container) { c.SetLayoutParams(LayoutParams{}) }, true},
		{"layout direction", func(c *Container) { c.SetLayoutDirection(RightToLeft) }, true},
		{"foreground", func(c *Container) { c.SetForeground(&fakeDrawable{}) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &countingHost{}
			c := New(WithHost(host))
			tt.set(c)
			if host.invalidations == 0 {
				t.Error("setter did not invalidate")
			}
			if got := host.layouts > 0; got != tt.layout {
				t.Errorf("requested layout = %v, want %v", got, tt.layout)
			}
		})
	}
}

func TestUniformUseIndividualNoop(t *testing.T) {
	host := &countingHost{}
	c := New(WithHost(host))
	c.SetUniformShadowMargin(UseIndividual[int]())
	c.SetUniformCornerRadius(UseIndividual[float64]())
	if host.invalidations != 0 || host.layouts != 0 {
		t.Errorf("UseIndividual notified the host (%d, %d)", host.invalidations, host.layouts)
	}
}

func TestWithHostNil(t *testing.T) {
	c := New(WithHost(nil))
	c.SetShadowColor(gg.Black)
}
