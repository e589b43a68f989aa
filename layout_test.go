package shadowlayout

import "testing"

func TestLayoutInsideMargins(t *testing.T) {
	child := newFakeNode(MatchParent, MatchParent)
	c := New(WithChild(child), WithShadowMargins(UniformInsets(8)))

	c.Measure(Exactly(200), Exactly(100))
	c.Layout(Rect{Right: 200, Bottom: 100})

	want := Rect{Left: 8, Top: 8, Right: 192, Bottom: 92}
	if got := child.lastLayout(); got != want {
		t.Errorf("child bounds = %+v, want %+v", got, want)
	}
}

func TestLayoutGravity(t *testing.T) {
	margins := Insets{Left: 2, Top: 4, Right: 6, Bottom: 8}
	tests := []struct {
		name    string
		gravity Gravity
		dir     LayoutDirection
		want    Rect
	}{
		{"default", NoGravity, LeftToRight, Rect{Left: 3, Top: 5, Right: 23, Bottom: 15}},
		{"default rtl", NoGravity, RightToLeft, Rect{Left: 72, Top: 5, Right: 92, Bottom: 15}},
		{"end", GravityEnd | GravityTop, LeftToRight, Rect{Left: 72, Top: 5, Right: 92, Bottom: 15}},
		{"right bottom", GravityRight | GravityBottom, LeftToRight, Rect{Left: 72, Top: 41, Right: 92, Bottom: 51}},
		// (98-1-20)/2 + 1 + 2 - 6 = 35; (59-1-10)/2 + 1 + 4 - 8 = 21
		{"center", GravityCenter, LeftToRight, Rect{Left: 35, Top: 21, Right: 55, Bottom: 31}},
		{"left", GravityLeft, RightToLeft, Rect{Left: 3, Top: 5, Right: 23, Bottom: 15}},
		{"center beats right", GravityCenterHorizontal | GravityRight | GravityTop, LeftToRight, Rect{Left: 35, Top: 5, Right: 55, Bottom: 15}},
		{"center beats bottom", GravityLeft | GravityCenterVertical | GravityBottom, LeftToRight, Rect{Left: 3, Top: 21, Right: 23, Bottom: 31}},
		{"right with fill bit", GravityRight | GravityFillHorizontal, LeftToRight, Rect{Left: 72, Top: 5, Right: 92, Bottom: 15}},
		{"bottom with fill bit", GravityBottom | GravityFillVertical, LeftToRight, Rect{Left: 3, Top: 41, Right: 23, Bottom: 51}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := newFakeNode(WrapContent, WrapContent)
			child.content = Size{Width: 20, Height: 10}
			child.params.Gravity = tt.gravity
			c := New(
				WithChild(child),
				WithShadowMargins(margins),
				WithPadding(UniformInsets(1)),
				WithLayoutDirection(tt.dir),
			)
			c.Measure(Exactly(99), Exactly(60))
			c.Layout(Rect{Right: 99, Bottom: 60})

			if got := child.lastLayout(); got != tt.want {
				t.Errorf("child bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayoutForceLeft(t *testing.T) {
	child := newFakeNode(WrapContent, WrapContent)
	child.content = Size{Width: 20, Height: 10}
	child.params.Gravity = GravityRight | GravityBottom
	c := New(WithChild(child), WithShadowMargins(UniformInsets(5)))
	c.Measure(Exactly(100), Exactly(50))

	c.layoutChild(Rect{Right: 100, Bottom: 50}, true)

	want := Rect{Left: 0, Top: 35, Right: 20, Bottom: 45}
	if got := child.lastLayout(); got != want {
		t.Errorf("child bounds = %+v, want %+v", got, want)
	}
}

func TestLayoutSkipsGoneChild(t *testing.T) {
	child := newFakeNode(MatchParent, MatchParent)
	child.visibility = Gone
	c := New(WithChild(child))
	c.Measure(Exactly(10), Exactly(10))
	c.Layout(Rect{Right: 10, Bottom: 10})
	if len(child.laidOut) != 0 {
		t.Error("Gone child was laid out")
	}
}

func TestLayoutMarksForegroundDirty(t *testing.T) {
	c := New()
	if c.ForegroundBoundsDirty() {
		t.Fatal("new container is dirty")
	}
	c.Measure(Exactly(50), Exactly(50))
	c.Layout(Rect{Right: 50, Bottom: 50})
	if !c.ForegroundBoundsDirty() {
		t.Error("first layout did not mark foreground bounds")
	}

	c.foregroundBoundsChanged = false
	c.Layout(Rect{Right: 50, Bottom: 50})
	if c.ForegroundBoundsDirty() {
		t.Error("identical layout marked foreground bounds")
	}

	c.Layout(Rect{Left: 10, Right: 60, Bottom: 50})
	if !c.ForegroundBoundsDirty() {
		t.Error("moving the container did not mark foreground bounds")
	}
}
