package shape

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRoundedRect_ZeroRadiiIsRectangle(t *testing.T) {
	p := RoundedRect(10, 20, 110, 70, Radii{})

	want := []PathElement{
		MoveTo{Point: Pt(10, 20)},
		LineTo{Point: Pt(110, 20)},
		LineTo{Point: Pt(110, 70)},
		LineTo{Point: Pt(10, 70)},
		LineTo{Point: Pt(10, 20)},
		Close{},
	}
	got := p.Elements()
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %#v, want %#v", i, got[i], want[i])
		}
	}
	if len(p.Arcs()) != 0 {
		t.Errorf("expected no arcs, got %d", len(p.Arcs()))
	}
}

func TestRoundedRect_Degenerate(t *testing.T) {
	tests := []struct {
		name                     string
		left, top, right, bottom float64
	}{
		{"zero width", 10, 10, 10, 50},
		{"zero height", 10, 10, 50, 10},
		{"inverted", 50, 50, 10, 10},
		{"nan", math.NaN(), 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RoundedRect(tt.left, tt.top, tt.right, tt.bottom, UniformRadii(4))
			if !p.IsEmpty() {
				t.Errorf("expected empty path, got %d elements", p.Len())
			}
		})
	}
}

func TestRoundedRect_ContainedInBounds(t *testing.T) {
	radii := []Radii{
		{},
		UniformRadii(1),
		UniformRadii(16),
		UniformRadii(50),
		UniformRadii(1000),
		{TopLeft: 90, TopRight: 0, BottomRight: 30, BottomLeft: 5},
		{TopLeft: -5, TopRight: math.NaN(), BottomRight: 12, BottomLeft: 400},
		{TopLeft: math.Inf(1), TopRight: 16, BottomRight: 16, BottomLeft: 16},
		{TopLeft: 1e308, TopRight: 1e308},
		UniformRadii(math.MaxFloat64),
	}
	sizes := [][4]float64{
		{0, 0, 100, 100},
		{8, 8, 192, 92},
		{-20, 5, 3, 400},
		{0, 0, 0.5, 0.25},
	}
	for _, r := range radii {
		for _, s := range sizes {
			p := RoundedRect(s[0], s[1], s[2], s[3], r)
			if !p.IsClosed() {
				t.Fatalf("radii %+v size %v: path not closed", r, s)
			}
			b := p.Bounds()
			if b.Left < s[0]-eps || b.Top < s[1]-eps || b.Right > s[2]+eps || b.Bottom > s[3]+eps {
				t.Errorf("radii %+v size %v: bounds %+v escape rectangle", r, s, b)
			}
			for _, poly := range p.Flatten(0.01) {
				for _, pt := range poly {
					if pt.X < s[0]-eps || pt.X > s[2]+eps || pt.Y < s[1]-eps || pt.Y > s[3]+eps {
						t.Fatalf("radii %+v size %v: point %+v outside rectangle", r, s, pt)
					}
				}
			}
		}
	}
}

func TestRoundedRect_UniformThenSharpCorner(t *testing.T) {
	radii := UniformRadii(16)
	p := RoundedRect(0, 0, 100, 100, radii)

	arcs := p.Arcs()
	if len(arcs) != 4 {
		t.Fatalf("expected 4 arcs, got %d", len(arcs))
	}
	for _, c := range []Corner{TopLeft, TopRight, BottomRight, BottomLeft} {
		if got := CornerRadius(p, c); got != 16 {
			t.Errorf("%v radius = %v, want 16", c, got)
		}
	}

	radii.TopLeft = 0
	p = RoundedRect(0, 0, 100, 100, radii)
	if len(p.Arcs()) != 3 {
		t.Fatalf("expected 3 arcs, got %d", len(p.Arcs()))
	}
	if got := CornerRadius(p, TopLeft); got != 0 {
		t.Errorf("top-left radius = %v, want 0", got)
	}
	for _, c := range []Corner{TopRight, BottomRight, BottomLeft} {
		if got := CornerRadius(p, c); got != 16 {
			t.Errorf("%v radius = %v, want 16", c, got)
		}
	}
	// The top-left vertex must be an exact right angle.
	if first := p.Elements()[0].(MoveTo).Point; first != Pt(0, 0) {
		t.Errorf("outline starts at %+v, want the sharp corner (0,0)", first)
	}
}

func TestRoundedRect_OversizedRadiiScale(t *testing.T) {
	p := RoundedRect(0, 0, 100, 40, UniformRadii(50))
	for _, c := range []Corner{TopLeft, TopRight, BottomRight, BottomLeft} {
		if got := CornerRadius(p, c); math.Abs(got-20) > eps {
			t.Errorf("%v radius = %v, want 20", c, got)
		}
	}
}

func TestRoundedRect_NegativeRadiusIsSharp(t *testing.T) {
	p := RoundedRect(0, 0, 50, 50, Radii{TopLeft: -3, TopRight: 4})
	if got := CornerRadius(p, TopLeft); got != 0 {
		t.Errorf("top-left radius = %v, want 0", got)
	}
	if got := CornerRadius(p, TopRight); got != 4 {
		t.Errorf("top-right radius = %v, want 4", got)
	}
}

func TestRoundedRect_Contains(t *testing.T) {
	rounded := RoundedRect(0, 0, 100, 100, UniformRadii(16))
	sharp := RoundedRect(0, 0, 100, 100, Radii{})

	tests := []struct {
		name  string
		path  *Path
		pt    Point
		wants bool
	}{
		{"center", rounded, Pt(50, 50), true},
		{"edge middle", rounded, Pt(50, 1), true},
		{"rounded corner", rounded, Pt(1, 1), false},
		{"sharp corner", sharp, Pt(1, 1), true},
		{"outside", sharp, Pt(101, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Contains(tt.pt); got != tt.wants {
				t.Errorf("Contains(%+v) = %v, want %v", tt.pt, got, tt.wants)
			}
		})
	}
}

func TestRadiiFit(t *testing.T) {
	r := Radii{TopLeft: 60, TopRight: 60, BottomRight: 10, BottomLeft: 10}.Fit(100, 200)
	if math.Abs(r.TopLeft+r.TopRight-100) > eps {
		t.Errorf("top radii sum = %v, want 100", r.TopLeft+r.TopRight)
	}
	if math.Abs(r.BottomLeft-10*100.0/120) > eps {
		t.Errorf("bottom-left = %v, want uniformly scaled value", r.BottomLeft)
	}
}

func TestRadiiFitExtreme(t *testing.T) {
	tests := []struct {
		name string
		in   Radii
		want Radii
	}{
		{"infinite is sharp", Radii{TopLeft: math.Inf(1), TopRight: 16}, Radii{TopRight: 16}},
		{"huge pair rounds fully", Radii{TopLeft: 1e308, TopRight: 1e308}, Radii{TopLeft: 50, TopRight: 50}},
		{"max uniform", UniformRadii(math.MaxFloat64), UniformRadii(50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Fit(100, 100)
			if got != tt.want {
				t.Errorf("Fit() = %+v, want %+v", got, tt.want)
			}
		})
	}

	p := RoundedRect(0, 0, 100, 100, Radii{TopLeft: math.Inf(1), TopRight: 16, BottomRight: 16, BottomLeft: 16})
	if b := p.Bounds(); math.Abs(b.Left) > eps || math.Abs(b.Top) > eps || math.Abs(b.Right-100) > eps || math.Abs(b.Bottom-100) > eps {
		t.Errorf("bounds = %+v, want the full rectangle", b)
	}
	if n := len(p.Arcs()); n != 3 {
		t.Errorf("arcs = %d, want 3", n)
	}
}
