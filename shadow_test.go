package shadowlayout

import "testing"

func TestEffectiveShadowRadius(t *testing.T) {
	tests := []struct {
		name       string
		configured float64
		margins    Insets
		want       float64
	}{
		{"clamped to uniform margin", 20, UniformInsets(8), 8},
		{"zero margins unclamped", 20, Insets{}, 20},
		{"below margin", 4, UniformInsets(8), 4},
		{"largest side wins", 20, Insets{Left: 2, Top: 12, Right: 3, Bottom: 0}, 12},
		{"equal to margin", 8, UniformInsets(8), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveShadowRadius(tt.configured, tt.margins); got != tt.want {
				t.Errorf("EffectiveShadowRadius(%v, %+v) = %v, want %v", tt.configured, tt.margins, got, tt.want)
			}
		})
	}
}

func TestShadowStyleVisible(t *testing.T) {
	s := ShadowStyle{Radius: 4, Color: DefaultShadowColor}
	if !s.Visible() {
		t.Error("expected visible shadow")
	}
	s.Radius = 0
	if s.Visible() {
		t.Error("zero radius shadow should not be visible")
	}
}
