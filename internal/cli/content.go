package cli

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/shadowlayout"
)

// contentNode is the demo card body: a title bar over a few text-like
// lines. It wants a fixed content size and fills whatever it is given.
type contentNode struct {
	params  shadowlayout.LayoutParams
	content shadowlayout.Size
	accent  gg.RGBA
	bounds  shadowlayout.Rect
}

func newContentNode(params shadowlayout.LayoutParams, content shadowlayout.Size, accent gg.RGBA) *contentNode {
	return &contentNode{params: params, content: content, accent: accent}
}

func (n *contentNode) Measure(width, height shadowlayout.MeasureSpec) shadowlayout.MeasuredSize {
	var m shadowlayout.MeasuredSize
	m.Width, m.WidthState = shadowlayout.ResolveSizeAndState(n.content.Width, width, 0)
	m.Height, m.HeightState = shadowlayout.ResolveSizeAndState(n.content.Height, height, 0)
	return m
}

func (n *contentNode) Layout(bounds shadowlayout.Rect)         { n.bounds = bounds }
func (n *contentNode) LayoutParams() shadowlayout.LayoutParams { return n.params }
func (n *contentNode) Visibility() shadowlayout.Visibility     { return shadowlayout.Visible }

// draw paints the content in container coordinates.
func (n *contentNode) draw(dc *gg.Context) {
	b := n.bounds
	if b.IsEmpty() {
		return
	}
	x, y := float64(b.Left), float64(b.Top)
	w, h := float64(b.Width()), float64(b.Height())

	bar := min(h/4, 28)
	dc.SetRGBA(n.accent.R, n.accent.G, n.accent.B, n.accent.A)
	dc.DrawRectangle(x, y, w, bar)
	fill(dc, "title bar")

	const pad, line, gap = 12.0, 6.0, 10.0
	dc.SetRGBA(0, 0, 0, 0.12)
	for i, ly := 0, y+bar+pad; ly+line <= y+h-pad; i, ly = i+1, ly+line+gap {
		lw := w - 2*pad
		if i%3 == 2 {
			lw *= 0.6
		}
		if lw <= 0 {
			break
		}
		dc.DrawRectangle(x+pad, ly, lw, line)
		fill(dc, "content line")
	}
}

func fill(dc *gg.Context, what string) {
	if err := dc.Fill(); err != nil {
		shadowlayout.Logger().Warn("cli: fill failed", "part", what, "err", err)
	}
}
