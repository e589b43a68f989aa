package shadowlayout

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/shadowlayout/shape"
)

// fakeNode measures to its requested dimension, or to the spec size for
// MatchParent and WrapContent.
type fakeNode struct {
	params     LayoutParams
	visibility Visibility
	content    Size // used for WrapContent

	widthSpecs  []MeasureSpec
	heightSpecs []MeasureSpec
	laidOut     []Rect
}

func newFakeNode(w, h Dimension) *fakeNode {
	return &fakeNode{params: LayoutParams{Width: w, Height: h}}
}

func (n *fakeNode) Measure(width, height MeasureSpec) MeasuredSize {
	n.widthSpecs = append(n.widthSpecs, width)
	n.heightSpecs = append(n.heightSpecs, height)
	var out MeasuredSize
	out.Width, out.WidthState = ResolveSizeAndState(n.content.Width, width, 0)
	out.Height, out.HeightState = ResolveSizeAndState(n.content.Height, height, 0)
	return out
}

func (n *fakeNode) Layout(bounds Rect)         { n.laidOut = append(n.laidOut, bounds) }
func (n *fakeNode) LayoutParams() LayoutParams { return n.params }
func (n *fakeNode) Visibility() Visibility     { return n.visibility }

func (n *fakeNode) lastLayout() Rect {
	if len(n.laidOut) == 0 {
		return Rect{}
	}
	return n.laidOut[len(n.laidOut)-1]
}

type countingHost struct {
	layouts       int
	invalidations int
}

func (h *countingHost) RequestLayout() { h.layouts++ }
func (h *countingHost) Invalidate()    { h.invalidations++ }

func (h *countingHost) reset() { *h = countingHost{} }

// recordingRenderer logs every call by name.
type recordingRenderer struct {
	calls    []string
	fills    []Paint
	outlines []*shape.Path
	overlays []Rect
}

func (r *recordingRenderer) FillPath(p *shape.Path, paint Paint) {
	r.calls = append(r.calls, "fill")
	r.fills = append(r.fills, paint)
	r.outlines = append(r.outlines, p)
}

func (r *recordingRenderer) ClipTo(*shape.Path) { r.calls = append(r.calls, "clip") }
func (r *recordingRenderer) DrawChildren()      { r.calls = append(r.calls, "children") }

func (r *recordingRenderer) DrawOverlay(_ Drawable, bounds Rect) {
	r.calls = append(r.calls, "overlay")
	r.overlays = append(r.overlays, bounds)
}

// fakeDrawable is a plain drawable with a fixed intrinsic size.
type fakeDrawable struct {
	DrawableBase
	intrinsic Size
	minimum   Size

	setBounds   int
	filterColor gg.RGBA
	filterMode  FilterMode
	filtered    bool
	hotspot     shape.Point
	jumped      bool
}

func (d *fakeDrawable) IntrinsicSize() (int, int) { return d.intrinsic.Width, d.intrinsic.Height }
func (d *fakeDrawable) MinimumSize() (int, int)   { return d.minimum.Width, d.minimum.Height }

func (d *fakeDrawable) SetBounds(r Rect) {
	d.setBounds++
	d.DrawableBase.SetBounds(r)
}

func (d *fakeDrawable) SetColorFilter(c gg.RGBA, mode FilterMode) {
	d.filterColor, d.filterMode, d.filtered = c, mode, true
}

func (d *fakeDrawable) SetHotspot(x, y float64) { d.hotspot = shape.Pt(x, y) }
func (d *fakeDrawable) JumpToCurrentState()     { d.jumped = true }

// rippleDrawable supports tinting and state.
type rippleDrawable struct {
	fakeDrawable
	tint    gg.RGBA
	tinted  bool
	states  []State
	changes int
}

func (d *rippleDrawable) SetTint(c gg.RGBA) { d.tint, d.tinted = c, true }
func (d *rippleDrawable) IsStateful() bool  { return true }

func (d *rippleDrawable) SetState(states []State) bool {
	if slices.Equal(d.states, states) {
		return false
	}
	d.states = slices.Clone(states)
	d.changes++
	return true
}
