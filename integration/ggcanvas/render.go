// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/shadowlayout"
	"github.com/gogpu/shadowlayout/internal/blur"
	"github.com/gogpu/shadowlayout/shape"
)

// RenderOptions controls where and with what content a container is drawn.
type RenderOptions struct {
	// X, Y is the canvas position of the container's top-left corner.
	X, Y float64

	// UseBounds places the container at its laid-out bounds, ignoring X and Y.
	UseBounds bool

	// Children draws the container content. The context is translated to
	// container coordinates and clipped to the rounded outline.
	Children func(dc *gg.Context)
}

// Render draws ct into the canvas. The clip installed by the container is
// removed before Render returns.
func (c *Canvas) Render(ct *shadowlayout.Container, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if ct == nil {
		return ErrNilContainer
	}
	origin := shape.Pt(opts.X, opts.Y)
	if opts.UseBounds {
		b := ct.Bounds()
		origin = shape.Pt(float64(b.Left), float64(b.Top))
	}

	c.ctx.Push()
	defer c.ctx.Pop()
	ct.Draw(&renderer{canvas: c, origin: origin, children: opts.Children})
	return nil
}

// renderer adapts a Canvas to shadowlayout.Renderer for one Render call.
// Paths arrive in container coordinates and are shifted by origin.
type renderer struct {
	canvas   *Canvas
	origin   shape.Point
	children func(dc *gg.Context)
}

var _ shadowlayout.Renderer = (*renderer)(nil)

func (r *renderer) FillPath(p *shape.Path, paint shadowlayout.Paint) {
	if p.IsEmpty() {
		return
	}
	dc := r.canvas.ctx
	if paint.Shadow.Visible() {
		r.drawShadow(p, paint.Shadow)
	}
	setColor(dc, paint.Color)
	appendPath(dc, p, r.origin)
	if err := dc.Fill(); err != nil {
		shadowlayout.Logger().Warn("ggcanvas: fill failed", "err", err)
	}
}

func (r *renderer) ClipTo(p *shape.Path) {
	appendPath(r.canvas.ctx, p, r.origin)
	r.canvas.ctx.Clip()
}

func (r *renderer) DrawChildren() {
	if r.children == nil {
		return
	}
	dc := r.canvas.ctx
	dc.Push()
	dc.Translate(r.origin.X, r.origin.Y)
	r.children(dc)
	dc.Pop()
}

func (r *renderer) DrawOverlay(d shadowlayout.Drawable, bounds shadowlayout.Rect) {
	p, ok := d.(Painter)
	if !ok {
		shadowlayout.Logger().Debug("ggcanvas: overlay cannot paint itself", "type", typeName(d))
		return
	}
	ox, oy := int(math.Round(r.origin.X)), int(math.Round(r.origin.Y))
	p.Paint(r.canvas.ctx, image.Rect(bounds.Left+ox, bounds.Top+oy, bounds.Right+ox, bounds.Bottom+oy))
}

// drawShadow composites the blurred, offset silhouette of p.
func (r *renderer) drawShadow(p *shape.Path, s shadowlayout.ShadowStyle) {
	sigma := blur.Sigma(s.Radius)
	extent := float64(blur.Extent(sigma))

	b := p.Bounds()
	ox, oy := r.origin.X+s.OffsetX, r.origin.Y+s.OffsetY
	region := image.Rect(
		int(math.Floor(b.Left+ox-extent)), int(math.Floor(b.Top+oy-extent)),
		int(math.Ceil(b.Right+ox+extent)), int(math.Ceil(b.Bottom+oy+extent)),
	).Intersect(image.Rect(0, 0, r.canvas.width, r.canvas.height))
	if region.Empty() {
		return
	}

	mask := gg.NewContext(region.Dx(), region.Dy())
	defer func() { _ = mask.Close() }()
	mask.SetRGBA(0, 0, 0, 1)
	appendPath(mask, p, shape.Pt(ox-float64(region.Min.X), oy-float64(region.Min.Y)))
	if err := mask.Fill(); err != nil {
		shadowlayout.Logger().Warn("ggcanvas: shadow mask failed", "err", err)
		return
	}

	shadow := blur.Colorize(blur.Mask(blur.AlphaOf(mask.Image()), sigma), s.Color)
	dc := r.canvas.ctx
	dc.Push()
	dc.Identity()
	dc.DrawImage(gg.ImageBufFromImage(shadow), float64(region.Min.X), float64(region.Min.Y))
	dc.Pop()

	shadowlayout.Logger().Debug("ggcanvas: shadow",
		"radius", s.Radius, "sigma", sigma, "region", region.String())
}

// appendPath replays p into the current path of dc, shifted by offset.
// Arcs are emitted as cubic Beziers.
func appendPath(dc *gg.Context, p *shape.Path, offset shape.Point) {
	dc.ClearPath()
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case shape.MoveTo:
			pt := e.Point.Add(offset)
			dc.MoveTo(pt.X, pt.Y)
		case shape.LineTo:
			pt := e.Point.Add(offset)
			dc.LineTo(pt.X, pt.Y)
		case shape.ArcTo:
			for _, cb := range e.Cubics() {
				c1 := cb.Control1.Add(offset)
				c2 := cb.Control2.Add(offset)
				pt := cb.Point.Add(offset)
				dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			}
		case shape.Close:
			dc.ClosePath()
		}
	}
}

func setColor(dc *gg.Context, col gg.RGBA) {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
}
