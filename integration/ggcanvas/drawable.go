// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/shadowlayout"
	xdraw "golang.org/x/image/draw"
)

// Painter is implemented by drawables that can render themselves with gg.
// bounds is in canvas pixels.
type Painter interface {
	Paint(dc *gg.Context, bounds image.Rectangle)
}

// ColorDrawable fills its bounds with a flat color. It has no intrinsic
// size and stretches to whatever it is placed in.
//
// A tint replaces the color, so a container foreground color shows through
// as-is.
type ColorDrawable struct {
	shadowlayout.DrawableBase

	color  gg.RGBA
	tint   gg.RGBA
	tinted bool
}

var (
	_ shadowlayout.Drawable = (*ColorDrawable)(nil)
	_ shadowlayout.Tintable = (*ColorDrawable)(nil)
	_ Painter               = (*ColorDrawable)(nil)
)

// NewColorDrawable returns a drawable painting col.
func NewColorDrawable(col gg.RGBA) *ColorDrawable {
	return &ColorDrawable{color: col}
}

// IntrinsicSize reports no intrinsic size.
func (d *ColorDrawable) IntrinsicSize() (int, int) { return -1, -1 }

// MinimumSize reports zero.
func (d *ColorDrawable) MinimumSize() (int, int) { return 0, 0 }

// Color returns the color that will be painted.
func (d *ColorDrawable) Color() gg.RGBA {
	if d.tinted {
		return d.tint
	}
	return d.color
}

// SetColor changes the base color and asks for a repaint.
func (d *ColorDrawable) SetColor(col gg.RGBA) {
	d.color = col
	d.InvalidateSelf(d)
}

// SetTint implements shadowlayout.Tintable.
func (d *ColorDrawable) SetTint(col gg.RGBA) {
	d.tint, d.tinted = col, true
	d.InvalidateSelf(d)
}

// Paint fills bounds.
func (d *ColorDrawable) Paint(dc *gg.Context, bounds image.Rectangle) {
	if bounds.Empty() {
		return
	}
	setColor(dc, d.Color())
	dc.DrawRectangle(float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Dx()), float64(bounds.Dy()))
	if err := dc.Fill(); err != nil {
		shadowlayout.Logger().Warn("ggcanvas: color drawable fill failed", "err", err)
	}
}

// ImageDrawable paints a bitmap scaled to its bounds. Its intrinsic size is
// the bitmap size. A color filter is composited source-atop, so it only
// covers the bitmap's opaque pixels.
type ImageDrawable struct {
	shadowlayout.DrawableBase

	src       image.Image
	filter    gg.RGBA
	mode      shadowlayout.FilterMode
	hasFilter bool

	// cached scaled and filtered bitmap
	cache     *gg.ImageBuf
	cacheSize image.Point
}

var (
	_ shadowlayout.Drawable        = (*ImageDrawable)(nil)
	_ shadowlayout.ColorFilterable = (*ImageDrawable)(nil)
	_ Painter                      = (*ImageDrawable)(nil)
)

// NewImageDrawable wraps img.
func NewImageDrawable(img image.Image) *ImageDrawable {
	return &ImageDrawable{src: img}
}

// IntrinsicSize returns the bitmap size.
func (d *ImageDrawable) IntrinsicSize() (int, int) {
	b := d.src.Bounds()
	return b.Dx(), b.Dy()
}

// MinimumSize reports zero.
func (d *ImageDrawable) MinimumSize() (int, int) { return 0, 0 }

// SetColorFilter implements shadowlayout.ColorFilterable.
func (d *ImageDrawable) SetColorFilter(col gg.RGBA, mode shadowlayout.FilterMode) {
	d.filter, d.mode, d.hasFilter = col, mode, true
	d.cache = nil
	d.InvalidateSelf(d)
}

// Paint draws the bitmap scaled into bounds.
func (d *ImageDrawable) Paint(dc *gg.Context, bounds image.Rectangle) {
	if bounds.Empty() {
		return
	}
	if d.cache == nil || d.cacheSize != bounds.Size() {
		d.cache = gg.ImageBufFromImage(d.render(bounds.Size()))
		d.cacheSize = bounds.Size()
	}
	dc.DrawImage(d.cache, float64(bounds.Min.X), float64(bounds.Min.Y))
}

// render scales the bitmap to size and applies the color filter.
func (d *ImageDrawable) render(size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), d.src, d.src.Bounds(), xdraw.Over, nil)
	if d.hasFilter {
		applyFilter(dst, d.filter, d.mode)
	}
	return dst
}

// applyFilter composites col over img in place. img is premultiplied.
func applyFilter(img *image.RGBA, col gg.RGBA, mode shadowlayout.FilterMode) {
	fr, fg, fb, fa := col.R, col.G, col.B, col.A
	for i := 0; i+3 < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]
		a := float64(p[3]) / 255
		if a == 0 {
			continue
		}
		r, g, b := float64(p[0])/255, float64(p[1])/255, float64(p[2])/255
		switch mode {
		case shadowlayout.FilterMultiply:
			// Multiply inside the bitmap's coverage; alpha stays ab.
			r = r*fr*fa + r*(1-fa)
			g = g*fg*fa + g*(1-fa)
			b = b*fb*fa + b*(1-fa)
		default:
			// Source-atop: Cs*ab + Cb*(1-as); alpha stays ab.
			r = fr*fa*a + r*(1-fa)
			g = fg*fa*a + g*(1-fa)
			b = fb*fa*a + b*(1-fa)
		}
		p[0], p[1], p[2] = unit8(r, a), unit8(g, a), unit8(b, a)
	}
}

// unit8 converts a premultiplied component to a byte, never exceeding alpha.
func unit8(v, alpha float64) uint8 {
	v = min(max(v, 0), alpha)
	return uint8(v*255 + 0.5)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
