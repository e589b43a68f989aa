// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrNilContainer is returned when Render is called without a container.
	ErrNilContainer = errors.New("ggcanvas: nil container")
)

// Canvas wraps a gg.Context that containers are rendered into.
type Canvas struct {
	ctx        *gg.Context
	width      int
	height     int
	background gg.RGBA
	closed     bool
}

// New creates a transparent Canvas of the given size.
//
// Returns error if dimensions are invalid.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:        gg.NewContext(width, height),
		width:      width,
		height:     height,
		background: gg.Transparent,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetBackground sets the color Clear fills the canvas with.
func (c *Canvas) SetBackground(col gg.RGBA) {
	c.background = col
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.ctx.ClearWithColor(c.background)
	return nil
}

// Image returns a snapshot of the canvas pixels.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Image() image.Image {
	if c.closed {
		return nil
	}
	return c.ctx.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("ggcanvas: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas as PNG to path.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("ggcanvas: save png: %w", err)
	}
	return nil
}

// Close releases all resources associated with the Canvas.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	return nil
}
