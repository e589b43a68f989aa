// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas renders shadowlayout containers with gg.
//
// Canvas owns a gg.Context and implements the drawing side of a container:
//
//	container -> Renderer calls -> gg.Context (CPU pixmap) -> PNG / image.Image
//
// # Usage
//
//	canvas := ggcanvas.MustNew(320, 200)
//	defer canvas.Close()
//
//	card := shadowlayout.New(shadowlayout.WithShadowMargins(shadowlayout.UniformInsets(12)))
//	card.Measure(shadowlayout.Exactly(320), shadowlayout.Exactly(200))
//	card.Layout(shadowlayout.Rect{Right: 320, Bottom: 200})
//
//	err := canvas.Render(card, ggcanvas.RenderOptions{
//	    Children: func(dc *gg.Context) { /* draw the card content */ },
//	})
//
// # Shadows
//
// The shadow of a fill is rasterized into an offscreen coverage mask,
// blurred with a Gaussian and composited under the shape before the shape
// itself is filled. Only the region the blur can reach is rasterized.
//
// # Overlays
//
// Foreground drawables are painted when they implement Painter. ColorDrawable
// and ImageDrawable are provided.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package ggcanvas
