// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpucanvas connects a rainbow drawing session to a gogpu window.
//
// The data flow is:
//
//	PointerEvent -> Input -> rainbow.Session -> Buffer -> Frame -> Texture -> Window
//
// # Input
//
// Input translates window events into session gestures:
//
//   - Left button: classic Bresenham line from the press point
//   - Right button: Wu anti-aliased line from the press point
//   - Middle button: circle of fixed radius following the pointer
//   - Space: clear the buffer
//   - Escape: call the quit callback
//
// Pointer positions are in logical window pixels. A Viewport maps them onto
// buffer cells when the window and the buffer differ in size.
//
// # Presentation
//
// TexturePresenter is a rainbow.Presenter that keeps one GPU texture per
// canvas. The first frame creates it, later frames upload into it, and every
// frame is drawn at the configured position:
//
//	p, _ := gpucanvas.NewTexturePresenter(dc.AsTextureDrawer())
//	canvas, _ := rainbow.NewCanvas(rainbow.WithPresenter(p))
//
// # Thread Safety
//
// Input and TexturePresenter are NOT safe for concurrent use. Deliver events
// and frames from the window's event loop.
//
// # Integration Without Circular Imports
//
// This package only depends on gpucontext interfaces, never on gogpu itself.
package gpucanvas
