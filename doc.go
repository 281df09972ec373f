// Package rainbow paints pixel primitives onto an in-memory RGB buffer with
// classic integer scan conversion and a color-cycling "rainbow" ink.
//
// # Overview
//
// A [Canvas] owns a fixed-size [Buffer] of normalized float colors
// (512x512 white by default). Solid primitives, lines and circles, recolor
// every pixel they touch through a [Policy]; the default [RainbowPolicy]
// advances the pixel's hue by 20° each time it is painted, so strokes drawn
// over themselves or over earlier strokes cycle through the spectrum.
// Anti-aliased lines darken the pixels they cover instead.
//
// # Quick Start
//
//	c, err := rainbow.NewCanvas()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.DrawLine(image.Pt(10, 10), image.Pt(200, 80))
//	c.DrawWuLine(image.Pt(10, 40), image.Pt(200, 120))
//	c.DrawCircle(image.Pt(256, 256), 20)
//
// # Interaction
//
// A [Session] models the gesture that drives drawing: Begin captures an
// anchor, every Update redraws the primitive from that anchor to the live
// pointer position, End returns to idle. Package integration/gpucanvas wires
// a Session to gpucontext pointer and keyboard events and presents frames to
// a gpucontext texture.
//
// # Architecture
//
//   - raster: Bresenham, Wu and midpoint circle scan conversion
//   - rainbow: color model (HSV), buffer, policies, canvas, session,
//     presentation
//   - internal/color: 8-bit display encoding
//   - integration/gpucanvas: gpucontext event and texture adapters
//
// # Bounds
//
// Direct Buffer access outside the grid fails with a [*RangeError]. Draws
// follow the canvas [BoundsMode]: [BoundsClip] (default) drops samples that
// fall outside, [BoundsClamp] snaps them to the edge, [BoundsStrict] stops
// the draw with an error. Nothing ever wraps to a neighbouring row.
//
// # Logging
//
// rainbow is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog.Logger].
package rainbow
