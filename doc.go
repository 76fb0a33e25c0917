// Package fractal renders escape-time fractals into RGBA frames.
//
// # Overview
//
// A frame is produced in three steps for every pixel: the pixel is mapped
// into the complex plane around a viewport center, the point is iterated
// under z = z² + c until it escapes the radius-2 disk or the iteration budget
// runs out, and the escape count is turned into a color on a 1536-step hue
// wheel. Points that never escape are painted black.
//
// Two variants are supported. Mandelbrot starts from z0 = c = the point.
// Julia starts from z0 = the point and uses a fixed constant c.
//
// # Quick Start
//
//	r, err := fractal.NewRenderer(1920, 1080)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	f := fractal.NewFrame(1920, 1080)
//	view := fractal.Viewport{Zoom: -1}
//	if err := r.Render(f, view, fractal.Mandelbrot(), 1024); err != nil {
//		log.Fatal(err)
//	}
//
// # Parallelism
//
// The Renderer splits the output into square blocks (32×32 by default) and
// evaluates them on a worker pool. Render returns once every block has been
// written. Each pixel is written by exactly one block, so the result does not
// depend on scheduling.
//
// # Precision
//
// All arithmetic is float64. Deep zooms eventually run out of precision; no
// arbitrary-precision fallback is provided.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route diagnostics to
// a [log/slog] logger. Sub-packages share the same logger through [Logger].
package fractal
