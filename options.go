package fractal

import "github.com/gogpu/fractal/internal/parallel"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// One worker per CPU, 32×32 blocks
//	r, _ := fractal.NewRenderer(1920, 1080)
//
//	// Four workers, 64×64 blocks
//	r, _ := fractal.NewRenderer(1920, 1080,
//	    fractal.WithWorkers(4), fractal.WithBlockSize(64))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers   int
	blockSize int
	base      float64
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		workers:   0, // GOMAXPROCS
		blockSize: parallel.DefaultBlockSize,
		base:      BaseResolution,
	}
}

// WithWorkers sets the number of worker goroutines. Zero or a negative
// value uses GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithBlockSize sets the side length of the square work blocks in pixels.
// Non-positive values keep the default of 32.
func WithBlockSize(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.blockSize = n
		}
	}
}

// WithBaseResolution sets the output pixels per world unit at zoom 0.
// Non-positive values keep BaseResolution.
func WithBaseResolution(base float64) RendererOption {
	return func(o *rendererOptions) {
		if base > 0 {
			o.base = base
		}
	}
}
