package fractal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/fractal/internal/parallel"
)

var (
	// ErrInvalidSize is returned by NewRenderer for non-positive dimensions.
	ErrInvalidSize = errors.New("fractal: invalid output size")

	// ErrFrameSize is returned by Render when the frame does not match the
	// renderer dimensions.
	ErrFrameSize = errors.New("fractal: frame size mismatch")

	// ErrClosed is returned by Render after Close.
	ErrClosed = errors.New("fractal: renderer closed")
)

// Stats describes the renderer and its most recent dispatch.
type Stats struct {
	Workers   int
	Blocks    int
	BlockSize int
	Frames    uint64
	Last      time.Duration
}

// Renderer evaluates a fractal over every pixel of a fixed-size output.
//
// The output is partitioned into square blocks and the blocks are run on a
// worker pool. Render is a dispatch-and-wait call: it returns once every
// block has written its pixels.
//
// Render and Close are safe for concurrent use; concurrent Render calls are
// serialized.
type Renderer struct {
	width, height int
	base          float64

	grid   *parallel.BlockGrid
	blocks []parallel.Block
	pool   *parallel.WorkerPool

	mu     sync.Mutex
	closed bool
	stats  Stats

	// job holds the parameters of the frame being rendered. It is written
	// under mu before dispatch and only read by the workers.
	job      frameJob
	runBlock func(i int)
}

type frameJob struct {
	frame          *Frame
	worldW, worldH float64
	center         Point
	fractal        Fractal
	maxIter        int
}

// NewRenderer creates a renderer for width×height outputs.
func NewRenderer(width, height int, opts ...RendererOption) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid := parallel.NewBlockGrid(width, height, o.blockSize)
	r := &Renderer{
		width:  width,
		height: height,
		base:   o.base,
		grid:   grid,
		blocks: grid.Blocks(),
		pool:   parallel.NewWorkerPool(o.workers),
	}
	r.runBlock = r.renderBlock
	r.stats = Stats{
		Workers:   r.pool.Workers(),
		Blocks:    grid.Len(),
		BlockSize: grid.BlockSize(),
	}

	cols, rows := grid.Dims()
	Logger().Info("fractal: renderer created",
		"width", width, "height", height,
		"block", fmt.Sprintf("%dx%d", o.blockSize, o.blockSize),
		"grid", fmt.Sprintf("%dx%d", cols, rows),
		"workers", r.pool.Workers())

	return r, nil
}

// Size returns the output dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Grid returns the block partition used for dispatch.
func (r *Renderer) Grid() *parallel.BlockGrid {
	return r.grid
}

// Render writes view of fr into f, evaluating each point with a budget of
// maxIter iterations.
func (r *Renderer) Render(f *Frame, view Viewport, fr Fractal, maxIter int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if f == nil || f.width != r.width || f.height != r.height {
		return fmt.Errorf("%w: got %s, want %dx%d", ErrFrameSize, frameDims(f), r.width, r.height)
	}

	worldW, worldH := view.WorldSize(r.width, r.height, r.base)
	start := time.Now()

	r.job = frameJob{
		frame:   f,
		worldW:  worldW,
		worldH:  worldH,
		center:  view.Center,
		fractal: fr,
		maxIter: maxIter,
	}
	r.pool.ForEach(len(r.blocks), r.runBlock)
	r.job.frame = nil

	r.stats.Frames++
	r.stats.Last = time.Since(start)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("fractal: frame rendered",
			"fractal", fr.Kind, "zoom", view.Zoom, "iterations", maxIter,
			"elapsed", r.stats.Last)
	}

	return nil
}

// renderBlock fills the pixels of block bi. Blocks never overlap.
func (r *Renderer) renderBlock(bi int) {
	b, job := r.blocks[bi], &r.job
	for j := b.MinY; j < b.MaxY; j++ {
		row := j * r.width
		for i := b.MinX; i < b.MaxX; i++ {
			p := MapPixel(i, j, r.width, r.height, job.worldW, job.worldH, job.center)
			job.frame.set(row+i, Colorize(job.fractal.Escape(p, job.maxIter)))
		}
	}
}

// Stats returns the renderer configuration and last dispatch timing.
func (r *Renderer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Close stops the worker pool. Close is safe to call multiple times.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.pool.Close()
}

func frameDims(f *Frame) string {
	if f == nil {
		return "nil frame"
	}
	return fmt.Sprintf("%dx%d", f.width, f.height)
}
