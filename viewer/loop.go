package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/input"
	"github.com/gogpu/fractal/surface"
)

// LoopOption configures a Loop during creation.
type LoopOption func(*loopOptions)

type loopOptions struct {
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
	tickLimit int
}

func defaultLoopOptions() loopOptions {
	return loopOptions{
		now:   time.Now,
		sleep: sleepContext,
	}
}

// WithClock sets the time source used by Run.
func WithClock(now func() time.Time) LoopOption {
	return func(o *loopOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSleep sets how Run waits between ticks.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) LoopOption {
	return func(o *loopOptions) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}

// WithTickLimit makes Run return after n ticks. Zero means no limit.
func WithTickLimit(n int) LoopOption {
	return func(o *loopOptions) {
		o.tickLimit = max(n, 0)
	}
}

// Loop is the render loop. Each tick it refreshes the status title when due,
// renders and presents a frame if the view changed, then applies pending
// input. Frames are only computed when something changed.
//
// A Loop is driven from a single goroutine.
type Loop struct {
	cfg  Config
	opts loopOptions

	state    *State
	pacer    *Pacer
	renderer *fractal.Renderer
	frame    *fractal.Frame

	surf surface.Surface
	src  input.Source

	ticks  int
	frames int
}

// NewLoop creates a loop rendering to surf and reading events from src.
// The surface size must match cfg.
func NewLoop(cfg Config, surf surface.Surface, src input.Source, opts ...LoopOption) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w, h := surf.Size(); w != cfg.Width || h != cfg.Height {
		return nil, fmt.Errorf("viewer: surface is %dx%d, config wants %dx%d", w, h, cfg.Width, cfg.Height)
	}

	if src == nil {
		src = input.SourceFunc(func() []input.Event { return nil })
	}

	o := defaultLoopOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r, err := fractal.NewRenderer(cfg.Width, cfg.Height,
		fractal.WithWorkers(cfg.Workers),
		fractal.WithBlockSize(cfg.BlockSize),
		fractal.WithBaseResolution(cfg.BaseResolution))
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	l := &Loop{
		cfg:      cfg,
		opts:     o,
		state:    NewState(cfg),
		pacer:    NewPacer(cfg.pacer(), o.now()),
		renderer: r,
		frame:    fractal.NewFrame(cfg.Width, cfg.Height),
		surf:     surf,
		src:      src,
	}
	surf.SetTitle(FormatStatus(l.Status()))
	return l, nil
}

// Step runs one iteration of the loop at time now. It reports false once
// the user asked to quit. Between ticks it does nothing.
func (l *Loop) Step(now time.Time) (running bool, err error) {
	if l.state.Done() {
		return false, nil
	}
	if !l.pacer.Tick(now) {
		return true, nil
	}
	l.ticks++

	if l.pacer.StatusDue() {
		l.surf.SetTitle(FormatStatus(l.Status()))
	}

	if l.state.Dirty() {
		if err := l.redraw(); err != nil {
			return false, err
		}
	}

	for _, ev := range l.src.Poll() {
		tr := l.state.Apply(ev)
		fractal.Logger().Debug("viewer: event", "event", ev, "transition", tr)
		if tr == Stop {
			break
		}
	}
	return !l.state.Done(), nil
}

func (l *Loop) redraw() error {
	err := l.renderer.Render(l.frame, l.state.View(), l.state.Fractal(), l.state.MaxIterations())
	if err != nil {
		return fmt.Errorf("viewer: render: %w", err)
	}
	l.state.Commit()
	l.frames++

	if err := l.surf.Present(l.frame); err != nil {
		fractal.Logger().Warn("viewer: present failed", "err", err)
	}
	return nil
}

// Run steps the loop until quit, the tick limit or ctx cancellation. It
// sleeps between ticks instead of spinning.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		running, err := l.Step(l.opts.now())
		if err != nil || !running {
			return err
		}
		if l.opts.tickLimit > 0 && l.ticks >= l.opts.tickLimit {
			return nil
		}

		if d := l.pacer.Wait(l.opts.now()); d > 0 {
			if err := l.opts.sleep(ctx, d); err != nil {
				return err
			}
		}
	}
}

// Status returns the current title information.
func (l *Loop) Status() Status {
	v := l.state.View()
	return Status{
		Kind:          l.state.Kind(),
		Rate:          l.pacer.Rate(),
		Zoom:          v.Zoom,
		MaxIterations: l.state.MaxIterations(),
		Center:        v.Center,
	}
}

// State returns the viewport state machine.
func (l *Loop) State() *State { return l.state }

// Frame returns the frame buffer. Its contents are the last rendered frame.
func (l *Loop) Frame() *fractal.Frame { return l.frame }

// Renderer returns the renderer.
func (l *Loop) Renderer() *fractal.Renderer { return l.renderer }

// Ticks returns the number of ticks so far.
func (l *Loop) Ticks() int { return l.ticks }

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() int { return l.frames }

// Close releases the renderer. The surface is owned by the caller.
func (l *Loop) Close() {
	l.renderer.Close()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
