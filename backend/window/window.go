// Package window shows the fractal viewer in an on-screen window using
// Ebitengine.
//
// The window is both the presentation surface and the input source of a
// viewer.Loop. Ebitengine owns the main loop: every Update captures input
// and steps the viewer loop, every Draw blits the last presented frame.
//
//	w := window.New(surface.Options{Width: 1920, Height: 1080})
//	loop, err := viewer.NewLoop(cfg, w, w)
//	...
//	err = w.Run(loop) // blocks until the user quits
//
// Importing the package registers the "window" surface backend. A window
// obtained from the registry is used the same way: it only shows frames
// once Run hands it the loop.
package window

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/input"
	"github.com/gogpu/fractal/internal/hud"
	"github.com/gogpu/fractal/surface"
	"github.com/gogpu/fractal/viewer"
)

// Option configures a Window.
type Option func(*Window)

// WithOverlay draws a status panel over the fractal.
func WithOverlay(o *hud.Overlay) Option {
	return func(w *Window) {
		w.overlay = o
	}
}

// WithWindowSize sets the on-screen window size. The fractal is still
// rendered at the output size and scaled to fit.
func WithWindowSize(width, height int) Option {
	return func(w *Window) {
		w.winW, w.winH = width, height
	}
}

// WithUpdateRate sets how many times per second Ebitengine calls Update.
// It should exceed the viewer's target rate so the pacer, not the
// window, limits the frame rate.
func WithUpdateRate(tps int) Option {
	return func(w *Window) {
		w.tps = tps
	}
}

// Window is an Ebitengine window implementing surface.Surface and
// input.Source.
type Window struct {
	width, height int
	winW, winH    int
	tps           int

	dev    devices
	events []input.Event

	mu        sync.Mutex
	pix       []byte
	pending   bool
	offscreen *ebiten.Image
	closed    bool

	overlay *hud.Overlay
	panel   *ebiten.Image
	status  bool

	loop *viewer.Loop
	now  func() time.Time
}

// New creates the window. Sizes are clamped to at least 1.
func New(opts surface.Options, wopts ...Option) *Window {
	width, height := max(opts.Width, 1), max(opts.Height, 1)
	w := &Window{
		width:  width,
		height: height,
		winW:   width,
		winH:   height,
		tps:    2 * ebiten.DefaultTPS,
		dev:    ebitenDevices{},
		pix:    make([]byte, width*height*4),
		now:    time.Now,
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if opts.Title != "" {
		ebiten.SetWindowTitle(opts.Title)
	}
	w.Apply(wopts...)
	return w
}

// Apply changes the window options. It is how callers holding a window
// created by the surface registry add an overlay or resize it. Call it
// before Run.
func (w *Window) Apply(wopts ...Option) {
	for _, opt := range wopts {
		opt(w)
	}
	ebiten.SetWindowSize(w.winW, w.winH)
	ebiten.SetTPS(w.tps)
}

// Size returns the output size.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Present copies f for the next Draw.
func (w *Window) Present(f *fractal.Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return surface.ErrClosed
	}
	if f.Width() != w.width || f.Height() != w.height {
		return fmt.Errorf("window: frame is %dx%d, window is %dx%d", f.Width(), f.Height(), w.width, w.height)
	}
	copy(w.pix, f.Data())
	w.pending = true
	return nil
}

// SetTitle sets the window title. The overlay, if any, is refreshed on
// the same schedule.
func (w *Window) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
	w.status = true
}

// Poll returns the input captured since the previous call.
func (w *Window) Poll() []input.Event {
	out := w.events
	w.events = nil
	return out
}

// Close releases the GPU images. Close is idempotent.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.offscreen != nil {
		w.offscreen.Deallocate()
	}
	if w.panel != nil {
		w.panel.Deallocate()
	}
	return nil
}

// Run shows the window and drives loop until the user quits. It must be
// called from the main goroutine. Frames presented to the window are only
// displayed while Run is active.
func (w *Window) Run(loop *viewer.Loop) error {
	w.loop = loop
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	w.events = capture(w.dev, w.events)

	if w.loop == nil {
		return nil
	}
	running, err := w.loop.Step(w.now())
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}

	if w.overlay != nil && w.status {
		w.refreshPanel()
	}
	w.status = false
	return nil
}

func (w *Window) refreshPanel() {
	img := w.overlay.Render(w.loop.Status())
	if w.panel != nil {
		w.panel.Deallocate()
	}
	w.panel = ebiten.NewImageFromImage(img)
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	if w.offscreen == nil {
		w.offscreen = ebiten.NewImage(w.width, w.height)
	}
	if w.pending {
		w.offscreen.WritePixels(w.pix)
		w.pending = false
	}
	w.mu.Unlock()

	screen.DrawImage(w.offscreen, nil)

	if w.panel != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w.panelScale(), w.panelScale())
		screen.DrawImage(w.panel, op)
	}
}

// panelScale keeps the panel readable when the window shows a large
// output shrunk to fit.
func (w *Window) panelScale() float64 {
	return math.Max(1, math.Floor(float64(w.width)/float64(w.winW)))
}

// Layout implements ebiten.Game. The logical screen is always the output
// size, so cursor positions are in output pixels.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

var (
	_ surface.Surface = (*Window)(nil)
	_ input.Source    = (*Window)(nil)
	_ ebiten.Game     = (*Window)(nil)
)
