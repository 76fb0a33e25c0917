// Command fractal is an interactive Mandelbrot and Julia set viewer.
//
// Controls in the window:
//
//	left click     zoom in on the pointer
//	right click    zoom out
//	middle click   recenter on the pointer
//	keypad + / -   double / halve the iteration budget
//	M              Mandelbrot (restores the last Mandelbrot view)
//	J              Julia set for the last Mandelbrot center
//	Esc            quit
//
// With -backend headless the viewer runs without a display, driven by
// -script, and can save the final frame with -out:
//
//	fractal -backend headless -script "l:1400,300 l:960,540 j" -out julia.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/language"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/backend/window"
	"github.com/gogpu/fractal/input"
	"github.com/gogpu/fractal/internal/hud"
	"github.com/gogpu/fractal/surface"
	"github.com/gogpu/fractal/viewer"
)

type options struct {
	width, height int
	uhd           bool
	rate          float64
	iterations    int
	workers       int
	block         int
	backend       string
	frames        int
	script        string
	out           string
	hud           bool
	lang          string
	verbose       bool
}

func main() {
	var o options
	flag.IntVar(&o.width, "width", viewer.FHDWidth, "output width in pixels")
	flag.IntVar(&o.height, "height", viewer.FHDHeight, "output height in pixels")
	flag.BoolVar(&o.uhd, "uhd", false, "render at 3840x2160")
	flag.Float64Var(&o.rate, "rate", 100, "frame rate limit in Hz")
	flag.IntVar(&o.iterations, "iterations", 1024, "initial iteration budget")
	flag.IntVar(&o.workers, "workers", 0, "render goroutines (0 = GOMAXPROCS)")
	flag.IntVar(&o.block, "block", 32, "render block size in pixels")
	flag.StringVar(&o.backend, "backend", "", "surface backend: window or headless (default: best available)")
	flag.IntVar(&o.frames, "frames", 0, "headless: stop after this many ticks (0 = when the script ends)")
	flag.StringVar(&o.script, "script", "", "headless: input script, e.g. \"l:960,540 + j esc\"")
	flag.StringVar(&o.out, "out", "", "headless: write the final frame to this PNG file")
	flag.BoolVar(&o.hud, "hud", false, "draw a status panel over the fractal")
	flag.StringVar(&o.lang, "lang", "en", "language for status panel numbers")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractal.SetLogger(logger)

	if err := run(o, logger); err != nil {
		logger.Error("fractal failed", "err", err)
		os.Exit(1)
	}
}

func run(o options, logger *slog.Logger) error {
	cfg := viewer.DefaultConfig().
		WithSize(o.width, o.height).
		WithTargetRate(o.rate).
		WithMaxIterations(o.iterations).
		WithWorkers(o.workers).
		WithBlockSize(o.block)
	if o.uhd {
		cfg = cfg.WithUHD()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var overlay *hud.Overlay
	if o.hud {
		tag, err := language.Parse(o.lang)
		if err != nil {
			return fmt.Errorf("-lang: %w", err)
		}
		overlay = hud.New(hud.WithLanguage(tag))
	}

	name, err := pickBackend(o.backend)
	if err != nil {
		return err
	}
	opts := surface.Options{Width: cfg.Width, Height: cfg.Height, Title: fractal.KindMandelbrot.String()}

	surf, err := surface.NewSurfaceByName(name, opts)
	if err != nil {
		return err
	}
	defer surf.Close()

	if w, ok := surf.(*window.Window); ok {
		w.Apply(windowOptions(cfg, overlay)...)
	}
	if r, ok := surf.(runner); ok {
		return runInteractive(cfg, surf, r, logger)
	}
	return runHeadless(cfg, surf, o, overlay, logger)
}

// runner is a surface that owns the main loop, such as an on-screen window.
// Such a surface displays nothing until it is handed the loop.
type runner interface {
	Run(loop *viewer.Loop) error
}

var _ runner = (*window.Window)(nil)

// pickBackend resolves the -backend flag against the registry.
func pickBackend(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	avail := surface.Available()
	if len(avail) == 0 {
		return "", surface.ErrNoBackend
	}
	return avail[0], nil
}

func windowOptions(cfg viewer.Config, overlay *hud.Overlay) []window.Option {
	wopts := []window.Option{window.WithUpdateRate(int(2 * cfg.TargetRate))}
	if overlay != nil {
		wopts = append(wopts, window.WithOverlay(overlay))
	}
	if cfg.Width > viewer.FHDWidth {
		wopts = append(wopts, window.WithWindowSize(cfg.Width/2, cfg.Height/2))
	}
	return wopts
}

// runInteractive hands the loop to a surface that drives it. Input comes
// from the surface when it is also a source.
func runInteractive(cfg viewer.Config, surf surface.Surface, r runner, logger *slog.Logger) error {
	src, _ := surf.(input.Source)
	loop, err := viewer.NewLoop(cfg, surf, src)
	if err != nil {
		return err
	}
	defer loop.Close()
	logGrid(logger, loop)

	return r.Run(loop)
}

func runHeadless(cfg viewer.Config, surf surface.Surface, o options, overlay *hud.Overlay, logger *slog.Logger) error {
	steps, err := input.Parse(o.script)
	if err != nil {
		return fmt.Errorf("-script: %w", err)
	}
	frames := o.frames
	if frames == 0 {
		// One extra tick draws the effect of the last step.
		frames = len(steps) + 1
	}

	script := input.NewScript(steps...)
	loop, err := viewer.NewLoop(cfg, surf, script, viewer.WithTickLimit(frames))
	if err != nil {
		return err
	}
	defer loop.Close()
	logGrid(logger, loop)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("headless run finished",
		"ticks", loop.Ticks(), "frames", loop.Frames(),
		"status", viewer.FormatStatus(loop.Status()))
	if n := script.Remaining(); n > 0 && !loop.State().Done() {
		logger.Warn("script not finished", "steps_left", n)
	}

	if o.out == "" {
		return nil
	}
	if err := savePNG(o.out, loop, overlay); err != nil {
		return fmt.Errorf("save %s: %w", o.out, err)
	}
	logger.Info("frame saved", "path", o.out)
	return nil
}

func savePNG(path string, loop *viewer.Loop, overlay *hud.Overlay) error {
	if overlay == nil {
		return loop.Frame().SavePNG(path)
	}

	img := loop.Frame().ToImage()
	overlay.DrawOnto(img, loop.Status())

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func logGrid(logger *slog.Logger, loop *viewer.Loop) {
	g := loop.Renderer().Grid()
	cols, rows := g.Dims()
	s := loop.Renderer().Stats()
	logger.Info("render grid",
		"threads_per_block", fmt.Sprintf("(%d, %d)", g.BlockSize(), g.BlockSize()),
		"blocks_per_grid", fmt.Sprintf("(%d, %d)", cols, rows),
		"workers", s.Workers)
}
