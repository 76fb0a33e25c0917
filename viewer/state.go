package viewer

import (
	"math"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/input"
)

// zoomStep is the zoom change of one pointer click: half a power of two.
const zoomStep = 0.5

// Transition reports what an event did to the state.
type Transition uint8

const (
	// Unchanged means the event had no effect on the picture.
	Unchanged Transition = iota

	// Redraw means the viewport changed and a new frame is needed.
	Redraw

	// Stop means the viewer should exit.
	Stop
)

func (t Transition) String() string {
	switch t {
	case Redraw:
		return "redraw"
	case Stop:
		return "stop"
	default:
		return "unchanged"
	}
}

// State is the viewport state machine.
//
// It holds the current view, the active variant, the shared iteration
// budget and the view last rendered in each variant. The Julia constant is
// the Mandelbrot center at the last Mandelbrot redraw, so picking a point in
// the Mandelbrot set and switching to Julia shows that point's Julia set.
//
// State is not safe for concurrent use; the render loop owns it.
type State struct {
	view          fractal.Viewport
	kind          fractal.Kind
	maxIterations int

	savedMandelbrot fractal.Viewport
	savedJulia      fractal.Viewport

	// home is the view Julia resets to.
	home fractal.Viewport

	outW, outH int
	base       float64

	dirty bool
	done  bool
}

// NewState returns the initial state for cfg: Mandelbrot, centered on the
// origin at cfg.Zoom, dirty so the first tick renders.
func NewState(cfg Config) *State {
	home := fractal.Viewport{Zoom: cfg.Zoom}
	return &State{
		view:            home,
		kind:            fractal.KindMandelbrot,
		maxIterations:   max(cfg.MaxIterations, 1),
		savedMandelbrot: home,
		savedJulia:      home,
		home:            home,
		outW:            cfg.Width,
		outH:            cfg.Height,
		base:            cfg.BaseResolution,
		dirty:           true,
	}
}

// Apply updates the state for one event.
func (s *State) Apply(ev input.Event) Transition {
	if s.done {
		return Stop
	}

	switch ev.Kind {
	case input.Quit:
		s.done = true
		return Stop

	case input.KeyDown:
		return s.applyKey(ev.Key)

	case input.PointerDown:
		return s.applyPointer(ev.Button, ev.X, ev.Y)
	}
	return Unchanged
}

func (s *State) applyKey(k input.Key) Transition {
	switch k {
	case input.KeyEscape:
		s.done = true
		return Stop

	case input.KeyIncreaseIter:
		s.maxIterations = doubleIterations(s.maxIterations)

	case input.KeyDecreaseIter:
		s.maxIterations = halveIterations(s.maxIterations)

	case input.KeySelectMandelbrot:
		s.kind = fractal.KindMandelbrot
		s.view = s.savedMandelbrot

	case input.KeySelectJulia:
		// Julia always starts from the home view; its saved view is not
		// restored.
		s.kind = fractal.KindJulia
		s.view = s.home

	default:
		return Unchanged
	}
	s.dirty = true
	return Redraw
}

func (s *State) applyPointer(b input.Button, px, py float64) Transition {
	switch b {
	case input.Primary:
		s.view.Center = s.pointerToWorld(px, py)
		s.view.Zoom -= zoomStep

	case input.Secondary:
		s.view.Zoom += zoomStep

	case input.Tertiary:
		s.view.Center = s.pointerToWorld(px, py)

	default:
		return Unchanged
	}
	s.dirty = true
	return Redraw
}

// pointerToWorld maps a pointer position using the zoom in effect before
// the event.
func (s *State) pointerToWorld(px, py float64) fractal.Point {
	w, h := s.view.WorldSize(s.outW, s.outH, s.base)
	return fractal.PointerToWorld(px, py, s.outW, s.outH, w, h, s.view.Center)
}

// Commit records that the current view was rendered. The view is saved for
// the active variant; a Mandelbrot commit also fixes the Julia constant.
// The dirty flag is cleared.
func (s *State) Commit() {
	switch s.kind {
	case fractal.KindMandelbrot:
		s.savedMandelbrot = s.view
	case fractal.KindJulia:
		s.savedJulia = s.view
	}
	s.dirty = false
}

// Fractal returns the variant to render. The Julia constant is the center
// of the saved Mandelbrot view.
func (s *State) Fractal() fractal.Fractal {
	if s.kind == fractal.KindJulia {
		return fractal.Julia(s.savedMandelbrot.Center.Complex())
	}
	return fractal.Mandelbrot()
}

// View returns the current viewport.
func (s *State) View() fractal.Viewport { return s.view }

// Kind returns the active variant.
func (s *State) Kind() fractal.Kind { return s.kind }

// MaxIterations returns the iteration budget shared by both variants.
func (s *State) MaxIterations() int { return s.maxIterations }

// Saved returns the view last committed for kind.
func (s *State) Saved(kind fractal.Kind) fractal.Viewport {
	if kind == fractal.KindJulia {
		return s.savedJulia
	}
	return s.savedMandelbrot
}

// Dirty reports whether the view changed since the last Commit.
func (s *State) Dirty() bool { return s.dirty }

// Done reports whether a Stop transition happened.
func (s *State) Done() bool { return s.done }

func doubleIterations(n int) int {
	if n > math.MaxInt/2 {
		return math.MaxInt
	}
	return n * 2
}

// halveIterations returns ceil(n/2), never less than 1.
func halveIterations(n int) int {
	return max((n+1)/2, 1)
}
