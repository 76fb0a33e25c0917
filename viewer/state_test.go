package viewer

import (
	"testing"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/input"
)

func newTestState() *State {
	return NewState(DefaultConfig())
}

func TestNewState(t *testing.T) {
	s := newTestState()

	if s.Kind() != fractal.KindMandelbrot {
		t.Errorf("Kind() = %v, want Mandelbrot", s.Kind())
	}
	if v := s.View(); v.Center != (fractal.Point{}) || v.Zoom != -1 {
		t.Errorf("View() = %+v, want origin at zoom -1", v)
	}
	if s.MaxIterations() != 1024 {
		t.Errorf("MaxIterations() = %d, want 1024", s.MaxIterations())
	}
	if !s.Dirty() {
		t.Error("new state should be dirty")
	}
}

func TestState_Iterations(t *testing.T) {
	s := newTestState()

	s.Apply(input.Press(input.KeyIncreaseIter))
	s.Apply(input.Press(input.KeyIncreaseIter))
	if s.MaxIterations() != 4096 {
		t.Fatalf("after two increases MaxIterations() = %d, want 4096", s.MaxIterations())
	}

	if tr := s.Apply(input.Press(input.KeyDecreaseIter)); tr != Redraw {
		t.Errorf("decrease transition = %v, want redraw", tr)
	}
	if s.MaxIterations() != 2048 {
		t.Errorf("after decrease MaxIterations() = %d, want 2048", s.MaxIterations())
	}
}

func TestState_IterationsFloor(t *testing.T) {
	s := NewState(DefaultConfig().WithMaxIterations(3))

	want := []int{2, 1, 1, 1}
	for i, w := range want {
		s.Apply(input.Press(input.KeyDecreaseIter))
		if s.MaxIterations() != w {
			t.Errorf("step %d: MaxIterations() = %d, want %d", i, s.MaxIterations(), w)
		}
	}

	if got := NewState(DefaultConfig().WithMaxIterations(0)).MaxIterations(); got != 1 {
		t.Errorf("budget 0 clamped to %d, want 1", got)
	}
}

func TestState_PrimaryZoomsInAtPointer(t *testing.T) {
	s := newTestState()

	// At zoom -1 the 1920-wide output spans 7.5 units, so x=1440 is 1.875
	// right of center; 1080 rows span 4.21875, y=270 is 1.0546875 up.
	tr := s.Apply(input.Click(input.Primary, 1440, 270))
	if tr != Redraw {
		t.Errorf("transition = %v, want redraw", tr)
	}

	v := s.View()
	if v.Center != fractal.Pt(1.875, -1.0546875) {
		t.Errorf("Center = %v, want (1.875, -1.0546875)", v.Center)
	}
	if v.Zoom != -1.5 {
		t.Errorf("Zoom = %v, want -1.5", v.Zoom)
	}
}

func TestState_SecondaryZoomsOut(t *testing.T) {
	s := newTestState()
	s.Apply(input.Click(input.Secondary, 10, 10))

	v := s.View()
	if v.Zoom != -0.5 || v.Center != (fractal.Point{}) {
		t.Errorf("View() = %+v, want origin at zoom -0.5", v)
	}
}

func TestState_TertiaryRecenters(t *testing.T) {
	s := newTestState()
	s.Apply(input.Click(input.Tertiary, 0, 0))

	v := s.View()
	if v.Center != fractal.Pt(-3.75, -2.109375) {
		t.Errorf("Center = %v, want (-3.75, -2.109375)", v.Center)
	}
	if v.Zoom != -1 {
		t.Errorf("Zoom = %v, want unchanged -1", v.Zoom)
	}
}

func TestState_PointerUsesZoomBeforeEvent(t *testing.T) {
	s := newTestState()
	s.Apply(input.Click(input.Secondary, 0, 0)) // zoom -0.5
	s.Apply(input.Click(input.Primary, 1920, 540))

	// World width at zoom -0.5 is 15·2^-0.5; the right edge is half of it.
	w, _ := fractal.WorldSize(-0.5, 1920, 1080, fractal.BaseResolution)
	if got := s.View().Center.X; got != w/2 {
		t.Errorf("Center.X = %v, want %v", got, w/2)
	}
}

func TestState_MandelbrotJuliaRoundTrip(t *testing.T) {
	s := newTestState()

	s.Apply(input.Click(input.Primary, 1440, 270))
	s.Apply(input.Click(input.Primary, 100, 900))
	s.Commit()
	mandel := s.View()

	s.Apply(input.Press(input.KeySelectJulia))
	if s.Kind() != fractal.KindJulia {
		t.Fatalf("Kind() = %v, want Julia", s.Kind())
	}
	if v := s.View(); v.Center != (fractal.Point{}) || v.Zoom != -1 {
		t.Errorf("Julia view = %+v, want origin at zoom -1", v)
	}
	if fr := s.Fractal(); fr.Kind != fractal.KindJulia || fr.C != mandel.Center.Complex() {
		t.Errorf("Fractal() = %+v, want Julia with C = %v", fr, mandel.Center)
	}
	s.Commit()

	// Explore the Julia set, then go back.
	s.Apply(input.Click(input.Primary, 500, 500))
	s.Commit()

	s.Apply(input.Press(input.KeySelectMandelbrot))
	if s.View() != mandel {
		t.Errorf("restored Mandelbrot view = %+v, want %+v", s.View(), mandel)
	}
	if s.Fractal().Kind != fractal.KindMandelbrot {
		t.Errorf("Fractal().Kind = %v, want Mandelbrot", s.Fractal().Kind)
	}

	// Julia resets again rather than restoring its explored view.
	s.Commit()
	s.Apply(input.Press(input.KeySelectJulia))
	if v := s.View(); v.Center != (fractal.Point{}) || v.Zoom != -1 {
		t.Errorf("second Julia view = %+v, want origin at zoom -1", v)
	}
}

func TestState_JuliaConstantFollowsMandelbrotCommits(t *testing.T) {
	// Committed Mandelbrot center after a middle click at (1440, 270).
	committed := fractal.Pt(1.875, -1.0546875)

	tests := []struct {
		name  string
		apply func(s *State)
		want  fractal.Point
	}{
		{
			name: "uncommitted recenter before J",
			apply: func(s *State) {
				s.Apply(input.Click(input.Tertiary, 0, 0))
				s.Apply(input.Press(input.KeySelectJulia))
			},
			want: committed,
		},
		{
			name: "Julia redraws",
			apply: func(s *State) {
				s.Apply(input.Press(input.KeySelectJulia))
				s.Commit()
				s.Apply(input.Click(input.Primary, 100, 100))
				s.Commit()
				s.Apply(input.Click(input.Secondary, 0, 0))
				s.Commit()
			},
			want: committed,
		},
		{
			name: "Mandelbrot commit after M",
			apply: func(s *State) {
				s.Apply(input.Press(input.KeySelectJulia))
				s.Commit()
				s.Apply(input.Press(input.KeySelectMandelbrot))
				s.Apply(input.Click(input.Tertiary, 960, 810))
				s.Commit()
				s.Apply(input.Press(input.KeySelectJulia))
			},
			want: fractal.Pt(1.875, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Apply(input.Click(input.Tertiary, 1440, 270))
			s.Commit()

			tt.apply(s)

			fr := s.Fractal()
			if fr.Kind != fractal.KindJulia {
				t.Fatalf("Fractal().Kind = %v, want Julia", fr.Kind)
			}
			if fr.C != tt.want.Complex() {
				t.Errorf("Fractal().C = %v, want %v", fr.C, tt.want.Complex())
			}
		})
	}
}

func TestState_Commit(t *testing.T) {
	s := newTestState()
	s.Apply(input.Click(input.Tertiary, 0, 0))
	if !s.Dirty() {
		t.Fatal("state should be dirty after a click")
	}
	s.Commit()
	if s.Dirty() {
		t.Error("Commit did not clear dirty")
	}
	if s.Saved(fractal.KindMandelbrot) != s.View() {
		t.Errorf("Saved(Mandelbrot) = %+v, want %+v", s.Saved(fractal.KindMandelbrot), s.View())
	}

	s.Apply(input.Press(input.KeySelectJulia))
	s.Apply(input.Click(input.Secondary, 0, 0))
	s.Commit()
	if s.Saved(fractal.KindJulia) != s.View() {
		t.Errorf("Saved(Julia) = %+v, want %+v", s.Saved(fractal.KindJulia), s.View())
	}
}

func TestState_Quit(t *testing.T) {
	for _, ev := range []input.Event{input.QuitEvent(), input.Press(input.KeyEscape)} {
		s := newTestState()
		if tr := s.Apply(ev); tr != Stop {
			t.Errorf("Apply(%v) = %v, want stop", ev, tr)
		}
		if !s.Done() {
			t.Errorf("Done() = false after %v", ev)
		}
		if tr := s.Apply(input.Press(input.KeyIncreaseIter)); tr != Stop {
			t.Errorf("Apply after stop = %v, want stop", tr)
		}
		if s.MaxIterations() != 1024 {
			t.Errorf("events after stop changed the budget to %d", s.MaxIterations())
		}
	}
}

func TestState_IgnoresUnknown(t *testing.T) {
	s := newTestState()
	s.Commit()

	for _, ev := range []input.Event{{}, input.Press(input.KeyNone), input.Click(input.ButtonNone, 5, 5)} {
		if tr := s.Apply(ev); tr != Unchanged {
			t.Errorf("Apply(%v) = %v, want unchanged", ev, tr)
		}
	}
	if s.Dirty() {
		t.Error("unknown events made the state dirty")
	}
}
