package window

import (
	"reflect"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/input"
	"github.com/gogpu/fractal/surface"
	"github.com/gogpu/fractal/viewer"
)

// fakeDevices reports a fixed set of presses.
type fakeDevices struct {
	close   bool
	keys    []ebiten.Key
	buttons []ebiten.MouseButton
	x, y    int
}

func (d *fakeDevices) closing() bool                               { return d.close }
func (d *fakeDevices) keyJustPressed(k ebiten.Key) bool            { return slices.Contains(d.keys, k) }
func (d *fakeDevices) buttonJustPressed(b ebiten.MouseButton) bool { return slices.Contains(d.buttons, b) }
func (d *fakeDevices) cursor() (int, int)                          { return d.x, d.y }

func TestCapture_Keys(t *testing.T) {
	d := &fakeDevices{keys: []ebiten.Key{ebiten.KeyNumpadAdd, ebiten.KeyMinus, ebiten.KeyJ}}

	got := capture(d, nil)
	want := []input.Event{
		input.Press(input.KeyIncreaseIter),
		input.Press(input.KeyDecreaseIter),
		input.Press(input.KeySelectJulia),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("capture() = %v, want %v", got, want)
	}
}

func TestCapture_Buttons(t *testing.T) {
	d := &fakeDevices{
		buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle},
		x:       120,
		y:       45,
	}

	got := capture(d, []input.Event{input.Press(input.KeySelectMandelbrot)})
	want := []input.Event{
		input.Press(input.KeySelectMandelbrot),
		input.Click(input.Primary, 120, 45),
		input.Click(input.Tertiary, 120, 45),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("capture() = %v, want %v", got, want)
	}
}

func TestCapture_Close(t *testing.T) {
	got := capture(&fakeDevices{close: true, keys: []ebiten.Key{ebiten.KeyEscape}}, nil)
	want := []input.Event{input.QuitEvent(), input.Press(input.KeyEscape)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("capture() = %v, want %v", got, want)
	}
}

func TestCapture_Idle(t *testing.T) {
	if got := capture(&fakeDevices{}, nil); len(got) != 0 {
		t.Errorf("capture() = %v, want no events", got)
	}
}

func TestWindow_PresentAndPoll(t *testing.T) {
	w := New(surface.Options{Width: 4, Height: 2})
	w.dev = &fakeDevices{keys: []ebiten.Key{ebiten.KeyM}}

	f := fractal.NewFrame(4, 2)
	f.Set(3, 1, fractal.RGB{R: 5, G: 6, B: 7})
	if err := w.Present(f); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if !w.pending || w.pix[(1*4+3)*4] != 5 {
		t.Error("Present did not stage the frame")
	}
	if err := w.Present(fractal.NewFrame(2, 2)); err == nil {
		t.Error("Present(wrong size) error = nil")
	}

	// Without a loop, Update only captures input.
	if err := w.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := w.Poll(); len(got) != 1 || got[0] != input.Press(input.KeySelectMandelbrot) {
		t.Errorf("Poll() = %v, want select-mandelbrot", got)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Errorf("second Poll() = %v, want empty", got)
	}

	if lw, lh := w.Layout(800, 600); lw != 4 || lh != 2 {
		t.Errorf("Layout() = (%d, %d), want (4, 2)", lw, lh)
	}
}

func TestWindow_PanelScale(t *testing.T) {
	w := New(surface.Options{Width: 3840, Height: 2160}, WithWindowSize(1920, 1080))
	if got := w.panelScale(); got != 2 {
		t.Errorf("panelScale() = %v, want 2", got)
	}

	w = New(surface.Options{Width: 640, Height: 480}, WithWindowSize(1280, 960))
	if got := w.panelScale(); got != 1 {
		t.Errorf("panelScale() = %v, want 1", got)
	}
}

func TestWindow_Apply(t *testing.T) {
	w := New(surface.Options{Width: 64, Height: 36})
	if w.tps != 2*ebiten.DefaultTPS {
		t.Errorf("default tps = %d, want %d", w.tps, 2*ebiten.DefaultTPS)
	}

	w.Apply(WithUpdateRate(30), WithWindowSize(128, 72))
	if w.tps != 30 {
		t.Errorf("tps = %d, want 30", w.tps)
	}
	if w.winW != 128 || w.winH != 72 {
		t.Errorf("window size = %dx%d, want 128x72", w.winW, w.winH)
	}
}

func TestFactory_DrivesLoop(t *testing.T) {
	s, err := factory(surface.Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("factory() error = %v", err)
	}
	if _, ok := s.(interface{ Run(*viewer.Loop) error }); !ok {
		t.Errorf("%T has no Run method; its frames would never be shown", s)
	}
	if _, ok := s.(input.Source); !ok {
		t.Errorf("%T is not an input source", s)
	}
}

func TestRegistered(t *testing.T) {
	if !slices.Contains(surface.List(), BackendName) {
		t.Errorf("surface.List() = %v, want %q registered", surface.List(), BackendName)
	}
}
