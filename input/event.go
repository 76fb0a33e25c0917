// Package input defines the user actions the fractal viewer reacts to and
// the sources that deliver them.
//
// Sources are polled once per tick by the render loop; actions arriving
// between ticks are queued and applied in order.
package input

import "fmt"

// Kind is the category of an Event.
type Kind uint8

const (
	// Quit requests termination (window closed).
	Quit Kind = iota + 1

	// KeyDown is a key press; see Key.
	KeyDown

	// PointerDown is a mouse button press at X, Y; see Button.
	PointerDown
)

// Key identifies a keyboard action.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyIncreaseIter
	KeyDecreaseIter
	KeySelectMandelbrot
	KeySelectJulia
)

var keyNames = [...]string{
	KeyNone:             "none",
	KeyEscape:           "escape",
	KeyIncreaseIter:     "increase-iterations",
	KeyDecreaseIter:     "decrease-iterations",
	KeySelectMandelbrot: "select-mandelbrot",
	KeySelectJulia:      "select-julia",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", k)
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota

	// Primary zooms in on the pointer.
	Primary

	// Secondary zooms out.
	Secondary

	// Tertiary recenters on the pointer.
	Tertiary
)

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return "none"
	}
}

// Event is a single user action. Only the fields relevant to Kind are set.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button

	// X and Y are the pointer position in output pixels.
	X, Y float64
}

// QuitEvent returns a Quit event.
func QuitEvent() Event {
	return Event{Kind: Quit}
}

// Press returns a KeyDown event for k.
func Press(k Key) Event {
	return Event{Kind: KeyDown, Key: k}
}

// Click returns a PointerDown event for b at (x, y).
func Click(b Button, x, y float64) Event {
	return Event{Kind: PointerDown, Button: b, X: x, Y: y}
}

func (e Event) String() string {
	switch e.Kind {
	case Quit:
		return "quit"
	case KeyDown:
		return "key " + e.Key.String()
	case PointerDown:
		return fmt.Sprintf("pointer %s at (%g, %g)", e.Button, e.X, e.Y)
	default:
		return "none"
	}
}

// Source delivers pending events.
type Source interface {
	// Poll returns the events received since the previous call, oldest
	// first. It never blocks.
	Poll() []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Event

// Poll calls f.
func (f SourceFunc) Poll() []Event { return f() }
