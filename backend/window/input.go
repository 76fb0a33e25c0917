package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/fractal/input"
)

// devices is the slice of ebiten's input API the window reads each update.
type devices interface {
	closing() bool
	keyJustPressed(k ebiten.Key) bool
	buttonJustPressed(b ebiten.MouseButton) bool
	cursor() (x, y int)
}

type ebitenDevices struct{}

func (ebitenDevices) closing() bool                               { return ebiten.IsWindowBeingClosed() }
func (ebitenDevices) keyJustPressed(k ebiten.Key) bool            { return inpututil.IsKeyJustPressed(k) }
func (ebitenDevices) buttonJustPressed(b ebiten.MouseButton) bool { return inpututil.IsMouseButtonJustPressed(b) }
func (ebitenDevices) cursor() (x, y int)                          { return ebiten.CursorPosition() }

// keyBindings maps keys to actions. Both the keypad and the main row
// change the iteration budget.
var keyBindings = []struct {
	key ebiten.Key
	act input.Key
}{
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyNumpadAdd, input.KeyIncreaseIter},
	{ebiten.KeyEqual, input.KeyIncreaseIter},
	{ebiten.KeyNumpadSubtract, input.KeyDecreaseIter},
	{ebiten.KeyMinus, input.KeyDecreaseIter},
	{ebiten.KeyM, input.KeySelectMandelbrot},
	{ebiten.KeyJ, input.KeySelectJulia},
}

var buttonBindings = []struct {
	button ebiten.MouseButton
	act    input.Button
}{
	{ebiten.MouseButtonLeft, input.Primary},
	{ebiten.MouseButtonRight, input.Secondary},
	{ebiten.MouseButtonMiddle, input.Tertiary},
}

// capture appends the actions that happened since the previous update.
// The cursor position is in layout pixels, which equal output pixels.
func capture(d devices, events []input.Event) []input.Event {
	if d.closing() {
		events = append(events, input.QuitEvent())
	}
	for _, b := range keyBindings {
		if d.keyJustPressed(b.key) {
			events = append(events, input.Press(b.act))
		}
	}
	x, y := d.cursor()
	for _, b := range buttonBindings {
		if d.buttonJustPressed(b.button) {
			events = append(events, input.Click(b.act, float64(x), float64(y)))
		}
	}
	return events
}
