package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Parse for an unknown token.
var ErrSyntax = errors.New("input: invalid script token")

// Parse reads a whitespace-separated event script. Each token is one tick:
//
//	+        increase iterations      -        decrease iterations
//	m        select Mandelbrot        j        select Julia
//	esc      escape key               quit     close the window
//	l:X,Y    primary click at X,Y     r:X,Y    secondary click
//	c:X,Y    tertiary click           .        idle tick
//
// Several events can share a tick by joining them with '/', as in "m/l:10,20".
func Parse(script string) ([][]Event, error) {
	var steps [][]Event
	for _, tok := range strings.Fields(script) {
		if tok == "." {
			steps = append(steps, nil)
			continue
		}
		var step []Event
		for _, part := range strings.Split(tok, "/") {
			ev, err := parseEvent(part)
			if err != nil {
				return nil, err
			}
			step = append(step, ev)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseEvent(tok string) (Event, error) {
	switch strings.ToLower(tok) {
	case "+":
		return Press(KeyIncreaseIter), nil
	case "-":
		return Press(KeyDecreaseIter), nil
	case "m":
		return Press(KeySelectMandelbrot), nil
	case "j":
		return Press(KeySelectJulia), nil
	case "esc":
		return Press(KeyEscape), nil
	case "quit":
		return QuitEvent(), nil
	}

	name, coords, ok := strings.Cut(tok, ":")
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrSyntax, tok)
	}
	var b Button
	switch strings.ToLower(name) {
	case "l":
		b = Primary
	case "r":
		b = Secondary
	case "c":
		b = Tertiary
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrSyntax, tok)
	}

	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return Event{}, fmt.Errorf("%w: %q: want X,Y", ErrSyntax, tok)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
	}
	return Click(b, x, y), nil
}
