package viewer

import (
	"fmt"
	"math"

	"github.com/gogpu/fractal"
)

// Status is the information shown in the window title.
type Status struct {
	Kind          fractal.Kind
	Rate          float64
	Zoom          float64
	MaxIterations int
	Center        fractal.Point
}

// Precision returns the number of decimals used to print the position at
// zoom: max(0, round(−zoom)), rounding half to even. Deeper zooms show more
// digits. It affects display only.
func Precision(zoom float64) int {
	if zoom >= 0 {
		return 0
	}
	return max(int(math.RoundToEven(-zoom)), 0)
}

// FormatStatus renders s as a one-line title, for example
//
//	Mandelbrot 100 FPS, zoom: -1.0, iterations: 1024, loc x: 0.0, y:0.0
func FormatStatus(s Status) string {
	prec := Precision(s.Zoom)
	return fmt.Sprintf("%s %3.0f FPS, zoom: %.1f, iterations: %d, loc x: %.*f, y:%.*f",
		s.Kind, s.Rate, s.Zoom, s.MaxIterations, prec, s.Center.X, prec, s.Center.Y)
}
