package fractal

import "image/color"

// WheelPeriod is the number of escape counts after which the color wheel
// repeats: six bands of 256 steps.
const WheelPeriod = 6 * 256

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Black is the color of points that never escape.
var Black = RGB{}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts c to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Colorize maps an escape result to a color.
//
// Unbounded maps to black. Other counts walk a hue wheel of six 256-step
// bands in the order red → yellow → green → cyan → blue → magenta → red,
// so colorize(n) == colorize(n + WheelPeriod).
func Colorize(escape int) RGB {
	if escape < 0 {
		return Black
	}
	n := escape % WheelPeriod
	v := uint8(n & 0xff)
	switch n >> 8 {
	case 0:
		return RGB{R: 0xff, G: v}
	case 1:
		return RGB{R: 0xff - v, G: 0xff}
	case 2:
		return RGB{G: 0xff, B: v}
	case 3:
		return RGB{G: 0xff - v, B: 0xff}
	case 4:
		return RGB{R: v, B: 0xff}
	default:
		return RGB{R: 0xff, B: 0xff - v}
	}
}
