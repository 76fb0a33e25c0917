package fractal

import "math"

// BaseResolution is the number of output pixels per world unit at zoom 0.
const BaseResolution = 128

// WorldSize returns the extent of the plane visible in an outW×outH output.
//
// Zoom is a base-2 exponent: each unit doubles (positive) or halves
// (negative) the visible region, so w = 2^zoom · outW / base.
func WorldSize(zoom float64, outW, outH int, base float64) (w, h float64) {
	scale := math.Exp2(zoom) / base
	return float64(outW) * scale, float64(outH) * scale
}

// MapPixel maps output pixel (i, j) to the complex plane. The output is
// centered on center and spans worldW×worldH; j grows downward.
//
// Pixel (0, 0) maps to center − world/2 and pixel (outW, outH) to
// center + world/2.
func MapPixel(i, j, outW, outH int, worldW, worldH float64, center Point) Complex {
	return Complex{
		Re: float64(i)*worldW/float64(outW) - worldW/2 + center.X,
		Im: float64(j)*worldH/float64(outH) - worldH/2 + center.Y,
	}
}

// PointerToWorld maps a pointer position in output pixels to the plane.
// It is the continuous form of MapPixel and is used to recenter the view.
func PointerToWorld(px, py float64, outW, outH int, worldW, worldH float64, center Point) Point {
	return Point{
		X: worldW*(px/float64(outW)-0.5) + center.X,
		Y: worldH*(py/float64(outH)-0.5) + center.Y,
	}
}

// Viewport is the visible region: a center on the plane and a zoom exponent.
type Viewport struct {
	Center Point
	Zoom   float64
}

// WorldSize returns the visible extent of v in an outW×outH output.
func (v Viewport) WorldSize(outW, outH int, base float64) (w, h float64) {
	return WorldSize(v.Zoom, outW, outH, base)
}
