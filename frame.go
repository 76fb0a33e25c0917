package fractal

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Frame is the output pixel buffer: width×height RGBA bytes, row-major,
// alpha always 0xff. The layout matches image.RGBA.Pix so it can be handed
// to presentation backends without conversion.
//
// A Frame is allocated once and overwritten in place by each Render.
type Frame struct {
	width  int
	height int
	data   []uint8
}

// NewFrame allocates an opaque black frame. Non-positive sizes yield an
// empty frame.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	f.Clear(Black)
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the raw RGBA bytes.
func (f *Frame) Data() []uint8 {
	return f.data
}

// Set writes one pixel. Out-of-range coordinates are ignored.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.set(y*f.width+x, c)
}

func (f *Frame) set(pix int, c RGB) {
	i := pix * 4
	f.data[i+0] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = 0xff
}

// Pixel returns the color at (x, y), or black out of range.
func (f *Frame) Pixel(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	i := (y*f.width + x) * 4
	return RGB{R: f.data[i], G: f.data[i+1], B: f.data[i+2]}
}

// Clear fills the whole frame with c.
func (f *Frame) Clear(c RGB) {
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = c.R
		f.data[i+1] = c.G
		f.data[i+2] = c.B
		f.data[i+3] = 0xff
	}
}

// ToImage copies the frame into a new image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// SavePNG writes the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.ToImage()); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.Pixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}
