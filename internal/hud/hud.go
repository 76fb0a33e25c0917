// Package hud draws the viewer status as a small text panel.
//
// The panel is rendered with the 7×13 bitmap face onto a transparent RGBA
// image, optionally scaled up by an integer factor for high-density
// outputs. Numbers are formatted for the configured language, so an
// iteration budget of 16384 reads "16,384" in English.
package hud

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal/viewer"
)

const (
	padding    = 4
	lineHeight = 15
	baseline   = 11
)

// Option configures an Overlay.
type Option func(*Overlay)

// WithLanguage sets the language used to format numbers.
func WithLanguage(tag language.Tag) Option {
	return func(o *Overlay) {
		o.printer = message.NewPrinter(tag)
	}
}

// WithScale sets an integer magnification for the panel.
func WithScale(n int) Option {
	return func(o *Overlay) {
		o.scale = max(n, 1)
	}
}

// WithColors sets the text and panel colors.
func WithColors(fg, bg color.Color) Option {
	return func(o *Overlay) {
		o.fg, o.bg = fg, bg
	}
}

// Overlay renders status panels.
type Overlay struct {
	printer *message.Printer
	face    font.Face
	scale   int
	fg, bg  color.Color
}

// New returns an overlay with white text on a translucent black panel,
// formatting numbers for English.
func New(opts ...Option) *Overlay {
	o := &Overlay{
		printer: message.NewPrinter(language.English),
		face:    basicfont.Face7x13,
		scale:   1,
		fg:      color.White,
		bg:      color.RGBA{A: 0xa0},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Lines returns the panel text for s.
func (o *Overlay) Lines(s viewer.Status) []string {
	prec := viewer.Precision(s.Zoom)
	return []string{
		s.Kind.String(),
		o.printer.Sprintf("%.0f fps", s.Rate),
		o.printer.Sprintf("zoom %.1f", s.Zoom),
		o.printer.Sprintf("iterations %d", s.MaxIterations),
		o.printer.Sprintf("x %.*f", prec, s.Center.X),
		o.printer.Sprintf("y %.*f", prec, s.Center.Y),
	}
}

// Size returns the panel size for lines, including scale.
func (o *Overlay) Size(lines []string) image.Point {
	d := &font.Drawer{Face: o.face}
	w := 0
	for _, l := range lines {
		w = max(w, d.MeasureString(l).Ceil())
	}
	return image.Pt(w+2*padding, len(lines)*lineHeight+2*padding).Mul(o.scale)
}

// Render draws the panel for s onto a new transparent image of the
// panel's size.
func (o *Overlay) Render(s viewer.Status) *image.RGBA {
	lines := o.Lines(s)

	unscaled := o.Size(lines).Div(o.scale)
	panel := image.NewRGBA(image.Rectangle{Max: unscaled})
	draw.Draw(panel, panel.Bounds(), image.NewUniform(o.bg), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: panel, Src: image.NewUniform(o.fg), Face: o.face}
	for i, l := range lines {
		d.Dot = fixed.P(padding, padding+baseline+i*lineHeight)
		d.DrawString(l)
	}

	if o.scale == 1 {
		return panel
	}
	out := image.NewRGBA(image.Rectangle{Max: unscaled.Mul(o.scale)})
	draw.NearestNeighbor.Scale(out, out.Bounds(), panel, panel.Bounds(), draw.Src, nil)
	return out
}

// DrawOnto composites the panel for s over dst at its top-left corner.
func (o *Overlay) DrawOnto(dst draw.Image, s viewer.Status) {
	panel := o.Render(s)
	r := panel.Bounds().Add(dst.Bounds().Min)
	draw.Draw(dst, r, panel, image.Point{}, draw.Over)
}
