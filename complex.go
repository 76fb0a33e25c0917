package fractal

// Complex is a complex number with float64 parts. All operations are by
// value and never allocate.
type Complex struct {
	Re, Im float64
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Mul returns z · w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Sqr returns z².
func (z Complex) Sqr() Complex {
	return Complex{
		Re: z.Re*z.Re - z.Im*z.Im,
		Im: 2 * z.Re * z.Im,
	}
}

// Abs2 returns |z|², the squared magnitude.
func (z Complex) Abs2() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Point is a position on the real plane, X to the right and Y downward on
// screen.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Complex returns the point as X + Yi.
func (p Point) Complex() Complex {
	return Complex{Re: p.X, Im: p.Y}
}
