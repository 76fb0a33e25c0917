package fractal

// Unbounded is the escape result of a point that stayed within radius 2 for
// the whole iteration budget.
const Unbounded = -1

// escapeRadius2 is the squared escape radius.
const escapeRadius2 = 4

// Evaluate iterates z = z² + c starting from z0 at most maxIter times.
//
// It returns the index n of the step after which |z|² first exceeded 4, so
// the result is in [0, maxIter). Points that never escape return Unbounded,
// as does any maxIter below 1.
func Evaluate(z0, c Complex, maxIter int) int {
	z := z0
	for n := range maxIter {
		z = z.Sqr().Add(c)
		if z.Abs2() > escapeRadius2 {
			return n
		}
	}
	return Unbounded
}

// Kind selects the fractal variant.
type Kind uint8

const (
	// KindMandelbrot iterates from z0 = c = the point.
	KindMandelbrot Kind = iota

	// KindJulia iterates from z0 = the point with a fixed constant c.
	KindJulia
)

// String returns the variant name used in window titles.
func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "Mandelbrot"
	case KindJulia:
		return "Julia"
	default:
		return "Unknown"
	}
}

// Fractal is a variant together with its parameter.
// C is the Julia constant and is ignored for Mandelbrot.
type Fractal struct {
	Kind Kind
	C    Complex
}

// Mandelbrot returns the Mandelbrot variant.
func Mandelbrot() Fractal {
	return Fractal{Kind: KindMandelbrot}
}

// Julia returns the Julia variant with constant c.
func Julia(c Complex) Fractal {
	return Fractal{Kind: KindJulia, C: c}
}

// Escape returns the escape result of point p.
func (f Fractal) Escape(p Complex, maxIter int) int {
	if f.Kind == KindJulia {
		return Evaluate(p, f.C, maxIter)
	}
	return Evaluate(p, p, maxIter)
}

// String returns the variant name.
func (f Fractal) String() string {
	return f.Kind.String()
}
