package curvewarp

import "math"

// Quadratic is a single-indeterminate polynomial f(t) = a*t^2 + b*t + c.
// It exists to solve the two quadratics the segment algebra produces: a
// hodograph axis (is the derivative zero here?) and the cubic's inflection
// equation (is the second derivative's cross term zero here?).
type Quadratic struct {
	a, b, c float64
}

// QuadraticAbc builds a Quadratic from its coefficients.
func QuadraticAbc(a, b, c float64) Quadratic { return Quadratic{a, b, c} }

// quadraticFromBernstein converts the three Bernstein (control-point)
// values of a quadratic Bézier into power-basis coefficients:
//
//	Q(t) = (1-t)^2*h0 + 2t(1-t)*h1 + t^2*h2
//	     = h0 + 2t(h1-h0) + t^2(h0-2h1+h2)
func quadraticFromBernstein(h0, h1, h2 float64) Quadratic {
	return Quadratic{
		a: h0 - 2*h1 + h2,
		b: 2 * (h1 - h0),
		c: h0,
	}
}

// AtT evaluates the polynomial at t.
func (q Quadratic) AtT(t float64) float64 { return q.a*t*t + q.b*t + q.c }

// Abc returns the coefficients.
func (q Quadratic) Abc() (float64, float64, float64) { return q.a, q.b, q.c }

// Roots returns the real roots of the polynomial, in no particular order.
// Degenerates to the linear/constant case when leading coefficients
// vanish.
func (q Quadratic) Roots() []float64 {
	a, b, c := q.a, q.b, q.c
	if IsZero(a) {
		if IsZero(b) {
			return nil
		}
		return []float64{-c / b}
	}

	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	f := -b / (2 * a)
	if IsZero(d) {
		return []float64{f}
	}
	g := math.Sqrt(d) / (2 * a)
	return []float64{f + g, f - g}
}
