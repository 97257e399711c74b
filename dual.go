package curvewarp

// Dual is a dual number: a real part R and an infinitesimal part I, with
// ε² = 0. Seeding I=1 before running a primitive through its dual variant
// propagates that primitive's first derivative alongside its value, with
// no separate derivative code path required.
type Dual struct {
	R, I float64
}

// DualReal lifts a plain float64 into a dual number with a zero
// infinitesimal part — i.e. a constant as far as differentiation goes.
func DualReal(r float64) Dual { return Dual{R: r} }

// DualSeed creates a dual number seeded to differentiate with respect to
// itself: I=1, so that any computation run over it yields df/dr in the
// result's I component.
func DualSeed(r float64) Dual { return Dual{R: r, I: 1} }

// Add returns d+b: (a+bε)+(c+dε) = (a+c)+(b+d)ε.
func (d Dual) Add(b Dual) Dual { return Dual{d.R + b.R, d.I + b.I} }

// Sub returns d-b.
func (d Dual) Sub(b Dual) Dual { return Dual{d.R - b.R, d.I - b.I} }

// Mul returns d*b: (a+bε)(c+dε) = ac + (ad+bc)ε.
func (d Dual) Mul(b Dual) Dual { return Dual{d.R * b.R, d.R*b.I + d.I*b.R} }

// Scale returns d scaled by the real constant m.
func (d Dual) Scale(m float64) Dual { return Dual{d.R * m, d.I * m} }

// Recip returns the multiplicative inverse of d. If d.R is zero it behaves
// the way plain float64 division does (produces +/-Inf or NaN, with no
// panic); it does not itself detect that condition.
func (d Dual) Recip() Dual {
	rr := 1 / d.R
	return Dual{rr, -d.I * rr * rr}
}

// Div returns d/b.
func (d Dual) Div(b Dual) Dual { return d.Mul(b.Recip()) }

// DualCP is the dual-number lift of ControlPoint: a pair of ControlPoints,
// one holding the real (in, out) value and one holding the infinitesimal
// (d(in)/dr, d(out)/dr) part.
type DualCP struct {
	Real, Inf ControlPoint
}

// DualCPReal lifts a ControlPoint into a DualCP with a zero infinitesimal
// part.
func DualCPReal(p ControlPoint) DualCP { return DualCP{Real: p} }

// Add returns the componentwise sum of two DualCPs.
func (d DualCP) Add(b DualCP) DualCP {
	return DualCP{d.Real.Add(b.Real), d.Inf.Add(b.Inf)}
}

// Sub returns the componentwise difference of two DualCPs.
func (d DualCP) Sub(b DualCP) DualCP {
	return DualCP{d.Real.Sub(b.Real), d.Inf.Sub(b.Inf)}
}

// Lerp interpolates two DualCPs at a dual parameter t, propagating dt/dr
// into the result the same way ControlPoint.Lerp propagates a plain t.
func (d DualCP) Lerp(b DualCP, t Dual) DualCP {
	// (1-t)*d + t*b, expanded componentwise with dual arithmetic so that
	// a seeded t (or seeded endpoints) yields the correct product-rule
	// derivative.
	oneMinusT := Dual{1 - t.R, -t.I}
	dReal := Dual{d.Real.In(), d.Inf.In()}
	dOut := Dual{d.Real.Out(), d.Inf.Out()}
	bReal := Dual{b.Real.In(), b.Inf.In()}
	bOut := Dual{b.Real.Out(), b.Inf.Out()}

	in := oneMinusT.Mul(dReal).Add(t.Mul(bReal))
	out := oneMinusT.Mul(dOut).Add(t.Mul(bOut))

	return DualCP{
		Real: ControlPointAt(Ordinate(in.R), Ordinate(out.R)),
		Inf:  ControlPointAt(Ordinate(in.I), Ordinate(out.I)),
	}
}

// Scale scales both components of d by the real constant m.
func (d DualCP) Scale(m Ordinate) DualCP {
	return DualCP{d.Real.Scale(m), d.Inf.Scale(m)}
}
