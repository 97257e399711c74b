package curvewarp

import "math"

const (
	// maxFindUIterations bounds FindU's hybrid secant/false-position
	// search. Bounded iteration guarantees FindU never loops unboundedly,
	// even on pathological inputs.
	maxFindUIterations = 45

	// floatEpsDouble is the machine epsilon for float64.
	floatEpsDouble = 2.220446049250313e-16

	// maxAbsError is FindU's bracket-width termination threshold.
	maxAbsError = 2 * floatEpsDouble
)

// evalCubicShifted evaluates, at parameter u, the 1-D cubic Bézier whose
// control scalars are (0, p1, p2, p3) -- i.e. p0 already shifted to zero.
func evalCubicShifted(u, p1, p2, p3 float64) float64 {
	mu := 1 - u
	return 3*u*mu*mu*p1 + 3*u*u*mu*p2 + u*u*u*p3
}

// FindU solves B(u) == x for u in [0,1], where B is the 1-D cubic Bézier
// over the in-axis control scalars p0..p3. It never errors: values outside
// [p0,p3] clamp to the nearest endpoint, which is the correct behavior for
// an inversion that only ever gets queried inside a segment's own domain.
// p0..p3 need not be ascending: a segment monotonic-falling on the queried
// axis (p0 > p3, as SplitOnCriticalPoints can produce) clamps and brackets
// correctly too, since the clamp direction and the root bracket both follow
// whichever of p0, p3 is the larger.
//
// The search is a hybrid secant / false-position (Pegasus-style modified
// regula falsi) iteration: it keeps a bracketing pair and takes secant
// steps, damping the stale bracket endpoint's retained value whenever the
// same endpoint would otherwise be kept across iterations, to avoid the
// classic regula falsi stall.
func FindU(x, p0, p1, p2, p3 Ordinate) float64 {
	xf, p0f, p1f, p2f, p3f := float64(x), float64(p0), float64(p1), float64(p2), float64(p3)

	if p0f <= p3f {
		if xf <= p0f {
			return 0
		}
		if xf >= p3f {
			return 1
		}
	} else {
		if xf >= p0f {
			return 0
		}
		if xf <= p3f {
			return 1
		}
	}

	xs := xf - p0f
	sp1, sp2, sp3 := p1f-p0f, p2f-p0f, p3f-p0f

	u1, x1 := 0.0, -xs
	u2, x2 := 1.0, sp3-xs

	for i := 0; i < maxFindUIterations; i++ {
		if math.Abs(u2-u1) <= maxAbsError {
			break
		}

		u3 := u2 - x2*(u2-u1)/(x2-x1)
		x3 := evalCubicShifted(u3, sp1, sp2, sp3) - xs
		if x3 == 0 {
			return u3
		}

		if math.Signbit(x3) != math.Signbit(x2) {
			u1, x1 = u2, x2
			u2, x2 = u3, x3
		} else {
			x1 = x1 * x2 / (x2 + x3)
			u2, x2 = u3, x3
		}
	}

	if math.Abs(x1) < math.Abs(x2) {
		return u1
	}
	return u2
}

// FindUDual is FindU's dual-number variant: seed x with an infinitesimal
// part of 1 (DualSeed) and the result's I component is du/dx at x.R. The
// control scalars stay real constants; only x and the algorithm's running
// values carry derivatives.
func FindUDual(x Dual, p0, p1, p2, p3 Ordinate) Dual {
	p0f, p1f, p2f, p3f := float64(p0), float64(p1), float64(p2), float64(p3)

	if p0f <= p3f {
		if x.R <= p0f {
			return Dual{R: 0}
		}
		if x.R >= p3f {
			return Dual{R: 1}
		}
	} else {
		if x.R >= p0f {
			return Dual{R: 0}
		}
		if x.R <= p3f {
			return Dual{R: 1}
		}
	}

	xs := x.Sub(DualReal(p0f))
	sp1, sp2, sp3 := DualReal(p1f-p0f), DualReal(p2f-p0f), DualReal(p3f-p0f)

	evalShiftedDual := func(u Dual) Dual {
		one := DualReal(1)
		mu := one.Sub(u)
		t1 := u.Mul(mu).Mul(mu).Mul(DualReal(3)).Mul(sp1)
		t2 := u.Mul(u).Mul(mu).Mul(DualReal(3)).Mul(sp2)
		t3 := u.Mul(u).Mul(u).Mul(sp3)
		return t1.Add(t2).Add(t3)
	}

	u1, x1 := DualReal(0), DualReal(0).Sub(xs)
	u2, x2 := DualReal(1), sp3.Sub(xs)

	for i := 0; i < maxFindUIterations; i++ {
		if math.Abs(u2.R-u1.R) <= maxAbsError {
			break
		}

		u3 := u2.Sub(x2.Mul(u2.Sub(u1)).Div(x2.Sub(x1)))
		x3 := evalShiftedDual(u3).Sub(xs)
		if x3.R == 0 {
			return u3
		}

		if math.Signbit(x3.R) != math.Signbit(x2.R) {
			u1, x1 = u2, x2
			u2, x2 = u3, x3
		} else {
			x1 = x1.Mul(x2).Div(x2.Add(x3))
			u2, x2 = u3, x3
		}
	}

	if math.Abs(x1.R) < math.Abs(x2.R) {
		return u1
	}
	return u2
}
