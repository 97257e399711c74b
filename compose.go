package curvewarp

import "sort"

// sortDedupeOrdinates sorts xs ascending and collapses runs within
// Epsilon of each other to their first member.
func sortDedupeOrdinates(xs []Ordinate) []Ordinate {
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	out := xs[:0]
	for _, x := range xs {
		if len(out) > 0 && IsEqual(out[len(out)-1], x) {
			continue
		}
		out = append(out, x)
	}
	return out
}

// Join composes two piecewise-linear functions: a2b, which must be
// invertible (monotonic on its output axis), and b2c, which need not be.
// The result is the piecewise-linear function x -> b2c(a2b(x)), restricted
// to the ordinates where both are defined.
//
// The algorithm is a merge of breakpoints from both inputs: every knot of
// a2b contributes its own input ordinate directly, and every knot of b2c
// contributes the input ordinate a2b maps to it (found by inverting
// a2b, which is why a2b alone needs to be monotonic). Evaluating the
// composed function at the union of these breakpoints reproduces the
// piecewise-linear result exactly, since between any two adjacent
// breakpoints both a2b and b2c are individually linear, so their
// composition is linear too.
func Join(a2b MonotonicLinearCurve, b2c LinearCurve) (LinearCurve, error) {
	aLo, aHi := a2b.OutputRange()
	bLo, bHi := b2c.Domain()
	lo, hi := Maximum(aLo, bLo), Minimum(aHi, bHi)
	if lo > hi {
		return LinearCurve{}, &OutOfBoundsError{lo, bLo, bHi}
	}

	trimmedA, err := a2b.TrimmedOutput(lo, hi)
	if err != nil {
		return LinearCurve{}, err
	}

	var xs []Ordinate
	for _, k := range trimmedA.Knots() {
		xs = append(xs, k.In())
	}
	for _, k := range b2c.Knots() {
		y := k.In()
		if y < lo-Ordinate(Epsilon) || y > hi+Ordinate(Epsilon) {
			continue
		}
		x, err := trimmedA.InputAtOutput(y)
		if err != nil {
			continue
		}
		xs = append(xs, x)
	}
	xs = sortDedupeOrdinates(xs)

	knots := make([]ControlPoint, 0, len(xs))
	for _, x := range xs {
		y, err := trimmedA.OutputAtInput(x)
		if err != nil {
			return LinearCurve{}, err
		}
		z, err := b2c.OutputAtInput(y)
		if err != nil {
			return LinearCurve{}, err
		}
		knots = append(knots, ControlPointAt(x, z))
	}
	return LinearCurveAt(knots...), nil
}

// Compose lowers two Bézier curves to linear form (splitting each on its
// own critical points first, so every piece fed to Join is well behaved)
// and joins them, returning the piecewise-linear composition b2c(a2b(x)).
func Compose(a2b, b2c BezierCurve, tolerance float64) (LinearCurve, error) {
	linA := a2b.Linearized(tolerance)
	linB := b2c.Linearized(tolerance)

	piecesA, err := linA.SplitAtCriticalPoints()
	if err != nil {
		return LinearCurve{}, err
	}

	var all []ControlPoint
	for i, pa := range piecesA {
		joined, err := Join(pa, linB)
		if err != nil {
			return LinearCurve{}, err
		}
		k := joined.Knots()
		if i > 0 && len(all) > 0 && len(k) > 0 {
			k = k[1:]
		}
		all = append(all, k...)
	}
	return LinearCurveAt(all...), nil
}
