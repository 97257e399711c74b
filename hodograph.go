package curvewarp

import "sort"

// Hodograph returns the quadratic Bézier that is the derivative, with
// respect to u, of the cubic scalar sequence (p0,p1,p2,p3). Its control
// scalars are the classic 3*(p1-p0), 3*(p2-p1), 3*(p3-p2).
func Hodograph(p0, p1, p2, p3 Ordinate) Quadratic {
	d0 := 3 * (float64(p1) - float64(p0))
	d1 := 3 * (float64(p2) - float64(p1))
	d2 := 3 * (float64(p3) - float64(p2))
	return quadraticFromBernstein(d0, d1, d2)
}

// inflectionQuadratic returns the quadratic whose roots are the cubic's
// inflection parameters: the points where the curve's signed curvature
// (the cross product of velocity and acceleration) vanishes. Derived from
// the standard cubic-Bézier inflection formula, expressed over the control
// polygon translated so P0 is the origin.
func inflectionQuadratic(s BezierSegment) Quadratic {
	p0, p1, p2, p3 := s.p0.Vec2(), s.p1.Vec2(), s.p2.Vec2(), s.p3.Vec2()

	a := p1.Sub(p0)
	b := p2.Sub(p1).Sub(a)
	c := p3.Sub(p2).Sub(a).Sub(b).Sub(b)

	cross := func(u, v [2]float64) float64 { return u[0]*v[1] - u[1]*v[0] }
	av := [2]float64{a[0], a[1]}
	bv := [2]float64{b[0], b[1]}
	cv := [2]float64{c[0], c[1]}

	// curvature numerator ~ cross(a+2bt+ct^2 derivative terms); expanding
	// the cross product of the first and second derivative of a cubic in
	// Bernstein form collapses to a quadratic in t with these coefficients.
	coefA := cross(bv, cv)
	coefB := cross(av, cv)
	coefC := cross(av, bv)
	return QuadraticAbc(coefA, coefB, coefC)
}

// CriticalPoints returns the segment's interior critical parameters: the
// roots of the in-axis hodograph, the out-axis hodograph, and the
// inflection quadratic, deduplicated within Epsilon and restricted to the
// open interval (0,1). Splitting a segment at its critical points yields
// pieces that are each monotonic on both axes and free of inflection,
// which is what FindU, Linearize, and the three-point projection all
// assume.
func CriticalPoints(s BezierSegment) []float64 {
	var raw []float64
	raw = append(raw, Hodograph(s.p0.In(), s.p1.In(), s.p2.In(), s.p3.In()).Roots()...)
	raw = append(raw, Hodograph(s.p0.Out(), s.p1.Out(), s.p2.Out(), s.p3.Out()).Roots()...)
	raw = append(raw, inflectionQuadratic(s).Roots()...)

	var in []float64
	for _, u := range raw {
		if u <= Epsilon || u >= 1-Epsilon {
			continue
		}
		in = append(in, u)
	}
	sort.Float64s(in)

	var out []float64
	for _, u := range in {
		if len(out) > 0 && IsEqual(Ordinate(out[len(out)-1]), Ordinate(u)) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// SplitOnCriticalPoints splits s at every one of its critical parameters,
// returning the resulting segments left-to-right. Each returned segment is
// monotonic on both axes and free of interior inflection.
func (s BezierSegment) SplitOnCriticalPoints() []BezierSegment {
	crit := CriticalPoints(s)
	if len(crit) == 0 {
		return []BezierSegment{s}
	}

	segs := []BezierSegment{s}
	prev := 0.0
	for _, u := range crit {
		// Re-map u (a parameter of the original, unsplit segment) into the
		// remaining tail segment's own [0,1] parameterization.
		local := (u - prev) / (1 - prev)
		last := segs[len(segs)-1]
		left, right, ok := last.SplitAt(local)
		if !ok {
			continue
		}
		segs[len(segs)-1] = left
		segs = append(segs, right)
		prev = u
	}
	return segs
}
