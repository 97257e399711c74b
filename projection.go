package curvewarp

// ApproxProjectSegment builds a cubic Bézier segment that passes through
// two interior sample points at given parameters, in addition to its
// fixed endpoints. It solves, per axis, the 2x2 linear system obtained
// from the cubic Bernstein basis evaluated at u1 and u2 for the two
// unknown interior control points.
//
// This is an approximation, not an interpolation of an existing segment's
// true geometry: it is useful for sketching a plausible curve through
// sampled data, not for projecting one segment onto another exactly. No
// operation in this package's authoritative path (Evaluate, FindU, Join,
// Compose) uses it: Evaluate inverts with FindU directly, and Compose
// lowers through Linearize, which has a provable error bound
// ApproxProjectSegment does not.
func ApproxProjectSegment(p0, s1, s2, p3 ControlPoint, u1, u2 float64) BezierSegment {
	c1In, c2In := solveInteriorControlScalars(float64(p0.In()), float64(s1.In()), float64(s2.In()), float64(p3.In()), u1, u2)
	c1Out, c2Out := solveInteriorControlScalars(float64(p0.Out()), float64(s1.Out()), float64(s2.Out()), float64(p3.Out()), u1, u2)

	return BezierSegmentAt(
		p0,
		ControlPointAt(Ordinate(c1In), Ordinate(c1Out)),
		ControlPointAt(Ordinate(c2In), Ordinate(c2Out)),
		p3,
	)
}

// solveInteriorControlScalars solves for c1, c2 such that the cubic
// Bézier with control scalars (p0, c1, c2, p3) passes through s1 at u1 and
// s2 at u2. Falls back to the chord endpoints if the sample parameters
// make the system singular (u1 == u2, or either at 0 or 1).
func solveInteriorControlScalars(p0, s1, s2, p3, u1, u2 float64) (c1, c2 float64) {
	b1 := func(u float64) float64 { return 3 * (1 - u) * (1 - u) * u }
	b2 := func(u float64) float64 { return 3 * (1 - u) * u * u }
	endpointTerm := func(u float64) float64 {
		mu := 1 - u
		return mu*mu*mu*p0 + u*u*u*p3
	}

	a11, a12 := b1(u1), b2(u1)
	a21, a22 := b1(u2), b2(u2)
	r1 := s1 - endpointTerm(u1)
	r2 := s2 - endpointTerm(u2)

	det := a11*a22 - a12*a21
	if IsZero(Ordinate(det)) {
		return p0, p3
	}
	c1 = (r1*a22 - r2*a12) / det
	c2 = (a11*r2 - a21*r1) / det
	return c1, c2
}
