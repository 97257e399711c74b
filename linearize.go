package curvewarp

// maxLinearizeDepth bounds adaptive subdivision recursion so a segment
// that never satisfies the flatness test (e.g. a degenerate loop smaller
// than tolerance) still terminates.
const maxLinearizeDepth = 24

// flatnessMetric computes S = max(u.in^2, v.in^2) + max(u.out^2, v.out^2)
// for u = 3*p1 - 2*p0 - p3 and v = 3*p2 - 2*p3 - p0: the squared deviation
// of the control polygon from a straight line between p0 and p3, on each
// axis independently.
func flatnessMetric(p0, p1, p2, p3 ControlPoint) float64 {
	u := p1.Scale(3).Sub(p0.Scale(2)).Sub(p3)
	v := p2.Scale(3).Sub(p3.Scale(2)).Sub(p0)

	uIn, uOut := float64(u.In()), float64(u.Out())
	vIn, vOut := float64(v.In()), float64(v.Out())

	maxIn := uIn * uIn
	if vIn*vIn > maxIn {
		maxIn = vIn * vIn
	}
	maxOut := uOut * uOut
	if vOut*vOut > maxOut {
		maxOut = vOut * vOut
	}
	return maxIn + maxOut
}

// isFlat reports whether s is within tolerance of the straight line from
// its first to its last control point.
func isFlat(s BezierSegment, tolerance float64) bool {
	return flatnessMetric(s.p0, s.p1, s.p2, s.p3) <= tolerance
}

// Linearize approximates s with a polyline: a sequence of control points
// (first == s.P0, last == s.P3) connected by straight segments, adaptively
// subdivided at u = 0.5 until every piece's flatnessMetric is at most
// tolerance (or maxLinearizeDepth is reached). The metric is on a squared
// scale: a piece that passes lies within sqrt(tolerance)/4 of its chord at
// matching parameters. tolerance <= 0 is replaced with
// LinearizeDefaultTolerance.
func (s BezierSegment) Linearize(tolerance float64) []ControlPoint {
	if tolerance <= 0 {
		tolerance = LinearizeDefaultTolerance
	}

	var knots []ControlPoint
	var recurse func(seg BezierSegment, depth int)
	recurse = func(seg BezierSegment, depth int) {
		if depth >= maxLinearizeDepth || isFlat(seg, tolerance) {
			knots = append(knots, seg.p0)
			return
		}
		left, right, ok := seg.SplitAt(0.5)
		if !ok {
			knots = append(knots, seg.p0)
			return
		}
		recurse(left, depth+1)
		recurse(right, depth+1)
	}

	recurse(s, 0)
	knots = append(knots, s.p3)
	return knots
}
