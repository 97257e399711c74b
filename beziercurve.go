package curvewarp

// BezierCurve is a sequence of BezierSegments, ordered and right-met: each
// segment's P3 equals the next segment's P0. It represents a piecewise
// cubic mapping from input ordinate to output ordinate over the union of
// its segments' domains.
type BezierCurve struct {
	segments []BezierSegment
}

// BezierCurveAt builds a curve from its segments, in left-to-right order.
func BezierCurveAt(segments ...BezierSegment) BezierCurve {
	return BezierCurve{segments: segments}
}

// IsEmpty reports whether the curve has no segments.
func (c BezierCurve) IsEmpty() bool { return len(c.segments) == 0 }

// Identity returns the single-segment curve mapping [min, max) onto itself
// unchanged: a straight diagonal with its two interior control points
// placed on the line at the thirds.
func Identity(min, max Ordinate) BezierCurve {
	p0 := ControlPointAt(min, min)
	p3 := ControlPointAt(max, max)
	p1 := p0.Lerp(p3, 1.0/3.0)
	p2 := p0.Lerp(p3, 2.0/3.0)
	return BezierCurveAt(BezierSegmentAt(p0, p1, p2, p3))
}

// Segments returns the curve's segments. Treat as read-only.
func (c BezierCurve) Segments() []BezierSegment { return c.segments }

// Domain returns the curve's half-open input range [lo, hi).
func (c BezierCurve) Domain() (Ordinate, Ordinate) {
	if c.IsEmpty() {
		return 0, 0
	}
	lo, _ := c.segments[0].Domain()
	_, hi := c.segments[len(c.segments)-1].Domain()
	return lo, hi
}

func (c BezierCurve) clone() BezierCurve {
	cp := make([]BezierSegment, len(c.segments))
	copy(cp, c.segments)
	return BezierCurveAt(cp...)
}

// FindSegmentIndex returns the index of the segment whose domain contains
// x, clamping to the first or last segment if x falls outside the curve's
// domain entirely.
func (c BezierCurve) FindSegmentIndex(x Ordinate) int {
	lo, hi := 0, len(c.segments)-1
	for lo < hi {
		mid := (lo + hi) / 2
		_, in3 := c.segments[mid].Domain()
		if x < in3 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Evaluate inverts the containing segment's in axis with FindU and
// evaluates the result, returning OutOfBoundsError if x falls outside the
// curve's half-open domain [lo, hi) or NoSolutionError if the containing segment is
// degenerate on the in axis.
func (c BezierCurve) Evaluate(x Ordinate) (ControlPoint, error) {
	if c.IsEmpty() {
		return ControlPointZero, &OutOfBoundsError{x, 0, 0}
	}
	lo, hi := c.Domain()
	if x < lo || x >= hi {
		return ControlPointZero, &OutOfBoundsError{x, lo, hi}
	}
	seg := c.segments[c.FindSegmentIndex(x)]
	if seg.IsDegenerate() {
		return ControlPointZero, &NoSolutionError{seg.p0.In(), seg.p1.In(), seg.p2.In(), seg.p3.In()}
	}
	u := FindU(x, seg.p0.In(), seg.p1.In(), seg.p2.In(), seg.p3.In())
	return seg.EvalAt(u), nil
}

// SplitAtInputOrdinate splits the segment containing x into two at x. If x
// already falls on an existing segment boundary (within Epsilon), the
// curve is returned unchanged (cloned, not mutated in place) rather than
// producing a zero-length segment.
func (c BezierCurve) SplitAtInputOrdinate(x Ordinate) (BezierCurve, error) {
	if c.IsEmpty() {
		return c, &OutOfBoundsError{x, 0, 0}
	}
	lo, hi := c.Domain()
	if x < lo || x > hi {
		return c, &OutOfBoundsError{x, lo, hi}
	}
	for _, seg := range c.segments {
		in0, in3 := seg.Domain()
		if IsEqual(x, in0) || IsEqual(x, in3) {
			return c.clone(), nil
		}
	}

	idx := c.FindSegmentIndex(x)
	seg := c.segments[idx]
	if seg.IsDegenerate() {
		return c, &NoSolutionError{seg.p0.In(), seg.p1.In(), seg.p2.In(), seg.p3.In()}
	}
	u := FindU(x, seg.p0.In(), seg.p1.In(), seg.p2.In(), seg.p3.In())
	left, right, ok := seg.SplitAt(u)
	if !ok {
		return c.clone(), nil
	}

	out := make([]BezierSegment, 0, len(c.segments)+1)
	out = append(out, c.segments[:idx]...)
	out = append(out, left, right)
	out = append(out, c.segments[idx+1:]...)
	return BezierCurveAt(out...), nil
}

// SplitAtEachInputOrdinate applies SplitAtInputOrdinate for each ordinate
// in xs, in order.
func (c BezierCurve) SplitAtEachInputOrdinate(xs []Ordinate) (BezierCurve, error) {
	cur := c
	for _, x := range xs {
		var err error
		cur, err = cur.SplitAtInputOrdinate(x)
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// inputOrdinateForOutput finds an x such that Evaluate(x).Out() == y,
// searching the curve's segments after they've been split on critical
// points (so every piece is monotonic on the out axis). FindU itself
// clamps and brackets correctly whether the segment's out-axis scalars
// rise (p0.Out() < p3.Out()) or fall (p0.Out() > p3.Out()), so no extra
// direction handling is needed here.
func (c BezierCurve) inputOrdinateForOutput(y Ordinate) (Ordinate, error) {
	for _, seg := range c.segments {
		min, max := seg.Extents()
		lo, hi := min.Out(), max.Out()
		if lo > hi {
			lo, hi = hi, lo
		}
		if y < lo-Ordinate(Epsilon) || y > hi+Ordinate(Epsilon) {
			continue
		}
		if seg.IsDegenerate() {
			continue
		}
		u := FindU(y, seg.p0.Out(), seg.p1.Out(), seg.p2.Out(), seg.p3.Out())
		return seg.EvalAt(u).In(), nil
	}
	return 0, &OutOfBoundsError{y, 0, 0}
}

// SplitAtEachOutputOrdinate inserts a segment boundary at the input
// ordinate corresponding to each output value in ys. Each output value is
// located against a critical-point split of the curve, so it resolves
// correctly even where the curve folds back on the output axis.
func (c BezierCurve) SplitAtEachOutputOrdinate(ys []Ordinate) (BezierCurve, error) {
	cur := c.SplitOnCriticalPoints()
	for _, y := range ys {
		x, err := cur.inputOrdinateForOutput(y)
		if err != nil {
			return cur, err
		}
		cur, err = cur.SplitAtInputOrdinate(x)
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// TrimmedFromInputOrdinate returns the portion of the curve with input
// ordinate >= x.
func (c BezierCurve) TrimmedFromInputOrdinate(x Ordinate) (BezierCurve, error) {
	split, err := c.SplitAtInputOrdinate(x)
	if err != nil {
		return c, err
	}
	idx := split.FindSegmentIndex(x)
	return BezierCurveAt(split.segments[idx:]...), nil
}

// TrimmedInInputSpace returns the portion of the curve with input ordinate
// in [lo, hi].
func (c BezierCurve) TrimmedInInputSpace(lo, hi Ordinate) (BezierCurve, error) {
	s1, err := c.SplitAtInputOrdinate(lo)
	if err != nil {
		return c, err
	}
	s2, err := s1.SplitAtInputOrdinate(hi)
	if err != nil {
		return c, err
	}
	var out []BezierSegment
	for _, seg := range s2.segments {
		in0, in3 := seg.Domain()
		if in3 <= lo+Ordinate(Epsilon) || in0 >= hi-Ordinate(Epsilon) {
			continue
		}
		out = append(out, seg)
	}
	return BezierCurveAt(out...), nil
}

// SplitOnCriticalPoints splits every segment at its own critical points,
// returning a curve whose segments are each monotonic on both axes.
func (c BezierCurve) SplitOnCriticalPoints() BezierCurve {
	var out []BezierSegment
	for _, seg := range c.segments {
		out = append(out, seg.SplitOnCriticalPoints()...)
	}
	return BezierCurveAt(out...)
}

// Linearized lowers the curve to a LinearCurve: every segment is first
// split on its critical points, then each monotonic piece is adaptively
// subdivided (Linearize) to within tolerance, and the resulting knot runs
// are concatenated, dropping the duplicate knot at each shared boundary.
func (c BezierCurve) Linearized(tolerance float64) LinearCurve {
	mono := c.SplitOnCriticalPoints()
	var knots []ControlPoint
	for i, seg := range mono.segments {
		k := seg.Linearize(tolerance)
		if i > 0 && len(knots) > 0 {
			k = k[1:]
		}
		knots = append(knots, k...)
	}
	return LinearCurveAt(knots...)
}

// Extents returns the axis-aligned bounding box over every segment's
// control points.
func (c BezierCurve) Extents() (min, max ControlPoint) {
	if c.IsEmpty() {
		return ControlPointZero, ControlPointZero
	}
	min, max = c.segments[0].Extents()
	for _, seg := range c.segments[1:] {
		smin, smax := seg.Extents()
		min = ControlPointAt(Minimum(min.In(), smin.In()), Minimum(min.Out(), smin.Out()))
		max = ControlPointAt(Maximum(max.In(), smax.In()), Maximum(max.Out(), smax.Out()))
	}
	return min, max
}
