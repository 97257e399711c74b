package curvewarp

import (
	"github.com/go-gl/mathgl/mgl64"
)

// BezierSegment is a single cubic Bézier: four control points P0..P3 whose
// `in` axis is non-decreasing across the control polygon (p0.in <= p1.in
// <= p2.in <= p3.in). It represents a mapping of a parameter u in [0,1) to
// a point on the curve; the function semantics (in -> out) are recovered
// by solving in(u) = x for u (FindU) and then evaluating out(u).
type BezierSegment struct {
	p0, p1, p2, p3 ControlPoint
}

// BezierSegmentAt builds a segment from its four control points.
func BezierSegmentAt(p0, p1, p2, p3 ControlPoint) BezierSegment {
	return BezierSegment{p0, p1, p2, p3}
}

// Points returns the four control points in order. Treat as read-only.
func (s BezierSegment) Points() [4]ControlPoint { return [4]ControlPoint{s.p0, s.p1, s.p2, s.p3} }

// P0, P1, P2, P3 access the individual control points.
func (s BezierSegment) P0() ControlPoint { return s.p0 }
func (s BezierSegment) P1() ControlPoint { return s.p1 }
func (s BezierSegment) P2() ControlPoint { return s.p2 }
func (s BezierSegment) P3() ControlPoint { return s.p3 }

// Domain returns the half-open input interval [p0.in, p3.in) this segment
// covers.
func (s BezierSegment) Domain() (Ordinate, Ordinate) { return s.p0.In(), s.p3.In() }

// IsDegenerate reports whether every in-axis control scalar is identical,
// the condition BezierCurve.Evaluate and SplitAtInputOrdinate report as
// NoSolutionError (the cubic has no defined order along the in axis).
func (s BezierSegment) IsDegenerate() bool {
	in0, in1, in2, in3 := s.p0.In(), s.p1.In(), s.p2.In(), s.p3.In()
	return IsEqual(in0, in1) && IsEqual(in1, in2) && IsEqual(in2, in3)
}

// deCasteljau performs one full De Casteljau reduction of pts at parameter
// t, returning the left-hull and right-hull points collected along the
// way (left[0]==pts[0], right[0]==pts[len-1], left[last]==right[last]==
// the point on the curve).
func deCasteljau(pts []ControlPoint, t float64) (left, right []ControlPoint) {
	cur := make([]ControlPoint, len(pts))
	copy(cur, pts)

	left = append(left, cur[0])
	right = append(right, cur[len(cur)-1])
	for len(cur) > 1 {
		next := make([]ControlPoint, len(cur)-1)
		for h := range next {
			next[h] = cur[h].Lerp(cur[h+1], t)
		}
		left = append(left, next[0])
		right = append(right, next[len(next)-1])
		cur = next
	}
	return left, right
}

// EvalAt evaluates the segment at parameter u via De Casteljau reduction:
// three successive lerps collapse the four control points to one.
func (s BezierSegment) EvalAt(u float64) ControlPoint {
	left, _ := deCasteljau(s.Points()[:], u)
	return left[len(left)-1]
}

// EvalAtDual evaluates the segment at a dual parameter u. With u.I == 1,
// the infinitesimal part of the result is dP/du at u.R.
func (s BezierSegment) EvalAtDual(u Dual) DualCP {
	pts := s.Points()
	cur := make([]DualCP, 4)
	for h, p := range pts {
		cur[h] = DualCPReal(p)
	}
	for len(cur) > 1 {
		next := make([]DualCP, len(cur)-1)
		for h := range next {
			next[h] = cur[h].Lerp(cur[h+1], u)
		}
		cur = next
	}
	return cur[0]
}

// bezierSplitMatrices returns the two 4x4 matrices that, applied to a
// vector of the four Bernstein coefficients along one axis, produce the
// Bernstein coefficients of the left and right half of the curve split at
// parameter t. This is the matrix form of De Casteljau subdivision.
func bezierSplitMatrices(t float64) (left, right mgl64.Mat4) {
	z := t - 1
	left = mgl64.Mat4{
		1, -z, z * z, -(z * z * z),
		0, t, -2 * z * t, 3 * (z * z) * t,
		0, 0, t * t, -3 * z * (t * t),
		0, 0, 0, t * t * t,
	}
	right = mgl64.Mat4{
		-(z * z * z), 0, 0, 0,
		3 * (z * z) * t, z * z, 0, 0,
		-3 * z * (t * t), -2 * z * t, -z, 0,
		t * t * t, t * t, t, 1,
	}
	return left, right
}

// SplitAt splits the segment at parameter u in (0,1), returning two
// segments that exactly reconstruct the original: left.p3 == right.p0 ==
// s.EvalAt(u). Returns false (no split) when u is within Epsilon of the
// half-open interval's boundary.
func (s BezierSegment) SplitAt(u float64) (left, right BezierSegment, ok bool) {
	if u <= Epsilon || u >= 1-Epsilon {
		return s, s, false
	}

	lm, rm := bezierSplitMatrices(u)
	pin := mgl64.Vec4{float64(s.p0.In()), float64(s.p1.In()), float64(s.p2.In()), float64(s.p3.In())}
	pout := mgl64.Vec4{float64(s.p0.Out()), float64(s.p1.Out()), float64(s.p2.Out()), float64(s.p3.Out())}

	lin, lout := lm.Mul4x1(pin), lm.Mul4x1(pout)
	rin, rout := rm.Mul4x1(pin), rm.Mul4x1(pout)

	left = BezierSegmentAt(
		ControlPointAt(Ordinate(lin[0]), Ordinate(lout[0])),
		ControlPointAt(Ordinate(lin[1]), Ordinate(lout[1])),
		ControlPointAt(Ordinate(lin[2]), Ordinate(lout[2])),
		ControlPointAt(Ordinate(lin[3]), Ordinate(lout[3])),
	)
	right = BezierSegmentAt(
		ControlPointAt(Ordinate(rin[0]), Ordinate(rout[0])),
		ControlPointAt(Ordinate(rin[1]), Ordinate(rout[1])),
		ControlPointAt(Ordinate(rin[2]), Ordinate(rout[2])),
		ControlPointAt(Ordinate(rin[3]), Ordinate(rout[3])),
	)
	return left, right, true
}

// Extents returns the axis-aligned bounding box of the four control
// points. This is NOT the tight extents of the curve itself (the curve
// can bow inside or outside the control polygon's box); use Hodograph-
// based extrema if a tight box is required.
func (s BezierSegment) Extents() (min, max ControlPoint) {
	minIn, maxIn, minOut, maxOut := limits(s.Points()[:])
	return ControlPointAt(minIn, minOut), ControlPointAt(maxIn, maxOut)
}
