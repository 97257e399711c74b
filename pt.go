package curvewarp

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Pair is implemented by anything that can be decomposed into an (in, out)
// pair, so the equality helpers below work over ControlPoint and anything
// shaped like it.
type Pair interface {
	Units() (Ordinate, Ordinate)
}

// ControlPointZero is the ControlPoint at the origin.
var ControlPointZero = ControlPointAt(0, 0)

// ControlPoint is an (in, out) pair: a point on a curve's input/output
// plane. Four of these describe a cubic Bézier segment; a sequence of them
// describes a piecewise-linear curve's knots.
type ControlPoint struct {
	io mgl64.Vec2
}

// ControlPointAt creates a ControlPoint from its in and out ordinates.
func ControlPointAt(in, out Ordinate) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{float64(in), float64(out)})
}

// ControlPointFromVec2 creates a ControlPoint from a raw mgl64.Vec2. Mostly
// used internally by the matrix-form segment algebra.
func ControlPointFromVec2(v mgl64.Vec2) ControlPoint {
	return ControlPoint{io: v}
}

// In returns the input-axis ordinate.
func (p ControlPoint) In() Ordinate { return Ordinate(p.io[0]) }

// Out returns the output-axis ordinate.
func (p ControlPoint) Out() Ordinate { return Ordinate(p.io[1]) }

// Units implements Pair.
func (p ControlPoint) Units() (Ordinate, Ordinate) { return p.In(), p.Out() }

// Vec2 exposes the underlying mgl64 vector for callers building their own
// matrix algebra over a segment's control points.
func (p ControlPoint) Vec2() mgl64.Vec2 { return p.io }

// Add returns the pointwise sum of p and b.
func (p ControlPoint) Add(b ControlPoint) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{p.io[0] + b.io[0], p.io[1] + b.io[1]})
}

// Sub returns the pointwise difference p - b.
func (p ControlPoint) Sub(b ControlPoint) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{p.io[0] - b.io[0], p.io[1] - b.io[1]})
}

// Mul returns the pointwise product of p and b.
func (p ControlPoint) Mul(b ControlPoint) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{p.io[0] * b.io[0], p.io[1] * b.io[1]})
}

// Div returns the pointwise quotient p / b.
func (p ControlPoint) Div(b ControlPoint) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{p.io[0] / b.io[0], p.io[1] / b.io[1]})
}

// Scale returns p scaled by the scalar m on both axes.
func (p ControlPoint) Scale(m Ordinate) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{p.io[0] * float64(m), p.io[1] * float64(m)})
}

// Lerp linearly interpolates between p and b at parameter t; this is the
// single reduction step used throughout De Casteljau's algorithm.
func (p ControlPoint) Lerp(b ControlPoint, t float64) ControlPoint {
	return ControlPointFromVec2(mgl64.Vec2{
		(1-t)*p.io[0] + t*b.io[0],
		(1-t)*p.io[1] + t*b.io[1],
	})
}

// Distance returns the Euclidean distance between p and b.
func (p ControlPoint) Distance(b ControlPoint) Ordinate {
	return Ordinate(p.io.Sub(b.io).Len())
}

// OrErr tests if either coordinate is NaN or Inf. NaN errors take priority
// over Inf errors.
func (p ControlPoint) OrErr() (ControlPoint, *FloatingPointError) {
	in, out := p.Units()
	_, inErr := in.OrErr()
	_, outErr := out.OrErr()
	switch {
	case inErr != nil && inErr.IsNaN():
		return p, inErr
	case outErr != nil && outErr.IsNaN():
		return p, outErr
	case inErr != nil:
		return p, inErr
	case outErr != nil:
		return p, outErr
	}
	return p, nil
}

func (p ControlPoint) String() string {
	return fmt.Sprintf("ControlPoint({%s, %s})", HumanFormat(9, p.io[0]), HumanFormat(9, p.io[1]))
}

// IsEqualPair compares two Pair-shaped values within Epsilon on both axes.
func IsEqualPair[T Pair](a, b T) bool {
	ai, ao := a.Units()
	bi, bo := b.Units()
	return IsEqual(ai, bi) && IsEqual(ao, bo)
}

// IsZeroPair reports whether both units of a Pair are within zeroEpsilon of
// zero.
func IsZeroPair[T Pair](a T) bool {
	ai, ao := a.Units()
	return IsZero(ai) && IsZero(ao)
}

// limits returns (minIn, maxIn, minOut, maxOut) over pts.
func limits(pts []ControlPoint) (Ordinate, Ordinate, Ordinate, Ordinate) {
	ins := make([]Ordinate, len(pts))
	outs := make([]Ordinate, len(pts))
	for h, p := range pts {
		ins[h], outs[h] = p.In(), p.Out()
	}
	return Minimum(ins...), Maximum(ins...), Minimum(outs...), Maximum(outs...)
}
