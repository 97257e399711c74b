/*
Package curvewarp implements the curve algebra core of a timeline/temporal
mapping library: piecewise cubic Bézier curves and piecewise-linear
polylines that act as one dimensional functions mapping an input ordinate
to an output ordinate, together with the operations needed to evaluate,
split, invert, linearize, and compose them.
*/
package curvewarp

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Epsilon is the general equality tolerance for ordinate and control
	// point comparisons. Fixed for interoperability with the wire format.
	Epsilon = 1e-5

	// zeroEpsilon is used to check values against zero. Tighter than
	// Epsilon since it guards internal branching rather than public
	// equality.
	zeroEpsilon = 1e-9

	// LinearizeDefaultTolerance is the flatness tolerance Linearize uses
	// when a caller doesn't supply one (BezierCurve.Linearized).
	LinearizeDefaultTolerance = 1e-6
)

// Ordinate is a value on the input or output axis of a curve. It is a named
// float64 so that curve arithmetic reads as domain arithmetic rather than
// bare numbers, the way the source distinguishes Length from float64.
type Ordinate float64

// FloatingPointError wraps a float64 that turned out to be NaN or Inf.
type FloatingPointError struct {
	v float64
}

// Error implements the error interface.
func (e *FloatingPointError) Error() string {
	if math.IsNaN(e.v) {
		return "NaN encountered"
	}
	if math.IsInf(e.v, -1) {
		return "negative Inf encountered"
	}
	if math.IsInf(e.v, 1) {
		return "positive Inf encountered"
	}
	return fmt.Sprintf("%g resulted in an error", e.v)
}

// IsNaN reports whether the error was caused by a NaN value.
func (e *FloatingPointError) IsNaN() bool { return math.IsNaN(e.v) }

// IsInf reports whether the error was caused by an Inf value, either sign.
func (e *FloatingPointError) IsInf() bool { return math.IsInf(e.v, 0) }

// OrErr returns the ordinate, or an error if it is NaN or Inf.
func (o Ordinate) OrErr() (Ordinate, *FloatingPointError) {
	f := float64(o)
	if math.IsNaN(f) || math.IsInf(f, -1) || math.IsInf(f, 1) {
		return o, &FloatingPointError{v: f}
	}
	return o, nil
}

func (o Ordinate) String() string { return HumanFormat(9, o) }

// Numeric is the set of scalar types the tolerance helpers below operate
// over: raw float64, the domain's Ordinate, and Radians-free angle-less
// arithmetic is deliberately absent — this library has no rotation.
type Numeric interface {
	~float64
}

// Minimum returns the smallest of vals. NaN entries are discarded.
func Minimum[T Numeric](vals ...T) (ret T) {
	if len(vals) < 1 {
		return ret
	}
	ret = vals[0]
	for _, v := range vals {
		if v < ret || math.IsNaN(float64(ret)) {
			ret = v
		}
	}
	return ret
}

// Maximum returns the largest of vals. NaN entries are discarded.
func Maximum[T Numeric](vals ...T) (ret T) {
	if len(vals) < 1 {
		return ret
	}
	ret = vals[0]
	for _, v := range vals {
		if v > ret || math.IsNaN(float64(ret)) {
			ret = v
		}
	}
	return ret
}

// Clamp v between lo and hi. Preserves NaN.
func Clamp[T Numeric](lo, v, hi T) T {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// IsEqual tests if a and b are within Epsilon of each other.
func IsEqual[T Numeric](a, b T) bool {
	return math.Abs(float64(a)-float64(b)) <= Epsilon
}

// IsZero tests if a is within zeroEpsilon of zero.
func IsZero[T Numeric](a T) bool {
	v := float64(a)
	return -zeroEpsilon < v && v < zeroEpsilon
}

// Signbit reports whether a's sign bit is set.
func Signbit[T Numeric](a T) bool { return math.Signbit(float64(a)) }

// HumanFormat renders v with up to precision fractional digits, trimming
// trailing zeros (and a trailing decimal point).
func HumanFormat[T Numeric](precision int, v T) string {
	str := fmt.Sprintf(fmt.Sprintf("%%.%df", precision), float64(v))
	if idx := strings.LastIndexAny(str, "123456789."); idx > -1 {
		str = str[:idx+1]
	}
	return strings.TrimSuffix(str, ".")
}
