package curvewarp

import "fmt"

// OutOfBoundsError is returned when an operation is asked to evaluate,
// invert, or trim at an ordinate outside a curve's domain.
type OutOfBoundsError struct {
	// Ordinate is the value that fell outside the domain.
	Ordinate Ordinate
	// Min, Max describe the domain that rejected Ordinate.
	Min, Max Ordinate
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("curvewarp: %s is out of bounds [%s, %s)",
		HumanFormat(9, e.Ordinate), HumanFormat(9, e.Min), HumanFormat(9, e.Max))
}

// NoSolutionError is returned when the four control scalars handed to
// FindU (or a segment built from them) are degenerate: every coefficient
// of the cubic on that axis vanishes, so there is no well defined ordering
// along the axis. The linear-curve code returns it as well:
// NewMonotonicLinearCurve, for a knot pair that breaks output
// monotonicity (P0..P3 then hold that pair's in, out, in, out), and
// MonotonicLinearCurve.InputAtOutput, for a flat curve (all fields zero).
type NoSolutionError struct {
	P0, P1, P2, P3 Ordinate
}

func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("curvewarp: no solution for degenerate control scalars (%s, %s, %s, %s)",
		HumanFormat(9, e.P0), HumanFormat(9, e.P1), HumanFormat(9, e.P2), HumanFormat(9, e.P3))
}

// ErrOutOfMemory is a sentinel error for allocation failure. Go's allocator
// panics rather than returning a recoverable error, so nothing in this
// package raises it; it exists for API parity with the source's error
// taxonomy and so callers have a stable value to compare against with
// errors.Is if they wrap allocation failures themselves.
var ErrOutOfMemory = fmt.Errorf("curvewarp: out of memory")
