package curvewarp

import "sort"

// LinearCurve is a sequence of knots, each an (in, out) ControlPoint, whose
// in axis is non-decreasing: the graph of a piecewise-linear function from
// in to out. It is the lowered form every Bézier curve is reduced to
// before two curves are joined.
type LinearCurve struct {
	knots []ControlPoint
}

// LinearCurveAt builds a LinearCurve from its knots, in order.
func LinearCurveAt(knots ...ControlPoint) LinearCurve {
	return LinearCurve{knots: knots}
}

// IsEmpty reports whether the curve has no knots.
func (c LinearCurve) IsEmpty() bool { return len(c.knots) == 0 }

// Knots returns the curve's knots. Treat as read-only.
func (c LinearCurve) Knots() []ControlPoint { return c.knots }

// Domain returns the curve's input range [lo, hi].
func (c LinearCurve) Domain() (Ordinate, Ordinate) {
	if c.IsEmpty() {
		return 0, 0
	}
	return c.knots[0].In(), c.knots[len(c.knots)-1].In()
}

// findBracket returns the index i such that x falls within
// [knots[i].In(), knots[i+1].In()], clamping at the ends.
func (c LinearCurve) findBracket(x Ordinate) int {
	lo, hi := 0, len(c.knots)-2
	if hi < 0 {
		return 0
	}
	for lo < hi {
		mid := (lo + hi) / 2
		if x < c.knots[mid+1].In() {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// OutputAtInput evaluates the piecewise-linear function at x by lerping
// within the bracketing knot pair.
func (c LinearCurve) OutputAtInput(x Ordinate) (Ordinate, error) {
	if c.IsEmpty() {
		return 0, &OutOfBoundsError{x, 0, 0}
	}
	lo, hi := c.Domain()
	if x < lo || x > hi {
		return 0, &OutOfBoundsError{x, lo, hi}
	}
	i := c.findBracket(x)
	a, b := c.knots[i], c.knots[i+1]
	span := float64(b.In() - a.In())
	if IsZero(Ordinate(span)) {
		return a.Out(), nil
	}
	t := float64(x-a.In()) / span
	return a.Lerp(b, t).Out(), nil
}

// SlopeKind classifies a MonotonicLinearCurve's direction on the output
// axis.
type SlopeKind int

const (
	SlopeFlat SlopeKind = iota
	SlopeAscending
	SlopeDescending
)

func (k SlopeKind) String() string {
	switch k {
	case SlopeAscending:
		return "ascending"
	case SlopeDescending:
		return "descending"
	default:
		return "flat"
	}
}

// MonotonicLinearCurve is a LinearCurve whose output axis is also
// monotonic across every knot, in the direction recorded by Slope. This is
// the shape Join requires of its first argument (a2b): a function that can
// be inverted (InputAtOutput) as well as evaluated forward (OutputAtInput).
type MonotonicLinearCurve struct {
	LinearCurve
	slope SlopeKind
}

func slopeKindOf(knots []ControlPoint) SlopeKind {
	for i := 1; i < len(knots); i++ {
		d := knots[i].Out() - knots[i-1].Out()
		if IsZero(d) {
			continue
		}
		if d > 0 {
			return SlopeAscending
		}
		return SlopeDescending
	}
	return SlopeFlat
}

// NewMonotonicLinearCurve validates that knots is non-decreasing on the in
// axis and monotonic (in a single direction) on the out axis, and wraps it.
func NewMonotonicLinearCurve(knots ...ControlPoint) (MonotonicLinearCurve, error) {
	slope := slopeKindOf(knots)
	for i := 1; i < len(knots); i++ {
		if knots[i].In() < knots[i-1].In() {
			return MonotonicLinearCurve{}, &OutOfBoundsError{knots[i].In(), knots[i-1].In(), knots[i].In()}
		}
		d := knots[i].Out() - knots[i-1].Out()
		switch slope {
		case SlopeAscending:
			if d < -Ordinate(Epsilon) {
				return MonotonicLinearCurve{}, &NoSolutionError{knots[i-1].In(), knots[i-1].Out(), knots[i].In(), knots[i].Out()}
			}
		case SlopeDescending:
			if d > Ordinate(Epsilon) {
				return MonotonicLinearCurve{}, &NoSolutionError{knots[i-1].In(), knots[i-1].Out(), knots[i].In(), knots[i].Out()}
			}
		}
	}
	return MonotonicLinearCurve{LinearCurve: LinearCurveAt(knots...), slope: slope}, nil
}

// Slope reports the curve's output-axis direction.
func (c MonotonicLinearCurve) Slope() SlopeKind { return c.slope }

// OutputRange returns the curve's output range, in (min, max) order
// regardless of slope direction.
func (c MonotonicLinearCurve) OutputRange() (Ordinate, Ordinate) {
	if c.IsEmpty() {
		return 0, 0
	}
	a, b := c.knots[0].Out(), c.knots[len(c.knots)-1].Out()
	if a > b {
		return b, a
	}
	return a, b
}

// InputAtOutput inverts the curve: given an output value y, finds the
// input x with OutputAtInput(x) == y. Requires the curve's slope to be
// ascending or descending (a flat curve has no unique inverse).
func (c MonotonicLinearCurve) InputAtOutput(y Ordinate) (Ordinate, error) {
	lo, hi := c.OutputRange()
	if y < lo || y > hi {
		return 0, &OutOfBoundsError{y, lo, hi}
	}
	if c.slope == SlopeFlat {
		return 0, &NoSolutionError{}
	}

	ascending := c.slope == SlopeAscending
	i, j := 0, len(c.knots)-2
	for i < j {
		mid := (i + j) / 2
		v := c.knots[mid+1].Out()
		if (ascending && y < v) || (!ascending && y > v) {
			j = mid
		} else {
			i = mid + 1
		}
	}

	a, b := c.knots[i], c.knots[i+1]
	span := float64(b.Out() - a.Out())
	if IsZero(Ordinate(span)) {
		return a.In(), nil
	}
	t := float64(y-a.Out()) / span
	return a.Lerp(b, t).In(), nil
}

// TrimmedInput restricts the curve to the input range [lo, hi], inserting
// interpolated knots at the boundaries as needed.
func (c MonotonicLinearCurve) TrimmedInput(lo, hi Ordinate) (MonotonicLinearCurve, error) {
	split, err := c.splitAtInputs([]Ordinate{lo, hi})
	if err != nil {
		return c, err
	}
	var out []ControlPoint
	for _, k := range split.knots {
		if k.In() < lo-Ordinate(Epsilon) || k.In() > hi+Ordinate(Epsilon) {
			continue
		}
		out = append(out, k)
	}
	return NewMonotonicLinearCurve(out...)
}

// TrimmedOutput restricts the curve to the output range [lo, hi] (in the
// curve's own output order), inserting interpolated knots at the
// boundaries as needed.
func (c MonotonicLinearCurve) TrimmedOutput(lo, hi Ordinate) (MonotonicLinearCurve, error) {
	xa, err := c.InputAtOutput(lo)
	if err != nil {
		return c, err
	}
	xb, err := c.InputAtOutput(hi)
	if err != nil {
		return c, err
	}
	if xa > xb {
		xa, xb = xb, xa
	}
	return c.TrimmedInput(xa, xb)
}

// splitAtInputs inserts interpolated knots at each x in xs that doesn't
// already land on an existing knot (within Epsilon).
func (c MonotonicLinearCurve) splitAtInputs(xs []Ordinate) (MonotonicLinearCurve, error) {
	knots := append([]ControlPoint(nil), c.knots...)
	for _, x := range xs {
		lo, hi := knots[0].In(), knots[len(knots)-1].In()
		if x < lo || x > hi {
			continue
		}
		exists := false
		for _, k := range knots {
			if IsEqual(k.In(), x) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		tmp := LinearCurveAt(knots...)
		i := tmp.findBracket(x)
		a, b := knots[i], knots[i+1]
		t := float64(x-a.In()) / float64(b.In()-a.In())
		mid := a.Lerp(b, t)
		next := append([]ControlPoint(nil), knots[:i+1]...)
		next = append(next, mid)
		next = append(next, knots[i+1:]...)
		knots = next
	}
	return NewMonotonicLinearCurve(knots...)
}

// SplitAtInputOrdinates cuts the curve at each ordinate in xs, returning the
// monotonic sub-curves left to right. Each cut knot is duplicated into both
// of its neighboring sub-curves, so the left piece's last knot equals the
// right piece's first knot. Ordinates already present (within Epsilon) are
// reused as the cut rather than inserted twice; ordinates outside the
// curve's domain are ignored.
func (c MonotonicLinearCurve) SplitAtInputOrdinates(xs []Ordinate) ([]MonotonicLinearCurve, error) {
	split, err := c.splitAtInputs(xs)
	if err != nil {
		return nil, err
	}
	knots := split.knots

	cutSet := make(map[int]bool)
	for _, x := range xs {
		for i, k := range knots {
			if IsEqual(k.In(), x) {
				cutSet[i] = true
				break
			}
		}
	}
	var cuts []int
	for i := range cutSet {
		if i == 0 || i == len(knots)-1 {
			continue
		}
		cuts = append(cuts, i)
	}
	sort.Ints(cuts)

	var out []MonotonicLinearCurve
	start := 0
	for _, idx := range cuts {
		m, err := NewMonotonicLinearCurve(knots[start : idx+1]...)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
		start = idx
	}
	m, err := NewMonotonicLinearCurve(knots[start:]...)
	if err != nil {
		return nil, err
	}
	out = append(out, m)
	return out, nil
}

// SplitAtCriticalPoints splits a general LinearCurve at each local extremum
// of its output axis, returning the maximal monotonic runs between them.
// A curve already monotonic returns a single-element slice.
func (c LinearCurve) SplitAtCriticalPoints() ([]MonotonicLinearCurve, error) {
	if len(c.knots) < 2 {
		if len(c.knots) == 0 {
			return nil, nil
		}
		m, err := NewMonotonicLinearCurve(c.knots...)
		return []MonotonicLinearCurve{m}, err
	}

	var breaks []int
	dir := 0
	for i := 1; i < len(c.knots); i++ {
		d := c.knots[i].Out() - c.knots[i-1].Out()
		if IsZero(d) {
			continue
		}
		nd := 1
		if d < 0 {
			nd = -1
		}
		if dir != 0 && nd != dir {
			breaks = append(breaks, i-1)
		}
		dir = nd
	}

	var out []MonotonicLinearCurve
	start := 0
	for _, b := range breaks {
		m, err := NewMonotonicLinearCurve(c.knots[start : b+1]...)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
		start = b
	}
	m, err := NewMonotonicLinearCurve(c.knots[start:]...)
	if err != nil {
		return nil, err
	}
	out = append(out, m)
	return out, nil
}
