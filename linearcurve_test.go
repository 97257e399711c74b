package curvewarp

import "testing"

func straightKnots() []ControlPoint {
	return []ControlPoint{
		ControlPointAt(0, 0),
		ControlPointAt(1, 2),
		ControlPointAt(2, 4),
		ControlPointAt(3, 6),
	}
}

func TestLinearCurveOutputAtInput(t *testing.T) {
	c := LinearCurveAt(straightKnots()...)
	got, err := c.OutputAtInput(1.5)
	if err != nil {
		t.Fatalf("OutputAtInput: %v", err)
	}
	if !IsEqual(got, 3) {
		t.Errorf("OutputAtInput(1.5) = %v, want 3", got)
	}
}

func TestLinearCurveOutOfBounds(t *testing.T) {
	c := LinearCurveAt(straightKnots()...)
	if _, err := c.OutputAtInput(-1); err == nil {
		t.Errorf("expected out-of-bounds error")
	}
}

func TestMonotonicLinearCurveInverts(t *testing.T) {
	m, err := NewMonotonicLinearCurve(straightKnots()...)
	if err != nil {
		t.Fatalf("NewMonotonicLinearCurve: %v", err)
	}
	if m.Slope() != SlopeAscending {
		t.Errorf("slope = %v, want ascending", m.Slope())
	}
	x, err := m.InputAtOutput(3)
	if err != nil {
		t.Fatalf("InputAtOutput: %v", err)
	}
	if !IsEqual(x, 1.5) {
		t.Errorf("InputAtOutput(3) = %v, want 1.5", x)
	}
}

func TestMonotonicLinearCurveRejectsNonMonotonic(t *testing.T) {
	_, err := NewMonotonicLinearCurve(
		ControlPointAt(0, 0),
		ControlPointAt(1, 2),
		ControlPointAt(2, 1),
	)
	if err == nil {
		t.Errorf("expected rejection of non-monotonic output axis")
	}
}

func TestMonotonicLinearCurveTrimmedInput(t *testing.T) {
	m, _ := NewMonotonicLinearCurve(straightKnots()...)
	trimmed, err := m.TrimmedInput(0.5, 2.5)
	if err != nil {
		t.Fatalf("TrimmedInput: %v", err)
	}
	lo, hi := trimmed.Domain()
	if !IsEqual(lo, 0.5) || !IsEqual(hi, 2.5) {
		t.Errorf("TrimmedInput domain = [%v, %v), want [0.5, 2.5)", lo, hi)
	}
}

func TestMonotonicLinearCurveSplitAtInputOrdinates(t *testing.T) {
	m, _ := NewMonotonicLinearCurve(straightKnots()...)
	pieces, err := m.SplitAtInputOrdinates([]Ordinate{1.5})
	if err != nil {
		t.Fatalf("SplitAtInputOrdinates: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}

	left, right := pieces[0], pieces[1]
	loLo, loHi := left.Domain()
	hiLo, hiHi := right.Domain()
	if !IsEqual(loLo, 0) || !IsEqual(loHi, 1.5) {
		t.Errorf("left piece domain = [%v, %v), want [0, 1.5)", loLo, loHi)
	}
	if !IsEqual(hiLo, 1.5) || !IsEqual(hiHi, 3) {
		t.Errorf("right piece domain = [%v, %v), want [1.5, 3)", hiLo, hiHi)
	}

	leftLast := left.Knots()[len(left.Knots())-1]
	rightFirst := right.Knots()[0]
	if !IsEqualPair(leftLast, rightFirst) {
		t.Errorf("split knot not duplicated: left last = %v, right first = %v", leftLast, rightFirst)
	}
}

func TestLinearCurveSplitAtCriticalPoints(t *testing.T) {
	c := LinearCurveAt(
		ControlPointAt(0, 0),
		ControlPointAt(1, 2),
		ControlPointAt(2, 1),
		ControlPointAt(3, 3),
	)
	pieces, err := c.SplitAtCriticalPoints()
	if err != nil {
		t.Fatalf("SplitAtCriticalPoints: %v", err)
	}
	if len(pieces) != 3 {
		t.Fatalf("got %d monotonic pieces, want 3", len(pieces))
	}
	if pieces[0].Slope() != SlopeAscending || pieces[1].Slope() != SlopeDescending || pieces[2].Slope() != SlopeAscending {
		t.Errorf("piece slopes = %v, %v, %v; want ascending, descending, ascending", pieces[0].Slope(), pieces[1].Slope(), pieces[2].Slope())
	}
}

func TestLinearCurveAlreadyMonotonicSplitIsIdentity(t *testing.T) {
	c := LinearCurveAt(straightKnots()...)
	pieces, err := c.SplitAtCriticalPoints()
	if err != nil {
		t.Fatalf("SplitAtCriticalPoints: %v", err)
	}
	if len(pieces) != 1 {
		t.Errorf("got %d pieces, want 1", len(pieces))
	}
}
