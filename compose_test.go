package curvewarp

import "testing"

func TestJoinIdentityIsNoop(t *testing.T) {
	a2b, err := NewMonotonicLinearCurve(
		ControlPointAt(0, 0),
		ControlPointAt(1, 1),
		ControlPointAt(2, 2),
	)
	if err != nil {
		t.Fatalf("NewMonotonicLinearCurve: %v", err)
	}
	b2c := LinearCurveAt(
		ControlPointAt(0, 0),
		ControlPointAt(1, 10),
		ControlPointAt(2, 20),
	)
	joined, err := Join(a2b, b2c)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	for _, x := range []Ordinate{0, 0.5, 1, 1.5, 2} {
		got, err := joined.OutputAtInput(x)
		if err != nil {
			t.Fatalf("OutputAtInput(%v): %v", x, err)
		}
		want, _ := b2c.OutputAtInput(x)
		if !IsEqual(got, want) {
			t.Errorf("joined(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestJoinScalesRange(t *testing.T) {
	// a2b halves its domain into b's [0,1] range: a2b(x) = x/2.
	a2b, _ := NewMonotonicLinearCurve(
		ControlPointAt(0, 0),
		ControlPointAt(2, 1),
	)
	b2c := LinearCurveAt(
		ControlPointAt(0, 100),
		ControlPointAt(1, 200),
	)
	joined, err := Join(a2b, b2c)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	got, err := joined.OutputAtInput(1)
	if err != nil {
		t.Fatalf("OutputAtInput(1): %v", err)
	}
	if !IsEqual(got, 150) {
		t.Errorf("joined(1) = %v, want 150", got)
	}
}

func TestComposeBezierIdentities(t *testing.T) {
	a2b := Identity(0, 1)
	b2c := Identity(0, 1)
	joined, err := Compose(a2b, b2c, LinearizeDefaultTolerance)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	for _, x := range []Ordinate{0, 0.25, 0.5, 0.75, 1} {
		got, err := joined.OutputAtInput(x)
		if err != nil {
			t.Fatalf("OutputAtInput(%v): %v", x, err)
		}
		if !IsEqual(got, x) {
			t.Errorf("Compose(identity, identity)(%v) = %v, want %v", x, got, x)
		}
	}
}
