package curvewarp

import "testing"

func TestQuadraticRootsTwoReal(t *testing.T) {
	// t^2 - 3t + 2 = (t-1)(t-2)
	q := QuadraticAbc(1, -3, 2)
	roots := q.Roots()
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	for _, r := range roots {
		if !IsZero(Ordinate(q.AtT(r))) {
			t.Errorf("AtT(%v) = %v, want 0", r, q.AtT(r))
		}
	}
}

func TestQuadraticRootsNoneComplex(t *testing.T) {
	q := QuadraticAbc(1, 0, 1) // t^2 + 1, no real roots
	if roots := q.Roots(); len(roots) != 0 {
		t.Errorf("got roots %v, want none", roots)
	}
}

func TestQuadraticDegeneratesToLinear(t *testing.T) {
	q := QuadraticAbc(0, 2, -4) // 2t - 4 = 0 -> t=2
	roots := q.Roots()
	if len(roots) != 1 || !IsEqual(Ordinate(roots[0]), 2) {
		t.Errorf("roots = %v, want [2]", roots)
	}
}

func TestQuadraticDegeneratesToConstant(t *testing.T) {
	q := QuadraticAbc(0, 0, 5)
	if roots := q.Roots(); roots != nil {
		t.Errorf("roots = %v, want nil", roots)
	}
}

func TestQuadraticFromBernstein(t *testing.T) {
	q := quadraticFromBernstein(0, 1, 0)
	if got := q.AtT(0.5); !IsEqual(Ordinate(got), 0.5) {
		t.Errorf("AtT(0.5) = %v, want 0.5", got)
	}
	if got := q.AtT(0); !IsEqual(Ordinate(got), 0) {
		t.Errorf("AtT(0) = %v, want 0", got)
	}
	if got := q.AtT(1); !IsEqual(Ordinate(got), 0) {
		t.Errorf("AtT(1) = %v, want 0", got)
	}
}
