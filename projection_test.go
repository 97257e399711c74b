package curvewarp

import "testing"

func TestApproxProjectSegmentPassesThroughSamples(t *testing.T) {
	p0 := ControlPointAt(0, 0)
	p3 := ControlPointAt(3, 3)
	s1 := ControlPointAt(1, 1.2)
	s2 := ControlPointAt(2, 1.8)

	seg := ApproxProjectSegment(p0, s1, s2, p3, 1.0/3, 2.0/3)

	got1 := seg.EvalAt(1.0 / 3)
	got2 := seg.EvalAt(2.0 / 3)

	if !IsEqualPair(got1, s1) {
		t.Errorf("EvalAt(1/3) = %v, want %v", got1, s1)
	}
	if !IsEqualPair(got2, s2) {
		t.Errorf("EvalAt(2/3) = %v, want %v", got2, s2)
	}
}

func TestApproxProjectSegmentKeepsEndpoints(t *testing.T) {
	p0 := ControlPointAt(0, 0)
	p3 := ControlPointAt(1, -1)
	s1 := ControlPointAt(0.3, 0.1)
	s2 := ControlPointAt(0.7, -0.6)

	seg := ApproxProjectSegment(p0, s1, s2, p3, 0.25, 0.75)
	if !IsEqualPair(seg.P0(), p0) {
		t.Errorf("P0 = %v, want %v", seg.P0(), p0)
	}
	if !IsEqualPair(seg.P3(), p3) {
		t.Errorf("P3 = %v, want %v", seg.P3(), p3)
	}
}
