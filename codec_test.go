package curvewarp

import (
	"encoding/json"
	"testing"
)

func TestControlPointJSONRoundTrip(t *testing.T) {
	p := ControlPointAt(1.23456789, -4.5)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"in":1.234568,"out":-4.500000}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got ControlPoint
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !IsEqual(got.In(), 1.234568) || !IsEqual(got.Out(), -4.5) {
		t.Errorf("round trip = %v, want ~%v", got, p)
	}
}

func TestBezierCurveJSONRoundTrip(t *testing.T) {
	c := Identity(0, 1)
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got BezierCurve
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Segments()) != len(c.Segments()) {
		t.Fatalf("got %d segments, want %d", len(got.Segments()), len(c.Segments()))
	}
	v, err := got.Evaluate(0.5)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !IsEqual(v.Out(), 0.5) {
		t.Errorf("round-tripped curve Evaluate(0.5) = %v, want 0.5", v.Out())
	}
}

func TestLinearCurveJSONRoundTrip(t *testing.T) {
	c := LinearCurveAt(ControlPointAt(0, 0), ControlPointAt(1, 2), ControlPointAt(2, 4))
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got LinearCurve
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Knots()) != 3 {
		t.Fatalf("got %d knots, want 3", len(got.Knots()))
	}
}

func TestEmptyBezierCurveMarshalsEmptyArray(t *testing.T) {
	var c BezierCurve
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"segments":[]}`
	if string(data) != want {
		t.Errorf("Marshal empty curve = %s, want %s", data, want)
	}
}
