package curvewarp

import (
	"math"
	"testing"
)

func TestControlPoint(t *testing.T) {
	identityTests := []struct {
		p        ControlPoint
		s        string
		in, out  Ordinate
	}{
		{ControlPointAt(10, 10), "ControlPoint({10, 10})", 10, 10},
		{ControlPointAt(-12, -32), "ControlPoint({-12, -32})", -12, -32},
	}
	for h, test := range identityTests {
		p := test.p
		if s := p.String(); s != test.s {
			t.Errorf("[%d](%v).String() failed. %s != %s", h, p, s, test.s)
		}
		if in, out := p.Units(); !IsEqual(in, test.in) {
			t.Errorf("[%d](%v).Units().in failed. %v != %v", h, p, in, test.in)
		} else if !IsEqual(out, test.out) {
			t.Errorf("[%d](%v).Units().out failed. %v != %v", h, p, out, test.out)
		}
	}

	equalTests := []struct {
		a, b  ControlPoint
		equal bool
	}{
		{ControlPointAt(10, 10), ControlPointZero.Add(ControlPointAt(10, 10)), true},
		{ControlPointAt(-12, -12), ControlPointZero.Add(ControlPointAt(-12, -12)), true},
		{ControlPointAt(-22, -12), ControlPointZero.Add(ControlPointAt(-12, -12)), false},
		{ControlPointAt(13, Ordinate(math.NaN())), ControlPointAt(13, Ordinate(math.NaN())), false},
	}
	for h, test := range equalTests {
		if eql := IsEqualPair(test.a, test.b); eql != test.equal {
			t.Errorf("[%d]IsEqualPair(%v, %v) failed. %t != %t", h, test.a, test.b, eql, test.equal)
		}
	}

	arithTests := []struct {
		a, b           ControlPoint
		add, sub, mul  ControlPoint
	}{
		{
			ControlPointAt(1, 2), ControlPointAt(3, 4),
			ControlPointAt(4, 6), ControlPointAt(-2, -2), ControlPointAt(3, 8),
		},
		{
			ControlPointAt(-1, 5), ControlPointAt(2, -5),
			ControlPointAt(1, 0), ControlPointAt(-3, 10), ControlPointAt(-2, -25),
		},
	}
	for h, test := range arithTests {
		if got := test.a.Add(test.b); !IsEqualPair(got, test.add) {
			t.Errorf("[%d]Add failed. %v != %v", h, got, test.add)
		}
		if got := test.a.Sub(test.b); !IsEqualPair(got, test.sub) {
			t.Errorf("[%d]Sub failed. %v != %v", h, got, test.sub)
		}
		if got := test.a.Mul(test.b); !IsEqualPair(got, test.mul) {
			t.Errorf("[%d]Mul failed. %v != %v", h, got, test.mul)
		}
	}

	if got := ControlPointAt(2, 10).Scale(3); !IsEqualPair(got, ControlPointAt(6, 30)) {
		t.Errorf("Scale failed. %v != ControlPoint({6, 30})", got)
	}

	if got := ControlPointAt(0, 0).Lerp(ControlPointAt(10, 20), 0.25); !IsEqualPair(got, ControlPointAt(2.5, 5)) {
		t.Errorf("Lerp(0.25) failed. %v != ControlPoint({2.5, 5})", got)
	}

	if got := ControlPointAt(0, 0).Distance(ControlPointAt(3, 4)); !IsEqual(got, Ordinate(5)) {
		t.Errorf("Distance failed. %v != 5", got)
	}

	zeroTests := []struct {
		a    ControlPoint
		zero bool
	}{
		{ControlPointAt(10, 0), false},
		{ControlPointAt(0, 0), true},
		{ControlPointAt(0, 1e-10), true},
	}
	for h, test := range zeroTests {
		if zero := IsZeroPair(test.a); zero != test.zero {
			t.Errorf("[%d]IsZeroPair(%v) failed. %t != %t", h, test.a, zero, test.zero)
		}
	}
}

func TestControlPointOrErr(t *testing.T) {
	if _, err := ControlPointAt(1, 2).OrErr(); err != nil {
		t.Errorf("OrErr() on a finite point returned an error: %v", err)
	}
	if _, err := ControlPointAt(Ordinate(math.NaN()), 2).OrErr(); err == nil || !err.IsNaN() {
		t.Errorf("OrErr() on a NaN point did not report NaN")
	}
	if _, err := ControlPointAt(1, Ordinate(math.Inf(1))).OrErr(); err == nil || !err.IsInf() {
		t.Errorf("OrErr() on an Inf point did not report Inf")
	}
}
