package curvewarp

import (
	"encoding/json"
	"fmt"
)

// controlPointWire is the on-the-wire shape of a ControlPoint: six
// fractional digits on each axis, keeping serialized curves legible and
// diffable without losing the precision FindU and Linearize rely on.
type controlPointWire struct {
	In  float64 `json:"in"`
	Out float64 `json:"out"`
}

// MarshalJSON renders p as {"in":<6 decimals>,"out":<6 decimals>}.
func (p ControlPoint) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"in":%.6f,"out":%.6f}`, float64(p.In()), float64(p.Out()))), nil
}

// UnmarshalJSON parses the {"in":...,"out":...} shape MarshalJSON writes.
func (p *ControlPoint) UnmarshalJSON(data []byte) error {
	var w controlPointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = ControlPointAt(Ordinate(w.In), Ordinate(w.Out))
	return nil
}

// bezierSegmentWire is the on-the-wire shape of a BezierSegment: its four
// control points in order.
type bezierSegmentWire struct {
	P0 ControlPoint `json:"p0"`
	P1 ControlPoint `json:"p1"`
	P2 ControlPoint `json:"p2"`
	P3 ControlPoint `json:"p3"`
}

func (s BezierSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(bezierSegmentWire{P0: s.p0, P1: s.p1, P2: s.p2, P3: s.p3})
}

func (s *BezierSegment) UnmarshalJSON(data []byte) error {
	var w bezierSegmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = BezierSegmentAt(w.P0, w.P1, w.P2, w.P3)
	return nil
}

// bezierCurveWire is the on-the-wire shape of a BezierCurve: its segments,
// left to right.
type bezierCurveWire struct {
	Segments []BezierSegment `json:"segments"`
}

func (c BezierCurve) MarshalJSON() ([]byte, error) {
	segs := c.segments
	if segs == nil {
		segs = []BezierSegment{}
	}
	return json.Marshal(bezierCurveWire{Segments: segs})
}

func (c *BezierCurve) UnmarshalJSON(data []byte) error {
	var w bezierCurveWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = BezierCurveAt(w.Segments...)
	return nil
}

// linearCurveWire is the on-the-wire shape of a LinearCurve: its knots,
// left to right.
type linearCurveWire struct {
	Knots []ControlPoint `json:"knots"`
}

func (c LinearCurve) MarshalJSON() ([]byte, error) {
	knots := c.knots
	if knots == nil {
		knots = []ControlPoint{}
	}
	return json.Marshal(linearCurveWire{Knots: knots})
}

func (c *LinearCurve) UnmarshalJSON(data []byte) error {
	var w linearCurveWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = LinearCurveAt(w.Knots...)
	return nil
}
