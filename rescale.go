package curvewarp

// remapAxis affinely maps v from [loFrom, hiFrom] to [loTo, hiTo]. A
// degenerate source range (loFrom == hiFrom) maps everything to loTo
// rather than dividing by zero.
func remapAxis(v, loFrom, hiFrom, loTo, hiTo Ordinate) Ordinate {
	span := hiFrom - loFrom
	if IsZero(span) {
		return loTo
	}
	t := (v - loFrom) / span
	return loTo + t*(hiTo-loTo)
}

// NormalizedTo remaps the curve's input axis, affinely, from its current
// domain onto [lo, hi]. The output axis is left untouched.
func (c BezierCurve) NormalizedTo(lo, hi Ordinate) BezierCurve {
	if c.IsEmpty() {
		return c
	}
	curLo, curHi := c.Domain()

	segs := make([]BezierSegment, len(c.segments))
	for i, seg := range c.segments {
		pts := seg.Points()
		segs[i] = BezierSegmentAt(
			ControlPointAt(remapAxis(pts[0].In(), curLo, curHi, lo, hi), pts[0].Out()),
			ControlPointAt(remapAxis(pts[1].In(), curLo, curHi, lo, hi), pts[1].Out()),
			ControlPointAt(remapAxis(pts[2].In(), curLo, curHi, lo, hi), pts[2].Out()),
			ControlPointAt(remapAxis(pts[3].In(), curLo, curHi, lo, hi), pts[3].Out()),
		)
	}
	return BezierCurveAt(segs...)
}

// RescaledCurve affinely remaps both axes of the curve: the input axis
// from its current domain onto [inLo, inHi], and the output axis from its
// current control-point extents onto [outLo, outHi].
func (c BezierCurve) RescaledCurve(inLo, inHi, outLo, outHi Ordinate) BezierCurve {
	if c.IsEmpty() {
		return c
	}
	curInLo, curInHi := c.Domain()
	minCP, maxCP := c.Extents()
	curOutLo, curOutHi := minCP.Out(), maxCP.Out()

	segs := make([]BezierSegment, len(c.segments))
	for i, seg := range c.segments {
		pts := seg.Points()
		var np [4]ControlPoint
		for j, p := range pts {
			np[j] = ControlPointAt(
				remapAxis(p.In(), curInLo, curInHi, inLo, inHi),
				remapAxis(p.Out(), curOutLo, curOutHi, outLo, outHi),
			)
		}
		segs[i] = BezierSegmentAt(np[0], np[1], np[2], np[3])
	}
	return BezierCurveAt(segs...)
}
