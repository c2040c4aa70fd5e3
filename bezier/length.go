package bezier

// DefaultLineSegments is the number of straight line segments used to
// approximate arc length if callers do not specify a positive count.
var DefaultLineSegments = 10

// Length approximates the arc length of the whole segment, using
// DefaultLineSegments.
func (s Segment) Length() float64 {
	return SegmentLength(s, 0, 1, DefaultLineSegments)
}

// SegmentLength approximates the arc length of s between tStart and tEnd by
// subdividing the span into lineSegments equal steps of t and summing up the
// distances between consecutive points. Accuracy grows with lineSegments;
// there is no adaptive refinement. A count below 1 falls back to
// DefaultLineSegments.
func SegmentLength(s Segment, tStart, tEnd float64, lineSegments int) float64 {
	if lineSegments < 1 {
		lineSegments = DefaultLineSegments
	}
	step := (tEnd - tStart) / float64(lineSegments)
	prev := s.Eval(tStart)
	var length float64
	for i := 1; i <= lineSegments; i++ {
		t := tStart + float64(i)*step
		if i == lineSegments {
			t = tEnd
		}
		pt := s.Eval(t)
		length += pt.Distance(prev)
		prev = pt
	}
	return length
}
