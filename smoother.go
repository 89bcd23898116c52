package scratch

// DefaultTension scales how far the control points of a smoothed segment
// reach along the tangent, as a fraction of the segment's chord.
const DefaultTension = 0.3

// Segment is a cubic Bezier curve from Start to End.
type Segment struct {
	Start, Control1, Control2, End Point
}

// SmoothSegment approximates the path between p1 and p2 given the samples
// around them, in the Catmull-Rom manner.
//
// The tangent at p1 follows the direction from p0 toward p2, the tangent at
// p2 the direction from p1 toward p3, so consecutive segments built from a
// sliding window meet without a visible corner. Control points sit
// tension*|p2-p1| away from their end points. Degenerate windows (for
// example four equal points) produce zero-length tangents and the control
// points collapse onto the end points.
func SmoothSegment(p0, p1, p2, p3 Point, tension float64) Segment {
	chord := p2.Sub(p1).Length()
	reach := tension * chord

	t1 := p1.Sub(p0).Sub(p1.Sub(p2)).Normalize()
	t2 := p2.Sub(p3).Sub(p2.Sub(p1)).Normalize()

	return Segment{
		Start:    p1,
		Control1: p1.Add(t1.Mul(reach)),
		Control2: p2.Add(t2.Mul(reach)),
		End:      p2,
	}
}

// At evaluates the curve at t in [0, 1].
func (s Segment) At(t float64) Point {
	a := s.Start.Lerp(s.Control1, t)
	b := s.Control1.Lerp(s.Control2, t)
	c := s.Control2.Lerp(s.End, t)
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	return ab.Lerp(bc, t)
}
