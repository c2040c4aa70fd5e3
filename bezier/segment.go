// Package bezier evaluates single cubic Bezier segments in 3D space.
//
// A Segment is a plain value of four control points. Every operation of this
// package is a pure function of a segment and a local parameter t ∈ [0,1]:
// position, derivatives, the Frenet frame, curvature, sampled arc length and
// a local closest-point search. No state is shared between calls, so segments
// may be evaluated from concurrent goroutines without coordination.
//
// Cusps (points where the first derivative vanishes) are a precondition
// violation for direction and curvature queries. Results there may be NaN or
// Inf; callers must not query curvature at a cusp.
package bezier

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
)

// tracer writes to trace with key 'waypath'
func tracer() tracing.Trace {
	return tracing.Select("waypath")
}

// Segment is one cubic Bezier curve between two waypoints. P0 and P3 are
// the end points, P1 and P2 the control handles.
type Segment struct {
	P0, P1, P2, P3 r3.Vector
}

// Line creates a segment for a straight line from a to b, with control
// points placed at thirds.
func Line(a, b r3.Vector) Segment {
	d := b.Sub(a).Mul(1.0 / 3.0)
	return Segment{a, a.Add(d), b.Sub(d), b}
}

// Start returns the first end point.
func (s Segment) Start() r3.Vector {
	return s.P0
}

// End returns the last end point.
func (s Segment) End() r3.Vector {
	return s.P3
}

// IsFinite is a predicate: are all control points finite?
func (s Segment) IsFinite() bool {
	return waypath.IsFinite(s.P0) && waypath.IsFinite(s.P1) &&
		waypath.IsFinite(s.P2) && waypath.IsFinite(s.P3)
}

// Reversed returns the segment traversed from P3 to P0.
func (s Segment) Reversed() Segment {
	return Segment{s.P3, s.P2, s.P1, s.P0}
}

// Transform returns the segment with all control points transformed by m.
func (s Segment) Transform(m waypath.AT) Segment {
	return Segment{
		P0: m.Transform(s.P0),
		P1: m.Transform(s.P1),
		P2: m.Transform(s.P2),
		P3: m.Transform(s.P3),
	}
}

// Subdivide subdivides the segment into halves, using de Casteljau.
func (s Segment) Subdivide() (Segment, Segment) {
	pm := s.Eval(0.5)
	return Segment{
			s.P0,
			mid(s.P0, s.P1),
			s.P0.Add(s.P1.Mul(2.0)).Add(s.P2).Mul(0.25),
			pm,
		},
		Segment{
			pm,
			s.P1.Add(s.P2.Mul(2.0)).Add(s.P3).Mul(0.25),
			mid(s.P2, s.P3),
			s.P3,
		}
}

// Subsegment returns the part of the segment between t0 and t1 as a segment
// of its own.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	p0 := s.Eval(t0)
	p3 := s.Eval(t1)
	scale := (t1 - t0) / 3.0
	p1 := p0.Add(s.Deriv(t0).Mul(scale))
	p2 := p3.Sub(s.Deriv(t1).Mul(scale))
	return Segment{p0, p1, p2, p3}
}

// String is a debugging representation, MetaPost-like.
func (s Segment) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		waypath.VString(s.P0), waypath.VString(s.P1),
		waypath.VString(s.P2), waypath.VString(s.P3))
}

func mid(a, b r3.Vector) r3.Vector {
	return a.Add(b).Mul(0.5)
}
