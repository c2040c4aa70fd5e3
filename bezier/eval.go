package bezier

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/waypath"
)

// Frenet is the orthonormal triad describing the orientation of a curve at
// a point.
type Frenet struct {
	Tangent  r3.Vector
	Normal   r3.Vector
	Binormal r3.Vector
}

// Eval returns the position at parameter t, blending the control points
// with the cubic Bernstein polynomials
//
//	B(t) = (1-t)³p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³p3
//
// The blend is computed component-wise.
func (s Segment) Eval(t float64) r3.Vector {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return r3.Vector{
		X: b0*s.P0.X + b1*s.P1.X + b2*s.P2.X + b3*s.P3.X,
		Y: b0*s.P0.Y + b1*s.P1.Y + b2*s.P2.Y + b3*s.P3.Y,
		Z: b0*s.P0.Z + b1*s.P1.Z + b2*s.P2.Z + b3*s.P3.Z,
	}
}

// Deriv returns the first derivative B'(t), the unnormalized direction of
// travel.
func (s Segment) Deriv(t float64) r3.Vector {
	mt := 1 - t
	d01 := s.P1.Sub(s.P0).Mul(3 * mt * mt)
	d12 := s.P2.Sub(s.P1).Mul(6 * mt * t)
	d23 := s.P3.Sub(s.P2).Mul(3 * t * t)
	return d01.Add(d12).Add(d23)
}

// Deriv2 returns the second derivative B''(t).
func (s Segment) Deriv2(t float64) r3.Vector {
	a := s.P2.Sub(s.P1.Mul(2)).Add(s.P0).Mul(6 * (1 - t))
	b := s.P3.Sub(s.P2.Mul(2)).Add(s.P1).Mul(6 * t)
	return a.Add(b)
}

// Tangent returns the unit tangent at t.
func (s Segment) Tangent(t float64) r3.Vector {
	return s.Deriv(t).Normalize()
}

// Normal returns the unit normal at t, i.e. the normalized second
// derivative. On straight segments B'' is either zero, giving the zero
// vector (e.g. for Line), or parallel to the tangent if the handles are not
// spaced uniformly, giving ±Tangent and a zero binormal.
func (s Segment) Normal(t float64) r3.Vector {
	return s.Deriv2(t).Normalize()
}

// Binormal returns tangent × normal at t. It is not renormalized.
func (s Segment) Binormal(t float64) r3.Vector {
	return s.Tangent(t).Cross(s.Normal(t))
}

// Frenet returns tangent, normal and binormal at t.
func (s Segment) Frenet(t float64) Frenet {
	tan := s.Tangent(t)
	nrm := s.Normal(t)
	return Frenet{Tangent: tan, Normal: nrm, Binormal: tan.Cross(nrm)}
}

// Curvature returns the curvature at t,
//
//	K = |B' × B''| / |B'|³
//
// A straight segment has curvature 0. The radius of the osculating circle is
// 1/K, see RadiusOfCurvature. At a cusp (|B'| = 0) the result is NaN or Inf.
func (s Segment) Curvature(t float64) float64 {
	return curvature(s.Deriv(t), s.Deriv2(t))
}

// RadiusOfCurvature returns 1/K at t, which is +Inf for straight parts of a
// segment.
func (s Segment) RadiusOfCurvature(t float64) float64 {
	k := s.Curvature(t)
	if waypath.Is0(k) {
		return math.Inf(1)
	}
	return 1 / k
}

// CurvatureInPlane returns the curvature at t of the curve projected onto
// the plane orthogonal to planeNormal. planeNormal is expected to have unit
// length.
func (s Segment) CurvatureInPlane(t float64, planeNormal r3.Vector) float64 {
	d1 := waypath.ProjectOntoPlane(s.Deriv(t), planeNormal)
	d2 := waypath.ProjectOntoPlane(s.Deriv2(t), planeNormal)
	return curvature(d1, d2)
}

func curvature(d1, d2 r3.Vector) float64 {
	n := d1.Norm()
	return d1.Cross(d2).Norm() / (n * n * n)
}
