/*
Package waypath implements numeric basics for piecewise-Bezier waypoint paths:
3D points and directions, affine transformations, and the rigid motion frame
a path may be attached to.

Path evaluation lives in the sub-packages: package bezier evaluates single
cubic segments, package path resolves segments from waypoint lists and
implements the whole-path queries.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package waypath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'waypath'
func tracer() tracing.Trace {
	return tracing.Select("waypath")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clamp01 restricts t to the unit interval.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// === Vectors ===============================================================

// Origin represents the frequently used constant (0,0,0).
var Origin = r3.Vector{}

// V is a quick notation for contructing a 3D vector from floats.
func V(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Equal compares two vectors component-wise, up to Epsilon.
func Equal(v, w r3.Vector) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}

// ZapV rounds every component of v to zero if it "means" to be zero.
func ZapV(v r3.Vector) r3.Vector {
	return r3.Vector{X: Zap(v.X), Y: Zap(v.Y), Z: Zap(v.Z)}
}

// IsFinite is a predicate: are all components of v neither NaN nor Inf?
func IsFinite(v r3.Vector) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ProjectOntoPlane removes the component of v along the plane normal n,
//
//	v - (v·n)n
//
// n is expected to have unit length.
func ProjectOntoPlane(v, n r3.Vector) r3.Vector {
	return v.Sub(n.Mul(v.Dot(n)))
}

// VString is a pretty Stringer for vectors, shorter than r3's default.
func VString(v r3.Vector) string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming 3D points and
// directions.
type AT []float64 // a 4x4 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 16)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*4+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*4 : (row+1)*4]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 4)
	for i := 0; i < 4; i++ {
		c[i] = m[i*4+col]
	}
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	for i := 0; i < 4; i++ {
		m.set(i, i, 1.0)
	}
	return m
}

// Translation transform. Translate a point by v. Directions are not affected.
func Translation(v r3.Vector) AT {
	m := Identity()
	m.set(0, 3, v.X)
	m.set(1, 3, v.Y)
	m.set(2, 3, v.Z)
	return m
}

// Scaling transform. Scale a point component-wise by the components of s.
func Scaling(s r3.Vector) AT {
	m := Identity()
	m.set(0, 0, s.X)
	m.set(1, 1, s.Y)
	m.set(2, 2, s.Z)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around an axis through
// the origin (right-hand rule). Argument theta is in radians. An axis of
// length 0 yields the identity transform.
func Rotation(axis r3.Vector, theta float64) AT {
	if Is0(axis.Norm()) {
		tracer().Errorf("rotation around zero-length axis")
		return Identity()
	}
	u := axis.Normalize()
	sin, cos := math.Sincos(theta)
	c := 1 - cos
	m := newAT()
	m.set(0, 0, cos+u.X*u.X*c)
	m.set(0, 1, u.X*u.Y*c-u.Z*sin)
	m.set(0, 2, u.X*u.Z*c+u.Y*sin)
	m.set(1, 0, u.Y*u.X*c+u.Z*sin)
	m.set(1, 1, cos+u.Y*u.Y*c)
	m.set(1, 2, u.Y*u.Z*c-u.X*sin)
	m.set(2, 0, u.Z*u.X*c-u.Y*sin)
	m.set(2, 1, u.Z*u.Y*c+u.X*sin)
	m.set(2, 2, cos+u.Z*u.Z*c)
	m.set(3, 3, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := "["
	for row := 0; row < 4; row++ {
		if row > 0 {
			s += "|"
		}
		r := m.row(row)
		s += fmt.Sprintf("%g,%g,%g,%g", r[0], r[1], r[2], r[3])
	}
	return s + "]"
}

// v1 × v2, v.n = [a,b,c,d]
func dotProd(vec1, vec2 []float64) float64 {
	var p float64
	for i := range vec1 {
		p += vec1[i] * vec2[i]
	}
	return p
}

// Combine 2 affine transformation to a new one. The result applies m first,
// then n. Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 4)
	for i := 0; i < 4; i++ {
		c[i] = dotProd(m.row(i), v)
	}
	return c
}

// Transform a 3D point. The argument is unchanged and a new vector is returned.
func (m AT) Transform(p r3.Vector) r3.Vector {
	c := m.multiplyVector([]float64{p.X, p.Y, p.Z, 1.0})
	return V(c[0], c[1], c[2])
}

// TransformDirection transforms a 3D direction, i.e. ignores translation.
func (m AT) TransformDirection(d r3.Vector) r3.Vector {
	c := m.multiplyVector([]float64{d.X, d.Y, d.Z, 0.0})
	return V(c[0], c[1], c[2])
}
