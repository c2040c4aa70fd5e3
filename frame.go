package waypath

import "github.com/golang/geo/r3"

// Frame is the rigid motion frame a path is attached to, e.g. a moving
// platform. All quantities are in world space; angular velocity is in
// radians per time unit, around the axis given by its direction.
type Frame struct {
	Anchor          r3.Vector // rotation center of the frame
	Velocity        r3.Vector // linear velocity of the anchor
	AngularVelocity r3.Vector // angular velocity of the frame
}

// IsStatic is a predicate: is this frame at rest?
func (f Frame) IsStatic() bool {
	return Equal(f.Velocity, Origin) && Equal(f.AngularVelocity, Origin)
}

// VelocityAt returns the instantaneous world velocity of a point rigidly
// attached to the frame:
//
//	v + ω × (p - anchor)
func (f Frame) VelocityAt(p r3.Vector) r3.Vector {
	radius := p.Sub(f.Anchor)
	return f.Velocity.Add(f.AngularVelocity.Cross(radius))
}

// Transformed returns the frame moved by an affine transform. The anchor is
// transformed as a point, velocities as directions.
func (f Frame) Transformed(m AT) Frame {
	return Frame{
		Anchor:          m.Transform(f.Anchor),
		Velocity:        m.TransformDirection(f.Velocity),
		AngularVelocity: m.TransformDirection(f.AngularVelocity),
	}
}
