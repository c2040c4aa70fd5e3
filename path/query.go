package path

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/bezier"
)

// All queries take a cursor lastIndex, the slot of the assigned waypoint
// starting the segment an entity currently occupies, and a segment-local
// parameter t, which is clamped to [0,1]. Failures are reported as errors
// wrapping one of the package's sentinel errors; results are zero values
// then.

// PointOnPath returns the position at t on the segment starting at lastIndex.
// On a path with a single assigned waypoint, that waypoint is returned.
func PointOnPath(path *Path, lastIndex int, t float64) (r3.Vector, error) {
	c, err := resolve(path, lastIndex)
	if err != nil {
		tracer().Errorf("point on path: %v", err)
		return r3.Vector{}, err
	}
	if c.single {
		return c.point, nil
	}
	return c.seg.Eval(waypath.Clamp01(t)), nil
}

// MustPointOnPath is a helper which panics if PointOnPath fails.
func MustPointOnPath(path *Path, lastIndex int, t float64) r3.Vector {
	pt, err := PointOnPath(path, lastIndex, t)
	if err != nil {
		panic(err)
	}
	return pt
}

// FrenetFrame returns tangent, normal and binormal at t on the segment
// starting at lastIndex. It needs at least two assigned waypoints.
func FrenetFrame(path *Path, lastIndex int, t float64) (bezier.Frenet, error) {
	seg, err := directional(path, lastIndex)
	if err != nil {
		return bezier.Frenet{}, err
	}
	return seg.Frenet(waypath.Clamp01(t)), nil
}

// Tangent returns the unit tangent at t on the segment starting at lastIndex.
func Tangent(path *Path, lastIndex int, t float64) (r3.Vector, error) {
	seg, err := directional(path, lastIndex)
	if err != nil {
		return r3.Vector{}, err
	}
	return seg.Tangent(waypath.Clamp01(t)), nil
}

// Normal returns the unit normal at t on the segment starting at lastIndex.
func Normal(path *Path, lastIndex int, t float64) (r3.Vector, error) {
	seg, err := directional(path, lastIndex)
	if err != nil {
		return r3.Vector{}, err
	}
	return seg.Normal(waypath.Clamp01(t)), nil
}

// Curvature returns the curvature K at t on the segment starting at
// lastIndex. K is the reciprocal of the radius of the osculating circle, and
// 0 for straight parts of a path. Callers must not query curvature at a cusp.
func Curvature(path *Path, lastIndex int, t float64) (float64, error) {
	seg, err := directional(path, lastIndex)
	if err != nil {
		return 0, err
	}
	return seg.Curvature(waypath.Clamp01(t)), nil
}

// CurvatureInPlane returns the curvature at t of the path projected onto the
// plane orthogonal to planeNormal. planeNormal is normalized before use.
func CurvatureInPlane(path *Path, lastIndex int, t float64, planeNormal r3.Vector) (float64, error) {
	seg, err := directional(path, lastIndex)
	if err != nil {
		return 0, err
	}
	if waypath.Is0(planeNormal.Norm()) {
		err = fmt.Errorf("%w: %s", ErrZeroNormal, waypath.VString(planeNormal))
		tracer().Errorf("curvature in plane: %v", err)
		return 0, err
	}
	return seg.CurvatureInPlane(waypath.Clamp01(t), planeNormal.Normalize()), nil
}

// VelocityAtPoint returns the world velocity of a point rigidly attached to
// the frame the path moves with.
func VelocityAtPoint(path *Path, point r3.Vector) (r3.Vector, error) {
	if _, err := validate(path); err != nil {
		return r3.Vector{}, err
	}
	return path.Frame().VelocityAt(point), nil
}

// directional resolves the segment for queries which need a direction of
// travel, i.e. at least two assigned waypoints.
func directional(path *Path, lastIndex int) (bezier.Segment, error) {
	seg, _, err := SegmentAt(path, lastIndex)
	if err != nil {
		tracer().Errorf("direction query: %v", err)
	}
	return seg, err
}
