package path

import (
	"github.com/golang/geo/r3"
)

// Nearest is the result of a closest point search.
type Nearest struct {
	Point r3.Vector // closest point found on the path
	T     float64   // segment-local parameter of Point
	Index int       // slot of the waypoint starting the segment
}

// ClosestPointOnSegment finds the point closest to target on the segment
// starting at lastIndex. See bezier.Segment.Closest for the search and its
// limitations.
func ClosestPointOnSegment(path *Path, lastIndex int, target r3.Vector) (Nearest, error) {
	c, err := resolve(path, lastIndex)
	if err != nil {
		tracer().Errorf("closest point on segment: %v", err)
		return Nearest{}, err
	}
	if c.single {
		return Nearest{Point: c.point, Index: c.from}, nil
	}
	pt, t := c.seg.Closest(target)
	return Nearest{Point: pt, T: t, Index: c.from}, nil
}

// ClosestPoint finds the point closest to target on a path without a known
// cursor.
//
// The search first finds the assigned waypoint nearest to target, comparing
// waypoint positions only. Of the two segments meeting there, the one
// towards the nearer neighbour is refined by a continuous search. This is
// linear in the number of waypoints, but may miss the global closest point
// for strongly curved segments whose end points are far from their curve.
func ClosestPoint(path *Path, target r3.Vector) (Nearest, error) {
	cnt, err := validate(path)
	if err != nil {
		tracer().Errorf("closest point: %v", err)
		return Nearest{}, err
	}
	nearest, best := -1, 0.0
	for i := range path.waypoints {
		w, ok := path.assigned(i)
		if !ok {
			continue
		}
		if d := w.Position.Sub(target).Norm2(); nearest < 0 || d < best {
			nearest, best = i, d
		}
	}
	if cnt == 1 {
		w, _ := path.assigned(nearest)
		return Nearest{Point: w.Position, Index: nearest}, nil
	}
	start := nearest
	prev, hasPrev := PreviousAssignedIndex(path, nearest, true)
	next, hasNext := NextAssignedIndex(path, nearest, true)
	if hasPrev && (!hasNext || dist2(path, prev, target) < dist2(path, next, target)) {
		start = prev
	}
	tracer().Debugf("nearest waypoint %d, refining segment from %d", nearest, start)
	return ClosestPointOnSegment(path, start, target)
}

func dist2(path *Path, i int, target r3.Vector) float64 {
	w, _ := path.assigned(i)
	return w.Position.Sub(target).Norm2()
}
