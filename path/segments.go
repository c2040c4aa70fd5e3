package path

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/waypath/bezier"
)

// cursor is a resolved query position: the segment starting at an assigned
// waypoint, or the lone waypoint of a single-point path.
type cursor struct {
	seg    bezier.Segment // segment from waypoint 'from' to waypoint 'to'
	from   int            // start waypoint of seg
	to     int            // end waypoint of seg
	single bool           // path has exactly one assigned waypoint
	point  r3.Vector      // the lone waypoint, if single
}

// validate checks that a path is usable for queries at all, i.e. it has at
// least one assigned waypoint. It returns the number of assigned waypoints.
func validate(path *Path) (int, error) {
	if path == nil {
		return 0, fmt.Errorf("%w: path must not be nil", ErrInvalidPath)
	}
	cnt := AssignedCount(path)
	if cnt == 0 {
		return 0, fmt.Errorf("%w: path has no assigned waypoints", ErrInvalidPath)
	}
	return cnt, nil
}

// resolve turns a cursor index into the segment starting there.
func resolve(path *Path, lastIndex int) (cursor, error) {
	cnt, err := validate(path)
	if err != nil {
		return cursor{}, err
	}
	if lastIndex < 0 || lastIndex >= path.N() {
		return cursor{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, lastIndex, path.N())
	}
	if cnt == 1 {
		first, _ := FirstAssignedIndex(path)
		w, _ := path.assigned(first)
		return cursor{from: first, to: first, single: true, point: w.Position}, nil
	}
	if _, ok := path.assigned(lastIndex); !ok {
		return cursor{}, fmt.Errorf("%w: slot %d", ErrReservedWaypoint, lastIndex)
	}
	next, ok := NextAssignedIndex(path, lastIndex, true)
	if !ok {
		return cursor{}, fmt.Errorf("%w after slot %d", ErrNoNextWaypoint, lastIndex)
	}
	return cursor{seg: path.segment(lastIndex, next), from: lastIndex, to: next}, nil
}

// SegmentAt returns the Bezier segment starting at the assigned waypoint in
// slot lastIndex, together with the slot of its end waypoint. Paths with a
// single assigned waypoint have no segments and are reported as
// ErrInvalidPath.
func SegmentAt(path *Path, lastIndex int) (bezier.Segment, int, error) {
	c, err := resolve(path, lastIndex)
	if err != nil {
		return bezier.Segment{}, -1, err
	}
	if c.single {
		return bezier.Segment{}, -1, fmt.Errorf("%w: single waypoint has no segment", ErrInvalidPath)
	}
	return c.seg, c.to, nil
}

// Segments calls f for every segment of a path, in order, including the
// closing segment of a circuit. It stops early if f returns false.
func Segments(path *Path, f func(from, to int, seg bezier.Segment) bool) {
	from, ok := FirstAssignedIndex(path)
	for ok {
		to, more := NextAssignedIndex(path, from, true)
		if !more {
			return
		}
		if !f(from, to, path.segment(from, to)) {
			return
		}
		if to <= from { // wrapped around
			return
		}
		from = to
	}
}
