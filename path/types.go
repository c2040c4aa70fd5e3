package path

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/bezier"
)

// tracer writes to trace with key 'waypath'
func tracer() tracing.Trace {
	return tracing.Select("waypath")
}

var (
	// ErrInvalidPath indicates a nil path, a path without assigned waypoints, or
	// a path with too few assigned waypoints for the requested operation.
	ErrInvalidPath = errors.New("invalid path")
	// ErrIndexOutOfRange indicates a cursor outside of the waypoint list.
	ErrIndexOutOfRange = errors.New("waypoint index out of range")
	// ErrReservedWaypoint indicates a cursor addressing a reserved slot.
	ErrReservedWaypoint = errors.New("waypoint slot is reserved")
	// ErrNoNextWaypoint indicates that no assigned waypoint follows the cursor.
	ErrNoNextWaypoint = errors.New("no next assigned waypoint")
	// ErrInvalidDistance indicates an attempt to march backwards or by a
	// distance which is not a finite number.
	ErrInvalidDistance = errors.New("distance must be finite and not negative")
	// ErrZeroNormal indicates a plane normal of length 0.
	ErrZeroNormal = errors.New("plane normal must not be zero")
)

// Waypoint is a slot in a path. It is either Assigned, carrying a position
// and Bezier handles, or Reserved, which is skipped by every query.
// A nil Waypoint counts as Reserved.
type Waypoint interface {
	isWaypoint()
}

// Assigned is an authored waypoint.
type Assigned struct {
	Position   r3.Vector // world space position
	InControl  r3.Vector // handle for the direction of arrival
	OutControl r3.Vector // handle for the direction of departure
	// DistanceFromPrevious is the precomputed arc length to the previous
	// assigned waypoint. Values ≤ 0 count as "not cached".
	DistanceFromPrevious float64
}

// Reserved is an empty slot, reserved for a waypoint to be filled in later.
type Reserved struct{}

func (Assigned) isWaypoint() {}
func (Reserved) isWaypoint() {}

// At creates an assigned waypoint at position p with both handles given.
func At(p, in, out r3.Vector) Assigned {
	return Assigned{Position: p, InControl: in, OutControl: out}
}

// Path is an ordered sequence of waypoints, optionally closed to a circuit,
// attached to a rigid motion frame.
//
// Queries never modify a path. To construct a path, either start with
// Nullpath() and extend it, or call NewPath.
type Path struct {
	waypoints []Waypoint    // slot i
	cycle     bool          // is this path a closed circuit ?
	frame     waypath.Frame // frame the path moves with
	straight  []bool        // builder: knot i wants handles along its chords
}

// NewPath creates a path from a list of waypoints. The list is copied.
func NewPath(waypoints []Waypoint, closed bool, frame waypath.Frame) *Path {
	path := &Path{cycle: closed, frame: frame}
	path.waypoints = make([]Waypoint, len(waypoints))
	copy(path.waypoints, waypoints)
	return path
}

// IsCycle is a predicate: is this path a closed circuit?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the number of waypoint slots, including reserved ones.
func (path *Path) N() int {
	return len(path.waypoints)
}

// W returns the waypoint in slot i. Slots out of range are reported as
// Reserved.
func (path *Path) W(i int) Waypoint {
	if i < 0 || i >= path.N() || path.waypoints[i] == nil {
		return Reserved{}
	}
	return path.waypoints[i]
}

// Frame returns the motion frame the path is attached to.
func (path *Path) Frame() waypath.Frame {
	return path.frame
}

// Transformed returns a copy of the path with all waypoints and the frame
// transformed by m. Cached distances are dropped, as m need not preserve
// lengths.
func (path *Path) Transformed(m waypath.AT) *Path {
	t := &Path{cycle: path.cycle, frame: path.frame.Transformed(m)}
	t.waypoints = make([]Waypoint, path.N())
	for i := range path.waypoints {
		w, ok := path.assigned(i)
		if !ok {
			t.waypoints[i] = Reserved{}
			continue
		}
		t.waypoints[i] = Assigned{
			Position:   m.Transform(w.Position),
			InControl:  m.Transform(w.InControl),
			OutControl: m.Transform(w.OutControl),
		}
	}
	return t
}

// assigned returns the waypoint in slot i if it is assigned.
func (path *Path) assigned(i int) (Assigned, bool) {
	switch w := path.W(i).(type) {
	case Assigned:
		return w, true
	default:
		return Assigned{}, false
	}
}

// segment builds the Bezier segment between the assigned waypoints i and j.
func (path *Path) segment(i, j int) bezier.Segment {
	a, _ := path.assigned(i)
	b, _ := path.assigned(j)
	return bezier.Segment{
		P0: a.Position,
		P1: a.OutControl,
		P2: b.InControl,
		P3: b.Position,
	}
}
