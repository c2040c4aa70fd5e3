package path

import (
	"github.com/golang/geo/r3"
	"github.com/npillmayer/waypath"
)

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed triangle, where the first
// waypoint carries explicit handles and the other two get straight handles
// towards their neighbours.
//
//	path = Nullpath().Waypoint(P(0,0,0), P(-1,0,0), P(1,0,0)).
//	    Knot(P(10,0,0)).Reserve().Knot(P(5,8,0)).Cycle()
//
// Calling Cycle() or End() returns the finished path. The builder is meant
// for the authoring side; queries never modify a path.
func Nullpath() *Path {
	return &Path{}
}

// P is a quick notation for contructing a position, see waypath.V.
func P(x, y, z float64) r3.Vector {
	return waypath.V(x, y, z)
}

// End finishes an open path. Part of builder functionality.
func (path *Path) End() *Path {
	path.straighten()
	return path
}

// Cycle closes a circuit, connecting the last assigned waypoint back to the
// first one. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	path.straighten()
	return path
}

// Add appends a waypoint of any kind. Part of builder functionality.
func (path *Path) Add(w Waypoint) *Path {
	if w == nil {
		w = Reserved{}
	}
	path.waypoints = append(path.waypoints, w)
	path.straight = append(path.straight, false)
	return path
}

// Waypoint appends an assigned waypoint at position p with explicit handles.
// Part of builder functionality.
func (path *Path) Waypoint(p, in, out r3.Vector) *Path {
	return path.Add(At(p, in, out))
}

// Knot appends an assigned waypoint at position p. Its handles are placed at
// a third of the way to the neighbouring waypoints when the path is finished
// by End() or Cycle(). Part of builder functionality.
func (path *Path) Knot(p r3.Vector) *Path {
	path.Add(At(p, p, p))
	path.straight[path.N()-1] = true
	return path
}

// Reserve appends an empty slot. Part of builder functionality.
func (path *Path) Reserve() *Path {
	return path.Add(Reserved{})
}

// AttachTo sets the motion frame the path moves with. Part of builder
// functionality.
func (path *Path) AttachTo(frame waypath.Frame) *Path {
	path.frame = frame
	return path
}

// Cache stores precomputed distances between assigned waypoints, measured
// with the given number of line segments per segment. Part of builder
// functionality.
func (path *Path) Cache(lineSegments int) *Path {
	distances := MeasureDistances(path, lineSegments)
	for i, d := range distances {
		if w, ok := path.assigned(i); ok {
			w.DistanceFromPrevious = d
			path.waypoints[i] = w
		}
	}
	return path
}

// straighten places the handles of knots along the chords to their
// neighbours.
func (path *Path) straighten() {
	for i, s := range path.straight {
		if !s {
			continue
		}
		w, _ := path.assigned(i)
		if prev, ok := PreviousAssignedIndex(path, i, true); ok {
			q, _ := path.assigned(prev)
			w.InControl = w.Position.Add(q.Position.Sub(w.Position).Mul(1.0 / 3.0))
		}
		if next, ok := NextAssignedIndex(path, i, true); ok {
			q, _ := path.assigned(next)
			w.OutControl = w.Position.Add(q.Position.Sub(w.Position).Mul(1.0 / 3.0))
		}
		path.waypoints[i] = w
		path.straight[i] = false
	}
	tracer().Debugf("path = %s", AsString(path))
}
