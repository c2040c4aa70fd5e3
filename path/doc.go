// Package path evaluates piecewise cubic Bezier paths through an ordered
// list of waypoints, for entities which have to move smoothly along them,
// e.g. docking approaches or patrol routes.
/*

Waypoints

A path is a list of slots. Each slot holds either an Assigned waypoint,
which has a position and two Bezier handles (the incoming and the outgoing
control point), or is Reserved, a placeholder skipped by every query.
Consecutive assigned waypoints i and j span a cubic segment

   p0 = w[i].Position, p1 = w[i].OutControl, p2 = w[j].InControl, p3 = w[j].Position

If the path is a closed circuit, the last assigned waypoint connects back to
the first one.

Cursors

Clients moving along a path keep a cursor: the slot of the waypoint which
starts the segment they currently occupy, plus a segment-local parameter
t ∈ [0,1]. All queries are relative to such a cursor, except ClosestPoint,
which finds one from scratch. AdvanceByDistance moves a cursor forward by
an arc length.

   path := Nullpath().Knot(P(0,0,0)).Knot(P(10,0,0)).Knot(P(10,10,0)).End()
   m, err := AdvanceByDistance(path, 0, 0, 15, 0)
   // m.Index == 1, m.T ≈ 0.5, m.Point ≈ (10,5,0)

Paths are never modified by queries and no state is kept between calls;
paths may be queried from concurrent goroutines.

Degenerate paths

A path without assigned waypoints is invalid for every query. A path with a
single assigned waypoint has no segments: position-like queries return the
waypoint itself with t = 0, direction-like queries (tangent, normal,
curvature) fail with ErrInvalidPath.

Caveats

Curvature and directions are undefined at cusps, where the first
derivative of a segment vanishes. Results may be NaN there.

The closest point search is local. For sharply bent segments it may find a
local instead of the global minimum.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package path

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// AsString returns a path as a (debugging) string. Waypoints are printed with
// their handles, reserved slots are skipped.
//
// Example, a straight line along X:
//
//	(0,0,0) .. controls (3.3333,0.0000,0.0000) and (6.6667,0.0000,0.0000)
//	  .. (10,0,0)
//
// The format is similar to MetaPost's.
func AsString(path *Path) string {
	if path == nil {
		return "<nil>"
	}
	var s string
	first, ok := FirstAssignedIndex(path)
	for i := first; ok; {
		w, _ := path.assigned(i)
		if i != first {
			s += fmt.Sprintf(" and %s\n  .. ", ptstring(w.InControl, true))
		}
		s += ptstring(w.Position, false)
		next, more := NextAssignedIndex(path, i, true)
		if more {
			s += fmt.Sprintf(" .. controls %s", ptstring(w.OutControl, true))
		}
		if !more || next <= i {
			break
		}
		i = next
	}
	if path.IsCycle() && ok {
		if w, _ := path.assigned(first); AssignedCount(path) > 1 {
			s += fmt.Sprintf(" and %s\n ", ptstring(w.InControl, true))
		}
		s += " .. cycle"
	}
	return s
}

func ptstring(p r3.Vector, iscontrol bool) string {
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f,%.4f)", round(p.X), round(p.Y), round(p.Z))
	}
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p.X), round(p.Y), round(p.Z))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
