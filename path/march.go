package path

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/waypath"
	"github.com/npillmayer/waypath/bezier"
)

// Tuning of the arc length marcher.
var (
	// DefaultIterations is the number of marching steps used within the
	// target segment if callers do not specify a positive count.
	DefaultIterations = 10
	// MinStepT is the smallest step in t the marcher takes.
	MinStepT = 0.001
)

// March is the result of advancing along a path.
type March struct {
	Point      r3.Vector // position reached
	Curvature  float64   // curvature at Point
	Index      int       // slot of the waypoint starting the segment of Point
	T          float64   // segment-local parameter of Point
	ReachedEnd bool      // an open path ended before the distance was covered
}

// AdvanceByDistance walks forward along a path from (lastIndex, t) by an
// arc length of distance and reports where it arrives.
//
// Whole segments are skipped using the waypoints' cached distances (or a
// sampled length, where none is cached). Within the target segment the
// marcher steps t forward, accumulating sampled lengths, and interpolates
// the crossing linearly. iterations controls the number of steps expected
// for that; values below 1 select DefaultIterations.
//
// On an open path the walk stops at the last assigned waypoint, with t = 1
// and ReachedEnd set. On a circuit, whole laps are skipped in one step.
// A distance of 0 returns the start point unchanged. Negative distances and
// distances which are NaN or infinite are rejected with ErrInvalidDistance.
func AdvanceByDistance(path *Path, lastIndex int, t, distance float64, iterations int) (March, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || (distance < 0 && !waypath.Is0(distance)) {
		tracer().Errorf("advance by distance: %g", distance)
		return March{}, fmt.Errorf("%w: %g", ErrInvalidDistance, distance)
	}
	c, err := resolve(path, lastIndex)
	if err != nil {
		tracer().Errorf("advance by distance: %v", err)
		return March{}, err
	}
	if c.single {
		return March{Point: c.point, Index: c.from}, nil
	}
	t = waypath.Clamp01(t)
	if waypath.Is0(distance) {
		return arrive(c.seg, lastIndex, t), nil
	}
	if iterations < 1 {
		iterations = DefaultIterations
	}
	from, to, seg := c.from, c.to, c.seg
	remaining := distance
	ahead := bezier.SegmentLength(seg, t, 1, bezier.DefaultLineSegments)
	empty := 0 // consecutive segments of length 0
	lapped := !path.IsCycle()
	for remaining > ahead {
		next, ok := NextAssignedIndex(path, to, true)
		if !ok || empty > path.N() {
			tracer().Debugf("reached end of path at waypoint %d", to)
			m := arrive(seg, from, 1)
			m.ReachedEnd = true
			return m, nil
		}
		remaining -= ahead
		if !lapped { // skip whole laps of a circuit at once
			lapped = true
			if lap := lapLength(path); lap > 0 && remaining > lap {
				remaining = math.Mod(remaining, lap)
			}
		}
		from, to, t = to, next, 0
		seg = path.segment(from, to)
		ahead = cachedLength(path, to, seg)
		if ahead > 0 {
			empty = 0
		} else {
			empty++
		}
	}
	t = marchWithin(seg, t, remaining, ahead, iterations)
	return arrive(seg, from, t), nil
}

// marchWithin steps along seg from t until an arc length of distance is
// covered. ahead is the estimated length from t to the end of seg and must
// not be smaller than distance.
func marchWithin(seg bezier.Segment, t, distance, ahead float64, iterations int) float64 {
	minStep := MinStepT
	if minStep <= 0 {
		minStep = 0.001
	}
	expected := (1 - t) * distance / ahead
	step := math.Max(expected/float64(iterations), minStep)
	var covered float64
	for t < 1 {
		next := math.Min(t+step, 1)
		l := bezier.SegmentLength(seg, t, next, 1)
		if covered+l >= distance {
			if l > 0 {
				t += (distance - covered) / l * (next - t)
			} else {
				t = next
			}
			return waypath.Clamp01(t)
		}
		covered += l
		t = next
	}
	return 1
}

// cachedLength returns the precomputed distance to waypoint i, or samples
// seg if none is cached.
func cachedLength(path *Path, i int, seg bezier.Segment) float64 {
	if w, ok := path.assigned(i); ok && w.DistanceFromPrevious > 0 {
		return w.DistanceFromPrevious
	}
	return bezier.SegmentLength(seg, 0, 1, bezier.DefaultLineSegments)
}

// lapLength is the length of a circuit, measured the way the marcher
// measures single segments.
func lapLength(path *Path) float64 {
	lap, err := Length(path, bezier.DefaultLineSegments)
	if err != nil {
		return 0
	}
	return lap
}

func arrive(seg bezier.Segment, index int, t float64) March {
	return March{
		Point:     seg.Eval(t),
		Curvature: seg.Curvature(t),
		Index:     index,
		T:         t,
	}
}
