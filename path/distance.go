package path

import (
	"github.com/npillmayer/waypath/bezier"
)

// DistanceBetweenWaypoints approximates the arc length of the segment
// starting at lastIndex, sampled with sampleCount line segments. Values of
// sampleCount below 1 select bezier.DefaultLineSegments. A path with a single
// assigned waypoint has length 0.
func DistanceBetweenWaypoints(path *Path, lastIndex, sampleCount int) (float64, error) {
	c, err := resolve(path, lastIndex)
	if err != nil {
		tracer().Errorf("distance between waypoints: %v", err)
		return 0, err
	}
	if c.single {
		return 0, nil
	}
	return bezier.SegmentLength(c.seg, 0, 1, sampleCount), nil
}

// MeasureDistances computes, for every slot of a path, the arc length from
// the previous assigned waypoint, i.e. the values an authoring tool caches
// as Assigned.DistanceFromPrevious. Reserved slots and waypoints without a
// predecessor get 0. The path is not modified.
func MeasureDistances(path *Path, sampleCount int) []float64 {
	if path == nil {
		return nil
	}
	distances := make([]float64, path.N())
	Segments(path, func(from, to int, seg bezier.Segment) bool {
		distances[to] = bezier.SegmentLength(seg, 0, 1, sampleCount)
		return true
	})
	return distances
}

// Length approximates the total arc length of a path, including the closing
// segment of a circuit. Cached distances are used where present, other
// segments are sampled with sampleCount line segments.
func Length(path *Path, sampleCount int) (float64, error) {
	if _, err := validate(path); err != nil {
		return 0, err
	}
	var length float64
	Segments(path, func(from, to int, seg bezier.Segment) bool {
		if w, _ := path.assigned(to); w.DistanceFromPrevious > 0 {
			length += w.DistanceFromPrevious
		} else {
			length += bezier.SegmentLength(seg, 0, 1, sampleCount)
		}
		return true
	})
	return length, nil
}
