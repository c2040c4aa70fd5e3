package bezier

import (
	"github.com/golang/geo/r3"
	"github.com/npillmayer/waypath"
)

// Tuning of the closest point search.
var (
	// CoarseSamples is the number of uniformly spaced probes of the coarse
	// phase, including both end points.
	CoarseSamples = 6
	// RefineTolerance terminates the refinement once the search window
	// has shrunk below it.
	RefineTolerance = 0.0001
	// maxRefineSteps bounds the refinement loop.
	maxRefineSteps = 1000
)

// Closest finds the point on s closest to target, together with its
// parameter t.
//
// The search runs in two phases. A coarse phase probes CoarseSamples
// uniformly spaced parameters (0, 0.2, …, 1 for the default of 6) and keeps
// the nearest one. The refine phase then probes t ± w, starting with w at
// half the coarse step. If a probe improves on the best distance, t moves
// there and w is kept; otherwise w is halved. The search ends when w drops
// below RefineTolerance.
//
// This is a local search: it assumes the coarse phase bracketed the true
// minimum within one coarse interval. For segments with several local
// minima inside one interval (sharp S-curves) the global minimum is not
// guaranteed.
func (s Segment) Closest(target r3.Vector) (r3.Vector, float64) {
	n := CoarseSamples
	if n < 2 {
		n = 2
	}
	coarse := 1.0 / float64(n-1)
	bestT, bestD := 0.0, s.Eval(0).Sub(target).Norm2()
	for i := 1; i < n; i++ {
		t := float64(i) * coarse
		if d := s.Eval(t).Sub(target).Norm2(); d < bestD {
			bestT, bestD = t, d
		}
	}
	w := coarse / 2
	for step := 0; w >= RefineTolerance && step < maxRefineSteps; step++ {
		improved := false
		for _, t := range [2]float64{waypath.Clamp01(bestT - w), waypath.Clamp01(bestT + w)} {
			if d := s.Eval(t).Sub(target).Norm2(); d < bestD {
				bestT, bestD = t, d
				improved = true
			}
		}
		if !improved {
			w /= 2
		}
	}
	tracer().Debugf("closest point on segment at t=%.5f, d²=%g", bestT, bestD)
	return s.Eval(bestT), bestT
}
