package path

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/waypath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func near(t *testing.T, want, got r3.Vector, margin float64) {
	t.Helper()
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, margin)); d != "" {
		t.Error(d)
	}
}

// two waypoints on a straight line along X, with explicit handles
func xline() *Path {
	return Nullpath().
		Waypoint(P(0, 0, 0), P(-1, 0, 0), P(1, 0, 0)).
		Waypoint(P(10, 0, 0), P(9, 0, 0), P(11, 0, 0)).
		End()
}

// an S-shaped path through three waypoints, leaving the XY plane
func swoop() *Path {
	return Nullpath().
		Waypoint(P(0, 0, 0), P(0, -2, 0), P(0, 2, 0)).
		Waypoint(P(5, 5, 1), P(2, 5, 0), P(8, 5, 2)).
		Waypoint(P(10, 0, 3), P(10, 3, 3), P(10, -3, 3)).
		End()
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(P(0, 0, 0)).Reserve().Knot(P(3, 0, 0)).End()
	assert.Equal(t, 3, path.N())
	assert.False(t, path.IsCycle())
	assert.Equal(t, Reserved{}, path.W(1))
	assert.Equal(t, Reserved{}, path.W(17))
	w, ok := path.W(0).(Assigned)
	require.True(t, ok)
	near(t, P(1, 0, 0), w.OutControl, 1e-12)
	near(t, P(0, 0, 0), w.InControl, 1e-12)
	w, ok = path.W(2).(Assigned)
	require.True(t, ok)
	near(t, P(2, 0, 0), w.InControl, 1e-12)
	t.Log(AsString(path))
}

func TestNewPathCopies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ws := []Waypoint{At(P(0, 0, 0), P(0, 0, 0), P(1, 0, 0)), nil, At(P(3, 0, 0), P(2, 0, 0), P(3, 0, 0))}
	path := NewPath(ws, true, waypath.Frame{})
	ws[0] = Reserved{}
	_, ok := path.W(0).(Assigned)
	assert.True(t, ok, "path must not share the waypoint list")
	assert.Equal(t, Reserved{}, path.W(1), "nil slots count as reserved")
	assert.True(t, path.IsCycle())
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(P(0, 0, 0)).Knot(P(10, 0, 0)).End()
	want := "(0,0,0) .. controls (3.3333,0.0000,0.0000) and (6.6667,0.0000,0.0000)\n  .. (10,0,0)"
	assert.Equal(t, want, AsString(path))
	cycle := Nullpath().Knot(P(0, 0, 0)).Knot(P(3, 0, 0)).Knot(P(0, 3, 0)).Cycle()
	assert.Contains(t, AsString(cycle), " .. cycle")
	assert.Equal(t, "<nil>", AsString(nil))
}

func TestBoundaryIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, path := range []*Path{xline(), swoop(), triangle(true)} {
		for i, n := 0, path.N(); i < n; i++ {
			seg, j, err := SegmentAt(path, i)
			if errors.Is(err, ErrNoNextWaypoint) {
				continue
			}
			require.NoError(t, err)
			p0, err := PointOnPath(path, i, 0)
			require.NoError(t, err)
			p3, err := PointOnPath(path, i, 1)
			require.NoError(t, err)
			a, _ := path.W(i).(Assigned)
			b, _ := path.W(j).(Assigned)
			near(t, a.Position, p0, 1e-12)
			near(t, b.Position, p3, 1e-12)
			near(t, seg.P0, p0, 1e-12)
		}
	}
}

func TestStraightLineScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	path := xline()
	pt, err := PointOnPath(path, 0, 0.5)
	require.NoError(t, err)
	near(t, P(5, 0, 0), pt, 1e-12)
	k, err := Curvature(path, 0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, k, 1e-9)
	n, err := ClosestPoint(path, P(5, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n.T, 1e-3)
	assert.Equal(t, 0, n.Index)
	near(t, P(5, 0, 0), n.Point, 1e-3)
	tan, err := Tangent(path, 0, 0.5)
	require.NoError(t, err)
	near(t, P(1, 0, 0), tan, 1e-12)
	// t is clamped
	pt, err = PointOnPath(path, 0, 1.7)
	require.NoError(t, err)
	near(t, P(10, 0, 0), pt, 1e-12)
}

func TestMustPointOnPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	near(t, P(5, 0, 0), MustPointOnPath(xline(), 0, 0.5), 1e-12)
	mustPanic(t, func() { MustPointOnPath(Nullpath().End(), 0, 0.5) })
}

func TestEmptyPathFails(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, path := range []*Path{nil, Nullpath().End(), Nullpath().Reserve().Reserve().Cycle()} {
		_, err := PointOnPath(path, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = FrenetFrame(path, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = Curvature(path, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = CurvatureInPlane(path, 0, 0, P(0, 0, 1))
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = VelocityAtPoint(path, P(0, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = ClosestPoint(path, P(0, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = ClosestPointOnSegment(path, 0, P(0, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = AdvanceByDistance(path, 0, 0, 1, 10)
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = DistanceBetweenWaypoints(path, 0, 10)
		assert.ErrorIs(t, err, ErrInvalidPath)
		_, err = Length(path, 10)
		assert.ErrorIs(t, err, ErrInvalidPath)
	}
}

func TestSinglePointPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Reserve().Knot(P(1, 2, 3)).End()
	pt, err := PointOnPath(path, 1, 0.7)
	require.NoError(t, err)
	assert.Equal(t, P(1, 2, 3), pt)
	n, err := ClosestPoint(path, P(100, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, Nearest{Point: P(1, 2, 3), T: 0, Index: 1}, n)
	n, err = ClosestPointOnSegment(path, 1, P(100, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, Nearest{Point: P(1, 2, 3), T: 0, Index: 1}, n)
	m, err := AdvanceByDistance(path, 1, 0.3, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, P(1, 2, 3), m.Point)
	assert.Equal(t, 0.0, m.T)
	d, err := DistanceBetweenWaypoints(path, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	// directions need a segment
	_, err = Tangent(path, 1, 0.5)
	assert.ErrorIs(t, err, ErrInvalidPath)
	_, _, err = SegmentAt(path, 1)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestCursorErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(P(0, 0, 0)).Reserve().Knot(P(3, 0, 0)).End()
	_, err := PointOnPath(path, 3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = PointOnPath(path, -1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = PointOnPath(path, 1, 0)
	assert.ErrorIs(t, err, ErrReservedWaypoint)
	_, err = PointOnPath(path, 2, 0)
	assert.ErrorIs(t, err, ErrNoNextWaypoint)
	// the closing segment of a circuit exists
	_, err = PointOnPath(triangle(true), 2, 0.5)
	assert.NoError(t, err)
	_, err = CurvatureInPlane(path, 0, 0.5, P(0, 0, 0))
	assert.ErrorIs(t, err, ErrZeroNormal)
}

func TestFrenetFrameOnPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := swoop()
	for i := 0; i < 2; i++ {
		for _, ts := range []float64{0.1, 0.5, 0.9} {
			f, err := FrenetFrame(path, i, ts)
			require.NoError(t, err)
			assert.True(t, f.Tangent.IsUnit())
			assert.True(t, f.Normal.IsUnit())
			tan, _ := Tangent(path, i, ts)
			nrm, _ := Normal(path, i, ts)
			near(t, tan, f.Tangent, 1e-12)
			near(t, nrm, f.Normal, 1e-12)
			near(t, f.Tangent.Cross(f.Normal), f.Binormal, 1e-12)
		}
	}
}

func TestTangentConsistencyOnPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const eps = 1e-3
	path := swoop()
	for i := 0; i < 2; i++ {
		for _, ts := range []float64{0, 0.25, 0.5, 0.75} {
			p, _ := PointOnPath(path, i, ts)
			q, _ := PointOnPath(path, i, ts+eps)
			tan, err := Tangent(path, i, ts)
			require.NoError(t, err)
			if d := q.Sub(p).Normalize().Sub(tan).Norm(); d > 1e-2 {
				t.Errorf("tangent at %d/%g deviates by %g", i, ts, d)
			}
		}
	}
}

func TestCurvatureInPlaneOnPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().
		Waypoint(P(0, 0, 0), P(0, -3, 0), P(0, 3, 0)).
		Waypoint(P(10, 10, 0), P(7, 10, 0), P(13, 10, 0)).
		End()
	k, err := Curvature(path, 0, 0.5)
	require.NoError(t, err)
	assert.Greater(t, k, 0.01)
	// the path lies in the XY plane; a non-unit normal is normalized
	kp, err := CurvatureInPlane(path, 0, 0.5, P(0, 0, 5))
	require.NoError(t, err)
	assert.InDelta(t, k, kp, 1e-9)
}

func TestVelocityAtPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	frame := waypath.Frame{
		Anchor:          P(0, 0, 0),
		Velocity:        P(1, 0, 0),
		AngularVelocity: P(0, 0, 0.5),
	}
	path := xline().AttachTo(frame)
	pt := MustPointOnPath(path, 0, 0.5) // (5,0,0)
	v, err := VelocityAtPoint(path, pt)
	require.NoError(t, err)
	// (1,0,0) + (0,0,0.5) × (5,0,0)
	near(t, P(1, 2.5, 0), v, 1e-12)
}

func TestTransformedPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := swoop().Cache(20)
	m := waypath.Rotation(P(0, 0, 1), math.Pi/2).Combine(waypath.Translation(P(0, 0, 7)))
	moved := path.Transformed(m)
	for i := 0; i < 2; i++ {
		p, _ := PointOnPath(path, i, 0.3)
		q, _ := PointOnPath(moved, i, 0.3)
		near(t, m.Transform(p), q, 1e-9)
		k, _ := Curvature(path, i, 0.3)
		km, _ := Curvature(moved, i, 0.3)
		assert.InDelta(t, k, km, 1e-9)
	}
	w, _ := moved.W(1).(Assigned)
	assert.Equal(t, 0.0, w.DistanceFromPrevious)
}
