package orrery

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/soniakeys/meeus/v3/julian"
)

func TestSamplePathCircle(t *testing.T) {
	el := mustElements(t, 3.0, 0, 28, 120, 40, 0, 10, nil)
	pts := el.SamplePath(64)
	if len(pts) != 65 {
		t.Fatalf("expected 65 points, got %d", len(pts))
	}
	for k, pt := range pts {
		if !floats.EqualWithinAbs(Norm(pt), 3.0, 1e-9) {
			t.Fatalf("point %d at distance %f", k, Norm(pt))
		}
	}
}

func TestSamplePathExtremes(t *testing.T) {
	el := mustElements(t, 1.0, 0.2, 0, 0, 0, 0, 1.0, nil)
	pts := el.SamplePath(360)
	// First point is periapsis on +X, the halfway point apoapsis on -X, and
	// the loop closes onto its start.
	if !vectorsEqual(pts[0], []float64{0.8, 0, 0}, 1e-9) {
		t.Fatalf("periapsis point %+v", pts[0])
	}
	if !vectorsEqual(pts[180], []float64{-1.2, 0, 0}, 1e-9) {
		t.Fatalf("apoapsis point %+v", pts[180])
	}
	if !vectorsEqual(pts[360], pts[0], 1e-9) {
		t.Fatalf("path does not close: %+v vs %+v", pts[360], pts[0])
	}
	// Every point obeys the conic bounds.
	for k, pt := range pts {
		r := Norm(pt)
		if r < 0.8-1e-9 || r > 1.2+1e-9 {
			t.Fatalf("point %d at distance %f outside [rp, ra]", k, r)
		}
	}
}

func TestSamplePathRestartable(t *testing.T) {
	el := mustElements(t, 1.5, 0.6, 45, 90, 270, 33, 400, nil)
	a := el.SamplePath(33)
	b := el.SamplePath(33)
	for k := range a {
		for c := 0; c < 3; c++ {
			if a[k][c] != b[k][c] {
				t.Fatalf("point %d differs between calls", k)
			}
		}
	}
	if el.SamplePath(0) != nil {
		t.Fatal("degenerate segment count should yield no path")
	}
}

func TestSamplePathMatchesPosition(t *testing.T) {
	// The closed-form path and the time-of-flight propagation describe the
	// same ellipse: every propagated position must fall on the sampled
	// polyline. With 720 segments the spacing between neighboring samples
	// tops out near 0.012 at apoapsis, so a propagated point can be at most
	// half that from its nearest sample.
	el := mustElements(t, 1.0, 0.35, 30, 60, 45, 0, 5.0, nil)
	pts := el.SamplePath(720)
	epoch := julian.JDToTime(J2000)
	for _, hours := range []int{0, 11, 37, 59, 101} {
		pos, err := el.Position(epoch.Add(time.Duration(hours) * time.Hour))
		if err != nil {
			t.Fatal(err)
		}
		nearest := math.Inf(1)
		for _, pt := range pts {
			d := Norm([]float64{pos[0] - pt[0], pos[1] - pt[1], pos[2] - pt[2]})
			if d < nearest {
				nearest = d
			}
		}
		if nearest > 0.01 {
			t.Fatalf("+%dh: position %+v is %f away from the sampled path", hours, pos, nearest)
		}
	}
}
