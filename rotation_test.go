package orrery

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestRotationBasics(t *testing.T) {
	// R3 by 90° sends X onto -Y in a right-handed frame (frame rotation).
	got := MxV33(R3(math.Pi/2), []float64{1, 0, 0})
	if !vectorsEqual(got, []float64{0, -1, 0}, 1e-12) {
		t.Fatalf("R3(90°)·X = %+v", got)
	}
	// R1 leaves X alone.
	got = MxV33(R1(1.234), []float64{1, 0, 0})
	if !vectorsEqual(got, []float64{1, 0, 0}, 1e-12) {
		t.Fatalf("R1·X = %+v", got)
	}
	// Rotations about different axes do not commute.
	var ab, ba mat64.Dense
	ab.Mul(R3(0.4), R1(0.7))
	ba.Mul(R1(0.7), R3(0.4))
	if mat64.EqualApprox(&ab, &ba, 1e-12) {
		t.Fatal("R3·R1 should differ from R1·R3")
	}
}

func TestPQW2EclipticIdentity(t *testing.T) {
	v := []float64{0.8, -0.3, 0}
	if got := PQW2Ecliptic(0, 0, 0, v); !vectorsEqual(got, v, 1e-12) {
		t.Fatalf("zero angles must be the identity, got %+v", got)
	}
	// ω and Ω rotate about the same axis when i=0, so they must compose
	// additively.
	a := PQW2Ecliptic(0, 0.25, 0.5, v)
	b := PQW2Ecliptic(0, 0.75, 0, v)
	if !vectorsEqual(a, b, 1e-12) {
		t.Fatalf("coplanar ω+Ω composition broken: %+v vs %+v", a, b)
	}
}

func TestPQW2EclipticInclination(t *testing.T) {
	// A 90° tilt with no node or periapsis rotation maps the in-plane Y axis
	// onto the pole.
	got := PQW2Ecliptic(math.Pi/2, 0, 0, []float64{0, 1, 0})
	if !vectorsEqual(got, []float64{0, 0, 1}, 1e-12) {
		t.Fatalf("90° tilt: %+v", got)
	}
	// X lies on the line of nodes and must be untouched by the tilt.
	got = PQW2Ecliptic(math.Pi/2, 0, 0, []float64{1, 0, 0})
	if !vectorsEqual(got, []float64{1, 0, 0}, 1e-12) {
		t.Fatalf("line of nodes moved: %+v", got)
	}
}

func TestPQW2EclipticVallado(t *testing.T) {
	// Vallado's COE2RV example, page 119: p=11067.790 km, e=0.83285,
	// i=87.87°, Ω=227.89°, ω=53.38°, ν=92.335°.
	p, e := 11067.790, 0.83285
	i, Ω, ω, ν := Deg2rad(87.87), Deg2rad(227.89), Deg2rad(53.38), Deg2rad(92.335)
	r := p / (1 + e*math.Cos(ν))
	sν, cν := math.Sincos(ν)
	got := PQW2Ecliptic(i, ω, Ω, []float64{r * cν, r * sν, 0})
	exp := []float64{6525.344, 6861.535, 6449.125}
	if !vectorsEqual(got, exp, 1e-1) {
		t.Fatalf("COE2RV position:\ngot %+v\nexp %+v", got, exp)
	}
}
