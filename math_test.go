package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormUnitCross(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(Norm(v), 5, 1e-12) {
		t.Fatalf("|v|=%f", Norm(v))
	}
	if !vectorsEqual(Unit(v), []float64{0.6, 0.8, 0}, 1e-12) {
		t.Fatalf("unit %+v", Unit(v))
	}
	if !vectorsEqual(Unit([]float64{0, 0, 0}), []float64{0, 0, 0}, 0) {
		t.Fatal("unit of the zero vector should be zero")
	}
	if !vectorsEqual(Cross([]float64{1, 0, 0}, []float64{0, 1, 0}), []float64{0, 0, 1}, 1e-12) {
		t.Fatal("X × Y must be Z")
	}
	if !vectorsEqual(add([]float64{1, 2, 3}, []float64{-1, 0.5, 3}), []float64{0, 2.5, 6}, 1e-12) {
		t.Fatal("vector addition broken")
	}
}

func TestDegRadConversions(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-12) {
		t.Fatalf("Deg2rad(180)=%f", Deg2rad(180))
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatalf("Deg2rad(-90)=%f", Deg2rad(-90))
	}
	if !floats.EqualWithinAbs(Rad2deg(3*math.Pi), 180, 1e-9) {
		t.Fatalf("Rad2deg(3π)=%f", Rad2deg(3*math.Pi))
	}
	for _, deg := range []float64{0, 33.3, 271} {
		if !floats.EqualWithinAbs(Rad2deg(Deg2rad(deg)), deg, 1e-9) {
			t.Fatalf("roundtrip %f broken", deg)
		}
	}
}
