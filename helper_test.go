package orrery

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

const angleε = 1e-6 // radians

func vectorsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal modulo 2π.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Abs(normalizeAngle(a) - normalizeAngle(b))
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	if diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", diff/deg2rad)
}
