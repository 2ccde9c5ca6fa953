package orrery

import (
	"math"

	"github.com/gonum/floats"
)

const deg2rad = math.Pi / 180

// Norm returns the norm of a given vector which is supposed to be 3x1.
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns the unit vector of a given vector.
func Unit(a []float64) (b []float64) {
	n := Norm(a)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return []float64{0, 0, 0}
	}
	b = make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return
}

// Cross performs the cross product.
func Cross(a, b []float64) []float64 {
	return []float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// add sums two 3x1 vectors into a fresh slice.
func add(a, b []float64) []float64 {
	return []float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Deg2rad converts degrees to radians, wrapped to [0, 2π).
func Deg2rad(a float64) float64 {
	return normalizeAngle(a * deg2rad)
}

// Rad2deg converts radians to degrees, wrapped to [0, 360).
func Rad2deg(a float64) float64 {
	return normalizeAngle(a) / deg2rad
}

// normalizeAngle wraps an angle to [0, 2π). Inputs already in range are
// returned unchanged, so the wrap is idempotent.
func normalizeAngle(θ float64) float64 {
	θ = math.Mod(θ, 2*math.Pi)
	if θ < 0 {
		θ += 2 * math.Pi
	}
	return θ
}
