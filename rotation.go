package orrery

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Frame convention: X points to the reference direction (vernal equinox), Z is
// the reference pole (normal to the ecliptic), Y completes the right-handed
// set. Perifocal frames put X toward periapsis and Z along the orbit normal.

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// PQW2Ecliptic converts a given vector from the perifocal (PQW) frame to the
// parent's ecliptic frame via the 3-1-3 sequence R3(-Ω) R1(-i) R3(-ω):
// argument of periapsis first (within the orbital plane), then the plane tilt,
// then the ascending node about the pole. The order is not commutative.
// Cf. Vallado's COE2RV, page 118.
func PQW2Ecliptic(i, ω, Ω float64, vI []float64) []float64 {
	var mulM mat64.Dense
	mulM.Mul(R3(-Ω), R1(-i))
	mulM.Mul(&mulM, R3(-ω))
	return MxV33(&mulM, vI)
}
