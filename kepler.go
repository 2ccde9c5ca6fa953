package orrery

import (
	"fmt"
	"math"
)

const (
	// keplerε is the convergence tolerance on the eccentric anomaly, in radians.
	keplerε = 1e-8
	// keplerMaxIter bounds the Newton iteration. Convergence takes single
	// digits of iterations for 0 ≤ e < 1, so the cap is a defensive bound.
	keplerMaxIter = 50
)

// EccentricAnomaly solves Kepler's equation M = E - e·sin(E) for E via
// Newton-Raphson. M may be any angle; it is wrapped to [0, 2π) before the
// first guess. Exhausting the iteration cap returns ErrNoConvergence instead
// of a silent approximation.
func EccentricAnomaly(M, e float64) (float64, error) {
	M = normalizeAngle(M)
	E := keplerGuess(M, e)
	for iter := 0; iter < keplerMaxIter; iter++ {
		δ := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= δ
		if math.Abs(δ) < keplerε {
			return E, nil
		}
	}
	return 0, fmt.Errorf("%w after %d iterations (M=%f e=%f)", ErrNoConvergence, keplerMaxIter, M, e)
}

// keplerGuess seeds the Newton iteration. E₀ = M works for most orbits; for
// high eccentricities a half-e offset keeps the first derivative away from
// its near-zero region (cf. Vallado's KepEqtnE, page 65).
func keplerGuess(M, e float64) float64 {
	if e < 0.8 {
		return M
	}
	if M < math.Pi {
		return M + e/2
	}
	return M - e/2
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν via the
// half-angle form ν = 2·atan2(√(1+e)·sin(E/2), √(1-e)·cos(E/2)), which is
// quadrant-safe for all 0 ≤ e < 1.
func TrueAnomaly(E, e float64) float64 {
	sE, cE := math.Sincos(E / 2)
	return normalizeAngle(2 * math.Atan2(math.Sqrt(1+e)*sE, math.Sqrt(1-e)*cE))
}

// RadiusAtE returns the orbital radius r = a(1 - e·cos E) at an eccentric
// anomaly.
func RadiusAtE(a, e, E float64) float64 {
	return a * (1 - e*math.Cos(E))
}

// RadiusAtν returns the orbital radius from the conic equation
// r = a(1-e²)/(1 + e·cos ν). This closed form needs no solver and is what the
// path sampler sweeps.
func RadiusAtν(a, e, ν float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(ν))
}
