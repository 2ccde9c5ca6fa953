package orrery

import (
	"math"
	"time"
)

// Position returns the body's position at dt in its parent's ecliptic frame,
// in the length unit of the semi-major axis. The computation chain is: elapsed
// time since epoch, secular drift, mean anomaly propagation, Kepler solve,
// true anomaly and radius, then the perifocal-to-ecliptic rotation.
//
// Same inputs always return the same vector; there is no hidden state. The
// only failure mode is a propagated ErrNoConvergence from the solver.
func (el Elements) Position(dt time.Time) ([]float64, error) {
	Δ := el.TimeSinceEpoch(dt)
	cur := el.Drifted(Δ / JulianCentury)
	M := normalizeAngle(cur.m0 + cur.MeanMotion()*Δ)
	E, err := EccentricAnomaly(M, cur.e)
	if err != nil {
		return nil, err
	}
	ν := TrueAnomaly(E, cur.e)
	r := RadiusAtE(cur.a, cur.e, E)
	sν, cν := math.Sincos(ν)
	return PQW2Ecliptic(cur.i, cur.ω, cur.Ω, []float64{r * cν, r * sν, 0}), nil
}
