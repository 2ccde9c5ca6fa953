package orrery

import "math"

// SamplePath traces one full orbit as segments+1 points in the parent's
// ecliptic frame, by sweeping the true anomaly uniformly over [0, 2π] and
// evaluating the conic equation directly. Time of flight plays no role here,
// so there is no Kepler solve and no failure mode: the output only depends on
// the orbit's geometry, and a fresh call regenerates identical points.
//
// The last point closes the loop onto the first. Secular rates are ignored:
// the path portrays the orbit at its reference epoch.
func (el Elements) SamplePath(segments int) [][]float64 {
	if segments < 1 {
		return nil
	}
	points := make([][]float64, segments+1)
	for k := 0; k <= segments; k++ {
		ν := 2 * math.Pi * float64(k) / float64(segments)
		r := RadiusAtν(el.a, el.e, ν)
		sν, cν := math.Sincos(ν)
		points[k] = PQW2Ecliptic(el.i, el.ω, el.Ω, []float64{r * cν, r * sν, 0})
	}
	return points
}
