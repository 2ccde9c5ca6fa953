package orrery

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// J2000 is the standard reference epoch as a Julian Date.
	J2000 = 2451545.0
	// JulianCentury is the number of days per Julian century, the time unit
	// of secular rates.
	JulianCentury = 36525.0
)

// TimeSinceEpoch returns the elapsed time between the reference epoch of these
// elements and dt, in days (the unit of the period).
func (el Elements) TimeSinceEpoch(dt time.Time) float64 {
	return julian.TimeToJD(dt) - el.epoch
}

// Drifted returns the elements corrected for secular drift at the given number
// of Julian centuries past the reference epoch. Without rates this is the
// identity. Angles are re-wrapped to [0, 2π) after the correction.
func (el Elements) Drifted(centuries float64) Elements {
	if el.rates == nil {
		return el
	}
	r := el.rates
	out := el
	out.a += r.a * centuries
	out.e += r.e * centuries
	out.i = normalizeAngle(el.i + r.i*centuries)
	out.Ω = normalizeAngle(el.Ω + r.Ω*centuries)
	out.ω = normalizeAngle(el.ω + r.ω*centuries)
	out.m0 = normalizeAngle(el.m0 + r.m0*centuries)
	return out
}
