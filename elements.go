package orrery

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds surfaced by this package. All are wrapped with context, so use
// errors.Is to test for the kind.
var (
	// ErrInvalidElements is returned at construction when an element set
	// violates an invariant (non-positive semi-major axis, eccentricity
	// outside [0,1), zero period). Parabolic and hyperbolic orbits are not
	// supported.
	ErrInvalidElements = errors.New("invalid orbital elements")
	// ErrNoConvergence is returned when the Kepler solver exhausts its
	// iteration cap. This should not happen for a valid eccentricity.
	ErrNoConvergence = errors.New("kepler solver did not converge")
	// ErrUnknownParent is returned at system construction when a body names
	// a parent that was not provided.
	ErrUnknownParent = errors.New("unknown parent body")
	// ErrCycleDetected is returned at system construction when the parent
	// chain of a body loops back onto itself.
	ErrCycleDetected = errors.New("cycle detected in body graph")
)

// Rates holds the linear drift of each orbital element per Julian century,
// following the JPL approximate-elements convention. Angle rates are in
// radians per century. A nil *Rates means the elements are constant.
type Rates struct {
	a, e, i, Ω, ω, m0 float64
}

// NewRates builds a secular rate set. Angle rates are in degrees per Julian
// century and get converted to radians; a and e rates pass through in their
// own units per century. Note that rates are deltas, so the angle conversions
// are plain scalings with no wrap.
func NewRates(a, e, i, Ω, ω, m0 float64) *Rates {
	return &Rates{a, e, i * deg2rad, Ω * deg2rad, ω * deg2rad, m0 * deg2rad}
}

// Elements defines an orbit via its six classical orbital elements relative to
// the parent body, the signed orbital period, and the reference epoch at which
// the values hold. All angles are stored in radians, normalized to [0, 2π).
type Elements struct {
	a      float64 // semi-major axis, in the caller's length unit
	e      float64 // eccentricity
	i      float64 // inclination
	Ω      float64 // longitude of the ascending node
	ω      float64 // argument of periapsis
	m0     float64 // mean anomaly at the reference epoch
	period float64 // orbital period in days; negative means retrograde motion
	epoch  float64 // reference epoch as a Julian Date
	rates  *Rates
}

// NewElements creates a validated element set. Angles are in degrees (they are
// converted and wrapped internally), the period in days, the epoch a Julian
// Date. The period sign encodes the direction of motion: negative is
// retrograde. rates may be nil.
func NewElements(a, e, i, Ω, ω, m0, period, epoch float64, rates *Rates) (Elements, error) {
	el := Elements{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(m0), period, epoch, rates}
	if err := el.validate(); err != nil {
		return Elements{}, err
	}
	return el, nil
}

func (el Elements) validate() error {
	if el.a <= 0 || math.IsNaN(el.a) {
		return fmt.Errorf("%w: semi-major axis must be positive, got %f", ErrInvalidElements, el.a)
	}
	if el.e < 0 || el.e >= 1 || math.IsNaN(el.e) {
		return fmt.Errorf("%w: eccentricity must be in [0,1), got %f", ErrInvalidElements, el.e)
	}
	if el.period == 0 || math.IsNaN(el.period) {
		return fmt.Errorf("%w: orbital period must not be zero", ErrInvalidElements)
	}
	return nil
}

// SemiMajorAxis returns a.
func (el Elements) SemiMajorAxis() float64 { return el.a }

// Eccentricity returns e.
func (el Elements) Eccentricity() float64 { return el.e }

// Inclination returns i in radians.
func (el Elements) Inclination() float64 { return el.i }

// Node returns the longitude of the ascending node Ω in radians.
func (el Elements) Node() float64 { return el.Ω }

// ArgPeriapsis returns the argument of periapsis ω in radians.
func (el Elements) ArgPeriapsis() float64 { return el.ω }

// MeanAnomaly0 returns the mean anomaly at the reference epoch in radians.
func (el Elements) MeanAnomaly0() float64 { return el.m0 }

// Period returns the signed orbital period in days.
func (el Elements) Period() float64 { return el.period }

// Epoch returns the reference epoch as a Julian Date.
func (el Elements) Epoch() float64 { return el.epoch }

// Retrograde returns whether the body orbits clockwise.
func (el Elements) Retrograde() bool { return el.period < 0 }

// Periapsis returns the closest approach distance a(1-e).
func (el Elements) Periapsis() float64 { return el.a * (1 - el.e) }

// Apoapsis returns the farthest distance a(1+e).
func (el Elements) Apoapsis() float64 { return el.a * (1 + el.e) }

// SemiParameter returns the semi-latus rectum p = a(1-e²).
func (el Elements) SemiParameter() float64 { return el.a * (1 - el.e*el.e) }

// MeanMotion returns the mean motion n = 2π/P in radians per day. The sign of
// the period carries through, so retrograde orbits get a negative mean motion.
func (el Elements) MeanMotion() float64 { return 2 * math.Pi / el.period }

// String implements the Stringer interface.
func (el Elements) String() string {
	return fmt.Sprintf("a=%.4f e=%.4f i=%.3f Ω=%.3f ω=%.3f M₀=%.3f P=%.4f",
		el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), Rad2deg(el.m0), el.period)
}
