package orrery

import "fmt"

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// meanElements is one row of the JPL approximate-elements table (Standish,
// "Keplerian Elements for Approximate Positions of the Major Planets", valid
// 1800 AD - 2050 AD). The table parameterizes the ellipse by mean longitude L
// and longitude of perihelion ϖ rather than M₀ and ω; newPlanet converts via
// ω = ϖ - Ω and M₀ = L - ϖ. Distances in AU, angles in degrees, rates per
// Julian century, all at epoch J2000.
type meanElements struct {
	a, e, i, L, ϖ, Ω             float64
	aʹ, eʹ, iʹ, Lʹ, ϖʹ, Ωʹ       float64
	radius, rotPeriod, axialTilt float64 // payload for renderers: km, days, degrees
}

var planetTable = map[string]meanElements{
	"Mercury": {0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
		2439.7, 58.65, 0.03},
	"Venus": {0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
		6051.8, -243.02, 177.36},
	"Earth": {1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0,
		6371.0, 1.00, 23.44},
	"Mars": {1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
		3389.5, 1.03, 25.19},
	"Jupiter": {5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
		69911, 0.41, 3.13},
	"Saturn": {9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
		58232, 0.44, 26.73},
	"Uranus": {19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589,
		25362, -0.72, 97.77},
	"Neptune": {30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664,
		24622, 0.67, 28.32},
}

// newPlanet builds a heliocentric Body from a table row. Table rows are
// known-good, so a validation failure is a bug in the table and panics.
func newPlanet(name string, row meanElements) Body {
	// The table's Lʹ is dominated by the mean motion itself, so the period is
	// derived from it (360·36525/Lʹ days) and the mean anomaly's propagation
	// carries the revolutions. Only the perihelion drift -ϖʹ remains as the
	// M₀ rate; folding Lʹ into the rate as well would count every revolution
	// twice.
	period := 360 * JulianCentury / row.Lʹ
	el, err := NewElements(row.a, row.e, row.i, row.Ω, row.ϖ-row.Ω, row.L-row.ϖ,
		period, J2000,
		NewRates(row.aʹ, row.eʹ, row.iʹ, row.Ωʹ, row.ϖʹ-row.Ωʹ, -row.ϖʹ))
	if err != nil {
		panic(fmt.Errorf("planet table entry %s: %s", name, err))
	}
	return Body{ID: name, ParentID: "Sun", Elements: el,
		Radius: row.radius, RotationPeriod: row.rotPeriod, AxialTilt: row.axialTilt}
}

// newMoon builds the Moon around Earth from its J2000 mean elements. The
// semi-major axis is in AU to stay in the catalog's length unit. The node
// regresses with an 18.6 year period and the perigee advances with an 8.85
// year one, both carried as secular rates.
func newMoon() Body {
	el, err := NewElements(0.00256955, 0.0554, 5.16, 125.08, 318.15, 135.27,
		27.321661, J2000,
		NewRates(0, 0, 0, -1934.136, 4069.137+1934.136, -4069.137))
	if err != nil {
		panic(fmt.Errorf("moon elements: %s", err))
	}
	return Body{ID: "Moon", ParentID: "Earth", Elements: el,
		Radius: 1737.4, RotationPeriod: 27.32, AxialTilt: 6.68}
}

// SolarSystem returns the built-in solar system: the Sun at the origin, the
// eight planets on their JPL mean orbits, and the Moon around Earth. Lengths
// are in AU. Each call builds a fresh system.
func SolarSystem() *System {
	bodies := []Body{{ID: "Sun", Radius: 696000, RotationPeriod: 25.38}}
	for name, row := range planetTable {
		bodies = append(bodies, newPlanet(name, row))
	}
	bodies = append(bodies, newMoon())
	sys, err := NewSystem("Solar System", bodies)
	if err != nil {
		panic(fmt.Errorf("builtin solar system: %s", err))
	}
	return sys
}
