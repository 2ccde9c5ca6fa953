package orrery

import (
	"errors"
	"fmt"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// LoadSystem reads a system definition from a TOML file and builds the graph.
//
// Expected layout:
//
//	[system]
//	name = "Solar System"
//	root = "Sun"
//
//	[bodies.Earth]
//	parent = "Sun"
//	sma = 1.00000261    # in the catalog's length unit
//	ecc = 0.01671123
//	inc = 0.0           # degrees, as are all angles
//	node = 0.0
//	argPeri = 102.93768193
//	meanAnomaly = 357.52688973
//	period = 365.256    # days; negative for retrograde
//	epoch = 2451545.0   # Julian Date; defaults to J2000
//	radius = 6371.0     # optional renderer payload
//	[bodies.Earth.rates] # optional, per Julian century
//	node = -0.01294668
//
// A body with invalid elements is skipped with a logged warning rather than
// aborting the load: whether a bad record is fatal is the caller's decision,
// and the remaining bodies still form a usable system. Topology errors
// (unknown parent, cycle) abort.
func LoadSystem(path string, logger kitlog.Logger) (*System, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return systemFromConfig(v, logger)
}

func systemFromConfig(v *viper.Viper, logger kitlog.Logger) (*System, error) {
	name := v.GetString("system.name")
	// viper lowercases table keys, so body IDs are matched case-insensitively
	// and come out canonically lowercase.
	rootID := strings.ToLower(v.GetString("system.root"))
	if rootID == "" {
		return nil, errors.New("system.root is not set")
	}
	bodies := []Body{{ID: rootID, Radius: v.GetFloat64("bodies." + rootID + ".radius")}}
	for id := range v.GetStringMap("bodies") {
		sub := v.Sub("bodies." + id)
		if sub == nil || !sub.IsSet("parent") {
			continue // the root, or an empty table
		}
		body, err := bodyFromConfig(id, sub)
		if err != nil {
			logger.Log("severity", "warning", "body", id, "skipped", true, "err", err)
			continue
		}
		bodies = append(bodies, body)
	}
	return NewSystem(name, bodies)
}

func bodyFromConfig(id string, v *viper.Viper) (Body, error) {
	epoch := v.GetFloat64("epoch")
	if !v.IsSet("epoch") {
		epoch = J2000
	}
	var rates *Rates
	if v.IsSet("rates") {
		rates = NewRates(
			v.GetFloat64("rates.sma"),
			v.GetFloat64("rates.ecc"),
			v.GetFloat64("rates.inc"),
			v.GetFloat64("rates.node"),
			v.GetFloat64("rates.argPeri"),
			v.GetFloat64("rates.meanAnomaly"))
	}
	el, err := NewElements(
		v.GetFloat64("sma"),
		v.GetFloat64("ecc"),
		v.GetFloat64("inc"),
		v.GetFloat64("node"),
		v.GetFloat64("argPeri"),
		v.GetFloat64("meanAnomaly"),
		v.GetFloat64("period"),
		epoch, rates)
	if err != nil {
		return Body{}, err
	}
	return Body{
		ID:             id,
		ParentID:       strings.ToLower(v.GetString("parent")),
		Elements:       el,
		Radius:         v.GetFloat64("radius"),
		RotationPeriod: v.GetFloat64("rotationPeriod"),
		AxialTilt:      v.GetFloat64("axialTilt"),
	}, nil
}
