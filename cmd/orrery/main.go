package main

import (
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/astrodyn/orrery"
)

// This tool loads a system catalog (or the builtin solar system), propagates
// every body and writes CSV for external renderers.

const dateFormat = "2006-01-02 15:04:05"

var (
	systemFile string
	dateStr    string
	span       time.Duration
	step       time.Duration
	pathSegs   int
	output     string
)

func init() {
	flag.StringVar(&systemFile, "system", "", "system catalog TOML file (builtin solar system when unset)")
	flag.StringVar(&dateStr, "date", "", "epoch as `"+dateFormat+"` UTC or a Julian Date (default: now)")
	flag.DurationVar(&span, "span", 0, "propagate over this much time instead of a single instant")
	flag.DurationVar(&step, "step", 24*time.Hour, "time step when -span is set")
	flag.IntVar(&pathSegs, "path", 0, "write orbit path samples with this segment count instead of positions")
	flag.StringVar(&output, "o", "", "output CSV file (default: stdout)")
}

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), "cmd", "orrery")

	var sys *orrery.System
	if systemFile == "" {
		sys = orrery.SolarSystem()
	} else {
		var err error
		if sys, err = orrery.LoadSystem(systemFile, logger); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}
	logger.Log("system", sys.Name, "bodies", len(sys.Bodies()))

	start := parseDate(logger)
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if pathSegs > 0 {
		for _, body := range sys.Bodies() {
			if body.ParentID == "" {
				continue
			}
			if err := orrery.WritePath(w, body, pathSegs); err != nil {
				logger.Log("body", body.ID, "err", err)
				os.Exit(1)
			}
		}
		return
	}

	steps := 0
	if span > 0 {
		steps = int(span / step)
	}
	if err := orrery.WriteEphemeris(w, sys, start, step, steps); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	logger.Log("start", start.Format(dateFormat), "steps", steps+1)
}

// parseDate understands either a calendar date or a raw Julian Date, like the
// scenario files do.
func parseDate(logger kitlog.Logger) time.Time {
	if dateStr == "" {
		return time.Now().UTC()
	}
	if jd, err := strconv.ParseFloat(dateStr, 64); err == nil {
		return julian.JDToTime(jd)
	}
	dt, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		logger.Log("err", err, "date", dateStr)
		os.Exit(1)
	}
	return dt.UTC()
}
