package orrery

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// WriteEphemeris propagates every body of the system from start in fixed
// steps and writes one CSV record per body per step: jd, body, x, y, z.
// Positions are absolute (root frame), in the catalog's length unit. The
// output is meant for external renderers and plotting tools.
func WriteEphemeris(w io.Writer, sys *System, start time.Time, step time.Duration, steps int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"jd", "body", "x", "y", "z"}); err != nil {
		return err
	}
	for k := 0; k <= steps; k++ {
		dt := start.Add(time.Duration(k) * step)
		jd := strconv.FormatFloat(julian.TimeToJD(dt), 'f', 6, 64)
		positions, err := sys.AbsolutePositions(dt)
		if err != nil {
			return fmt.Errorf("at %s: %w", dt, err)
		}
		for _, body := range sys.Bodies() {
			if err := writeVector(cw, jd, body.ID, positions[body.ID]); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePath samples one full orbit of the body and writes one CSV record per
// point: body, k, x, y, z. Points are in the parent's frame; the renderer
// anchors the polyline at the parent's position.
func WritePath(w io.Writer, body Body, segments int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"body", "k", "x", "y", "z"}); err != nil {
		return err
	}
	for k, pt := range body.Elements.SamplePath(segments) {
		if err := writeVector(cw, body.ID, strconv.Itoa(k), pt); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeVector(cw *csv.Writer, a, b string, v []float64) error {
	return cw.Write([]string{a, b,
		strconv.FormatFloat(v[0], 'f', -1, 64),
		strconv.FormatFloat(v[1], 'f', -1, 64),
		strconv.FormatFloat(v[2], 'f', -1, 64)})
}
