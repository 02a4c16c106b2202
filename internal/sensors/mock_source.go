// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"math"
	"math/rand"
	"time"

	"github.com/relabs-tech/interval_chime/internal/accel"
)

// positionCenters holds a resting angle inside each dial window, positions
// 1..8. Position 7 sits at 355 rather than 0: the smoothing is a plain EMA, so
// noise straddling the 0/360 wrap would never settle, and an angle within
// CommitThreshold of the initial reported 0 would never commit from boot.
var positionCenters = [8]float64{95, 135, 185, 225, 270, 315, 355, 45}

type mockSource struct {
	name  string
	start time.Time
	dwell time.Duration
	first int
	noise float64
	now   func() time.Time
	rnd   *rand.Rand
}

// NewMockSource creates a mock dial that steps through the eight positions,
// resting dwell at each one, starting from position first. Samples carry a
// little noise, like a real sensor on a desk.
func NewMockSource(name string, first int, dwell time.Duration) accel.Source {
	return &mockSource{
		name:  name,
		start: time.Now(),
		dwell: dwell,
		first: first,
		noise: 0.05,
		now:   time.Now,
		rnd:   rand.New(rand.NewSource(int64(first))),
	}
}

func (m *mockSource) ReadRaw() (accel.RawSample, error) {
	step := int(m.now().Sub(m.start) / m.dwell)
	idx := ((m.first-1+step)%8 + 8) % 8
	rad := positionCenters[idx] * math.Pi / 180

	return accel.RawSample{
		Source: m.name,
		X:      standardGravity*math.Cos(rad) + m.rnd.NormFloat64()*m.noise,
		Y:      m.rnd.NormFloat64() * m.noise,
		Z:      standardGravity*math.Sin(rad) + m.rnd.NormFloat64()*m.noise,
	}, nil
}
