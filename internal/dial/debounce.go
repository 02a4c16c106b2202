// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package dial

import (
	"math"
	"time"
)

const (
	// MoveThreshold is the per-tick angle jump that (re)starts the quiet timer.
	MoveThreshold = 3.0
	// CommitThreshold is the minimum distance from the reported angle for a commit.
	CommitThreshold = 5.0
	// QuietPeriod is how long the dial must stay still before a commit.
	QuietPeriod = 2 * time.Second
)

// Debouncer reports a dial change only once the angle has been still for
// QuietPeriod and moved far enough from the last reported angle.
type Debouncer struct {
	previous  float64
	reported  float64
	changedAt time.Time
	timing    bool
}

// NewDebouncer starts with both the previous and the reported angle at 0.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Update feeds this tick's smoothed angle. It returns the position of the
// reported angle and whether a change was committed on this tick.
func (d *Debouncer) Update(angle float64, now time.Time) (int, bool) {
	if math.Abs(angle-d.previous) > MoveThreshold {
		d.changedAt = now
		d.timing = true
	}
	d.previous = angle

	changed := false
	if d.timing && now.Sub(d.changedAt) >= QuietPeriod {
		d.timing = false
		if math.Abs(angle-d.reported) > CommitThreshold {
			d.reported = angle
			changed = true
		}
	}
	return Classify(d.reported), changed
}

// Reported returns the last committed angle.
func (d *Debouncer) Reported() float64 { return d.reported }

// Position returns the position of the last committed angle.
func (d *Debouncer) Position() int { return Classify(d.reported) }
