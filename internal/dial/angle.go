// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package dial

import (
	"math"

	"github.com/relabs-tech/interval_chime/internal/accel"
)

const (
	// axisEpsilon replaces a zero x reading before dividing.
	axisEpsilon = 0.001

	// smoothing weight of the running angle in the exponential average
	smoothKeep = 0.9

	// outlierMinHistory is the history length above which outliers are dropped.
	outlierMinHistory = 3
	outlierJump       = 10.0
)

// RawAngle computes the dial angle in degrees [0,360) from the x/z tilt of
// the accelerometer.
//
//	angle = atan(z/x)           x > 0, z >= 0
//	angle = 180 - atan(z/-x)    x < 0
//	angle = 360 + atan(z/x)     x > 0, z < 0
func RawAngle(s accel.RawSample) float64 {
	x, z := s.X, s.Z
	if x == 0 {
		x = axisEpsilon
	}

	angle := math.Atan(z/x) * 180.0 / math.Pi
	if x < 0 {
		angle = 180 - math.Atan(z/-x)*180.0/math.Pi
	} else if z < 0 {
		angle += 360
	}
	return angle
}

// RemoveOutliers returns the interior samples of hist that pass the spike
// check. The first sample and the last two are never kept.
//
// A sample is kept when both neighbour differences are below +10 or both are
// above -10. That keeps almost every real sample; only a point sitting far
// below its left neighbour and far above its right one (or the mirror case)
// is dropped.
func RemoveOutliers(hist []float64) []float64 {
	var kept []float64
	for i := 1; i < len(hist)-2; i++ {
		last := hist[i-1] - hist[i]
		next := hist[i+1] - hist[i]
		if (last < outlierJump && next < outlierJump) || (last > -outlierJump && next > -outlierJump) {
			kept = append(kept, hist[i])
		}
	}
	return kept
}

// Smooth folds samples into an exponential weighted average, starting from
// the first sample. It returns 0 for an empty slice.
func Smooth(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	angle := samples[0]
	for _, s := range samples[1:] {
		angle = smoothKeep*angle + (1-smoothKeep)*s
	}
	return angle
}

// Estimator turns raw samples from one dial into a smoothed angle.
type Estimator struct {
	hist history
}

// NewEstimator returns an estimator with an empty history.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Update records the sample and returns the smoothed angle for this tick.
func (e *Estimator) Update(s accel.RawSample) float64 {
	e.hist.push(RawAngle(s))

	samples := e.hist.values()
	if e.hist.len() > outlierMinHistory {
		// An empty cleaned set falls back to the unfiltered history.
		if cleaned := RemoveOutliers(samples); len(cleaned) > 0 {
			samples = cleaned
		}
	}
	return Smooth(samples)
}

// History returns the raw angles currently held, oldest first.
func (e *Estimator) History() []float64 {
	return e.hist.values()
}
