// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package accel

import "errors"

// ErrNotReady is wrapped into read errors while a source cannot be configured.
var ErrNotReady = errors.New("accelerometer not ready")

// RawSample represents a single 3-axis acceleration reading.
type RawSample struct {
	Source string // "duration", "interval" or "sound"

	X float64 // m/s²
	Y float64
	Z float64
}

// Source is anything that can provide raw samples for one dial.
// ReadRaw must return promptly; a bus timeout is the source's job.
type Source interface {
	ReadRaw() (RawSample, error)
}
