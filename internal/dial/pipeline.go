// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package dial

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/relabs-tech/interval_chime/internal/accel"
)

// Reading is the outcome of one tick for one dial.
type Reading struct {
	Angle    float64 // smoothed angle, 0 on read failure
	Position int     // position of the committed angle, Unknown on read failure
	Changed  bool
	Err      error
}

// Pipeline owns the estimator and debouncer of a single dial.
type Pipeline struct {
	name      string
	src       accel.Source
	estimator *Estimator
	debouncer *Debouncer
	log       *zap.Logger
}

// NewPipeline wires a sample source to a fresh estimator and debouncer.
func NewPipeline(name string, src accel.Source, log *zap.Logger) *Pipeline {
	return &Pipeline{
		name:      name,
		src:       src,
		estimator: NewEstimator(),
		debouncer: NewDebouncer(),
		log:       log.Named(name),
	}
}

// Name returns the dial name used in logs.
func (p *Pipeline) Name() string { return p.name }

// Position returns the position of the last committed angle.
func (p *Pipeline) Position() int { return p.debouncer.Position() }

// Tick reads one sample and runs it through the estimator and debouncer.
// A failed read leaves all state untouched and reports no change.
func (p *Pipeline) Tick(now time.Time) Reading {
	s, err := p.src.ReadRaw()
	if err != nil {
		err = fmt.Errorf("%s dial: %w", p.name, err)
		p.log.Warn("sensor read failed", zap.Error(err))
		return Reading{Position: Unknown, Err: err}
	}

	angle := p.estimator.Update(s)
	position, changed := p.debouncer.Update(angle, now)
	if changed {
		p.log.Debug("dial committed",
			zap.Float64("angle", p.debouncer.Reported()),
			zap.Int("position", position))
	}
	return Reading{Angle: angle, Position: position, Changed: changed}
}
