// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"time"

	"go.uber.org/zap"

	"github.com/relabs-tech/interval_chime/internal/accel"
	"github.com/relabs-tech/interval_chime/internal/config"
)

// Dials holds the sample sources of the three dials.
type Dials struct {
	Duration accel.Source
	Interval accel.Source
	Sound    accel.Source
}

// NewDials opens the three dial accelerometers described by cfg.
func NewDials(cfg *config.Config, log *zap.Logger) (Dials, error) {
	duration, err := NewMMA8451("duration", cfg.I2CBusDuration, cfg.AccelI2CAddr, cfg.AccelRange, log)
	if err != nil {
		return Dials{}, err
	}
	interval, err := NewMMA8451("interval", cfg.I2CBusInterval, cfg.AccelI2CAddr, cfg.AccelRange, log)
	if err != nil {
		return Dials{}, err
	}
	sound, err := NewMMA8451("sound", cfg.I2CBusSound, cfg.AccelI2CAddr, cfg.AccelRange, log)
	if err != nil {
		return Dials{}, err
	}
	log.Info("dial accelerometers ready",
		zap.String("duration_bus", cfg.I2CBusDuration),
		zap.String("interval_bus", cfg.I2CBusInterval),
		zap.String("sound_bus", cfg.I2CBusSound))
	return Dials{Duration: duration, Interval: interval, Sound: sound}, nil
}

// NewMockDials returns three mock dials that turn every dwell, each starting
// at a different position.
func NewMockDials(dwell time.Duration) Dials {
	return Dials{
		Duration: NewMockSource("duration", 3, dwell),
		Interval: NewMockSource("interval", 6, dwell),
		Sound:    NewMockSource("sound", 1, dwell),
	}
}
