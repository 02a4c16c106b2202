// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/interval_chime/internal/audio"
	"github.com/relabs-tech/interval_chime/internal/config"
	"github.com/relabs-tech/interval_chime/internal/dial"
	"github.com/relabs-tech/interval_chime/internal/schedule"
	"github.com/relabs-tech/interval_chime/internal/sensors"
)

// mockDwell is how long each mock dial rests at one position.
const mockDwell = 7 * time.Minute

// Heartbeat is toggled once per tick.
type Heartbeat interface {
	Toggle() error
}

type dialChannel struct {
	dial schedule.Dial
	pipe *dial.Pipeline
}

// Controller runs the three dial pipelines and the scheduler, one tick at a time.
type Controller struct {
	dials []dialChannel
	sched *schedule.Scheduler
	led   Heartbeat
	log   *zap.Logger
}

// NewController wires the dials, the audio player and the status LED.
func NewController(d sensors.Dials, player audio.Player, led Heartbeat, log *zap.Logger) *Controller {
	dialLog := log.Named("dial")
	return &Controller{
		dials: []dialChannel{
			{schedule.DialInterval, dial.NewPipeline("interval", d.Interval, dialLog)},
			{schedule.DialDuration, dial.NewPipeline("duration", d.Duration, dialLog)},
			{schedule.DialSound, dial.NewPipeline("sound", d.Sound, dialLog)},
		},
		sched: schedule.New(player, schedule.DefaultSettings(), log),
		led:   led,
		log:   log,
	}
}

// Scheduler exposes the playback scheduler for inspection.
func (c *Controller) Scheduler() *schedule.Scheduler { return c.sched }

// Tick polls every dial once and then lets the scheduler act.
func (c *Controller) Tick(now time.Time) {
	if err := c.led.Toggle(); err != nil {
		c.log.Debug("heartbeat", zap.Error(err))
	}

	for _, ch := range c.dials {
		r := ch.pipe.Tick(now)
		if r.Err != nil {
			// logged by the pipeline; a failed read never counts as a change
			continue
		}
		if r.Changed {
			c.sched.Apply(now, ch.dial, r.Position)
		}
	}

	c.sched.Tick(now)
}

// RunChime runs the controller until SIGINT or SIGTERM. With mock set it
// uses simulated dials and logs chimes instead of driving the sound board.
func RunChime(cfg *config.Config, log *zap.Logger, mock bool) error {
	var (
		dials  sensors.Dials
		player audio.Player
		led    Heartbeat
	)

	if mock {
		log.Info("using mock dials and log player", zap.Duration("dwell", mockDwell))
		dials = sensors.NewMockDials(mockDwell)
		player = audio.NewLogPlayer(log)
		led = &sensors.Heartbeat{}
	} else {
		if _, err := host.Init(); err != nil {
			return fmt.Errorf("periph host init: %w", err)
		}

		var err error
		if dials, err = sensors.NewDials(cfg, log); err != nil {
			return err
		}

		if cfg.AudioResetPin != "" {
			if err := audio.ResetBoard(cfg.AudioResetPin); err != nil {
				log.Warn("sound board reset failed", zap.Error(err))
			}
		}
		board, err := audio.OpenSoundboard(cfg.AudioSerialPort, cfg.AudioBaudRate, log)
		if err != nil {
			return err
		}
		defer board.Close()
		player = board

		if led, err = sensors.NewHeartbeat(cfg.LEDPin); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := NewController(dials, player, led, log)

	ticker := time.NewTicker(time.Duration(cfg.TickInterval) * time.Millisecond)
	defer ticker.Stop()

	log.Info("controller started", zap.Int("tick_ms", cfg.TickInterval))
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down", zap.Stringer("state", c.sched.State()))
			if err := player.Stop(); err != nil {
				log.Warn("stop on shutdown failed", zap.Error(err))
			}
			return nil
		case t := <-ticker.C:
			c.Tick(t)
		}
	}
}
