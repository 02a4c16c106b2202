// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/relabs-tech/interval_chime/internal/config"
	"github.com/relabs-tech/interval_chime/internal/dial"
	"github.com/relabs-tech/interval_chime/internal/schedule"
	"github.com/relabs-tech/interval_chime/internal/sensors"
)

// DialConsole prints what each dial pipeline sees, for checking how the
// sensors are mounted.
type DialConsole struct {
	pipes []*dial.Pipeline
	out   io.Writer
}

func NewDialConsole(d sensors.Dials, out io.Writer, log *zap.Logger) *DialConsole {
	dialLog := log.Named("dial")
	return &DialConsole{
		pipes: []*dial.Pipeline{
			dial.NewPipeline("duration", d.Duration, dialLog),
			dial.NewPipeline("interval", d.Interval, dialLog),
			dial.NewPipeline("sound", d.Sound, dialLog),
		},
		out: out,
	}
}

// Tick reads every dial once and prints one line.
func (c *DialConsole) Tick(now time.Time) {
	line := now.Format("15:04:05.000")
	for _, p := range c.pipes {
		r := p.Tick(now)
		if r.Err != nil {
			line += fmt.Sprintf("  %-8s ERR    pos=%2d ", p.Name(), p.Position())
			continue
		}
		mark := " "
		if r.Changed {
			mark = "*"
		}
		line += fmt.Sprintf("  %-8s %6.1f° pos=%2d%s", p.Name(), r.Angle, r.Position, mark)
	}
	fmt.Fprintln(c.out, line)
}

// RunDialConsole prints the dial readings every tick until interrupted.
func RunDialConsole(cfg *config.Config, log *zap.Logger, mock bool, out io.Writer) error {
	var dials sensors.Dials
	if mock {
		dials = sensors.NewMockDials(10 * time.Second)
	} else {
		var err error
		if dials, err = sensors.NewDials(cfg, log); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "defaults: %+v\n", schedule.DefaultSettings())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	NewDialConsole(dials, out, log).Run(ctx, time.Duration(cfg.TickInterval)*time.Millisecond)
	return nil
}

// Run ticks every interval until ctx is done.
func (c *DialConsole) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			c.Tick(t)
		}
	}
}
