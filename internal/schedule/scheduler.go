// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package schedule

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/relabs-tech/interval_chime/internal/audio"
)

const (
	// SettleTime is how long the dials must stay unchanged before a restart.
	SettleTime = time.Second
	// FinishChimes is the number of chimes played when a session ends.
	FinishChimes = 3
	// FinishPause separates the end-of-session chimes.
	FinishPause = 5 * time.Second
)

// State of the playback scheduler.
type State int

const (
	Idle State = iota
	PendingRestart
	Running
	Finishing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingRestart:
		return "pending_restart"
	case Running:
		return "running"
	case Finishing:
		return "finishing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Scheduler turns committed dial changes into timed chimes.
// It is not safe for concurrent use; the poll loop owns it.
type Scheduler struct {
	player   audio.Player
	log      *zap.Logger
	settings Settings
	state    State

	changedAt    time.Time
	sessionStart time.Time
	lastFire     time.Time
	nextChime    time.Time
	chimes       int
}

// New returns an idle scheduler holding the given settings.
func New(player audio.Player, settings Settings, log *zap.Logger) *Scheduler {
	return &Scheduler{
		player:   player,
		settings: settings,
		log:      log.Named("schedule"),
	}
}

// State returns the current scheduler state.
func (s *Scheduler) State() State { return s.state }

// Settings returns the current dial settings.
func (s *Scheduler) Settings() Settings { return s.settings }

// Apply records a committed change of one dial. Unknown positions (-1 or
// anything outside 1..8) are ignored.
func (s *Scheduler) Apply(now time.Time, d Dial, position int) {
	if position < 1 || position > len(sounds) {
		s.log.Debug("ignoring unknown position", zap.Stringer("dial", d), zap.Int("position", position))
		return
	}

	switch d {
	case DialDuration:
		s.settings.Duration = DurationFor(position)
		s.log.Info("duration", zap.Int("minutes", s.settings.Duration))
	case DialInterval:
		s.settings.Interval = IntervalFor(position)
		s.log.Info("interval", zap.Int("count", s.settings.Interval))
	case DialSound:
		s.settings.Sound = SoundFor(position)
		s.log.Info("sound", zap.String("track", s.settings.Sound))
	default:
		return
	}

	s.changedAt = now
	s.state = PendingRestart
}

// Tick evaluates the time-driven transitions.
func (s *Scheduler) Tick(now time.Time) {
	switch s.state {
	case PendingRestart:
		if now.Sub(s.changedAt) >= SettleTime {
			s.restart(now)
		}

	case Running:
		if now.Sub(s.sessionStart) > s.sessionLength() {
			s.log.Info("session done", zap.Duration("elapsed", now.Sub(s.sessionStart)))
			s.state = Finishing
			s.chimes = 0
			s.nextChime = now
			s.finish(now)
			return
		}
		if s.settings.Interval > 0 && now.Sub(s.lastFire) > s.repetition() {
			s.log.Info("interval chime",
				zap.Duration("since_last", now.Sub(s.lastFire)),
				zap.Int("duration", s.settings.Duration),
				zap.Int("interval", s.settings.Interval))
			s.chime()
			s.lastFire = now
		}

	case Finishing:
		s.finish(now)
	}
}

func (s *Scheduler) restart(now time.Time) {
	s.log.Info("restarting",
		zap.Int("duration", s.settings.Duration),
		zap.Int("interval", s.settings.Interval),
		zap.String("sound", s.settings.Sound))
	s.chime()
	s.sessionStart = now
	s.lastFire = now
	s.state = Running
}

func (s *Scheduler) finish(now time.Time) {
	if now.Before(s.nextChime) {
		return
	}
	s.chime()
	s.chimes++
	if s.chimes >= FinishChimes {
		s.state = Idle
		return
	}
	s.nextChime = now.Add(FinishPause)
}

// chime stops whatever is playing and plays the selected sound. Device
// errors are logged; the schedule moves on either way.
func (s *Scheduler) chime() {
	if err := s.player.Stop(); err != nil {
		s.log.Warn("stop failed", zap.Error(err))
	}
	if err := s.player.Play(s.settings.Sound); err != nil {
		s.log.Warn("play failed", zap.String("track", s.settings.Sound), zap.Error(err))
	}
}

func (s *Scheduler) sessionLength() time.Duration {
	return time.Duration(s.settings.Duration) * time.Minute
}

// repetition is the time between chimes; callers check Interval > 0.
func (s *Scheduler) repetition() time.Duration {
	return time.Duration(s.settings.Duration) * time.Minute / time.Duration(s.settings.Interval)
}
