// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package audio

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// TrackNameLen is the length of a soundboard track name: 8.3 without the dot,
// the base name padded with spaces ("BUZZ    OGG").
const TrackNameLen = 11

// ErrTrackName is returned for names that are not TrackNameLen long.
var ErrTrackName = errors.New("invalid track name")

// Player is the audio device used by the scheduler.
type Player interface {
	// Stop aborts the current track. Calling it when nothing plays is a no-op.
	Stop() error
	// Play starts the named track.
	Play(track string) error
}

func checkTrack(track string) error {
	if len(track) != TrackNameLen {
		return fmt.Errorf("%w: %q (want %d characters)", ErrTrackName, track, TrackNameLen)
	}
	return nil
}

// LogPlayer is a Player without hardware; it logs what would be played.
type LogPlayer struct {
	log     *zap.Logger
	playing string
}

func NewLogPlayer(log *zap.Logger) *LogPlayer {
	return &LogPlayer{log: log.Named("audio")}
}

func (p *LogPlayer) Stop() error {
	if p.playing != "" {
		p.log.Info("stop", zap.String("track", p.playing))
	}
	p.playing = ""
	return nil
}

func (p *LogPlayer) Play(track string) error {
	if err := checkTrack(track); err != nil {
		return err
	}
	p.playing = track
	p.log.Info("play", zap.String("track", track))
	return nil
}

// Playing returns the track started last, or "" after Stop.
func (p *LogPlayer) Playing() string { return p.playing }
