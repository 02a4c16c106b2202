// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package schedule

import "fmt"

// Dial identifies which setting a dial controls.
type Dial int

const (
	DialDuration Dial = iota
	DialInterval
	DialSound
)

func (d Dial) String() string {
	switch d {
	case DialDuration:
		return "duration"
	case DialInterval:
		return "interval"
	case DialSound:
		return "sound"
	default:
		return fmt.Sprintf("dial(%d)", int(d))
	}
}

// Lookup tables, indexed by (position + offset) mod 8.
var (
	intervals      = []int{1, 2, 3, 4, 5, 6, 8, 10}
	intervalOffset = 6

	durations      = []int{60, 55, 45, 30, 20, 15, 10, 5} // minutes
	durationOffset = 4

	sounds = []string{
		"BUZZ    OGG", "BELL    OGG", "GONG    OGG", "BING    OGG",
		"BOWL    OGG", "TING    OGG", "BEEP    OGG", "CLANG   OGG",
	}
	soundOffset = 4
)

// restPosition is the position of a dial at 0°, the angle every debouncer
// reports before its first commit.
const restPosition = 7

// tableIndex wraps position+offset into [0,n) for any integer position.
func tableIndex(position, offset, n int) int {
	i := (position + offset) % n
	if i < 0 {
		i += n
	}
	return i
}

// IntervalFor returns the number of chimes per session for a dial position.
func IntervalFor(position int) int {
	return intervals[tableIndex(position, intervalOffset, len(intervals))]
}

// DurationFor returns the session length in minutes for a dial position.
func DurationFor(position int) int {
	return durations[tableIndex(position, durationOffset, len(durations))]
}

// SoundFor returns the soundboard track for a dial position.
func SoundFor(position int) string {
	return sounds[tableIndex(position, soundOffset, len(sounds))]
}

// Settings are the values selected by the three dials.
type Settings struct {
	Duration int    // minutes
	Interval int    // chimes across the whole duration
	Sound    string // track name
}

// DefaultSettings are the settings of three dials resting at 0°.
func DefaultSettings() Settings {
	return Settings{
		Duration: DurationFor(restPosition),
		Interval: IntervalFor(restPosition),
		Sound:    SoundFor(restPosition),
	}
}
