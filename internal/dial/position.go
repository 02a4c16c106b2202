// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package dial

// Unknown is the position of an angle outside every window.
const Unknown = -1

// window maps an angular range in degrees to a dial position.
type window struct {
	position int
	match    func(angle float64) bool
}

func between(lo, hi float64) func(float64) bool {
	return func(a float64) bool { return a > lo && a < hi }
}

// windows are all checked in order; if two ever overlap the later one wins.
var windows = []window{
	{1, between(80, 110)},
	{8, between(35, 55)},
	{7, func(a float64) bool { return a < 10 || a > 350 }},
	{2, between(125, 145)},
	{3, between(170, 200)},
	{4, between(215, 235)},
	{5, between(260, 280)},
	{6, between(305, 325)},
}

// Classify maps an angle in degrees to one of the eight dial positions, or
// Unknown when it falls in a gap between windows.
func Classify(angle float64) int {
	position := Unknown
	for _, w := range windows {
		if w.match(angle) {
			position = w.position
		}
	}
	return position
}
