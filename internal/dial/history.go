// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package dial

// historySize is the number of raw angles kept per dial.
const historySize = 10

// history is a fixed-capacity ring of raw angles, oldest dropped first.
type history struct {
	buf   [historySize]float64
	start int
	n     int
}

func (h *history) push(v float64) {
	if h.n < historySize {
		h.buf[(h.start+h.n)%historySize] = v
		h.n++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % historySize
}

func (h *history) len() int { return h.n }

// values returns the samples oldest first.
func (h *history) values() []float64 {
	out := make([]float64, h.n)
	for i := 0; i < h.n; i++ {
		out[i] = h.buf[(h.start+i)%historySize]
	}
	return out
}
