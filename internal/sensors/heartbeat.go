// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Heartbeat blinks a status LED once per loop tick.
// A Heartbeat without a pin does nothing.
type Heartbeat struct {
	pin   gpio.PinOut
	level gpio.Level
}

// NewHeartbeat returns a heartbeat on the named GPIO, or a no-op one when
// pinName is empty.
func NewHeartbeat(pinName string) (*Heartbeat, error) {
	if pinName == "" {
		return &Heartbeat{}, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("heartbeat: periph host init: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("heartbeat: LED pin %q not found", pinName)
	}
	return newHeartbeat(pin), nil
}

func newHeartbeat(pin gpio.PinOut) *Heartbeat {
	return &Heartbeat{pin: pin}
}

// Toggle flips the LED.
func (h *Heartbeat) Toggle() error {
	if h.pin == nil {
		return nil
	}
	h.level = !h.level
	if err := h.pin.Out(h.level); err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	return nil
}
