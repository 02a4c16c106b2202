// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package audio

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

const (
	resetPulse = 10 * time.Millisecond
	bootTime   = time.Second
)

// ResetBoard pulses the sound board's RST line low and waits for it to boot.
// periph's host must already be initialized.
func ResetBoard(pinName string) error {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return fmt.Errorf("soundboard: reset pin %q not found", pinName)
	}
	return pulse(pin, resetPulse, bootTime)
}

func pulse(pin gpio.PinOut, low, settle time.Duration) error {
	if err := pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("soundboard: reset low: %w", err)
	}
	time.Sleep(low)
	if err := pin.Out(gpio.High); err != nil {
		return fmt.Errorf("soundboard: reset high: %w", err)
	}
	time.Sleep(settle)
	return nil
}
