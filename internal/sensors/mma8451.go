// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/interval_chime/internal/accel"
)

// ErrWhoAmI is returned when the device at the address is not an MMA8451.
var ErrWhoAmI = errors.New("unexpected WHO_AM_I")

// busOpener acquires the I2C bus for one transaction.
type busOpener func() (i2c.BusCloser, error)

// MMA8451 reads one dial accelerometer. The bus is opened for every read and
// closed again on every exit path, so a wedged bus is re-acquired next tick.
type MMA8451 struct {
	name  string
	open  busOpener
	addr  uint16
	rng   byte
	ready bool
	log   *zap.Logger
}

// NewMMA8451 returns a reader for the accelerometer at addr on busName.
// The device itself is configured lazily on the first read.
func NewMMA8451(name, busName string, addr uint16, rng byte, log *zap.Logger) (*MMA8451, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%s accel: periph host init: %w", name, err)
	}
	if int(rng) >= len(countsPerG) {
		return nil, fmt.Errorf("%s accel: range %d out of bounds", name, rng)
	}
	open := func() (i2c.BusCloser, error) { return i2creg.Open(busName) }
	return newMMA8451(name, open, addr, rng, log), nil
}

func newMMA8451(name string, open busOpener, addr uint16, rng byte, log *zap.Logger) *MMA8451 {
	return &MMA8451{name: name, open: open, addr: addr, rng: rng, log: log.Named(name)}
}

// ReadRaw reads the three axes and returns them in m/s².
func (s *MMA8451) ReadRaw() (accel.RawSample, error) {
	bus, err := s.open()
	if err != nil {
		return accel.RawSample{}, fmt.Errorf("%s accel: open bus: %w", s.name, err)
	}
	defer bus.Close()

	dev := &i2c.Dev{Bus: bus, Addr: s.addr}
	if !s.ready {
		if err := s.init(dev); err != nil {
			return accel.RawSample{}, fmt.Errorf("%w: %w", err, accel.ErrNotReady)
		}
		s.ready = true
	}

	var buf [6]byte
	if err := dev.Tx([]byte{regOutXMSB}, buf[:]); err != nil {
		// the sensor may have browned out; configure it again next time
		s.ready = false
		return accel.RawSample{}, fmt.Errorf("%s accel: read axes: %w", s.name, err)
	}

	return accel.RawSample{
		Source: s.name,
		X:      s.toMS2(buf[0], buf[1]),
		Y:      s.toMS2(buf[2], buf[3]),
		Z:      s.toMS2(buf[4], buf[5]),
	}, nil
}

func (s *MMA8451) init(dev *i2c.Dev) error {
	id := make([]byte, 1)
	if err := dev.Tx([]byte{regWhoAmI}, id); err != nil {
		return fmt.Errorf("%s accel: read WHO_AM_I: %w", s.name, err)
	}
	if id[0] != whoAmIMMA8451 {
		return fmt.Errorf("%s accel: %w: 0x%02X", s.name, ErrWhoAmI, id[0])
	}

	// range changes are only accepted in standby
	steps := []struct {
		reg, val byte
		what     string
	}{
		{regCtrlReg1, ctrlReg1Standby, "standby"},
		{regXYZDataCfg, s.rng, "set range"},
		{regCtrlReg2, ctrlReg2HighRes, "set high resolution"},
		{regCtrlReg1, dataRate100Hz | ctrlReg1Active, "activate"},
	}
	for _, st := range steps {
		if err := dev.Tx([]byte{st.reg, st.val}, nil); err != nil {
			return fmt.Errorf("%s accel: %s: %w", s.name, st.what, err)
		}
	}

	s.log.Info("accelerometer configured",
		zap.String("addr", fmt.Sprintf("0x%02X", s.addr)),
		zap.Int("range_g", 2<<s.rng))
	return nil
}

// toMS2 converts a left-aligned 14-bit MSB/LSB pair to m/s².
func (s *MMA8451) toMS2(msb, lsb byte) float64 {
	counts := int16(uint16(msb)<<8|uint16(lsb)) >> 2
	return float64(counts) / countsPerG[s.rng] * standardGravity
}
