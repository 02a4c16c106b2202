// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package audio

import (
	"fmt"
	"io"

	serial "github.com/jacobsa/go-serial/serial"
	"go.uber.org/zap"
)

// Soundboard drives an Adafruit Audio FX sound board in UART mode.
// Each command is one line: "q" stops playback, "P<track>" plays a file.
type Soundboard struct {
	port io.ReadWriteCloser
	log  *zap.Logger
}

// OpenSoundboard opens the sound board's serial port.
func OpenSoundboard(portName string, baud uint, log *zap.Logger) (*Soundboard, error) {
	opts := serial.OpenOptions{
		PortName:        portName,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
		ParityMode:      serial.PARITY_NONE,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("soundboard: open %s: %w", portName, err)
	}
	log.Info("soundboard serial port opened", zap.String("port", portName), zap.Uint("baud", baud))
	return NewSoundboard(port, log), nil
}

// NewSoundboard wraps an already open port.
func NewSoundboard(port io.ReadWriteCloser, log *zap.Logger) *Soundboard {
	return &Soundboard{port: port, log: log.Named("audio")}
}

func (b *Soundboard) Stop() error {
	return b.send("q")
}

func (b *Soundboard) Play(track string) error {
	if err := checkTrack(track); err != nil {
		return err
	}
	return b.send("P" + track)
}

func (b *Soundboard) Close() error {
	return b.port.Close()
}

func (b *Soundboard) send(cmd string) error {
	b.log.Debug("send", zap.String("cmd", cmd))
	if _, err := b.port.Write([]byte(cmd + "\n")); err != nil {
		return fmt.Errorf("soundboard: write %q: %w", cmd, err)
	}
	return nil
}
