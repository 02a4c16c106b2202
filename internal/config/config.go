// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds all application configuration values.
type Config struct {
	// Dial accelerometers (MMA8451), one I2C bus per dial since they share an address
	I2CBusDuration string
	I2CBusInterval string
	I2CBusSound    string
	AccelI2CAddr   uint16
	// Accelerometer: 0=±2g, 1=±4g, 2=±8g
	AccelRange byte

	// Audio board (Adafruit Audio FX, UART mode)
	AudioSerialPort string
	AudioBaudRate   uint
	AudioResetPin   string // optional

	// Status
	LEDPin string // optional heartbeat LED

	// Timing
	TickInterval int // milliseconds

	// Logging
	LogLevel string // debug, info, warn, error
	LogFile  string // optional, rotated
}

// defaults are applied before the file; every known key has one so that
// CHIME_<KEY> environment variables can override it.
var defaults = map[string]string{
	"I2C_BUS_DURATION":  "1",
	"I2C_BUS_INTERVAL":  "3",
	"I2C_BUS_SOUND":     "4",
	"ACCEL_I2C_ADDR":    "0x1D",
	"ACCEL_RANGE":       "0",
	"AUDIO_SERIAL_PORT": "/dev/serial0",
	"AUDIO_BAUD_RATE":   "9600",
	"AUDIO_RESET_PIN":   "",
	"LED_PIN":           "",
	"TICK_INTERVAL":     "50",
	"LOG_LEVEL":         "info",
	"LOG_FILE":          "",
}

const envPrefix = "CHIME"

var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads a KEY=VALUE configuration file (blank lines and # comments
// allowed) and returns a Config. An empty path loads the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if err := cfg.setValue(name, strings.TrimSpace(v.GetString(key))); err != nil {
			return nil, fmt.Errorf("config %s: %w", name, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Dials
	case "I2C_BUS_DURATION":
		c.I2CBusDuration = value
	case "I2C_BUS_INTERVAL":
		c.I2CBusInterval = value
	case "I2C_BUS_SOUND":
		c.I2CBusSound = value
	case "ACCEL_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid ACCEL_I2C_ADDR %q: %w", value, err)
		}
		if addr > 0x7F {
			return fmt.Errorf("ACCEL_I2C_ADDR must be a 7-bit address, got 0x%X", addr)
		}
		c.AccelI2CAddr = uint16(addr)
	case "ACCEL_RANGE":
		rangeVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ACCEL_RANGE %q: %w", value, err)
		}
		if rangeVal < 0 || rangeVal > 2 {
			return fmt.Errorf("ACCEL_RANGE must be 0-2 (0=±2g, 1=±4g, 2=±8g), got %d", rangeVal)
		}
		c.AccelRange = byte(rangeVal)

	// Audio
	case "AUDIO_SERIAL_PORT":
		c.AudioSerialPort = value
	case "AUDIO_BAUD_RATE":
		rate, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid AUDIO_BAUD_RATE %q: %w", value, err)
		}
		c.AudioBaudRate = uint(rate)
	case "AUDIO_RESET_PIN":
		c.AudioResetPin = value

	// Status
	case "LED_PIN":
		c.LEDPin = value

	// Timing
	case "TICK_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid TICK_INTERVAL %q: %w", value, err)
		}
		c.TickInterval = interval

	// Logging
	case "LOG_LEVEL":
		switch value {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", value)
		}
		c.LogLevel = value
	case "LOG_FILE":
		c.LogFile = value

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.I2CBusDuration == "" || c.I2CBusInterval == "" || c.I2CBusSound == "" {
		return fmt.Errorf("I2C_BUS_DURATION, I2C_BUS_INTERVAL and I2C_BUS_SOUND are required")
	}
	if c.AudioSerialPort == "" {
		return fmt.Errorf("AUDIO_SERIAL_PORT is required")
	}
	if c.AudioBaudRate == 0 {
		return fmt.Errorf("AUDIO_BAUD_RATE is required")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %d", c.TickInterval)
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Only the first call has any effect.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance, or nil before InitGlobal.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
