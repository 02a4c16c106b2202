package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chime_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.I2CBusDuration)
	assert.Equal(t, "3", cfg.I2CBusInterval)
	assert.Equal(t, "4", cfg.I2CBusSound)
	assert.Equal(t, uint16(0x1D), cfg.AccelI2CAddr)
	assert.Equal(t, byte(0), cfg.AccelRange)
	assert.Equal(t, "/dev/serial0", cfg.AudioSerialPort)
	assert.Equal(t, uint(9600), cfg.AudioBaudRate)
	assert.Empty(t, cfg.AudioResetPin)
	assert.Empty(t, cfg.LEDPin)
	assert.Equal(t, 50, cfg.TickInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
# dials
I2C_BUS_DURATION=2
I2C_BUS_INTERVAL=5
I2C_BUS_SOUND=6
ACCEL_I2C_ADDR=0x1C
ACCEL_RANGE=1

AUDIO_SERIAL_PORT=/dev/ttyAMA1
AUDIO_BAUD_RATE=115200
AUDIO_RESET_PIN=GPIO22
LED_PIN=GPIO25
TICK_INTERVAL=20
LOG_LEVEL=debug
LOG_FILE=/var/log/chime.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2", cfg.I2CBusDuration)
	assert.Equal(t, "5", cfg.I2CBusInterval)
	assert.Equal(t, "6", cfg.I2CBusSound)
	assert.Equal(t, uint16(0x1C), cfg.AccelI2CAddr)
	assert.Equal(t, byte(1), cfg.AccelRange)
	assert.Equal(t, "/dev/ttyAMA1", cfg.AudioSerialPort)
	assert.Equal(t, uint(115200), cfg.AudioBaudRate)
	assert.Equal(t, "GPIO22", cfg.AudioResetPin)
	assert.Equal(t, "GPIO25", cfg.LEDPin)
	assert.Equal(t, 20, cfg.TickInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/chime.log", cfg.LogFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CHIME_TICK_INTERVAL", "25")
	path := writeConfig(t, "TICK_INTERVAL=20\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.TickInterval)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "TOPIC_POSE=inertial/pose\n", "unknown config key"},
		{"bad range", "ACCEL_RANGE=3\n", "ACCEL_RANGE must be 0-2"},
		{"bad address", "ACCEL_I2C_ADDR=0x1FF\n", "7-bit"},
		{"bad baud", "AUDIO_BAUD_RATE=fast\n", "invalid AUDIO_BAUD_RATE"},
		{"zero tick", "TICK_INTERVAL=0\n", "TICK_INTERVAL must be positive"},
		{"bad level", "LOG_LEVEL=trace\n", "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestInitGlobal(t *testing.T) {
	require.NoError(t, InitGlobal(""))
	cfg := Get()
	require.NotNil(t, cfg)
	assert.Equal(t, 50, cfg.TickInterval)
}
