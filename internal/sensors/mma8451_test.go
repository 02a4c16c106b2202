package sensors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"

	"github.com/relabs-tech/interval_chime/internal/accel"
)

const testAddr = 0x1D

func initOps(rng byte) []i2ctest.IO {
	return []i2ctest.IO{
		{Addr: testAddr, W: []byte{regWhoAmI}, R: []byte{whoAmIMMA8451}},
		{Addr: testAddr, W: []byte{regCtrlReg1, ctrlReg1Standby}},
		{Addr: testAddr, W: []byte{regXYZDataCfg, rng}},
		{Addr: testAddr, W: []byte{regCtrlReg2, ctrlReg2HighRes}},
		{Addr: testAddr, W: []byte{regCtrlReg1, dataRate100Hz | ctrlReg1Active}},
	}
}

// +1g on X, 0 on Y, -1g on Z at ±2g
var axesOp = i2ctest.IO{Addr: testAddr, W: []byte{regOutXMSB}, R: []byte{0x40, 0x00, 0x00, 0x00, 0xC0, 0x00}}

// sequence hands out one bus per read, in order.
type sequence struct {
	buses  []i2c.BusCloser
	opened int
}

func (s *sequence) open() (i2c.BusCloser, error) {
	if s.opened >= len(s.buses) {
		return nil, errors.New("no more buses")
	}
	b := s.buses[s.opened]
	s.opened++
	return b, nil
}

type failingBus struct {
	closed bool
}

func (b *failingBus) String() string                    { return "failing" }
func (b *failingBus) Tx(addr uint16, w, r []byte) error { return errors.New("nack") }
func (b *failingBus) SetSpeed(f physic.Frequency) error { return nil }
func (b *failingBus) Close() error                      { b.closed = true; return nil }

func TestMMA8451_InitThenRead(t *testing.T) {
	first := &i2ctest.Playback{Ops: append(initOps(0), axesOp)}
	second := &i2ctest.Playback{Ops: []i2ctest.IO{axesOp}}
	seq := &sequence{buses: []i2c.BusCloser{first, second}}

	s := newMMA8451("sound", seq.open, testAddr, 0, zap.NewNop())

	got, err := s.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "sound", got.Source)
	assert.InDelta(t, standardGravity, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
	assert.InDelta(t, -standardGravity, got.Z, 1e-9)

	// configured once; the second read only fetches the axes
	_, err = s.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, 2, seq.opened)
}

func TestMMA8451_RangeScaling(t *testing.T) {
	bus := &i2ctest.Playback{Ops: append(initOps(2), axesOp)}
	seq := &sequence{buses: []i2c.BusCloser{bus}}

	s := newMMA8451("duration", seq.open, testAddr, 2, zap.NewNop())
	got, err := s.ReadRaw()
	require.NoError(t, err)
	assert.InDelta(t, 4*standardGravity, got.X, 1e-9)
}

func TestMMA8451_WrongDevice(t *testing.T) {
	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: testAddr, W: []byte{regWhoAmI}, R: []byte{0x71}},
	}}
	seq := &sequence{buses: []i2c.BusCloser{bus}}

	s := newMMA8451("interval", seq.open, testAddr, 0, zap.NewNop())
	_, err := s.ReadRaw()
	assert.ErrorIs(t, err, ErrWhoAmI)
	assert.ErrorIs(t, err, accel.ErrNotReady)
	assert.Contains(t, err.Error(), "interval accel")
}

func TestMMA8451_BusReleasedOnError(t *testing.T) {
	bus := &failingBus{}
	seq := &sequence{buses: []i2c.BusCloser{bus}}

	s := newMMA8451("sound", seq.open, testAddr, 0, zap.NewNop())
	_, err := s.ReadRaw()
	require.Error(t, err)
	assert.ErrorIs(t, err, accel.ErrNotReady)
	assert.True(t, bus.closed)
	assert.False(t, s.ready)
}

func TestMMA8451_OpenError(t *testing.T) {
	seq := &sequence{}
	s := newMMA8451("sound", seq.open, testAddr, 0, zap.NewNop())
	_, err := s.ReadRaw()
	assert.ErrorContains(t, err, "open bus")
}

func TestMMA8451_ReinitAfterReadFailure(t *testing.T) {
	first := &i2ctest.Playback{Ops: append(initOps(0), axesOp)}
	broken := &failingBus{}
	third := &i2ctest.Playback{Ops: append(initOps(0), axesOp)}
	seq := &sequence{buses: []i2c.BusCloser{first, broken, third}}

	s := newMMA8451("sound", seq.open, testAddr, 0, zap.NewNop())
	_, err := s.ReadRaw()
	require.NoError(t, err)

	// a failed axes read is not a configuration failure
	_, err = s.ReadRaw()
	require.Error(t, err)
	assert.NotErrorIs(t, err, accel.ErrNotReady)

	_, err = s.ReadRaw()
	require.NoError(t, err)
	assert.True(t, s.ready)
}
