package sensors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/relabs-tech/interval_chime/internal/dial"
)

func TestMockSource_StepsThroughPositions(t *testing.T) {
	src := NewMockSource("sound", 1, time.Minute).(*mockSource)
	now := src.start
	src.now = func() time.Time { return now }

	for step := 0; step < 10; step++ {
		now = src.start.Add(time.Duration(step)*time.Minute + time.Second)
		s, err := src.ReadRaw()
		require.NoError(t, err)
		assert.Equal(t, "sound", s.Source)

		want := step%8 + 1
		assert.Equal(t, want, dial.Classify(dial.RawAngle(s)), "step %d", step)
	}
}

func TestMockSource_CommitsEveryPosition(t *testing.T) {
	for first := 1; first <= 8; first++ {
		src := NewMockSource("interval", first, time.Hour).(*mockSource)
		now := src.start
		src.now = func() time.Time { return now }
		p := dial.NewPipeline("interval", src, zap.NewNop())

		commits := 0
		for i := 0; i < 1200; i++ {
			now = src.start.Add(time.Duration(i) * 50 * time.Millisecond)
			r := p.Tick(now)
			require.NoError(t, r.Err)
			if r.Changed {
				commits++
				assert.Equal(t, first, r.Position, "position %d", first)
			}
		}
		assert.Equal(t, 1, commits, "position %d", first)
		assert.Equal(t, first, p.Position(), "position %d", first)
	}
}
