package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTimingBudget(t *testing.T) {
	timing := DefaultTiming()
	assert.Equal(t, 300*time.Millisecond, timing.FadeOut)
	assert.Equal(t, 100*time.Millisecond, timing.Reveal)
	assert.Equal(t, 700*time.Millisecond, timing.FadeOut+timing.FadeIn)
	assert.Equal(t, 716*time.Millisecond, timing.Total(), "fade out, one swap frame, fade in")
	assert.Zero(t, ReducedMotion().Total())
}

func TestTimingFrames(t *testing.T) {
	tests := []struct {
		name         string
		timing       Timing
		d            time.Duration
		wantInterval time.Duration
		wantFrames   int
	}{
		{"zero duration", DefaultTiming(), 0, 0, 1},
		{"no frame interval", Timing{}, 50 * time.Millisecond, 50 * time.Millisecond, 1},
		{"frame longer than duration", Timing{Frame: time.Second}, 50 * time.Millisecond, 50 * time.Millisecond, 1},
		{"exact split", Timing{Frame: 10 * time.Millisecond}, 50 * time.Millisecond, 10 * time.Millisecond, 5},
		{"rounds up", Timing{Frame: 16 * time.Millisecond}, 300 * time.Millisecond, 16 * time.Millisecond, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, frames := tt.timing.frames(tt.d)
			assert.Equal(t, tt.wantInterval, interval)
			assert.Equal(t, tt.wantFrames, frames)
		})
	}
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, easeInOut(-1))
	assert.Equal(t, 0.0, easeInOut(0))
	assert.InDelta(t, 0.5, easeInOut(0.5), 1e-9)
	assert.Equal(t, 1.0, easeInOut(1))
	assert.Equal(t, 1.0, easeInOut(2))

	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := easeInOut(float64(i) / 20)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
