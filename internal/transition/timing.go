package transition

import (
	"math"
	"time"
)

// Timing holds the pacing of step transitions. Durations only affect
// presentation; with every field zero the sequencer still walks through the
// same phases and lands on the same step.
type Timing struct {
	FadeOut time.Duration // Settle delay while old content fades out
	FadeIn  time.Duration // Fade-in of new content after the swap
	Reveal  time.Duration // Settle delay before the first step fades in
	Frame   time.Duration // Animation frame interval
}

// DefaultTiming returns the standard 700ms transition: 300ms out, 400ms in,
// with a 100ms initial reveal.
func DefaultTiming() Timing {
	return Timing{
		FadeOut: 300 * time.Millisecond,
		FadeIn:  400 * time.Millisecond,
		Reveal:  100 * time.Millisecond,
		Frame:   16 * time.Millisecond,
	}
}

// ReducedMotion returns a timing with every delay compressed to zero.
func ReducedMotion() Timing {
	return Timing{}
}

// Total returns the budget of an inter-step transition.
func (t Timing) Total() time.Duration {
	return t.FadeOut + t.Frame + t.FadeIn
}

// frames splits d into frame ticks. It returns the tick interval and the
// number of ticks; a zero duration yields a single immediate tick.
func (t Timing) frames(d time.Duration) (time.Duration, int) {
	if d <= 0 {
		return 0, 1
	}
	if t.Frame <= 0 || t.Frame >= d {
		return d, 1
	}
	n := int(math.Ceil(float64(d) / float64(t.Frame)))
	return t.Frame, n
}

// easeInOut is a cubic ease-in/ease-out curve over [0,1].
func easeInOut(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case x < 0.5:
		return 4 * x * x * x
	default:
		return 1 - math.Pow(-2*x+2, 3)/2
	}
}
