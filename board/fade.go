package board

import "time"

type (
	// FadeTiming describes how a pressed bar dims and recovers: it is shown
	// at Dim opacity for Delay, then brought back to full opacity linearly
	// over Duration.
	FadeTiming struct {
		Dim      float32
		Delay    time.Duration
		Duration time.Duration
	}

	// fade is the state of one bar's press animation. The zero value is a
	// bar that has never been pressed.
	fade struct {
		start time.Time
	}
)

var DefaultFadeTiming = FadeTiming{
	Dim:      0.5,
	Delay:    500 * time.Millisecond,
	Duration: 300 * time.Millisecond,
}

func (f *fade) restart(now time.Time) {
	f.start = now
}

func (f fade) alpha(t FadeTiming, now time.Time) float32 {
	if f.start.IsZero() {
		return 1
	}
	elapsed := now.Sub(f.start)
	switch {
	case elapsed >= t.Delay+t.Duration:
		return 1
	case elapsed < t.Delay:
		return t.Dim
	default:
		progress := float32(elapsed-t.Delay) / float32(t.Duration)
		return t.Dim + (1-t.Dim)*progress
	}
}

// next returns the time the alpha should be evaluated again. During the
// delay that is the start of the animation, during the animation it is now.
// ok is false once the bar is back at full opacity.
func (f fade) next(t FadeTiming, now time.Time) (at time.Time, ok bool) {
	if f.start.IsZero() {
		return time.Time{}, false
	}
	elapsed := now.Sub(f.start)
	switch {
	case elapsed >= t.Delay+t.Duration:
		return time.Time{}, false
	case elapsed < t.Delay:
		return f.start.Add(t.Delay), true
	default:
		return now, true
	}
}
