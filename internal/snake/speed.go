package snake

import "time"

// SpeedRamp is the linear tick-interval schedule: every Every points the
// interval drops by Step, never below Min.
type SpeedRamp struct {
	Initial time.Duration
	Min     time.Duration
	Step    time.Duration
	Every   int
}

// DefaultSpeedRamp returns 300ms start, 30ms faster every 3 points, floor 120ms.
func DefaultSpeedRamp() SpeedRamp {
	return SpeedRamp{
		Initial: 300 * time.Millisecond,
		Min:     120 * time.Millisecond,
		Step:    30 * time.Millisecond,
		Every:   3,
	}
}

// At returns the tick interval for a score. It is non-increasing in score.
func (r SpeedRamp) At(score int) time.Duration {
	every := r.Every
	if every <= 0 {
		every = 1
	}
	if score < 0 {
		score = 0
	}
	speed := r.Initial - time.Duration(score/every)*r.Step
	return max(speed, r.Min)
}
