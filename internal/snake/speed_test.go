package snake

import (
	"testing"
	"time"
)

func TestSpeedRampSequence(t *testing.T) {
	r := SpeedRamp{
		Initial: 300 * time.Millisecond,
		Min:     120 * time.Millisecond,
		Step:    30 * time.Millisecond,
		Every:   3,
	}

	expected := []time.Duration{300, 300, 300, 270}
	for score, want := range expected {
		if got := r.At(score); got != want*time.Millisecond {
			t.Errorf("At(%d) = %v, expected %v", score, got, want*time.Millisecond)
		}
	}
}

func TestSpeedRampMonotonicAndFloored(t *testing.T) {
	r := DefaultSpeedRamp()
	prev := r.At(0)

	for score := 1; score <= 300; score++ {
		got := r.At(score)
		if got > prev {
			t.Fatalf("At(%d) = %v increased from %v", score, got, prev)
		}
		if got < r.Min {
			t.Fatalf("At(%d) = %v fell below the minimum %v", score, got, r.Min)
		}
		prev = got
	}

	if got := r.At(1000); got != r.Min {
		t.Errorf("At(1000) = %v, expected floor %v", got, r.Min)
	}
}
