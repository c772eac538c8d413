package clock

import (
	"testing"
	"time"
)

func receive(t *testing.T, tk *Ticker, within time.Duration) (Tick, bool) {
	t.Helper()
	select {
	case got, ok := <-tk.C():
		return got, ok
	case <-time.After(within):
		return Tick{}, false
	}
}

func TestTickerFires(t *testing.T) {
	tk := New()
	defer tk.Close()

	tk.Reschedule(5 * time.Millisecond)

	for i := 0; i < 3; i++ {
		got, ok := receive(t, tk, time.Second)
		if !ok {
			t.Fatalf("tick %d not received", i)
		}
		if !tk.Live(got) {
			t.Errorf("tick %d should be live", i)
		}
	}
}

func TestTickerRescheduleIdempotent(t *testing.T) {
	tk := New()
	defer tk.Close()

	tk.Reschedule(10 * time.Millisecond)
	got, ok := receive(t, tk, time.Second)
	if !ok {
		t.Fatal("no tick received")
	}

	tk.Reschedule(10 * time.Millisecond)
	if !tk.Live(got) {
		t.Error("rescheduling at the same interval should keep the schedule")
	}

	tk.Reschedule(20 * time.Millisecond)
	if tk.Live(got) {
		t.Error("a new interval should make old ticks stale")
	}
	if tk.Interval() != 20*time.Millisecond {
		t.Errorf("Interval() = %v, expected 20ms", tk.Interval())
	}
}

func TestTickerStopSilences(t *testing.T) {
	tk := New()
	defer tk.Close()

	tk.Reschedule(5 * time.Millisecond)
	got, ok := receive(t, tk, time.Second)
	if !ok {
		t.Fatal("no tick received")
	}

	tk.Stop()
	if tk.Running() {
		t.Error("Running() should be false after Stop")
	}
	if tk.Live(got) {
		t.Error("ticks from before Stop should be stale")
	}
	if _, ok := receive(t, tk, 30*time.Millisecond); ok {
		t.Error("stopped ticker delivered a tick")
	}

	tk.Stop() // idempotent
}

func TestTickerResumeAfterStop(t *testing.T) {
	tk := New()
	defer tk.Close()

	tk.Reschedule(5 * time.Millisecond)
	tk.Stop()
	tk.Reschedule(5 * time.Millisecond)

	got, ok := receive(t, tk, time.Second)
	if !ok || !tk.Live(got) {
		t.Error("ticker should fire again after Stop and Reschedule")
	}
}

func TestTickerClose(t *testing.T) {
	tk := New()
	tk.Reschedule(5 * time.Millisecond)
	tk.Close()

	select {
	case _, ok := <-tk.C():
		if ok {
			t.Error("channel should be closed after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not close the channel")
	}

	tk.Reschedule(5 * time.Millisecond) // ignored after Close
	if tk.Running() {
		t.Error("closed ticker must not restart")
	}
	tk.Close()
}
