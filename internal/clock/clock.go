// Package clock provides the game clock: a fixed-interval ticker that can be
// stopped and rescheduled without leaking timers or delivering overlapping
// ticks.
package clock

import (
	"sync"
	"time"
)

// Tick is one firing of the clock. Gen identifies the schedule that produced
// it so ticks raced past a Stop or Reschedule can be discarded.
type Tick struct {
	Gen uint64
	At  time.Time
}

// Ticker owns a single scheduler handle. Ticks are delivered on an
// unbuffered channel, so a new tick is not produced until the previous one
// has been received; slow consumers drop ticks instead of queueing them.
type Ticker struct {
	mu       sync.Mutex
	out      chan Tick
	gen      uint64
	interval time.Duration
	running  bool
	closed   bool

	stop chan struct{} // closed to end the current forwarder
	done chan struct{} // closed when the current forwarder has exited
}

// New creates a stopped ticker.
func New() *Ticker {
	return &Ticker{out: make(chan Tick)}
}

// C returns the channel ticks are delivered on. It is closed by Close.
func (t *Ticker) C() <-chan Tick {
	return t.out
}

// Reschedule starts firing every interval. Calling it again with the same
// interval while running does nothing; any other call replaces the current
// schedule.
func (t *Ticker) Reschedule(interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || interval <= 0 {
		return
	}
	if t.running && interval == t.interval {
		return
	}

	t.teardown()
	t.gen++
	t.interval = interval
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.forward(t.gen, interval, t.stop, t.done)
}

// Stop halts the clock. Ticks already in flight become stale.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.teardown()
	t.gen++
}

// Close stops the clock for good and closes the tick channel.
func (t *Ticker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.teardown()
	t.gen++
	t.closed = true
	close(t.out)
}

// Live reports whether tk came from the current schedule.
func (t *Ticker) Live(tk Tick) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running && tk.Gen == t.gen
}

// Interval returns the interval of the current or last schedule.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Running reports whether the clock is firing.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// teardown ends the forwarder and waits for it. Caller holds mu.
func (t *Ticker) teardown() {
	if !t.running {
		return
	}
	close(t.stop)
	<-t.done
	t.running = false
}

func (t *Ticker) forward(gen uint64, interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			select {
			case t.out <- Tick{Gen: gen, At: now}:
			case <-stop:
				return
			}
		}
	}
}
