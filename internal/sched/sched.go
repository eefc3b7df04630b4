// Package sched provides a cooperative, single-threaded timer scheduler
// driven by an explicit virtual clock.
//
// Nothing runs on its own: callbacks fire only inside Advance, on the
// caller's goroutine, in due-time order (ties in registration order).
// Every timer is an owned Handle that can be cancelled, and a Scope groups
// handles so a whole round can be torn down with one Close.
package sched

import (
	"time"
)

// Scheduler is a virtual clock with one-shot and repeating timers.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*timer
}

type timer struct {
	seq      uint64
	due      time.Duration
	interval time.Duration // 0 for one-shot
	fn       func()
	active   bool
}

// Handle is the owned reference to a scheduled timer.
type Handle struct {
	t *timer
}

// New creates a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d, first at now+d.
// A non-positive interval is treated as one nanosecond.
func (s *Scheduler) Every(d time.Duration, fn func()) *Handle {
	if d <= 0 {
		d = time.Nanosecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{
		seq:      s.seq,
		due:      s.now + d,
		interval: interval,
		fn:       fn,
		active:   true,
	}
	s.timers = append(s.timers, t)
	return &Handle{t: t}
}

// Advance moves the clock forward by dt and runs every callback that comes
// due, in order. Callbacks observe Now() equal to their own due time.
// It returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.active = false
		}
		next.fn()
		fired++
	}

	s.now = target
	s.compact()
	return fired
}

// nextDue returns the earliest active timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if !t.active || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.active {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.active {
			n++
		}
	}
	return n
}

// CancelAll cancels every timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.active = false
	}
	s.timers = s.timers[:0]
}

// Cancel stops the timer. It reports whether the timer was still active.
// Cancelling a nil or already finished handle is a no-op.
func (h *Handle) Cancel() bool {
	if h == nil || h.t == nil || !h.t.active {
		return false
	}
	h.t.active = false
	return true
}

// Active reports whether the timer will still fire.
func (h *Handle) Active() bool {
	return h != nil && h.t != nil && h.t.active
}
