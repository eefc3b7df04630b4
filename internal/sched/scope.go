package sched

import "time"

// Scope owns a set of handles and cancels all of them on Close.
// A closed scope refuses new timers.
type Scope struct {
	s       *Scheduler
	handles []*Handle
	closed  bool
}

// NewScope opens a scope on the scheduler.
func (s *Scheduler) NewScope() *Scope {
	return &Scope{s: s}
}

// After schedules a one-shot timer owned by the scope.
// It returns nil if the scope is closed.
func (sc *Scope) After(d time.Duration, fn func()) *Handle {
	if sc.closed {
		return nil
	}
	return sc.own(sc.s.After(d, fn))
}

// Every schedules a repeating timer owned by the scope.
// It returns nil if the scope is closed.
func (sc *Scope) Every(d time.Duration, fn func()) *Handle {
	if sc.closed {
		return nil
	}
	return sc.own(sc.s.Every(d, fn))
}

func (sc *Scope) own(h *Handle) *Handle {
	// Drop finished handles so long-lived scopes do not grow.
	live := sc.handles[:0]
	for _, old := range sc.handles {
		if old.Active() {
			live = append(live, old)
		}
	}
	sc.handles = append(live, h)
	return h
}

// Active returns the number of live timers owned by the scope.
func (sc *Scope) Active() int {
	n := 0
	for _, h := range sc.handles {
		if h.Active() {
			n++
		}
	}
	return n
}

// Closed reports whether Close has been called.
func (sc *Scope) Closed() bool {
	return sc.closed
}

// Close cancels every timer owned by the scope. It is safe to call twice.
func (sc *Scope) Close() {
	if sc == nil || sc.closed {
		return
	}
	sc.closed = true
	for _, h := range sc.handles {
		h.Cancel()
	}
	sc.handles = nil
}
