package labyrinth

import (
	"time"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/maze"
)

// RepeatState is the hold state of one direction key.
type RepeatState int

const (
	RepeatIdle RepeatState = iota
	RepeatArmed
	RepeatRepeating
)

func (s RepeatState) String() string {
	switch s {
	case RepeatArmed:
		return "armed"
	case RepeatRepeating:
		return "repeating"
	default:
		return "idle"
	}
}

type heldKey struct {
	state      RepeatState
	pressedAt  time.Duration
	lastEvent  time.Duration
	nextRepeat time.Duration
	confirmed  bool // a native repeat arrived, so the key is really held
}

// RepeatController turns key presses into first moves and paced repeat moves.
//
// Terminals deliver presses and native auto-repeats but no releases, so a
// release is inferred: an armed key that never repeats is dropped after
// ArmTimeout, and a confirmed hold is dropped once native repeats stop for
// ReleaseAfter. Repeat moves are only emitted while native repeats keep
// arriving at least once per RepeatInterval. Hosts that do report releases
// call SetKeyUps and Release.
type RepeatController struct {
	cfg    config.InputConfig
	keyUps bool
	keys   [4]heldKey
}

// NewRepeatController creates a controller with every key idle.
func NewRepeatController(cfg config.InputConfig) *RepeatController {
	return &RepeatController{cfg: cfg}
}

// SetKeyUps declares that the host reports key releases. Holds are then
// trusted until Release and need no native repeats to confirm them.
func (r *RepeatController) SetKeyUps(on bool) {
	r.keyUps = on
}

// Press records a key event at now. It returns true for a fresh press, which
// the caller turns into an immediate move. An event that continues the
// stream of a held key, arriving within InitialDelay of the previous one,
// is a native repeat and is suppressed. A later event on an armed key is a
// new tap: it re-arms the key and moves once.
func (r *RepeatController) Press(d maze.Direction, now time.Duration) bool {
	if !d.Valid() {
		return false
	}
	k := &r.keys[d]
	switch k.state {
	case RepeatRepeating:
		k.lastEvent = now
		return false
	case RepeatArmed:
		if now-k.lastEvent <= r.cfg.InitialDelay {
			k.lastEvent = now
			k.confirmed = true
			return false
		}
	}

	for _, other := range maze.Directions {
		if other != d {
			r.keys[other] = heldKey{}
		}
	}
	*k = heldKey{state: RepeatArmed, pressedAt: now, lastEvent: now}
	return true
}

// Release returns the key to idle.
func (r *RepeatController) Release(d maze.Direction) {
	if d.Valid() {
		r.keys[d] = heldKey{}
	}
}

// Update advances the hold timers to now. It returns the direction of a
// repeat move when one is due.
func (r *RepeatController) Update(now time.Duration) (maze.Direction, bool) {
	for _, d := range maze.Directions {
		k := &r.keys[d]
		switch k.state {
		case RepeatArmed:
			if !r.keyUps && !k.confirmed && now-k.pressedAt >= r.cfg.ArmTimeout {
				*k = heldKey{}
				continue
			}
			if !r.keyUps && k.confirmed && now-k.lastEvent >= r.cfg.ReleaseAfter {
				*k = heldKey{}
				continue
			}
			if (r.keyUps || (k.confirmed && r.streaming(k, now))) && now-k.pressedAt >= r.cfg.InitialDelay {
				k.state = RepeatRepeating
				k.nextRepeat = now + r.cfg.RepeatInterval
				return d, true
			}
		case RepeatRepeating:
			if !r.keyUps && now-k.lastEvent >= r.cfg.ReleaseAfter {
				*k = heldKey{}
				continue
			}
			if now >= k.nextRepeat && (r.keyUps || r.streaming(k, now)) {
				k.nextRepeat += r.cfg.RepeatInterval
				if k.nextRepeat <= now {
					k.nextRepeat = now + r.cfg.RepeatInterval
				}
				return d, true
			}
		}
	}
	return maze.NoDirection, false
}

// streaming reports whether native repeats for k are still arriving.
func (r *RepeatController) streaming(k *heldKey, now time.Duration) bool {
	return now-k.lastEvent < r.cfg.RepeatInterval
}

// State returns the hold state of d.
func (r *RepeatController) State(d maze.Direction) RepeatState {
	if !d.Valid() {
		return RepeatIdle
	}
	return r.keys[d].state
}

// Reset returns every key to idle.
func (r *RepeatController) Reset() {
	r.keys = [4]heldKey{}
}
