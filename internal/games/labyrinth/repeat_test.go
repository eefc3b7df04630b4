package labyrinth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/maze"
)

func testInput() config.InputConfig {
	return config.InputConfig{
		InitialDelay:   180 * time.Millisecond,
		RepeatInterval: 80 * time.Millisecond,
		ArmTimeout:     600 * time.Millisecond,
		ReleaseAfter:   160 * time.Millisecond,
	}
}

const ms = time.Millisecond

func TestRepeatFreshPressAndNativeRepeat(t *testing.T) {
	r := NewRepeatController(testInput())

	assert.True(t, r.Press(maze.Right, 0))
	assert.Equal(t, RepeatArmed, r.State(maze.Right))

	assert.False(t, r.Press(maze.Right, 30*ms), "native repeat is suppressed")
	assert.Equal(t, RepeatArmed, r.State(maze.Right))
	assert.False(t, r.Press(maze.NoDirection, 0))
}

func TestRepeatUnconfirmedPressExpires(t *testing.T) {
	r := NewRepeatController(testInput())
	r.Press(maze.Top, 0)

	_, ok := r.Update(500 * ms)
	assert.False(t, ok, "no repeat without a confirmed hold")
	assert.Equal(t, RepeatArmed, r.State(maze.Top))

	_, ok = r.Update(600 * ms)
	assert.False(t, ok)
	assert.Equal(t, RepeatIdle, r.State(maze.Top))

	assert.True(t, r.Press(maze.Top, 700*ms), "next press is fresh again")
}

func TestRepeatConfirmedHold(t *testing.T) {
	r := NewRepeatController(testInput())
	require.True(t, r.Press(maze.Left, 0))

	// The terminal starts auto-repeating after 300ms, every 30ms.
	var presses, moves []time.Duration
	for now := 10 * ms; now <= 800*ms; now += 10 * ms {
		if now >= 300*ms && now%(30*ms) == 0 && r.Press(maze.Left, now) {
			presses = append(presses, now)
		}
		if d, ok := r.Update(now); ok {
			require.Equal(t, maze.Left, d)
			moves = append(moves, now)
		}
	}

	// The first native repeat comes after a pause, so it moves like a tap.
	assert.Equal(t, []time.Duration{300 * ms}, presses)
	require.NotEmpty(t, moves)
	assert.Equal(t, 480*ms, moves[0], "repeat begins InitialDelay after the stream starts")
	assert.Equal(t, RepeatRepeating, r.State(maze.Left))
	for i := 1; i < len(moves); i++ {
		assert.Equal(t, 80*ms, moves[i]-moves[i-1])
	}

	// Native repeats stop: the hold is released after ReleaseAfter.
	_, ok := r.Update(800*ms + 160*ms)
	assert.False(t, ok)
	assert.Equal(t, RepeatIdle, r.State(maze.Left))
}

// countMoves feeds key events at the given times and polls Update every
// frame for a second, counting fresh presses and repeat moves.
func countMoves(r *RepeatController, d maze.Direction, events ...time.Duration) int {
	const frame = time.Second / 60
	moves := 0
	next := 0
	for now := time.Duration(0); now <= time.Second; now += frame {
		for next < len(events) && events[next] <= now {
			if r.Press(d, events[next]) {
				moves++
			}
			next++
		}
		if _, ok := r.Update(now); ok {
			moves++
		}
	}
	return moves
}

func TestRepeatDoubleTapMovesTwice(t *testing.T) {
	r := NewRepeatController(testInput())
	assert.Equal(t, 2, countMoves(r, maze.Right, 0, 250*ms))
	assert.Equal(t, RepeatIdle, r.State(maze.Right))
}

func TestRepeatQuickDoubleTapMovesTwice(t *testing.T) {
	r := NewRepeatController(testInput())
	assert.Equal(t, 2, countMoves(r, maze.Right, 0, 100*ms))
}

func TestRepeatStopsWhenStreamPauses(t *testing.T) {
	r := NewRepeatController(testInput())
	r.Press(maze.Top, 0)
	for now := 20 * ms; now <= 200*ms; now += 20 * ms {
		r.Press(maze.Top, now)
	}

	_, ok := r.Update(200 * ms)
	require.True(t, ok)
	require.Equal(t, RepeatRepeating, r.State(maze.Top))

	// No events for longer than RepeatInterval: no more moves.
	_, ok = r.Update(290 * ms)
	assert.False(t, ok)
}

func TestRepeatNewDirectionReleasesOthers(t *testing.T) {
	r := NewRepeatController(testInput())
	r.Press(maze.Right, 0)
	r.Press(maze.Right, 20*ms)

	assert.True(t, r.Press(maze.Bottom, 40*ms))
	assert.Equal(t, RepeatIdle, r.State(maze.Right))
	assert.Equal(t, RepeatArmed, r.State(maze.Bottom))
}

func TestRepeatWithKeyUps(t *testing.T) {
	r := NewRepeatController(testInput())
	r.SetKeyUps(true)
	r.Press(maze.Bottom, 0)

	_, ok := r.Update(179 * ms)
	assert.False(t, ok)

	d, ok := r.Update(180 * ms)
	assert.True(t, ok)
	assert.Equal(t, maze.Bottom, d)

	// No release is inferred while the host reports key-ups.
	_, ok = r.Update(2 * time.Second)
	assert.True(t, ok)
	assert.Equal(t, RepeatRepeating, r.State(maze.Bottom))

	r.Release(maze.Bottom)
	assert.Equal(t, RepeatIdle, r.State(maze.Bottom))
	_, ok = r.Update(3 * time.Second)
	assert.False(t, ok)
}

func TestRepeatReset(t *testing.T) {
	r := NewRepeatController(testInput())
	r.Press(maze.Right, 0)
	r.Reset()

	for _, d := range maze.Directions {
		assert.Equal(t, RepeatIdle, r.State(d))
	}
	assert.Equal(t, "idle", RepeatIdle.String())
	assert.Equal(t, "armed", RepeatArmed.String())
	assert.Equal(t, "repeating", RepeatRepeating.String())
}
