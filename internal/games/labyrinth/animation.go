package labyrinth

import (
	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/maze"
)

// PlayerAnim is the visual interpolation of the player between two cells.
// It is a value type: Advance returns the next state.
type PlayerAnim struct {
	From     maze.Position  // last settled cell
	To       maze.Position  // target cell
	Progress float64        // 0.0 → 1.0
	Dir      maze.Direction // direction of the move in flight, NoDirection when settled
	Fast     bool           // chained from a held key
}

// SettledAt returns a finished animation resting on p.
func SettledAt(p maze.Position) PlayerAnim {
	return PlayerAnim{From: p, To: p, Progress: 1, Dir: maze.NoDirection}
}

// Start begins a move from the current target toward to.
func (a PlayerAnim) Start(to maze.Position, dir maze.Direction, fast bool) PlayerAnim {
	return PlayerAnim{From: a.To, To: to, Progress: 0, Dir: dir, Fast: fast}
}

// Done reports whether the move has completed.
func (a PlayerAnim) Done() bool {
	return a.Progress >= 1
}

// Advance moves the animation forward by dt seconds. Fast moves use the fast
// step rate. Progress is clamped to 1, at which point the move settles.
func Advance(a PlayerAnim, dt float64, cfg config.AnimationConfig) PlayerAnim {
	if a.Done() {
		return a
	}
	rate := cfg.StepRate
	if a.Fast {
		rate = cfg.FastStepRate
	}
	if dt > 0 {
		a.Progress += rate * dt
	}
	if a.Progress >= 1 {
		a = SettledAt(a.To)
	}
	return a
}

// EaseOutCubic decelerates toward the end: 1-(1-t)^3.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

// Position returns the eased visual position in cell units.
func (a PlayerAnim) Position() (x, y float64) {
	t := EaseOutCubic(a.Progress)
	x = float64(a.From.X) + float64(a.To.X-a.From.X)*t
	y = float64(a.From.Y) + float64(a.To.Y-a.From.Y)*t
	return x, y
}
