package labyrinth

import "github.com/vovakirdan/labyrinth/internal/maze"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying    GameStateType = "playing"
	StateTransition GameStateType = "round_cleared"
	StateWon        GameStateType = "won"
	StateTimedOut   GameStateType = "timed_out"
	StatePaused     GameStateType = "paused"
)

// Snapshot is everything a presentation layer needs to draw a frame.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Tier      string
	Round     int
	Seed      int64
	Grid      *maze.Grid
	Player    maze.Position
	VisualX   float64 // eased player position in cell units
	VisualY   float64
	Goal      maze.Position
	Moves     int
	Completed int
	Won       bool
	TimedOut  bool
	Clock     string
	State     GameStateType
}

// Snapshot returns the presentation state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      s.mode,
		Tier:      s.TierName(),
		Round:     s.round,
		Seed:      s.seed,
		Grid:      s.grid,
		Player:    s.player,
		Moves:     s.moves,
		Completed: s.completed,
		Won:       s.won,
		TimedOut:  s.timedOut,
		Clock:     s.ClockText(),
		State:     StatePlaying,
	}
	snap.VisualX, snap.VisualY = s.anim.Position()
	if s.grid != nil {
		snap.Goal = s.grid.Goal()
	}

	switch {
	case s.timedOut:
		snap.State = StateTimedOut
	case s.won:
		snap.State = StateWon
	case s.TransitionPending():
		snap.State = StateTransition
	}
	return snap
}

// Snapshot returns the session snapshot tagged with the tick count.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Tick = g.tick
	if g.paused && snap.State == StatePlaying {
		snap.State = StatePaused
	}
	return snap
}
