package labyrinth

import (
	"time"

	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/maze"
	"github.com/vovakirdan/labyrinth/internal/registry"
)

// Registry IDs, one per mode.
const (
	IDStandard = "maze"
	IDRace     = "maze_race"
	IDInfinite = "maze_infinite"
)

// Game adapts a Session to the platform: it maps input frames to moves,
// drives the session clock from the tick rate and renders into a screen.
type Game struct {
	mode    Mode
	opts    Options
	session *Session
	repeat  *RepeatController

	tick     uint64
	dt       time.Duration
	now      time.Duration
	screenW  int
	screenH  int
	paused   bool
	showHint bool
	hint     []maze.Position
	hintKey  hintKey
}

type hintKey struct {
	round  int
	player maze.Position
}

// New creates a game in the given mode using the package defaults.
func New(mode Mode) *Game {
	return NewWithOptions(mode, takeDefaults())
}

// NewWithOptions creates a game in the given mode with explicit options.
func NewWithOptions(mode Mode, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	if opts.Sprites == (SpriteSet{}) {
		opts.Sprites = DefaultSprites
	}
	return &Game{mode: mode, opts: opts}
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New(ModeStandard)
	})
	registry.Register(IDRace, func() registry.Game {
		return New(ModeRace)
	})
	registry.Register(IDInfinite, func() registry.Game {
		return New(ModeInfinite)
	})
}

// ModeForID maps a registry ID to its mode.
func ModeForID(id string) (Mode, bool) {
	switch id {
	case IDStandard:
		return ModeStandard, true
	case IDRace:
		return ModeRace, true
	case IDInfinite:
		return ModeInfinite, true
	}
	return "", false
}

// IDForMode maps a mode to its registry ID.
func IDForMode(m Mode) string {
	switch m {
	case ModeRace:
		return IDRace
	case ModeInfinite:
		return IDInfinite
	default:
		return IDStandard
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForMode(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeRace:
		return "Labyrinth (Race)"
	case ModeInfinite:
		return "Labyrinth (Infinite)"
	default:
		return "Labyrinth"
	}
}

// Reset creates a fresh session and starts a game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.session != nil {
		g.session.Close()
	}

	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.dt = time.Second / time.Duration(rate)
	g.tick = 0
	g.now = 0
	g.paused = false
	g.showHint = false
	g.hint = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.session = NewSession(g.opts.Config, cfg.Seed)
	g.session.SetLogger(g.opts.Logger)
	g.session.OnRound(g.opts.OnRound)
	g.repeat = NewRepeatController(g.opts.Config.Input)

	if g.opts.Layout != nil {
		g.session.StartLayout(*g.opts.Layout)
		return
	}
	g.session.StartGame(g.mode, g.opts.Difficulty)
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Close releases the session timers.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick: fresh presses move at once, then the
// session clock and animation advance, then a due repeat move is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	s := g.session

	if in.Has(core.ActionRestart) {
		g.restart()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !s.Won() {
		g.paused = !g.paused
		g.repeat.Reset()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
	}

	g.now += g.dt
	for _, a := range []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft} {
		if !in.Has(a) {
			continue
		}
		d := directionFor(a)
		if g.repeat.Press(d, g.now) {
			s.AttemptMove(d)
		}
	}

	round := s.Round()
	s.Tick(g.dt)
	if s.Round() != round {
		g.repeat.Reset()
	}

	if d, ok := g.repeat.Update(g.now); ok {
		s.AttemptFastMove(d)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	if g.opts.Layout != nil {
		g.session.StartLayout(*g.opts.Layout)
	} else {
		g.session.Restart()
	}
	g.repeat.Reset()
	g.showHint = false
	g.hint = nil
}

func directionFor(a core.Action) maze.Direction {
	switch a {
	case core.ActionUp:
		return maze.Top
	case core.ActionRight:
		return maze.Right
	case core.ActionDown:
		return maze.Bottom
	case core.ActionLeft:
		return maze.Left
	}
	return maze.NoDirection
}

// hintPath returns the shortest path from the player to the goal, cached
// until the player moves or the round changes.
func (g *Game) hintPath() []maze.Position {
	s := g.session
	key := hintKey{round: s.Round(), player: s.Player()}
	if g.hint == nil || key != g.hintKey {
		g.hint = maze.Solve(s.Grid(), s.Player(), s.Grid().Goal())
		g.hintKey = key
	}
	return g.hint
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Moves(),
		GameOver: g.session.Won(),
		Paused:   g.paused,
	}
}
