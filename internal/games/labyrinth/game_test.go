package labyrinth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/maze"
	"github.com/vovakirdan/labyrinth/internal/registry"
)

func corridorOptions() Options {
	cfg := config.DefaultConfig()
	cfg.Difficulties = []config.Tier{
		{Name: "easy", Cols: 8, Rows: 1},
		{Name: "medium", Cols: 12, Rows: 1},
		{Name: "hard", Cols: 16, Rows: 1},
	}
	return Options{Config: cfg}
}

func newTestGame(t *testing.T, mode Mode, opts Options) *Game {
	t.Helper()
	g := NewWithOptions(mode, opts)
	rc := core.DefaultConfig()
	rc.Seed = 42
	g.Reset(rc)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistryModes(t *testing.T) {
	for _, id := range []string{IDStandard, IDRace, IDInfinite} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())

		mode, ok := ModeForID(id)
		require.True(t, ok)
		assert.Equal(t, id, IDForMode(mode))
	}
	_, ok := ModeForID("snake")
	assert.False(t, ok)
}

func TestGameTitles(t *testing.T) {
	assert.Equal(t, "Labyrinth", NewWithOptions(ModeStandard, Options{}).Title())
	assert.Equal(t, "Labyrinth (Race)", NewWithOptions(ModeRace, Options{}).Title())
	assert.Equal(t, "Labyrinth (Infinite)", NewWithOptions(ModeInfinite, Options{}).Title())
}

func TestStepFirstPressMoves(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())

	g.Step(frame(core.ActionRight))
	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, maze.Position{X: 1}, g.Session().Player())

	// Walls and borders are silent no-ops.
	g.Step(frame(core.ActionUp))
	assert.Equal(t, 1, g.State().Score)
}

func TestStepHeldKeyRepeats(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())

	// Simulate a held key that keeps sending native repeats every frame.
	for range 120 {
		g.Step(frame(core.ActionRight))
		if g.State().GameOver {
			break
		}
	}

	assert.True(t, g.State().GameOver, "holding right runs the corridor to the goal")
	assert.Equal(t, 7, g.State().Score)
	assert.Equal(t, maze.Position{X: 7}, g.Session().Player())
}

func TestStepTapWithoutHoldMovesOnce(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())

	g.Step(frame(core.ActionRight))
	for range 60 {
		g.Step(frame())
	}
	assert.Equal(t, 1, g.State().Score)
}

func TestStepPauseFreezesClock(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())
	g.Step(frame(core.ActionRight))

	g.Step(frame(core.ActionPause))
	assert.True(t, g.State().Paused)
	elapsed := g.Session().Elapsed()
	for range 120 {
		g.Step(frame(core.ActionRight))
	}
	assert.Equal(t, elapsed, g.Session().Elapsed())
	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestStepRestart(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())
	g.Step(frame(core.ActionRight))
	require.Equal(t, 1, g.State().Score)

	g.Step(frame(core.ActionRestart))
	assert.Zero(t, g.State().Score)
	assert.Equal(t, maze.Position{}, g.Session().Player())
}

func TestReplayLayoutSurvivesRestart(t *testing.T) {
	opts := Options{Config: config.DefaultConfig(), Layout: &Layout{Tier: 0, Cols: 6, Rows: 5, Seed: 77}}
	g := newTestGame(t, ModeStandard, opts)
	want := maze.GenerateSeeded(6, 5, 77).String()
	assert.Equal(t, want, g.Session().Grid().String())

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, want, g.Session().Grid().String())
}

func TestSetReplayAppliesOnce(t *testing.T) {
	SetReplay(Layout{Cols: 4, Rows: 3, Seed: 5})
	first := New(ModeStandard)
	second := New(ModeStandard)

	require.NotNil(t, first.opts.Layout)
	assert.Equal(t, int64(5), first.opts.Layout.Seed)
	assert.Nil(t, second.opts.Layout)
}

func TestRenderDrawsBoard(t *testing.T) {
	g := newTestGame(t, ModeStandard, Options{Config: config.DefaultConfig()})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "LABYRINTH - Standard")
	assert.Contains(t, out, "Moves: 0")
	assert.Contains(t, out, "Time: 00:00")
	assert.Contains(t, out, "Tier: easy 11x7")
	assert.Contains(t, out, "◆")
	assert.Contains(t, out, string(FallbackGlyph))
	assert.Contains(t, out, "┌")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, ModeStandard, Options{Config: config.DefaultConfig()})
	g.Resize(20, 8)
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderWinOverlay(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())
	for range 120 {
		g.Step(frame(core.ActionRight))
	}
	require.True(t, g.State().GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "YOU ESCAPED!")
}

func TestRenderCompactLayout(t *testing.T) {
	g := newTestGame(t, ModeStandard, Options{Config: config.DefaultConfig()})
	// 11 columns need 45 screen columns wide, 23 compact.
	g.Resize(30, 20)
	screen := core.NewScreen(30, 20)
	g.Render(screen)
	assert.NotContains(t, screen.String(), "Window too small")

	l, ok := g.layout()
	require.True(t, ok)
	assert.Equal(t, 2, l.cw)
}

func TestHintFollowsPlayer(t *testing.T) {
	g := newTestGame(t, ModeStandard, corridorOptions())
	g.Step(frame(core.ActionHint))
	require.True(t, g.showHint)

	path := g.hintPath()
	assert.Len(t, path, 8)

	g.Step(frame(core.ActionRight))
	g.Session().Tick(time.Second)
	assert.Len(t, g.hintPath(), 7)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, ModeRace, corridorOptions())
	g.Step(frame())

	snap := g.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, ModeRace, snap.Mode)
	assert.Equal(t, "easy", snap.Tier)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, maze.Position{X: 7}, snap.Goal)
	assert.Equal(t, "01:30", snap.Clock)
	assert.Equal(t, 1, snap.Round)
	assert.True(t, strings.HasPrefix(snap.Grid.String(), "+"))
}
