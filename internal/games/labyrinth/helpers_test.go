package labyrinth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/maze"
)

// smallConfig keeps mazes tiny so tests can walk them quickly.
func smallConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Difficulties = []config.Tier{
		{Name: "easy", Cols: 3, Rows: 3},
		{Name: "medium", Cols: 4, Rows: 4},
		{Name: "hard", Cols: 5, Rows: 5},
	}
	cfg.Race.TimeBudget = 10 * time.Minute
	return cfg
}

// directionTo returns the direction from a to its neighbor b.
func directionTo(a, b maze.Position) maze.Direction {
	for _, d := range maze.Directions {
		if a.Step(d) == b {
			return d
		}
	}
	return maze.NoDirection
}

// settle runs the animation to completion without reaching any round timer.
func settle(s *Session) {
	s.Tick(200 * time.Millisecond)
}

// walkToGoal plays the shortest path to the goal of the current round.
func walkToGoal(t *testing.T, s *Session) {
	t.Helper()
	path := maze.Solve(s.Grid(), s.Player(), s.Grid().Goal())
	require.NotEmpty(t, path)
	for i := 1; i < len(path); i++ {
		require.True(t, s.AttemptMove(directionTo(path[i-1], path[i])), "step %d", i)
		settle(s)
	}
}

func requirePerfect(t *testing.T, g *maze.Grid) {
	t.Helper()
	require.NotNil(t, g)
	n := g.Cols() * g.Rows()
	require.Equal(t, n-1, g.OpenPassages())
	require.Equal(t, n, maze.Reachable(g, maze.Position{}))
}
