package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMoveOutOfBoundsDirections(t *testing.T) {
	// Strip every wall so only the bounds check can refuse a move.
	g := NewGrid(4, 3)
	for i := range g.cells {
		g.cells[i].Walls = [4]bool{}
	}

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := Position{X: x, Y: y}
			for _, d := range Directions {
				assert.Equal(t, g.InBounds(p.Step(d)), CanMove(g, p, d),
					"CanMove(%v, %v)", p, d)
			}
		}
	}
}

func TestCanMoveRespectsWalls(t *testing.T) {
	g := NewGrid(3, 3)
	center := Position{X: 1, Y: 1}

	for _, d := range Directions {
		assert.False(t, CanMove(g, center, d), "closed grid should block %v", d)
	}

	g.carve(center, Right)
	assert.True(t, CanMove(g, center, Right))
	assert.True(t, CanMove(g, Position{X: 2, Y: 1}, Left))
	assert.False(t, CanMove(g, center, Left))
}

func TestCanMoveInvalidInput(t *testing.T) {
	g := GenerateSeeded(3, 3, 1)

	assert.False(t, CanMove(nil, Position{}, Right))
	assert.False(t, CanMove(g, Position{X: -1, Y: 0}, Right))
	assert.False(t, CanMove(g, Position{X: 3, Y: 0}, Left))
	assert.False(t, CanMove(g, Position{}, NoDirection))
}

func TestDirectionHelpers(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		dx, dy   int
		name     string
	}{
		{Top, Bottom, 0, -1, "top"},
		{Right, Left, 1, 0, "right"},
		{Bottom, Top, 0, 1, "bottom"},
		{Left, Right, -1, 0, "left"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.opposite, tc.dir.Opposite())
			dx, dy := tc.dir.Delta()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)
			assert.Equal(t, tc.name, tc.dir.String())
		})
	}

	assert.Equal(t, "none", NoDirection.String())
	assert.Equal(t, NoDirection, NoDirection.Opposite())
}
