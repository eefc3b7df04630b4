package maze

import "math/rand"

// Source supplies the random choices of the generator.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	Intn(n int) int
}

// Carve records one wall removal made during generation.
type Carve struct {
	From Position
	To   Position
	Dir  Direction
}

// Generate builds a perfect maze with a randomized depth-first backtracker.
func Generate(cols, rows int, src Source) *Grid {
	g, _ := GenerateTrace(cols, rows, src)
	return g
}

// GenerateSeeded builds a perfect maze from a math/rand source seeded with seed.
func GenerateSeeded(cols, rows int, seed int64) *Grid {
	return Generate(cols, rows, rand.New(rand.NewSource(seed)))
}

// GenerateTrace builds a maze and returns the wall removals in carve order.
// Starting at (0,0), it carves into a uniformly chosen unvisited neighbor of
// the cell on top of the stack, and pops when there is none.
func GenerateTrace(cols, rows int, src Source) (*Grid, []Carve) {
	g := NewGrid(cols, rows)
	carves := make([]Carve, 0, len(g.cells)-1)

	start := Position{}
	g.at(start).visited = true
	stack := []Position{start}

	candidates := make([]Direction, 0, 4)
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range Directions {
			n := current.Step(d)
			if g.InBounds(n) && !g.at(n).visited {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[src.Intn(len(candidates))]
		next := current.Step(d)

		g.carve(current, d)
		g.at(next).visited = true
		stack = append(stack, next)
		carves = append(carves, Carve{From: current, To: next, Dir: d})
	}

	return g, carves
}

// CanMove reports whether a single step from `from` in direction d is legal:
// from must be inside the grid, the wall on that side must be open, and the
// destination must be inside the grid.
func CanMove(g *Grid, from Position, d Direction) bool {
	if g == nil || !d.Valid() {
		return false
	}
	cell, ok := g.Cell(from)
	if !ok || cell.Wall(d) {
		return false
	}
	return g.InBounds(from.Step(d))
}
