// Package maze implements the grid model, the randomized depth-first
// backtracking generator, the movement validator and a BFS solver.
package maze

import "strings"

// Direction is one of the four orthogonal moves.
// The declaration order is the neighbor enumeration order used by Generate.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// NoDirection marks a settled animation with no move in flight.
const NoDirection Direction = -1

// Directions lists all directions in enumeration order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

var deltas = [4]Position{
	Top:    {X: 0, Y: -1},
	Right:  {X: 1, Y: 0},
	Bottom: {X: 0, Y: 1},
	Left:   {X: -1, Y: 0},
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Top && d <= Left
}

// Delta returns the coordinate change of one step in d.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d].X, deltas[d].Y
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Position is a pair of grid coordinates.
type Position struct {
	X, Y int
}

// Step returns the neighboring position in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell is one maze cell. Each cell stores its own four wall flags.
type Cell struct {
	X, Y    int
	Walls   [4]bool // indexed by Direction
	visited bool    // generation only
}

// Wall reports whether the wall on side d is present.
func (c Cell) Wall(d Direction) bool {
	if !d.Valid() {
		return true
	}
	return c.Walls[d]
}

// Grid is a cols × rows array of cells stored row-major.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
}

// NewGrid returns a grid with every wall present and no cell visited.
// Dimensions below 1 are clamped to 1.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[y*cols+x] = Cell{
				X:     x,
				Y:     y,
				Walls: [4]bool{true, true, true, true},
			}
		}
	}
	return g
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Goal returns the bottom-right cell, the target of every round.
func (g *Grid) Goal() Position {
	return Position{X: g.cols - 1, Y: g.rows - 1}
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Y*g.cols+p.X], true
}

func (g *Grid) at(p Position) *Cell {
	return &g.cells[p.Y*g.cols+p.X]
}

// Open reports whether the wall on side d of p is removed.
func (g *Grid) Open(p Position, d Direction) bool {
	c, ok := g.Cell(p)
	return ok && !c.Wall(d)
}

// carve removes the wall between p and its neighbor in d on both sides.
func (g *Grid) carve(p Position, d Direction) {
	n := p.Step(d)
	g.at(p).Walls[d] = false
	g.at(n).Walls[d.Opposite()] = false
}

// OpenPassages counts removed wall pairs between adjacent cells.
// A perfect maze has exactly cols*rows-1.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			p := Position{X: x, Y: y}
			if x+1 < g.cols && g.Open(p, Right) {
				count++
			}
			if y+1 < g.rows && g.Open(p, Bottom) {
				count++
			}
		}
	}
	return count
}

// String renders the grid as ASCII art.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render renders the grid as ASCII art, marking positions in mark with '.'.
func (g *Grid) Render(mark map[Position]bool) string {
	var b strings.Builder

	b.WriteString("+")
	for x := 0; x < g.cols; x++ {
		if g.Open(Position{X: x, Y: 0}, Top) {
			b.WriteString("   +")
		} else {
			b.WriteString("---+")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.rows; y++ {
		if g.Open(Position{X: 0, Y: y}, Left) {
			b.WriteString(" ")
		} else {
			b.WriteString("|")
		}
		for x := 0; x < g.cols; x++ {
			p := Position{X: x, Y: y}
			switch {
			case p == (Position{}):
				b.WriteString(" S ")
			case p == g.Goal():
				b.WriteString(" G ")
			case mark[p]:
				b.WriteString(" . ")
			default:
				b.WriteString("   ")
			}
			if g.Open(p, Right) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < g.cols; x++ {
			if g.Open(Position{X: x, Y: y}, Bottom) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
