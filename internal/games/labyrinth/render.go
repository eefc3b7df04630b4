package labyrinth

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/maze"
)

const (
	hudHeight    = 2
	footerHeight = 1
	cellHeight   = 2 // rows per cell including the wall row above it
)

// junctions maps a wall mask (up=1, right=2, down=4, left=8) to a box glyph.
var junctions = [16]rune{
	' ', '│', '─', '└', '│', '│', '┌', '├',
	'─', '┘', '─', '┴', '┐', '┤', '┬', '┼',
}

// boardLayout places the maze on screen. cw is the number of columns per cell.
type boardLayout struct {
	ox, oy int
	cw     int
	w, h   int
}

// toScreen converts a position in cell units to screen coordinates of the
// cell center.
func (l boardLayout) toScreen(x, y float64) (int, int) {
	return l.ox + core.Round(x*float64(l.cw)) + l.cw/2, l.oy + core.Round(y*cellHeight) + 1
}

// layout picks the widest cell size that fits the screen.
func (g *Game) layout() (boardLayout, bool) {
	grid := g.session.Grid()
	if grid == nil {
		return boardLayout{}, false
	}
	h := grid.Rows()*cellHeight + 1
	avail := g.screenH - hudHeight - footerHeight
	if h > avail {
		return boardLayout{}, false
	}
	for _, cw := range []int{4, 2} {
		w := grid.Cols()*cw + 1
		if w <= g.screenW {
			return boardLayout{
				ox: (g.screenW - w) / 2,
				oy: hudHeight + (avail-h)/2,
				cw: cw,
				w:  w,
				h:  h,
			}, true
		}
	}
	return boardLayout{}, false
}

func (l boardLayout) bounds() core.Rect {
	return core.NewRect(l.ox, l.oy, l.w, l.h)
}

// MinScreenSize returns the smallest screen that fits a cols x rows maze.
func MinScreenSize(cols, rows int) (w, h int) {
	return 2*cols + 1, cellHeight*rows + 1 + hudHeight + footerHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	l, ok := g.layout()
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	s := g.session
	g.renderWalls(dst, l, s.Grid())
	if g.showHint && !s.Won() {
		g.renderHint(dst, l)
	}
	g.renderTrail(dst, l)

	goal := s.Grid().Goal()
	gx, gy := l.toScreen(float64(goal.X), float64(goal.Y))
	dst.SetColored(gx, gy, '◆', core.ColorBrightGreen)

	px, py := l.toScreen(s.Anim().Position())
	dst.SetColored(px, py, g.opts.Sprites.For(s.Anim().Dir), core.ColorBrightYellow)

	field := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight)
	for _, p := range s.Particles().All() {
		x, y := l.toScreen(p.X, p.Y)
		if field.Contains(x, y) {
			dst.SetColored(x, y, p.Glyph(), p.Color)
		}
	}

	g.renderHUD(dst)
	g.renderOverlays(dst, l)
	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	cols, rows := 0, 0
	if grid := g.session.Grid(); grid != nil {
		cols, rows = grid.Cols(), grid.Rows()
	}
	w, h := MinScreenSize(cols, rows)
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", w, h))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderWalls(dst *core.Screen, l boardLayout, grid *maze.Grid) {
	cols, rows := grid.Cols(), grid.Rows()

	// hWall: wall segment from lattice point (i, j) to (i+1, j).
	hWall := func(i, j int) bool {
		if j < rows {
			c, _ := grid.Cell(maze.Position{X: i, Y: j})
			return c.Wall(maze.Top)
		}
		c, _ := grid.Cell(maze.Position{X: i, Y: j - 1})
		return c.Wall(maze.Bottom)
	}
	// vWall: wall segment from lattice point (i, j) to (i, j+1).
	vWall := func(i, j int) bool {
		if i < cols {
			c, _ := grid.Cell(maze.Position{X: i, Y: j})
			return c.Wall(maze.Left)
		}
		c, _ := grid.Cell(maze.Position{X: i - 1, Y: j})
		return c.Wall(maze.Right)
	}

	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			x := l.ox + i*l.cw
			y := l.oy + j*cellHeight

			mask := 0
			if j > 0 && vWall(i, j-1) {
				mask |= 1
			}
			if i < cols && hWall(i, j) {
				mask |= 2
				dst.DrawHLine(x+1, y, l.cw-1, '─', core.ColorBlue)
			}
			if j < rows && vWall(i, j) {
				mask |= 4
				dst.DrawVLine(x, y+1, cellHeight-1, '│', core.ColorBlue)
			}
			if i > 0 && hWall(i-1, j) {
				mask |= 8
			}
			dst.SetColored(x, y, junctions[mask], core.ColorBlue)
		}
	}
}

func (g *Game) renderHint(dst *core.Screen, l boardLayout) {
	for _, p := range g.hintPath() {
		x, y := l.toScreen(float64(p.X), float64(p.Y))
		dst.SetColored(x, y, '·', core.ColorYellow)
	}
}

func (g *Game) renderTrail(dst *core.Screen, l boardLayout) {
	for _, p := range g.session.Trail().Points() {
		x, y := l.toScreen(p.X, p.Y)
		switch {
		case p.Opacity > 0.66:
			dst.SetColored(x, y, '•', core.ColorCyan)
		case p.Opacity > 0.33:
			dst.SetColored(x, y, '∙', core.ColorBlue)
		default:
			dst.SetColored(x, y, '·', core.ColorDarkGray)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session

	title := "LABYRINTH - " + modeLabel(s.Mode())
	dst.DrawTextColored(1, 0, title, core.ColorBrightCyan)

	clockLabel := "Time"
	if s.Mode() == ModeRace {
		clockLabel = "Left"
	}
	stats := fmt.Sprintf("Moves: %d  %s: %s", s.Moves(), clockLabel, s.ClockText())
	dst.DrawText(g.screenW-len(stats)-1, 0, stats)

	grid := s.Grid()
	tier := fmt.Sprintf("Tier: %s %dx%d", s.TierName(), grid.Cols(), grid.Rows())
	dst.DrawTextColored(1, 1, tier, core.ColorGray)

	if s.Mode() != ModeStandard {
		cleared := fmt.Sprintf("Cleared: %d", s.Completed())
		dst.DrawText(g.screenW-len(cleared)-1, 1, cleared)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	controls := g.Controls()
	if len(controls) > g.screenW {
		controls = "Move: arrows/WASD/hjkl  Q: quit"
	}
	dst.DrawTextColored((g.screenW-len(controls))/2, g.screenH-1, controls, core.ColorDarkGray)
}

func (g *Game) renderOverlays(dst *core.Screen, l boardLayout) {
	s := g.session
	cx, cy := l.bounds().Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case s.TimedOut():
		drawOverlay(dst, cx, cy, "TIME'S UP!",
			fmt.Sprintf("Mazes cleared: %d", s.Completed()),
			"R: race again  Esc: menu")
	case s.Won():
		drawOverlay(dst, cx, cy, "YOU ESCAPED!",
			fmt.Sprintf("Moves: %d  Time: %s", s.Moves(), s.ClockText()),
			"R: play again  Esc: menu")
	case s.TransitionPending():
		drawOverlay(dst, cx, cy, fmt.Sprintf("MAZE %d CLEARED!", s.Completed()), "Next maze...")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

func modeLabel(m Mode) string {
	switch m {
	case ModeRace:
		return "Race"
	case ModeInfinite:
		return "Infinite"
	default:
		return "Standard"
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	parts := []string{"Arrows/WASD/hjkl: Move", "Tab: Hint", "P: Pause", "R: Restart", "Esc: Menu", "Q: Quit"}
	return strings.Join(parts, " | ")
}
