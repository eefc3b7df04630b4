package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runes returns the runes of row y between x0 and x1.
func runes(s *Screen, y, x0, x1 int) string {
	return string([]rune(s.Row(y))[x0:x1])
}

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	require.Equal(t, 12, s.Width())
	require.Equal(t, 4, s.Height())

	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 12)+"\n", 3)+strings.Repeat(" ", 12), s.String())
	assert.Equal(t, blankCell, s.GetCell(11, 3))
}

func TestScreenNegativeSizeIsEmpty(t *testing.T) {
	s := NewScreen(-3, -1)
	assert.Zero(t, s.Width())
	assert.Zero(t, s.Height())
	assert.Empty(t, s.String())
}

func TestScreenSetIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(1, 1, '@')
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'X')
	}

	assert.Equal(t, "   \n @ ", s.String())
	assert.Equal(t, ' ', s.GetCell(7, 7).Rune)
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 0, "ab", ColorGreen)
	s.SetColored(5, 1, '@', ColorBrightBlue)

	assert.Equal(t, Cell{Rune: 'a', Color: ColorGreen}, s.GetCell(1, 0))
	assert.Equal(t, Cell{Rune: '@', Color: ColorBrightBlue}, s.GetCell(5, 1))
	assert.Equal(t, ColorDefault, s.GetCell(0, 0).Color)

	s.Clear()
	assert.Equal(t, blankCell, s.GetCell(1, 0))
}

func TestScreenTextIsClipped(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "maze")
	s.DrawText(-2, 1, "walls")

	assert.Equal(t, "maz", runes(s, 0, 5, 8))
	assert.Equal(t, "lls", runes(s, 1, 0, 3))
}

func TestScreenTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "goal")
	assert.Equal(t, "   goal    ", s.Row(0))
}

func TestScreenRectAndBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(NewRect(0, 0, 7, 5), '.')
	s.DrawBox(NewRect(1, 1, 5, 3))

	assert.Equal(t, strings.Join([]string{
		".......",
		".┌───┐.",
		".│...│.",
		".└───┘.",
		".......",
	}, "\n"), s.String())
}

func TestScreenLinesKeepColor(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawHLine(1, 0, 4, '─', ColorBlue)
	s.DrawVLine(0, 1, 5, '│', ColorRed)

	assert.Equal(t, " ──── ", s.Row(0))
	assert.Equal(t, Cell{Rune: '─', Color: ColorBlue}, s.GetCell(4, 0))
	assert.Equal(t, ' ', s.GetCell(5, 0).Rune)
	for y := 1; y < 4; y++ {
		assert.Equal(t, Cell{Rune: '│', Color: ColorRed}, s.GetCell(0, y))
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello")
	s.SetColored(1, 1, '#', ColorRed)
	s.DrawText(0, 5, "World")

	s.Resize(4, 3)
	assert.Equal(t, "Hell", s.Row(0))
	assert.Equal(t, 3, s.Height())

	s.Resize(9, 7)
	assert.Equal(t, "Hell     ", s.Row(0))
	assert.Equal(t, Cell{Rune: '#', Color: ColorRed}, s.GetCell(1, 1))
	assert.Equal(t, strings.Repeat(" ", 9), s.Row(5), "rows cut by shrinking stay blank")
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 1)
	assert.Equal(t, "    ", s.Row(-1))
	assert.Equal(t, "    ", s.Row(1))
}
