package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/maze"
)

func TestSize(t *testing.T) {
	w, h := Size(11, 7, Options{})
	assert.Equal(t, 11*24+2*margin, w)
	assert.Equal(t, 7*24+2*margin, h)

	_, h = Size(11, 7, Options{Title: "seed 1"})
	assert.Equal(t, 7*24+2*margin+titleHeight, h)
}

func TestRenderColors(t *testing.T) {
	g := maze.GenerateSeeded(5, 4, 3)
	img := Render(g, Options{CellSize: 20, WallWidth: 2})

	w, h := Size(5, 4, Options{CellSize: 20})
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	// Outer border is always a wall.
	assert.Equal(t, wallColor, img.RGBAAt(margin, margin+10))
	assert.Equal(t, wallColor, img.RGBAAt(margin+10, margin))

	// Start and goal cells are tinted near their corners.
	assert.Equal(t, startColor, img.RGBAAt(margin+3, margin+3))
	gx := margin + 4*20
	gy := margin + 3*20
	assert.Equal(t, goalColor, img.RGBAAt(gx+3, gy+3))
}

func TestRenderSolution(t *testing.T) {
	g := maze.GenerateSeeded(3, 1, 1)

	plain := Render(g, Options{CellSize: 20})
	solved := Render(g, Options{CellSize: 20, Solution: true})

	cx, cy := margin+20+10, margin+10
	assert.Equal(t, bgColor, plain.RGBAAt(cx, cy))
	assert.Equal(t, solutionColor, solved.RGBAAt(cx, cy))
}

func TestWritePNG(t *testing.T) {
	g := maze.GenerateSeeded(6, 6, 9)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, g, Options{Title: "labyrinth", Solution: true}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	w, h := Size(6, 6, Options{Title: "labyrinth"})
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	assert.Error(t, WritePNG(&buf, nil, Options{}))
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "maze.png")
	require.NoError(t, SaveFile(path, maze.GenerateSeeded(4, 4, 2), Options{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
