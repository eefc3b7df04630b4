package labyrinth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/maze"
)

func TestParseSprites(t *testing.T) {
	set, err := ParseSprites([]byte("idle: \"o\"\nup: \"^\"\nright: \">\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 'o', set.For(maze.NoDirection))
	assert.Equal(t, '^', set.For(maze.Top))
	assert.Equal(t, '>', set.For(maze.Right))
	assert.Equal(t, 'o', set.For(maze.Bottom), "missing facing uses idle")
	assert.Equal(t, 'o', set.For(maze.Left))
}

func TestParseSpritesEmptyUsesFallback(t *testing.T) {
	set, err := ParseSprites([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSprites, set)
}

func TestParseSpritesInvalid(t *testing.T) {
	set, err := ParseSprites([]byte("idle: [unclosed"))
	assert.Error(t, err)
	assert.Equal(t, DefaultSprites, set)
}

func TestLoadSprites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprites.yaml")
	require.NoError(t, os.WriteFile(path, []byte("idle: \"☺\"\n"), 0o644))

	set := LoadSprites(path, discardLogger())
	assert.Equal(t, '☺', set.For(maze.Right))

	assert.Equal(t, DefaultSprites, LoadSprites(filepath.Join(dir, "missing.yaml"), discardLogger()))
	assert.Equal(t, DefaultSprites, LoadSprites("", nil))
}

func TestZeroSpriteSetFallsBack(t *testing.T) {
	var set SpriteSet
	assert.Equal(t, FallbackGlyph, set.For(maze.Left))
}
