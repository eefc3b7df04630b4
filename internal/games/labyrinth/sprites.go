package labyrinth

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/labyrinth/internal/maze"
)

// FallbackGlyph marks the player when no sprite is available.
const FallbackGlyph = '@'

// SpriteSet holds the player glyph for each facing.
type SpriteSet struct {
	Idle  rune
	Up    rune
	Down  rune
	Left  rune
	Right rune
}

// DefaultSprites uses the fallback glyph for every facing.
var DefaultSprites = SpriteSet{
	Idle:  FallbackGlyph,
	Up:    FallbackGlyph,
	Down:  FallbackGlyph,
	Left:  FallbackGlyph,
	Right: FallbackGlyph,
}

type spriteFile struct {
	Idle  string `yaml:"idle"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ParseSprites reads a sprite YAML document. Facings left empty use the idle
// glyph, and an empty idle uses the fallback.
func ParseSprites(data []byte) (SpriteSet, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return DefaultSprites, fmt.Errorf("labyrinth: invalid sprite file: %w", err)
	}

	idle := firstRune(f.Idle, FallbackGlyph)
	return SpriteSet{
		Idle:  idle,
		Up:    firstRune(f.Up, idle),
		Down:  firstRune(f.Down, idle),
		Left:  firstRune(f.Left, idle),
		Right: firstRune(f.Right, idle),
	}, nil
}

// LoadSprites reads the sprite file at path. An empty path selects the
// defaults; a missing or invalid file is logged and also yields the defaults.
func LoadSprites(path string, logger *log.Logger) SpriteSet {
	if path == "" {
		return DefaultSprites
	}
	data, err := os.ReadFile(path)
	if err == nil {
		var set SpriteSet
		set, err = ParseSprites(data)
		if err == nil {
			return set
		}
	}
	if logger != nil {
		logger.Warn("sprites unavailable, using fallback glyph", "path", path, "err", err)
	}
	return DefaultSprites
}

// For returns the glyph facing d. NoDirection gives the idle glyph.
func (s SpriteSet) For(d maze.Direction) rune {
	var r rune
	switch d {
	case maze.Top:
		r = s.Up
	case maze.Right:
		r = s.Right
	case maze.Bottom:
		r = s.Down
	case maze.Left:
		r = s.Left
	default:
		r = s.Idle
	}
	if r == 0 {
		return FallbackGlyph
	}
	return r
}

func firstRune(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}
