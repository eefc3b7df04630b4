// Package labyrinth implements the maze game: a session state machine with
// standard, race and infinite modes, player animation with a fading trail
// and a win celebration, and a key-repeat controller for held directions.
package labyrinth

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/labyrinth/internal/config"
)

// Options configures a Game.
type Options struct {
	Config     config.Config
	Difficulty int // standard-mode tier index
	Sprites    SpriteSet
	Logger     *log.Logger
	OnRound    func(RoundInfo)
	Layout     *Layout // replay a fixed layout instead of generating one
}

// Package-level defaults used by registry factories.
var (
	mu       sync.RWMutex
	defaults = Options{
		Config:  config.DefaultConfig(),
		Sprites: DefaultSprites,
	}
)

// SetConfig sets the configuration for new games.
func SetConfig(cfg config.Config) {
	mu.Lock()
	defer mu.Unlock()
	defaults.Config = cfg
}

// SetDifficulty sets the standard-mode tier for new games.
func SetDifficulty(tier int) {
	mu.Lock()
	defer mu.Unlock()
	defaults.Difficulty = tier
}

// GetDifficulty returns the currently selected tier.
func GetDifficulty() int {
	mu.RLock()
	defer mu.RUnlock()
	return defaults.Difficulty
}

// SetSprites sets the player glyphs for new games.
func SetSprites(s SpriteSet) {
	mu.Lock()
	defer mu.Unlock()
	defaults.Sprites = s
}

// SetLogger sets the logger for new games. Nil discards.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaults.Logger = l
}

// SetRoundHook sets the hook new games call for every generated round.
func SetRoundHook(fn func(RoundInfo)) {
	mu.Lock()
	defer mu.Unlock()
	defaults.OnRound = fn
}

// SetReplay makes the next created game replay l. It applies once.
func SetReplay(l Layout) {
	mu.Lock()
	defer mu.Unlock()
	defaults.Layout = &l
}

// takeDefaults returns a copy of the defaults and consumes a pending replay.
func takeDefaults() Options {
	mu.Lock()
	defer mu.Unlock()
	opts := defaults
	defaults.Layout = nil
	return opts
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
