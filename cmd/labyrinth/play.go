package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/platform/tui"
	"github.com/vovakirdan/labyrinth/internal/registry"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [standard|race|infinite]",
	Short: "Play a maze",
	Long: `Start playing a maze in the given mode (standard by default).

Controls:
  Arrows/WASD/hjkl  - Move (hold to keep walking)
  Tab               - Show the way out
  P                 - Pause
  R                 - Restart with the same layout
  Esc               - Leave the game
  Q/Ctrl+C          - Quit
  ?                 - Toggle key help

Difficulty applies to standard mode. Race starts easy and gets harder
as you clear mazes; infinite picks a random difficulty for each maze.

Examples:
  labyrinth play
  labyrinth play race
  labyrinth play --difficulty hard
  labyrinth play --seed 42 --sprites ./arrows.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	mode, err := labyrinth.ParseMode(name)
	if err != nil {
		return err
	}
	tier, err := gameCfg.TierIndex(flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	configureGames(store, tier)

	game, err := registry.Create(labyrinth.IDForMode(mode))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if _, err := tui.Run(game, runtimeConfig()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

// openStore opens the round archive. Failure is a warning: the game still
// works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round archive", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// configureGames sets the defaults the registry factories build games with.
// The game logger stays silent while the TUI owns the terminal.
func configureGames(store *storage.Store, tier int) {
	labyrinth.SetConfig(gameCfg)
	labyrinth.SetDifficulty(tier)
	labyrinth.SetSprites(sprites)
	labyrinth.SetLogger(nil)
	labyrinth.SetRoundHook(tui.ArchiveRounds(store, nil))
}
