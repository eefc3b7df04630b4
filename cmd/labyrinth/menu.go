package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/platform/tui"
	"github.com/vovakirdan/labyrinth/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start labyrinth in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty and
Enter to play. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k     - Pick mode
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Round history (replay an archived maze)
  Q               - Quit

Examples:
  labyrinth menu
  labyrinth menu --fps 30
  labyrinth menu --db ./labyrinth.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	tiers := gameCfg.TierNames()
	tier := 0

	for {
		menuResult, err := tui.RunMenu(cfg, tiers, tier, store != nil)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		tier = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		gameID := menuResult.GameID
		if menuResult.WantsHistory {
			round, goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if round == nil {
				if goBack {
					continue
				}
				return nil
			}
			labyrinth.SetReplay(tui.ReplayLayout(*round, tiers))
			gameID = labyrinth.IDStandard
		}

		configureGames(store, tier)
		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("cannot create game: %w", err)
		}

		// Fresh mazes for each game unless a seed was given.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, cfg)
		if err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
