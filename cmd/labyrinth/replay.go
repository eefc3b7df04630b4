package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/platform/tui"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <round-id>",
	Short: "Replay an archived round",
	Long: `Play an archived maze again in standard mode. The round ID comes from
'labyrinth history'; any unique prefix works.

Examples:
  labyrinth replay 3f2a9c1e
  labyrinth replay 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	round, err := store.RoundByID(args[0])
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("no archived round matches %q (see 'labyrinth history')", args[0])
	case errors.Is(err, storage.ErrAmbiguous):
		return fmt.Errorf("round id %q is ambiguous, use more characters", args[0])
	case err != nil:
		return err
	}

	layout := tui.ReplayLayout(*round, gameCfg.TierNames())
	logger.Debug("replaying round", "id", round.ID, "mode", round.Mode, "seed", round.Seed)

	opts := labyrinth.Options{
		Config:  gameCfg,
		Sprites: sprites,
		Layout:  &layout,
	}
	game := labyrinth.NewWithOptions(labyrinth.ModeStandard, opts)

	if _, err := tui.Run(game, runtimeConfig()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
