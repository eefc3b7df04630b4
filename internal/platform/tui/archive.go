package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

// ArchiveRounds returns a round hook that stores every generated layout so
// it can be browsed and replayed later. A nil store yields a nil hook.
func ArchiveRounds(store *storage.Store, logger *log.Logger) func(labyrinth.RoundInfo) {
	if store == nil {
		return nil
	}
	return func(info labyrinth.RoundInfo) {
		id, err := store.SaveRound(storage.Round{
			Mode: labyrinth.IDForMode(info.Mode),
			Tier: info.TierName,
			Cols: info.Cols,
			Rows: info.Rows,
			Seed: info.Seed,
		})
		if err != nil {
			if logger != nil {
				logger.Warn("could not archive round", "error", err)
			}
			return
		}
		if logger != nil {
			logger.Debug("round archived", "id", id, "round", info.Round)
		}
	}
}

// ReplayLayout converts an archived round back into a playable layout.
// Unknown tier names fall back to the easiest tier.
func ReplayLayout(r storage.Round, tiers []string) labyrinth.Layout {
	tier := 0
	for i, name := range tiers {
		if name == r.Tier {
			tier = i
			break
		}
	}
	return labyrinth.Layout{Tier: tier, Cols: r.Cols, Rows: r.Rows, Seed: r.Seed}
}
