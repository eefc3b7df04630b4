package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestArchiveRoundsNilStore(t *testing.T) {
	assert.Nil(t, ArchiveRounds(nil, nil))
}

func TestArchiveRoundsSavesLayout(t *testing.T) {
	store := openStore(t)
	hook := ArchiveRounds(store, nil)
	require.NotNil(t, hook)

	hook(labyrinth.RoundInfo{
		Mode:     labyrinth.ModeRace,
		Tier:     1,
		TierName: "medium",
		Cols:     17,
		Rows:     11,
		Seed:     99,
		Round:    3,
	})

	rounds, err := store.RecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, labyrinth.IDRace, rounds[0].Mode)
	assert.Equal(t, "medium", rounds[0].Tier)
	assert.Equal(t, 17, rounds[0].Cols)
	assert.Equal(t, 11, rounds[0].Rows)
	assert.Equal(t, int64(99), rounds[0].Seed)
	assert.NotEmpty(t, rounds[0].ID)
}

func TestReplayLayout(t *testing.T) {
	r := storage.Round{Tier: "hard", Cols: 25, Rows: 15, Seed: -4}
	assert.Equal(t, labyrinth.Layout{Tier: 2, Cols: 25, Rows: 15, Seed: -4}, ReplayLayout(r, testTiers))

	r.Tier = "custom"
	assert.Equal(t, 0, ReplayLayout(r, testTiers).Tier)
}
