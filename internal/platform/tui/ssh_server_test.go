package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

func pressSession(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func sessionOptions() labyrinth.Options {
	return labyrinth.Options{Config: config.DefaultConfig()}
}

func currentGame(t *testing.T, m SessionModel) *labyrinth.Game {
	t.Helper()
	require.NotNil(t, m.gameModel)
	g, ok := m.gameModel.game.(*labyrinth.Game)
	require.True(t, ok)
	return g
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), sessionOptions())
	assert.Equal(t, viewMenu, m.view)

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	assert.Equal(t, labyrinth.ModeRace, currentGame(t, m).Session().Mode())
	assert.NotEmpty(t, m.View())

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.gameModel)
	assert.Contains(t, m.View(), "L A B Y R I N T H")
}

func TestSessionKeepsChosenTier(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), sessionOptions())

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyRight})
	m = pressSession(m, tea.KeyMsg{Type: tea.KeyRight})
	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	assert.Equal(t, 2, currentGame(t, m).Session().Tier())

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 2, m.menu.Tier())
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), sessionOptions())
	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressSession(m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestSessionReplaysFromHistory(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveRound(storage.Round{Mode: labyrinth.IDRace, Tier: "medium", Cols: 17, Rows: 11, Seed: 1234})
	require.NoError(t, err)

	m := NewSessionModel(store, testRuntime(), sessionOptions())
	m = pressSession(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewHistory, m.view)

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)

	s := currentGame(t, m).Session()
	assert.Equal(t, labyrinth.ModeStandard, s.Mode())
	assert.Equal(t, int64(1234), s.Seed())
	assert.Equal(t, 17, s.Grid().Cols())
	assert.Equal(t, 11, s.Grid().Rows())
}

func TestSessionHistoryBack(t *testing.T) {
	m := NewSessionModel(openStore(t), testRuntime(), sessionOptions())
	m = pressSession(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewHistory, m.view)

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionTracksResize(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), sessionOptions())
	m = pressSession(m, tea.WindowSizeMsg{Width: 132, Height: 43})
	assert.Equal(t, 132, m.config.ScreenW)
	assert.Equal(t, 43, m.config.ScreenH)
}
