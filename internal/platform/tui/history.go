package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

const maxHistory = 200

// historyFilter is one tab of the history browser.
type historyFilter struct {
	Mode  string // registry ID, empty for all
	Label string
}

var historyFilters = []historyFilter{
	{Mode: "", Label: "All"},
	{Mode: labyrinth.IDStandard, Label: "Standard"},
	{Mode: labyrinth.IDRace, Label: "Race"},
	{Mode: labyrinth.IDInfinite, Label: "Infinite"},
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Replay key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Replay, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Replay, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next mode"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev mode"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses archived rounds and picks one to replay.
type HistoryModel struct {
	store     *storage.Store
	filter    int
	rounds    []storage.Round
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	selected  *storage.Round
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Mode", Width: 14},
		{Title: "Tier", Width: 8},
		{Title: "Size", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *HistoryModel) load() {
	m.rounds, m.loadErr = nil, nil
	if m.store != nil {
		m.rounds, m.loadErr = m.store.RecentRoundsForMode(historyFilters[m.filter].Mode, maxHistory)
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			shortID(r.ID),
			r.Mode,
			r.Tier,
			fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shortID returns the first eight characters of a round ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.filter = (m.filter + 1) % len(historyFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.filter = (m.filter + len(historyFilters) - 1) % len(historyFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			if i := m.table.Cursor(); i >= 0 && i < len(m.rounds) {
				r := m.rounds[i]
				m.selected = &r
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTab := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(historyFilters))
	for i, f := range historyFilters {
		if i == m.filter {
			tabs[i] = activeTab.Render(f.Label)
		} else {
			tabs[i] = tabStyle.Render(f.Label)
		}
	}

	var body string
	switch {
	case m.store == nil:
		body = "Round history is unavailable (no database)."
	case m.loadErr != nil:
		body = "Could not load rounds: " + m.loadErr.Error()
	case len(m.rounds) == 0:
		body = "No rounds archived yet.\nPlay a maze to start the history!"
	default:
		body = m.table.View()
	}
	if m.store == nil || m.loadErr != nil || len(m.rounds) == 0 {
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4).Render(body)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		centerText(titleStyle.Render("ROUND HISTORY"), m.width),
		"",
		centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width),
		"",
		box,
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)),
	)
}

// Selected returns the round picked for replay, or nil.
func (m HistoryModel) Selected() *storage.Round {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history browser. It returns the round chosen for
// replay (nil if none) and whether the user wants to go back to the menu.
func RunHistory(store *storage.Store, width, height int) (*storage.Round, bool, error) {
	p := tea.NewProgram(NewHistoryModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := finalModel.(HistoryModel)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.IsGoingBack() || m.Selected() != nil, nil
}
