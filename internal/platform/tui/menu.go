package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/registry"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	UsesTier    bool // difficulty applies to this mode
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuItems lists the registered labyrinth modes in play order.
func menuItems() []MenuItem {
	descriptions := map[string]string{
		labyrinth.IDStandard: "Find the exit at your own pace",
		labyrinth.IDRace:     "Clear as many mazes as you can before time runs out",
		labyrinth.IDInfinite: "Endless mazes of random size",
	}

	var items []MenuItem
	for _, id := range []string{labyrinth.IDStandard, labyrinth.IDRace, labyrinth.IDInfinite} {
		if !registry.Exists(id) {
			continue
		}
		title := id
		for _, info := range registry.List() {
			if info.ID == id {
				title = info.Title
			}
		}
		items = append(items, MenuItem{
			GameID:      id,
			Title:       title,
			Description: descriptions[id],
			UsesTier:    id == labyrinth.IDStandard,
		})
	}
	return items
}

// MenuModel is the Bubble Tea model for the mode and difficulty picker.
type MenuModel struct {
	items        []MenuItem
	tiers        []string
	cursor       int
	tier         int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	selected     *MenuItem
	openHistory  bool
	historyShown bool // history browser is available
}

// NewMenuModel creates a new menu model. tiers lists the difficulty names,
// easiest first; tier is the initially selected one.
func NewMenuModel(cfg core.RuntimeConfig, tiers []string, tier int, withHistory bool) MenuModel {
	if tier < 0 || tier >= len(tiers) {
		tier = 0
	}
	return MenuModel{
		items:        menuItems(),
		tiers:        tiers,
		tier:         tier,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
		historyShown: withHistory,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if len(m.tiers) > 0 {
			m.tier = (m.tier + len(m.tiers) - 1) % len(m.tiers)
		}

	case MenuActionRight:
		if len(m.tiers) > 0 {
			m.tier = (m.tier + 1) % len(m.tiers)
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionHistory:
		if m.historyShown {
			m.openHistory = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L A B Y R I N T H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuActive.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.items) > 0 {
		item := m.items[m.cursor]
		b.WriteString(centerText(menuDim.Render(item.Description), m.width))
		b.WriteString("\n")
		if item.UsesTier && len(m.tiers) > 0 {
			b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.tiers[m.tier]), m.width))
		} else {
			b.WriteString(centerText(menuDim.Render("Difficulty: set by the mode"), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play"
	if m.historyShown {
		controls += "  |  Tab: History"
	}
	controls += "  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Tier returns the selected difficulty index.
func (m MenuModel) Tier() int {
	return m.tier
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the round history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Difficulty   int
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, tiers []string, tier int, withHistory bool) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, tiers, tier, withHistory), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), Difficulty: m.Tier()}
	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
