package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
	"github.com/vovakirdan/sleighride/internal/progress"
	"github.com/vovakirdan/sleighride/internal/storage"
)

// MenuItemKind says what selecting an item does.
type MenuItemKind int

const (
	ItemStory MenuItemKind = iota
	ItemEndless
	ItemScores
	ItemQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string
	Level  int
	Title  string
	Locked bool
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	tracker        *progress.Tracker
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab or picked Scores
}

// NewMenuModel creates a new menu model. A nil tracker unlocks every level.
func NewMenuModel(store *storage.Store, tracker *progress.Tracker, levels []config.LevelConfig, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(levels)+3)
	for i, l := range levels {
		items = append(items, MenuItem{
			Kind:   ItemStory,
			GameID: "sleigh",
			Level:  i,
			Title:  fmt.Sprintf("Level %d: %s", i+1, l.Name),
			Locked: tracker != nil && !tracker.Unlocked(i),
		})
	}
	items = append(items,
		MenuItem{Kind: ItemEndless, GameID: "sleigh_endless", Title: "Endless Flight"},
		MenuItem{Kind: ItemScores, Title: "High Scores"},
		MenuItem{Kind: ItemQuit, Title: "Quit"},
	)

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		tracker:   tracker,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	// Start on the furthest unlocked level.
	for i, it := range items {
		if it.Kind == ItemStory && !it.Locked {
			m.cursor = i
		}
	}
	return m
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
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

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Kind {
		case ItemQuit:
			m.quitting = true
			return m, tea.Quit
		case ItemScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
		if item.Locked {
			return m, nil
		}
		m.selected = &item
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
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
	b.WriteString(centerText(menuTitleStyle.Render("* S L E I G H   R I D E *"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.subtitle(), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.Locked {
			line += " (locked)"
		}
		if best := m.best(item); best > 0 {
			line += fmt.Sprintf("  best %d", best)
		}
		switch {
		case i == m.cursor:
			line = menuCursorStyle.Render("> " + line)
		case item.Locked:
			line = menuLockedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) subtitle() string {
	if m.tracker != nil && m.tracker.State().StoryComplete {
		return "Every letter delivered. Fly again?"
	}
	return "Choose your route"
}

// best returns the high score shown next to mode entries.
func (m MenuModel) best(item MenuItem) int {
	if m.store == nil || item.Kind != ItemEndless {
		return 0
	}
	score, err := m.store.HighScore(item.GameID)
	if err != nil {
		return 0
	}
	return score
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Level = m.Selected().Level
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, tracker *progress.Tracker, levels []config.LevelConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, tracker, levels, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
