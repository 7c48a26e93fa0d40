package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/registry"
	"github.com/vovakirdan/sleighride/internal/storage"
)

const (
	maxScores = 50

	// Rows taken by the title, mode tabs, borders, stats and help.
	scoreboardChrome = 10
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("54"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("153"))
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "switch mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "previous mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists finished flights per mode: score, the level each
// run ended on, wishes collected and whether the delivery was made.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	levels    []config.LevelConfig
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first registered mode. levels names the
// level column; a run past the table is shown by number.
func NewScoreboardModel(store *storage.Store, levels []config.LevelConfig, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		levels: levels,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	// Fixed columns plus one cell of padding on each side of all six.
	inner := max(m.width-4, 40)
	level := max(inner-(4+8+7+10+12)-6*2, 8)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: level},
			{Title: "Wishes", Width: 7},
			{Title: "Result", Width: 10},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("60")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("54"))
	t.SetStyles(s)
	return t
}

// ModeID returns the game ID whose runs are listed.
func (m ScoreboardModel) ModeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && m.ModeID() != "" {
		if scores, err := m.store.TopScores(m.ModeID(), maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.ModeID()); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			m.levelName(s.Level),
			fmt.Sprintf("%d", s.Wishes),
			m.result(s.Run),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) levelName(level int) string {
	if level >= 0 && level < len(m.levels) {
		return fmt.Sprintf("%d %s", level+1, m.levels[level].Name)
	}
	return fmt.Sprintf("%d", level+1)
}

func (m ScoreboardModel) result(r storage.Run) string {
	switch {
	case r.Won && r.Level == len(m.levels)-1:
		return "home"
	case r.Won:
		return "delivered"
	default:
		return "crashed"
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.load()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("LOGBOOK"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveTab.Render(mode.Title)
		} else {
			tabs[i] = boardTabStyle.Render(mode.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	body := boardEmptyStyle.Render("No flights logged yet.\nDeliver some letters to make the board!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(boardFrameStyle.Render(body))
	b.WriteString("\n")
	if stats := m.statsLine(); stats != "" {
		b.WriteString(boardStatsStyle.Render(stats))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarizes every recorded run of the mode, not just the listed ones.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d flights  best %d  avg %.0f  furthest level %s  %d wishes  %d deliveries",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.levelName(m.stats.BestLevel), m.stats.TotalWishes, m.stats.Wins)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the logbook. goBack reports a return to the menu.
func RunScoreboard(store *storage.Store, levels []config.LevelConfig, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, levels, width, height), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
