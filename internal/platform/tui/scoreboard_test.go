package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/storage"
)

func newLogbookStore(t *testing.T, runs ...storage.Run) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}
	return store
}

func boardKey(m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardShowsRunDetails(t *testing.T) {
	levels := config.DefaultSleighConfig().Levels
	last := len(levels) - 1
	store := newLogbookStore(t,
		storage.Run{GameID: "sleigh", Score: 300, Level: 1, Wishes: 3},
		storage.Run{GameID: "sleigh", Score: 900, Level: last, Wishes: 12, Won: true},
		storage.Run{GameID: "sleigh", Score: 500, Level: 0, Wishes: 6, Won: true},
	)

	m := NewScoreboardModel(store, levels, 100, 30)
	require.Equal(t, "sleigh", m.ModeID())

	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "900"}, []string(rows[0][:2]))
	assert.Contains(t, rows[0][2], levels[last].Name)
	assert.Equal(t, "12", rows[0][3])
	assert.Equal(t, "home", rows[0][4])
	assert.Equal(t, "delivered", rows[1][4])
	assert.Equal(t, "crashed", rows[2][4])

	stats := m.statsLine()
	assert.Contains(t, stats, "3 flights")
	assert.Contains(t, stats, "21 wishes")
	assert.Contains(t, stats, "2 deliveries")
	assert.Contains(t, stats, levels[last].Name)
}

func TestScoreboardSwitchesModes(t *testing.T) {
	levels := config.DefaultSleighConfig().Levels
	store := newLogbookStore(t,
		storage.Run{GameID: "sleigh", Score: 100},
		storage.Run{GameID: "sleigh_endless", Score: 4000, Level: 3, Wishes: 20},
		storage.Run{GameID: "sleigh_endless", Score: 2000, Level: 2, Wishes: 9},
	)
	m := NewScoreboardModel(store, levels, 100, 30)

	m = boardKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "sleigh_endless", m.ModeID())
	require.Len(t, m.table.Rows(), 2)
	assert.Equal(t, "4000", m.table.Rows()[0][1])

	m = boardKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "sleigh", m.ModeID(), "modes wrap around")

	m = boardKey(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "sleigh_endless", m.ModeID())
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, config.DefaultSleighConfig().Levels, 80, 24)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "LOGBOOK")
	assert.Contains(t, view, "No flights logged yet")
	assert.Empty(t, m.statsLine())

	m = boardKey(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestScoreboardResizeKeepsRows(t *testing.T) {
	store := newLogbookStore(t, storage.Run{GameID: "sleigh", Score: 10})
	m := NewScoreboardModel(store, config.DefaultSleighConfig().Levels, 80, 24)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(ScoreboardModel)
	assert.Len(t, m.table.Rows(), 1)
	assert.Equal(t, 140, m.width)
}

func TestSessionOpensLogbookFromMenu(t *testing.T) {
	levels := config.DefaultSleighConfig().Levels
	s := NewSessionModel(nil, nil, levels, testRuntimeConfig, quietLogger)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	require.NotNil(t, s.board)
	assert.Contains(t, ansi.Strip(s.View()), "LOGBOOK")

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	assert.Nil(t, s.board)
	assert.False(t, s.quitting)
	assert.Contains(t, ansi.Strip(s.View()), "Endless Flight")
}
