package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
	"github.com/vovakirdan/sleighride/internal/progress"
)

func newTestMenu(t *testing.T, maxLevel int) MenuModel {
	t.Helper()
	levels := config.DefaultSleighConfig().Levels
	tracker := progress.NewTracker(progress.NewMemoryKV(), len(levels)-1)
	_, err := tracker.Load()
	require.NoError(t, err)
	for l := 0; l < maxLevel; l++ {
		require.NoError(t, tracker.RecordWin(l, true))
	}
	return NewMenuModel(nil, tracker, levels, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func press(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuLocksLevels(t *testing.T) {
	m := newTestMenu(t, 1)
	require.Len(t, m.items, 5+3)
	assert.False(t, m.items[0].Locked)
	assert.False(t, m.items[1].Locked)
	assert.True(t, m.items[2].Locked)
	assert.Equal(t, 1, m.cursor, "starts on the furthest unlocked level")
	assert.Contains(t, m.View(), "(locked)")
}

func TestMenuSelectsUnlockedLevel(t *testing.T) {
	m := newTestMenu(t, 1)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	assert.False(t, res.Quit)
	assert.Equal(t, "sleigh", res.GameID)
	assert.Equal(t, 1, res.Level)
}

func TestMenuIgnoresLockedLevel(t *testing.T) {
	m := newTestMenu(t, 0)
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.Selected())
	assert.True(t, m.Result().Quit, "no selection yet")
}

func TestMenuEndlessAndScores(t *testing.T) {
	m := newTestMenu(t, 0)
	for m.items[m.cursor].Kind != ItemEndless {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	endless := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "sleigh_endless", endless.Result().GameID)

	scores := press(press(m, tea.KeyMsg{Type: tea.KeyDown}), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, scores.Result().WantsScoreboard)

	tab := press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, tab.WantsScoreboard())
}

func TestMenuQuit(t *testing.T) {
	m := newTestMenu(t, 0)
	m = press(m, runes("q"))
	assert.True(t, m.IsQuitting())
	assert.True(t, m.Result().Quit)
	assert.Empty(t, m.View())
}

func TestMenuWithoutTrackerUnlocksAll(t *testing.T) {
	levels := config.DefaultSleighConfig().Levels
	m := NewMenuModel(nil, nil, levels, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for _, it := range m.items {
		assert.False(t, it.Locked, it.Title)
	}
}
