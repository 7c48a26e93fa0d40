package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sleighride/internal/core"
	"github.com/vovakirdan/sleighride/internal/storage"
)

// stubGame reports whatever state the test sets and records its input.
type stubGame struct {
	state   core.GameState
	summary core.RunSummary
	last    core.InputFrame
	resets  int
	closed  bool
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState       { return g.state }
func (g *stubGame) Close()                      { g.closed = true }
func (g *stubGame) Meters() []core.Meter        { return []core.Meter{{Label: "Fuel", Value: 1, Max: 2}} }
func (g *stubGame) RunSummary() core.RunSummary { return g.summary }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = core.NewInputFrame()
	for a := range in.Actions {
		g.last.Set(a)
	}
	return core.StepResult{State: g.state}
}

var quietLogger = log.New(io.Discard)

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1}, quietLogger)
	m.Init()
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelReservesStatusRows(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 18, m.screen.Height())

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 38, m.screen.Height())
	assert.Equal(t, 1, g.resets, "resizing keeps the run")
}

func TestModelForwardsActionsOnTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(m, runes("z"))
	m, cmd := update(m, TickMsg{})
	assert.NotNil(t, cmd, "tick loop continues")
	assert.True(t, g.last.Has(core.ActionShoot))

	update(m, TickMsg{})
	assert.False(t, g.last.Has(core.ActionShoot), "input is cleared after a tick")
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.BackToMenu(), "running game ignores back")

	g.state.Paused = true
	m, _ = update(m, TickMsg{})
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelSavesScoreOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(t, g, store)

	g.state = core.GameState{Score: 420, GameOver: true}
	m, _ = update(m, TickMsg{})
	m, _ = update(m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 420, scores[0].Score)

	// Restarted run ends again.
	g.state = core.GameState{}
	m, _ = update(m, TickMsg{})
	g.state = core.GameState{Score: 10, GameOver: true}
	update(m, TickMsg{})

	scores, err = store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestModelSavesRunDetails(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{summary: core.RunSummary{Level: 3, Wishes: 8}}
	m := newTestModel(t, g, store)
	g.state = core.GameState{Score: 640, GameOver: true, Won: true}
	update(m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, storage.Run{GameID: "stub", Score: 640, Level: 3, Wishes: 8, Won: true}, scores[0].Run)
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{state: core.GameState{GameOver: true}}
	m := newTestModel(t, g, store)
	update(m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelViewShowsMetersAndHelp(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)
	view := m.View()
	assert.Contains(t, view, "stub")
	assert.Contains(t, view, "Fuel")
	assert.Contains(t, view, "snowball")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)
	m, cmd := update(m, runes("q"))
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}
