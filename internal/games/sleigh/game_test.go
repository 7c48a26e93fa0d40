package sleigh

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sleighride/internal/core"
	"github.com/vovakirdan/sleighride/internal/registry"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) tick() { c.t = c.t.Add(time.Second / 60) }

type fakeProgress struct {
	introSeen bool
	marked    int
	wins      []int
	reached   []int
}

func (p *fakeProgress) IntroSeen() bool { return p.introSeen }

func (p *fakeProgress) MarkIntroSeen() {
	p.introSeen = true
	p.marked++
}

func (p *fakeProgress) RecordWin(level int, story bool) {
	p.wins = append(p.wins, level)
}

func (p *fakeProgress) ReachLevel(level int) {
	p.reached = append(p.reached, level)
}

var testRuntime = core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 42}

func newTestGame(t *testing.T, g *Game) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(0, 0)}
	g.SetClock(clock.now)
	g.Reset(testRuntime)
	return g, clock
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// step advances the fake clock one frame and steps the game.
func step(g *Game, c *fakeClock, actions ...core.Action) core.StepResult {
	c.tick()
	return g.Step(input(actions...))
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"sleigh", "sleigh_endless"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestIntroEndsOnTimeout(t *testing.T) {
	g, clock := newTestGame(t, New())
	require.Equal(t, StateIntro, g.Phase())

	for i := 0; i < 60*3 && g.Phase() == StateIntro; i++ {
		step(g, clock)
	}
	assert.Equal(t, StatePlaying, g.Phase())
	assert.Zero(t, g.Session().Distance(), "the intro does not move the world")
}

func TestFirstRunIntroIsLongerAndSkippable(t *testing.T) {
	progress := &fakeProgress{}
	g := New()
	g.SetProgress(progress)
	g, clock := newTestGame(t, g)

	for i := 0; i < 60*3; i++ {
		step(g, clock)
	}
	require.Equal(t, StateIntro, g.Phase())

	step(g, clock, core.ActionSkip)
	assert.Equal(t, StatePlaying, g.Phase())
	assert.Equal(t, 1, progress.marked)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, clock := newTestGame(t, NewEndless())
	step(g, clock, core.ActionConfirm)
	for i := 0; i < 10; i++ {
		step(g, clock)
	}
	require.Positive(t, g.Session().Distance())

	res := step(g, clock, core.ActionPause)
	assert.True(t, res.State.Paused)
	frozen := g.Session().Distance()
	for i := 0; i < 30; i++ {
		step(g, clock, core.ActionJump)
	}
	assert.Equal(t, frozen, g.Session().Distance())
	assert.Equal(t, 200.0, g.Session().Player.Stamina)

	step(g, clock, core.ActionPause)
	step(g, clock)
	step(g, clock)
	assert.Greater(t, g.Session().Distance(), frozen)
}

func TestGameOverAndRestart(t *testing.T) {
	g, clock := newTestGame(t, New())
	step(g, clock, core.ActionConfirm)
	step(g, clock)

	g.Session().Player.Lives = 0
	res := step(g, clock)
	assert.Equal(t, StateGameOver, g.Phase())
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)

	step(g, clock, core.ActionRestart)
	assert.Equal(t, StateIntro, g.Phase())
	assert.Equal(t, 3, g.Session().Player.Lives)
}

func TestLevelCompleteAdvances(t *testing.T) {
	progress := &fakeProgress{introSeen: true}
	g := New()
	g.SetProgress(progress)
	g.SetStartLevel(1)
	g, clock := newTestGame(t, g)
	step(g, clock, core.ActionConfirm)
	step(g, clock)

	s := g.Session()
	s.distance = s.cfg.World.VictoryDistance * 0.995
	for i := 0; i < 60*15 && g.Phase() == StatePlaying; i++ {
		step(g, clock)
	}
	require.Equal(t, StateLevelComplete, g.Phase())
	assert.True(t, g.State().Won)
	assert.Equal(t, []int{1}, progress.wins)

	step(g, clock, core.ActionConfirm)
	assert.Equal(t, StateIntro, g.Phase())
	assert.Equal(t, 2, g.Session().Level())
}

func TestStartLevelIsClamped(t *testing.T) {
	g := New()
	g.SetStartLevel(99)
	g, _ = newTestGame(t, g)
	assert.Equal(t, g.cfg.LastLevel(), g.Session().Level())
}

func TestSeedsDifferPerRun(t *testing.T) {
	g, clock := newTestGame(t, NewEndless())
	first := g.Session().Snapshot()
	g.Session().Player.Lives = 0
	step(g, clock, core.ActionConfirm)
	step(g, clock)
	step(g, clock, core.ActionRestart)
	second := g.Session().Snapshot()
	assert.NotEqual(t, first.Terrain, second.Terrain)
}

func TestMeters(t *testing.T) {
	g, _ := newTestGame(t, New())
	meters := g.Meters()
	require.Len(t, meters, 3)
	assert.Equal(t, "Stamina", meters[0].Label)
	assert.Equal(t, 1.0, meters[0].Fraction())
	assert.Equal(t, 1.0, meters[1].Fraction())
	assert.Zero(t, meters[2].Fraction())

	var _ core.MeterSource = g
}

func TestRenderStates(t *testing.T) {
	g, clock := newTestGame(t, New())
	screen := core.NewScreen(100, 30)

	g.Render(screen)
	assert.Contains(t, screen.String(), g.cfg.Levels[0].Name)

	step(g, clock, core.ActionConfirm)
	for i := 0; i < 30; i++ {
		step(g, clock)
	}
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score")

	step(g, clock, core.ActionPause)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	step(g, clock, core.ActionPause)
	g.Session().Player.Lives = 0
	step(g, clock)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, New())
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))
}

func TestRenderCityLevel(t *testing.T) {
	g := New()
	g.SetStartLevel(1)
	g, clock := newTestGame(t, g)
	step(g, clock, core.ActionConfirm)
	for i := 0; i < 120; i++ {
		step(g, clock, core.ActionShoot)
	}
	screen := core.NewScreen(120, 40)
	assert.NotPanics(t, func() { g.Render(screen) })
}

func TestResetUsesConfiguredFrameClamp(t *testing.T) {
	g, clock := newTestGame(t, NewEndless())
	require.NotNil(t, g.driver)
	assert.Equal(t, g.cfg.Frame.MaxDelta, g.driver.maxDelta)

	step(g, clock, core.ActionConfirm)
	step(g, clock)
	before := g.Session().Distance()
	step(g, clock)
	frame := g.Session().Distance() - before
	require.Positive(t, frame)

	before = g.Session().Distance()
	clock.t = clock.t.Add(5 * time.Second)
	g.Step(input())
	moved := g.Session().Distance() - before
	framesPerClamp := g.cfg.Frame.MaxDelta * g.cfg.Frame.LogicalRate
	assert.Greater(t, moved, frame)
	assert.Less(t, moved, frame*framesPerClamp*1.5)
}

func TestRunSummary(t *testing.T) {
	g := New()
	g.SetStartLevel(2)
	g, _ = newTestGame(t, g)
	g.Session().wishes = 4

	var src core.RunSource = g
	assert.Equal(t, core.RunSummary{Level: 2, Wishes: 4}, src.RunSummary())
}
