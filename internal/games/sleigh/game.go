// Package sleigh implements Sleigh Ride, a side-scrolling sleigh runner.
// The player keeps the sleigh aloft over procedural terrain, dodges obstacles
// and collects wish letters on the way to the last house of the night.
package sleigh

import (
	"time"

	"github.com/vovakirdan/sleighride/internal/audio"
	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
	"github.com/vovakirdan/sleighride/internal/registry"
)

// Outer game states
const (
	StateIntro         = "intro"
	StatePlaying       = "playing"
	StateGameOver      = "gameover"
	StateLevelComplete = "level_complete"
	StateVictory       = "victory"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig returns the configuration a new run will use: the file set
// by SetConfigPath (or the default search path) with the difficulty preset
// applied. Load errors fall back to the built-in defaults.
func LoadConfig() config.SleighConfig {
	cfg, err := config.LoadSleigh(configPath)
	if err != nil {
		cfg = config.DefaultSleighConfig()
	}
	if difficultyPreset != "" {
		config.ApplySleighPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Progress is the meta-progress the game reads at the start of a run and
// updates on wins. Implementations handle their own persistence errors.
type Progress interface {
	IntroSeen() bool
	MarkIntroSeen()
	RecordWin(level int, story bool)
	ReachLevel(level int)
}

type noProgress struct{}

func (noProgress) IntroSeen() bool     { return true }
func (noProgress) MarkIntroSeen()      {}
func (noProgress) RecordWin(int, bool) {}
func (noProgress) ReachLevel(int)      {}

// Game adapts a Session to the platform: intro, pause, restart and the
// screens after a run ends.
type Game struct {
	mode       Mode
	startLevel int

	runtime  core.RuntimeConfig
	cfg      config.SleighConfig
	session  *Session
	driver   *FrameDriver
	now      func() time.Time
	sink     audio.Sink
	progress Progress

	state     string
	introLeft float64
	runs      int64
	onMission func(Mission)
}

// New creates a story mode game.
func New() *Game {
	return &Game{mode: ModeStory, now: time.Now, sink: audio.NullSink{}, progress: noProgress{}}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	g := New()
	g.mode = ModeEndless
	return g
}

func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "sleigh_endless"
	}
	return "sleigh"
}

func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Sleigh Ride (Endless)"
	}
	return "Sleigh Ride: Story"
}

// SetStartLevel selects the story level for the next Reset.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// SetAudio routes sound events to sink.
func (g *Game) SetAudio(sink audio.Sink) {
	if sink == nil {
		sink = audio.NullSink{}
	}
	g.sink = sink
}

// SetProgress connects meta-progress.
func (g *Game) SetProgress(p Progress) {
	if p == nil {
		p = noProgress{}
	}
	g.progress = p
}

// SetClock replaces the wall clock, for tests.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// OnMission registers a callback for completed level missions.
func (g *Game) OnMission(fn func(Mission)) {
	g.onMission = fn
}

// Reset loads config and starts a new run at the intro.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runs = 0

	g.cfg = LoadConfig()
	g.driver = NewFrameDriver(g.cfg.Frame.MaxDelta)
	g.begin(g.startLevel)
}

// begin starts a fresh session on level.
func (g *Game) begin(level int) {
	if g.session != nil {
		g.session.Stop()
	}
	g.startLevel = core.Clamp(level, 0, g.cfg.LastLevel())
	g.session = NewSession(&g.cfg, Options{
		Mode:  g.mode,
		Level: g.startLevel,
		Seed:  g.runtime.Seed + g.runs,
		Audio: g.sink,
	})
	g.runs++
	g.session.SetHooks(Hooks{
		OnWin: func(o Outcome) {
			g.progress.RecordWin(o.Level, o.Mode == ModeStory)
		},
		OnLevel:   g.progress.ReachLevel,
		OnMission: g.onMission,
	})
	g.driver.Reset()
	g.state = StateIntro
	g.introLeft = g.cfg.Frame.Intro
	if !g.progress.IntroSeen() {
		g.introLeft = g.cfg.Frame.IntroFirstRun
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Phase returns the outer state name.
func (g *Game) Phase() string {
	return g.state
}

// Step advances the game by the wall-clock time since the last call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.driver.Advance(g.now())

	switch g.state {
	case StateIntro:
		g.session.IntroTick(dt)
		g.introLeft -= dt
		if g.introLeft <= 0 || in.Has(core.ActionSkip) || in.Has(core.ActionConfirm) {
			if !g.progress.IntroSeen() {
				g.progress.MarkIntroSeen()
			}
			g.state = StatePlaying
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			if g.driver.Frozen() {
				g.driver.Unfreeze()
			} else {
				g.driver.Freeze()
			}
		}
		if g.driver.Frozen() {
			break
		}
		if in.Has(core.ActionJump) {
			g.session.Jump()
		}
		if in.Has(core.ActionShoot) {
			g.session.Shoot()
		}
		g.session.Tick(dt)
		g.checkEnd()

	case StateGameOver, StateVictory:
		if in.Has(core.ActionRestart) {
			g.begin(g.startLevel)
		}

	case StateLevelComplete:
		if in.Has(core.ActionConfirm) {
			g.begin(g.startLevel + 1)
		} else if in.Has(core.ActionRestart) {
			g.begin(g.startLevel)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) checkEnd() {
	s := g.session
	switch {
	case s.Lost():
		g.state = StateGameOver
	case s.Finished() && s.Seq.Phase == PhaseVictory:
		g.state = StateVictory
	case s.Finished():
		g.state = StateLevelComplete
	default:
		return
	}
	s.Stop()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	ended := g.state == StateGameOver || g.state == StateLevelComplete || g.state == StateVictory
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: ended,
		Won:      g.state == StateLevelComplete || g.state == StateVictory,
		Paused:   g.driver.Frozen(),
	}
}

// Meters exposes stamina, stability and progress for the status bar.
func (g *Game) Meters() []core.Meter {
	hud := g.session.HUD()
	stamina := core.ColorBrightCyan
	if hud.Exhausted {
		stamina = core.ColorRed
	}
	return []core.Meter{
		{Label: "Stamina", Value: hud.Stamina, Max: hud.MaxStamina, Color: stamina},
		{Label: "Stability", Value: hud.Stability, Max: g.cfg.Stability.Max, Color: core.ColorGold},
		{Label: "Route", Value: hud.Progress, Max: 100, Color: core.ColorGreen},
	}
}

// RunSummary reports the level and wishes of the current run.
func (g *Game) RunSummary() core.RunSummary {
	return core.RunSummary{Level: g.session.Level(), Wishes: g.session.Wishes()}
}

// Close silences audio when the platform leaves the game.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Stop()
	}
}

func init() {
	registry.Register("sleigh", func() registry.Game {
		return New()
	})
	registry.Register("sleigh_endless", func() registry.Game {
		return NewEndless()
	})
}
