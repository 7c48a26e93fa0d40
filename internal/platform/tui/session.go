package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sleighride/internal/audio"
	"github.com/vovakirdan/sleighride/internal/games/sleigh"
	"github.com/vovakirdan/sleighride/internal/progress"
	"github.com/vovakirdan/sleighride/internal/registry"
)

// trackerProgress adapts a progress.Tracker to the game. Write failures
// are logged and play continues.
type trackerProgress struct {
	tracker *progress.Tracker
	logger  *log.Logger
}

// NewProgress wraps tracker for use by a sleigh game.
func NewProgress(tracker *progress.Tracker, logger *log.Logger) sleigh.Progress {
	return &trackerProgress{tracker: tracker, logger: logger}
}

func (p *trackerProgress) IntroSeen() bool {
	return p.tracker.State().IntroSeen
}

func (p *trackerProgress) MarkIntroSeen() {
	if err := p.tracker.MarkIntroSeen(); err != nil {
		p.logger.Warn("Failed to save intro flag", "err", err)
	}
}

func (p *trackerProgress) RecordWin(level int, story bool) {
	if err := p.tracker.RecordWin(level, story); err != nil {
		p.logger.Warn("Failed to save level win", "level", level, "err", err)
		return
	}
	p.logger.Info("Level complete", "level", level, "story", story, "unlocked", p.tracker.State().MaxLevel)
}

func (p *trackerProgress) ReachLevel(level int) {
	if err := p.tracker.ReachLevel(level); err != nil {
		p.logger.Warn("Failed to save level reached", "level", level, "err", err)
	}
}

// GameDeps are the services a game session is wired to.
type GameDeps struct {
	Tracker *progress.Tracker
	Audio   audio.Sink
	Logger  *log.Logger
}

// NewGame creates the registered game id and, for sleigh modes, connects
// level selection, audio and progress.
func NewGame(id string, level int, deps GameDeps) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	sg, ok := game.(*sleigh.Game)
	if !ok {
		return game, nil
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	sg.SetStartLevel(level)
	if deps.Audio != nil {
		sg.SetAudio(deps.Audio)
	}
	if deps.Tracker != nil {
		sg.SetProgress(NewProgress(deps.Tracker, logger))
	}
	sg.OnMission(func(m sleigh.Mission) {
		logger.Info("Mission complete", "objective", m.Objective)
	})
	return sg, nil
}

// OpenAudio starts the speaker-backed sink, falling back to silence when
// no audio device is available.
func OpenAudio(logger *log.Logger) audio.Sink {
	sink := audio.NewBeepSink(logger)
	if err := sink.Init(); err != nil {
		logger.Warn("Audio disabled", "err", err)
		return audio.NullSink{}
	}
	return sink
}
