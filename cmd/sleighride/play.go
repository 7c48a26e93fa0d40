package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleighride/internal/games/sleigh"
	"github.com/vovakirdan/sleighride/internal/platform/tui"
)

var (
	flagMode  string
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a story level or endless mode",
	Long: `Start flying straight away.

Story mode plays one level at a time; finishing a level unlocks the next.
Endless mode keeps going, with the level following the distance flown.

Controls:
  Space/Up/W  - Fly up (costs stamina)
  Z/X         - Throw a snowball
  P           - Pause
  Tab/Enter   - Skip the intro
  Enter       - Next level (after a level is complete)
  R           - Restart (after the run ends)
  Esc/B       - Back (when paused or after the run ends)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower stability drain, fewer obstacles
  normal - Default tuning
  hard   - Faster drain, more obstacles, one life less

Examples:
  sleighride play
  sleighride play --level 3
  sleighride play --mode endless
  sleighride play --difficulty hard
  sleighride play --config ./my-sleigh.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "story", "Game mode: story or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Story level to start on (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID, err := modeID(flagMode)
	if err != nil {
		return err
	}

	cfg := sleigh.LoadConfig()
	level := flagLevel - 1
	if level < 0 || level > cfg.LastLevel() {
		return fmt.Errorf("level must be between 1 and %d", cfg.LastLevel()+1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	tracker := openTracker(store, cfg)
	if gameID == "sleigh" && !tracker.Unlocked(level) {
		return fmt.Errorf("level %d is locked; finish level %d first", level+1, tracker.State().MaxLevel+1)
	}

	restore := logToFile()
	defer restore()

	sink := tui.OpenAudio(logger)
	defer sink.StopAll()

	game, err := tui.NewGame(gameID, level, tui.GameDeps{Tracker: tracker, Audio: sink, Logger: logger})
	if err != nil {
		return err
	}

	logger.Info("Starting", "game", gameID, "level", level+1, "difficulty", flagDifficulty)
	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
