package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleighride/internal/games/sleigh"
	"github.com/vovakirdan/sleighride/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level or endless mode from a menu",
	Long: `Start in interactive menu mode.

Story levels unlock one at a time as you finish them. After a run
ends, press Esc to return to the menu and pick again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  sleighride menu
  sleighride menu --fps 30
  sleighride menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	cfg := sleigh.LoadConfig()
	tracker := openTracker(store, cfg)

	restore := logToFile()
	defer restore()

	sink := tui.OpenAudio(logger)
	defer sink.StopAll()

	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, tracker, cfg.Levels, rt)
		if err != nil {
			return err
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.Levels, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				logger.Error("Scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := tui.NewGame(menuResult.GameID, menuResult.Level, tui.GameDeps{
			Tracker: tracker,
			Audio:   sink,
			Logger:  logger,
		})
		if err != nil {
			logger.Error("Cannot start game", "game", menuResult.GameID, "err", err)
			continue
		}

		// New seed for each run unless one was pinned
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, rt, logger)
		if err != nil {
			logger.Error("Game failed", "err", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
