package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleighride/internal/games/sleigh"
	"github.com/vovakirdan/sleighride/internal/progress"
	"github.com/vovakirdan/sleighride/internal/storage"
)

var flagResetProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset unlocked levels",
	Long: `Show how far the story has been flown: the highest unlocked level,
whether the intro has been seen and whether the story is complete.

Examples:
  sleighride progress
  sleighride progress --reset`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagResetProgress, "reset", false, "Forget unlocked levels and replay the intro")
}

func runProgress(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	cfg := sleigh.LoadConfig()
	tracker := progress.NewTracker(store, cfg.LastLevel())

	if flagResetProgress {
		if err := tracker.Reset(); err != nil {
			return err
		}
		fmt.Println("Progress reset. Only level 1 is unlocked.")
		return nil
	}

	state, err := tracker.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Unlocked:       level %d of %d (%s)\n", state.MaxLevel+1, len(cfg.Levels), cfg.Levels[state.MaxLevel].Name)
	fmt.Printf("Intro seen:     %s\n", yesNo(state.IntroSeen))
	fmt.Printf("Story complete: %s\n", yesNo(state.StoryComplete))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
