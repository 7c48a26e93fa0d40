package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/games/sleigh"
	"github.com/vovakirdan/sleighride/internal/registry"
	"github.com/vovakirdan/sleighride/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [story|endless]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for story mode, endless mode, or both.

Examples:
  sleighride scores
  sleighride scores endless
  sleighride scores story --clear`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"story", "endless"},
	RunE:      runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded scores instead of listing them")
}

func runScores(_ *cobra.Command, args []string) error {
	modes := []string{"story", "endless"}
	if len(args) == 1 {
		modes = args
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	for i, mode := range modes {
		gameID, err := modeID(mode)
		if err != nil {
			return err
		}
		if flagClearScores {
			if err := store.ClearScores(gameID); err != nil {
				return err
			}
			fmt.Printf("Cleared %s scores.\n", mode)
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, gameID, mode); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, gameID, mode string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'sleighride play --mode %s' to set the first high score!\n", mode)
		return nil
	}

	levels := sleigh.LoadConfig().Levels
	fmt.Printf("  %-4s  %-8s  %-24s  %-6s  %-9s  %s\n", "Rank", "Score", "Level", "Wishes", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-24s  %-6s  %-9s  %s\n", "----", "-----", "-----", "------", "------", "----")

	for i, e := range scores {
		result := "crashed"
		if e.Won {
			result = "delivered"
		}
		fmt.Printf("  %-4d  %-8d  %-24s  %-6d  %-9s  %s\n",
			i+1, e.Score, levelLabel(levels, e.Level), e.Wishes, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Furthest: %s  Wishes: %d  Deliveries: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore,
			levelLabel(levels, stats.BestLevel), stats.TotalWishes, stats.Wins)
	}
	return nil
}

func levelLabel(levels []config.LevelConfig, level int) string {
	if level >= 0 && level < len(levels) {
		return fmt.Sprintf("%d %s", level+1, levels[level].Name)
	}
	return fmt.Sprintf("%d", level+1)
}
