// sleighride is a terminal side-scroller: fly Santa's sleigh across five
// levels, dodge obstacles and collect wish letters before the night ends.
//
// Usage:
//
//	sleighride play              - Play story mode (or --mode endless)
//	sleighride menu              - Pick a level or endless mode interactively
//	sleighride serve             - Start SSH server for remote play
//	sleighride scores [mode]     - Show high scores
//	sleighride progress          - Show or reset unlocked levels
//	sleighride levels            - List the story levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.sleighride/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--config <path>      - Custom sleigh.yaml
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/games/sleigh"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sleighride",
	Short: "Sleigh Ride - deliver wishes from your terminal",
	Long: `Sleigh Ride is a side-scrolling flight through a winter night.
Keep the reindeer's stamina up, dodge obstacles, throw snowballs and
collect wish letters to hold the Christmas spirit together.

Available commands:
  play      - Fly a story level or endless mode directly
  menu      - Interactive level picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  progress  - Show or reset unlocked levels
  levels    - List the story levels

Examples:
  sleighride play
  sleighride play --level 3
  sleighride play --mode endless --difficulty hard
  sleighride menu
  sleighride serve --ssh :2222
  sleighride scores endless`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l

		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		_ = checkConfig(logger, flagConfig)
		sleigh.SetConfigPath(flagConfig)
		sleigh.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sleighride/scores.db", "Path to scores and progress database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sleigh config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(levelsCmd)
}
