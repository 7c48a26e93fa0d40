package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sleighride/internal/games/sleigh"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the story levels",
	Long:  `Shows every story level with its weather, mission and unlock state.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg := sleigh.LoadConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	tracker := openTracker(store, cfg)

	fmt.Println("Story levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, l := range cfg.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-14s  %s\n", "#", maxNameLen, "Name", "Weather", "Mission")
	fmt.Printf("  %-3s  %-*s  %-14s  %s\n", "-", maxNameLen, "----", "-------", "-------")

	for i, l := range cfg.Levels {
		weather := strings.ToLower(strings.ReplaceAll(l.Weather, "_", " "))
		if weather == "" {
			weather = "clear"
		}
		mission := l.Mission.Objective
		if mission == "" {
			mission = "-"
		}
		line := fmt.Sprintf("  %-3d  %-*s  %-14s  %s", i+1, maxNameLen, l.Name, weather, mission)
		if !tracker.Unlocked(i) {
			line += "  (locked)"
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'sleighride play --level <n>' to fly a level.")
	return nil
}
