package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
	"github.com/vovakirdan/sleighride/internal/progress"
	"github.com/vovakirdan/sleighride/internal/storage"
)

// modeIDs maps CLI mode names to registered game IDs.
var modeIDs = map[string]string{
	"story":   "sleigh",
	"endless": "sleigh_endless",
}

func modeID(name string) (string, error) {
	id, ok := modeIDs[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown mode %q (want story or endless)", name)
	}
	return id, nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sleighride",
		Level:           lvl,
	}), nil
}

// logToFile sends log output to ~/.sleighride/sleighride.log while a
// full-screen program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".sleighride")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("Logging to stderr", "err", err)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "sleighride.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("Logging to stderr", "err", err)
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// openStore opens the database, or returns nil and logs when it cannot.
// Play continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Could not open database, scores and progress will not be saved", "err", err)
		return nil
	}
	return store
}

// openTracker loads meta-progress from store, falling back to memory.
func openTracker(store *storage.Store, cfg config.SleighConfig) *progress.Tracker {
	var kv progress.KV = progress.NewMemoryKV()
	if store != nil {
		kv = store
	}
	tracker := progress.NewTracker(kv, cfg.LastLevel())
	if _, err := tracker.Load(); err != nil {
		logger.Warn("Could not load progress", "err", err)
	}
	return tracker
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// checkConfig loads the --config file once up front so a rejected file is
// reported before the terminal is taken over. Runs still fall back to the
// built-in defaults.
func checkConfig(l *log.Logger, path string) error {
	if path == "" {
		return nil
	}
	_, err := config.LoadSleigh(path)
	if err != nil {
		l.Warn("Config rejected, using built-in defaults", "path", path, "err", err)
	}
	return err
}
