package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SleighConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))
	assert.Equal(t, DefaultSleighConfig(), cfg)
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultSleighConfig()
	require.NoError(t, cfg.Validate())
	assert.Less(t, cfg.Stamina.RecoveryThreshold, cfg.Stamina.JumpCost)
	assert.Len(t, cfg.Levels, 5)
	assert.Equal(t, 4, cfg.LastLevel())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SleighConfig)
	}{
		{"recovery at jump cost", func(c *SleighConfig) { c.Stamina.RecoveryThreshold = c.Stamina.JumpCost }},
		{"empty levels", func(c *SleighConfig) { c.Levels = nil; c.Thresholds = nil }},
		{"threshold count", func(c *SleighConfig) { c.Thresholds = c.Thresholds[:3] }},
		{"thresholds not ascending", func(c *SleighConfig) { c.Thresholds = []float64{0, 40, 20, 60, 80} }},
		{"zero victory distance", func(c *SleighConfig) { c.World.VictoryDistance = 0 }},
		{"too many lives", func(c *SleighConfig) { c.Player.Lives = 4 }},
		{"short palette", func(c *SleighConfig) { c.Levels[2].Ground = []string{"red"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSleighConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadSleighCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.7\nstamina:\n  jump_cost: 12\n"), 0o600))

	cfg, err := LoadSleigh(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, cfg.Physics.Gravity, 1e-9)
	assert.InDelta(t, 12.0, cfg.Stamina.JumpCost, 1e-9)
	// Untouched sections keep their defaults.
	assert.InDelta(t, -9.0, cfg.Physics.JumpStrength, 1e-9)
	assert.Len(t, cfg.Levels, 5)
}

func TestLoadSleighCustomPathErrors(t *testing.T) {
	_, err := LoadSleigh(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("stamina:\n  recovery_threshold: 50\n"), 0o600))
	cfg, err := LoadSleigh(bad)
	assert.Error(t, err)
	assert.Equal(t, DefaultSleighConfig().Stamina, cfg.Stamina, "invalid file falls back to defaults")
}

func TestApplySleighPreset(t *testing.T) {
	easy := DefaultSleighConfig()
	ApplySleighPreset(&easy, DifficultyEasy)
	hard := DefaultSleighConfig()
	ApplySleighPreset(&hard, DifficultyHard)

	assert.Less(t, easy.Difficulty.DrainMultiplier, hard.Difficulty.DrainMultiplier)
	assert.Less(t, easy.Difficulty.SpawnMultiplier, hard.Difficulty.SpawnMultiplier)
	assert.Equal(t, 3, easy.Player.Lives)
	assert.Equal(t, 2, hard.Player.Lives)
	require.NoError(t, hard.Validate())
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("fixed"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset(""))
}

func TestDifficultyManagerSpeedCurve(t *testing.T) {
	cfg := DefaultSleighConfig()
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed)

	assert.InDelta(t, 7.0, dm.Speed(0), 1e-9)
	assert.InDelta(t, 10.0, dm.Speed(0.5), 1e-9)
	assert.InDelta(t, 25.0, dm.Speed(3), 1e-9)
	assert.InDelta(t, 25.0, dm.Speed(7.5), 1e-9, "speed stops growing past the ratio cap")
	assert.InDelta(t, 7.0, dm.Speed(-1), 1e-9)
}

func TestDifficultyManagerScalesLevelRates(t *testing.T) {
	cfg := DefaultSleighConfig()
	ApplySleighPreset(&cfg, DifficultyHard)
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed)

	lvl := cfg.Levels[0]
	assert.InDelta(t, lvl.DrainRate*1.5, dm.DrainRate(lvl), 1e-12)
	assert.InDelta(t, lvl.SpawnRate*1.25, dm.SpawnMultiplier(lvl), 1e-12)

	neutral := NewDifficultyManager(DifficultyConfig{}, 7)
	assert.InDelta(t, lvl.DrainRate, neutral.DrainRate(lvl), 1e-12)
}
