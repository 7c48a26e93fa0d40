package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSleigh loads the simulation configuration.
// Search order: customPath -> ~/.sleighride/configs/sleigh.yaml -> ./configs/sleigh.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadSleigh(customPath string) (SleighConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSleighConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultSleighConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSleighConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("sleigh.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "sleigh.yaml")); err == nil {
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultSleighYAML)
	if err != nil {
		return DefaultSleighConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML on top of the hardcoded defaults.
func decode(data []byte) (SleighConfig, error) {
	cfg := DefaultSleighConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sleighride", "configs", filename)
}

// Validate reports configurations the simulation cannot run with.
func (c *SleighConfig) Validate() error {
	var errs []error

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("level table is empty"))
	}
	if len(c.Thresholds) != len(c.Levels) {
		errs = append(errs, fmt.Errorf("%d thresholds for %d levels", len(c.Thresholds), len(c.Levels)))
	}
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i] <= c.Thresholds[i-1] {
			errs = append(errs, fmt.Errorf("threshold %d (%g) is not above %g", i, c.Thresholds[i], c.Thresholds[i-1]))
		}
	}
	if len(c.Thresholds) > 0 && c.Thresholds[0] != 0 {
		errs = append(errs, fmt.Errorf("first threshold must be 0, got %g", c.Thresholds[0]))
	}
	if c.World.VictoryDistance <= 0 {
		errs = append(errs, fmt.Errorf("victory distance must be positive, got %g", c.World.VictoryDistance))
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Stamina.JumpCost <= 0 || c.Stamina.Max < c.Stamina.JumpCost {
		errs = append(errs, fmt.Errorf("jump cost %g must be in (0, %g]", c.Stamina.JumpCost, c.Stamina.Max))
	}
	if c.Stamina.RecoveryThreshold >= c.Stamina.JumpCost {
		errs = append(errs, fmt.Errorf("recovery threshold %g must be below jump cost %g",
			c.Stamina.RecoveryThreshold, c.Stamina.JumpCost))
	}
	if c.Player.Lives <= 0 || c.Player.Lives > c.Player.MaxLives {
		errs = append(errs, fmt.Errorf("starting lives %d must be in [1, %d]", c.Player.Lives, c.Player.MaxLives))
	}
	if c.Frame.MaxDelta <= 0 || c.Frame.LogicalRate <= 0 {
		errs = append(errs, errors.New("frame max_delta and logical_rate must be positive"))
	}
	for i, lvl := range c.Levels {
		if len(lvl.Ground) != 3 {
			errs = append(errs, fmt.Errorf("level %d (%s): ground palette needs 3 entries", i, lvl.Name))
		}
	}

	return errors.Join(errs...)
}

// ApplySleighPreset modifies the config based on a difficulty preset.
func ApplySleighPreset(cfg *SleighConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.DrainMultiplier = 0.6
		cfg.Difficulty.SpawnMultiplier = 0.8
		cfg.Player.Lives = cfg.Player.MaxLives
	case DifficultyNormal:
		cfg.Difficulty.DrainMultiplier = 1.0
		cfg.Difficulty.SpawnMultiplier = 1.0
	case DifficultyHard:
		cfg.Difficulty.DrainMultiplier = 1.5
		cfg.Difficulty.SpawnMultiplier = 1.25
		cfg.Player.Lives = max(1, cfg.Player.MaxLives-1)
	}
}
