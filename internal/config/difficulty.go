package config

import "math"

// DifficultyManager derives the per-tick tunables that scale with difficulty:
// forward speed from the progress ratio, and the level table's drain and spawn rates.
type DifficultyManager struct {
	cfg       DifficultyConfig
	baseSpeed float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, baseSpeed float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:       cfg,
		baseSpeed: baseSpeed,
	}
}

// Speed returns the forward speed for a progress ratio, before buffs.
// Speed grows linearly until the ratio cap and stays flat after it.
func (d *DifficultyManager) Speed(ratio float64) float64 {
	r := clampF(ratio, 0, d.cfg.SpeedRatioCap)
	return d.baseSpeed + r*d.cfg.SpeedGrowth
}

// BaseSpeed returns the speed at zero progress.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.baseSpeed
}

// DrainRate returns the stability drain per logical tick for a level.
func (d *DifficultyManager) DrainRate(level LevelConfig) float64 {
	return level.DrainRate * multiplier(d.cfg.DrainMultiplier)
}

// SpawnMultiplier returns the level's spawn multiplier scaled by difficulty.
func (d *DifficultyManager) SpawnMultiplier(level LevelConfig) float64 {
	return level.SpawnRate * multiplier(d.cfg.SpawnMultiplier)
}

// multiplier treats an unset value as neutral.
func multiplier(m float64) float64 {
	if m <= 0 {
		return 1
	}
	return m
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
