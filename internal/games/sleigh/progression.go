package sleigh

import (
	"math"
	"math/rand"
)

// Mode selects how the level is chosen and how a run ends.
type Mode int

const (
	ModeStory   Mode = iota // One fixed level per run, ends in the scripted sequence
	ModeEndless             // Level cycles with distance, runs until lost
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "story"
}

// ProgressRatio converts distance to a completion ratio. Story mode caps
// it at overshoot.
func ProgressRatio(distance, victory float64, mode Mode, overshoot float64) float64 {
	r := distance / victory
	if mode == ModeStory {
		r = math.Min(r, overshoot)
	}
	return r
}

// EffectivePercent is the percentage used for level selection. Past
// 100% the endless ratio wraps.
func EffectivePercent(ratio float64) float64 {
	if ratio > 1 {
		return math.Mod(ratio, 1) * 100
	}
	return ratio * 100
}

// LevelIndex picks the highest threshold not above percent.
func LevelIndex(thresholds []float64, percent float64) int {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if percent >= thresholds[i] {
			return i
		}
	}
	return 0
}

// Weather is the pair of forces a level applies each tick.
type Weather struct {
	X float64 // Added to forward speed, scaled by 10
	Y float64 // Added to gravity
}

// WeatherForces returns the forces for a weather type at clock seconds.
func WeatherForces(kind string, clock float64, rng *rand.Rand) Weather {
	switch kind {
	case WeatherWind:
		return Weather{X: -0.15, Y: (rng.Float64() - 0.5) * 0.3}
	case WeatherSnowstorm:
		return Weather{X: -0.1}
	case WeatherTurbulence:
		return Weather{Y: math.Sin(clock/0.15) * 0.8}
	default:
		return Weather{}
	}
}

// Mission types named in the level table.
const (
	MissionDestroy       = "DESTROY_OBSTACLES"
	MissionCollect       = "COLLECT_WISHES"
	MissionLowAltitude   = "LOW_ALTITUDE"
	MissionMaintainSpeed = "MAINTAIN_SPEED"
	MissionSurvive       = "SURVIVE"
)

// Mission tracks one level objective.
type Mission struct {
	Type      string
	Target    float64
	Objective string
	Progress  float64
	Complete  bool
}

// Add advances the mission and reports whether this call completed it.
func (m *Mission) Add(v float64) bool {
	if m.Complete || m.Type == "" {
		return false
	}
	m.Progress = math.Min(m.Progress+v, m.Target)
	if m.Progress >= m.Target {
		m.Complete = true
		return true
	}
	return false
}
