// Package config provides YAML-based configuration loading and
// difficulty management for the sleigh ride simulation.
package config

// SleighConfig contains every tunable of the simulation.
// Values are expressed in logical world units (a 1200x600 canvas) and
// per-logical-tick rates tuned against a 60Hz baseline.
type SleighConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Stamina    StaminaConfig    `yaml:"stamina"`
	Player     PlayerConfig     `yaml:"player"`
	Stability  StabilityConfig  `yaml:"stability"`
	Collision  CollisionConfig  `yaml:"collision"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Ending     EndingConfig     `yaml:"ending"`
	Frame      FrameConfig      `yaml:"frame"`
	Thresholds []float64        `yaml:"thresholds"` // Level entry points, percent of victory distance
	Levels     []LevelConfig    `yaml:"levels"`
	Story      StoryConfig      `yaml:"story"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical canvas and session limits.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	VictoryDistance float64 `yaml:"victory_distance"`
	StoryOvershoot  float64 `yaml:"story_overshoot"` // Progress ratio cap in story mode
	TimeLimit       float64 `yaml:"time_limit"`      // Story session limit in seconds
	FloorMargin     float64 `yaml:"floor_margin"`    // Distance of the floor line from the bottom edge
	GroundTolerance float64 `yaml:"ground_tolerance"`
	SpawnMargin     float64 `yaml:"spawn_margin"` // Spawn x offset beyond the right edge
}

// PhysicsConfig defines vertical integration and forward speed.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative is up
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedBuff    float64 `yaml:"speed_buff"` // Multiplier while the speed powerup is active
	TiltFactor   float64 `yaml:"tilt_factor"`
	TiltClamp    float64 `yaml:"tilt_clamp"`
	TiltDamping  float64 `yaml:"tilt_damping"`
}

// StaminaConfig defines the jump resource and exhaustion hysteresis.
type StaminaConfig struct {
	Max               float64 `yaml:"max"`
	JumpCost          float64 `yaml:"jump_cost"`
	RegenGround       float64 `yaml:"regen_ground"`
	RegenAir          float64 `yaml:"regen_air"` // Applied only while ascending
	RecoveryThreshold float64 `yaml:"recovery_threshold"`
	ExhaustedPenalty  float64 `yaml:"exhausted_penalty"` // Impulse fraction for jumps while exhausted
	DegradedJump      float64 `yaml:"degraded_jump"`     // Impulse fraction for the jump that causes exhaustion
}

// PlayerConfig defines the spawn box and starting inventory.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Lives     int     `yaml:"lives"`
	MaxLives  int     `yaml:"max_lives"`
	Snowballs int     `yaml:"snowballs"`
}

// StabilityConfig defines route stability gains and losses.
type StabilityConfig struct {
	Initial      float64 `yaml:"initial"`
	Max          float64 `yaml:"max"`
	CrashPenalty float64 `yaml:"crash_penalty"`
	PowerupBonus float64 `yaml:"powerup_bonus"`
	LetterBonus  float64 `yaml:"letter_bonus"`
	KillBonus    float64 `yaml:"kill_bonus"`
	HealingBonus float64 `yaml:"healing_bonus"`
	GoldenBonus  float64 `yaml:"golden_bonus"`
	SadBelow     float64 `yaml:"sad_below"` // Random letters turn sad under this stability
}

// CollisionConfig defines hitbox padding and crash feedback.
type CollisionConfig struct {
	Padding          float64 `yaml:"padding"`
	Invincibility    float64 `yaml:"invincibility"` // Grace window after a crash, seconds
	CrashShake       float64 `yaml:"crash_shake"`
	KillScore        int     `yaml:"kill_score"`
	NoCollisionLevel int     `yaml:"no_collision_level"` // Story level index without obstacle crashes, -1 for none
}

// SpawnConfig defines per-tick spawn probabilities and cull thresholds.
type SpawnConfig struct {
	ObstacleRate   float64 `yaml:"obstacle_rate"`
	PowerupRate    float64 `yaml:"powerup_rate"`
	LetterRate     float64 `yaml:"letter_rate"`
	GoldenChance   float64 `yaml:"golden_chance"`
	VillainChance  float64 `yaml:"villain_chance"`
	ObstacleCull   float64 `yaml:"obstacle_cull"`
	PickupCull     float64 `yaml:"pickup_cull"`
	LandmarkCull   float64 `yaml:"landmark_cull"`
	LandmarkSpeed  float64 `yaml:"landmark_speed"` // Fraction of scroll speed
	LetterSpeed    float64 `yaml:"letter_speed"`   // Fraction of scroll speed
	FloatBand      float64 `yaml:"float_band"`     // Floating obstacles spawn in [0, height-band)
	GroundAnchor   float64 `yaml:"ground_anchor"`  // Ground obstacles spawn at height-anchor
	PickupBand     float64 `yaml:"pickup_band"`
	PickupTop      float64 `yaml:"pickup_top"`
	PowerupBobStep float64 `yaml:"powerup_bob_step"`
	PowerupBobAmp  float64 `yaml:"powerup_bob_amp"`
	LetterBobStep  float64 `yaml:"letter_bob_step"`
	LetterBobAmp   float64 `yaml:"letter_bob_amp"`
}

// PowerupConfig defines the powerup effect table.
type PowerupConfig struct {
	SpeedDuration   float64 `yaml:"speed_duration"`
	Ammo            int     `yaml:"ammo"`
	HealingDuration float64 `yaml:"healing_duration"`
	BlastFlash      float64 `yaml:"blast_flash"`
	BlastShake      float64 `yaml:"blast_shake"`
}

// ProjectileConfig defines snowball flight.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
	Trail int     `yaml:"trail"`
}

// EndingConfig defines the scripted ending sequence.
type EndingConfig struct {
	MusicRatio       float64 `yaml:"music_ratio"`
	ApproachRatio    float64 `yaml:"approach_ratio"`
	ApproachAltitude float64 `yaml:"approach_altitude"`
	ApproachEasing   float64 `yaml:"approach_easing"`
	ApproachSpeed    float64 `yaml:"approach_speed"` // Multiplier of the current speed
	JoyrideSpeed     float64 `yaml:"joyride_speed"`  // Multiplier of the base speed
	JoyrideDelay     float64 `yaml:"joyride_delay"`
	JoyrideDuration  float64 `yaml:"joyride_duration"`
	JoyrideFinal     float64 `yaml:"joyride_final"` // Duration on the last level
	JoyrideCoast     float64 `yaml:"joyride_coast"` // Distance stops accruing below this remaining time
	BobCenter        float64 `yaml:"bob_center"`
	BobAmplitude     float64 `yaml:"bob_amplitude"`
	BobPeriod        float64 `yaml:"bob_period"` // Seconds per radian
	BobTilt          float64 `yaml:"bob_tilt"`
	FinalFlash       float64 `yaml:"final_flash"`
	FinalGlow        int     `yaml:"final_glow"`
}

// FrameConfig defines the frame driver and published-state cadence.
type FrameConfig struct {
	MaxDelta         float64 `yaml:"max_delta"`
	LogicalRate      float64 `yaml:"logical_rate"`
	SnapshotInterval float64 `yaml:"snapshot_interval"`
	ParticleCap      int     `yaml:"particle_cap"`
	ShakeDecay       float64 `yaml:"shake_decay"`
	DialogueTTL      float64 `yaml:"dialogue_ttl"`
	WishTTL          float64 `yaml:"wish_ttl"`
	Intro            float64 `yaml:"intro"`
	IntroFirstRun    float64 `yaml:"intro_first_run"`
}

// LevelConfig contains the static tunables for one level.
type LevelConfig struct {
	Name             string        `yaml:"name"`
	Description      string        `yaml:"description"`
	Mission          MissionConfig `yaml:"mission"`
	Sky              string        `yaml:"sky"`
	Ground           []string      `yaml:"ground"` // Far, mid, near palette names
	Terrain          string        `yaml:"terrain"`
	Weather          string        `yaml:"weather"`
	WeatherIntensity float64       `yaml:"weather_intensity"`
	ObstacleSpeed    float64       `yaml:"obstacle_speed"`
	SpawnRate        float64       `yaml:"spawn_rate"`
	DrainRate        float64       `yaml:"drain_rate"`
	LightsOut        bool          `yaml:"lights_out"` // Dark levels favor buildings and garlands
}

// MissionConfig describes a per-level objective.
type MissionConfig struct {
	Type      string  `yaml:"type"`
	Target    float64 `yaml:"target"`
	Objective string  `yaml:"objective"`
}

// StoryConfig contains the progress-keyed narrative tables.
type StoryConfig struct {
	Moments   []StoryMoment     `yaml:"moments"`
	Landmarks []LandmarkSpec    `yaml:"landmarks"`
	Letters   []NarrativeLetter `yaml:"letters"`
	Wishes    []string          `yaml:"wishes"`
	SadWishes []string          `yaml:"sad_wishes"`
	Villain   []string          `yaml:"villain"`
}

// StoryMoment is a dialogue line shown once when progress reaches it.
type StoryMoment struct {
	Progress float64 `yaml:"progress"`
	ID       string  `yaml:"id"`
	Speaker  string  `yaml:"speaker"`
	Text     string  `yaml:"text"`
}

// LandmarkSpec is a set piece spawned once when progress reaches it.
type LandmarkSpec struct {
	Progress float64 `yaml:"progress"`
	Kind     string  `yaml:"kind"`
	Name     string  `yaml:"name"`
}

// NarrativeLetter is a scripted letter spawned once when progress reaches it.
type NarrativeLetter struct {
	Progress float64 `yaml:"progress"`
	Message  string  `yaml:"message"`
}

// DifficultyConfig scales the level table and the forward speed curve.
type DifficultyConfig struct {
	DrainMultiplier float64 `yaml:"drain_multiplier"`
	SpawnMultiplier float64 `yaml:"spawn_multiplier"`
	SpeedGrowth     float64 `yaml:"speed_growth"`    // Speed added per unit of progress ratio
	SpeedRatioCap   float64 `yaml:"speed_ratio_cap"` // Progress ratio beyond which speed stops growing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LastLevel returns the index of the final level.
func (c *SleighConfig) LastLevel() int {
	return len(c.Levels) - 1
}
