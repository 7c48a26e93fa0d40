package config

import (
	_ "embed"
)

//go:embed defaults/sleigh.yaml
var defaultSleighYAML []byte

// DefaultSleighConfig returns the hardcoded default configuration.
// It mirrors defaults/sleigh.yaml and is used when the embedded file cannot be parsed.
func DefaultSleighConfig() SleighConfig {
	return SleighConfig{
		World: WorldConfig{
			Width:           1200,
			Height:          600,
			VictoryDistance: 25000,
			StoryOvershoot:  1.02,
			TimeLimit:       300,
			FloorMargin:     50,
			GroundTolerance: 5,
			SpawnMargin:     100,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpStrength: -9,
			BaseSpeed:    7,
			SpeedBuff:    1.5,
			TiltFactor:   0.05,
			TiltClamp:    0.6,
			TiltDamping:  0.1,
		},
		Stamina: StaminaConfig{
			Max:               200,
			JumpCost:          10,
			RegenGround:       2.0,
			RegenAir:          0.3,
			RecoveryThreshold: 8,
			ExhaustedPenalty:  0.6,
			DegradedJump:      0.8,
		},
		Player: PlayerConfig{
			X:         150,
			Y:         300,
			Width:     90,
			Height:    40,
			Lives:     3,
			MaxLives:  3,
			Snowballs: 3,
		},
		Stability: StabilityConfig{
			Initial:      100,
			Max:          100,
			CrashPenalty: 15,
			PowerupBonus: 10,
			LetterBonus:  5,
			KillBonus:    5,
			HealingBonus: 15,
			GoldenBonus:  10,
			SadBelow:     30,
		},
		Collision: CollisionConfig{
			Padding:          15,
			Invincibility:    2.0,
			CrashShake:       20,
			KillScore:        50,
			NoCollisionLevel: 4,
		},
		Spawn: SpawnConfig{
			ObstacleRate:   0.015,
			PowerupRate:    0.004,
			LetterRate:     0.002,
			GoldenChance:   0.1,
			VillainChance:  0.05,
			ObstacleCull:   -100,
			PickupCull:     -50,
			LandmarkCull:   -100,
			LandmarkSpeed:  0.6,
			LetterSpeed:    0.8,
			FloatBand:      300,
			GroundAnchor:   80,
			PickupBand:     200,
			PickupTop:      50,
			PowerupBobStep: 0.05,
			PowerupBobAmp:  0.5,
			LetterBobStep:  0.03,
			LetterBobAmp:   1.0,
		},
		Powerups: PowerupConfig{
			SpeedDuration:   7.0,
			Ammo:            5,
			HealingDuration: 5.0,
			BlastFlash:      0.2,
			BlastShake:      30,
		},
		Projectile: ProjectileConfig{
			Speed: 18,
			Size:  14,
			Trail: 10,
		},
		Ending: EndingConfig{
			MusicRatio:       0.90,
			ApproachRatio:    0.99,
			ApproachAltitude: 200,
			ApproachEasing:   0.05,
			ApproachSpeed:    0.5,
			JoyrideSpeed:     3,
			JoyrideDelay:     0.5,
			JoyrideDuration:  5,
			JoyrideFinal:     8,
			JoyrideCoast:     2,
			BobCenter:        250,
			BobAmplitude:     80,
			BobPeriod:        0.4,
			BobTilt:          0.2,
			FinalFlash:       2.0,
			FinalGlow:        50,
		},
		Frame: FrameConfig{
			MaxDelta:         0.1,
			LogicalRate:      60,
			SnapshotInterval: 0.1,
			ParticleCap:      600,
			ShakeDecay:       0.9,
			DialogueTTL:      5,
			WishTTL:          4,
			Intro:            2,
			IntroFirstRun:    5,
		},
		Thresholds: []float64{0, 20, 40, 60, 80},
		Levels:     defaultLevels(),
		Story:      defaultStory(),
		Difficulty: DifficultyConfig{
			DrainMultiplier: 1.0,
			SpawnMultiplier: 1.0,
			SpeedGrowth:     6,
			SpeedRatioCap:   3.0,
		},
	}
}

func defaultLevels() []LevelConfig {
	return []LevelConfig{
		{
			Name:        "The Buried Road",
			Description: "Snowstorms have covered the supply route.",
			Mission: MissionConfig{
				Type:      "DESTROY_OBSTACLES",
				Target:    5,
				Objective: "Destroy 5 Ice Obstacles.",
			},
			Sky:              "slate",
			Ground:           []string{"slate", "gray", "white"},
			Terrain:          "MOUNTAINS",
			Weather:          "SNOWSTORM",
			WeatherIntensity: 2,
			ObstacleSpeed:    1.0,
			SpawnRate:        1.5,
			DrainRate:        0.03,
		},
		{
			Name:        "The Dark Metropolis",
			Description: "The power grid has failed. Belief is dropping.",
			Mission: MissionConfig{
				Type:      "COLLECT_WISHES",
				Target:    3,
				Objective: "Collect 3 Data Packets (Letters).",
			},
			Sky:              "indigo",
			Ground:           []string{"blue", "indigo", "slate"},
			Terrain:          "CITY",
			Weather:          "CLEAR",
			WeatherIntensity: 0,
			ObstacleSpeed:    1.1,
			SpawnRate:        1.2,
			DrainRate:        0.05,
			LightsOut:        true,
		},
		{
			Name:        "Turbulent Skies",
			Description: "Atmospheric instability detected.",
			Mission: MissionConfig{
				Type:      "LOW_ALTITUDE",
				Target:    15,
				Objective: "Fly Low (Below 50% Height) for 15s.",
			},
			Sky:              "slate",
			Ground:           []string{"indigo", "magenta", "bright_blue"},
			Terrain:          "HILLS",
			Weather:          "TURBULENCE",
			WeatherIntensity: 3,
			ObstacleSpeed:    1.3,
			SpawnRate:        0.9,
			DrainRate:        0.04,
		},
		{
			Name:        "The Glacial Spikes",
			Description: "High winds ahead. Route integrity critical.",
			Mission: MissionConfig{
				Type:      "MAINTAIN_SPEED",
				Target:    10,
				Objective: "Maintain High Speed for 10s.",
			},
			Sky:              "cyan",
			Ground:           []string{"blue", "cyan", "ice"},
			Terrain:          "SPIKES",
			Weather:          "WIND_CORRIDOR",
			WeatherIntensity: 5,
			ObstacleSpeed:    1.5,
			SpawnRate:        1.3,
			DrainRate:        0.06,
		},
		{
			Name:        "Eye of the Storm",
			Description: "The source of the anomaly.",
			Mission: MissionConfig{
				Type:      "SURVIVE",
				Target:    1,
				Objective: "Survive the final approach.",
			},
			Sky:              "crimson",
			Ground:           []string{"red", "crimson", "bright_red"},
			Terrain:          "MOUNTAINS",
			Weather:          "SNOWSTORM",
			WeatherIntensity: 8,
			ObstacleSpeed:    1.2,
			SpawnRate:        1.0,
			DrainRate:        0.08,
		},
	}
}

func defaultStory() StoryConfig {
	return StoryConfig{
		Moments: []StoryMoment{
			{Progress: 0.01, ID: "act1_start", Speaker: "Rudolph", Text: "The wind is different this year, Santa. It fights back."},
			{Progress: 0.05, ID: "act1_santa", Speaker: "Santa", Text: "Steady, old friend. The world is changing, and we must change with it."},
			{Progress: 0.20, ID: "act2_start", Speaker: "Control", Text: "WARNING: Route Integrity at 40%. City Grid Offline."},
			{Progress: 0.22, ID: "act2_santa", Speaker: "Santa", Text: "We need those stabilizers! Fly low, aim for the power nodes!"},
			{Progress: 0.40, ID: "act3_start", Speaker: "Rudolph", Text: "I'm... getting tired, boss. The air is so heavy here."},
			{Progress: 0.45, ID: "act3_santa", Speaker: "Santa", Text: "I know. Conserve your strength. Gliding now, power only when needed."},
			{Progress: 0.60, ID: "act4_start", Speaker: "Control", Text: "CRITICAL ALERT: Wind Corridor detected. Brace for impact."},
			{Progress: 0.65, ID: "act4_santa", Speaker: "Santa", Text: "Don't fight the wind! Ride it! Lean into the turn!"},
			{Progress: 0.80, ID: "act5_start", Speaker: "Rudolph", Text: "The storm... it's breaking! I can see the dawn!"},
			{Progress: 0.85, ID: "act5_santa", Speaker: "Santa", Text: "We held the line. Good work, everyone. Delivery complete."},
		},
		Landmarks: []LandmarkSpec{
			{Progress: 0.22, Kind: "POWER_PLANT", Name: "Failing Power Grid"},
			{Progress: 0.42, Kind: "CLOCK_TOWER", Name: "Midnight Clock"},
			{Progress: 0.65, Kind: "LIGHTHOUSE", Name: "The Last Beacon"},
			{Progress: 0.99, Kind: "FINAL_HOUSE", Name: "Central Hub"},
		},
		Letters: []NarrativeLetter{
			{Progress: 0.15, Message: "System Alert: North Route destabilizing. Reinforce immediately."},
			{Progress: 0.50, Message: "The grid is down, but I saw a red light in the sky... is it him?"},
			{Progress: 0.85, Message: "Reindeer vitals dropping. Hold the line, Santa. We are almost through."},
		},
		Wishes: []string{
			"I hope things go back to normal.",
			"Is anyone listening?",
			"The lights went out...",
			"We're trying to stay warm.",
			"I wish for a sign.",
			"Don't give up on us.",
			"The storm is so loud.",
			"I still believe... barely.",
		},
		SadWishes: []string{
			"Route collapsing.",
			"Signal lost.",
			"Too much static.",
			"Connection failed.",
			"We are drifting.",
			"No answer.",
			"Fading out.",
			"Darkness.",
		},
		Villain: []string{
			"The world has changed, old man. You're flying a relic in a digital age.",
			"Your 'magic' is just a resource I haven't optimized yet.",
			"Go home, Santa. The storm isn't natural. It's apathy.",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSleighYAML
}
