package sleigh

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sleighride/internal/audio"
	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
)

// Options are fixed for the lifetime of a session.
type Options struct {
	Mode  Mode
	Level int // Story level; ignored in endless mode
	Seed  int64
	Audio audio.Sink
}

// Outcome is reported once when the ending sequence finishes.
type Outcome struct {
	Mode    Mode
	Level   int
	Victory bool // False means a story level was completed
	Score   int
}

// Hooks connect the session to the surrounding application. Any hook
// may be nil.
type Hooks struct {
	OnWin     func(Outcome)
	OnLevel   func(level int) // A level index was reached for the first time this run
	OnMission func(m Mission)
}

// Dialogue is a story line currently on screen.
type Dialogue struct {
	ID      string
	Speaker string
	Text    string
}

// Wish is the message of the last collected letter.
type Wish struct {
	Message string
	Variant LetterVariant
}

// Session is one run of the simulation. It is not safe for concurrent
// use; a single frame driver calls Tick and the input methods.
type Session struct {
	cfg        *config.SleighConfig
	difficulty *config.DifficultyManager
	mode       Mode
	startLevel int
	sink       audio.Sink
	hooks      Hooks

	Player    *Player
	Stability Stability
	Pools     *Pools
	Terrain   *Terrain
	Sky       *Sky
	Particles *Particles
	Seq       *Sequence
	schedule  *Schedule

	rng *rand.Rand // Gameplay decisions
	fx  *rand.Rand // Particles and decoration

	clock      float64
	distance   float64
	score      float64
	timeLeft   float64
	ratio      float64
	level      int
	theme      int
	maxReached int
	speed      float64
	weather    Weather
	shake      float64
	flash      float64
	trailTimer float64
	wishes     int
	kills      int
	mission    Mission
	dialogue   *Dialogue
	wish       *Wish
	popups     []Popup

	hud      HUD
	hudTimer float64
}

// NewSession builds a fresh session. cfg must already be validated.
func NewSession(cfg *config.SleighConfig, opts Options) *Session {
	sink := opts.Audio
	if sink == nil {
		sink = audio.NullSink{}
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	fx := rand.New(rand.NewSource(opts.Seed ^ 0x5eed))

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Physics.BaseSpeed),
		mode:       opts.Mode,
		sink:       sink,
		Player:     NewPlayer(cfg),
		Stability:  NewStability(cfg.Stability.Initial, cfg.Stability.Max),
		Pools:      NewPools(cfg, rng),
		Terrain:    NewTerrain(cfg.World.Width, rand.New(rand.NewSource(opts.Seed+1))),
		Sky:        NewSky(cfg.World.Width, cfg.World.Height, fx),
		Particles:  NewParticles(cfg.Frame.ParticleCap, fx),
		Seq:        NewSequence(),
		schedule:   NewSchedule(),
		rng:        rng,
		fx:         fx,
		timeLeft:   cfg.World.TimeLimit,
		theme:      -1,
	}
	if opts.Mode == ModeStory {
		s.startLevel = core.Clamp(opts.Level, 0, cfg.LastLevel())
	}
	s.level = s.startLevel
	s.maxReached = s.level
	s.mission = newMission(cfg.Levels[s.level])
	s.speed = s.difficulty.BaseSpeed()
	s.publish()
	return s
}

func newMission(level config.LevelConfig) Mission {
	return Mission{Type: level.Mission.Type, Target: level.Mission.Target, Objective: level.Mission.Objective}
}

// SetHooks installs the application callbacks.
func (s *Session) SetHooks(h Hooks) {
	s.hooks = h
}

func (s *Session) Mode() Mode                   { return s.mode }
func (s *Session) Level() int                   { return s.level }
func (s *Session) Distance() float64            { return s.distance }
func (s *Session) Ratio() float64               { return s.ratio }
func (s *Session) Score() int                   { return int(s.score) }
func (s *Session) Speed() float64               { return s.speed }
func (s *Session) Clock() float64               { return s.clock }
func (s *Session) TimeLeft() float64            { return s.timeLeft }
func (s *Session) Shake() float64               { return s.shake }
func (s *Session) Flash() float64               { return s.flash }
func (s *Session) Wishes() int                  { return s.wishes }
func (s *Session) Mission() Mission             { return s.mission }
func (s *Session) Dialogue() *Dialogue          { return s.dialogue }
func (s *Session) Wish() *Wish                  { return s.wish }
func (s *Session) Weather() Weather             { return s.weather }
func (s *Session) Config() *config.SleighConfig { return s.cfg }

// LevelConfig returns the tunables of the current level.
func (s *Session) LevelConfig() config.LevelConfig {
	return s.cfg.Levels[s.level]
}

// Lost reports the terminal loss condition polled by the outer driver.
func (s *Session) Lost() bool {
	if s.Player.Lives <= 0 || s.Stability.Depleted() {
		return true
	}
	return s.mode == ModeStory && s.timeLeft <= 0 && !s.Seq.Ending()
}

// Finished reports whether the ending sequence completed.
func (s *Session) Finished() bool {
	return s.Seq.Finished()
}

func (s *Session) over() bool {
	return s.Lost() || s.Finished()
}

// Jump is ignored once the ending sequence starts.
func (s *Session) Jump() JumpKind {
	if s.Seq.Ending() || s.over() {
		return JumpIgnored
	}
	p := s.Player
	kind := p.TryJump()
	switch kind {
	case JumpFull:
		s.sink.Play(audio.CueJump)
		s.Particles.Burst(p.X, p.Y+30, ParticleSmoke, 5, core.ColorGray)
	case JumpDegraded:
		s.sink.Play(audio.CueLowStamina)
	}
	return kind
}

// Shoot throws a snowball if any remain.
func (s *Session) Shoot() bool {
	if s.Seq.Ending() || s.over() {
		return false
	}
	p := s.Player
	if !p.SpendSnowball() {
		return false
	}
	s.sink.Play(audio.CueShoot)
	s.Pools.AddProjectile(p.Right(), p.CenterY())
	return true
}

// IntroTick hovers the sleigh in place before play starts.
func (s *Session) IntroTick(dt float64) {
	s.clock += dt
	scale := dt * s.cfg.Frame.LogicalRate
	hover := s.difficulty.BaseSpeed() * 0.5
	s.sink.SetEngineVolume(hover)
	s.Player.Pose(s.cfg.Player.Y+math.Sin(s.clock/0.8)*20, math.Sin(s.clock/0.8)*0.1)
	s.Sky.DriftClouds(hover*0.1, scale)
	s.timeLeft = s.cfg.World.TimeLimit
}

// Tick advances the simulation by dt seconds.
func (s *Session) Tick(dt float64) {
	if s.over() {
		return
	}
	scale := dt * s.cfg.Frame.LogicalRate
	s.clock += dt
	p := s.Player
	seq := s.Seq

	if s.mode == ModeStory && seq.Phase != PhaseJoyride {
		s.timeLeft -= dt
	}
	if s.flash > 0 {
		s.flash -= dt
	}

	s.ratio = ProgressRatio(s.distance, s.cfg.World.VictoryDistance, s.mode, s.cfg.World.StoryOvershoot)
	s.selectLevel()
	level := s.LevelConfig()

	if !seq.Ending() {
		s.Stability.Drain(s.difficulty.DrainRate(level) * scale)
	}
	if p.Regenerate(scale) {
		s.Particles.Burst(p.X+20, p.Bottom(), ParticleDust, 15, core.ColorGray)
	}

	base := s.difficulty.Speed(s.ratio)
	speed := base
	if seq.Ending() {
		speed = base * s.cfg.Ending.ApproachSpeed
	} else if p.SpeedActive() {
		speed = base * s.cfg.Physics.SpeedBuff
	}
	if !seq.Ending() {
		s.Sky.ScrollStars(speed, scale)
	}
	s.weather = WeatherForces(level.Weather, s.clock, s.rng)

	if s.mode == ModeStory {
		if s.ratio >= s.cfg.Ending.MusicRatio && !seq.musicCued {
			seq.musicCued = true
			s.sink.PlayEndingMusic()
		}
		if !seq.Ending() {
			s.fireStory()
		}
		if s.ratio >= s.cfg.Ending.ApproachRatio && !seq.Ending() {
			s.enterApproach()
		}
	}

	if seq.Ending() {
		s.sink.SetEngineVolume(0)
		speed = s.runEnding(dt, scale, speed)
	} else {
		s.sink.SetEngineVolume(speed)
	}
	s.speed = speed

	if seq.Phase != PhaseJoyride || seq.JoyrideTimer > s.cfg.Ending.JoyrideCoast {
		s.distance += (speed + s.weather.X*10) * scale
		s.score += speed * 0.1 * scale
	}

	if s.level != s.theme {
		s.sink.PlayLevelTheme(s.level)
		s.theme = s.level
	}

	s.trailTimer += dt
	if s.trailTimer > 0.1 {
		s.trailTimer = 0
		s.Particles.Burst(p.X, p.Y+20, ParticleTrail, 1, core.ColorWhite)
	}

	if !seq.Ending() {
		p.Integrate(scale, s.weather.Y)
	}
	p.ClampToPlayArea()
	p.TickBuffs(dt)

	s.Sky.DriftClouds(speed, scale)
	s.Terrain.Advance(speed * scale)

	if !seq.Ending() {
		s.spawn(level, scale)
	}
	s.Pools.Advance(speed, level.ObstacleSpeed, scale)
	s.resolveCollisions()
	s.Pools.Compact()

	s.Particles.Update(scale)
	if s.shake > 0 {
		s.shake *= math.Pow(s.cfg.Frame.ShakeDecay, scale)
	}

	s.trackMission(dt)
	s.expireTimers()
	if s.Lost() {
		s.publish()
		return
	}
	s.maybePublish(dt)
}

// selectLevel pins the story level and derives the endless one.
func (s *Session) selectLevel() {
	if s.mode == ModeStory {
		s.level = s.startLevel
		return
	}
	idx := LevelIndex(s.cfg.Thresholds, EffectivePercent(s.ratio))
	if idx >= len(s.cfg.Levels) {
		idx = len(s.cfg.Levels) - 1
	}
	if idx != s.level {
		s.level = idx
		s.mission = newMission(s.cfg.Levels[idx])
	}
	if idx > s.maxReached {
		s.maxReached = idx
		if s.hooks.OnLevel != nil {
			s.hooks.OnLevel(idx)
		}
	}
}

func (s *Session) spawn(level config.LevelConfig, scale float64) {
	sp := s.cfg.Spawn
	mul := s.difficulty.SpawnMultiplier(level)
	if s.rng.Float64() < sp.ObstacleRate*mul*scale {
		s.Pools.SpawnObstacle(level)
	}
	if s.rng.Float64() < sp.PowerupRate*mul*scale {
		s.Pools.SpawnPowerup()
	}
	if s.rng.Float64() < sp.LetterRate*mul*scale {
		s.spawnWish()
	}
}

// spawnWish adds a random letter. Sad wishes replace everything else
// while stability is low.
func (s *Session) spawnWish() {
	story := s.cfg.Story
	pick := func(pool []string) string {
		if len(pool) == 0 {
			return ""
		}
		return pool[s.rng.Intn(len(pool))]
	}
	if s.Stability.Value() < s.cfg.Stability.SadBelow {
		s.Pools.AddLetter(pick(story.SadWishes), LetterSad)
		return
	}
	roll := s.rng.Float64()
	switch {
	case roll < s.cfg.Spawn.GoldenChance:
		s.Pools.AddLetter(pick(story.Wishes), LetterGolden)
	case roll < s.cfg.Spawn.GoldenChance+s.cfg.Spawn.VillainChance && len(story.Villain) > 0:
		s.Pools.AddLetter(pick(story.Villain), LetterVillain)
	default:
		s.Pools.AddLetter(pick(story.Wishes), LetterNormal)
	}
}

// fireStory runs the progress-keyed story tables. Each entry fires once.
func (s *Session) fireStory() {
	story := s.cfg.Story
	for _, m := range story.Moments {
		if s.ratio >= m.Progress && once(s.Seq.moments, m.ID) {
			s.dialogue = &Dialogue{ID: m.ID, Speaker: m.Speaker, Text: m.Text}
			s.schedule.Arm(s.clock, s.cfg.Frame.DialogueTTL, SlotDialogue)
		}
	}
	for _, lm := range story.Landmarks {
		if s.ratio >= lm.Progress && once(s.Seq.landmarks, lm.Kind) {
			s.Pools.AddLandmark(lm.Kind, lm.Name)
		}
	}
	for i, nl := range story.Letters {
		if s.ratio >= nl.Progress && once(s.Seq.letters, i) {
			s.Pools.AddLetter(nl.Message, LetterStabilizer)
		}
	}
}

func (s *Session) enterApproach() {
	s.Seq.Phase = PhaseApproach
	s.Player.ForceInvincible()
	if s.level == s.cfg.LastLevel() && once(s.Seq.landmarks, LandmarkFinalHouse) {
		s.Pools.AddLandmark(LandmarkFinalHouse, s.finalHouseName())
	}
	if s.mission.Type == MissionSurvive {
		s.completeMission(s.mission.Target)
	}
}

func (s *Session) finalHouseName() string {
	for _, lm := range s.cfg.Story.Landmarks {
		if lm.Kind == LandmarkFinalHouse {
			return lm.Name
		}
	}
	return "Home"
}

// runEnding drives the approach and joyride phases and returns the
// forward speed for this tick.
func (s *Session) runEnding(dt, scale, speed float64) float64 {
	seq := s.Seq
	end := s.cfg.Ending
	p := s.Player
	last := s.level == s.cfg.LastLevel()

	if seq.Phase == PhaseJoyride {
		speed = s.difficulty.BaseSpeed() * end.JoyrideSpeed
		seq.JoyrideTimer -= dt
		t := s.clock / end.BobPeriod
		p.Pose(end.BobCenter+math.Sin(t)*end.BobAmplitude, math.Sin(t)*end.BobTilt)
		if seq.JoyrideTimer <= 0 {
			s.finish(last)
		}
		return speed
	}

	p.EaseTo(end.ApproachAltitude, end.ApproachEasing, scale)
	if seq.giftDropped {
		return speed
	}
	if last {
		house, ok := s.Pools.HasLandmark(LandmarkFinalHouse)
		if ok && house.X >= s.cfg.World.Width/2 {
			return speed
		}
		s.Particles.Burst(p.X, p.Y, ParticleGlow, end.FinalGlow, core.ColorGold)
		s.flash = end.FinalFlash
	}
	seq.giftDropped = true
	s.schedule.Arm(s.clock, end.JoyrideDelay, SlotJoyride)
	return speed
}

func (s *Session) startJoyride() {
	if s.Seq.Phase != PhaseApproach {
		return
	}
	s.Seq.Phase = PhaseJoyride
	if s.level == s.cfg.LastLevel() {
		s.Seq.JoyrideTimer = s.cfg.Ending.JoyrideFinal
	} else {
		s.Seq.JoyrideTimer = s.cfg.Ending.JoyrideDuration
	}
}

func (s *Session) finish(last bool) {
	victory := last || s.mode == ModeEndless
	if victory {
		s.Seq.Phase = PhaseVictory
	} else {
		s.Seq.Phase = PhaseLevelComplete
	}
	s.publish()
	if s.hooks.OnWin != nil {
		s.hooks.OnWin(Outcome{Mode: s.mode, Level: s.level, Victory: victory, Score: s.Score()})
	}
}

func (s *Session) trackMission(dt float64) {
	switch s.mission.Type {
	case MissionLowAltitude:
		if s.Player.CenterY() > s.cfg.World.Height/2 {
			s.completeMission(dt)
		}
	case MissionMaintainSpeed:
		if s.Player.SpeedActive() {
			s.completeMission(dt)
		}
	}
}

func (s *Session) completeMission(v float64) {
	if s.mission.Add(v) && s.hooks.OnMission != nil {
		s.hooks.OnMission(s.mission)
	}
}

func (s *Session) expireTimers() {
	for _, t := range s.schedule.Due(s.clock) {
		switch t.Slot {
		case SlotDialogue:
			s.dialogue = nil
		case SlotWish:
			s.wish = nil
		case SlotJoyride:
			s.startJoyride()
		}
	}
}

// Stop silences audio when the session is left.
func (s *Session) Stop() {
	s.sink.SetEngineVolume(0)
	s.sink.StopAll()
}
