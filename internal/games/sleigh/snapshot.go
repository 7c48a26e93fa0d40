package sleigh

// HUD is the low-rate view of the session for status displays. It is
// republished every snapshot interval, not every tick.
type HUD struct {
	Lives        int
	MaxLives     int
	Snowballs    int
	Progress     float64 // Percent of the victory distance
	TimeLeft     float64
	Level        int
	LevelName    string
	Score        int
	SpeedTimer   float64
	HealingTimer float64
	Popups       []Popup // Powerups collected since the previous publish
	Dialogue     *Dialogue
	Wish         *Wish
	Wishes       int
	Stamina      float64
	MaxStamina   float64
	Exhausted    bool
	Stability    float64
	Mission      Mission
	Phase        Phase
}

// HUD returns the most recently published status.
func (s *Session) HUD() HUD {
	return s.hud
}

func (s *Session) maybePublish(dt float64) {
	s.hudTimer += dt
	if s.hudTimer < s.cfg.Frame.SnapshotInterval {
		return
	}
	s.hudTimer = 0
	s.publish()
}

// publish copies the live state into the HUD and drains the popup queue.
func (s *Session) publish() {
	p := s.Player
	s.hud = HUD{
		Lives:        p.Lives,
		MaxLives:     s.cfg.Player.MaxLives,
		Snowballs:    p.Snowballs,
		Progress:     s.ratio * 100,
		TimeLeft:     s.timeLeft,
		Level:        s.level,
		LevelName:    s.cfg.Levels[s.level].Name,
		Score:        s.Score(),
		SpeedTimer:   p.SpeedTimer,
		HealingTimer: p.HealingTimer,
		Popups:       s.popups,
		Dialogue:     s.dialogue,
		Wish:         s.wish,
		Wishes:       s.wishes,
		Stamina:      p.Stamina,
		MaxStamina:   p.MaxStamina(),
		Exhausted:    p.Exhausted,
		Stability:    s.Stability.Value(),
		Mission:      s.mission,
		Phase:        s.Seq.Phase,
	}
	s.popups = nil
}

// Snapshot is the complete simulation state reduced to integers, used
// to compare runs. Positions are kept in hundredths of a world unit.
type Snapshot struct {
	Clock     int
	Distance  int
	Score     int
	Level     int
	Phase     int
	Lives     int
	Snowballs int
	Stamina   int
	Stability int
	Exhausted bool
	PlayerY   int
	PlayerVY  int
	Kills     int
	Wishes    int

	// Each member contributes kind, x and y.
	Obstacles   []int
	Powerups    []int
	Letters     []int
	Projectiles []int
	Terrain     []int // Last sample of every layer
}

func fixed(v float64) int {
	return int(v * 100)
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	p := s.Player
	snap := Snapshot{
		Clock:     fixed(s.clock),
		Distance:  fixed(s.distance),
		Score:     s.Score(),
		Level:     s.level,
		Phase:     int(s.Seq.Phase),
		Lives:     p.Lives,
		Snowballs: p.Snowballs,
		Stamina:   fixed(p.Stamina),
		Stability: fixed(s.Stability.Value()),
		Exhausted: p.Exhausted,
		PlayerY:   fixed(p.Y),
		PlayerVY:  fixed(p.VY),
		Kills:     s.kills,
		Wishes:    s.wishes,
	}
	for _, o := range s.Pools.Obstacles {
		snap.Obstacles = append(snap.Obstacles, int(o.Kind), fixed(o.X), fixed(o.Y))
	}
	for _, u := range s.Pools.Powerups {
		snap.Powerups = append(snap.Powerups, int(u.Kind), fixed(u.X), fixed(u.Y))
	}
	for _, l := range s.Pools.Letters {
		snap.Letters = append(snap.Letters, int(l.Variant), fixed(l.X), fixed(l.Y))
	}
	for _, pr := range s.Pools.Projectiles {
		snap.Projectiles = append(snap.Projectiles, 0, fixed(pr.X), fixed(pr.Y))
	}
	for _, layer := range s.Terrain.Layers {
		snap.Terrain = append(snap.Terrain, fixed(layer.Points[len(layer.Points)-1]))
	}
	return snap
}

// Hash folds the snapshot into one number for determinism tests.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(0)
	mix := func(v int) {
		h = h*31 + uint64(int64(v)) //#nosec G115 -- hash computation
	}
	for _, v := range []int{
		snap.Clock, snap.Distance, snap.Score, snap.Level, snap.Phase,
		snap.Lives, snap.Snowballs, snap.Stamina, snap.Stability,
		snap.PlayerY, snap.PlayerVY, snap.Kills, snap.Wishes,
	} {
		mix(v)
	}
	if snap.Exhausted {
		mix(1)
	}
	for _, list := range [][]int{snap.Obstacles, snap.Powerups, snap.Letters, snap.Projectiles, snap.Terrain} {
		mix(len(list))
		for _, v := range list {
			mix(v)
		}
	}
	return h
}
