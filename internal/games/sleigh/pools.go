package sleigh

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
)

// Weather types named in the level table.
const (
	WeatherClear      = "CLEAR"
	WeatherSnowstorm  = "SNOWSTORM"
	WeatherWind       = "WIND_CORRIDOR"
	WeatherTurbulence = "TURBULENCE"
)

// Pools holds the five live-entity collections. Members are stored by
// value and compacted in place once per tick.
type Pools struct {
	Obstacles   []Obstacle
	Powerups    []Powerup
	Letters     []Letter
	Landmarks   []Landmark
	Projectiles []Projectile

	cfg    *config.SleighConfig
	rng    *rand.Rand
	nextID int
}

func NewPools(cfg *config.SleighConfig, rng *rand.Rand) *Pools {
	return &Pools{cfg: cfg, rng: rng}
}

func (p *Pools) id() int {
	p.nextID++
	return p.nextID
}

// ObstacleKinds returns the allow-list for a level. Snowstorm wins over
// a dark level, which wins over wind.
func ObstacleKinds(level config.LevelConfig) []ObstacleKind {
	switch {
	case level.Weather == WeatherSnowstorm:
		return []ObstacleKind{ObstacleSnowman, ObstacleCloud, ObstacleIceSpike}
	case level.LightsOut:
		return []ObstacleKind{ObstacleBuilding, ObstacleBrokenGarland}
	case level.Weather == WeatherWind:
		return []ObstacleKind{ObstacleCloud, ObstacleBird}
	default:
		return []ObstacleKind{ObstacleTree, ObstacleBird}
	}
}

func (p *Pools) spawnX() float64 {
	return p.cfg.World.Width + p.cfg.World.SpawnMargin
}

// SpawnObstacle adds an obstacle of a kind drawn from the level allow-list.
func (p *Pools) SpawnObstacle(level config.LevelConfig) *Obstacle {
	kinds := ObstacleKinds(level)
	return p.AddObstacle(kinds[p.rng.Intn(len(kinds))])
}

// AddObstacle places an obstacle of the given kind at the spawn edge.
func (p *Pools) AddObstacle(kind ObstacleKind) *Obstacle {
	w, h := 60.0, 80.0
	if kind == ObstacleBuilding {
		w, h = 100, 200
	}
	y := p.cfg.World.Height - p.cfg.Spawn.GroundAnchor
	if kind.Floating() {
		y = p.rng.Float64() * (p.cfg.World.Height - p.cfg.Spawn.FloatBand)
	}
	p.Obstacles = append(p.Obstacles, Obstacle{
		Entity:       Entity{Box: core.Box{X: p.spawnX(), Y: y, W: w, H: h}, ID: p.id()},
		Kind:         kind,
		Destructible: kind.Destructible(),
	})
	return &p.Obstacles[len(p.Obstacles)-1]
}

func (p *Pools) pickupY() float64 {
	return p.rng.Float64()*(p.cfg.World.Height-p.cfg.Spawn.PickupBand) + p.cfg.Spawn.PickupTop
}

// SpawnPowerup adds a powerup of a uniformly drawn kind.
func (p *Pools) SpawnPowerup() *Powerup {
	return p.AddPowerup(AllPowerups[p.rng.Intn(len(AllPowerups))])
}

func (p *Pools) AddPowerup(kind PowerupKind) *Powerup {
	p.Powerups = append(p.Powerups, Powerup{
		Entity: Entity{Box: core.Box{X: p.spawnX(), Y: p.pickupY(), W: 40, H: 40}, ID: p.id()},
		Kind:   kind,
		Phase:  p.rng.Float64() * 2 * math.Pi,
	})
	return &p.Powerups[len(p.Powerups)-1]
}

// AddLetter places a letter at the spawn edge.
func (p *Pools) AddLetter(message string, variant LetterVariant) *Letter {
	p.Letters = append(p.Letters, Letter{
		Entity:  Entity{Box: core.Box{X: p.spawnX(), Y: p.pickupY(), W: 40, H: 30}, ID: p.id()},
		Message: message,
		Variant: variant,
	})
	return &p.Letters[len(p.Letters)-1]
}

// AddLandmark places a set piece just past the right edge.
func (p *Pools) AddLandmark(kind, name string) *Landmark {
	p.Landmarks = append(p.Landmarks, Landmark{
		Entity: Entity{Box: core.Box{
			X: p.cfg.World.Width + 200,
			Y: p.cfg.World.Height - 350,
			W: 250,
			H: 400,
		}, ID: p.id()},
		Kind: kind,
		Name: name,
	})
	return &p.Landmarks[len(p.Landmarks)-1]
}

// AddProjectile fires a snowball from (x, y).
func (p *Pools) AddProjectile(x, y float64) *Projectile {
	size := p.cfg.Projectile.Size
	p.Projectiles = append(p.Projectiles, Projectile{
		Entity: Entity{Box: core.Box{X: x, Y: y, W: size, H: size}, ID: p.id()},
		VX:     p.cfg.Projectile.Speed,
	})
	return &p.Projectiles[len(p.Projectiles)-1]
}

// Advance scrolls every pool and marks members that left the world.
func (p *Pools) Advance(speed, obstacleSpeed, scale float64) {
	sp := p.cfg.Spawn
	for i := range p.Obstacles {
		o := &p.Obstacles[i]
		o.X -= speed * obstacleSpeed * scale
		if o.Right() < sp.ObstacleCull {
			o.Dead = true
		}
	}
	for i := range p.Powerups {
		u := &p.Powerups[i]
		u.X -= speed * scale
		u.Phase += sp.PowerupBobStep * scale
		u.Y += math.Sin(u.Phase) * sp.PowerupBobAmp * scale
		if u.Right() < sp.PickupCull {
			u.Dead = true
		}
	}
	for i := range p.Letters {
		l := &p.Letters[i]
		l.X -= speed * sp.LetterSpeed * scale
		l.Phase += sp.LetterBobStep * scale
		l.Y += math.Sin(l.Phase) * sp.LetterBobAmp * scale
		if l.Right() < sp.PickupCull {
			l.Dead = true
		}
	}
	for i := range p.Landmarks {
		m := &p.Landmarks[i]
		m.X -= speed * sp.LandmarkSpeed * scale
		if m.Right() < sp.LandmarkCull {
			m.Dead = true
		}
	}
	limit := p.cfg.Projectile.Trail
	for i := range p.Projectiles {
		pr := &p.Projectiles[i]
		pr.X += pr.VX * scale
		pr.Trail = append(pr.Trail, Point{X: pr.X, Y: pr.Y})
		if over := len(pr.Trail) - limit; over > 0 {
			pr.Trail = append(pr.Trail[:0], pr.Trail[over:]...)
		}
		if pr.X > p.cfg.World.Width {
			pr.Dead = true
		}
	}
}

// ClearObstacles marks every live obstacle dead.
func (p *Pools) ClearObstacles() int {
	n := 0
	for i := range p.Obstacles {
		if !p.Obstacles[i].Dead {
			p.Obstacles[i].Dead = true
			n++
		}
	}
	return n
}

// Compact removes dead members from every pool.
func (p *Pools) Compact() {
	p.Obstacles = compact(p.Obstacles)
	p.Powerups = compact(p.Powerups)
	p.Letters = compact(p.Letters)
	p.Landmarks = compact(p.Landmarks)
	p.Projectiles = compact(p.Projectiles)
}

// HasLandmark reports whether a live landmark of kind exists.
func (p *Pools) HasLandmark(kind string) (Landmark, bool) {
	for _, m := range p.Landmarks {
		if m.Kind == kind && !m.Dead {
			return m, true
		}
	}
	return Landmark{}, false
}

type mortal interface {
	isDead() bool
}

func compact[T mortal](xs []T) []T {
	out := xs[:0]
	for _, x := range xs {
		if !x.isDead() {
			out = append(out, x)
		}
	}
	clear(xs[len(out):])
	return out
}
