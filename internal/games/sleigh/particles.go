package sleigh

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sleighride/internal/core"
)

// ParticleKind selects how a particle is drawn.
type ParticleKind int

const (
	ParticleSnow ParticleKind = iota
	ParticleSparkle
	ParticleDebris
	ParticleSmoke
	ParticleGlow
	ParticleShockwave
	ParticleFire
	ParticleLife
	ParticleDust
	ParticleTrail
)

const (
	particleDecay   = 0.016 // Life lost per logical tick
	particleMaxLife = 1.5
	shockwaveGrowth = 120.0
)

// Particle is a non-interactive visual effect.
type Particle struct {
	Kind    ParticleKind
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Growth  float64
	Life    float64
	MaxLife float64
	Color   core.Color
}

// Alpha fades from 1 to 0 as life runs out.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Particles owns every live particle and drops the oldest past the cap.
type Particles struct {
	list []Particle
	cap  int
	rng  *rand.Rand
}

func NewParticles(limit int, rng *rand.Rand) *Particles {
	return &Particles{cap: limit, rng: rng}
}

// Burst emits count particles flying outward from (x, y).
func (ps *Particles) Burst(x, y float64, kind ParticleKind, count int, c core.Color) {
	for i := 0; i < count; i++ {
		speed := ps.rng.Float64()*5 + 2
		angle := ps.rng.Float64() * 2 * math.Pi
		vy := math.Sin(angle) * speed
		if kind == ParticleDust {
			vy = -ps.rng.Float64() * 3
		}
		p := Particle{
			Kind:    kind,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      vy,
			Radius:  ps.rng.Float64()*4 + 2,
			Life:    ps.rng.Float64() + 0.5,
			MaxLife: particleMaxLife,
			Color:   c,
		}
		if kind == ParticleShockwave {
			p.VX, p.VY = 0, 0
			p.Growth = shockwaveGrowth
		}
		ps.list = append(ps.list, p)
	}
	ps.trim()
}

// Explosion is a shockwave ring with fire, smoke and glow.
func (ps *Particles) Explosion(x, y float64) {
	ps.Burst(x, y, ParticleShockwave, 1, core.ColorWhite)
	ps.Burst(x, y, ParticleFire, 15, core.ColorBrightRed)
	ps.Burst(x, y, ParticleSmoke, 10, core.ColorSlate)
	ps.Burst(x, y, ParticleGlow, 5, core.ColorOrange)
}

// Update moves particles, decays their life and drops the dead ones.
func (ps *Particles) Update(scale float64) {
	alive := ps.list[:0]
	for _, p := range ps.list {
		p.X += p.VX * scale
		p.Y += p.VY * scale
		p.Life -= particleDecay * scale
		p.Radius += p.Growth * particleDecay * scale
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.list = alive
}

func (ps *Particles) trim() {
	if over := len(ps.list) - ps.cap; ps.cap > 0 && over > 0 {
		ps.list = append(ps.list[:0], ps.list[over:]...)
	}
}

func (ps *Particles) Len() int { return len(ps.list) }

// All returns the live particles. The slice must not be retained.
func (ps *Particles) All() []Particle { return ps.list }
