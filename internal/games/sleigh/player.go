package sleigh

import (
	"math"

	"github.com/vovakirdan/sleighride/internal/config"
	"github.com/vovakirdan/sleighride/internal/core"
)

// JumpKind describes which branch a jump attempt took.
type JumpKind int

const (
	JumpFull      JumpKind = iota // Stamina paid, full impulse
	JumpPenalized                 // Already exhausted, weak impulse
	JumpDegraded                  // Ran out of stamina, became exhausted

	JumpIgnored JumpKind = -1 // Input not accepted in the current phase
)

// Player is the sleigh. All resource changes go through its methods so
// clamping and exhaustion hysteresis live in one place.
type Player struct {
	core.Box
	VY    float64
	Angle float64

	Lives     int
	Snowballs int
	Stamina   float64
	Exhausted bool

	InvincibleTimer float64
	HealingTimer    float64
	SpeedTimer      float64

	forced      bool // Invincibility pinned on by the ending sequence
	wasOnGround bool

	phys     config.PhysicsConfig
	stamina  config.StaminaConfig
	world    config.WorldConfig
	maxLives int
}

// NewPlayer returns a player at the spawn point with full resources.
func NewPlayer(cfg *config.SleighConfig) *Player {
	return &Player{
		Box:       core.Box{X: cfg.Player.X, Y: cfg.Player.Y, W: cfg.Player.Width, H: cfg.Player.Height},
		Lives:     cfg.Player.Lives,
		Snowballs: cfg.Player.Snowballs,
		Stamina:   cfg.Stamina.Max,
		phys:      cfg.Physics,
		stamina:   cfg.Stamina,
		world:     cfg.World,
		maxLives:  cfg.Player.MaxLives,
	}
}

// TryJump applies an upward impulse and charges stamina.
func (p *Player) TryJump() JumpKind {
	if p.Exhausted {
		p.VY = p.phys.JumpStrength * p.stamina.ExhaustedPenalty
		p.Stamina = 0
		return JumpPenalized
	}
	if p.Stamina >= p.stamina.JumpCost {
		p.VY = p.phys.JumpStrength
		p.setStamina(p.Stamina - p.stamina.JumpCost)
		return JumpFull
	}
	p.Exhausted = true
	p.VY = p.phys.JumpStrength * p.stamina.DegradedJump
	p.Stamina = 0
	return JumpDegraded
}

// floorLine is the highest y at which the player rests on the floor.
func (p *Player) floorLine() float64 {
	return p.world.Height - p.world.FloorMargin - p.H
}

// OnGround uses a small tolerance above the floor line.
func (p *Player) OnGround() bool {
	return p.Y >= p.floorLine()-p.world.GroundTolerance
}

// Regenerate refills stamina and clears exhaustion once stamina passes
// the recovery threshold. It returns true on the first grounded tick
// after being airborne.
func (p *Player) Regenerate(scale float64) bool {
	landed := false
	if p.OnGround() {
		landed = !p.wasOnGround
		p.wasOnGround = true
		p.setStamina(p.Stamina + p.stamina.RegenGround*scale)
	} else {
		p.wasOnGround = false
		if p.VY < 0 {
			p.setStamina(p.Stamina + p.stamina.RegenAir*scale)
		}
	}
	if p.Exhausted && p.Stamina >= p.stamina.RecoveryThreshold {
		p.Exhausted = false
	}
	return landed
}

// Integrate applies gravity plus the vertical weather force and eases
// the tilt toward the velocity-derived target.
func (p *Player) Integrate(scale, weatherY float64) {
	p.VY += (p.phys.Gravity + weatherY) * scale
	p.Y += p.VY * scale
	target := core.ClampF(p.VY*p.phys.TiltFactor, -p.phys.TiltClamp, p.phys.TiltClamp)
	p.Angle += (target - p.Angle) * p.phys.TiltDamping * scale
}

// ClampToPlayArea keeps the player between the ceiling and the floor.
func (p *Player) ClampToPlayArea() {
	if p.Bottom() > p.world.Height-p.world.FloorMargin {
		p.Y = p.floorLine()
		p.VY = 0
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}
}

// EaseTo glides toward altitude without vertical velocity.
func (p *Player) EaseTo(altitude, easing, scale float64) {
	p.VY = 0
	p.Y += (altitude - p.Y) * easing * scale
}

// Pose places the player directly, used by scripted flight.
func (p *Player) Pose(y, angle float64) {
	p.Y = y
	p.Angle = angle
}

// TickBuffs counts every buff timer down, floored at zero.
func (p *Player) TickBuffs(dt float64) {
	p.InvincibleTimer = math.Max(0, p.InvincibleTimer-dt)
	p.SpeedTimer = math.Max(0, p.SpeedTimer-dt)
	p.HealingTimer = math.Max(0, p.HealingTimer-dt)
}

// ForceInvincible pins invincibility on for the rest of the session.
func (p *Player) ForceInvincible() {
	p.forced = true
}

func (p *Player) IsInvincible() bool {
	return p.forced || p.InvincibleTimer > 0
}

func (p *Player) SpeedActive() bool {
	return p.SpeedTimer > 0
}

// Crash costs a life and opens the grace window.
func (p *Player) Crash(grace float64) {
	p.Lives = max(0, p.Lives-1)
	p.InvincibleTimer = grace
}

// GainLife adds a life unless already at the cap.
func (p *Player) GainLife() bool {
	if p.Lives >= p.maxLives {
		return false
	}
	p.Lives++
	return true
}

// Heal refills stamina and clears exhaustion.
func (p *Player) Heal(duration float64) {
	p.HealingTimer = duration
	p.Stamina = p.stamina.Max
	p.Exhausted = false
}

func (p *Player) Boost(duration float64) {
	p.SpeedTimer = duration
}

func (p *Player) AddSnowballs(n int) {
	p.Snowballs += n
}

// SpendSnowball takes one snowball if any remain.
func (p *Player) SpendSnowball() bool {
	if p.Snowballs <= 0 {
		return false
	}
	p.Snowballs--
	return true
}

func (p *Player) MaxStamina() float64 {
	return p.stamina.Max
}

func (p *Player) setStamina(v float64) {
	p.Stamina = core.ClampF(v, 0, p.stamina.Max)
}

// Stability is the route stability meter, kept within [0, max].
type Stability struct {
	value float64
	max   float64
}

func NewStability(initial, maxValue float64) Stability {
	return Stability{value: core.ClampF(initial, 0, maxValue), max: maxValue}
}

func (s *Stability) Value() float64 { return s.value }

func (s *Stability) Add(v float64) {
	s.value = core.ClampF(s.value+v, 0, s.max)
}

func (s *Stability) Drain(v float64) {
	s.Add(-v)
}

func (s *Stability) Depleted() bool {
	return s.value <= 0
}
