package sleigh

import (
	"github.com/vovakirdan/sleighride/internal/audio"
	"github.com/vovakirdan/sleighride/internal/core"
)

// collisionsEnabled is false on the story level configured as a
// no-collision zone.
func (s *Session) collisionsEnabled() bool {
	return !(s.mode == ModeStory && s.level == s.cfg.Collision.NoCollisionLevel)
}

func (s *Session) resolveCollisions() {
	s.hitObstacles()
	s.collectPowerups()
	s.collectLetters()
	s.hitWithProjectiles()
}

func (s *Session) hitObstacles() {
	p := s.Player
	pad := s.cfg.Collision.Padding
	for i := range s.Pools.Obstacles {
		o := &s.Pools.Obstacles[i]
		if o.Dead || p.IsInvincible() || !s.collisionsEnabled() {
			continue
		}
		if !p.IntersectsPadded(o.Box, pad) {
			continue
		}
		s.crash()
	}
}

func (s *Session) crash() {
	p := s.Player
	c := s.cfg.Collision
	p.Crash(c.Invincibility)
	s.Stability.Drain(s.cfg.Stability.CrashPenalty)
	s.shake = c.CrashShake
	s.sink.Play(audio.CueCrash)
	s.Particles.Burst(p.X, p.Y, ParticleDebris, 20, core.ColorRed)
	s.Particles.Explosion(p.X+40, p.Y+20)
}

func (s *Session) collectPowerups() {
	p := s.Player
	pad := s.cfg.Collision.Padding
	for i := range s.Pools.Powerups {
		u := &s.Pools.Powerups[i]
		if u.Dead || !p.IntersectsPadded(u.Box, pad) {
			continue
		}
		u.Dead = true
		s.applyPowerup(u.Kind)
		s.sink.PlayPowerup(u.Kind.String())
		c := powerupColor(u.Kind)
		s.Particles.Burst(u.X, u.Y, ParticleSparkle, 20, c)
		s.Particles.Burst(u.X, u.Y, ParticleGlow, 10, c)
		s.popups = append(s.popups, Popup{ID: u.ID, Kind: u.Kind})
	}
}

// applyPowerup grants the flat stability bonus plus the kind's effect.
func (s *Session) applyPowerup(kind PowerupKind) {
	p := s.Player
	pw := s.cfg.Powerups
	s.Stability.Add(s.cfg.Stability.PowerupBonus)

	switch kind {
	case PowerupSpeed:
		p.Boost(pw.SpeedDuration)
	case PowerupAmmo:
		p.AddSnowballs(pw.Ammo)
	case PowerupBlast:
		s.Pools.ClearObstacles()
		s.flash = pw.BlastFlash
		s.shake = pw.BlastShake
		s.sink.Play(audio.CueCrash)
	case PowerupHealing:
		p.Heal(pw.HealingDuration)
		s.Stability.Add(s.cfg.Stability.HealingBonus)
	case PowerupLife:
		if p.GainLife() {
			s.Particles.Burst(p.CenterX(), p.Y, ParticleLife, 10, core.ColorPink)
		}
		s.sink.Play(audio.CueHeal)
	}
}

func (s *Session) collectLetters() {
	p := s.Player
	pad := s.cfg.Collision.Padding
	for i := range s.Pools.Letters {
		l := &s.Pools.Letters[i]
		if l.Dead || !p.IntersectsPadded(l.Box, pad) {
			continue
		}
		l.Dead = true
		s.sink.Play(audio.CueCollectWish)
		s.Particles.Burst(l.X, l.Y, ParticleSparkle, 15, core.ColorYellow)
		s.Particles.Burst(l.X, l.Y, ParticleGlow, 5, core.ColorGold)
		s.Stability.Add(s.cfg.Stability.LetterBonus)
		if l.Variant == LetterGolden {
			s.Stability.Add(s.cfg.Stability.GoldenBonus)
		}
		s.wishes++
		s.wish = &Wish{Message: l.Message, Variant: l.Variant}
		s.schedule.Arm(s.clock, s.cfg.Frame.WishTTL, SlotWish)
		if s.mission.Type == MissionCollect {
			s.completeMission(1)
		}
	}
}

// hitWithProjectiles lets snowballs remove destructible obstacles only.
func (s *Session) hitWithProjectiles() {
	pad := s.cfg.Collision.Padding
	for i := range s.Pools.Projectiles {
		pr := &s.Pools.Projectiles[i]
		for j := range s.Pools.Obstacles {
			o := &s.Pools.Obstacles[j]
			if o.Dead || pr.Dead || !o.Destructible {
				continue
			}
			if !pr.IntersectsPadded(o.Box, pad) {
				continue
			}
			o.Dead = true
			pr.Dead = true
			s.sink.Play(audio.CueCrash)
			s.Particles.Burst(o.CenterX(), o.CenterY(), ParticleDebris, 10, core.ColorWhite)
			s.score += float64(s.cfg.Collision.KillScore)
			s.Stability.Add(s.cfg.Stability.KillBonus)
			s.kills++
			if s.mission.Type == MissionDestroy {
				s.completeMission(1)
			}
		}
	}
}

func powerupColor(k PowerupKind) core.Color {
	switch k {
	case PowerupSpeed:
		return core.ColorCyan
	case PowerupAmmo:
		return core.ColorIce
	case PowerupBlast:
		return core.ColorOrange
	case PowerupHealing:
		return core.ColorGreen
	case PowerupLife:
		return core.ColorPink
	default:
		return core.ColorWhite
	}
}
