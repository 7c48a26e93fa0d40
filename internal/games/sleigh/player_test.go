package sleigh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sleighride/internal/config"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	cfg := config.DefaultSleighConfig()
	return NewPlayer(&cfg)
}

func TestJumpChargesStamina(t *testing.T) {
	p := newTestPlayer(t)
	require.Equal(t, 200.0, p.Stamina)

	kind := p.TryJump()

	assert.Equal(t, JumpFull, kind)
	assert.Equal(t, 190.0, p.Stamina)
	assert.Equal(t, -9.0, p.VY)
	assert.False(t, p.Exhausted)
}

func TestJumpBranches(t *testing.T) {
	tests := []struct {
		name      string
		stamina   float64
		exhausted bool
		want      JumpKind
		wantVY    float64
	}{
		{"full", 50, false, JumpFull, -9},
		{"exactly the cost", 10, false, JumpFull, -9},
		{"degraded", 5, false, JumpDegraded, -7.2},
		{"penalized", 0, true, JumpPenalized, -5.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(t)
			p.Stamina = tt.stamina
			p.Exhausted = tt.exhausted

			assert.Equal(t, tt.want, p.TryJump())
			assert.InDelta(t, tt.wantVY, p.VY, 1e-9)
			assert.GreaterOrEqual(t, p.Stamina, 0.0)
			if tt.want != JumpFull {
				assert.True(t, p.Exhausted)
				assert.Zero(t, p.Stamina)
			}
		})
	}
}

func TestExhaustionHysteresis(t *testing.T) {
	p := newTestPlayer(t)
	p.Stamina = 5
	p.TryJump()
	require.True(t, p.Exhausted)

	p.Y = p.floorLine()
	p.VY = 0
	for i := 0; i < 3; i++ {
		p.Regenerate(1)
		assert.True(t, p.Exhausted, "still exhausted at %.1f", p.Stamina)
	}
	p.Regenerate(1)
	assert.Equal(t, 8.0, p.Stamina)
	assert.False(t, p.Exhausted)
}

func TestRegenerate(t *testing.T) {
	t.Run("ground regen is capped", func(t *testing.T) {
		p := newTestPlayer(t)
		p.Y = p.floorLine()
		for i := 0; i < 10; i++ {
			p.Regenerate(1)
		}
		assert.Equal(t, p.MaxStamina(), p.Stamina)
	})

	t.Run("air regen only while climbing", func(t *testing.T) {
		p := newTestPlayer(t)
		p.Stamina = 100
		p.VY = 2
		p.Regenerate(1)
		assert.Equal(t, 100.0, p.Stamina)

		p.VY = -2
		p.Regenerate(1)
		assert.InDelta(t, 100.3, p.Stamina, 1e-9)
	})

	t.Run("landing reported once", func(t *testing.T) {
		p := newTestPlayer(t)
		p.Regenerate(1)
		p.Y = p.floorLine()
		assert.True(t, p.Regenerate(1))
		assert.False(t, p.Regenerate(1))
	})
}

func TestClampToPlayArea(t *testing.T) {
	p := newTestPlayer(t)
	p.Y = 2000
	p.VY = 12
	p.ClampToPlayArea()
	assert.Equal(t, p.floorLine(), p.Y)
	assert.Zero(t, p.VY)
	assert.True(t, p.OnGround())

	p.Y = -40
	p.VY = -9
	p.ClampToPlayArea()
	assert.Zero(t, p.Y)
	assert.Zero(t, p.VY)
}

func TestLivesAndBuffs(t *testing.T) {
	p := newTestPlayer(t)
	assert.False(t, p.GainLife(), "already at the cap")
	assert.Equal(t, 3, p.Lives)

	p.Crash(2)
	assert.Equal(t, 2, p.Lives)
	assert.True(t, p.IsInvincible())
	assert.True(t, p.GainLife())
	assert.Equal(t, 3, p.Lives)

	p.TickBuffs(5)
	assert.False(t, p.IsInvincible())
	assert.Zero(t, p.InvincibleTimer)

	p.ForceInvincible()
	p.TickBuffs(100)
	assert.True(t, p.IsInvincible())
}

func TestHealClearsExhaustion(t *testing.T) {
	p := newTestPlayer(t)
	p.Stamina = 0
	p.Exhausted = true
	p.Heal(5)
	assert.False(t, p.Exhausted)
	assert.Equal(t, p.MaxStamina(), p.Stamina)
	assert.Equal(t, 5.0, p.HealingTimer)
}

func TestSnowballs(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 3; i++ {
		require.True(t, p.SpendSnowball())
	}
	assert.False(t, p.SpendSnowball())
	assert.Zero(t, p.Snowballs)
	p.AddSnowballs(5)
	assert.Equal(t, 5, p.Snowballs)
}

func TestStabilityBounds(t *testing.T) {
	s := NewStability(100, 100)
	s.Add(20)
	assert.Equal(t, 100.0, s.Value())
	s.Drain(30)
	assert.Equal(t, 70.0, s.Value())
	assert.False(t, s.Depleted())
	s.Drain(150)
	assert.Zero(t, s.Value())
	assert.True(t, s.Depleted())
}
