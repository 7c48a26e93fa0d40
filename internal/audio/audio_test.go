package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeepSinkUninitializedIsNoop(t *testing.T) {
	s := NewBeepSink(nil)
	assert.NotPanics(t, func() {
		s.Play(CueJump)
		s.PlayPowerup("speed")
		s.SetEngineVolume(12)
		s.PlayLevelTheme(3)
		s.PlayEndingMusic()
		s.StopAll()
		s.Close()
	})
}

func TestLevelThemeReplacesDrone(t *testing.T) {
	s := NewBeepSink(nil)
	s.initialized = true

	for level := 0; level < 6; level++ {
		s.PlayLevelTheme(level)
	}
	buf := make([][2]float64, 64)
	s.mixer.Stream(buf)
	assert.Equal(t, 1, s.mixer.Len(), "replaced drones leave the mixer")
	require.NotNil(t, s.theme)
	assert.NotNil(t, s.theme.Streamer)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	var sink Sink = r

	sink.Play(CueJump)
	sink.Play(CueJump)
	sink.PlayPowerup("ammo")
	sink.SetEngineVolume(7)
	sink.PlayLevelTheme(2)

	assert.Equal(t, 2, r.Count("jump"))
	assert.Equal(t, 1, r.Count("powerup"))
	assert.Equal(t, 7.0, r.EngineVolume)
	assert.Equal(t, 2, r.Theme)

	sink.StopAll()
	assert.Zero(t, r.EngineVolume)
	assert.Equal(t, 1, r.Count("stop"))

	r.Reset()
	assert.Empty(t, r.Events())
}

func TestCueString(t *testing.T) {
	tests := []struct {
		cue  Cue
		want string
	}{
		{CueJump, "jump"},
		{CueShoot, "shoot"},
		{CueCrash, "crash"},
		{CueCollectWish, "collect_wish"},
		{CueHeal, "heal"},
		{CueLowStamina, "low_stamina"},
		{Cue(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cue.String())
	}
}

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 50*time.Millisecond, WaveSine, sampleRate)
	n, peak := drain(osc)
	assert.Equal(t, sampleRate.N(50*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.5)
}

func TestCueStreamersAreFiniteAndBounded(t *testing.T) {
	for _, c := range []Cue{CueJump, CueShoot, CueCrash, CueCollectWish, CueHeal, CueLowStamina} {
		n, peak := drain(cueStreamer(c))
		require.Greater(t, n, 0, c.String())
		assert.LessOrEqual(t, peak, 1.0, c.String())
	}
}

func TestHumNeverEnds(t *testing.T) {
	g := &humGenerator{sr: sampleRate, freq: 60}
	buf := make([][2]float64, 1024)
	for i := 0; i < 10; i++ {
		n, ok := g.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
	}
}
