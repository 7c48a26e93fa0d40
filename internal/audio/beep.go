package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speed at which the engine hum reaches full volume.
const engineFullSpeed = 21.0

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// BeepSink synthesizes every cue on the fly and plays it through the
// system speaker. All methods are safe to call before Init or after a
// failed Init; they simply do nothing.
type BeepSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engine      *beep.Ctrl
	engineVol   *effects.Volume
	hum         *humGenerator
	theme       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

func NewBeepSink(logger *log.Logger) *BeepSink {
	return &BeepSink{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the speaker and starts the mixer. The engine hum starts
// silent.
func (s *BeepSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	s.hum = &humGenerator{sr: sampleRate, freq: 55}
	s.engineVol = &effects.Volume{Streamer: s.hum, Base: 2, Silent: true}
	s.engine = &beep.Ctrl{Streamer: s.engineVol}
	speaker.Play(s.mixer)
	speaker.Lock()
	s.mixer.Add(s.engine)
	speaker.Unlock()
	s.initialized = true
	if s.logger != nil {
		s.logger.Debug("audio ready", "rate", int(sampleRate))
	}
	return nil
}

func (s *BeepSink) add(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *BeepSink) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.add(cueStreamer(c))
}

func (s *BeepSink) PlayPowerup(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	base := 660.0
	switch kind {
	case "speed":
		base = 880
	case "ammo":
		base = 587.33
	case "blast":
		s.add(cueStreamer(CueCrash))
		return
	case "healing":
		base = 523.25
	case "life":
		base = 783.99
	}
	s.add(arpeggio([]float64{base, base * 1.25, base * 1.5}, 70*time.Millisecond))
}

// SetEngineVolume maps forward speed to hum loudness and pitch. Zero
// silences the hum.
func (s *BeepSink) SetEngineVolume(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if speed <= 0 {
		s.engineVol.Silent = true
		return
	}
	level := math.Min(speed/engineFullSpeed, 1)
	s.engineVol.Silent = false
	s.engineVol.Volume = math.Log2(0.05+0.25*level)
	s.hum.freq = 45 + 40*level
}

// PlayLevelTheme replaces the running drone with the chord for level.
func (s *BeepSink) PlayLevelTheme(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	if s.theme != nil {
		// A Ctrl without a streamer reports drained and leaves the mixer.
		s.theme.Streamer = nil
	}
	s.theme = &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: newDrone(sampleRate, themeRoots[level%len(themeRoots)]),
		Base:     2,
		Volume:   -4,
	}}
	s.mixer.Add(s.theme)
	speaker.Unlock()
}

var themeRoots = []float64{130.81, 110.00, 98.00, 87.31, 73.42}

// PlayEndingMusic plays a short rising fanfare over whatever is running.
func (s *BeepSink) PlayEndingMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.add(arpeggio([]float64{523.25, 659.25, 783.99, 1046.50, 783.99, 1046.50}, 180*time.Millisecond))
}

func (s *BeepSink) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.engineVol.Silent = true
	if s.theme != nil {
		s.theme.Streamer = nil
		s.theme = nil
	}
	s.mixer.Clear()
	s.mixer.Add(s.engine)
	speaker.Unlock()
}

// Close stops playback. The speaker itself stays open for the process.
func (s *BeepSink) Close() {
	s.StopAll()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.engine.Paused = true
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueJump:
		return shaped(NewOscillator(392, 90*time.Millisecond, WaveSquare, sampleRate), 90*time.Millisecond, 0.25)
	case CueShoot:
		return shaped(NewOscillator(0, 60*time.Millisecond, WaveNoise, sampleRate), 60*time.Millisecond, 0.2)
	case CueCrash:
		return beep.Mix(
			shaped(NewOscillator(90, 300*time.Millisecond, WaveSaw, sampleRate), 300*time.Millisecond, 0.35),
			shaped(NewOscillator(0, 200*time.Millisecond, WaveNoise, sampleRate), 200*time.Millisecond, 0.3),
		)
	case CueCollectWish:
		return arpeggio([]float64{987.77, 1318.51}, 80*time.Millisecond)
	case CueHeal:
		return arpeggio([]float64{523.25, 659.25, 783.99}, 90*time.Millisecond)
	case CueLowStamina:
		return beep.Seq(
			shaped(NewOscillator(220, 100*time.Millisecond, WaveSquare, sampleRate), 100*time.Millisecond, 0.2),
			shaped(NewOscillator(165, 140*time.Millisecond, WaveSquare, sampleRate), 140*time.Millisecond, 0.2),
		)
	default:
		return beep.Silence(0)
	}
}

func arpeggio(freqs []float64, step time.Duration) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sampleRate, f)
		if err != nil {
			continue
		}
		notes = append(notes, shaped(beep.Take(sampleRate.N(step), tone), step, 0.3))
	}
	return beep.Seq(notes...)
}

// shaped applies a linear fade-out across d and scales to gain.
func shaped(s beep.Streamer, d time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			env := gain
			if total > 0 {
				env *= 1 - float64(pos)/float64(total)
				if env < 0 {
					env = 0
				}
			}
			samples[i][0] *= env
			samples[i][1] *= env
			pos++
		}
		return n, ok
	})
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite streamer of the given wave shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := waveValue(o.wave, o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveValue(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// humGenerator is an endless low engine tone with a slow wobble.
type humGenerator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	pos   int
}

func (g *humGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		wobble := 1 + 0.03*math.Sin(2*math.Pi*3*t)
		v := 0.6*math.Sin(2*math.Pi*g.phase) + 0.4*waveValue(WaveSaw, g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.phase += g.freq * wobble / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *humGenerator) Err() error { return nil }

// droneGenerator is an endless root-fifth-octave pad.
type droneGenerator struct {
	sr     beep.SampleRate
	root   float64
	phases [3]float64
	pos    int
}

func newDrone(sr beep.SampleRate, root float64) *droneGenerator {
	return &droneGenerator{sr: sr, root: root}
}

func (g *droneGenerator) Stream(samples [][2]float64) (int, bool) {
	ratios := [3]float64{1, 1.5, 2}
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		swell := 0.5 + 0.5*math.Sin(2*math.Pi*0.125*t)
		v := 0.0
		for k, r := range ratios {
			v += math.Sin(2*math.Pi*g.phases[k]) / 3
			g.phases[k] += g.root * r / float64(g.sr)
			g.phases[k] -= math.Floor(g.phases[k])
		}
		v *= 0.3 + 0.2*swell
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error { return nil }
