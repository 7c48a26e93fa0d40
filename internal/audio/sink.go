// Package audio turns game sound events into synthesized playback.
package audio

import "sync"

// Cue is a fire-and-forget sound event raised by the simulation.
type Cue int

const (
	CueJump Cue = iota
	CueShoot
	CueCrash
	CueCollectWish
	CueHeal
	CueLowStamina
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueShoot:
		return "shoot"
	case CueCrash:
		return "crash"
	case CueCollectWish:
		return "collect_wish"
	case CueHeal:
		return "heal"
	case CueLowStamina:
		return "low_stamina"
	default:
		return "unknown"
	}
}

// Sink receives semantic audio events. Implementations must not block
// the caller; nothing returned from a Sink is consumed by the game.
type Sink interface {
	Play(c Cue)
	PlayPowerup(kind string)
	SetEngineVolume(speed float64)
	PlayLevelTheme(level int)
	PlayEndingMusic()
	StopAll()
}

// NullSink discards every event.
type NullSink struct{}

func (NullSink) Play(Cue)                {}
func (NullSink) PlayPowerup(string)      {}
func (NullSink) SetEngineVolume(float64) {}
func (NullSink) PlayLevelTheme(int)      {}
func (NullSink) PlayEndingMusic()        {}
func (NullSink) StopAll()                {}

// Event is one call recorded by a Recorder.
type Event struct {
	Name  string
	Arg   string
	Value float64
}

// Recorder keeps every event in memory. Used by tests and by the
// headless benchmark path.
type Recorder struct {
	mu           sync.Mutex
	events       []Event
	EngineVolume float64
	Theme        int
}

func NewRecorder() *Recorder {
	return &Recorder{Theme: -1}
}

func (r *Recorder) push(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *Recorder) Play(c Cue) { r.push(Event{Name: c.String()}) }

func (r *Recorder) PlayPowerup(kind string) {
	r.push(Event{Name: "powerup", Arg: kind})
}

func (r *Recorder) SetEngineVolume(speed float64) {
	r.mu.Lock()
	r.EngineVolume = speed
	r.mu.Unlock()
}

func (r *Recorder) PlayLevelTheme(level int) {
	r.mu.Lock()
	r.Theme = level
	r.mu.Unlock()
	r.push(Event{Name: "theme", Value: float64(level)})
}

func (r *Recorder) PlayEndingMusic() { r.push(Event{Name: "ending"}) }

func (r *Recorder) StopAll() {
	r.mu.Lock()
	r.EngineVolume = 0
	r.mu.Unlock()
	r.push(Event{Name: "stop"})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events with the given name were recorded.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = r.events[:0]
	r.mu.Unlock()
}
