// Package progress tracks meta-progress across sessions: the highest
// unlocked level and a few flat feature flags, stored in a key-value store.
package progress

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/vovakirdan/sleighride/internal/storage"
)

// Storage keys. Values are plain strings.
const (
	KeyVersion       = "sleigh_ride_version"
	KeyMaxLevel      = "sleigh_ride_max_level"
	KeyIntroSeen     = "sleigh_ride_intro_seen"
	KeyStoryComplete = "sleigh_ride_story_complete"
)

// Version is the current progress schema version.
// A stored version that differs resets the flags.
const Version = "1.0.1"

// ErrNotFound is returned by KV.Get for missing keys.
var ErrNotFound = storage.ErrNotFound

// KV is a string key-value store.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryKV is an in-memory KV, used when no database is available and in tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// State is the meta-progress read at session start.
type State struct {
	MaxLevel      int
	IntroSeen     bool
	StoryComplete bool
}

// Tracker reads and writes meta-progress.
type Tracker struct {
	kv        KV
	lastLevel int
	state     State
}

// NewTracker creates a tracker for a game with lastLevel as its final level index.
func NewTracker(kv KV, lastLevel int) *Tracker {
	return &Tracker{kv: kv, lastLevel: lastLevel}
}

// Load reads the stored flags. A missing or outdated version stamp resets
// them and writes the current version.
func (t *Tracker) Load() (State, error) {
	t.state = State{}

	version, err := t.kv.Get(KeyVersion)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return t.state, fmt.Errorf("progress: %w", err)
	}
	if version != Version {
		if err := t.reset(); err != nil {
			return t.state, err
		}
		return t.state, nil
	}

	maxLevel, err := t.get(KeyMaxLevel)
	if err != nil {
		return t.state, err
	}
	if maxLevel != "" {
		n, convErr := strconv.Atoi(maxLevel)
		if convErr != nil {
			return t.state, fmt.Errorf("progress: bad %s %q: %w", KeyMaxLevel, maxLevel, convErr)
		}
		t.state.MaxLevel = min(max(n, 0), t.lastLevel)
	}

	introSeen, err := t.get(KeyIntroSeen)
	if err != nil {
		return t.state, err
	}
	t.state.IntroSeen = introSeen == "true"

	storyComplete, err := t.get(KeyStoryComplete)
	if err != nil {
		return t.state, err
	}
	t.state.StoryComplete = storyComplete == "true"

	return t.state, nil
}

// Reset clears all progress.
func (t *Tracker) Reset() error {
	t.state = State{}
	return t.reset()
}

func (t *Tracker) reset() error {
	for _, kv := range [][2]string{
		{KeyVersion, Version},
		{KeyMaxLevel, "0"},
		{KeyIntroSeen, "false"},
		{KeyStoryComplete, "false"},
	} {
		if err := t.kv.Set(kv[0], kv[1]); err != nil {
			return fmt.Errorf("progress: reset: %w", err)
		}
	}
	return nil
}

// State returns the last loaded or written state.
func (t *Tracker) State() State {
	return t.state
}

// Unlocked reports whether a level can be selected in story mode.
func (t *Tracker) Unlocked(level int) bool {
	return level >= 0 && level <= t.state.MaxLevel
}

// RecordWin updates progress after a completed level.
// Winning the highest unlocked level unlocks the next one; winning the
// final level in story mode marks the story complete.
func (t *Tracker) RecordWin(level int, story bool) error {
	if level >= t.state.MaxLevel && t.state.MaxLevel < t.lastLevel {
		t.state.MaxLevel++
		if err := t.kv.Set(KeyMaxLevel, strconv.Itoa(t.state.MaxLevel)); err != nil {
			return fmt.Errorf("progress: record win: %w", err)
		}
	}
	if story && level == t.lastLevel {
		t.state.StoryComplete = true
		if err := t.kv.Set(KeyStoryComplete, "true"); err != nil {
			return fmt.Errorf("progress: record win: %w", err)
		}
	}
	return nil
}

// ReachLevel raises the stored max level when endless mode enters a new level.
func (t *Tracker) ReachLevel(level int) error {
	if level <= t.state.MaxLevel {
		return nil
	}
	t.state.MaxLevel = min(level, t.lastLevel)
	if err := t.kv.Set(KeyMaxLevel, strconv.Itoa(t.state.MaxLevel)); err != nil {
		return fmt.Errorf("progress: reach level: %w", err)
	}
	return nil
}

// MarkIntroSeen records that the full intro has played once.
func (t *Tracker) MarkIntroSeen() error {
	t.state.IntroSeen = true
	if err := t.kv.Set(KeyIntroSeen, "true"); err != nil {
		return fmt.Errorf("progress: mark intro: %w", err)
	}
	return nil
}

// get returns "" for missing keys.
func (t *Tracker) get(key string) (string, error) {
	v, err := t.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("progress: %w", err)
	}
	return v, nil
}
