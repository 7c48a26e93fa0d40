package progress

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sleighride/internal/storage"
)

const lastLevel = 4

func TestLoadStampsVersionOnFirstRun(t *testing.T) {
	kv := NewMemoryKV()
	tr := NewTracker(kv, lastLevel)

	st, err := tr.Load()
	require.NoError(t, err)
	assert.Equal(t, State{}, st)

	v, err := kv.Get(KeyVersion)
	require.NoError(t, err)
	assert.Equal(t, Version, v)
}

func TestLoadResetsOutdatedVersion(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVersion, "0.9.0"))
	require.NoError(t, kv.Set(KeyMaxLevel, "3"))
	require.NoError(t, kv.Set(KeyStoryComplete, "true"))

	st, err := NewTracker(kv, lastLevel).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, st.MaxLevel)
	assert.False(t, st.StoryComplete)

	v, _ := kv.Get(KeyMaxLevel)
	assert.Equal(t, "0", v)
}

func TestLoadReadsCurrentVersion(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVersion, Version))
	require.NoError(t, kv.Set(KeyMaxLevel, "9"))
	require.NoError(t, kv.Set(KeyIntroSeen, "true"))

	st, err := NewTracker(kv, lastLevel).Load()
	require.NoError(t, err)
	assert.Equal(t, lastLevel, st.MaxLevel, "stored level is clamped to the level table")
	assert.True(t, st.IntroSeen)
	assert.False(t, st.StoryComplete)
}

func TestLoadRejectsGarbage(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVersion, Version))
	require.NoError(t, kv.Set(KeyMaxLevel, "two"))

	_, err := NewTracker(kv, lastLevel).Load()
	assert.Error(t, err)
}

func TestRecordWinUnlocksNextLevel(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), lastLevel)
	_, err := tr.Load()
	require.NoError(t, err)

	require.NoError(t, tr.RecordWin(0, true))
	assert.Equal(t, 1, tr.State().MaxLevel)
	assert.True(t, tr.Unlocked(1))
	assert.False(t, tr.Unlocked(2))

	// Replaying an earlier level does not unlock anything.
	require.NoError(t, tr.RecordWin(0, true))
	assert.Equal(t, 1, tr.State().MaxLevel)
}

func TestRecordWinFinalLevel(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVersion, Version))
	require.NoError(t, kv.Set(KeyMaxLevel, "4"))
	tr := NewTracker(kv, lastLevel)
	_, err := tr.Load()
	require.NoError(t, err)

	require.NoError(t, tr.RecordWin(lastLevel, true))
	assert.Equal(t, lastLevel, tr.State().MaxLevel, "max level never exceeds the last level")
	assert.True(t, tr.State().StoryComplete)

	v, _ := kv.Get(KeyStoryComplete)
	assert.Equal(t, "true", v)
}

func TestRecordWinEndlessDoesNotCompleteStory(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), lastLevel)
	_, _ = tr.Load()
	require.NoError(t, tr.RecordWin(lastLevel, false))
	assert.False(t, tr.State().StoryComplete)
}

func TestReachLevel(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), lastLevel)
	_, _ = tr.Load()

	require.NoError(t, tr.ReachLevel(2))
	assert.Equal(t, 2, tr.State().MaxLevel)
	require.NoError(t, tr.ReachLevel(1))
	assert.Equal(t, 2, tr.State().MaxLevel, "reaching a lower level keeps the max")
}

func TestMarkIntroSeenPersists(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer store.Close()

	tr := NewTracker(store, lastLevel)
	_, err = tr.Load()
	require.NoError(t, err)
	require.NoError(t, tr.MarkIntroSeen())

	st, err := NewTracker(store, lastLevel).Load()
	require.NoError(t, err)
	assert.True(t, st.IntroSeen)
}

type failingKV struct{}

func (failingKV) Get(string) (string, error) { return "", errors.New("disk on fire") }
func (failingKV) Set(string, string) error   { return errors.New("disk on fire") }

func TestTrackerWrapsStoreErrors(t *testing.T) {
	tr := NewTracker(failingKV{}, lastLevel)
	_, err := tr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "progress:")
	assert.Error(t, tr.MarkIntroSeen())
}
