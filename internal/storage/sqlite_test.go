package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, statErr := os.Stat(dbPath)
	assert.NoError(t, statErr, "database file should be created with parent directories")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveRun(Run{GameID: "sleigh", Score: score})
		require.NoError(t, err)
	}
	_, err := store.SaveRun(Run{GameID: "sleigh_endless", Score: 500})
	require.NoError(t, err)

	scores, err := store.TopScores("sleigh", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)

	endless, err := store.TopScores("sleigh_endless", 10)
	require.NoError(t, err)
	require.Len(t, endless, 1)
	assert.Equal(t, 500, endless[0].Score)
}

func TestStoreRunDetails(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{GameID: "sleigh", Score: 900, Level: 4, Wishes: 12, Won: true})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{GameID: "sleigh", Score: 300, Level: 2, Wishes: 3})
	require.NoError(t, err)

	scores, err := store.TopScores("sleigh", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, Run{GameID: "sleigh", Score: 900, Level: 4, Wishes: 12, Won: true}, scores[0].Run)
	assert.False(t, scores[1].Won)
	assert.Equal(t, 2, scores[1].Level)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		_, err := store.SaveRun(Run{GameID: "sleigh", Score: i*10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("sleigh", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 150, scores[0].Score)

	scores, err = store.TopScores("sleigh", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit defaults to 10")
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("sleigh")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	_, _ = store.SaveRun(Run{GameID: "sleigh", Score: 42})
	_, _ = store.SaveRun(Run{GameID: "sleigh", Score: 7})
	high, err = store.HighScore("sleigh")
	require.NoError(t, err)
	assert.Equal(t, 42, high)

	require.NoError(t, store.ClearScores("sleigh"))
	scores, err := store.TopScores("sleigh", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.SaveRun(Run{GameID: "sleigh", Score: 100, Level: 1, Wishes: 4})
	_, _ = store.SaveRun(Run{GameID: "sleigh", Score: 300, Level: 3, Wishes: 9, Won: true})

	stats, err := store.GetGameStats("sleigh")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.EqualValues(t, 400, stats.TotalScore)
	assert.Equal(t, 3, stats.BestLevel)
	assert.Equal(t, 13, stats.TotalWishes)
	assert.Equal(t, 1, stats.Wins)
	assert.False(t, stats.LastPlayed.IsZero())

	empty, err := store.GetGameStats("nothing")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("sleigh_ride_max_level")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("sleigh_ride_max_level", "2"))
	v, err := store.Get("sleigh_ride_max_level")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	require.NoError(t, store.Set("sleigh_ride_max_level", "3"))
	v, err = store.Get("sleigh_ride_max_level")
	require.NoError(t, err)
	assert.Equal(t, "3", v, "Set replaces the previous value")

	require.NoError(t, store.Delete("sleigh_ride_max_level"))
	_, err = store.Get("sleigh_ride_max_level")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete("never_set"))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("sleigh_ride_intro_seen", "true"))
	_, err = store.SaveRun(Run{GameID: "sleigh", Score: 77})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get("sleigh_ride_intro_seen")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
	high, err := reopened.HighScore("sleigh")
	require.NoError(t, err)
	assert.Equal(t, 77, high)
}
