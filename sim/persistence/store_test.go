package persistence

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/hoopsim/sim/internal/testutil"
)

func TestSeal_RoundTripAndWrongKey(t *testing.T) {
	plain := []byte(`{"season_year":2025}`)

	blob, err := Seal(plain, "secret")
	require.NoError(t, err)
	assert.False(t, bytes.Contains(blob, plain))

	got, err := Unseal(blob, "secret")
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	_, err = Unseal(blob, "other")
	assert.ErrorIs(t, err, ErrDecrypt)
	_, err = Unseal(blob[:4], "secret")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestSeal_FreshNonceEachTime(t *testing.T) {
	a, err := Seal([]byte("x"), "k")
	require.NoError(t, err)
	b, err := Seal([]byte("x"), "k")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStore(dir, "")

	t.Run("missing slot", func(t *testing.T) {
		_, _, err := st.Load("1", nil)
		assert.ErrorIs(t, err, ErrNoSave)
	})

	t.Run("round trip", func(t *testing.T) {
		s := testutil.EvenLeague(4, 60)
		s.GMScore = 77
		require.NoError(t, st.Save("1", s))
		assert.FileExists(t, st.Path("1"))

		got, _, err := st.Load("1", nil)
		require.NoError(t, err)
		assert.Equal(t, 77, got.GMScore)
		assert.Len(t, got.Players, len(s.Players))
	})

	t.Run("wrong key", func(t *testing.T) {
		_, _, err := NewFileStore(dir, "not the key").Load("1", nil)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("legacy plain save", func(t *testing.T) {
		data, err := Encode(testutil.EvenLeague(4, 60))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "save_old.json"), data, 0o644))

		got, _, err := st.Load("old", nil)
		require.NoError(t, err)
		assert.Equal(t, "T01", got.UserTeamID)
	})

	t.Run("bad slot name", func(t *testing.T) {
		assert.Error(t, st.Save("../escape", testutil.EvenLeague(4, 60)))
	})
}

func TestSlotStore(t *testing.T) {
	// GIVEN a fresh database with a controlled clock
	st, err := Open(filepath.Join(t.TempDir(), "saves.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	_, _, err = st.Load("main", nil)
	assert.ErrorIs(t, err, ErrNoSave)

	// WHEN two slots are saved and one is overwritten
	s := testutil.EvenLeague(4, 60)
	require.NoError(t, st.Save("main", s))
	require.NoError(t, st.Save("alt", s))
	s.CurrentDay = 12
	s.GMScore = 300
	require.NoError(t, st.Save("main", s))

	// THEN the listing shows one row per slot, newest first
	slots, err := st.List()
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "main", slots[0].Slot)
	assert.Equal(t, 12, slots[0].CurrentDay)
	assert.Equal(t, 2025, slots[0].SeasonYear)
	assert.Equal(t, "T01", slots[0].UserTeamID)
	assert.True(t, slots[0].SavedAt.After(slots[1].SavedAt))

	got, _, err := st.Load("main", nil)
	require.NoError(t, err)
	assert.Equal(t, 300, got.GMScore)

	// AND deleting works once
	require.NoError(t, st.Delete("alt"))
	assert.ErrorIs(t, st.Delete("alt"), ErrNoSave)
	slots, err = st.List()
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestSlotStore_WrongKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	st, err := Open(path, "alpha")
	require.NoError(t, err)
	require.NoError(t, st.Save("main", testutil.EvenLeague(4, 60)))
	require.NoError(t, st.Close())

	other, err := Open(path, "beta")
	require.NoError(t, err)
	defer other.Close()
	_, _, err = other.Load("main", nil)
	assert.ErrorIs(t, err, ErrDecrypt)
}
