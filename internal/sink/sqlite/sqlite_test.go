package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefkit/prefsync/internal/prefs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "preferences.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_SetAndGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetBoolean("AutoSave", true))
	require.NoError(t, store.SetInteger("FontSize", 14))
	require.NoError(t, store.SetColor("BackgroundColor", prefs.Color{R: 255, G: 0, B: 0}))

	b, err := store.Boolean("AutoSave")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := store.Integer("FontSize")
	require.NoError(t, err)
	assert.Equal(t, int64(14), i)

	c, err := store.Color("BackgroundColor")
	require.NoError(t, err)
	assert.Equal(t, prefs.Color{R: 255, G: 0, B: 0}, c)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStore_Upsert(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetInteger("TabWidth", 4))
	require.NoError(t, store.SetInteger("TabWidth", 8))

	v, err := store.Integer("TabWidth")
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "upsert must not create duplicate rows")
}

func TestStore_MissingPreference(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Boolean("NeverSet")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_KindMismatch(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetBoolean("AutoSave", true))

	// The same name read back as a different kind is not found.
	_, err := store.Integer("AutoSave")
	assert.ErrorIs(t, err, ErrNotFound)
}
