package tokenfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := New(path)

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok, "missing file means unauthenticated, not an error")

	require.NoError(t, store.Save("bearer-abc"))

	tok, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", tok)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Save("first"))
	require.NoError(t, store.Save("second"))

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Clear(), "clearing an absent token is a no-op")

	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-123\n"), 0o600))

	tok, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}
