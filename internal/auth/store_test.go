package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "token")
	s := NewFileStore(path, "")

	tok, err := s.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken("jwt-1"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	tok, err = s.Token()
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", tok)

	require.NoError(t, s.Clear())
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.NoError(t, s.Clear(), "clearing twice is fine")
}

func TestFileStoreOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0600))

	s := NewFileStore(path, " from-env ")
	tok, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-env", tok)

	// A 401 clears the override as well, falling back to nothing.
	require.NoError(t, s.Clear())
	tok, err = s.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)
}
