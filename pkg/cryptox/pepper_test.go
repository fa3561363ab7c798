package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreatePepper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	pepper, err := LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.NotEmpty(t, pepper)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.Equal(t, pepper, again, "pepper must be stable across restarts")
}

func TestLoadOrCreatePepper_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("fixed-pepper\n"), 0o600))

	pepper, err := LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.Equal(t, "fixed-pepper", pepper)
}
