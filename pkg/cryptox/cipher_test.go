package cryptox

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T, secret string) *Cipher {
	t.Helper()
	key, err := LoadOrCreateKey(secret, "")
	require.NoError(t, err)
	c, err := NewCipher(key)
	require.NoError(t, err)
	return c
}

func TestCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "app-secret")

	for _, plain := range []string{"p@ss", "a", "пароль🔒", string(make([]byte, 4096))} {
		token, err := c.Encrypt(plain)
		require.NoError(t, err)
		require.NotEqual(t, plain, token)

		got, ok := c.Decrypt(token)
		require.True(t, ok)
		require.Equal(t, plain, got)
	}
}

func TestCipher_EmptyIsPassthrough(t *testing.T) {
	c := newTestCipher(t, "app-secret")

	token, err := c.Encrypt("")
	require.NoError(t, err)
	require.Empty(t, token)

	got, ok := c.Decrypt("")
	require.True(t, ok)
	require.Empty(t, got)
}

func TestCipher_FreshNonce(t *testing.T) {
	c := newTestCipher(t, "app-secret")

	a, err := c.Encrypt("same")
	require.NoError(t, err)
	b, err := c.Encrypt("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestCipher_DecryptFailures(t *testing.T) {
	c := newTestCipher(t, "app-secret")
	other := newTestCipher(t, "other-secret")

	token, err := c.Encrypt("secret value")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	tests := []struct {
		name  string
		c     *Cipher
		token string
	}{
		{"wrong key", other, token},
		{"tampered", c, tampered},
		{"not base64", c, "!!!not-base64!!!"},
		{"too short", c, base64.RawURLEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.Decrypt(tt.token)
			require.False(t, ok)
			require.Empty(t, got)
		})
	}
}

func TestNewCipher_RejectsBadKey(t *testing.T) {
	_, err := NewCipher([]byte("too-short"))
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestLoadOrCreateKey(t *testing.T) {
	t.Run("secret takes precedence", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key")

		a, err := LoadOrCreateKey("secret", path)
		require.NoError(t, err)
		b, err := LoadOrCreateKey("secret", path)
		require.NoError(t, err)
		require.Len(t, a, KeySize)
		require.Equal(t, a, b)

		_, err = os.Stat(path)
		require.True(t, os.IsNotExist(err), "key file must not be written when a secret is set")
	})

	t.Run("generates and persists key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "key")

		a, err := LoadOrCreateKey("", path)
		require.NoError(t, err)
		require.Len(t, a, KeySize)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		b, err := LoadOrCreateKey("", path)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("empty key file is replaced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(path, []byte(" \n"), 0o600))

		a, err := LoadOrCreateKey("", path)
		require.NoError(t, err)
		require.Len(t, a, KeySize)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, base64.RawURLEncoding.EncodeToString(a), string(data))

		b, err := LoadOrCreateKey("", path)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("rejects corrupt key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(path, []byte("c2hvcnQ"), 0o600))

		_, err := LoadOrCreateKey("", path)
		require.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("requires a source", func(t *testing.T) {
		_, err := LoadOrCreateKey("", "")
		require.ErrorIs(t, err, ErrInvalidKey)
	})
}
