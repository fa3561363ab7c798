package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreatePepper loads the pepper stored at path, generating and
// persisting a new random pepper on first run.
func LoadOrCreatePepper(path string) (string, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if pepper := strings.TrimSpace(string(data)); pepper != "" {
			return pepper, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("read pepper file: %w", err)
	}

	buf := make([]byte, keyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(buf)

	if err := writeSecretFile(path, []byte(pepper)); err != nil {
		return "", fmt.Errorf("persist pepper file: %w", err)
	}
	return pepper, nil
}

// writeSecretFile writes data with owner-only permissions, creating the
// parent directory when needed.
func writeSecretFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
