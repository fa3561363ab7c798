package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

var ErrInvalidKey = errors.New("invalid encryption key")

// LoadOrCreateKey resolves the symmetric key used for secret fields.
//
// A non-empty secret is hashed with SHA-256 to form the key. Otherwise the
// key is read from keyFile (base64url), and when that file is missing or
// empty a fresh random key is generated and written there with owner-only
// access.
func LoadOrCreateKey(secret, keyFile string) ([]byte, error) {
	if secret != "" {
		sum := sha256.Sum256([]byte(secret))
		return sum[:], nil
	}

	if keyFile == "" {
		return nil, fmt.Errorf("%w: no secret or key file configured", ErrInvalidKey)
	}
	keyFile = filepath.Clean(keyFile)

	data, err := os.ReadFile(keyFile)
	switch {
	case err == nil:
		encoded := strings.TrimRight(strings.TrimSpace(string(data)), "=")
		if encoded == "" {
			break
		}
		key, err := base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: decode key file: %w", ErrInvalidKey, err)
		}
		if len(key) != KeySize {
			return nil, fmt.Errorf("%w: key file holds %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
		}
		return key, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := writeSecretFile(keyFile, []byte(base64.RawURLEncoding.EncodeToString(key))); err != nil {
		return nil, fmt.Errorf("persist key file: %w", err)
	}
	return key, nil
}

// Cipher provides reversible authenticated encryption for secret fields
// using AES-256-GCM. Tokens are base64url(nonce || ciphertext || tag).
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher from a 32 byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce. The empty string is
// passed through unchanged.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a token produced by Encrypt. It reports false for any token
// that was not produced under this key, including malformed input. The empty
// string decrypts to itself.
func (c *Cipher) Decrypt(token string) (string, bool) {
	if token == "" {
		return "", true
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", false
	}

	ns := c.aead.NonceSize()
	if len(raw) < ns+c.aead.Overhead() {
		return "", false
	}

	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", false
	}
	return string(plain), true
}
