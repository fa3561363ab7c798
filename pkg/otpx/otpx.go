// Package otpx implements time-based one-time passwords for second factor
// login on top of github.com/pquerna/otp.
package otpx

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// SecretSize is the raw secret length in bytes (160 bits).
	SecretSize = 20
	// DefaultPeriod is the time step in seconds.
	DefaultPeriod = 30
	// DefaultSkew is the number of steps accepted either side of now.
	DefaultSkew = 1
	// DefaultIssuer labels enrollment URIs when none is configured.
	DefaultIssuer = "Key Manager"
)

var ErrInvalidSecret = errors.New("invalid otp secret")

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Engine generates and checks TOTP codes (SHA1, six digits). A zero Period
// means DefaultPeriod and a nil Now the wall clock. Skew is used as given, so
// the zero value accepts only the current step; use New for DefaultSkew.
type Engine struct {
	Period uint
	Skew   uint
	Now    func() time.Time
}

// New returns an Engine with the given skew and default period.
func New(skew uint) *Engine {
	return &Engine{Period: DefaultPeriod, Skew: skew}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) opts() totp.ValidateOpts {
	period := e.Period
	if period == 0 {
		period = DefaultPeriod
	}
	return totp.ValidateOpts{
		Period:    period,
		Skew:      e.Skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GenerateSecret returns a fresh base32 secret without padding.
func (e *Engine) GenerateSecret() (string, error) {
	buf := make([]byte, SecretSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate otp secret: %w", err)
	}
	return b32.EncodeToString(buf), nil
}

// EnrollmentURI builds the otpauth:// URI an authenticator app scans.
func (e *Engine) EnrollmentURI(secret, accountLabel, issuer string) (string, error) {
	raw, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}

	o := e.opts()
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountLabel,
		Period:      o.Period,
		Secret:      raw,
		Digits:      o.Digits,
		Algorithm:   o.Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("build enrollment uri: %w", err)
	}
	return key.URL(), nil
}

// Verify reports whether code is valid for secret within the skew window.
func (e *Engine) Verify(secret, code string) bool {
	code = strings.TrimSpace(code)
	if secret == "" || code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, e.now().UTC(), e.opts())
	return err == nil && ok
}

// Code returns the code valid for secret at t.
func (e *Engine) Code(secret string, t time.Time) (string, error) {
	if _, err := decodeSecret(secret); err != nil {
		return "", err
	}
	return totp.GenerateCodeCustom(secret, t.UTC(), e.opts())
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.ToUpper(strings.TrimRight(strings.TrimSpace(secret), "="))
	if secret == "" {
		return nil, ErrInvalidSecret
	}
	raw, err := b32.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	return raw, nil
}
