package otpx_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/aussiebroadwan/keyvault/pkg/otpx"
	"github.com/stretchr/testify/require"
)

func fixedEngine(at time.Time) *otpx.Engine {
	e := otpx.New(otpx.DefaultSkew)
	e.Now = func() time.Time { return at }
	return e
}

func TestGenerateSecret(t *testing.T) {
	e := otpx.New(otpx.DefaultSkew)

	a, err := e.GenerateSecret()
	require.NoError(t, err)
	require.Len(t, a, 32)
	require.NotContains(t, a, "=")

	b, err := e.GenerateSecret()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestEnrollmentURI(t *testing.T) {
	e := otpx.New(otpx.DefaultSkew)
	secret, err := e.GenerateSecret()
	require.NoError(t, err)

	uri, err := e.EnrollmentURI(secret, "alice", "Key Manager")
	require.NoError(t, err)

	u, err := url.Parse(uri)
	require.NoError(t, err)
	require.Equal(t, "otpauth", u.Scheme)
	require.Equal(t, "totp", u.Host)
	require.Equal(t, "/Key Manager:alice", u.Path)

	q := u.Query()
	require.Equal(t, secret, q.Get("secret"))
	require.Equal(t, "Key Manager", q.Get("issuer"))
	require.Equal(t, "30", q.Get("period"))
	require.Equal(t, "6", q.Get("digits"))
	require.Equal(t, "SHA1", q.Get("algorithm"))
}

func TestEnrollmentURI_InvalidSecret(t *testing.T) {
	e := otpx.New(otpx.DefaultSkew)

	_, err := e.EnrollmentURI("not base32!", "alice", "")
	require.ErrorIs(t, err, otpx.ErrInvalidSecret)
}

func TestVerify_Window(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	e := fixedEngine(now)
	secret, err := e.GenerateSecret()
	require.NoError(t, err)

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"current step", 0, true},
		{"previous step", -30 * time.Second, true},
		{"next step", 30 * time.Second, true},
		{"two steps back", -60 * time.Second, false},
		{"two steps ahead", 60 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := e.Code(secret, now.Add(tt.offset))
			require.NoError(t, err)
			require.Equal(t, tt.want, e.Verify(secret, code))
		})
	}
}

func TestVerify_ZeroValueIsStrict(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	e := &otpx.Engine{Now: func() time.Time { return now }}
	secret, err := e.GenerateSecret()
	require.NoError(t, err)

	current, err := e.Code(secret, now)
	require.NoError(t, err)
	require.True(t, e.Verify(secret, current))

	previous, err := e.Code(secret, now.Add(-30*time.Second))
	require.NoError(t, err)
	require.False(t, e.Verify(secret, previous))
}

func TestVerify_EmptyInputs(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	e := fixedEngine(now)
	secret, err := e.GenerateSecret()
	require.NoError(t, err)
	code, err := e.Code(secret, now)
	require.NoError(t, err)

	require.False(t, e.Verify("", code))
	require.False(t, e.Verify(secret, ""))
	require.False(t, e.Verify(secret, "abcdef"))
}

func TestCode_InvalidSecret(t *testing.T) {
	e := otpx.New(otpx.DefaultSkew)

	_, err := e.Code("", time.Now())
	require.ErrorIs(t, err, otpx.ErrInvalidSecret)
}
