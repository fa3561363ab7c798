package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, filepath.Join("data", "vault.db"), cfg.DatabaseFile)
	require.Equal(t, filepath.Join("data", "secret.key"), cfg.KeyFile)
	require.Equal(t, filepath.Join("data", "pepper"), cfg.PepperFile)
	require.Equal(t, "Key Manager", cfg.TOTPIssuer)
	require.Equal(t, uint(1), cfg.TOTPSkew)
	require.False(t, cfg.DisableRequiresCode)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.SecretKey)
	require.NoError(t, cfg.validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{
		"VAULT_DATA_DIR":                  "/var/lib/vault",
		"VAULT_KEY_FILE":                  "/run/secrets/vault.key",
		"APP_SECRET_KEY":                  "s3cret",
		"VAULT_TOTP_SKEW":                 "2",
		"VAULT_2FA_DISABLE_REQUIRES_CODE": "true",
		"PORT":                            "9090",
		"SHUTDOWN_GRACE_PERIOD":           "30s",
	}})
	require.NoError(t, err)

	require.Equal(t, "/var/lib/vault/vault.db", cfg.DatabaseFile)
	require.Equal(t, "/run/secrets/vault.key", cfg.KeyFile)
	require.Equal(t, "s3cret", cfg.SecretKey)
	require.Equal(t, uint(2), cfg.TOTPSkew)
	require.True(t, cfg.DisableRequiresCode)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(env.Options{Environment: map[string]string{"PORT": "not-a-port"}})
	require.Error(t, err)
}

func TestWithDataDir(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{
		"VAULT_PEPPER_FILE": "/etc/vault/pepper",
	}})
	require.NoError(t, err)

	moved := cfg.WithDataDir("/srv/vault")
	require.Equal(t, "/srv/vault/vault.db", moved.DatabaseFile)
	require.Equal(t, "/srv/vault/secret.key", moved.KeyFile)
	require.Equal(t, "/etc/vault/pepper", moved.PepperFile)
}

func TestValidate(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	cfg.Port = 0
	require.Error(t, cfg.validate())
}
