package app

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, vars map[string]string) Config {
	t.Helper()
	if vars == nil {
		vars = map[string]string{}
	}
	vars["VAULT_DATA_DIR"] = t.TempDir()
	cfg, err := loadConfig(env.Options{Environment: vars})
	require.NoError(t, err)
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewBootstrapsDataDir(t *testing.T) {
	cfg := newTestConfig(t, nil)

	application, err := New(cfg, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	for _, path := range []string{cfg.DatabaseFile, cfg.KeyFile, cfg.PepperFile} {
		_, err := os.Stat(path)
		require.NoError(t, err, path)
	}

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	client := vaultsdk.NewClient(srv.URL)
	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
}

func TestSecretsSurviveRestart(t *testing.T) {
	cfg := newTestConfig(t, nil)
	ctx := t.Context()

	first, err := New(cfg, quietLogger())
	require.NoError(t, err)

	srv := httptest.NewServer(first.Handler())
	client := vaultsdk.NewClient(srv.URL)

	reg, err := client.Register(ctx, vaultsdk.RegisterRequest{Username: "alice1", Password: "longenough1"})
	require.NoError(t, err)
	_, err = client.CreateCredential(ctx, vaultsdk.CreateCredentialRequest{
		UserID: reg.UserID, Title: "Mail", Password: "p@ss",
	})
	require.NoError(t, err)

	srv.Close()
	require.NoError(t, first.db.Close())

	second, err := New(cfg, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })

	srv = httptest.NewServer(second.Handler())
	t.Cleanup(srv.Close)
	client = vaultsdk.NewClient(srv.URL)

	_, err = client.Login(ctx, vaultsdk.LoginRequest{Username: "alice1", Password: "longenough1"})
	require.NoError(t, err)

	creds, err := client.ListCredentials(ctx, reg.UserID, true)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	require.NotNil(t, creds[0].Password)
	require.Equal(t, "p@ss", *creds[0].Password)
}

func TestSecretKeyOverridesKeyFile(t *testing.T) {
	cfg := newTestConfig(t, map[string]string{"APP_SECRET_KEY": "from-environment"})

	application, err := New(cfg, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	_, err = os.Stat(cfg.KeyFile)
	require.True(t, os.IsNotExist(err))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := newTestConfig(t, nil)
	cfg.Port = -1

	_, err := New(cfg, quietLogger())
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(cfg.DataDir, "vault.db"))
	require.True(t, os.IsNotExist(err))
}
