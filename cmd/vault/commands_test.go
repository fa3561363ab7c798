package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/keyvault/internal/vault/app"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	require.Equal(t, app.BuildVersion+"\n", out.String())
}

func TestMigrateCmd(t *testing.T) {
	dir := t.TempDir()
	cmd := newMigrateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--data-dir", dir})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "schema version 1 (dirty=false)")
	require.FileExists(t, filepath.Join(dir, "vault.db"))
}
