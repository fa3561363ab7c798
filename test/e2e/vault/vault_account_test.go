//go:build e2e

package vault_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

// TestTwoFactorLoginFlow walks through enrollment and a challenged login.
func TestTwoFactorLoginFlow(t *testing.T) {
	baseURL, cleanup := setupVaultContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := vaultsdk.NewClient(baseURL)
	userID := registerUser(t, client)

	setup, err := client.SetupTwoFactor(ctx, userID, "")
	require.NoError(t, err)
	require.Contains(t, setup.OTPAuthURI, "issuer=Key")

	require.NoError(t, client.ConfirmTwoFactor(ctx, userID, currentCode(t, setup.Secret)))

	login, err := client.Login(ctx, vaultsdk.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)
	require.True(t, login.TwoFactorRequired())

	login, err = client.Login(ctx, vaultsdk.LoginRequest{
		Username: testUsername,
		Password: testPassword,
		OTPCode:  currentCode(t, setup.Secret),
	})
	require.NoError(t, err)
	require.False(t, login.TwoFactorRequired())
	require.Equal(t, userID, login.UserID)

	t.Logf("two-factor login completed for user %d", userID)
}

// TestDisableRequiresCode verifies the hardened disable policy.
func TestDisableRequiresCode(t *testing.T) {
	baseURL, cleanup := setupVaultContainer(t, map[string]string{
		"VAULT_2FA_DISABLE_REQUIRES_CODE": "true",
	})
	defer cleanup()

	ctx := t.Context()
	client := vaultsdk.NewClient(baseURL)
	userID := registerUser(t, client)

	setup, err := client.SetupTwoFactor(ctx, userID, "")
	require.NoError(t, err)
	require.NoError(t, client.ConfirmTwoFactor(ctx, userID, currentCode(t, setup.Secret)))

	err = client.DisableTwoFactor(ctx, userID, "")
	assertAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidOTP)

	_, err = client.SetupTwoFactor(ctx, userID, "")
	assertAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidOTP)

	require.NoError(t, client.DisableTwoFactor(ctx, userID, currentCode(t, setup.Secret)))

	login, err := client.Login(ctx, vaultsdk.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)
	require.False(t, login.TwoFactorRequired())
}

// TestLoginDoesNotRevealUsernames verifies unknown users and wrong passwords
// are indistinguishable.
func TestLoginDoesNotRevealUsernames(t *testing.T) {
	baseURL, cleanup := setupVaultContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := vaultsdk.NewClient(baseURL)
	registerUser(t, client)

	_, wrongPassword := client.Login(ctx, vaultsdk.LoginRequest{Username: testUsername, Password: "wrongpassword"})
	_, unknownUser := client.Login(ctx, vaultsdk.LoginRequest{Username: "nobody1", Password: testPassword})

	assertAPIError(t, wrongPassword, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidCredentials)
	assertAPIError(t, unknownUser, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

// TestMasterKeyGate verifies setting and checking the master key.
func TestMasterKeyGate(t *testing.T) {
	baseURL, cleanup := setupVaultContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := vaultsdk.NewClient(baseURL)
	userID := registerUser(t, client)

	valid, err := client.VerifyMasterKey(ctx, userID, "master-key-1")
	require.NoError(t, err)
	require.False(t, valid)

	require.NoError(t, client.SetMasterKey(ctx, userID, "master-key-1"))

	valid, err = client.VerifyMasterKey(ctx, userID, "master-key-1")
	require.NoError(t, err)
	require.True(t, valid)
}
