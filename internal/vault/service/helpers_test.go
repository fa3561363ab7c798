package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
	"github.com/aussiebroadwan/keyvault/internal/vault/store"
	"github.com/aussiebroadwan/keyvault/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/keyvault/pkg/cryptox"
	"github.com/aussiebroadwan/keyvault/pkg/otpx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store    *sqlite.Store
	now      time.Time
	otp      *otpx.Engine
	cipher   *cryptox.Cipher
	accounts *AccountService
	vault    *VaultService
	keys     *AccessKeyService
}

func newTestCipher(t *testing.T, secret string) *cryptox.Cipher {
	t.Helper()
	key, err := cryptox.LoadOrCreateKey(secret, "")
	require.NoError(t, err)
	c, err := cryptox.NewCipher(key)
	require.NoError(t, err)
	return c
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	env := &testEnv{
		store:  st,
		now:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		cipher: newTestCipher(t, "test-secret"),
	}
	clock := func() time.Time { return env.now }

	env.otp = otpx.New(otpx.DefaultSkew)
	env.otp.Now = clock

	hasher := &cryptox.Hasher{
		Pepper: "pepper",
		Params: cryptox.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1},
	}

	env.accounts = &AccountService{
		Store:  st,
		Hasher: hasher,
		OTP:    env.otp,
		Issuer: "Key Manager",
		Now:    clock,
	}
	env.vault = &VaultService{Store: st, Cipher: env.cipher, Now: clock}
	env.keys = &AccessKeyService{Store: st, Cipher: env.cipher, Now: clock}
	return env
}

func (e *testEnv) register(t *testing.T, username string) int64 {
	t.Helper()
	id, err := e.accounts.Register(t.Context(), username, "longenough1", "")
	require.NoError(t, err)
	return id
}

func (e *testEnv) code(t *testing.T, secret string) string {
	t.Helper()
	code, err := e.otp.Code(secret, e.now)
	require.NoError(t, err)
	return code
}

// enableTwoFactor runs setup and confirm, returning the active secret.
func (e *testEnv) enableTwoFactor(t *testing.T, userID int64) string {
	t.Helper()
	setup, err := e.accounts.InitiateTwoFactorSetup(t.Context(), userID, "")
	require.NoError(t, err)
	require.NoError(t, e.accounts.ConfirmTwoFactor(t.Context(), userID, e.code(t, setup.Secret)))
	return setup.Secret
}

func domainUser(username, hash string) domain.User {
	return domain.User{Username: username, PasswordHash: hash}
}

// staleEmailStore hides existing emails from lookups, so a duplicate only
// surfaces at insert time as it would when two registrations race.
type staleEmailStore struct{ store.Store }

func (s staleEmailStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(staleEmailTx{tx})
	})
}

type staleEmailTx struct{ store.Tx }

func (t staleEmailTx) Users() store.Users { return staleEmailUsers{t.Tx.Users()} }

type staleEmailUsers struct{ store.Users }

func (staleEmailUsers) GetUserByEmail(context.Context, string) (domain.User, error) {
	return domain.User{}, store.ErrNotFound
}
