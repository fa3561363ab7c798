package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
	"github.com/aussiebroadwan/keyvault/internal/vault/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createUser(t *testing.T, s *Store, username string) int64 {
	t.Helper()

	id, err := s.Users().CreateUser(context.Background(), domain.User{
		Username:     username,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string { return &s }

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ApplyMigrations())

	version, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)
}

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, domain.User{
		Username:     "alice",
		PasswordHash: "hash",
		Email:        strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	require.Positive(t, id)

	byID, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
	require.Equal(t, "alice@example.com", *byID.Email)
	require.False(t, byID.TwoFactorEnabled)
	require.Nil(t, byID.OTPSecret)
	require.Nil(t, byID.LastLoginAt)
	require.False(t, byID.CreatedAt.IsZero())

	byName, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, id, byName.ID)

	byEmail, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)

	_, err = s.Users().GetUserByUsername(ctx, "bob")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestConstraintColumns(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{msg: "constraint failed: UNIQUE constraint failed: users.email (2067)", want: "users.email"},
		{msg: "UNIQUE constraint failed: credentials.user_id, credentials.title", want: "credentials.user_id, credentials.title"},
		{msg: "database is locked (5)", want: ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, constraintColumns(tc.msg), tc.msg)
	}
}

func TestUsers_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "h", Email: strPtr("a@example.com")})
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "h"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	require.True(t, store.ConflictOn(err, "users.username"))
	require.False(t, store.ConflictOn(err, "users.email"))

	_, err = s.Users().CreateUser(ctx, domain.User{Username: "bobby", PasswordHash: "h", Email: strPtr("a@example.com")})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	require.True(t, store.ConflictOn(err, "users.email"))

	// Absent emails never collide.
	_, err = s.Users().CreateUser(ctx, domain.User{Username: "carol", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = s.Users().CreateUser(ctx, domain.User{Username: "david", PasswordHash: "h"})
	require.NoError(t, err)
}

func TestUsers_TwoFactorLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := createUser(t, s, "alice")

	// The schema refuses to enable 2FA without a secret.
	require.Error(t, s.Users().EnableTwoFactor(ctx, id))

	require.NoError(t, s.Users().SetPendingOTPSecret(ctx, id, "SECRET"))
	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.True(t, u.TwoFactorPending())

	require.NoError(t, s.Users().EnableTwoFactor(ctx, id))
	u, err = s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.True(t, u.TwoFactorEnabled)
	require.Equal(t, "SECRET", *u.OTPSecret)

	// A new setup resets the flag.
	require.NoError(t, s.Users().SetPendingOTPSecret(ctx, id, "OTHER"))
	u, err = s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.False(t, u.TwoFactorEnabled)
	require.Equal(t, "OTHER", *u.OTPSecret)

	require.NoError(t, s.Users().DisableTwoFactor(ctx, id))
	u, err = s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.False(t, u.TwoFactorEnabled)
	require.Nil(t, u.OTPSecret)
}

func TestUsers_UpdatesOnMissingUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.ErrorIs(t, s.Users().UpdateMasterKeyHash(ctx, 99, "h"), store.ErrNotFound)
	require.ErrorIs(t, s.Users().UpdateLastLogin(ctx, 99, time.Now()), store.ErrNotFound)
	require.ErrorIs(t, s.Users().SetPendingOTPSecret(ctx, 99, "S"), store.ErrNotFound)
	require.ErrorIs(t, s.Users().UpdateEmail(ctx, 99, nil), store.ErrNotFound)
}

func TestUsers_LastLoginAndMasterKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := createUser(t, s, "alice")

	at := time.Date(2024, 5, 1, 12, 30, 0, 123, time.UTC)
	require.NoError(t, s.Users().UpdateLastLogin(ctx, id, at))
	require.NoError(t, s.Users().UpdateMasterKeyHash(ctx, id, "master"))

	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt)
	require.True(t, at.Equal(*u.LastLoginAt))
	require.True(t, u.HasMasterKey())
}

func TestCredentials_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uid := createUser(t, s, "alice")

	id, err := s.Credentials().CreateCredential(ctx, domain.Credential{
		UserID:         uid,
		Title:          "mail",
		Login:          strPtr("alice@mail"),
		PasswordCipher: "cipher",
	})
	require.NoError(t, err)

	c, err := s.Credentials().GetCredential(ctx, uid, id)
	require.NoError(t, err)
	require.Equal(t, "mail", c.Title)
	require.Equal(t, "alice@mail", *c.Login)
	require.Nil(t, c.NotesCipher)

	_, err = s.Credentials().CreateCredential(ctx, domain.Credential{UserID: uid, Title: "mail", PasswordCipher: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	c.Title = "email"
	c.Login = nil
	c.NotesCipher = strPtr("notes")
	require.NoError(t, s.Credentials().UpdateCredential(ctx, c))

	c, err = s.Credentials().GetCredential(ctx, uid, id)
	require.NoError(t, err)
	require.Equal(t, "email", c.Title)
	require.Nil(t, c.Login)
	require.Equal(t, "notes", *c.NotesCipher)

	require.NoError(t, s.Credentials().DeleteCredential(ctx, uid, id))
	require.ErrorIs(t, s.Credentials().DeleteCredential(ctx, uid, id), store.ErrNotFound)
	_, err = s.Credentials().GetCredential(ctx, uid, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCredentials_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bobby")

	id, err := s.Credentials().CreateCredential(ctx, domain.Credential{UserID: alice, Title: "mail", PasswordCipher: "x"})
	require.NoError(t, err)

	// Titles are unique per user only.
	_, err = s.Credentials().CreateCredential(ctx, domain.Credential{UserID: bob, Title: "mail", PasswordCipher: "x"})
	require.NoError(t, err)

	_, err = s.Credentials().GetCredential(ctx, bob, id)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Credentials().DeleteCredential(ctx, bob, id), store.ErrNotFound)
}

func TestCredentials_ListOrderingAndArchived(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uid := createUser(t, s, "alice")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		_, err := s.Credentials().CreateCredential(ctx, domain.Credential{
			UserID:         uid,
			Title:          title,
			PasswordCipher: "x",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	// Same timestamp as "third": id breaks the tie.
	_, err := s.Credentials().CreateCredential(ctx, domain.Credential{
		UserID: uid, Title: "fourth", PasswordCipher: "x", CreatedAt: base.Add(2 * time.Minute),
	})
	require.NoError(t, err)
	_, err = s.Credentials().CreateCredential(ctx, domain.Credential{
		UserID: uid, Title: "hidden", PasswordCipher: "x", Archived: true,
	})
	require.NoError(t, err)

	list, err := s.Credentials().ListCredentials(ctx, uid)
	require.NoError(t, err)

	titles := make([]string, 0, len(list))
	for _, c := range list {
		titles = append(titles, c.Title)
	}
	require.Equal(t, []string{"fourth", "third", "second", "first"}, titles)
}

func TestCredentials_TitleTaken(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uid := createUser(t, s, "alice")

	id, err := s.Credentials().CreateCredential(ctx, domain.Credential{UserID: uid, Title: "mail", PasswordCipher: "x"})
	require.NoError(t, err)

	taken, err := s.Credentials().TitleTaken(ctx, uid, "mail", 0)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = s.Credentials().TitleTaken(ctx, uid, "mail", id)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = s.Credentials().TitleTaken(ctx, uid, "Mail", 0)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestAccessKeys_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uid := createUser(t, s, "alice")

	older, err := s.AccessKeys().CreateAccessKey(ctx, domain.AccessKey{
		UserID: uid, Description: "ci", ValueCipher: "c1", Active: true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	newer, err := s.AccessKeys().CreateAccessKey(ctx, domain.AccessKey{
		UserID: uid, Name: "deploy", Description: "cd", ValueCipher: "c2", Active: true,
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	keys, err := s.AccessKeys().ListAccessKeys(ctx, uid)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	require.Equal(t, newer, keys[0].ID)
	require.Equal(t, older, keys[1].ID)

	require.NoError(t, s.AccessKeys().SetAccessKeyActive(ctx, uid, older, false))
	k, err := s.AccessKeys().GetAccessKey(ctx, uid, older)
	require.NoError(t, err)
	require.False(t, k.Active)

	require.NoError(t, s.AccessKeys().DeleteAccessKey(ctx, uid, older))
	require.ErrorIs(t, s.AccessKeys().DeleteAccessKey(ctx, uid, older), store.ErrNotFound)
	require.ErrorIs(t, s.AccessKeys().SetAccessKeyActive(ctx, uid, older, true), store.ErrNotFound)
}

func TestForeignKeysCascade(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uid := createUser(t, s, "alice")

	_, err := s.Credentials().CreateCredential(ctx, domain.Credential{UserID: uid, Title: "mail", PasswordCipher: "x"})
	require.NoError(t, err)
	_, err = s.AccessKeys().CreateAccessKey(ctx, domain.AccessKey{UserID: uid, Description: "ci", ValueCipher: "x", Active: true})
	require.NoError(t, err)

	// Orphans are rejected.
	_, err = s.Credentials().CreateCredential(ctx, domain.Credential{UserID: 999, Title: "x", PasswordCipher: "x"})
	require.Error(t, err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, uid)
	require.NoError(t, err)

	creds, err := s.Credentials().ListCredentials(ctx, uid)
	require.NoError(t, err)
	require.Empty(t, creds)

	keys, err := s.AccessKeys().ListAccessKeys(ctx, uid)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestWithTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "h"})
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().CreateUser(ctx, domain.User{Username: "bobby", PasswordHash: "h"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	_, err = s.Users().GetUserByUsername(ctx, "bobby")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Nested transactions are refused.
	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)
}

func TestWithTx_RollsBackOnStorageFault(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStoreFromDB(db)
	fault := errors.New("disk I/O error")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(fault)
	mock.ExpectRollback()

	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "h"})
		return err
	})
	require.ErrorIs(t, err, fault)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStoreFromDB(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET master_key_hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().UpdateMasterKeyHash(ctx, 1, "hash")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
