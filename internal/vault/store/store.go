package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ConflictError is a uniqueness violation that names the rejected columns.
// It matches ErrAlreadyExists.
type ConflictError struct {
	Columns string // as reported by the driver, e.g. "users.email"
	Err     error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrAlreadyExists, e.Columns, e.Err)
}

func (e *ConflictError) Is(target error) bool { return target == ErrAlreadyExists }

func (e *ConflictError) Unwrap() error { return e.Err }

// ConflictOn reports whether err is a uniqueness violation involving column.
func ConflictOn(err error, column string) bool {
	var ce *ConflictError
	if !errors.As(err, &ce) {
		return false
	}
	for _, c := range strings.Split(ce.Columns, ",") {
		if strings.TrimSpace(c) == column {
			return true
		}
	}
	return false
}

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and so
// that transactions cannot be started from inside a transaction.
type Store interface {
	Users() Users
	Credentials() Credentials
	AccessKeys() AccessKeys

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Updates that target a missing row return ErrNotFound.
type Users interface {
	// CreateUser inserts a new user and returns the generated id.
	// A taken username or email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateLastLogin stamps a successful login.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	// UpdateMasterKeyHash overwrites the master key hash.
	UpdateMasterKeyHash(ctx context.Context, userID int64, hash string) error

	// SetPendingOTPSecret stores a new secret and clears two_factor_enabled.
	SetPendingOTPSecret(ctx context.Context, userID int64, secret string) error

	// EnableTwoFactor flips two_factor_enabled. The schema rejects this when
	// no secret is stored.
	EnableTwoFactor(ctx context.Context, userID int64) error

	// DisableTwoFactor clears both the secret and the flag.
	DisableTwoFactor(ctx context.Context, userID int64) error

	// UpdateEmail sets or, with nil, clears the email.
	UpdateEmail(ctx context.Context, userID int64, email *string) error
}

// Credential lookups are always scoped by owner.
type Credentials interface {
	CreateCredential(ctx context.Context, c domain.Credential) (int64, error)
	GetCredential(ctx context.Context, userID, credentialID int64) (domain.Credential, error)

	// ListCredentials returns non-archived credentials, newest first.
	ListCredentials(ctx context.Context, userID int64) ([]domain.Credential, error)

	// TitleTaken reports whether another credential of the user already uses
	// title. excludeID is ignored when zero.
	TitleTaken(ctx context.Context, userID int64, title string, excludeID int64) (bool, error)

	// UpdateCredential writes title, login, ciphertexts and updated_at.
	UpdateCredential(ctx context.Context, c domain.Credential) error

	DeleteCredential(ctx context.Context, userID, credentialID int64) error
}

type AccessKeys interface {
	CreateAccessKey(ctx context.Context, k domain.AccessKey) (int64, error)
	GetAccessKey(ctx context.Context, userID, keyID int64) (domain.AccessKey, error)

	// ListAccessKeys returns the user's keys, newest first.
	ListAccessKeys(ctx context.Context, userID int64) ([]domain.AccessKey, error)

	SetAccessKeyActive(ctx context.Context, userID, keyID int64, active bool) error
	DeleteAccessKey(ctx context.Context, userID, keyID int64) error
}
