package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
)

const userColumns = `id, username, password_hash, email, master_key_hash, otp_secret,
	two_factor_enabled, last_login_at, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	now := time.Now()
	if !u.CreatedAt.IsZero() {
		now = u.CreatedAt
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, email, master_key_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Username,
		u.PasswordHash,
		mapOptionalString(u.Email),
		mapOptionalString(u.MasterKeyHash),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE id = ?`,
		formatTime(at), userID,
	))
}

func (r *usersRepo) UpdateMasterKeyHash(ctx context.Context, userID int64, hash string) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET master_key_hash = ?, updated_at = ? WHERE id = ?`,
		hash, formatTime(time.Now()), userID,
	))
}

func (r *usersRepo) SetPendingOTPSecret(ctx context.Context, userID int64, secret string) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET otp_secret = ?, two_factor_enabled = 0, updated_at = ? WHERE id = ?`,
		secret, formatTime(time.Now()), userID,
	))
}

func (r *usersRepo) EnableTwoFactor(ctx context.Context, userID int64) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET two_factor_enabled = 1, updated_at = ? WHERE id = ?`,
		formatTime(time.Now()), userID,
	))
}

func (r *usersRepo) DisableTwoFactor(ctx context.Context, userID int64) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET otp_secret = NULL, two_factor_enabled = 0, updated_at = ? WHERE id = ?`,
		formatTime(time.Now()), userID,
	))
}

func (r *usersRepo) UpdateEmail(ctx context.Context, userID int64, email *string) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET email = ?, updated_at = ? WHERE id = ?`,
		mapOptionalString(email), formatTime(time.Now()), userID,
	))
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                    domain.User
		email, masterKey     sql.NullString
		otpSecret, lastLogin sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&email,
		&masterKey,
		&otpSecret,
		&u.TwoFactorEnabled,
		&lastLogin,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Email = mapNullStringPtr(email)
	u.MasterKeyHash = mapNullStringPtr(masterKey)
	u.OTPSecret = mapNullStringPtr(otpSecret)

	if u.LastLoginAt, err = mapNullTimePtr(lastLogin); err != nil {
		return domain.User{}, err
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
