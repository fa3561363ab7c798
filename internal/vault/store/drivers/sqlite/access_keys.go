package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
)

const accessKeyColumns = `id, user_id, name, description, value_cipher, active, created_at`

type accessKeysRepo struct {
	db dbtx
}

func (r *accessKeysRepo) CreateAccessKey(ctx context.Context, k domain.AccessKey) (int64, error) {
	createdAt := k.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO access_keys (user_id, name, description, value_cipher, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		k.UserID,
		k.Name,
		k.Description,
		k.ValueCipher,
		k.Active,
		formatTime(createdAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *accessKeysRepo) GetAccessKey(ctx context.Context, userID, keyID int64) (domain.AccessKey, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accessKeyColumns+` FROM access_keys WHERE id = ? AND user_id = ?`,
		keyID, userID,
	)
	return scanAccessKey(row)
}

func (r *accessKeysRepo) ListAccessKeys(ctx context.Context, userID int64) ([]domain.AccessKey, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+accessKeyColumns+` FROM access_keys
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AccessKey, 0)
	for rows.Next() {
		k, err := scanAccessKey(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *accessKeysRepo) SetAccessKeyActive(ctx context.Context, userID, keyID int64, active bool) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE access_keys SET active = ? WHERE id = ? AND user_id = ?`,
		active, keyID, userID,
	))
}

func (r *accessKeysRepo) DeleteAccessKey(ctx context.Context, userID, keyID int64) error {
	return expectAffected(r.db.ExecContext(ctx,
		`DELETE FROM access_keys WHERE id = ? AND user_id = ?`,
		keyID, userID,
	))
}

func scanAccessKey(row rowScanner) (domain.AccessKey, error) {
	var (
		k         domain.AccessKey
		createdAt string
	)

	err := row.Scan(
		&k.ID,
		&k.UserID,
		&k.Name,
		&k.Description,
		&k.ValueCipher,
		&k.Active,
		&createdAt,
	)
	if err != nil {
		return domain.AccessKey{}, mapNotFound(err)
	}

	if k.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.AccessKey{}, err
	}
	return k, nil
}
