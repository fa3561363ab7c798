package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
)

const credentialColumns = `id, user_id, title, login, password_cipher, notes_cipher,
	archived, created_at, updated_at`

type credentialsRepo struct {
	db dbtx
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) (int64, error) {
	now := time.Now()
	if !c.CreatedAt.IsZero() {
		now = c.CreatedAt
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (user_id, title, login, password_cipher, notes_cipher, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.UserID,
		c.Title,
		mapOptionalString(c.Login),
		c.PasswordCipher,
		mapOptionalString(c.NotesCipher),
		c.Archived,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *credentialsRepo) GetCredential(ctx context.Context, userID, credentialID int64) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+credentialColumns+` FROM credentials WHERE id = ? AND user_id = ?`,
		credentialID, userID,
	)
	return scanCredential(row)
}

func (r *credentialsRepo) ListCredentials(ctx context.Context, userID int64) ([]domain.Credential, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+credentialColumns+` FROM credentials
		WHERE user_id = ? AND archived = 0
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Credential, 0)
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *credentialsRepo) TitleTaken(ctx context.Context, userID int64, title string, excludeID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM credentials WHERE user_id = ? AND title = ? AND id != ?`,
		userID, title, excludeID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *credentialsRepo) UpdateCredential(ctx context.Context, c domain.Credential) error {
	updatedAt := c.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	return expectAffected(r.db.ExecContext(ctx, `
		UPDATE credentials
		SET title = ?, login = ?, password_cipher = ?, notes_cipher = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		c.Title,
		mapOptionalString(c.Login),
		c.PasswordCipher,
		mapOptionalString(c.NotesCipher),
		formatTime(updatedAt),
		c.ID,
		c.UserID,
	))
}

func (r *credentialsRepo) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	return expectAffected(r.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE id = ? AND user_id = ?`,
		credentialID, userID,
	))
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (domain.Credential, error) {
	var (
		c                    domain.Credential
		login, notes         sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&login,
		&c.PasswordCipher,
		&notes,
		&c.Archived,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}

	c.Login = mapNullStringPtr(login)
	c.NotesCipher = mapNullStringPtr(notes)

	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Credential{}, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Credential{}, err
	}
	return c, nil
}
