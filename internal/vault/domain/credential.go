package domain

import "time"

// Credential is a stored secret as persisted. Password and notes are
// ciphertext tokens.
type Credential struct {
	ID             int64
	UserID         int64
	Title          string
	Login          *string
	PasswordCipher string
	NotesCipher    *string
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CredentialView is the decrypted projection handed to callers. Password and
// Notes are nil unless sensitive fields were requested and decrypted.
type CredentialView struct {
	ID        int64
	Title     string
	Login     *string
	Password  *string
	Notes     *string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
