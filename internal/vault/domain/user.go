package domain

import "time"

type User struct {
	ID               int64
	Username         string
	PasswordHash     string     // argon2id PHC string, or legacy bcrypt
	Email            *string    // Unique when set
	MasterKeyHash    *string    // Same hash format as PasswordHash
	OTPSecret        *string    // TOTP secret (base32), pending or active
	TwoFactorEnabled bool       // Only true when OTPSecret is set
	LastLoginAt      *time.Time // Nullable
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TwoFactorPending reports whether a secret has been issued but not yet
// confirmed with a valid code.
func (u User) TwoFactorPending() bool {
	return u.OTPSecret != nil && !u.TwoFactorEnabled
}

// HasMasterKey reports whether a master key has been set.
func (u User) HasMasterKey() bool {
	return u.MasterKeyHash != nil && *u.MasterKeyHash != ""
}
