package domain

import "time"

// AccessKey is a generated API token. The value is stored encrypted.
type AccessKey struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	ValueCipher string
	Active      bool
	CreatedAt   time.Time
}

// AccessKeyView is the projection handed to callers. Value is nil unless
// requested and decrypted.
type AccessKeyView struct {
	ID          int64
	Name        string
	Description string
	Value       *string
	Active      bool
	CreatedAt   time.Time
}
