package vaultsdk

import "time"

// ============================================================================
// Common
// ============================================================================

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Cipher   string `json:"cipher"`
}

// ============================================================================
// Accounts
// ============================================================================

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	OTPCode  string `json:"otp_code,omitempty"`
}

// LoginResponse is returned for both a completed login and a login that
// still needs a one-time password; Code distinguishes them.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Code    string `json:"code,omitempty"`
}

// TwoFactorRequired reports whether the login must be repeated with a code.
func (r LoginResponse) TwoFactorRequired() bool {
	return r.Code == CodeTwoFactorRequired
}

// TwoFactorSetupRequest starts enrollment. Code is only needed to replace an
// enabled secret on servers that require a code to disable two-factor login.
type TwoFactorSetupRequest struct {
	UserID int64  `json:"user_id"`
	Code   string `json:"code,omitempty"`
}

type TwoFactorSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURI string `json:"otpauth_uri"`
}

type TwoFactorCodeRequest struct {
	UserID int64  `json:"user_id"`
	Code   string `json:"code,omitempty"`
}

type MasterKeyRequest struct {
	UserID int64  `json:"user_id"`
	Key    string `json:"key"`
}

type MasterKeyVerifyResponse struct {
	Valid bool `json:"valid"`
}

// Profile is the public view of an account. Hashes and the TOTP secret are
// never exposed.
type Profile struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	Email            *string    `json:"email,omitempty"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	TwoFactorPending bool       `json:"two_factor_pending"`
	HasMasterKey     bool       `json:"has_master_key"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// UpdateEmailRequest changes the account email. An empty email clears it.
type UpdateEmailRequest struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// ============================================================================
// Credentials
// ============================================================================

// Credential is a stored secret. Password and Notes are only set when
// sensitive fields were requested and could be decrypted.
type Credential struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Login     *string   `json:"login,omitempty"`
	Password  *string   `json:"password,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Archived  bool      `json:"is_archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCredentialRequest struct {
	UserID   int64  `json:"user_id"`
	Title    string `json:"title"`
	Login    string `json:"login,omitempty"`
	Password string `json:"password"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateCredentialRequest is a partial update. A nil field is left alone. An
// empty Password is ignored while an empty Login or Notes clears the value.
type UpdateCredentialRequest struct {
	UserID       int64   `json:"user_id"`
	CredentialID int64   `json:"credential_id"`
	Title        *string `json:"title,omitempty"`
	Login        *string `json:"login,omitempty"`
	Password     *string `json:"password,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ============================================================================
// Access keys
// ============================================================================

// AccessKey is a generated API token. Value is only set when sensitive
// fields were requested, or in the response to creation.
type AccessKey struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description"`
	Value       *string   `json:"value,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAccessKeyRequest struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description"`
}

type SetAccessKeyActiveRequest struct {
	UserID int64 `json:"user_id"`
	KeyID  int64 `json:"key_id"`
	Active bool  `json:"active"`
}
