package service

import (
	"errors"
	"fmt"
)

// Error classes. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrStorage            = errors.New("storage failure")
)

var (
	ErrUsernameTooShort    = fmt.Errorf("%w: username must be at least %d characters", ErrInvalidInput, minUsernameLength)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	ErrMasterKeyTooShort   = fmt.Errorf("%w: master key must be at least %d characters", ErrInvalidInput, minMasterKeyLength)
	ErrInvalidEmail        = fmt.Errorf("%w: email address is malformed", ErrInvalidInput)
	ErrTitleRequired       = fmt.Errorf("%w: title is required", ErrInvalidInput)
	ErrSecretRequired      = fmt.Errorf("%w: password is required", ErrInvalidInput)
	ErrDescriptionRequired = fmt.Errorf("%w: description is required", ErrInvalidInput)
	ErrTwoFactorNotPending = fmt.Errorf("%w: two-factor setup has not been started", ErrInvalidInput)

	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrTitleTaken    = fmt.Errorf("%w: credential with this title already exists", ErrConflict)

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrInvalidCredentials)
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrInvalidCredentials)
	ErrInvalidOTP      = fmt.Errorf("%w: invalid two-factor code", ErrInvalidCredentials)

	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrNotFound)
	ErrCredentialNotFound = fmt.Errorf("%w: credential not found", ErrNotFound)
	ErrAccessKeyNotFound  = fmt.Errorf("%w: access key not found", ErrNotFound)
)

// wrapStorage classifies any error that is not already a service error as a
// storage failure, keeping the cause in the chain.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	for _, class := range []error{ErrInvalidInput, ErrConflict, ErrInvalidCredentials, ErrNotFound, ErrStorage} {
		if errors.Is(err, class) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
