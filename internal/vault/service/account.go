package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
	"github.com/aussiebroadwan/keyvault/internal/vault/store"
	"github.com/aussiebroadwan/keyvault/pkg/cryptox"
	"github.com/aussiebroadwan/keyvault/pkg/otpx"
	"github.com/aussiebroadwan/keyvault/pkg/slogx"
)

const (
	minUsernameLength  = 5
	minPasswordLength  = 8
	minMasterKeyLength = 8
)

// LoginStatus tags the outcome of a Login that did not fail.
type LoginStatus int

const (
	LoginSucceeded LoginStatus = iota + 1
	// LoginTwoFactorRequired means the password was correct but the account
	// needs a one-time code before the login completes.
	LoginTwoFactorRequired
)

func (s LoginStatus) String() string {
	switch s {
	case LoginSucceeded:
		return "succeeded"
	case LoginTwoFactorRequired:
		return "two_factor_required"
	default:
		return "unknown"
	}
}

type LoginResult struct {
	UserID int64
	Status LoginStatus
}

type TwoFactorSetup struct {
	Secret string
	URI    string
}

type AccountService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	OTP    *otpx.Engine
	Issuer string // Issuer shown in authenticator apps

	// DisableRequiresCode makes DisableTwoFactor and a repeated
	// InitiateTwoFactorSetup demand a valid current code while two-factor
	// login is enabled.
	DisableRequiresCode bool

	Now func() time.Time
}

func (s *AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates an account and returns its id.
func (s *AccountService) Register(ctx context.Context, username, password, email string) (int64, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < minUsernameLength {
		return 0, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return 0, ErrPasswordTooShort
	}
	emailPtr, err := normalizeEmail(email)
	if err != nil {
		return 0, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if emailPtr != nil {
			if _, err := tx.Users().GetUserByEmail(ctx, *emailPtr); err == nil {
				return ErrEmailTaken
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}

		now := s.now()
		id, err = tx.Users().CreateUser(ctx, domain.User{
			Username:     username,
			PasswordHash: hash,
			Email:        emailPtr,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		switch {
		case store.ConflictOn(err, "users.email"):
			return ErrEmailTaken
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrUsernameTaken
		}
		return err
	})
	if err != nil {
		return 0, wrapStorage(err)
	}

	log.Info("user registered", "user_id", id)
	return id, nil
}

// Login checks the password and, when enabled, the one-time code. A correct
// password on a two-factor account without a code yields
// LoginTwoFactorRequired and a nil error.
func (s *AccountService) Login(ctx context.Context, username, password, otpCode string) (LoginResult, error) {
	log := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	var u domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		u, err = tx.Users().GetUserByUsername(ctx, username)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	})
	if errors.Is(err, ErrUserNotFound) {
		s.Hasher.VerifyMissing(password)
	}
	if err != nil {
		return LoginResult{}, wrapStorage(err)
	}

	if !s.Hasher.Verify(password, u.PasswordHash) {
		log.Info("login rejected", "user_id", u.ID, "reason", "password")
		return LoginResult{}, ErrInvalidPassword
	}

	if u.TwoFactorEnabled {
		if strings.TrimSpace(otpCode) == "" {
			return LoginResult{UserID: u.ID, Status: LoginTwoFactorRequired}, nil
		}
		if u.OTPSecret == nil || !s.OTP.Verify(*u.OTPSecret, otpCode) {
			log.Info("login rejected", "user_id", u.ID, "reason", "otp")
			return LoginResult{}, ErrInvalidOTP
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID, s.now())
	})
	if err != nil {
		return LoginResult{}, wrapStorage(err)
	}

	log.Info("login succeeded", "user_id", u.ID)
	return LoginResult{UserID: u.ID, Status: LoginSucceeded}, nil
}

// SetMasterKey sets or replaces the master key.
func (s *AccountService) SetMasterKey(ctx context.Context, userID int64, key string) error {
	if utf8.RuneCountInString(key) < minMasterKeyLength {
		return ErrMasterKeyTooShort
	}

	hash, err := s.Hasher.Hash(key)
	if err != nil {
		return fmt.Errorf("hash master key: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Users().UpdateMasterKeyHash(ctx, userID, hash)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	})
	if err != nil {
		return wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("master key updated", "user_id", userID)
	return nil
}

// VerifyMasterKey reports whether key matches the stored master key. Unknown
// users and users without a master key always yield false.
func (s *AccountService) VerifyMasterKey(ctx context.Context, userID int64, key string) bool {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slogx.FromContext(ctx).Error("master key lookup failed", "user_id", userID, "err", err)
		}
		return false
	}
	if !u.HasMasterKey() {
		return false
	}
	return s.Hasher.Verify(key, *u.MasterKeyHash)
}

// InitiateTwoFactorSetup issues a fresh secret. Two-factor login stays
// disabled until ConfirmTwoFactor succeeds, so an abandoned setup never locks
// the account out. Replacing an enabled secret turns two-factor login off, so
// with DisableRequiresCode set it needs a valid code just like
// DisableTwoFactor.
func (s *AccountService) InitiateTwoFactorSetup(ctx context.Context, userID int64, code string) (TwoFactorSetup, error) {
	var setup TwoFactorSetup

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		if err != nil {
			return err
		}

		if err := s.checkDisableCode(u, code); err != nil {
			return err
		}

		secret, err := s.OTP.GenerateSecret()
		if err != nil {
			return err
		}
		uri, err := s.OTP.EnrollmentURI(secret, u.Username, s.issuer())
		if err != nil {
			return err
		}

		if err := tx.Users().SetPendingOTPSecret(ctx, userID, secret); err != nil {
			return err
		}

		setup = TwoFactorSetup{Secret: secret, URI: uri}
		return nil
	})
	if err != nil {
		return TwoFactorSetup{}, wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("two-factor setup started", "user_id", userID)
	return setup, nil
}

// ConfirmTwoFactor enables two-factor login once code verifies against the
// latest issued secret.
func (s *AccountService) ConfirmTwoFactor(ctx context.Context, userID int64, code string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		if err != nil {
			return err
		}

		if u.OTPSecret == nil {
			return ErrTwoFactorNotPending
		}
		if !s.OTP.Verify(*u.OTPSecret, code) {
			return ErrInvalidOTP
		}
		return tx.Users().EnableTwoFactor(ctx, userID)
	})
	if err != nil {
		return wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("two-factor enabled", "user_id", userID)
	return nil
}

// DisableTwoFactor clears the secret and the flag. A code is only checked
// when DisableRequiresCode is set and two-factor login is enabled.
func (s *AccountService) DisableTwoFactor(ctx context.Context, userID int64, code string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		if err != nil {
			return err
		}

		if err := s.checkDisableCode(u, code); err != nil {
			return err
		}
		return tx.Users().DisableTwoFactor(ctx, userID)
	})
	if err != nil {
		return wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("two-factor disabled", "user_id", userID)
	return nil
}

// checkDisableCode guards every path that turns enabled two-factor login off.
func (s *AccountService) checkDisableCode(u domain.User, code string) error {
	if !s.DisableRequiresCode || !u.TwoFactorEnabled {
		return nil
	}
	if u.OTPSecret == nil || !s.OTP.Verify(*u.OTPSecret, code) {
		return ErrInvalidOTP
	}
	return nil
}

// UpdateEmail sets or, with an empty value, clears the account email.
func (s *AccountService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	emailPtr, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if emailPtr != nil {
			other, err := tx.Users().GetUserByEmail(ctx, *emailPtr)
			switch {
			case err == nil && other.ID != userID:
				return ErrEmailTaken
			case err != nil && !errors.Is(err, store.ErrNotFound):
				return err
			}
		}

		err := tx.Users().UpdateEmail(ctx, userID, emailPtr)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrAccountNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrEmailTaken
		}
		return err
	})
	return wrapStorage(err)
}

// GetProfile returns the stored account.
func (s *AccountService) GetProfile(ctx context.Context, userID int64) (domain.User, error) {
	return s.getUser(ctx, userID)
}

func (s *AccountService) getUser(ctx context.Context, userID int64) (domain.User, error) {
	var u domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		u, err = tx.Users().GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	})
	if err != nil {
		return domain.User{}, wrapStorage(err)
	}
	return u, nil
}

func (s *AccountService) issuer() string {
	if s.Issuer == "" {
		return otpx.DefaultIssuer
	}
	return s.Issuer
}

// normalizeEmail trims email and maps the empty string to nil.
func normalizeEmail(email string) (*string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	return &email, nil
}
