package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
	"github.com/aussiebroadwan/keyvault/internal/vault/store"
	"github.com/aussiebroadwan/keyvault/pkg/cryptox"
	"github.com/aussiebroadwan/keyvault/pkg/slogx"
)

type CreateCredential struct {
	Title    string
	Login    string
	Password string
	Notes    string
}

// UpdateCredential is a partial update. An unset field is left alone. A set
// but empty Password is ignored, while a set but empty Login or Notes clears
// the stored value.
type UpdateCredential struct {
	Title    Optional[string]
	Login    Optional[string]
	Password Optional[string]
	Notes    Optional[string]
}

// VaultService manages a user's stored credentials. Passwords and notes are
// encrypted with Cipher before they reach the store.
type VaultService struct {
	Store  store.Store
	Cipher *cryptox.Cipher
	Now    func() time.Time
}

func (s *VaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns the user's non-archived credentials, newest first.
func (s *VaultService) List(ctx context.Context, userID int64, includeSensitive bool) ([]domain.CredentialView, error) {
	var creds []domain.Credential
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		creds, err = tx.Credentials().ListCredentials(ctx, userID)
		return err
	})
	if err != nil {
		return nil, wrapStorage(err)
	}

	out := make([]domain.CredentialView, 0, len(creds))
	for _, c := range creds {
		out = append(out, s.view(ctx, c, includeSensitive))
	}
	return out, nil
}

// Get returns one credential owned by userID.
func (s *VaultService) Get(ctx context.Context, userID, credentialID int64, includeSensitive bool) (domain.CredentialView, error) {
	var c domain.Credential
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		c, err = tx.Credentials().GetCredential(ctx, userID, credentialID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrCredentialNotFound
		}
		return err
	})
	if err != nil {
		return domain.CredentialView{}, wrapStorage(err)
	}
	return s.view(ctx, c, includeSensitive), nil
}

// Create stores a new credential and echoes it back with its secrets.
func (s *VaultService) Create(ctx context.Context, userID int64, in CreateCredential) (domain.CredentialView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.CredentialView{}, ErrTitleRequired
	}
	if in.Password == "" {
		return domain.CredentialView{}, ErrSecretRequired
	}

	passwordCipher, err := s.Cipher.Encrypt(in.Password)
	if err != nil {
		return domain.CredentialView{}, fmt.Errorf("encrypt password: %w", err)
	}
	notesCipher, err := s.encryptOptional(in.Notes)
	if err != nil {
		return domain.CredentialView{}, err
	}

	now := s.now()
	c := domain.Credential{
		UserID:         userID,
		Title:          title,
		Login:          trimmedOrNil(in.Login),
		PasswordCipher: passwordCipher,
		NotesCipher:    notesCipher,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		} else if err != nil {
			return err
		}

		taken, err := tx.Credentials().TitleTaken(ctx, userID, title, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrTitleTaken
		}

		c.ID, err = tx.Credentials().CreateCredential(ctx, c)
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrTitleTaken
		}
		return err
	})
	if err != nil {
		return domain.CredentialView{}, wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("credential created", "user_id", userID, "credential_id", c.ID)

	view := domain.CredentialView{
		ID:        c.ID,
		Title:     c.Title,
		Login:     c.Login,
		Password:  &in.Password,
		Archived:  c.Archived,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if in.Notes != "" {
		notes := in.Notes
		view.Notes = &notes
	}
	return view, nil
}

// Update applies a partial update and always bumps updated_at.
func (s *VaultService) Update(ctx context.Context, userID, credentialID int64, in UpdateCredential) (domain.CredentialView, error) {
	var newTitle string
	if title, ok := in.Title.Get(); ok {
		newTitle = strings.TrimSpace(title)
		if newTitle == "" {
			return domain.CredentialView{}, ErrTitleRequired
		}
	}

	var c domain.Credential
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		c, err = tx.Credentials().GetCredential(ctx, userID, credentialID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrCredentialNotFound
		}
		if err != nil {
			return err
		}

		if in.Title.Set {
			taken, err := tx.Credentials().TitleTaken(ctx, userID, newTitle, credentialID)
			if err != nil {
				return err
			}
			if taken {
				return ErrTitleTaken
			}
			c.Title = newTitle
		}

		if login, ok := in.Login.Get(); ok {
			c.Login = trimmedOrNil(login)
		}

		if password, ok := in.Password.Get(); ok && password != "" {
			if c.PasswordCipher, err = s.Cipher.Encrypt(password); err != nil {
				return fmt.Errorf("encrypt password: %w", err)
			}
		}

		if notes, ok := in.Notes.Get(); ok {
			if c.NotesCipher, err = s.encryptOptional(notes); err != nil {
				return err
			}
		}

		c.UpdatedAt = s.now()
		err = tx.Credentials().UpdateCredential(ctx, c)
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrTitleTaken
		case errors.Is(err, store.ErrNotFound):
			return ErrCredentialNotFound
		}
		return err
	})
	if err != nil {
		return domain.CredentialView{}, wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("credential updated", "user_id", userID, "credential_id", credentialID)
	return s.view(ctx, c, true), nil
}

// Delete permanently removes a credential.
func (s *VaultService) Delete(ctx context.Context, userID, credentialID int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Credentials().DeleteCredential(ctx, userID, credentialID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrCredentialNotFound
		}
		return err
	})
	if err != nil {
		return wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("credential deleted", "user_id", userID, "credential_id", credentialID)
	return nil
}

// view projects a stored credential. Undecryptable secrets are left nil.
func (s *VaultService) view(ctx context.Context, c domain.Credential, includeSensitive bool) domain.CredentialView {
	v := domain.CredentialView{
		ID:        c.ID,
		Title:     c.Title,
		Login:     c.Login,
		Archived:  c.Archived,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if !includeSensitive {
		return v
	}

	v.Password = s.decrypt(ctx, c.ID, "password", c.PasswordCipher)
	if c.NotesCipher != nil {
		v.Notes = s.decrypt(ctx, c.ID, "notes", *c.NotesCipher)
	}
	return v
}

func (s *VaultService) decrypt(ctx context.Context, credentialID int64, field, token string) *string {
	plain, ok := s.Cipher.Decrypt(token)
	if !ok {
		slogx.FromContext(ctx).Warn("credential field could not be decrypted",
			"credential_id", credentialID,
			"field", field,
		)
		return nil
	}
	return &plain
}

func (s *VaultService) encryptOptional(plain string) (*string, error) {
	if plain == "" {
		return nil, nil
	}
	token, err := s.Cipher.Encrypt(plain)
	if err != nil {
		return nil, fmt.Errorf("encrypt notes: %w", err)
	}
	return &token, nil
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
