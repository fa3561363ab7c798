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

// AccessKeyService issues random API tokens. Values are encrypted at rest
// and only returned in plaintext on creation or when explicitly requested.
type AccessKeyService struct {
	Store  store.Store
	Cipher *cryptox.Cipher
	Now    func() time.Time
}

func (s *AccessKeyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create generates a new active key.
func (s *AccessKeyService) Create(ctx context.Context, userID int64, name, description string) (domain.AccessKeyView, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.AccessKeyView{}, ErrDescriptionRequired
	}

	value, err := cryptox.GenerateHexToken(cryptox.TokenSize128)
	if err != nil {
		return domain.AccessKeyView{}, fmt.Errorf("generate access key: %w", err)
	}
	valueCipher, err := s.Cipher.Encrypt(value)
	if err != nil {
		return domain.AccessKeyView{}, fmt.Errorf("encrypt access key: %w", err)
	}

	k := domain.AccessKey{
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: description,
		ValueCipher: valueCipher,
		Active:      true,
		CreatedAt:   s.now(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		} else if err != nil {
			return err
		}

		var err error
		k.ID, err = tx.AccessKeys().CreateAccessKey(ctx, k)
		return err
	})
	if err != nil {
		return domain.AccessKeyView{}, wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("access key created", "user_id", userID, "key_id", k.ID)

	return domain.AccessKeyView{
		ID:          k.ID,
		Name:        k.Name,
		Description: k.Description,
		Value:       &value,
		Active:      k.Active,
		CreatedAt:   k.CreatedAt,
	}, nil
}

// List returns the user's keys, newest first.
func (s *AccessKeyService) List(ctx context.Context, userID int64, includeSensitive bool) ([]domain.AccessKeyView, error) {
	var keys []domain.AccessKey
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		keys, err = tx.AccessKeys().ListAccessKeys(ctx, userID)
		return err
	})
	if err != nil {
		return nil, wrapStorage(err)
	}

	out := make([]domain.AccessKeyView, 0, len(keys))
	for _, k := range keys {
		v := domain.AccessKeyView{
			ID:          k.ID,
			Name:        k.Name,
			Description: k.Description,
			Active:      k.Active,
			CreatedAt:   k.CreatedAt,
		}
		if includeSensitive {
			if plain, ok := s.Cipher.Decrypt(k.ValueCipher); ok {
				v.Value = &plain
			} else {
				slogx.FromContext(ctx).Warn("access key could not be decrypted", "key_id", k.ID)
			}
		}
		out = append(out, v)
	}
	return out, nil
}

// SetActive activates or deactivates a key.
func (s *AccessKeyService) SetActive(ctx context.Context, userID, keyID int64, active bool) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.AccessKeys().SetAccessKeyActive(ctx, userID, keyID, active)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccessKeyNotFound
		}
		return err
	})
	if err != nil {
		return wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("access key state changed", "user_id", userID, "key_id", keyID, "active", active)
	return nil
}

// Delete permanently removes a key.
func (s *AccessKeyService) Delete(ctx context.Context, userID, keyID int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.AccessKeys().DeleteAccessKey(ctx, userID, keyID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccessKeyNotFound
		}
		return err
	})
	if err != nil {
		return wrapStorage(err)
	}

	slogx.FromContext(ctx).Info("access key deleted", "user_id", userID, "key_id", keyID)
	return nil
}
