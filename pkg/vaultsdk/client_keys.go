package vaultsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListAccessKeys returns the user's access keys, newest first.
func (c *Client) ListAccessKeys(ctx context.Context, userID int64, includeSensitive bool) ([]AccessKey, error) {
	var out []AccessKey
	path := fmt.Sprintf("/api/keys/%d%s", userID, sensitiveQuery(includeSensitive))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAccessKey generates a key. The response carries the plaintext value.
func (c *Client) CreateAccessKey(ctx context.Context, req CreateAccessKeyRequest) (*AccessKey, error) {
	var out AccessKey
	if err := c.do(ctx, http.MethodPost, "/api/keys", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetAccessKeyActive activates or deactivates a key.
func (c *Client) SetAccessKeyActive(ctx context.Context, userID, keyID int64, active bool) error {
	req := SetAccessKeyActiveRequest{UserID: userID, KeyID: keyID, Active: active}
	return c.do(ctx, http.MethodPut, "/api/keys/active", req, nil, http.StatusOK)
}

// DeleteAccessKey removes a key permanently.
func (c *Client) DeleteAccessKey(ctx context.Context, userID, keyID int64) error {
	path := fmt.Sprintf("/api/keys/%d/%d", userID, keyID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK)
}
