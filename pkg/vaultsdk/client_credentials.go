package vaultsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListCredentials returns the user's credentials, newest first.
func (c *Client) ListCredentials(ctx context.Context, userID int64, includeSensitive bool) ([]Credential, error) {
	var out []Credential
	path := fmt.Sprintf("/api/credentials/%d%s", userID, sensitiveQuery(includeSensitive))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCredential fetches a single credential.
func (c *Client) GetCredential(ctx context.Context, userID, credentialID int64, includeSensitive bool) (*Credential, error) {
	var out Credential
	path := fmt.Sprintf("/api/credentials/%d/%d%s", userID, credentialID, sensitiveQuery(includeSensitive))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCredential stores a new credential and echoes it back with secrets.
func (c *Client) CreateCredential(ctx context.Context, req CreateCredentialRequest) (*Credential, error) {
	var out Credential
	if err := c.do(ctx, http.MethodPost, "/api/credentials", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCredential applies a partial update.
func (c *Client) UpdateCredential(ctx context.Context, req UpdateCredentialRequest) (*Credential, error) {
	var out Credential
	if err := c.do(ctx, http.MethodPut, "/api/credentials", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCredential removes a credential permanently.
func (c *Client) DeleteCredential(ctx context.Context, userID, credentialID int64) error {
	path := fmt.Sprintf("/api/credentials/%d/%d", userID, credentialID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusOK)
}
