package vaultsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login checks credentials. A nil error with TwoFactorRequired set means
// the call must be repeated with OTPCode.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetupTwoFactor starts enrollment and returns the secret to scan. code may
// be empty unless the account already has two-factor login enabled and the
// server requires a code to turn it off.
func (c *Client) SetupTwoFactor(ctx context.Context, userID int64, code string) (*TwoFactorSetupResponse, error) {
	var out TwoFactorSetupResponse
	req := TwoFactorSetupRequest{UserID: userID, Code: code}
	if err := c.do(ctx, http.MethodPost, "/api/2fa/setup", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmTwoFactor enables two-factor login once a code verifies.
func (c *Client) ConfirmTwoFactor(ctx context.Context, userID int64, code string) error {
	req := TwoFactorCodeRequest{UserID: userID, Code: code}
	return c.do(ctx, http.MethodPost, "/api/2fa/confirm", req, nil, http.StatusOK)
}

// DisableTwoFactor turns two-factor login off. code may be empty unless the
// server requires it.
func (c *Client) DisableTwoFactor(ctx context.Context, userID int64, code string) error {
	req := TwoFactorCodeRequest{UserID: userID, Code: code}
	return c.do(ctx, http.MethodPost, "/api/2fa/disable", req, nil, http.StatusOK)
}

// SetMasterKey sets or replaces the master key.
func (c *Client) SetMasterKey(ctx context.Context, userID int64, key string) error {
	req := MasterKeyRequest{UserID: userID, Key: key}
	return c.do(ctx, http.MethodPost, "/api/master-key", req, nil, http.StatusOK)
}

// VerifyMasterKey reports whether key matches the stored master key.
func (c *Client) VerifyMasterKey(ctx context.Context, userID int64, key string) (bool, error) {
	var out MasterKeyVerifyResponse
	req := MasterKeyRequest{UserID: userID, Key: key}
	if err := c.do(ctx, http.MethodPost, "/api/master-key/verify", req, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// UpdateEmail changes or clears the account email.
func (c *Client) UpdateEmail(ctx context.Context, userID int64, email string) error {
	req := UpdateEmailRequest{UserID: userID, Email: email}
	return c.do(ctx, http.MethodPut, "/api/users/email", req, nil, http.StatusOK)
}

// GetProfile fetches the account profile.
func (c *Client) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
