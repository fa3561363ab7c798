package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/slogx"
	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
)

// AccountHandler serves registration, login, master key and profile endpoints.
type AccountHandler struct {
	Accounts *service.AccountService
}

// HandleRegister handles POST /api/register
//
//	@Summary		Register
//	@Description	Creates an account. Username must be at least 5 characters after trimming and password at least 8.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	vaultsdk.RegisterResponse	"message, user_id"
//	@Failure		400		{object}	vaultsdk.APIError			"validation failure, username or email taken"
//	@Router			/api/register [post].
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	id, err := h.Accounts.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, vaultsdk.RegisterResponse{
		Message: "registration successful",
		UserID:  id,
	})
}

// HandleLogin handles POST /api/login
//
//	@Summary		Login
//	@Description	Checks username and password. Accounts with two-factor login enabled get a
//	@Description	two_factor_required response until the request is repeated with otp_code.
//	@Description	Unknown usernames and wrong passwords share one error response.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	vaultsdk.LoginResponse	"message, user_id and, when pending, code"
//	@Failure		400		{object}	vaultsdk.APIError		"malformed request"
//	@Failure		401		{object}	vaultsdk.APIError		"invalid credentials or code"
//	@Failure		500		{object}	vaultsdk.APIError		"internal server error"
//	@Router			/api/login [post].
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.Accounts.Login(r.Context(), req.Username, req.Password, req.OTPCode)
	switch {
	case errors.Is(err, service.ErrInvalidOTP):
		vaultsdk.ErrInvalidOTP.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		vaultsdk.ErrInvalidCredentials.WriteError(w)
		return
	case err != nil:
		writeServiceError(w, r, err)
		return
	}

	if res.Status == service.LoginTwoFactorRequired {
		httpx.WriteJSON(w, http.StatusOK, vaultsdk.LoginResponse{
			Message: vaultsdk.CodeTwoFactorRequired,
			UserID:  res.UserID,
			Code:    vaultsdk.CodeTwoFactorRequired,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.LoginResponse{
		Message: "login successful",
		UserID:  res.UserID,
	})
}

// HandleSetMasterKey handles POST /api/master-key
//
//	@Summary		Set master key
//	@Description	Sets or replaces the master key. Must be at least 8 characters.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.MasterKeyRequest	true	"Master key"
//	@Success		200		{object}	vaultsdk.MessageResponse	"message"
//	@Failure		400		{object}	vaultsdk.APIError			"validation failure"
//	@Failure		404		{object}	vaultsdk.APIError			"unknown account"
//	@Router			/api/master-key [post].
func (h *AccountHandler) HandleSetMasterKey(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.MasterKeyRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	if err := h.Accounts.SetMasterKey(r.Context(), req.UserID, req.Key); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "master key updated")
}

// HandleVerifyMasterKey handles POST /api/master-key/verify
//
//	@Summary		Verify master key
//	@Description	Reports whether the key matches. Accounts without a master key always report false.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.MasterKeyRequest			true	"Master key"
//	@Success		200		{object}	vaultsdk.MasterKeyVerifyResponse	"valid"
//	@Failure		400		{object}	vaultsdk.APIError					"malformed request"
//	@Router			/api/master-key/verify [post].
func (h *AccountHandler) HandleVerifyMasterKey(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.MasterKeyRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	valid := h.Accounts.VerifyMasterKey(r.Context(), req.UserID, req.Key)
	if !valid {
		slogx.FromContext(r.Context()).Info("master key rejected", "user_id", req.UserID)
	}
	httpx.WriteJSON(w, http.StatusOK, vaultsdk.MasterKeyVerifyResponse{Valid: valid})
}

// HandleUpdateEmail handles PUT /api/users/email
//
//	@Summary		Update email
//	@Description	Sets the account email, or clears it when empty.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.UpdateEmailRequest	true	"New email"
//	@Success		200		{object}	vaultsdk.MessageResponse	"message"
//	@Failure		400		{object}	vaultsdk.APIError			"malformed email"
//	@Failure		404		{object}	vaultsdk.APIError			"unknown account"
//	@Failure		409		{object}	vaultsdk.APIError			"email in use"
//	@Router			/api/users/email [put].
func (h *AccountHandler) HandleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.UpdateEmailRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	if err := h.Accounts.UpdateEmail(r.Context(), req.UserID, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "email updated")
}

// HandleProfile handles GET /api/users/{user_id}
//
//	@Summary		Get profile
//	@Description	Returns the account without password, master key or TOTP material.
//	@Tags			Accounts
//	@Produce		json
//	@Param			user_id	path		int	true	"User ID"
//	@Success		200		{object}	vaultsdk.Profile
//	@Failure		400		{object}	vaultsdk.APIError	"invalid user id"
//	@Failure		404		{object}	vaultsdk.APIError	"unknown account"
//	@Router			/api/users/{user_id} [get].
func (h *AccountHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.PathInt64(r, "user_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.Accounts.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.Profile{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		TwoFactorEnabled: u.TwoFactorEnabled,
		TwoFactorPending: u.TwoFactorPending(),
		HasMasterKey:     u.HasMasterKey(),
		LastLoginAt:      u.LastLoginAt,
		CreatedAt:        u.CreatedAt,
	})
}
