package http

import (
	"net/http"

	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
)

// TwoFactorHandler serves the TOTP enrollment endpoints.
type TwoFactorHandler struct {
	Accounts *service.AccountService
}

// HandleSetup handles POST /api/2fa/setup
//
//	@Summary		Start two-factor setup
//	@Description	Issues a fresh TOTP secret and otpauth URI. Two-factor login stays off until confirmed.
//	@Description	Replacing an enabled secret needs a current code when the server requires one to disable.
//	@Tags			Two-Factor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.TwoFactorSetupRequest	true	"Account"
//	@Success		200		{object}	vaultsdk.TwoFactorSetupResponse	"secret, otpauth_uri"
//	@Failure		400		{object}	vaultsdk.APIError				"malformed request, invalid code or unknown account"
//	@Router			/api/2fa/setup [post].
func (h *TwoFactorHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.TwoFactorSetupRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	setup, err := h.Accounts.InitiateTwoFactorSetup(r.Context(), req.UserID, req.Code)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.TwoFactorSetupResponse{
		Secret:     setup.Secret,
		OTPAuthURI: setup.URI,
	})
}

// HandleConfirm handles POST /api/2fa/confirm
//
//	@Summary		Confirm two-factor setup
//	@Description	Enables two-factor login when the code verifies against the latest issued secret.
//	@Tags			Two-Factor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.TwoFactorCodeRequest	true	"Account and code"
//	@Success		200		{object}	vaultsdk.MessageResponse		"message"
//	@Failure		400		{object}	vaultsdk.APIError				"no pending setup, invalid code or unknown account"
//	@Router			/api/2fa/confirm [post].
func (h *TwoFactorHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.TwoFactorCodeRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	if err := h.Accounts.ConfirmTwoFactor(r.Context(), req.UserID, req.Code); err != nil {
		writeRequestError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "two-factor authentication enabled")
}

// HandleDisable handles POST /api/2fa/disable
//
//	@Summary		Disable two-factor login
//	@Description	Clears the TOTP secret. A current code is required only when the server is configured to demand one.
//	@Tags			Two-Factor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.TwoFactorCodeRequest	true	"Account and optional code"
//	@Success		200		{object}	vaultsdk.MessageResponse		"message"
//	@Failure		400		{object}	vaultsdk.APIError				"invalid code or unknown account"
//	@Router			/api/2fa/disable [post].
func (h *TwoFactorHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.TwoFactorCodeRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	if err := h.Accounts.DisableTwoFactor(r.Context(), req.UserID, req.Code); err != nil {
		writeRequestError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "two-factor authentication disabled")
}
