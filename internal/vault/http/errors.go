package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/slogx"
	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
)

// writeServiceError maps service error classes onto API errors. Storage
// faults are logged with their cause and reported generically.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	serviceAPIError(r, err).WriteError(w)
}

// writeRequestError answers every failure with 400. The error code in the
// body still names the class, so conflict and not_found stay distinguishable.
func writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := *serviceAPIError(r, err)
	apiErr.StatusCode = http.StatusBadRequest
	apiErr.WriteError(w)
}

func serviceAPIError(r *http.Request, err error) *vaultsdk.APIError {
	switch {
	case errors.Is(err, service.ErrInvalidOTP):
		return vaultsdk.NewAPIError(http.StatusBadRequest, vaultsdk.ErrorCodeInvalidOTP, "invalid two-factor code")
	case errors.Is(err, service.ErrInvalidInput):
		return vaultsdk.NewAPIError(http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		return vaultsdk.NewAPIError(http.StatusConflict, vaultsdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return vaultsdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrNotFound):
		return vaultsdk.NewAPIError(http.StatusNotFound, vaultsdk.ErrorCodeNotFound, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		return vaultsdk.ErrServerError
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	vaultsdk.NewAPIError(http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, description).WriteError(w)
}

// decode reads the JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		writeBadRequest(w, err.Error())
		return false
	}
	return true
}

func validUserID(w http.ResponseWriter, userID int64) bool {
	if userID <= 0 {
		writeBadRequest(w, "user_id is required")
		return false
	}
	return true
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	httpx.WriteJSON(w, status, vaultsdk.MessageResponse{Message: msg})
}
