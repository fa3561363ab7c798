package http

import (
	"net/http"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
)

// AccessKeysHandler serves the access key endpoints.
type AccessKeysHandler struct {
	AccessKeys *service.AccessKeyService
}

// HandleList handles GET /api/keys/{user_id}
//
//	@Summary		List access keys
//	@Tags			Access Keys
//	@Produce		json
//	@Param			user_id				path	int		true	"User ID"
//	@Param			include_sensitive	query	bool	false	"Decrypt key values"
//	@Success		200					{array}	vaultsdk.AccessKey
//	@Failure		400					{object}	vaultsdk.APIError	"invalid user id"
//	@Router			/api/keys/{user_id} [get].
func (h *AccessKeysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.PathInt64(r, "user_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	views, err := h.AccessKeys.List(r.Context(), userID, httpx.QueryBool(r, "include_sensitive"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]vaultsdk.AccessKey, 0, len(views))
	for _, v := range views {
		out = append(out, toAccessKey(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /api/keys
//
//	@Summary		Create access key
//	@Description	Generates a random key. The plaintext value is returned once in this response
//	@Description	and afterwards only with include_sensitive.
//	@Tags			Access Keys
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateAccessKeyRequest	true	"Key description"
//	@Success		201		{object}	vaultsdk.AccessKey				"the new key with its value"
//	@Failure		400		{object}	vaultsdk.APIError				"validation failure"
//	@Failure		404		{object}	vaultsdk.APIError				"unknown account"
//	@Router			/api/keys [post].
func (h *AccessKeysHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.CreateAccessKeyRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	view, err := h.AccessKeys.Create(r.Context(), req.UserID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAccessKey(view))
}

// HandleSetActive handles PUT /api/keys/active
//
//	@Summary		Activate or deactivate access key
//	@Tags			Access Keys
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.SetAccessKeyActiveRequest	true	"Key and state"
//	@Success		200		{object}	vaultsdk.MessageResponse			"message"
//	@Failure		404		{object}	vaultsdk.APIError					"key not found"
//	@Router			/api/keys/active [put].
func (h *AccessKeysHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.SetAccessKeyActiveRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}
	if req.KeyID <= 0 {
		writeBadRequest(w, "key_id is required")
		return
	}

	if err := h.AccessKeys.SetActive(r.Context(), req.UserID, req.KeyID, req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.Active {
		writeMessage(w, http.StatusOK, "access key activated")
		return
	}
	writeMessage(w, http.StatusOK, "access key deactivated")
}

// HandleDelete handles DELETE /api/keys/{user_id}/{key_id}
//
//	@Summary		Delete access key
//	@Tags			Access Keys
//	@Produce		json
//	@Param			user_id	path		int	true	"User ID"
//	@Param			key_id	path		int	true	"Key ID"
//	@Success		200		{object}	vaultsdk.MessageResponse	"message"
//	@Failure		404		{object}	vaultsdk.APIError			"key not found"
//	@Router			/api/keys/{user_id}/{key_id} [delete].
func (h *AccessKeysHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.PathInt64(r, "user_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	keyID, err := httpx.PathInt64(r, "key_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.AccessKeys.Delete(r.Context(), userID, keyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "access key deleted")
}

func toAccessKey(v domain.AccessKeyView) vaultsdk.AccessKey {
	return vaultsdk.AccessKey{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Value:       v.Value,
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}
