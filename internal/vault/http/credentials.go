package http

import (
	"net/http"

	"github.com/aussiebroadwan/keyvault/internal/vault/domain"
	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
)

// CredentialsHandler serves the stored credential endpoints.
type CredentialsHandler struct {
	Vault *service.VaultService
}

// HandleList handles GET /api/credentials/{user_id}
//
//	@Summary		List credentials
//	@Description	Lists the user's credentials, newest first. Passwords and notes are only
//	@Description	included when include_sensitive is true.
//	@Tags			Credentials
//	@Produce		json
//	@Param			user_id				path		int		true	"User ID"
//	@Param			include_sensitive	query		bool	false	"Decrypt password and notes"
//	@Success		200					{array}		vaultsdk.Credential
//	@Failure		400					{object}	vaultsdk.APIError	"invalid user id"
//	@Router			/api/credentials/{user_id} [get].
func (h *CredentialsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.PathInt64(r, "user_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	views, err := h.Vault.List(r.Context(), userID, httpx.QueryBool(r, "include_sensitive"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]vaultsdk.Credential, 0, len(views))
	for _, v := range views {
		out = append(out, toCredential(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /api/credentials/{user_id}/{credential_id}
//
//	@Summary		Get credential
//	@Tags			Credentials
//	@Produce		json
//	@Param			user_id				path		int		true	"User ID"
//	@Param			credential_id		path		int		true	"Credential ID"
//	@Param			include_sensitive	query		bool	false	"Decrypt password and notes"
//	@Success		200					{object}	vaultsdk.Credential
//	@Failure		400					{object}	vaultsdk.APIError	"invalid id"
//	@Failure		404					{object}	vaultsdk.APIError	"credential not found"
//	@Router			/api/credentials/{user_id}/{credential_id} [get].
func (h *CredentialsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, credentialID, ok := credentialPath(w, r)
	if !ok {
		return
	}

	view, err := h.Vault.Get(r.Context(), userID, credentialID, httpx.QueryBool(r, "include_sensitive"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCredential(view))
}

// HandleCreate handles POST /api/credentials
//
//	@Summary		Create credential
//	@Description	Stores a credential. Titles are unique per user. Password and notes are encrypted at rest.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateCredentialRequest	true	"Credential"
//	@Success		201		{object}	vaultsdk.Credential					"the stored credential with secrets"
//	@Failure		400		{object}	vaultsdk.APIError					"validation failure, unknown account or title already used"
//	@Router			/api/credentials [post].
func (h *CredentialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.CreateCredentialRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}

	view, err := h.Vault.Create(r.Context(), req.UserID, service.CreateCredential{
		Title:    req.Title,
		Login:    req.Login,
		Password: req.Password,
		Notes:    req.Notes,
	})
	if err != nil {
		writeRequestError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCredential(view))
}

// HandleUpdate handles PUT /api/credentials
//
//	@Summary		Update credential
//	@Description	Partial update. Omitted fields are left alone, an empty password is ignored,
//	@Description	and an empty login or notes clears the stored value.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.UpdateCredentialRequest	true	"Changes"
//	@Success		200		{object}	vaultsdk.Credential					"the updated credential with secrets"
//	@Failure		400		{object}	vaultsdk.APIError					"validation failure, unknown credential or title already used"
//	@Router			/api/credentials [put].
func (h *CredentialsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.UpdateCredentialRequest
	if !decode(w, r, &req) || !validUserID(w, req.UserID) {
		return
	}
	if req.CredentialID <= 0 {
		writeBadRequest(w, "credential_id is required")
		return
	}

	view, err := h.Vault.Update(r.Context(), req.UserID, req.CredentialID, service.UpdateCredential{
		Title:    service.FromPtr(req.Title),
		Login:    service.FromPtr(req.Login),
		Password: service.FromPtr(req.Password),
		Notes:    service.FromPtr(req.Notes),
	})
	if err != nil {
		writeRequestError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCredential(view))
}

// HandleDelete handles DELETE /api/credentials/{user_id}/{credential_id}
//
//	@Summary		Delete credential
//	@Tags			Credentials
//	@Produce		json
//	@Param			user_id			path		int	true	"User ID"
//	@Param			credential_id	path		int	true	"Credential ID"
//	@Success		200				{object}	vaultsdk.MessageResponse	"message"
//	@Failure		400				{object}	vaultsdk.APIError			"invalid id or credential not found"
//	@Router			/api/credentials/{user_id}/{credential_id} [delete].
func (h *CredentialsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, credentialID, ok := credentialPath(w, r)
	if !ok {
		return
	}

	if err := h.Vault.Delete(r.Context(), userID, credentialID); err != nil {
		writeRequestError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "credential deleted")
}

func credentialPath(w http.ResponseWriter, r *http.Request) (userID, credentialID int64, ok bool) {
	userID, err := httpx.PathInt64(r, "user_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return 0, 0, false
	}
	credentialID, err = httpx.PathInt64(r, "credential_id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return 0, 0, false
	}
	return userID, credentialID, true
}

func toCredential(v domain.CredentialView) vaultsdk.Credential {
	return vaultsdk.Credential{
		ID:        v.ID,
		Title:     v.Title,
		Login:     v.Login,
		Password:  v.Password,
		Notes:     v.Notes,
		Archived:  v.Archived,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
