package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/store"
	"github.com/aussiebroadwan/keyvault/pkg/cryptox"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/vaultsdk"
)

// PingHandler godoc
//
//	@Summary		Ping
//	@Description	Connectivity check returning a fixed message
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	vaultsdk.MessageResponse	"pong"
//	@Router			/api/ping [get].
func PingHandler(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "pong")
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vaultsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, vaultsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection and the secret cipher
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vaultsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	vaultsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, cipher *cryptox.Cipher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &vaultsdk.HealthChecks{
			Database: "ok",
			Cipher:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !cipherReady(cipher) {
			checks.Cipher = "error: round trip failed"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, vaultsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

func cipherReady(c *cryptox.Cipher) bool {
	if c == nil {
		return false
	}
	token, err := c.Encrypt("readyz")
	if err != nil {
		return false
	}
	plain, ok := c.Decrypt(token)
	return ok && plain == "readyz"
}
