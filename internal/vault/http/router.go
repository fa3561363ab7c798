package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/internal/vault/store"
	"github.com/aussiebroadwan/keyvault/pkg/cryptox"
	"github.com/aussiebroadwan/keyvault/pkg/httpx"
	"github.com/aussiebroadwan/keyvault/pkg/slogx"

	_ "github.com/aussiebroadwan/keyvault/api/vault" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store      store.Store
	cipher     *cryptox.Cipher
	Accounts   *service.AccountService
	Vault      *service.VaultService
	AccessKeys *service.AccessKeyService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	cipher *cryptox.Cipher,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cipher:       cipher,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.SecurityHeaders(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAccounts()
	r.registerTwoFactor()
	r.registerCredentials()
	r.registerAccessKeys()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			KeyVault API
//	@version		0.1.0
//	@description	Personal credential vault. Accounts log in with a password and optional TOTP code,
//	@description	then store credentials and access keys that are encrypted at rest.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/keyvault
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /api/ping", PingHandler)
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cipher))
}

func (r *Router) registerAccounts() {
	h := &AccountHandler{Accounts: r.Accounts}

	r.Mux.HandleFunc("POST /api/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/master-key", h.HandleSetMasterKey)
	r.Mux.HandleFunc("POST /api/master-key/verify", h.HandleVerifyMasterKey)
	r.Mux.HandleFunc("PUT /api/users/email", h.HandleUpdateEmail)
	r.Mux.HandleFunc("GET /api/users/{user_id}", h.HandleProfile)
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{Accounts: r.Accounts}

	r.Mux.HandleFunc("POST /api/2fa/setup", h.HandleSetup)
	r.Mux.HandleFunc("POST /api/2fa/confirm", h.HandleConfirm)
	r.Mux.HandleFunc("POST /api/2fa/disable", h.HandleDisable)
}

func (r *Router) registerCredentials() {
	h := &CredentialsHandler{Vault: r.Vault}

	r.Mux.HandleFunc("GET /api/credentials/{user_id}", h.HandleList)
	r.Mux.HandleFunc("GET /api/credentials/{user_id}/{credential_id}", h.HandleGet)
	r.Mux.HandleFunc("POST /api/credentials", h.HandleCreate)
	r.Mux.HandleFunc("PUT /api/credentials", h.HandleUpdate)
	r.Mux.HandleFunc("DELETE /api/credentials/{user_id}/{credential_id}", h.HandleDelete)
}

func (r *Router) registerAccessKeys() {
	h := &AccessKeysHandler{AccessKeys: r.AccessKeys}

	r.Mux.HandleFunc("GET /api/keys/{user_id}", h.HandleList)
	r.Mux.HandleFunc("POST /api/keys", h.HandleCreate)
	r.Mux.HandleFunc("PUT /api/keys/active", h.HandleSetActive)
	r.Mux.HandleFunc("DELETE /api/keys/{user_id}/{key_id}", h.HandleDelete)
}
