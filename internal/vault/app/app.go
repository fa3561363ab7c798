package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/keyvault/internal/vault/http"
	"github.com/aussiebroadwan/keyvault/internal/vault/service"
	"github.com/aussiebroadwan/keyvault/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/keyvault/pkg/cryptox"
	"github.com/aussiebroadwan/keyvault/pkg/otpx"
	"github.com/aussiebroadwan/keyvault/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the vault service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     *sqlite.Store
	cipher *cryptox.Cipher
	hasher *cryptox.Hasher
	otp    *otpx.Engine

	accountService   *service.AccountService
	vaultService     *service.VaultService
	accessKeyService *service.AccessKeyService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from the config.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "vault-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with every dependency initialised. The data
// directory, key and pepper files are created on first run.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewLogger(cfg)
	}

	app := &Application{cfg: cfg, logger: logger}

	if err := app.initSecrets(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("vault service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down vault service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("vault service stopped")
	return nil
}

// initSecrets resolves the pepper and the cipher key. An APP_SECRET_KEY
// always wins over the key file.
func (app *Application) initSecrets() error {
	if err := os.MkdirAll(app.cfg.DataDir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewHasher(pepper)

	key, err := cryptox.LoadOrCreateKey(app.cfg.SecretKey, app.cfg.KeyFile)
	if err != nil {
		return fmt.Errorf("failed to load encryption key: %w", err)
	}
	app.cipher, err = cryptox.NewCipher(key)
	if err != nil {
		return fmt.Errorf("failed to initialise cipher: %w", err)
	}

	source := "key file"
	if app.cfg.SecretKey != "" {
		source = "environment"
	}
	app.logger.Info("encryption key loaded", "source", source)

	app.otp = otpx.New(app.cfg.TOTPSkew)
	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.accountService = &service.AccountService{
		Store:               app.db,
		Hasher:              app.hasher,
		OTP:                 app.otp,
		Issuer:              app.cfg.TOTPIssuer,
		DisableRequiresCode: app.cfg.DisableRequiresCode,
	}
	app.vaultService = &service.VaultService{
		Store:  app.db,
		Cipher: app.cipher,
	}
	app.accessKeyService = &service.AccessKeyService{
		Store:  app.db,
		Cipher: app.cipher,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.cipher, app.logger)

	router.Accounts = app.accountService
	router.Vault = app.vaultService
	router.AccessKeys = app.accessKeyService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// OpenStore opens the configured database file without migrating it.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sqlite.NewStore(sqlite.FileDSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}
