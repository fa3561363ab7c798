package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DataDir      string `env:"VAULT_DATA_DIR" envDefault:"data"` // Directory holding the database, key and pepper files
	DatabaseFile string `env:"VAULT_DATABASE_FILE"`              // Optional: defaults to <data dir>/vault.db
	KeyFile      string `env:"VAULT_KEY_FILE"`                   // Optional: defaults to <data dir>/secret.key
	PepperFile   string `env:"VAULT_PEPPER_FILE"`                // Optional: defaults to <data dir>/pepper
	SecretKey    string `env:"APP_SECRET_KEY"`                   // Optional: derives the cipher key, overriding the key file

	TOTPIssuer          string `env:"VAULT_TOTP_ISSUER" envDefault:"Key Manager"`
	TOTPSkew            uint   `env:"VAULT_TOTP_SKEW" envDefault:"1"`
	DisableRequiresCode bool   `env:"VAULT_2FA_DISABLE_REQUIRES_CODE" envDefault:"false"`

	Env                 string        `env:"ENV" envDefault:"dev"`                   // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`            // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`           // json, text
	Port                int           `env:"PORT" envDefault:"8080"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"` // Graceful shutdown timeout
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.resolvePaths()
	return cfg, nil
}

// resolvePaths fills file locations left empty from the data directory.
// Call it again after changing DataDir.
func (c *Config) resolvePaths() {
	if c.DatabaseFile == "" {
		c.DatabaseFile = filepath.Join(c.DataDir, "vault.db")
	}
	if c.KeyFile == "" {
		c.KeyFile = filepath.Join(c.DataDir, "secret.key")
	}
	if c.PepperFile == "" {
		c.PepperFile = filepath.Join(c.DataDir, "pepper")
	}
}

// WithDataDir returns a copy rooted at dir. Paths that were derived from the
// previous data directory move with it; explicitly configured ones stay.
func (c Config) WithDataDir(dir string) Config {
	old := c
	c.DataDir = dir
	if old.DatabaseFile == filepath.Join(old.DataDir, "vault.db") {
		c.DatabaseFile = ""
	}
	if old.KeyFile == filepath.Join(old.DataDir, "secret.key") {
		c.KeyFile = ""
	}
	if old.PepperFile == filepath.Join(old.DataDir, "pepper") {
		c.PepperFile = ""
	}
	c.resolvePaths()
	return c
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	return nil
}
