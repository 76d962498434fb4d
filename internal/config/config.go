// Package config loads the planner server settings.
//
// Settings come from three places, later ones winning: built-in defaults,
// an optional YAML file, and environment variables (which may themselves be
// seeded from a .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory  = "memory"
	BackendSQLite  = "sqlite"
	BackendGSheets = "gsheets"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Addr string `yaml:"addr"`

	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`

	// TitleJoiner joins twin names in the dashboard title.
	TitleJoiner string `yaml:"title_joiner"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  string `yaml:"token_ttl"`
}

// StorageConfig selects the sheet backend and how collections map to tables.
type StorageConfig struct {
	Backend string `yaml:"backend"` // memory, sqlite, gsheets
	Layout  string `yaml:"layout"`  // single, per-collection
	// SheetName is the table holding every collection in the single layout.
	SheetName string `yaml:"sheet_name"`

	SQLitePath string `yaml:"sqlite_path"`

	SpreadsheetID   string `yaml:"spreadsheet_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Addr: ":8080",
		Auth: AuthConfig{
			TokenTTL: "24h",
		},
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			Layout:     "single",
			SheetName:  "Sheet1",
			SQLitePath: "./data/planner.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		TitleJoiner: " e ",
	}
}

// LoadEnvFile loads variables from a .env file into the environment.
// Variables already set win; a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the settings with Read and validates them.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads the YAML file at path (if any) and applies environment
// overrides without validating. A missing file yields the defaults.
func Read(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setFromEnv(&c.Addr, "ADDR")
	setFromEnv(&c.Auth.JWTSecret, "JWT_SECRET")
	setFromEnv(&c.Auth.TokenTTL, "TOKEN_TTL")
	setFromEnv(&c.Storage.Backend, "BACKEND")
	setFromEnv(&c.Storage.Layout, "SHEET_LAYOUT")
	setFromEnv(&c.Storage.SheetName, "SHEET_NAME")
	setFromEnv(&c.Storage.SQLitePath, "SQLITE_PATH")
	setFromEnv(&c.Storage.SpreadsheetID, "SPREADSHEET_ID")
	setFromEnv(&c.Storage.CredentialsFile, "GOOGLE_CREDENTIALS_FILE")
	setFromEnv(&c.Logging.Level, "LOG_LEVEL")
	setFromEnv(&c.Logging.Format, "LOG_FORMAT")
	setFromEnv(&c.TitleJoiner, "TITLE_JOINER")
}

func setFromEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

// Validate checks that the settings are usable by the server.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: jwt secret is required (JWT_SECRET)", ErrInvalid)
	}
	if _, err := c.TokenDuration(); err != nil {
		return err
	}
	return c.Storage.Validate()
}

// Validate checks the backend selection and its required settings.
func (s StorageConfig) Validate() error {
	switch s.Backend {
	case BackendMemory:
	case BackendSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite backend needs a database path (SQLITE_PATH)", ErrInvalid)
		}
	case BackendGSheets:
		if s.SpreadsheetID == "" || s.CredentialsFile == "" {
			return fmt.Errorf("%w: gsheets backend needs SPREADSHEET_ID and GOOGLE_CREDENTIALS_FILE", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, s.Backend)
	}
	return nil
}

// TokenDuration parses the session token lifetime.
func (c *Config) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Auth.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("%w: token ttl: %w", ErrInvalid, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: token ttl must be positive", ErrInvalid)
	}
	return d, nil
}
