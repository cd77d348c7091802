package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tailscale/hujson"
)

// QuotaChrome selects the browser storage.sync limits.
const QuotaChrome = "chrome"

// Config holds application configuration.
// Values come from defaults, then the config file, then the environment.
type Config struct {
	Backend             string   `json:"backend" env:"SHELF_BACKEND"`
	DataDir             string   `json:"dataDir" env:"SHELF_DATA_DIR"`
	Quota               string   `json:"quota" env:"SHELF_QUOTA"`
	SkipDeleteConfirm   bool     `json:"skipDeleteConfirm" env:"SHELF_SKIP_DELETE_CONFIRM"`
	ImportFolder        string   `json:"importFolder" env:"SHELF_IMPORT_FOLDER"`
	FetchTitles         bool     `json:"fetchTitles" env:"SHELF_FETCH_TITLES"`
	FetchTimeoutSeconds int      `json:"fetchTimeoutSeconds" env:"SHELF_FETCH_TIMEOUT"`
	CheckConcurrency    int      `json:"checkConcurrency" env:"SHELF_CHECK_CONCURRENCY"`
	CheckExcludeDomains []string `json:"checkExcludeDomains" env:"SHELF_CHECK_EXCLUDE" envSeparator:","`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	dataDir, err := DefaultDataDir()
	if err != nil {
		dataDir = ".shelf"
	}
	return Config{
		Backend:             BackendBolt,
		DataDir:             dataDir,
		ImportFolder:        "Imported",
		FetchTitles:         true,
		FetchTimeoutSeconds: 5,
		CheckConcurrency:    10,
		CheckExcludeDomains: []string{"github.com", "gitlab.com"},
	}
}

// LoadConfig reads config from the file at path and applies environment
// overrides. Creates the file with defaults if it doesn't exist.
// The file may contain comments and trailing commas.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Non-fatal: keep defaults even if the file can't be created
		_ = SaveConfig(path, &config)
	case err != nil:
		return nil, err
	default:
		standard, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := json.Unmarshal(standard, &config); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.applyDefaults()
	return &config, config.Validate()
}

// applyDefaults fills zero or invalid values.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}
	if c.ImportFolder == "" {
		c.ImportFolder = defaults.ImportFolder
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if c.CheckConcurrency <= 0 {
		c.CheckConcurrency = defaults.CheckConcurrency
	}
	if c.CheckExcludeDomains == nil {
		c.CheckExcludeDomains = defaults.CheckExcludeDomains
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendBolt, BackendSQLite, BackendJSON, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := c.SyncQuota(); err != nil {
		return err
	}
	return nil
}

// SyncQuota returns the quota selected by the Quota field.
func (c *Config) SyncQuota() (Quota, error) {
	switch c.Quota {
	case "":
		return Quota{}, nil
	case QuotaChrome:
		return ChromeQuota(), nil
	default:
		return Quota{}, fmt.Errorf("unknown quota %q (want %q or empty)", c.Quota, QuotaChrome)
	}
}

// FetchTimeout returns the title fetch timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/shelf/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
