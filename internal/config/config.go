// Package config loads application configuration from a JSON file in the
// data directory, layered under environment variable overrides.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds application configuration.
type Config struct {
	// Bind is the address the web server listens on.
	Bind string `json:"bind,omitempty"`

	// Port is the web server port.
	Port int `json:"port,omitempty"`

	// SessionKey signs the cookie session. A random key is generated at
	// startup when unset, which invalidates sessions across restarts.
	SessionKey string `json:"session_key,omitempty"`

	// FetchTimeoutSeconds bounds each seeder HTTP request.
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds,omitempty"`

	// FallbackThreshold is the minimum number of fetched quotes below
	// which the bundled fallback catalog is appended.
	FallbackThreshold int `json:"fallback_threshold,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized.
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bind:                "127.0.0.1",
		Port:                8080,
		FetchTimeoutSeconds: 10,
		FallbackThreshold:   50,
	}
}

// Load loads configuration from baseDir/config.json, then applies
// environment overrides. Returns defaults if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir().
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs. Overlay values win if non-zero.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Bind = overlay.Bind
	if result.Bind == "" {
		result.Bind = base.Bind
	}
	result.Port = overlay.Port
	if result.Port == 0 {
		result.Port = base.Port
	}
	result.SessionKey = overlay.SessionKey
	if result.SessionKey == "" {
		result.SessionKey = base.SessionKey
	}
	result.FetchTimeoutSeconds = overlay.FetchTimeoutSeconds
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = base.FetchTimeoutSeconds
	}
	result.FallbackThreshold = overlay.FallbackThreshold
	if result.FallbackThreshold == 0 {
		result.FallbackThreshold = base.FallbackThreshold
	}
	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}
	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	return result
}

// applyEnv overrides config fields from environment variables.
// godotenv is loaded (if a .env exists) by main before Load is called.
func applyEnv(cfg *Config) {
	if v := os.Getenv("QUOTES_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := getEnvAsInt("QUOTES_PORT", 0); v != 0 {
		cfg.Port = v
	}
	if v := os.Getenv("QUOTES_SESSION_KEY"); v != "" {
		cfg.SessionKey = v
	}
	if v := getEnvAsInt("QUOTES_FETCH_TIMEOUT", 0); v != 0 {
		cfg.FetchTimeoutSeconds = v
	}
}

// getEnvAsInt reads an integer environment variable with a default.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
