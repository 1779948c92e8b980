// Package config loads tool configuration from an optional YAML file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file
const (
	EnvAPIKey   = "PNW_API_KEY"
	EnvAPIURL   = "PNW_API_URL"
	EnvDB       = "CITYBUILD_DB"
	EnvLogLevel = "CITYBUILD_LOG_LEVEL"
	EnvListen   = "CITYBUILD_LISTEN"
)

// Config is the top-level configuration shared by the CLI and the server
type Config struct {
	APIKey    string `yaml:"api_key"`
	APIURL    string `yaml:"api_url"`
	DBPath    string `yaml:"db_path"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Listen    string `yaml:"listen"`
	// Strict panics on allocator invariant violations instead of clamping
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns a Config populated with default values
func DefaultConfig() Config {
	dbPath := "citybuild.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".citybuild", "citybuild.db")
	}
	return Config{
		DBPath:    dbPath,
		LogLevel:  "info",
		LogFormat: "auto",
		Listen:    ":8080",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; an empty path
// skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	applyEnv(&cfg, os.Getenv)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string, target *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	for key, dst := range map[string]*string{
		EnvAPIKey:   &cfg.APIKey,
		EnvAPIURL:   &cfg.APIURL,
		EnvDB:       &cfg.DBPath,
		EnvLogLevel: &cfg.LogLevel,
		EnvListen:   &cfg.Listen,
	} {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
}

// Validate checks cfg and returns every problem found joined together
func Validate(cfg *Config) error {
	var errs []error

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be auto, text or json; got %q", cfg.LogFormat))
	}
	if cfg.DBPath == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
