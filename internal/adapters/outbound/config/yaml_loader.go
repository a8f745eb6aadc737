package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/euvat/euvat/internal/domain"
)

const (
	// FileName is the configuration file read from the working directory.
	FileName  = ".euvat.yaml"
	envPrefix = "EUVAT"
)

// YAMLLoader implements domain.ConfigLoader by reading .euvat.yaml and
// overlaying EUVAT_* environment variables.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// envOverrides mirrors the settings that may come from the environment.
// Pointer fields stay nil when the variable is unset.
type envOverrides struct {
	DefaultCountry  *string        `envconfig:"DEFAULT_COUNTRY"`
	DefaultCategory *string        `envconfig:"DEFAULT_CATEGORY"`
	Precision       *int           `envconfig:"PRECISION"`
	Locale          *string        `envconfig:"LOCALE"`
	LogFormat       *string        `envconfig:"LOG_FORMAT"`
	HistoryEnabled  *bool          `envconfig:"HISTORY_ENABLED"`
	HTTPAddr        *string        `envconfig:"HTTP_ADDR"`
	HTTPRateLimit   *int           `envconfig:"HTTP_RATE_LIMIT"`
	HTTPTimeout     *time.Duration `envconfig:"HTTP_TIMEOUT"`
}

// Load reads .euvat.yaml from dir on top of domain.DefaultConfig, applies
// environment overrides and validates the result. A missing file is not an error.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return domain.Config{}, err
	}

	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return domain.Config{}, fmt.Errorf("reading %s_* environment: %w", envPrefix, err)
	}
	cfg = applyEnv(cfg, env)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays set environment values; the environment always wins over the file.
func applyEnv(cfg domain.Config, env envOverrides) domain.Config {
	if env.DefaultCountry != nil {
		cfg.DefaultCountry = *env.DefaultCountry
	}
	if env.DefaultCategory != nil {
		cfg.DefaultCategory = *env.DefaultCategory
	}
	if env.Precision != nil {
		cfg.Precision = *env.Precision
	}
	if env.Locale != nil {
		cfg.Locale = *env.Locale
	}
	if env.LogFormat != nil {
		cfg.LogFormat = *env.LogFormat
	}
	if env.HistoryEnabled != nil {
		cfg.History.Enabled = *env.HistoryEnabled
	}
	if env.HTTPAddr != nil {
		cfg.HTTP.Addr = *env.HTTPAddr
	}
	if env.HTTPRateLimit != nil {
		cfg.HTTP.RateLimit = *env.HTTPRateLimit
	}
	if env.HTTPTimeout != nil {
		cfg.HTTP.ReadTimeout = *env.HTTPTimeout
		cfg.HTTP.WriteTimeout = *env.HTTPTimeout
	}
	return cfg
}
