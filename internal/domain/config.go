package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/euvat/euvat/vat"
)

// Log formats accepted by LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds settings loaded from .euvat.yaml and EUVAT_* environment variables.
type Config struct {
	DefaultCountry  string        `yaml:"default_country"  json:"default_country,omitempty"  validate:"omitempty,len=2,alpha"`
	DefaultCategory string        `yaml:"default_category" json:"default_category,omitempty"`
	Precision       int           `yaml:"precision"        json:"precision"                  validate:"gte=0,lte=10"`
	Locale          string        `yaml:"locale"           json:"locale"                     validate:"required"`
	LogFormat       string        `yaml:"log_format"       json:"log_format"                 validate:"oneof=text json"`
	History         HistoryConfig `yaml:"history"          json:"history"`
	HTTP            HTTPConfig    `yaml:"http"             json:"http"`
}

// HistoryConfig controls the calculation log.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// HTTPConfig configures the `serve` command.
type HTTPConfig struct {
	Addr         string        `yaml:"addr"          json:"addr"          validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  json:"read_timeout"  validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout" validate:"gt=0"`
	RateLimit    int           `yaml:"rate_limit"    json:"rate_limit"    validate:"gte=0"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Precision: 2,
		Locale:    "en",
		LogFormat: LogFormatText,
		History:   HistoryConfig{Enabled: true},
		HTTP: HTTPConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit:    120,
		},
	}
}

var validate = validator.New()

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q check (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}

	if c.DefaultCountry != "" && !vat.IsSupported(c.DefaultCountry) {
		return fmt.Errorf("default_country %q is not a supported country", c.DefaultCountry)
	}

	if c.DefaultCategory != "" && !vat.ParseRateCategory(c.DefaultCategory).Known() {
		return fmt.Errorf("unknown default_category %q (valid: super_reduced, reduced, reduced2, standard, parking)", c.DefaultCategory)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}

	return nil
}

// Category returns the configured default category, or Standard when unset.
func (c Config) Category() vat.RateCategory {
	return vat.ParseRateCategory(c.DefaultCategory)
}

// LanguageTag returns the display locale, falling back to English.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
