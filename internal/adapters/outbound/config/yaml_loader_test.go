package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/euvat/euvat/internal/adapters/outbound/config"
	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".euvat.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_country: ie
default_category: parking
precision: 4
locale: de
history:
  enabled: false
http:
  addr: 127.0.0.1:9090
  read_timeout: 5s
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ie", cfg.DefaultCountry)
	assert.Equal(t, vat.Parking, cfg.Category())
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, "de", cfg.Locale)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	// unset keys keep their defaults
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, domain.LogFormatText, cfg.LogFormat)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .euvat.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `default_country: US`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "US")
}

func TestYAMLLoader_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_country: DE
precision: 3
`)
	t.Setenv("EUVAT_DEFAULT_COUNTRY", "FR")
	t.Setenv("EUVAT_DEFAULT_CATEGORY", "super_reduced")
	t.Setenv("EUVAT_LOG_FORMAT", "json")
	t.Setenv("EUVAT_HISTORY_ENABLED", "false")
	t.Setenv("EUVAT_HTTP_TIMEOUT", "3s")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "FR", cfg.DefaultCountry)
	assert.Equal(t, vat.SuperReduced, cfg.Category())
	assert.Equal(t, 3, cfg.Precision, "file value kept when env unset")
	assert.Equal(t, domain.LogFormatJSON, cfg.LogFormat)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.HTTP.WriteTimeout)
}

func TestYAMLLoader_BadEnvironmentValue(t *testing.T) {
	t.Setenv("EUVAT_PRECISION", "many")

	_, err := appconfig.New().Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EUVAT_* environment")
}
