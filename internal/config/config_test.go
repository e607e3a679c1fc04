package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		if value, ok := os.LookupEnv(env); ok {
			require.NoError(t, os.Unsetenv(env))
			t.Cleanup(func() { _ = os.Setenv(env, value) })
		}
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(t.TempDir()).Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultRegistryURL, cfg.Registry.URL)
	assert.Equal(t, DefaultComponentURL, cfg.Registry.ComponentURL)
	assert.Equal(t, DefaultRegistryTimeout, cfg.Registry.Timeout)
	assert.False(t, cfg.Install.Skip)
	assert.True(t, cfg.Output.Color)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `registry:
  url: https://registry.example.com/tr/
  timeout: 3s
install:
  package_manager: pnpm
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := NewLoader(dir).Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://registry.example.com/tr/", cfg.Registry.URL)
	assert.Equal(t, 3*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "pnpm", cfg.Install.PackageManager)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader("").Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ConfigNotFound, cfgErr.Type)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BILLINGKIT_SKIP_INSTALL", "true")
	t.Setenv("BILLINGKIT_REGISTRY_TIMEOUT", "250ms")

	cfg, err := NewLoader(t.TempDir()).Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Install.Skip)
	assert.Equal(t, 250*time.Millisecond, cfg.Registry.Timeout)
}

func TestLoadRejectsZeroTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("BILLINGKIT_REGISTRY_TIMEOUT", "0s")

	_, err := NewLoader(t.TempDir()).Load("")

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "registry.timeout", cfgErr.Field)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dotenv := "BILLINGKIT_SKIP_INSTALL=true\nBILLINGKIT_PACKAGE_MANAGER=yarn\nUNRELATED=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0644))

	cfg, err := NewLoader(dir).Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Install.Skip)
	assert.Equal(t, "yarn", cfg.Install.PackageManager)
}

func TestLoadDotEnvLosesToProcessEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BILLINGKIT_PACKAGE_MANAGER=yarn\n"), 0644))
	t.Setenv("BILLINGKIT_PACKAGE_MANAGER", "bun")

	cfg, err := NewLoader(dir).Load("")
	require.NoError(t, err)

	assert.Equal(t, "bun", cfg.Install.PackageManager)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty registry", func(c *Config) { c.Registry.URL = "" }, "registry.url"},
		{"non-http registry", func(c *Config) { c.Registry.URL = "ftp://example.com/" }, "registry.url"},
		{"missing trailing slash", func(c *Config) { c.Registry.URL = "https://example.com/tr" }, "registry.url"},
		{"negative timeout", func(c *Config) { c.Registry.Timeout = -time.Second }, "registry.timeout"},
		{"zero timeout", func(c *Config) { c.Registry.Timeout = 0 }, "registry.timeout"},
		{"unknown package manager", func(c *Config) { c.Install.PackageManager = "cargo" }, "install.package_manager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
