package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultRegistryURL serves <identifier>.json template payloads.
	DefaultRegistryURL = "https://billingsdk.com/tr/"
	// DefaultComponentURL serves UI component manifests for "add".
	DefaultComponentURL = "https://billingsdk.com/r/"
	// DefaultRegistryTimeout bounds the remote fetch.
	DefaultRegistryTimeout = 10 * time.Second
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "billingkit.yaml"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			URL:          DefaultRegistryURL,
			ComponentURL: DefaultComponentURL,
			Timeout:      DefaultRegistryTimeout,
		},
		Install: InstallConfig{
			Skip: false,
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultConfigPath returns the user-level configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "billingkit", "config.yaml")
}
