package config

import (
	"net/url"
	"strings"
)

// Validate checks configuration values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "", "configuration cannot be nil")
	}

	if err := validateBaseURL("registry.url", cfg.Registry.URL); err != nil {
		return err
	}
	if err := validateBaseURL("registry.component_url", cfg.Registry.ComponentURL); err != nil {
		return err
	}

	if cfg.Registry.Timeout <= 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "registry.timeout", "timeout must be positive")
	}

	switch cfg.Install.PackageManager {
	case "", "npm", "pnpm", "yarn", "bun":
	default:
		return NewConfigErrorWithField(ConfigValidationFailed, "", "install.package_manager",
			"must be one of npm, pnpm, yarn, bun")
	}

	return nil
}

func validateBaseURL(field, raw string) error {
	if raw == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", field, "URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return NewConfigErrorWithCause(ConfigValidationFailed, "", "invalid "+field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", field, "URL must use http or https")
	}
	if !strings.HasSuffix(raw, "/") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", field, "URL must end with '/'")
	}
	return nil
}
