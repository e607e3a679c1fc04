package config

import "time"

// Config represents the billingkit configuration.
type Config struct {
	// Registry configures where templates are fetched from.
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`
	// Install configures dependency installation.
	Install InstallConfig `mapstructure:"install" yaml:"install"`
	// Output configures display.
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// RegistryConfig represents template registry settings.
type RegistryConfig struct {
	// URL is the base URL template identifiers are appended to.
	URL string `mapstructure:"url" yaml:"url"`
	// ComponentURL is the base URL of the UI component registry used by "add".
	ComponentURL string `mapstructure:"component_url" yaml:"component_url"`
	// Timeout bounds the remote fetch before falling back to bundled templates.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// TemplatesDir overrides the bundled fallback templates with a directory.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// Offline skips the remote registry entirely.
	Offline bool `mapstructure:"offline" yaml:"offline"`
}

// InstallConfig represents dependency installation settings.
type InstallConfig struct {
	// Skip disables running the package manager.
	Skip bool `mapstructure:"skip" yaml:"skip"`
	// PackageManager forces npm, pnpm, yarn or bun instead of detecting it.
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color" yaml:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet" yaml:"quiet"`
}
