package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tacogips/billingkit/internal/debug"
)

// Environment variable prefix for billingkit configuration.
const envPrefix = "BILLINGKIT"

// envBindings maps configuration keys to their environment variables.
var envBindings = map[string]string{
	"registry.url":            "BILLINGKIT_REGISTRY_URL",
	"registry.component_url":  "BILLINGKIT_COMPONENT_URL",
	"registry.timeout":        "BILLINGKIT_REGISTRY_TIMEOUT",
	"registry.templates_dir":  "BILLINGKIT_TEMPLATES_DIR",
	"registry.offline":        "BILLINGKIT_OFFLINE",
	"install.skip":            "BILLINGKIT_SKIP_INSTALL",
	"install.package_manager": "BILLINGKIT_PACKAGE_MANAGER",
	"output.color":            "BILLINGKIT_COLOR",
	"output.quiet":            "BILLINGKIT_QUIET",
}

// Loader loads configuration from defaults, a YAML file, the project's .env
// file and the process environment, in increasing order of precedence.
type Loader struct {
	v          *viper.Viper
	projectDir string
}

// NewLoader creates a loader that reads the project .env from projectDir.
// An empty projectDir disables .env lookup.
func NewLoader(projectDir string) *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("registry.url", defaults.Registry.URL)
	v.SetDefault("registry.component_url", defaults.Registry.ComponentURL)
	v.SetDefault("registry.timeout", defaults.Registry.Timeout)
	v.SetDefault("registry.templates_dir", defaults.Registry.TemplatesDir)
	v.SetDefault("registry.offline", defaults.Registry.Offline)
	v.SetDefault("install.skip", defaults.Install.Skip)
	v.SetDefault("install.package_manager", defaults.Install.PackageManager)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.quiet", defaults.Output.Quiet)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v, projectDir: projectDir}
}

// Load reads configuration. If configFile is empty, ./billingkit.yaml and the
// user config path are tried and a missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = l.findConfigFile()
	}

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist):
				if explicit {
					return nil, NewConfigErrorWithCause(ConfigNotFound, configFile, "configuration file not found", err)
				}
			default:
				return nil, NewConfigErrorWithCause(ConfigInvalid, configFile, "failed to read configuration file", err)
			}
		} else {
			debug.Debug("[config] Loaded configuration file: %s", configFile)
		}
	}

	if err := l.applyDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, configFile, "failed to decode configuration", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	debug.DebugJSON("config", cfg)
	return &cfg, nil
}

func (l *Loader) findConfigFile() string {
	candidates := []string{ConfigFileName}
	if l.projectDir != "" {
		candidates[0] = filepath.Join(l.projectDir, ConfigFileName)
	}
	if p := DefaultConfigPath(); p != "" {
		candidates = append(candidates, p)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// applyDotEnv reads BILLINGKIT_* keys from the project's .env file. Values
// already present in the process environment win.
func (l *Loader) applyDotEnv() error {
	if l.projectDir == "" {
		return nil
	}

	path := filepath.Join(l.projectDir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to parse .env file", err)
	}

	for key, env := range envBindings {
		value, ok := values[env]
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(env); set {
			continue
		}
		debug.Debug("[config] Using %s from %s", env, path)
		l.v.Set(key, value)
	}
	return nil
}
