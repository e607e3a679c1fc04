// Package deps installs the npm packages a template declares by shelling out to
// the project's package manager.
package deps

import (
	"fmt"
	"os"
	"strings"
)

// UserAgentEnv is set by npm, pnpm, yarn and bun for every script and npx-style
// invocation. Its first token names the invoking tool, e.g. "pnpm/9.1.0 npm/? node/v20".
const UserAgentEnv = "npm_config_user_agent"

// PackageManager identifies a JavaScript package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// ParsePackageManager converts a configured name. The empty string is not
// accepted; callers treat it as "detect".
func ParsePackageManager(s string) (PackageManager, error) {
	switch pm := PackageManager(strings.ToLower(strings.TrimSpace(s))); pm {
	case NPM, PNPM, Yarn, Bun:
		return pm, nil
	default:
		return "", fmt.Errorf("unknown package manager %q (expected npm, pnpm, yarn or bun)", s)
	}
}

// FromUserAgent picks the package manager by matching the user agent prefix.
// Anything unrecognised falls back to npm.
func FromUserAgent(userAgent string) PackageManager {
	switch {
	case strings.HasPrefix(userAgent, "pnpm"):
		return PNPM
	case strings.HasPrefix(userAgent, "yarn"):
		return Yarn
	case strings.HasPrefix(userAgent, "bun"):
		return Bun
	default:
		return NPM
	}
}

// Resolve returns override when set, otherwise the manager inferred from the
// environment.
func Resolve(override string) (PackageManager, error) {
	if override != "" {
		return ParsePackageManager(override)
	}
	return FromUserAgent(os.Getenv(UserAgentEnv)), nil
}

// InstallCommand returns the argv that adds packages to the project.
func (pm PackageManager) InstallCommand(packages ...string) []string {
	var argv []string
	switch pm {
	case PNPM:
		argv = []string{"pnpm", "add"}
	case Yarn:
		argv = []string{"yarn", "add"}
	case Bun:
		argv = []string{"bun", "add"}
	default:
		argv = []string{"npm", "install"}
	}
	return append(argv, packages...)
}

// RunnerCommand returns the argv that executes a package binary without
// installing it, the npx equivalent of each manager.
func (pm PackageManager) RunnerCommand(args ...string) []string {
	var argv []string
	switch pm {
	case PNPM:
		argv = []string{"pnpm", "dlx"}
	case Yarn:
		argv = []string{"yarn", "dlx"}
	case Bun:
		argv = []string{"bunx"}
	default:
		argv = []string{"npx"}
	}
	return append(argv, args...)
}
