package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/deps"
)

// componentNamePattern matches registry component names such as
// "pricing-table-one".
var componentNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ComponentInstaller is the tool the runner executes to add UI components.
const ComponentInstaller = "shadcn@latest"

// AddOptions contains options for adding a UI component.
type AddOptions struct {
	// Component is the registry component name.
	Component string
	// ComponentURL is the registry base URL, ending in "/".
	ComponentURL string
	// Manager selects the runner (npx, pnpm dlx, yarn dlx, bunx).
	Manager deps.PackageManager
	// Runner executes the command.
	Runner deps.CommandRunner
	// DryRun returns the command without running it.
	DryRun bool
}

// AddResult contains the results of adding a component.
type AddResult struct {
	// ManifestURL is the component manifest passed to the installer.
	ManifestURL string
	// Command is the argv that was run.
	Command []string
}

// Add installs a single UI component through the package runner.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	name := strings.TrimSpace(opts.Component)
	if name == "" {
		return nil, NewValidationError("component name is required", nil)
	}
	if !componentNamePattern.MatchString(name) {
		return nil, NewValidationError(fmt.Sprintf("invalid component name %q", name), nil)
	}
	if opts.ComponentURL == "" {
		return nil, NewValidationError("component registry URL is not configured", nil)
	}

	base := opts.ComponentURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	result := &AddResult{ManifestURL: base + name + ".json"}
	result.Command = opts.Manager.RunnerCommand(ComponentInstaller, "add", result.ManifestURL)
	debug.Debug("[app] Add command: %s", strings.Join(result.Command, " "))

	if opts.DryRun {
		return result, nil
	}
	if opts.Runner == nil {
		return result, NewInstallError("no command runner configured", nil)
	}
	if err := opts.Runner.Run(ctx, result.Command); err != nil {
		return result, NewInstallError(fmt.Sprintf("failed to add component %q", name),
			&deps.InstallError{Command: result.Command, Cause: err})
	}
	return result, nil
}
