package deps

import (
	"context"
	"fmt"
	"strings"

	"github.com/tacogips/billingkit/internal/debug"
)

// InstallError is returned when the package manager could not be started or
// exited with a failure.
type InstallError struct {
	Command []string
	Cause   error
}

// Error returns the error message.
func (e *InstallError) Error() string {
	return fmt.Sprintf("dependency installation failed (%s): %v", strings.Join(e.Command, " "), e.Cause)
}

// Unwrap returns the underlying error.
func (e *InstallError) Unwrap() error {
	return e.Cause
}

// Report describes what Installer.Report did.
type Report struct {
	// Dependencies are the declared package names, in payload order.
	Dependencies []string
	// Command is the argv that was (or would have been) run.
	Command []string
	// Skipped is set when installation was disabled.
	Skipped bool
	// Installed is set when the command ran and succeeded.
	Installed bool
}

// Installer runs the package manager for a template's dependencies.
type Installer struct {
	Runner  CommandRunner
	Manager PackageManager
	// Skip disables installation; dependencies are only reported.
	Skip bool
}

// NewInstaller creates an installer.
func NewInstaller(runner CommandRunner, manager PackageManager, skip bool) *Installer {
	return &Installer{Runner: runner, Manager: manager, Skip: skip}
}

// Report installs dependencies synchronously. An empty list is a no-op. The
// returned Report is always non-nil; a failed command yields *InstallError.
func (i *Installer) Report(ctx context.Context, dependencies []string) (*Report, error) {
	report := &Report{Dependencies: dependencies}
	if len(dependencies) == 0 {
		return report, nil
	}

	report.Command = i.Manager.InstallCommand(dependencies...)
	if i.Skip {
		debug.Debug("[deps] Install skipped: %s", strings.Join(report.Command, " "))
		report.Skipped = true
		return report, nil
	}
	if i.Runner == nil {
		return report, &InstallError{Command: report.Command, Cause: fmt.Errorf("no command runner configured")}
	}

	if err := i.Runner.Run(ctx, report.Command); err != nil {
		return report, &InstallError{Command: report.Command, Cause: err}
	}

	report.Installed = true
	return report, nil
}
