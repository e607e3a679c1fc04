package deps

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tacogips/billingkit/internal/debug"
)

// CommandRunner runs an external command to completion.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner that inherits the process's stdout/stderr.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes argv and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	debug.Debug("[deps] Running: %s (dir=%q)", strings.Join(argv, " "), r.Dir)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	// Prompts from the package manager must still reach the user.
	cmd.Stdin = os.Stdin

	return cmd.Run()
}
