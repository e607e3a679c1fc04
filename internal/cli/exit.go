package cli

import "github.com/tacogips/billingkit/internal/app"

// Exit codes.
const (
	// ExitSuccess indicates the command completed or the user cancelled it.
	ExitSuccess = 0

	// ExitGeneralError indicates any other failure.
	ExitGeneralError = 1
)

// ExitCode maps a command error to the process exit code. Cancellation is a
// clean exit.
func ExitCode(err error) int {
	if err == nil || app.IsCancelled(err) {
		return ExitSuccess
	}
	return ExitGeneralError
}
