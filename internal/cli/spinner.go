package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"

	"github.com/tacogips/billingkit/internal/app"
	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/template/model"
	"github.com/tacogips/billingkit/internal/template/provider"
)

var (
	// spinnerTTY gates the spinner; it reads the real terminal, not isInteractive.
	spinnerTTY = hasTTY

	// showSpinner renders title until wait returns.
	showSpinner = func(title string, wait func()) error {
		return spinner.New().Title(title).Action(wait).Run()
	}
)

// runWithSpinner executes action with a spinner when attached to a terminal.
// A spinner failure is logged and never replaces the action's result.
func runWithSpinner(ctx context.Context, title string, action func() error) error {
	if !spinnerTTY() || globalQuiet {
		return action()
	}

	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action()
	}()

	spinnerErr := showSpinner(title, func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
	})

	// The action honors ctx, so this returns promptly after cancellation.
	<-done
	if spinnerErr != nil {
		debug.Debug("[cli] Spinner failed: %v", spinnerErr)
	}
	return actionErr
}

// spinnerResolver shows a spinner while the template is fetched. Prompts
// that follow resolution run without it.
type spinnerResolver struct {
	inner app.TemplateResolver
}

func (r spinnerResolver) Resolve(ctx context.Context, f model.Framework, p model.Provider) (*provider.Resolution, error) {
	var res *provider.Resolution
	err := runWithSpinner(ctx, fmt.Sprintf("Fetching %s template for %s...", p.Label(), f.Label()), func() error {
		var err error
		res, err = r.inner.Resolve(ctx, f, p)
		return err
	})
	return res, err
}
