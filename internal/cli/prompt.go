package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tacogips/billingkit/internal/app"
	"github.com/tacogips/billingkit/internal/detect"
	"github.com/tacogips/billingkit/internal/template/generator"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
)

// prompter asks the user questions.
type prompter interface {
	// Select returns one of options. def may be empty.
	Select(message string, options []string, def string, describe func(string) string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)
}

// activePrompter is replaced in tests.
var activePrompter prompter = surveyPrompter{}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string, def string, describe func(string) string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if def != "" {
		prompt.Default = def
	}
	if describe != nil {
		prompt.Description = func(value string, index int) string {
			return describe(value)
		}
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", promptErr(err)
	}
	return answer, nil
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}

	var answer bool
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, promptErr(err)
	}
	return answer, nil
}

// promptErr turns Ctrl-C and Ctrl-D into a cancellation.
func promptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return app.ErrCancelled
	}
	return err
}

// chooseFramework returns the framework from the flag, the prompt or, when
// non-interactive, the detector.
func chooseFramework(projectRoot, flagValue string, interactive bool) (model.Framework, error) {
	if flagValue != "" {
		f, err := model.ParseFramework(flagValue)
		if err != nil {
			return "", app.NewValidationError("invalid --framework", err)
		}
		return f, nil
	}

	detected, ok := detect.Detect(projectRoot)
	if !interactive {
		if !ok {
			return "", app.NewValidationError("could not detect the project framework; pass --framework", nil)
		}
		printInfo(fmt.Sprintf("Detected framework: %s", noun(detected.Label())))
		return detected, nil
	}

	options := make([]string, 0, len(model.Frameworks()))
	for _, f := range model.Frameworks() {
		options = append(options, string(f))
	}

	answer, err := activePrompter.Select("Which framework is this project using?", options, string(detected),
		func(v string) string { return model.Framework(v).Label() })
	if err != nil {
		return "", err
	}
	return model.ParseFramework(answer)
}

// chooseProvider returns the provider from the flag or a prompt limited to
// providers that support f.
func chooseProvider(f model.Framework, flagValue string, interactive bool) (model.Provider, error) {
	if flagValue != "" {
		p, err := model.ParseProvider(flagValue)
		if err != nil {
			return "", app.NewValidationError("invalid --provider", err)
		}
		return p, nil
	}

	allowed := matrix.AllowedProviders(f)
	switch {
	case len(allowed) == 0:
		return "", app.NewValidationError(fmt.Sprintf("no payment provider supports %s", f.Label()), nil)
	case len(allowed) == 1 && !interactive:
		return allowed[0], nil
	case !interactive:
		return "", app.NewValidationError(fmt.Sprintf("several providers support %s; pass --provider", f.Label()), nil)
	}

	options := make([]string, 0, len(allowed))
	for _, p := range allowed {
		options = append(options, string(p))
	}

	answer, err := activePrompter.Select("Which payment provider do you want to integrate?", options, "",
		func(v string) string { return model.Provider(v).Label() })
	if err != nil {
		return "", err
	}
	return model.ParseProvider(answer)
}

// overwriteConfirmer decides how existing files are handled. Without a
// terminal nothing is overwritten unless --yes was given.
func overwriteConfirmer(projectRoot string, yes, interactive bool) generator.Confirmer {
	switch {
	case yes:
		return generator.Accept
	case !interactive:
		return generator.Decline
	}

	return generator.ConfirmFunc(func(ctx context.Context, path string) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		display := path
		if rel, err := filepath.Rel(projectRoot, path); err == nil {
			display = rel
		}
		return activePrompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", display), false)
	})
}
