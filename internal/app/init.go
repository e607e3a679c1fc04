package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/billingkit/internal/debug"
	"github.com/tacogips/billingkit/internal/deps"
	"github.com/tacogips/billingkit/internal/template/generator"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
	"github.com/tacogips/billingkit/internal/template/provider"
)

// TemplateResolver obtains a payload for a framework and provider pair.
type TemplateResolver interface {
	Resolve(ctx context.Context, f model.Framework, p model.Provider) (*provider.Resolution, error)
}

// ScaffoldOptions contains options for installing a billing template.
type ScaffoldOptions struct {
	// ProjectRoot is the target project directory.
	ProjectRoot string
	// Framework is the project's framework.
	Framework model.Framework
	// Provider is the payment provider to integrate.
	Provider model.Provider
	// Resolver fetches the template payload.
	Resolver TemplateResolver
	// Generator writes the payload. Nil uses the file system generator.
	Generator generator.Generator
	// Confirmer is asked before existing files are replaced. Nil declines.
	Confirmer generator.Confirmer
	// Installer installs declared dependencies. Nil only reports them.
	Installer *deps.Installer
	// DryRun reports planned changes without writing or installing.
	DryRun bool
}

// ScaffoldResult contains the results of a scaffold run.
type ScaffoldResult struct {
	// TemplateID is the resolved template identifier.
	TemplateID string
	// Payload is the resolved template.
	Payload *model.Payload
	// Source tells whether the registry or the local templates served it.
	Source model.Source
	// RemoteErr is the registry failure that triggered the local fallback.
	RemoteErr error
	// Generate holds per-file outcomes.
	Generate *generator.GenerateResult
	// Install describes the dependency step. Nil when nothing was declared.
	Install *deps.Report
	// InstallErr is the non-fatal dependency installation failure, if any.
	InstallErr error
	// MissingEnv lists keys from .env.example that have no value in .env.
	MissingEnv []string
}

// Scaffold validates the pair, resolves the template, writes it into the
// project and installs its dependencies. Validation and resolution errors
// are returned before anything touches the project. Per-file and install
// failures are recorded in the result.
func Scaffold(ctx context.Context, opts ScaffoldOptions) (*ScaffoldResult, error) {
	if err := validateScaffoldOptions(opts); err != nil {
		return nil, err
	}

	id := matrix.TemplateIdentifier(opts.Framework, opts.Provider)
	debug.DebugSection("Scaffold " + id)
	debug.DebugValue("projectRoot", opts.ProjectRoot)
	debug.DebugValue("dryRun", opts.DryRun)

	resolution, err := opts.Resolver.Resolve(ctx, opts.Framework, opts.Provider)
	if err != nil {
		return nil, NewResolutionError("failed to resolve template", err)
	}

	result := &ScaffoldResult{
		TemplateID: resolution.ID,
		Payload:    resolution.Payload,
		Source:     resolution.Source,
		RemoteErr:  resolution.RemoteErr,
	}

	gen := opts.Generator
	if gen == nil {
		gen = generator.NewGenerator()
	}
	genOpts := generator.GenerateOptions{
		Payload:     resolution.Payload,
		ProjectRoot: opts.ProjectRoot,
		Confirmer:   opts.Confirmer,
	}

	if opts.DryRun {
		result.Generate, err = gen.DryRun(ctx, genOpts)
	} else {
		result.Generate, err = gen.Generate(ctx, genOpts)
	}
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return result, NewCancelledError()
		}
		return result, NewMaterializeError("failed to write template files", err)
	}
	for _, fileErr := range result.Generate.Errors {
		debug.Debug("[app] File error: %v", fileErr)
	}
	if result.Generate.Failed() {
		return result, NewMaterializeError(
			fmt.Sprintf("all %d template files failed", len(result.Generate.Files)),
			errors.Join(result.Generate.Errors...))
	}

	installer := opts.Installer
	if installer == nil || opts.DryRun {
		installer = &deps.Installer{Skip: true}
		if opts.Installer != nil {
			installer.Manager = opts.Installer.Manager
		}
	}
	result.Install, result.InstallErr = installer.Report(ctx, resolution.Payload.Dependencies)
	if result.InstallErr != nil {
		debug.Debug("[app] Dependency installation failed: %v", result.InstallErr)
	}

	if !opts.DryRun {
		result.MissingEnv = missingEnvForProject(opts.ProjectRoot, result.Generate.SourceRoot)
	}

	return result, nil
}

func validateScaffoldOptions(opts ScaffoldOptions) error {
	if opts.ProjectRoot == "" {
		return NewValidationError("project root cannot be empty", nil)
	}
	if !opts.Framework.Valid() {
		return NewValidationError(fmt.Sprintf("unknown framework %q", opts.Framework), nil)
	}
	if !opts.Provider.Valid() {
		return NewValidationError(fmt.Sprintf("unknown provider %q", opts.Provider), nil)
	}
	if !matrix.IsValidCombination(opts.Framework, opts.Provider) {
		return NewValidationError(fmt.Sprintf("%s does not support %s (supported providers: %v)",
			opts.Provider.Label(), opts.Framework.Label(), matrix.AllowedProviders(opts.Framework)), nil)
	}
	if opts.Resolver == nil {
		return NewValidationError("template resolver is not configured", nil)
	}
	return nil
}

// missingEnvForProject checks the merged .env.example against .env files in
// the project root and the source root.
func missingEnvForProject(projectRoot, sourceRoot string) []string {
	example := filepath.Join(sourceRoot, generator.EnvExampleFile)
	if _, err := os.Stat(example); err != nil {
		return nil
	}

	envFiles := []string{filepath.Join(projectRoot, ".env"), filepath.Join(projectRoot, ".env.local")}
	if sourceRoot != projectRoot {
		envFiles = append(envFiles, filepath.Join(sourceRoot, ".env"))
	}

	missing, err := MissingEnvKeys(example, envFiles...)
	if err != nil {
		debug.Debug("[app] Could not check environment keys: %v", err)
		return nil
	}
	return missing
}
