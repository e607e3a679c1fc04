package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/billingkit/internal/app"
	"github.com/tacogips/billingkit/internal/deps"
	"github.com/tacogips/billingkit/internal/template/generator"
	"github.com/tacogips/billingkit/internal/template/matrix"
	"github.com/tacogips/billingkit/internal/template/model"
	"github.com/tacogips/billingkit/internal/template/provider"
)

// Init command flags
var (
	initFramework   string
	initProvider    string
	initYes         bool
	initDryRun      bool
	initSkipInstall bool
	initOffline     bool
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Add a payment provider integration to the project",
		Long: `Detect the project's framework, choose a payment provider and install the
matching integration template.

Existing files are only replaced after confirmation. Entries of an existing
.env.example are kept and new keys are appended. Without a terminal, existing
files are left untouched unless --yes is given.

Examples:
  billingkit init
  billingkit init --framework nextjs --provider stripe
  billingkit init -C ./api --framework express --provider paypal --skip-install
  billingkit init --dry-run`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initFramework, FlagFramework, "f", "", DescFramework)
	cmd.Flags().StringVarP(&initProvider, FlagProvider, "p", "", DescProvider)
	cmd.Flags().BoolVarP(&initYes, FlagYes, "y", false, DescYes)
	cmd.Flags().BoolVar(&initDryRun, FlagDryRun, false, DescDryRun)
	cmd.Flags().BoolVar(&initSkipInstall, FlagSkipInstall, false, DescSkipInstall)
	cmd.Flags().BoolVar(&initOffline, FlagOffline, false, DescOffline)

	_ = cmd.RegisterFlagCompletionFunc(FlagFramework, frameworkFlagCompletion)
	_ = cmd.RegisterFlagCompletionFunc(FlagProvider, providerFlagCompletion)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := globalConfig
	root := globalDir
	interactive := isInteractive()

	framework, err := chooseFramework(root, initFramework, interactive)
	if err != nil {
		return err
	}
	prov, err := chooseProvider(framework, initProvider, interactive)
	if err != nil {
		return err
	}

	manager, err := deps.Resolve(cfg.Install.PackageManager)
	if err != nil {
		return app.NewValidationError("invalid package manager", err)
	}

	var resolver app.TemplateResolver = provider.NewResolver(provider.ResolverConfig{
		RegistryURL:  cfg.Registry.URL,
		Timeout:      cfg.Registry.Timeout,
		TemplatesDir: cfg.Registry.TemplatesDir,
		Offline:      cfg.Registry.Offline || initOffline,
	})
	resolver = spinnerResolver{inner: resolver}

	if initDryRun {
		printInfo("Dry run: no files will be written")
	}

	result, err := app.Scaffold(ctx, app.ScaffoldOptions{
		ProjectRoot: root,
		Framework:   framework,
		Provider:    prov,
		Resolver:    resolver,
		Confirmer:   overwriteConfirmer(root, initYes, interactive),
		Installer:   deps.NewInstaller(deps.NewExecRunner(root), manager, cfg.Install.Skip || initSkipInstall),
		DryRun:      initDryRun,
	})
	if result != nil {
		printScaffoldResult(root, result)
	}
	if err != nil {
		if app.IsCancelled(err) {
			printWarning("Cancelled")
			return err
		}
		return err
	}

	printSuccess(fmt.Sprintf("%s integration for %s is ready", prov.Label(), framework.Label()))
	return nil
}

func printScaffoldResult(root string, result *app.ScaffoldResult) {
	if result.RemoteErr != nil {
		printWarning("Template registry unavailable, using bundled template")
	}
	printProgress(fmt.Sprintf("Template %s (%s)", noun(result.TemplateID), result.Source))

	gen := result.Generate
	if gen == nil {
		return
	}

	printHeader("Files")
	for _, f := range gen.Files {
		display := f.Target
		if f.Path != "" {
			if rel, err := filepath.Rel(root, f.Path); err == nil {
				display = rel
			}
		}
		line := fmt.Sprintf("  %s %s", statusLabel(f.Status), display)
		if f.Status == generator.StatusFailed {
			printErrorMsg(fmt.Sprintf("%s: %v", display, f.Err))
			continue
		}
		printInfo(line)
	}
	printInfo(fmt.Sprintf("%d created, %d overwritten, %d merged, %d unchanged, %d skipped, %d failed",
		gen.FilesCreated, gen.FilesOverwritten, gen.FilesMerged, gen.FilesUnchanged, gen.FilesSkipped, len(gen.Errors)))

	printDependencies(result)

	if len(result.MissingEnv) > 0 {
		printHeader("Environment")
		printWarning(fmt.Sprintf("Set these variables in .env: %s", strings.Join(result.MissingEnv, ", ")))
	}
}

func printDependencies(result *app.ScaffoldResult) {
	report := result.Install
	if report == nil || len(report.Dependencies) == 0 {
		return
	}

	printHeader("Dependencies")
	printInfo("  " + strings.Join(report.Dependencies, " "))

	command := strings.Join(report.Command, " ")
	switch {
	case result.InstallErr != nil:
		printWarning(fmt.Sprintf("Dependency installation failed: %v", result.InstallErr))
		printInfo(fmt.Sprintf("Install them manually with: %s", noun(command)))
	case report.Skipped:
		printInfo(fmt.Sprintf("Skipped installation. Run: %s", noun(command)))
	case report.Installed:
		printSuccess("Dependencies installed")
	}
}

// frameworkFlagCompletion completes --framework values.
func frameworkFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, f := range model.Frameworks() {
		out = append(out, string(f))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// providerFlagCompletion completes --provider values, narrowed by --framework
// when it is already set.
func providerFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	providers := model.Providers()
	if f, err := model.ParseFramework(initFramework); err == nil {
		providers = matrix.AllowedProviders(f)
	}
	var out []string
	for _, p := range providers {
		out = append(out, string(p))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
