package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/billingkit/internal/app"
	"github.com/tacogips/billingkit/internal/deps"
)

// Add command flags
var addDryRun bool

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <component>",
		Short: "Add a UI component from the component registry",
		Long: `Install a single billing UI component with the shadcn CLI, using the
runner of the package manager that invoked billingkit (npx, pnpm dlx,
yarn dlx or bunx).

Examples:
  billingkit add pricing-table-one
  billingkit add subscription-management --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().BoolVar(&addDryRun, FlagDryRun, false, "Print the command without running it")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	var component string
	if len(args) > 0 {
		component = args[0]
	}

	manager, err := deps.Resolve(globalConfig.Install.PackageManager)
	if err != nil {
		return app.NewValidationError("invalid package manager", err)
	}

	runner := deps.NewExecRunner(globalDir)
	runner.Stdout = outWriter
	runner.Stderr = errWriter

	result, err := app.Add(cmd.Context(), app.AddOptions{
		Component:    component,
		ComponentURL: globalConfig.Registry.ComponentURL,
		Manager:      manager,
		Runner:       runner,
		DryRun:       addDryRun,
	})
	if err != nil {
		return err
	}

	if addDryRun {
		fmt.Fprintln(outWriter, strings.Join(result.Command, " "))
		return nil
	}

	printSuccess(fmt.Sprintf("Added %s", noun(component)))
	return nil
}
