package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/billingkit/internal/app"
)

// Build command flags
var buildOverwrite bool

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <output-dir>",
		Short: "Export the bundled templates as a static registry",
		Long: `Validate every bundled template against the payload schema and write them
to a directory as <framework>-<provider>.json plus an index.json. The
directory can be served over HTTP and used as BILLINGKIT_REGISTRY_URL, or
pointed to with BILLINGKIT_TEMPLATES_DIR.

Examples:
  billingkit build ./public/tr
  billingkit build ./public/tr --overwrite`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().BoolVar(&buildOverwrite, FlagOverwrite, false, DescOverwrite)

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	outDir := args[0]

	printProgress(fmt.Sprintf("Building registry in %s", noun(outDir)))

	result, err := app.Build(cmd.Context(), app.BuildOptions{
		OutputDir: outDir,
		Overwrite: buildOverwrite,
	})
	if err != nil {
		return err
	}

	for _, path := range result.Written {
		printInfo("  " + path)
	}
	printSuccess(fmt.Sprintf("Exported %d templates", len(result.Index)))
	return nil
}
