package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tacogips/billingkit/internal/config"
	"github.com/tacogips/billingkit/internal/debug"
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigFile string
	globalDir        string

	// globalConfig is loaded in PersistentPreRunE.
	globalConfig *config.Config
)

// NewRootCmd creates the billingkit command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "billingkit",
		Short: "Add billing and payment integrations to a project",
		Long: `billingkit installs payment provider integrations into an existing project.

Use "billingkit init" to:
  1. Detect the project's framework
  2. Choose a payment provider that supports it
  3. Write the integration files, merging .env.example
  4. Install the provider's npm dependencies

Templates are fetched from the billingkit registry and fall back to the copies
bundled with this binary when the registry cannot be reached.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfigFile, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().StringVarP(&globalDir, FlagDir, "C", ".", DescDir)

	// Add subcommands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initializeGlobals sets up output and logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	outWriter = cmd.OutOrStdout()
	errWriter = cmd.ErrOrStderr()

	debug.SetOutput(errWriter)
	debug.SetDebug(globalDebug)
	debug.SetNoColor(globalNoColor)

	projectDir, err := filepath.Abs(globalDir)
	if err != nil {
		return err
	}
	globalDir = projectDir

	cfg, err := config.NewLoader(projectDir).Load(globalConfigFile)
	if err != nil {
		return err
	}
	globalConfig = cfg

	if !cfg.Output.Color {
		globalNoColor = true
		debug.SetNoColor(true)
	}
	if cfg.Output.Quiet {
		globalQuiet = true
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, NewRootCmd())
}

// execute runs cmd and reports a failure once, on the error writer.
func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	code := ExitCode(err)
	if err != nil && code != ExitSuccess {
		printError(err)
	}
	return code
}
