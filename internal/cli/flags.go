package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagDir         = "dir"
	FlagConfig      = "config"
	FlagFramework   = "framework"
	FlagProvider    = "provider"
	FlagYes         = "yes"
	FlagDryRun      = "dry-run"
	FlagSkipInstall = "skip-install"
	FlagOffline     = "offline"
	FlagOutput      = "output"
	FlagOverwrite   = "overwrite"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescDir         = "Project directory"
	DescConfig      = "Path to config file"
	DescFramework   = "Framework (nextjs, express, react, fastify, hono, nestjs)"
	DescProvider    = "Payment provider (dodopayments, stripe, paypal)"
	DescYes         = "Overwrite existing files without asking"
	DescDryRun      = "Show actions without execution"
	DescSkipInstall = "Do not install dependencies (env: BILLINGKIT_SKIP_INSTALL)"
	DescOffline     = "Use bundled templates only (env: BILLINGKIT_OFFLINE)"
	DescOutput      = "Output format: table, json, yaml"
	DescOverwrite   = "Overwrite existing files"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
)
