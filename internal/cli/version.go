package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tacogips/billingkit/internal/build"
)

// Version command flags
var (
	versionShort bool
	versionJSON  bool
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for billingkit.

Examples:
  billingkit version
  billingkit version --short
  billingkit version --json`,
		RunE: runVersion,
	}

	cmd.Flags().BoolVar(&versionShort, "short", false, "Show version number only")
	cmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")

	return cmd
}

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := VersionInfo{
		Version:   build.Version(),
		GoVersion: runtime.Version(),
		Commit:    build.GitCommit,
		BuildDate: build.BuildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if versionShort {
		fmt.Fprintln(outWriter, info.Version)
		return nil
	}

	if versionJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(outWriter, string(data))
		return nil
	}

	fmt.Fprintf(outWriter, "billingkit version %s\n", info.Version)
	fmt.Fprintf(outWriter, "Built with: %s\n", info.GoVersion)
	fmt.Fprintf(outWriter, "Commit: %s\n", info.Commit)
	fmt.Fprintf(outWriter, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(outWriter, "OS/Arch: %s/%s\n", info.OS, info.Arch)

	return nil
}
