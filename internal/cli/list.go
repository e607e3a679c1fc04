package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/billingkit/internal/app"
	"github.com/tacogips/billingkit/internal/template/model"
)

// List command flags
var (
	listOutput    string
	listFramework string
	listProvider  string
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported framework and provider combinations",
		Long: `Show every framework and payment provider combination billingkit can
install, and whether an offline copy of its template is bundled.

Examples:
  billingkit list
  billingkit list --provider paypal
  billingkit list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutput, FlagOutput, "o", "table", DescOutput)
	cmd.Flags().StringVarP(&listFramework, FlagFramework, "f", "", "Only show this framework")
	cmd.Flags().StringVarP(&listProvider, FlagProvider, "p", "", "Only show this provider")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	var (
		framework model.Framework
		prov      model.Provider
		err       error
	)
	if listFramework != "" {
		if framework, err = model.ParseFramework(listFramework); err != nil {
			return app.NewValidationError("invalid --framework", err)
		}
	}
	if listProvider != "" {
		if prov, err = model.ParseProvider(listProvider); err != nil {
			return app.NewValidationError("invalid --provider", err)
		}
	}

	entries := app.Catalog(framework, prov)
	if entries == nil {
		entries = []app.CatalogEntry{}
	}

	switch listOutput {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		fmt.Fprintln(outWriter, string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		fmt.Fprint(outWriter, string(data))
	case "table":
		fmt.Fprintln(outWriter, renderCatalogTable(entries))
	default:
		return app.NewValidationError(fmt.Sprintf("unknown output format %q (expected table, json or yaml)", listOutput), nil)
	}
	return nil
}

func renderCatalogTable(entries []app.CatalogEntry) string {
	headerStyle := style(lipgloss.NewStyle().Bold(true).Foreground(colorBlue))
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style(lipgloss.NewStyle().Foreground(colorGray))).
		Headers("TEMPLATE", "FRAMEWORK", "PROVIDER", "BUNDLED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	for _, e := range entries {
		bundled := "no"
		if e.Bundled {
			bundled = "yes"
		}
		tbl.Row(e.ID, e.Framework.Label(), e.Provider.Label(), bundled)
	}
	return tbl.String()
}
