package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/tacogips/billingkit/internal/template/generator"
)

// Output streams. Replaced per command so tests can capture them.
var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
)

// Colors used across commands.
var (
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("204")
	colorCyan   = lipgloss.Color("14")
	colorBlue   = lipgloss.Color("12")
	colorGray   = lipgloss.Color("240")
)

// style returns s, or a plain style when colors are disabled.
func style(s lipgloss.Style) lipgloss.Style {
	if globalNoColor {
		return lipgloss.NewStyle()
	}
	return s
}

func styled(color lipgloss.Color, text string) string {
	return style(lipgloss.NewStyle().Foreground(color)).Render(text)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(outWriter, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(outWriter, "%s %s\n", styled(colorGreen, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(outWriter, "%s %s\n", styled(colorYellow, "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(errWriter, "%s %s\n", styled(colorRed, "✗"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(outWriter, "%s %s\n", styled(colorBlue, "→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(outWriter, "\n%s\n", style(lipgloss.NewStyle().Bold(true)).Render(title))
}

// printError prints an error to stderr
func printError(err error) {
	fmt.Fprintf(errWriter, "%s %v\n", styled(colorRed, "Error:"), err)
}

// noun highlights identifiers such as file paths and template IDs.
func noun(s string) string {
	return styled(colorCyan, s)
}

// statusLabel renders a per-file generator status padded to a fixed width.
func statusLabel(status generator.Status) string {
	text := fmt.Sprintf("%-11s", status)
	switch status {
	case generator.StatusCreated:
		return styled(colorGreen, text)
	case generator.StatusOverwritten, generator.StatusMerged:
		return styled(colorYellow, text)
	case generator.StatusFailed:
		return style(lipgloss.NewStyle().Bold(true).Foreground(colorRed)).Render(text)
	default:
		return styled(colorGray, text)
	}
}
