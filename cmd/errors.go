package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dotcommander/ftype/internal/app"
)

// printStyledError displays an error with lipgloss styling.
// Detects usage errors and conditionally shows help hint.
func printStyledError(err error) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "%s %s\n",
		theme.ErrorText.Render("Error:"),
		theme.Description.Render(err.Error()))

	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "%s\n", theme.HelpText.Render(hint))
	}
	fmt.Fprintln(os.Stderr)
}

// errorHint suggests a next step for well-known failures.
func errorHint(err error) string {
	switch {
	case isUsageError(err.Error()):
		return "Run 'ftype --help' for usage information"
	case errors.Is(err, app.ErrNoAssociation):
		return "Register a handler for the extension, or add one under 'associations' in the config file"
	case errors.Is(err, app.ErrNoExtension):
		return "The program path needs a file extension to look up its handler"
	case errors.Is(err, app.ErrStoreInconsistent):
		return "The association changed while it was being read; run the command again"
	default:
		return ""
	}
}

// isUsageError detects if an error is a usage/flag error.
// Pattern from charmbracelet/fang for detecting flag parsing errors.
func isUsageError(errMsg string) bool {
	usageErrorPrefixes := []string{
		"unknown flag:",
		"unknown shorthand flag:",
		"flag needs an argument:",
		"invalid argument",
		"accepts",
		"requires at least",
		"unknown command",
		"required flag",
	}

	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errMsg, prefix) || strings.Contains(errMsg, prefix) {
			return true
		}
	}
	return false
}
