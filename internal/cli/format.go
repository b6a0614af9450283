package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/nixman/nixman/pkg/reconcile"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// printPlan renders the computed plan before execution.
func printPlan(plan *reconcile.Plan) {
	for _, pkg := range plan.ToInstall {
		fmt.Printf("  + %s\n", pkg.Name)
	}
	for _, pkg := range plan.ToRemove {
		fmt.Printf("  - %s\n", pkg.Name)
	}
	for _, d := range plan.Drift {
		_, _ = dimColor.Printf("  ~ %s: list pins %s, installed %s\n", d.Name, d.Declared, d.Installed)
	}
}

// reportOutcome renders per-item results and maps the outcome status
// to the process result: only an aborted run is an error. Partial
// completion exits zero with warnings, since partial application is a
// supported outcome.
func reportOutcome(outcome *reconcile.Outcome) error {
	for _, res := range outcome.Results {
		switch {
		case res.Err != nil:
			PrintError(fmt.Sprintf("%s %s: %v", res.Action, res.Name, res.Err))
		case res.SyncWarning != nil:
			PrintWarning(fmt.Sprintf("%s %s succeeded, but the package list was not updated: %v", res.Action, res.Name, res.SyncWarning))
		default:
			past := "installed"
			if res.Action == reconcile.ActionRemove {
				past = "removed"
			}
			PrintSuccess(fmt.Sprintf("%s %s", past, res.Name))
		}
	}

	switch outcome.Status {
	case reconcile.StatusAborted:
		return fmt.Errorf("aborted: %s", outcome.Summary())
	case reconcile.StatusPartiallyCompleted:
		PrintWarning(outcome.Summary())
	}
	return nil
}
