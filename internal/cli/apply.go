package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nixman/nixman"
)

var (
	applyPacstrap string
	applyContinue bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Reconcile the system against the package list",
	Long: `Compute the difference between the package list and what is
installed, then install what is missing and remove what is no longer
listed. Installs run before removals.

Examples:
  nixman apply
  nixman apply --paru
  nixman apply --continue-on-error
  nixman apply --pacstrap /mnt`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyPacstrap, "pacstrap", "", "bootstrap the given target root with pacstrap instead of diffing the running system")
	applyCmd.Flags().BoolVar(&applyContinue, "continue-on-error", false, "record per-package failures and keep going instead of aborting")
}

func runApply(cmd *cobra.Command, args []string) error {
	if applyPacstrap != "" && useParu {
		return fmt.Errorf("--paru cannot be combined with --pacstrap: pacstrap only resolves repository packages")
	}

	m, err := newManager()
	if err != nil {
		return err
	}

	plan, outcome, err := m.Apply(context.Background(), nixman.ApplyOptions{
		ContinueOnError: applyContinue,
		Bootstrap:       applyPacstrap != "",
		BootstrapRoot:   applyPacstrap,
	})
	if err != nil {
		return err
	}

	if plan.Empty() {
		PrintSuccess("nothing to do, system matches the package list")
		if len(plan.Drift) > 0 {
			printPlan(plan)
		}
		return nil
	}

	printPlan(plan)
	return reportOutcome(outcome)
}
