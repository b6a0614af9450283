package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the whole system, then re-freeze the list",
	Long: `Run a full-system update through the selected backend and
rewrite the package list with the versions that resulted.`,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	count, err := m.Update(context.Background())
	if err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("system updated, %d packages recorded in %s", count, m.StorePath()))
	return nil
}
