package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var freezeVersioned bool

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Capture the installed packages into the package list",
	Long: `Overwrite the package list with every explicitly installed
package. With --versioned the current versions are recorded as well.`,
	RunE: runFreeze,
}

func init() {
	freezeCmd.Flags().BoolVar(&freezeVersioned, "versioned", false, "record package versions in the list")
}

func runFreeze(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	count, err := m.Freeze(context.Background(), freezeVersioned)
	if err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("froze %d packages to %s", count, m.StorePath()))
	return nil
}
