package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nixman/nixman"
)

var (
	storePath  string
	useParu    bool
	debug      bool
	syncPkgs   []string
	removePkgs []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nixman",
	Short: "Declarative package management for Arch Linux",
	Long: `nixman - Declarative package management for Arch Linux

Describe the packages you want in a YAML list and reconcile the
system against it, the way NixOS treats its configuration. Installs
and removals are delegated to pacman or paru.`,
	Version: "0.1.0",
	RunE:    runRoot,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "package list file (default is $XDG_CONFIG_HOME/nixman/packages.yml)")
	rootCmd.PersistentFlags().BoolVar(&useParu, "paru", false, "use paru instead of pacman")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Single-package shorthands, mirroring pacman's own -S/-R
	rootCmd.Flags().StringSliceVarP(&syncPkgs, "sync", "S", nil, "install package(s) and record them in the list")
	rootCmd.Flags().StringSliceVarP(&removePkgs, "remove", "R", nil, "remove package(s) and drop them from the list")

	// Add commands
	rootCmd.AddCommand(freezeCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// newManager builds a Manager from the global flags and makes sure
// the package list file exists.
func newManager() (*nixman.Manager, error) {
	config := nixman.DefaultConfig()
	if storePath != "" {
		config.StorePath = storePath
	}
	if useParu {
		config.Backend = nixman.BackendParu
	}
	config.Debug = debug

	m, err := nixman.NewManager(config)
	if err != nil {
		return nil, err
	}

	created, err := m.EnsureStore()
	if err != nil {
		return nil, err
	}
	if created {
		PrintWarning(fmt.Sprintf("%s did not exist and was created", m.StorePath()))
	}
	return m, nil
}

// runRoot handles the -S/-R shorthands; without them it just prints
// usage.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(syncPkgs) == 0 && len(removePkgs) == 0 {
		return cmd.Help()
	}

	m, err := newManager()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if len(removePkgs) > 0 {
		outcome, err := m.Remove(ctx, removePkgs)
		if err != nil {
			return err
		}
		if err := reportOutcome(outcome); err != nil {
			return err
		}
	}
	if len(syncPkgs) > 0 {
		outcome, err := m.Install(ctx, syncPkgs)
		if err != nil {
			return err
		}
		if err := reportOutcome(outcome); err != nil {
			return err
		}
	}
	return nil
}
