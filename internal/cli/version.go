package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nixman version 0.1.0")
		fmt.Println("Declarative package management for Arch Linux")
		fmt.Println("https://github.com/nixman/nixman")
	},
}
