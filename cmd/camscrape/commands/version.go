package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set via -ldflags at build time
var (
	Version = "dev"
	GitHash = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints version information.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("camscrape %s (%s)\n", Version, GitHash)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
