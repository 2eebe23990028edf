package cmd_radix

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root command for the radix snapshot CLI.
// Subcommands load the snapshot file, apply one tree operation and
// write the snapshot back when they mutated it.
var RootCmd = &cobra.Command{
	Use:   "radix",
	Short: "CLI for the radix prefix tree",
}

func init() {
	RootCmd.PersistentFlags().StringP("file", "f", "radix.json", "snapshot file")
}
