package cmd_radix

import (
	"github.com/spf13/cobra"
)

// dumpCmd renders the node structure of the snapshot tree
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the tree structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(snapshotPath(cmd))
		if err != nil {
			return err
		}

		tree.Dump(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dumpCmd)
}
