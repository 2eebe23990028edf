package cmd_radix

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd reports the number of live keys in the snapshot
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := snapshotPath(cmd)

		tree, err := loadTree(path)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "file: %s\nkeys: %d\n", path, tree.Size())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
