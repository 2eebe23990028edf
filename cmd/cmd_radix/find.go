package cmd_radix

import (
	"fmt"

	"github.com/spf13/cobra"
)

// findCmd looks up the value stored for an exact key
var findCmd = &cobra.Command{
	Use:   "find <key>",
	Short: "Find the value for an exact key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(snapshotPath(cmd))
		if err != nil {
			return err
		}

		v, ok := tree.Find(args[0])
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "key %q not found\n", args[0])
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", *v)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(findCmd)
}
