package cmd_radix

import (
	"fmt"

	"github.com/spf13/cobra"
)

// searchCmd lists the values of every live key under a prefix
var searchCmd = &cobra.Command{
	Use:   "search <prefix>",
	Short: "List values for all keys under a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(snapshotPath(cmd))
		if err != nil {
			return err
		}

		values := tree.Search(args[0])
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d match(es)\n", len(values))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}
