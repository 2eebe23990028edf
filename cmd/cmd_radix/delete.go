package cmd_radix

import (
	"fmt"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/spf13/cobra"
)

// deleteCmd removes a key from the snapshot
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := snapshotPath(cmd)

		tree, err := loadTree(path)
		if err != nil {
			return err
		}

		// A missing key is a negative result, not a failure
		if !tree.Delete(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "key %q not found\n", args[0])
			return nil
		}

		if err := saveTree(path, tree); err != nil {
			return err
		}

		x_log.Info().Str("key", args[0]).Int("size", tree.Size()).Msg("deleted")
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %q (%d keys)\n", args[0], tree.Size())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}
