package cmd_radix

import (
	"fmt"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/spf13/cobra"
)

// insertCmd adds a key/value pair to the snapshot
var insertCmd = &cobra.Command{
	Use:   "insert <key> <value>",
	Short: "Insert a key with a value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := snapshotPath(cmd)

		tree, err := loadTree(path)
		if err != nil {
			return err
		}

		// Reject duplicates; a tombstoned key is resurrected instead
		if err := tree.Insert(args[0], args[1]); err != nil {
			x_log.Error().Err(err).Str("key", args[0]).Msg("insert rejected")
			return fmt.Errorf("insert %q: %w", args[0], err)
		}

		if err := saveTree(path, tree); err != nil {
			return err
		}

		x_log.Info().Str("key", args[0]).Int("size", tree.Size()).Msg("inserted")
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %q (%d keys)\n", args[0], tree.Size())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(insertCmd)
}
