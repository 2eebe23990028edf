package cmd_radix

import (
	"errors"
	"os"

	"github.com/rskv-p/radix/codec"
	"github.com/rskv-p/radix/pkg/x_radix"
	"github.com/spf13/cobra"
)

// snapshotPath resolves the --file flag.
func snapshotPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("file")
	return path
}

// loadTree reads the snapshot file; a missing file yields an empty tree.
func loadTree(path string) (*x_radix.RadixTree[string], error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return x_radix.New[string](), nil
		}
		return nil, err
	}
	defer f.Close()

	return codec.Import[string](f)
}

// saveTree writes the tree back to the snapshot file.
func saveTree(path string, t *x_radix.RadixTree[string]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return codec.Export(f, t)
}
