package cmd

import (
	"github.com/rskv-p/radix/cmd/cmd_radix"
)

// Execute runs the radix CLI.
func Execute() error {
	return cmd_radix.RootCmd.Execute()
}
