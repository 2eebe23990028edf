package main

import (
	"os"

	"github.com/rskv-p/radix/cmd"
	"github.com/rskv-p/radix/pkg/x_log"
)

func main() {
	// Logger config is optional; defaults apply when the file is absent
	cfg, err := x_log.LoadConfig("")
	if err != nil {
		cfg = nil
	}
	x_log.InitWithConfig(cfg, "radix")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
