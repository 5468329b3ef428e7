package main

import (
	"os"

	"github.com/arthur-debert/docprint/internal/cli"
	"github.com/arthur-debert/docprint/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
