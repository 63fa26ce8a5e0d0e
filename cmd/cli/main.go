// Package main is the entry point for the margin-optimizer CLI.
package main

import (
	"os"

	"margin-optimizer/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
