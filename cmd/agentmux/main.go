// Package main is the entry point for the agentmux CLI.
// It activates lists of agents under sequential, parallel, chain, or
// conversation coordination and reports aggregated outcomes.
package main

import (
	"fmt"
	"os"

	"github.com/philjestin/agentmux/internal/cli"
)

// Build information. Populated at build time by GoReleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Set version info for CLI
	cli.SetVersionInfo(version, commit, date, builtBy)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
