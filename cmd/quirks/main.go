package main

import (
	"fmt"
	"os"

	"quirks/internal/cli"
	"quirks/internal/cli/commands"
	"quirks/internal/config"
	"quirks/internal/oddities"
)

var version = "dev"

// suite is the set of checks the binary runs.
var suite commands.Suite = oddities.Register

func main() {
	// Load defaults, .env and environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create root command with all subcommands registered
	rootCmd := commands.NewRootCommand(cfg, suite, version)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
