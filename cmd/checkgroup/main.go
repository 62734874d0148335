package main

import (
	"fmt"
	"os"

	"checkgroup/internal/cli"
	"checkgroup/internal/cli/commands"
	"checkgroup/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "checkgroup",
		Short:         "Strict boolean check groups with colored reports",
		Long:          `Evaluate named groups of boolean checks without short-circuiting, report every failure with its source text and print a colored PASSED/FAILED banner per group.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
