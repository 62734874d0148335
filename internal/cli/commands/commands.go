package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checkgroup/internal/cli"
	"checkgroup/internal/config"
)

// Commands holds all CLI commands
type Commands struct {
	Demo   *DemoCommand
	Approx *ApproxCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		Demo:   NewDemoCommand(cfg),
		Approx: NewApproxCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.Color, "color", "", "Color output: auto, always or never (default from CHECKGROUP_COLOR, else auto)")
	rootCmd.PersistentFlags().BoolVar(&flags.Recover, "recover", false, "Count a panicking check as a failure instead of aborting the group")
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env", config.DefaultEnvFile, "Path to a dotenv file with CHECKGROUP_* settings")

	// Update config with flags and environment after parsing
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		cfg.Output = cmd.OutOrStdout()
		return nil
	}

	// Demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example groups",
		Long:  "Run a set of example check groups, including failing ones, and verify each group's aggregate result",
		Args:  cobra.NoArgs,
		RunE:  c.Demo.Execute,
	}
	rootCmd.AddCommand(demoCmd)

	// Approx command
	approxCmd := &cobra.Command{
		Use:   "approx X Y",
		Short: "Compare two numbers within the fixed tolerance",
		Long:  "Report whether |X-Y| is below the fixed tolerance of 1e-4; exits with status 1 when it is not",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Approx.Execute,
	}
	rootCmd.AddCommand(approxCmd)
}

// newColor returns a color honoring the configured mode
func newColor(cfg *config.Config, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	switch cfg.Color {
	case config.ColorAlways:
		c.EnableColor()
	case config.ColorNever:
		c.DisableColor()
	}
	return c
}
