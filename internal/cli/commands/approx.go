package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checkgroup"
	"checkgroup/internal/config"
)

// ApproxCommand handles the approx command
type ApproxCommand struct {
	config *config.Config
}

// NewApproxCommand creates a new ApproxCommand
func NewApproxCommand(cfg *config.Config) *ApproxCommand {
	return &ApproxCommand{config: cfg}
}

// Execute runs the command
func (ac *ApproxCommand) Execute(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[1], err)
	}

	equal := checkgroup.ApproxEqual(x, y)

	out := ac.config.Writer()
	fmt.Fprintf(out, "ApproxEqual(%s, %s) = ", args[0], args[1])
	if equal {
		fmt.Fprintln(out, newColor(ac.config, color.FgGreen).Sprint("true"))
		return nil
	}
	fmt.Fprintln(out, newColor(ac.config, color.FgRed, color.Bold).Sprint("false"))

	return fmt.Errorf("%s and %s differ by %g or more", args[0], args[1], checkgroup.Epsilon)
}
