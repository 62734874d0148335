package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checkgroup"
	"checkgroup/internal/config"
)

// DemoCommand handles the demo command
type DemoCommand struct {
	config *config.Config
}

type demoGroup struct {
	name     any
	checks   []checkgroup.Check
	expected bool
}

// NewDemoCommand creates a new DemoCommand
func NewDemoCommand(cfg *config.Config) *DemoCommand {
	return &DemoCommand{config: cfg}
}

// Execute runs the command
func (dc *DemoCommand) Execute(cmd *cobra.Command, args []string) error {
	runner := checkgroup.NewRunner(dc.config)
	out := dc.config.Writer()
	header := newColor(dc.config, color.FgCyan)

	var mismatched []string
	for _, g := range dc.groups() {
		fmt.Fprintln(out, header.Sprintf("── %v ──", g.name))
		if got := runner.RunGroup(g.name, g.checks...); got != g.expected {
			mismatched = append(mismatched, fmt.Sprintf("%v (got %v, want %v)", g.name, got, g.expected))
		}
	}

	if len(mismatched) > 0 {
		return fmt.Errorf("unexpected group results: %v", mismatched)
	}
	return nil
}

func (dc *DemoCommand) groups() []demoGroup {
	groups := []demoGroup{
		{
			name:     "math",
			expected: true,
			checks: []checkgroup.Check{
				checkgroup.Expect("4 == 2+2", func() bool { return 4 == 2+2 }),
				checkgroup.Expect("5 == 2+3", func() bool { return 5 == 2+3 }),
			},
		},
		{
			name:     "math",
			expected: false,
			checks: []checkgroup.Check{
				checkgroup.Expect("4 == 2+3", func() bool { return 4 == 2+3 }),
				checkgroup.Expect("5 == 2+3", func() bool { return 5 == 2+3 }),
			},
		},
		{
			// Name omitted by mistake, the first check took its place
			name:     true,
			expected: true,
		},
		{
			name:     "approx",
			expected: false,
			checks: []checkgroup.Check{
				checkgroup.That(func() bool { return checkgroup.ApproxEqual(1.00005, 1.0) }),
				checkgroup.That(func() bool { return checkgroup.ApproxEqual(1.0001, 1.0) }),
			},
		},
	}

	// Without recovery a panicking check would abort the whole demo
	if dc.config.RecoverPanics {
		var empty []int
		groups = append(groups, demoGroup{
			name:     "recover",
			expected: false,
			checks: []checkgroup.Check{
				checkgroup.Expect("empty[0] == 0", func() bool { return empty[0] == 0 }),
				checkgroup.Expect("len(empty) == 0", func() bool { return len(empty) == 0 }),
			},
		})
	}

	return groups
}
