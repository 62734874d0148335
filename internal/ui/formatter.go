package ui

import (
	"fmt"
	"io"

	"checkgroup/internal/config"
	"checkgroup/internal/domain"
)

// Formatter writes the group report.
// The output writer is resolved from the config on every print.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter writing to the configured output
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

func (f *Formatter) target() (io.Writer, *Palette) {
	w := f.config.Writer()
	return w, NewPalette(w, f.config.Color)
}

// PrintFailure reports a single failed check
func (f *Formatter) PrintFailure(name any, outcome domain.Outcome) {
	out, palette := f.target()
	fmt.Fprintf(out, "%s %v: expected\n\t%s\n", palette.Fail("FAILED"), name, outcome.Source)
	if outcome.Err != nil {
		fmt.Fprintf(out, "\tpanic: %v\n", outcome.Err)
	}
	fmt.Fprint(out, "\n")
}

// PrintBanner prints the final PASSED/FAILED word for the group
func (f *Formatter) PrintBanner(passed bool) {
	out, palette := f.target()
	if passed {
		fmt.Fprintf(out, "%s\n\n", palette.Pass("PASSED"))
		return
	}
	fmt.Fprintf(out, "%s\n\n", palette.Fail("FAILED"))
}

// PrintDone prints the completion line of an empty group
func (f *Formatter) PrintDone(name any) {
	out, _ := f.target()
	fmt.Fprintf(out, "Done testing %v.\n", name)
}

// PrintNameWarning warns that the group name looks like a misplaced check
func (f *Formatter) PrintNameWarning(name any) {
	out, palette := f.target()
	fmt.Fprintf(out, "%s: test name (%v) is a boolean.  First form may not have been tested correctly.\n", palette.Fail("WARN"), name)
}
