// Package checkgroup runs named groups of boolean checks.
//
// Every check in a group is evaluated, in order, even after an earlier one
// has failed. Each failure is printed as soon as it is detected, together
// with the literal source text of the check, and the group ends with a
// colored PASSED or FAILED banner:
//
//	ok := checkgroup.Group("math",
//	    checkgroup.That(func() bool { return 4 == 2+2 }),
//	    checkgroup.Expect("5 == 2+3", func() bool { return 5 == 2+3 }),
//	)
//
// The aggregate result is true only if every check passed, and is true for an
// empty group.
package checkgroup

import (
	"sync"

	"checkgroup/internal/config"
	"checkgroup/internal/domain"
	"checkgroup/internal/execution"
	"checkgroup/internal/parser"
)

// Check is a deferred boolean expression and its source text
type Check = domain.Check

// Config configures a Runner
type Config = config.Config

// Runner evaluates check groups
type Runner = execution.Runner

// Color modes for Config.Color
const (
	ColorAuto   = config.ColorAuto
	ColorAlways = config.ColorAlways
	ColorNever  = config.ColorNever
)

var (
	sources = parser.NewGoSourceParser()

	defaultOnce   sync.Once
	defaultRunner *Runner
)

// DefaultConfig returns a Config writing to standard output with automatic
// color detection and no panic recovery.
func DefaultConfig() *Config {
	return config.New()
}

// NewRunner creates a Runner; a nil cfg means DefaultConfig
func NewRunner(cfg *Config) *Runner {
	return execution.NewRunner(cfg)
}

// Group runs checks with the default runner and returns the aggregate result
func Group(name any, checks ...Check) bool {
	defaultOnce.Do(func() {
		defaultRunner = NewRunner(DefaultConfig())
	})
	return defaultRunner.RunGroup(name, checks...)
}

// Expect builds a Check from an explicit source text
func Expect(source string, eval func() bool) Check {
	return Check{Source: source, Eval: eval}
}

// That builds a Check whose source text is read from the function literal
// passed as eval. If the source file is not available the text is the
// literal's file:line.
//
// Literals are located by the line they start on, so when several That
// literals start on the same line every resulting Check reports the text of
// the first one. Put each literal on its own line, or use Expect.
func That(eval func() bool) Check {
	return Check{Source: sources.SourceOf(eval), Eval: eval}
}

// ExpectTruthy builds a Check from a value-returning expression.
// nil, false, nil pointers, maps, slices, funcs, chans and non-nil errors
// count as failures.
func ExpectTruthy(source string, eval func() any) Check {
	return Check{
		Source: source,
		Eval: func() bool {
			return domain.Truthy(eval())
		},
	}
}
