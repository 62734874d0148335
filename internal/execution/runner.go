package execution

import (
	"github.com/pkg/errors"

	"checkgroup/internal/config"
	"checkgroup/internal/domain"
	"checkgroup/internal/ui"
)

var _ Executor = (*Runner)(nil)

// Runner evaluates check groups and reports failures as they happen
type Runner struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.New()
	}
	return &Runner{
		config:    cfg,
		formatter: ui.NewFormatter(cfg),
	}
}

// RunGroup evaluates every check in order, printing a failure line for each
// false one, then prints the PASSED/FAILED banner and returns the conjunction
// of all outcomes. A failed check never prevents later checks from running.
func (r *Runner) RunGroup(name any, checks ...domain.Check) bool {
	if len(checks) == 0 {
		r.formatter.PrintDone(name)
		if domain.IsBoolean(name) {
			r.formatter.PrintNameWarning(name)
		}
		return true
	}

	passed := true
	for _, check := range checks {
		outcome := r.evaluate(check)
		if !outcome.Passed {
			r.formatter.PrintFailure(name, outcome)
			passed = false
		}
	}

	r.formatter.PrintBanner(passed)
	return passed
}

func (r *Runner) evaluate(check domain.Check) (outcome domain.Outcome) {
	outcome.Source = check.Source
	if !r.config.RecoverPanics {
		outcome.Passed = check.Eval()
		return outcome
	}

	defer func() {
		if v := recover(); v != nil {
			outcome.Passed = false
			outcome.Err = panicError(v)
		}
	}()
	outcome.Passed = check.Eval()
	return outcome
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return errors.WithStack(err)
	}
	return errors.Errorf("%v", v)
}
