package domain

// Check is a deferred boolean expression together with the literal text it
// was written as. Eval is called exactly once per group run.
type Check struct {
	Source string      // Literal text of the expression, used only for display
	Eval   func() bool // Deferred expression
}

// Outcome is the result of evaluating a single Check
type Outcome struct {
	Source string // Source text captured before evaluation
	Passed bool   // Whether the expression evaluated to true
	Err    error  // Recovered panic, only set when recovery is enabled
}
