package execution

import "checkgroup/internal/domain"

// Executor runs a named group of checks and returns the aggregate result
type Executor interface {
	RunGroup(name any, checks ...domain.Check) bool
}
