package app

import (
	"errors"
	"fmt"

	"gitlab.com/aungkh/finhabit/internal/budget"
)

// ErrNotFound is returned when an operation targets an entity that is not
// in the current state.
var ErrNotFound = errors.New("entity not found")

// ErrOptimizeInFlight is returned when a suggestion request is already
// running.
var ErrOptimizeInFlight = errors.New("suggestion generation already in progress")

// ValidationError reports input rejected before any persistence call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RuleViolationError is returned when at least one strict rule blocks a
// candidate transaction. The transaction must be modified or abandoned;
// confirmation cannot bypass it.
type RuleViolationError struct {
	Violations []budget.RuleViolation
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("transaction blocked by %d rule violation(s)", len(e.Violations))
}

// ConfirmationRequiredError is returned when only advisory violations
// fired and the caller has not confirmed. Retrying with confirmation set
// proceeds; blocking rules are still re-checked on that retry.
type ConfirmationRequiredError struct {
	Violations []budget.RuleViolation
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("transaction has %d advisory warning(s) awaiting confirmation", len(e.Violations))
}
