package analysis

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes analysis failures.
type ErrorCode string

const (
	// ErrCodeDecompositionUnsupported indicates the network does not have
	// the sub-circuit structure the analysis requires.
	ErrCodeDecompositionUnsupported ErrorCode = "DECOMPOSITION_UNSUPPORTED"

	// ErrCodeAssumptionViolated indicates a sub-circuit's cycle does not
	// start at press 0, so the LCM combination would be wrong.
	ErrCodeAssumptionViolated ErrorCode = "ASSUMPTION_VIOLATED"

	// ErrCodeCycleNotFound indicates no recurrence was observed within
	// the press limit. The state space is finite, so this is an internal
	// invariant violation (a snapshot bug), not a property of any input.
	ErrCodeCycleNotFound ErrorCode = "CYCLE_NOT_FOUND"
)

// Error is a typed analysis failure carrying the module that triggered it.
type Error struct {
	Code    ErrorCode
	Message string
	Module  string // offending module or sub-circuit root, may be empty
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("%s: %s (module=%s)", e.Code, e.Message, e.Module)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDecompositionUnsupported reports whether err is a structural
// precondition failure. Uses errors.As to handle wrapped errors.
func IsDecompositionUnsupported(err error) bool {
	return hasCode(err, ErrCodeDecompositionUnsupported)
}

// IsAssumptionViolated reports whether err is a cycle-start violation.
func IsAssumptionViolated(err error) bool {
	return hasCode(err, ErrCodeAssumptionViolated)
}

func hasCode(err error, code ErrorCode) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
