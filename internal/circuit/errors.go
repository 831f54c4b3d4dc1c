package circuit

import (
	"errors"
	"fmt"
)

// WiringErrorCode categorizes wiring parse failures.
type WiringErrorCode string

const (
	// ErrCodeMissingArrow indicates a line without the "->" separator.
	ErrCodeMissingArrow WiringErrorCode = "MISSING_ARROW"

	// ErrCodeUnknownKind indicates an unprefixed module name other than
	// the broadcaster.
	ErrCodeUnknownKind WiringErrorCode = "UNKNOWN_KIND"

	// ErrCodeDuplicateModule indicates a module declared twice.
	ErrCodeDuplicateModule WiringErrorCode = "DUPLICATE_MODULE"

	// ErrCodeEmptyOutput indicates an empty destination in an output list.
	ErrCodeEmptyOutput WiringErrorCode = "EMPTY_OUTPUT"

	// ErrCodeNoBroadcaster indicates a wiring with no entry point.
	ErrCodeNoBroadcaster WiringErrorCode = "NO_BROADCASTER"
)

// WiringError represents a malformed wiring description. It is fatal:
// construction stops at the first offending line, and the line is carried
// in the error so the input can be diagnosed without rerunning.
type WiringError struct {
	Code    WiringErrorCode
	Message string
	Line    int    // 1-based line number, 0 when not line-specific
	Text    string // offending line, trimmed
}

// Error implements the error interface.
func (e *WiringError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d: %q)", e.Code, e.Message, e.Line, e.Text)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsMalformedWiring reports whether err is a WiringError.
// Uses errors.As to handle wrapped errors.
func IsMalformedWiring(err error) bool {
	var we *WiringError
	return errors.As(err, &we)
}
