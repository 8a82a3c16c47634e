package services

import (
	"errors"
	"fmt"
)

// Error kinds returned by the catalog rules. Callers test them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
)

// ruleError carries a caller-facing message and unwraps to its kind.
type ruleError struct {
	kind error
	msg  string
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Unwrap() error { return e.kind }

func notFoundf(format string, args ...any) error {
	return &ruleError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func invalidStatef(format string, args ...any) error {
	return &ruleError{kind: ErrInvalidState, msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports the first violated constraint of a request and
// the per-field messages of all violations.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }
