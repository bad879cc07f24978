package validation

import (
	"fmt"
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// FieldError reports one failing constraint.
type FieldError struct {
	Field      string                `json:"field"`
	Message    string                `json:"message"`
	Constraint schema.ConstraintKind `json:"constraint"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Result captures the outcome of validating one document. Errors preserve
// field declaration order, then constraint declaration order.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Err returns nil for a valid result and an *Error otherwise.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &Error{Errors: append([]FieldError(nil), r.Errors...)}
}

// ForField returns the errors reported for a single field.
func (r Result) ForField(name string) []FieldError {
	var out []FieldError
	for _, fe := range r.Errors {
		if fe.Field == name {
			out = append(out, fe)
		}
	}
	return out
}

// Messages groups error messages by field name. Duplicate messages on the same
// field (a shared message on several failing constraints) are kept once.
func (r Result) Messages() map[string][]string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, fe := range r.Errors {
		existing := out[fe.Field]
		duplicate := false
		for _, msg := range existing {
			if msg == fe.Message {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out[fe.Field] = append(existing, fe.Message)
		}
	}
	return out
}

// Error is the error form of a failed Result.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Error()
	}
	noun := "error"
	if len(parts) > 1 {
		noun = "errors"
	}
	return fmt.Sprintf("validation: %d %s: %s", len(parts), noun, strings.Join(parts, "; "))
}

// Unwrap exposes each FieldError to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe
	}
	return out
}
