package contracts

import (
	"errors"
	"fmt"
)

var MissingRequiredError = errors.New("value is required")
var TypeMismatchError = errors.New("value has wrong type")
var BelowMinimumError = errors.New("value is below minimum")
var AboveMaximumError = errors.New("value is above maximum")
var PatternMismatchError = errors.New("value does not match pattern")

// FieldError reports the first column a payload violated. Reason is one
// of the sentinel errors above, so callers can match with errors.Is.
type FieldError struct {
	Column string
	Reason error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Column, e.Reason.Error(), e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Column, e.Reason.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Reason
}

// RowValidator checks a payload against a column schema and converts it
// into typed cells. Pure, no I/O. Validation stops at the first failing
// column and reports that single error.
type RowValidator interface {
	Validate(payload RowPayload, columns []Column) (RowCells, error)
}
