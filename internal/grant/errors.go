package grant

import (
	"errors"
	"fmt"
)

// Draft update errors.
var (
	ErrUnknownField     = errors.New("unknown draft field")
	ErrFieldType        = errors.New("value does not match field type")
	ErrIndexOutOfRange  = errors.New("list position out of range")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownDocument  = errors.New("unknown document type")
	ErrUnknownAnswer    = errors.New("unknown answer type")
	ErrUnknownRole      = errors.New("unknown reviewer role")
	errEmptyDraftFile   = errors.New("draft file is empty")
	errDraftFileVersion = errors.New("unsupported draft file version")
)

// IndexError reports a remove at a position outside the list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("position %d out of range for list of length %d", e.Index, e.Len)
}

// Unwrap lets callers match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// FieldError reports a failed Set call.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
