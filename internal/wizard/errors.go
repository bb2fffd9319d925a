package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// In-flight guard errors.
var (
	ErrSaveInFlight    = errors.New("a draft save is already in progress")
	ErrPublishInFlight = errors.New("a publish request is already in progress")
)

// Errors maps a field name to its validation message. An empty Errors means
// the step passed.
type Errors map[string]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// ValidationError reports a step that failed validation. It never reaches the
// network.
type ValidationError struct {
	Step   Step
	Errors Errors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors.Fields() {
		msgs = append(msgs, e.Errors[f])
	}
	return fmt.Sprintf("step %d (%s) is incomplete: %s", e.Step, e.Step.Title(), strings.Join(msgs, "; "))
}

// SubmissionError wraps a failed save or publish call.
type SubmissionError struct {
	Intent Intent
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to %s grant: %v", e.Intent.verb(), e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
