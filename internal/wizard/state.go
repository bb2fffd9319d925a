package wizard

import (
	"github.com/google/uuid"

	"github.com/grantthrive/grantctl/internal/grant"
)

// State is one snapshot of a wizard session. Methods never modify the
// receiver; they return the next State.
type State struct {
	Step       Step
	Draft      grant.Draft
	Errors     Errors
	Saving     bool
	Publishing bool
	SessionID  uuid.UUID
	Notice     Notice
}

// New starts a session on step 1 with a default Draft.
func New() State {
	return NewWithDraft(grant.NewDraft())
}

// NewWithDraft starts a session on step 1 with d.
func NewWithDraft(d grant.Draft) State {
	return State{
		Step:      FirstStep,
		Draft:     d.Clone(),
		SessionID: uuid.New(),
	}
}

// UpdateField sets one Draft field. It does not validate.
func (s State) UpdateField(field string, value any) (State, error) {
	d, err := s.Draft.Set(field, value)
	if err != nil {
		return s, err
	}
	s.Draft = d
	return s, nil
}

// Edit replaces the Draft with the result of fn. On error the State is
// returned unchanged.
func (s State) Edit(fn func(grant.Draft) (grant.Draft, error)) (State, error) {
	d, err := fn(s.Draft)
	if err != nil {
		return s, err
	}
	s.Draft = d
	return s, nil
}

// ValidateStep runs the rules of step against the current Draft.
func (s State) ValidateStep(step Step) Errors {
	return ValidateStep(s.Draft, step)
}

// Advance moves to the next step if the current one validates. Otherwise
// the errors are stored and the step is kept.
func (s State) Advance() State {
	s.Step = clamp(s.Step)
	errs := ValidateStep(s.Draft, s.Step)
	if !errs.Empty() {
		s.Errors = errs
		return s
	}
	s.Errors = nil
	if s.Step < LastStep {
		s.Step++
	}
	return s
}

// Retreat moves to the previous step without validating.
func (s State) Retreat() State {
	s.Step = clamp(s.Step)
	s.Errors = nil
	if s.Step > FirstStep {
		s.Step--
	}
	return s
}

// BeginSave marks a draft save as in flight and returns the submission to
// send. Incomplete drafts are accepted.
func (s State) BeginSave() (State, Submission, error) {
	if s.Saving {
		return s, Submission{}, ErrSaveInFlight
	}
	sub, err := newSubmission(s.SessionID, IntentDraft, s.Draft)
	if err != nil {
		return s, Submission{}, err
	}
	s.Saving = true
	return s, sub, nil
}

// BeginPublish validates the review step and, if it passes, marks a publish
// as in flight. The current step is never changed.
func (s State) BeginPublish() (State, Submission, error) {
	if s.Publishing {
		return s, Submission{}, ErrPublishInFlight
	}
	if errs := ValidateStep(s.Draft, LastStep); !errs.Empty() {
		s.Errors = errs
		return s, Submission{}, &ValidationError{Step: LastStep, Errors: errs}
	}
	sub, err := newSubmission(s.SessionID, IntentPublish, s.Draft)
	if err != nil {
		return s, Submission{}, err
	}
	s.Errors = nil
	s.Publishing = true
	return s, sub, nil
}

// Complete records the outcome of a submission and clears its in-flight flag.
func (s State) Complete(r Result) State {
	switch r.Intent {
	case IntentDraft:
		s.Saving = false
	case IntentPublish:
		s.Publishing = false
	}
	s.Notice = r.Notice()
	return s
}
