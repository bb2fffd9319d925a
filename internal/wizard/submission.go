package wizard

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/grantthrive/grantctl/internal/grant"
)

// Intent is what a submission asks the API to do with the Draft.
type Intent int

// Submission intents.
const (
	IntentDraft Intent = iota
	IntentPublish
)

func (i Intent) String() string {
	if i == IntentPublish {
		return "publish"
	}
	return "draft"
}

func (i Intent) verb() string {
	if i == IntentPublish {
		return "publish"
	}
	return "save"
}

// Submission is a Draft handed to the Submitter together with its intent.
type Submission struct {
	Intent         Intent
	Draft          grant.Draft
	AutoPublish    bool
	IdempotencyKey string
}

// Status returns the grant status the submission asks for.
func (s Submission) Status() grant.Status {
	switch {
	case s.Intent == IntentDraft:
		return grant.StatusDraft
	case s.AutoPublish:
		return grant.StatusPublished
	default:
		return grant.StatusPendingReview
	}
}

// newSubmission builds a Submission whose idempotency key is stable for
// identical content within one session.
func newSubmission(session uuid.UUID, intent Intent, d grant.Draft) (Submission, error) {
	sub := Submission{
		Intent:      intent,
		Draft:       d.Clone(),
		AutoPublish: intent == IntentPublish && d.AutoPublish,
	}
	key, err := idempotencyKey(session, sub)
	if err != nil {
		return Submission{}, err
	}
	sub.IdempotencyKey = key
	return sub, nil
}

func idempotencyKey(session uuid.UUID, sub Submission) (string, error) {
	payload, err := json.Marshal(struct {
		Intent      string      `json:"intent"`
		AutoPublish bool        `json:"autoPublish"`
		Draft       grant.Draft `json:"draft"`
	}{sub.Intent.String(), sub.AutoPublish, sub.Draft})
	if err != nil {
		return "", fmt.Errorf("failed to encode submission: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return session.String() + "-" + hex.EncodeToString(sum[:16]), nil
}

// Receipt is the API acknowledgement of a submission.
type Receipt struct {
	ID     string
	Status grant.Status
}

// Result is the outcome of an asynchronous submission.
type Result struct {
	Intent      Intent
	AutoPublish bool
	Receipt     Receipt
	Err         error
}

// NoticeKind classifies a Notice.
type NoticeKind int

// Notice kinds.
const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is the user-visible outcome of the last submission.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notice returns the message shown to the user for r.
func (r Result) Notice() Notice {
	if r.Err != nil {
		msg := "Failed to save draft. Please try again."
		if r.Intent == IntentPublish {
			msg = "Failed to publish grant. Please try again."
		}
		return Notice{Kind: NoticeError, Message: msg}
	}
	return Notice{Kind: NoticeSuccess, Message: r.Outcome()}
}

// Outcome describes a successful result.
func (r Result) Outcome() string {
	if r.Intent == IntentDraft {
		return "Draft saved successfully!"
	}
	status := r.Receipt.Status
	if status == "" {
		status = grant.StatusPendingReview
		if r.AutoPublish {
			status = grant.StatusPublished
		}
	}
	if status == grant.StatusPublished {
		return "Grant published successfully!"
	}
	return "Grant saved for review"
}
