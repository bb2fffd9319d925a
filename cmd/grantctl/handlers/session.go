package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/grantthrive/grantctl/internal/config"
	"github.com/grantthrive/grantctl/internal/metrics"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// meteredSession records validation failures of a wizard Controller.
type meteredSession struct {
	*wizard.Controller
}

func (s meteredSession) Advance() wizard.Errors {
	step := s.State().Step
	errs := s.Controller.Advance()
	if !errs.Empty() {
		metrics.RecordValidationFailure(int(step))
	}
	return errs
}

func (s meteredSession) Publish(ctx context.Context) (<-chan wizard.Result, error) {
	ch, err := s.Controller.Publish(ctx)
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		metrics.RecordValidationFailure(int(verr.Step))
	}
	return ch, err
}

// newSession builds a metered Controller that submits through sub.
func newSession(ctx context.Context, cfg *config.Config, sub wizard.Submitter, initial wizard.State) meteredSession {
	log := logr.FromContextOrDiscard(ctx).WithValues("session", initial.SessionID.String())
	c := wizard.NewController(sub, initial,
		wizard.WithTimeout(cfg.Timeouts.Submit),
		wizard.WithLogger(log),
		wizard.WithObserver(func(res wizard.Result, elapsed time.Duration) {
			metrics.RecordSubmission(res.Intent.String(), res.Err == nil, elapsed.Seconds())
		}),
	)
	return meteredSession{Controller: c}
}
