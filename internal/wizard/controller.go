package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/grantthrive/grantctl/internal/grant"
)

// DefaultSubmitTimeout bounds a single save or publish call.
const DefaultSubmitTimeout = 30 * time.Second

// Submitter persists and publishes drafts.
type Submitter interface {
	SaveDraft(ctx context.Context, sub Submission) (Receipt, error)
	Publish(ctx context.Context, sub Submission) (Receipt, error)
}

// Observer is called after every finished submission.
type Observer func(r Result, elapsed time.Duration)

// Controller holds a State and runs submissions asynchronously.
// It is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	state     State
	submitter Submitter
	timeout   time.Duration
	observer  Observer
	log       logr.Logger
	wg        sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout sets the per-call submission timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for submission events.
func WithLogger(l logr.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithObserver registers fn to be called after every submission.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// NewController returns a Controller starting from initial.
func NewController(submitter Submitter, initial State, opts ...Option) *Controller {
	c := &Controller{
		state:     initial,
		submitter: submitter,
		timeout:   DefaultSubmitTimeout,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UpdateField sets one Draft field.
func (c *Controller) UpdateField(field string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.UpdateField(field, value)
	c.state = next
	return err
}

// Edit applies fn to the Draft.
func (c *Controller) Edit(fn func(grant.Draft) (grant.Draft, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.Edit(fn)
	c.state = next
	return err
}

// Advance tries to move forward and returns the errors that blocked it.
func (c *Controller) Advance() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Advance()
	return c.state.Errors
}

// Retreat moves back one step.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Retreat()
}

// SaveDraft starts a draft save. It returns ErrSaveInFlight while a previous
// save has not finished. The returned channel yields exactly one Result.
func (c *Controller) SaveDraft(ctx context.Context) (<-chan Result, error) {
	return c.start(ctx, State.BeginSave, c.submitter.SaveDraft)
}

// Publish validates the review step and starts a publish. It returns a
// *ValidationError without calling the Submitter when the step is invalid.
func (c *Controller) Publish(ctx context.Context) (<-chan Result, error) {
	return c.start(ctx, State.BeginPublish, c.submitter.Publish)
}

// Wait blocks until every started submission has completed.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) start(
	ctx context.Context,
	begin func(State) (State, Submission, error),
	call func(context.Context, Submission) (Receipt, error),
) (<-chan Result, error) {
	c.mu.Lock()
	next, sub, err := begin(c.state)
	c.state = next
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log := c.log.WithValues("intent", sub.Intent.String(), "idempotencyKey", sub.IdempotencyKey)
	log.V(1).Info("Submitting grant")

	out := make(chan Result, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(out)

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		started := time.Now()
		receipt, err := call(callCtx, sub)
		res := Result{Intent: sub.Intent, AutoPublish: sub.AutoPublish, Receipt: receipt}
		if err != nil {
			res.Err = &SubmissionError{Intent: sub.Intent, Err: err}
			log.Error(err, "Submission failed")
		} else {
			log.Info("Submission accepted", "grantID", receipt.ID, "status", receipt.Status)
		}

		c.mu.Lock()
		c.state = c.state.Complete(res)
		c.mu.Unlock()

		if c.observer != nil {
			c.observer(res, time.Since(started))
		}
		out <- res
	}()
	return out, nil
}
