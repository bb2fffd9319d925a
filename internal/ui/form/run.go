package form

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/ui/tui"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// Session is the wizard surface driven by the forms. *wizard.Controller
// implements it.
type Session interface {
	State() wizard.State
	Edit(fn func(grant.Draft) (grant.Draft, error)) error
	Advance() wizard.Errors
	Retreat()
	SaveDraft(ctx context.Context) (<-chan wizard.Result, error)
	Publish(ctx context.Context) (<-chan wizard.Result, error)
}

var _ Session = (*wizard.Controller)(nil)

// WaitFunc blocks until a submission yields its Result.
type WaitFunc func(ctx context.Context, title string, intent wizard.Intent, results <-chan wizard.Result) (wizard.Result, error)

// Options configures Run.
type Options struct {
	Out  io.Writer
	Wait WaitFunc
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Wait == nil {
		o.Wait = func(ctx context.Context, title string, intent wizard.Intent, results <-chan wizard.Result) (wizard.Result, error) {
			return tui.RunSubmission(ctx, title, intent, results)
		}
	}
	return o
}

// Run walks the user through the wizard until they quit or the grant is
// published. It returns the final State.
func Run(ctx context.Context, s Session, opts Options) (wizard.State, error) {
	opts = opts.withDefaults()
	log := logr.FromContextOrDiscard(ctx)

	for {
		st := s.State()
		render(opts.Out, st)

		f := fromDraft(st.Draft)
		if err := runStep(ctx, st.Step, &f); err != nil {
			return s.State(), formErr(err)
		}
		if err := s.Edit(func(d grant.Draft) (grant.Draft, error) { return f.apply(d, st.Step) }); err != nil {
			return s.State(), err
		}
		for _, editor := range editorsFor(st.Step) {
			if err := editor.run(ctx, s); err != nil {
				return s.State(), formErr(err)
			}
		}

		if st.Step == wizard.StepReviewPublish {
			_, _ = fmt.Fprint(opts.Out, tui.RenderSummary(s.State().Draft))
		}

		action, err := chooseAction(ctx, st.Step)
		if err != nil {
			return s.State(), formErr(err)
		}
		log.V(1).Info("Wizard action", "step", int(st.Step), "action", string(action))

		done, err := Perform(ctx, s, action, opts)
		if err != nil {
			return s.State(), err
		}
		if done {
			return s.State(), nil
		}
	}
}

// Perform carries out one navigation action. It reports whether the wizard
// is finished: after quitting or a successful publish.
func Perform(ctx context.Context, s Session, action Action, opts Options) (bool, error) {
	opts = opts.withDefaults()

	switch action {
	case ActionNext:
		if errs := s.Advance(); !errs.Empty() {
			_, _ = fmt.Fprint(opts.Out, tui.RenderErrors(errs))
		}
		return false, nil

	case ActionBack:
		s.Retreat()
		return false, nil

	case ActionSave:
		ch, err := s.SaveDraft(ctx)
		if err != nil {
			return false, notify(opts.Out, err)
		}
		res, err := opts.Wait(ctx, s.State().Draft.Title, wizard.IntentDraft, ch)
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintln(opts.Out, tui.RenderNotice(res.Notice()))
		return false, nil

	case ActionPublish:
		ch, err := s.Publish(ctx)
		if err != nil {
			return false, notify(opts.Out, err)
		}
		res, err := opts.Wait(ctx, s.State().Draft.Title, wizard.IntentPublish, ch)
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintln(opts.Out, tui.RenderNotice(res.Notice()))
		return res.Err == nil, nil

	case ActionQuit:
		return true, nil

	default:
		return false, fmt.Errorf("unknown action %q", action)
	}
}

// notify prints errors the user can recover from and returns the rest.
func notify(out io.Writer, err error) error {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		_, _ = fmt.Fprint(out, tui.RenderErrors(verr.Errors))
		return nil
	case errors.Is(err, wizard.ErrSaveInFlight), errors.Is(err, wizard.ErrPublishInFlight):
		_, _ = fmt.Fprintln(out, tui.RenderNotice(wizard.Notice{Kind: wizard.NoticeError, Message: err.Error()}))
		return nil
	default:
		return err
	}
}

// render draws the step frame. Validation errors are left to Perform, which
// prints them as they happen.
func render(out io.Writer, st wizard.State) {
	_, _ = fmt.Fprint(out, tui.RenderHeader(st))
	if n := tui.RenderNotice(st.Notice); n != "" {
		_, _ = fmt.Fprintln(out, n)
	}
	_, _ = fmt.Fprint(out, tui.RenderTips(st.Step))
	_, _ = fmt.Fprint(out, tui.RenderFooter(st))
}

func chooseAction(ctx context.Context, step wizard.Step) (Action, error) {
	action := Actions(step)[0]
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("What next?").
				Options(actionOptions(step)...).
				Value(&action),
		),
	).RunWithContext(ctx)
	return action, err
}

func formErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
