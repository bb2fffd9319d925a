package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/ui/tui"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// SubmitOptions configures Submit.
type SubmitOptions struct {
	DraftPath string
	Publish   bool
	// AutoPublish overrides the draft's autoPublish when set.
	AutoPublish *bool
}

// Submit saves or publishes a draft file without the interactive wizard.
func Submit(ctx context.Context, opts SubmitOptions) error {
	d, err := loadDraft(opts.DraftPath)
	if err != nil {
		return err
	}

	apiClient, cfg, err := client(ctx)
	if err != nil {
		return err
	}

	s := newSession(ctx, cfg, apiClient, wizard.NewWithDraft(d))
	if opts.AutoPublish != nil {
		if err := s.UpdateField(grant.FieldAutoPublish, *opts.AutoPublish); err != nil {
			return err
		}
	}

	intent := wizard.IntentDraft
	start := s.SaveDraft
	if opts.Publish {
		intent = wizard.IntentPublish
		start = s.Publish
	}

	ch, err := start(ctx)
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		fmt.Print(tui.RenderErrors(verr.Errors))
		return err
	}
	if err != nil {
		return err
	}

	res, err := awaitResult(ctx, d.Title, intent, ch)
	s.Wait()
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderNotice(res.Notice()))
	if res.Err != nil {
		return res.Err
	}
	fmt.Printf("  Grant ID: %s\n", res.Receipt.ID)
	fmt.Printf("  Status:   %s\n", res.Receipt.Status)
	return nil
}

// awaitResult shows a spinner on terminals and blocks silently otherwise.
func awaitResult(ctx context.Context, title string, intent wizard.Intent, ch <-chan wizard.Result) (wizard.Result, error) {
	if isInteractive() {
		return waitSubmission(ctx, title, intent, ch)
	}
	res, ok := <-ch
	if !ok {
		return wizard.Result{}, errors.New("submission finished without a result")
	}
	return res, nil
}
