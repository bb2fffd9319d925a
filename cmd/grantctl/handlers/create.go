package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/ui/form"
	"github.com/grantthrive/grantctl/internal/ui/tui"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// ErrNotInteractive is returned when an interactive command runs without a terminal.
var ErrNotInteractive = errors.New("this command needs an interactive terminal")

// Factory function variables for create - can be replaced in tests.
var (
	// runWizard drives the wizard with huh forms.
	runWizard = form.Run

	// waitSubmission shows a spinner until the submission completes.
	waitSubmission form.WaitFunc = func(ctx context.Context, title string, intent wizard.Intent, results <-chan wizard.Result) (wizard.Result, error) {
		return tui.RunSubmission(ctx, title, intent, results)
	}

	// loadDraft reads a draft file.
	loadDraft = grant.LoadFile

	// writeDraft writes a draft file.
	writeDraft = grant.WriteFile
)

// CreateOptions configures Create.
type CreateOptions struct {
	// DraftPath resumes from an existing draft file.
	DraftPath string
	// SavePath receives the draft when the wizard ends.
	SavePath    string
	AutoPublish bool
}

// Create runs the interactive grant creation wizard.
func Create(ctx context.Context, opts CreateOptions) error {
	if !isInteractive() {
		return fmt.Errorf("%w: use 'grantctl submit -f draft.yaml' in scripts", ErrNotInteractive)
	}

	apiClient, cfg, err := client(ctx)
	if err != nil {
		return err
	}

	d := grant.NewDraft()
	if opts.DraftPath != "" {
		if d, err = loadDraft(opts.DraftPath); err != nil {
			return err
		}
	}
	if opts.AutoPublish {
		d.AutoPublish = true
	}

	s := newSession(ctx, cfg, apiClient, wizard.NewWithDraft(d))
	printWelcome()

	final, err := runWizard(ctx, s, form.Options{Out: os.Stdout, Wait: waitSubmission})
	s.Wait()

	// ctrl+c in a form or under the submission spinner both end the wizard.
	aborted := errors.Is(err, form.ErrAborted) || errors.Is(err, tui.ErrInterrupted)
	if err != nil && !aborted {
		return err
	}

	if opts.SavePath != "" {
		if err := writeDraft(final.Draft, opts.SavePath); err != nil {
			return fmt.Errorf("failed to write draft: %w", err)
		}
		fmt.Printf("Draft written to %s\n", opts.SavePath)
	}
	if aborted {
		fmt.Println("Wizard cancelled.")
	}
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("GrantThrive - Create New Grant")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("Set up a grant program in four steps. You can save a draft at any time.")
	fmt.Println()
}
