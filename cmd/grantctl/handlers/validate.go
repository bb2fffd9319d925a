package handlers

import (
	"errors"
	"fmt"

	"github.com/grantthrive/grantctl/internal/metrics"
	"github.com/grantthrive/grantctl/internal/ui/tui"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// ErrDraftInvalid is returned by Validate when any step fails.
var ErrDraftInvalid = errors.New("draft is not ready to publish")

// Validate prints a per-step validation report of a draft file.
func Validate(draftPath string) error {
	d, err := loadDraft(draftPath)
	if err != nil {
		return err
	}

	failures := wizard.ValidateAll(d)

	fmt.Printf("Validating %s\n\n", draftPath)
	for _, step := range wizard.Steps {
		errs, failed := failures[step]
		if !failed {
			fmt.Printf("  [OK] Step %d: %s\n", step, step.Title())
			continue
		}
		metrics.RecordValidationFailure(int(step))
		fmt.Printf("  [!!] Step %d: %s\n", step, step.Title())
		fmt.Print(tui.RenderErrors(errs))
	}
	fmt.Println()

	if len(failures) > 0 {
		return fmt.Errorf("%w: %d of %d steps have errors", ErrDraftInvalid, len(failures), len(wizard.Steps))
	}
	fmt.Println("Draft is ready to publish.")
	return nil
}
