package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grantthrive/grantctl/internal/wizard"
)

// RunSubmission shows a spinner until results yields the submission outcome.
// Extra program options are passed to Bubble Tea; tests use them to replace
// the terminal.
func RunSubmission(
	ctx context.Context,
	title string,
	intent wizard.Intent,
	results <-chan wizard.Result,
	opts ...tea.ProgramOption,
) (wizard.Result, error) {
	m := NewSubmissionModel(title, intent)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	go func() {
		select {
		case res, ok := <-results:
			if !ok {
				p.Send(ErrMsg{Err: errors.New("submission finished without a result")})
				return
			}
			p.Send(ResultMsg{Result: res})
		case <-ctx.Done():
			p.Send(ErrMsg{Err: ctx.Err()})
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return wizard.Result{}, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return wizard.Result{}, fm.Err
	}
	return *fm.Result, nil
}
