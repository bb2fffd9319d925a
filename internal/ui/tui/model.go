package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grantthrive/grantctl/internal/wizard"
)

// ErrInterrupted is returned when the user quits before the submission finished.
var ErrInterrupted = errors.New("interrupted while waiting for the submission")

// Model is the Bubble Tea model shown while a submission is in flight.
type Model struct {
	Title     string
	Intent    wizard.Intent
	StartTime time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Result *wizard.Result
	Err    error
	Done   bool
}

// NewSubmissionModel creates a model for a save or publish of the grant titled title.
func NewSubmissionModel(title string, intent wizard.Intent) Model {
	return Model{
		Title:     title,
		Intent:    intent,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Err = ErrInterrupted
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case ResultMsg:
		res := msg.Result
		m.Result = &res
		m.Done = true
		return m, tea.Quit

	case TickMsg:
		if m.Done {
			return m, nil
		}
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderSubmission(m)
}
