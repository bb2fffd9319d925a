package form

import (
	"github.com/charmbracelet/huh"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// Action is a choice in the navigation menu shown after each step.
type Action string

// Navigation actions.
const (
	ActionNext    Action = "next"
	ActionBack    Action = "back"
	ActionSave    Action = "save"
	ActionPublish Action = "publish"
	ActionQuit    Action = "quit"
)

// Standard application sections toggled in the application form step.
const (
	sectionBudget      = "budget"
	sectionTimeline    = "timeline"
	sectionImpact      = "impact"
	sectionPartnership = "partnership"
)

// Notification toggles in the review step.
const (
	notifyApplicants = "applicants"
	notifyCommittee  = "committee"
	notifyPublic     = "public"
)

// Actions returns the menu entries available on step.
func Actions(step wizard.Step) []Action {
	actions := make([]Action, 0, 5)
	if step < wizard.LastStep {
		actions = append(actions, ActionNext)
	}
	if step > wizard.FirstStep {
		actions = append(actions, ActionBack)
	}
	actions = append(actions, ActionSave)
	if step == wizard.LastStep {
		actions = append(actions, ActionPublish)
	}
	return append(actions, ActionQuit)
}

func (a Action) label() string {
	switch a {
	case ActionNext:
		return "Next step"
	case ActionBack:
		return "Previous step"
	case ActionSave:
		return "Save draft"
	case ActionPublish:
		return "Publish grant"
	case ActionQuit:
		return "Quit"
	default:
		return string(a)
	}
}

func actionOptions(step wizard.Step) []huh.Option[Action] {
	actions := Actions(step)
	opts := make([]huh.Option[Action], len(actions))
	for i, a := range actions {
		opts[i] = huh.NewOption(a.label(), a)
	}
	return opts
}

func categoryOptions() []huh.Option[grant.Category] {
	opts := make([]huh.Option[grant.Category], len(grant.Categories))
	for i, c := range grant.Categories {
		opts[i] = huh.NewOption(string(c), c)
	}
	return opts
}

func documentOptions() []huh.Option[grant.DocumentType] {
	opts := make([]huh.Option[grant.DocumentType], len(grant.DocumentTypes))
	for i, d := range grant.DocumentTypes {
		opts[i] = huh.NewOption(string(d), d)
	}
	return opts
}

func answerTypeOptions() []huh.Option[grant.AnswerType] {
	opts := make([]huh.Option[grant.AnswerType], len(grant.AnswerTypes))
	for i, a := range grant.AnswerTypes {
		opts[i] = huh.NewOption(a.Label(), a)
	}
	return opts
}

func roleOptions() []huh.Option[grant.ReviewerRole] {
	opts := make([]huh.Option[grant.ReviewerRole], len(grant.ReviewerRoles))
	for i, r := range grant.ReviewerRoles {
		opts[i] = huh.NewOption(r.Label(), r)
	}
	return opts
}

var sectionOptions = []huh.Option[string]{
	huh.NewOption("Budget breakdown", sectionBudget),
	huh.NewOption("Project timeline", sectionTimeline),
	huh.NewOption("Impact measurement", sectionImpact),
	huh.NewOption("Partnership details", sectionPartnership),
}

var notificationOptions = []huh.Option[string]{
	huh.NewOption("Email applicants about status changes", notifyApplicants),
	huh.NewOption("Email the review committee", notifyCommittee),
	huh.NewOption("Public announcement on publish", notifyPublic),
}
