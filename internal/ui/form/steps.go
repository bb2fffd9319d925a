package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// runStep shows the form of step, editing f in place.
func runStep(ctx context.Context, step wizard.Step, f *fields) error {
	switch step {
	case wizard.StepBasicDetails:
		return runBasicDetailsGroup(ctx, f)
	case wizard.StepFundingDates:
		return runFundingDatesGroup(ctx, f)
	case wizard.StepApplicationForm:
		return runApplicationFormGroup(ctx, f)
	case wizard.StepReviewPublish:
		return runReviewPublishGroup(ctx, f)
	default:
		return fmt.Errorf("unknown step %d", step)
	}
}

// runBasicDetailsGroup prompts for the program identity.
func runBasicDetailsGroup(ctx context.Context, f *fields) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Grant Title").
				Description("A clear name applicants will recognise").
				Placeholder("Community Garden Grants 2026").
				Value(&f.Title),
			huh.NewSelect[grant.Category]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&f.Category),
			huh.NewText().
				Title("Description").
				Description("What the program funds and why").
				Value(&f.Description),
			huh.NewText().
				Title("Eligibility Criteria").
				Description("Who can apply").
				Value(&f.Eligibility),
			huh.NewMultiSelect[grant.DocumentType]().
				Title("Required Documents").
				Options(documentOptions()...).
				Value(&f.Documents),
		).Title(wizard.StepBasicDetails.Title()),
	).RunWithContext(ctx)
}

// runFundingDatesGroup prompts for amounts and the application window.
func runFundingDatesGroup(ctx context.Context, f *fields) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total Funding").
				Description("Total pool available across all applications").
				Placeholder("50000").
				Value(&f.TotalFunding).
				Validate(validateAmount),
			huh.NewInput().
				Title("Maximum Application Amount").
				Placeholder("5000").
				Value(&f.MaxAmount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Minimum Application Amount (Optional)").
				Value(&f.MinAmount).
				Validate(validateAmount),
		).Title("Funding"),
		huh.NewGroup(
			huh.NewInput().
				Title("Applications Open").
				Placeholder(grant.DateLayout).
				Value(&f.OpenDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Applications Close").
				Placeholder(grant.DateLayout).
				Value(&f.CloseDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Assessment Period (weeks, Optional)").
				Value(&f.AssessmentPeriod).
				Validate(validateWeeks),
			huh.NewInput().
				Title("Funding Start (Optional)").
				Placeholder(grant.DateLayout).
				Value(&f.FundingStart).
				Validate(validateDate),
			huh.NewInput().
				Title("Funding End (Optional)").
				Placeholder(grant.DateLayout).
				Value(&f.FundingEnd).
				Validate(validateDate),
		).Title("Dates"),
	).RunWithContext(ctx)
}

// runApplicationFormGroup prompts for the standard application sections.
func runApplicationFormGroup(ctx context.Context, f *fields) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Standard Sections").
				Description("Sections every applicant must complete").
				Options(sectionOptions...).
				Value(&f.Sections),
		).Title(wizard.StepApplicationForm.Title()),
	).RunWithContext(ctx)
}

// runReviewPublishGroup prompts for publishing and notification settings.
func runReviewPublishGroup(ctx context.Context, f *fields) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Publish Immediately?").
				Description("Otherwise the grant is submitted for review before it goes live").
				Affirmative("Publish").
				Negative("Review first").
				Value(&f.AutoPublish),
			huh.NewMultiSelect[string]().
				Title("Notifications").
				Options(notificationOptions...).
				Value(&f.Notifications),
		).Title(wizard.StepReviewPublish.Title()),
	).RunWithContext(ctx)
}

// listEditor manages one of the Draft's lists.
type listEditor struct {
	title  string
	noun   string
	items  func(grant.Draft) []string
	prompt func(ctx context.Context) (func(grant.Draft) grant.Draft, error)
	remove func(d grant.Draft, i int) (grant.Draft, error)
}

var questionEditor = listEditor{
	title: "Custom Questions",
	noun:  "question",
	items: func(d grant.Draft) []string {
		out := make([]string, len(d.CustomQuestions))
		for i, q := range d.CustomQuestions {
			req := ""
			if q.Required {
				req = ", required"
			}
			out[i] = fmt.Sprintf("%s (%s%s)", q.Question, q.Type.Label(), req)
		}
		return out
	},
	prompt: promptQuestion,
	remove: grant.Draft.RemoveQuestion,
}

var reviewerEditor = listEditor{
	title: "Review Committee",
	noun:  "reviewer",
	items: func(d grant.Draft) []string {
		out := make([]string, len(d.ReviewCommittee))
		for i, r := range d.ReviewCommittee {
			out[i] = fmt.Sprintf("%s <%s> (%s)", r.Name, r.Email, r.Role.Label())
		}
		return out
	},
	prompt: promptReviewer,
	remove: grant.Draft.RemoveReviewer,
}

var criterionEditor = listEditor{
	title:  "Scoring Criteria",
	noun:   "scoring criterion",
	items:  func(d grant.Draft) []string { return d.ScoringCriteria },
	prompt: promptCriterion,
	remove: grant.Draft.RemoveScoringCriterion,
}

// editorsFor returns the list editors shown on step.
func editorsFor(step wizard.Step) []listEditor {
	switch step {
	case wizard.StepApplicationForm:
		return []listEditor{questionEditor}
	case wizard.StepReviewPublish:
		return []listEditor{reviewerEditor, criterionEditor}
	default:
		return nil
	}
}

type listChoice int

const (
	listDone listChoice = iota
	listAdd
	listRemove
)

// run lets the user add and remove items until they choose done.
func (e listEditor) run(ctx context.Context, s Session) error {
	for {
		items := e.items(s.State().Draft)

		choice := listDone
		opts := []huh.Option[listChoice]{
			huh.NewOption("Continue", listDone),
			huh.NewOption("Add "+e.noun, listAdd),
		}
		if len(items) > 0 {
			opts = append(opts, huh.NewOption("Remove "+e.noun, listRemove))
		}

		desc := "none yet"
		if len(items) > 0 {
			desc = strings.Join(items, "\n")
		}
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[listChoice]().
					Title(fmt.Sprintf("%s (%d)", e.title, len(items))).
					Description(desc).
					Options(opts...).
					Value(&choice),
			),
		).RunWithContext(ctx)
		if err != nil {
			return err
		}

		switch choice {
		case listDone:
			return nil
		case listAdd:
			add, err := e.prompt(ctx)
			if err != nil {
				return err
			}
			if err := s.Edit(func(d grant.Draft) (grant.Draft, error) { return add(d), nil }); err != nil {
				return err
			}
		case listRemove:
			idx, err := pickIndex(ctx, "Remove which "+e.noun+"?", items)
			if err != nil {
				return err
			}
			if err := s.Edit(func(d grant.Draft) (grant.Draft, error) { return e.remove(d, idx) }); err != nil {
				return err
			}
		}
	}
}

func pickIndex(ctx context.Context, title string, items []string) (int, error) {
	opts := make([]huh.Option[int], len(items))
	for i, item := range items {
		opts[i] = huh.NewOption(item, i)
	}
	var idx int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title(title).Options(opts...).Value(&idx),
		),
	).RunWithContext(ctx)
	return idx, err
}

func promptQuestion(ctx context.Context) (func(grant.Draft) grant.Draft, error) {
	q := grant.NewQuestion("")
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Question").
				Value(&q.Question).
				Validate(validateRequired),
			huh.NewSelect[grant.AnswerType]().
				Title("Answer Type").
				Options(answerTypeOptions()...).
				Value(&q.Type),
			huh.NewConfirm().
				Title("Required?").
				Value(&q.Required),
		).Title("Custom Question"),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	q.Question = strings.TrimSpace(q.Question)
	return func(d grant.Draft) grant.Draft { return d.AddQuestion(q) }, nil
}

func promptReviewer(ctx context.Context) (func(grant.Draft) grant.Draft, error) {
	r := grant.NewReviewer("", "")
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&r.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Email").
				Value(&r.Email).
				Validate(validateEmail),
			huh.NewSelect[grant.ReviewerRole]().
				Title("Role").
				Options(roleOptions()...).
				Value(&r.Role),
		).Title("Review Committee Member"),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	r.Name, r.Email = strings.TrimSpace(r.Name), strings.TrimSpace(r.Email)
	return func(d grant.Draft) grant.Draft { return d.AddReviewer(r) }, nil
}

func promptCriterion(ctx context.Context) (func(grant.Draft) grant.Draft, error) {
	var c string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scoring Criterion").
				Placeholder("Community impact").
				Value(&c).
				Validate(validateRequired),
		),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	c = strings.TrimSpace(c)
	return func(d grant.Draft) grant.Draft { return d.AddScoringCriterion(c) }, nil
}
