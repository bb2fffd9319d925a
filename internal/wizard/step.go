package wizard

import (
	"fmt"

	"github.com/grantthrive/grantctl/internal/grant"
)

// Step is a wizard step index in [FirstStep, LastStep].
type Step int

// Wizard steps in order.
const (
	StepBasicDetails Step = iota + 1
	StepFundingDates
	StepApplicationForm
	StepReviewPublish
)

// Step bounds.
const (
	FirstStep = StepBasicDetails
	LastStep  = StepReviewPublish
)

// Steps lists every step in order.
var Steps = []Step{StepBasicDetails, StepFundingDates, StepApplicationForm, StepReviewPublish}

// Valid reports whether s is within the step bounds.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns the display title of the step.
func (s Step) Title() string {
	switch s {
	case StepBasicDetails:
		return "Basic Details"
	case StepFundingDates:
		return "Funding & Dates"
	case StepApplicationForm:
		return "Application Form"
	case StepReviewPublish:
		return "Review & Publish"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Tips returns the assistant suggestions shown alongside the step.
func (s Step) Tips() []string {
	switch s {
	case StepBasicDetails:
		return []string{
			"Consider adding community impact criteria",
			"Suggested funding range: $5,000-$50,000",
			"Include sustainability requirements",
			"Add partnership opportunities",
		}
	case StepFundingDates:
		return []string{
			"Allow 4-6 weeks for assessment",
			"Consider quarterly funding cycles",
			"Set realistic project timelines",
			"Include milestone reporting dates",
		}
	case StepApplicationForm:
		return []string{
			"Add project sustainability questions",
			"Include community engagement metrics",
			"Consider partnership requirements",
			"Add innovation criteria",
		}
	case StepReviewPublish:
		return []string{
			"Assign diverse review committee",
			"Set clear scoring criteria",
			"Plan public announcement",
			"Schedule information sessions",
		}
	default:
		return nil
	}
}

// Completion returns the progress percentage shown while on the step.
func (s Step) Completion() int {
	return int(clamp(s)) * 100 / int(LastStep)
}

// RemainingMinutes is the rough time estimate shown while on the step.
func (s Step) RemainingMinutes() int {
	return int(LastStep) + 1 - int(clamp(s))
}

// Section returns the part of d edited on step s.
func (s Step) Section(d grant.Draft) grant.Section {
	switch clamp(s) {
	case StepBasicDetails:
		return d.BasicDetails
	case StepFundingDates:
		return d.FundingDates
	case StepApplicationForm:
		return d.ApplicationForm
	case StepReviewPublish:
		return d.ReviewPublish
	}
	panic(fmt.Sprintf("wizard: unhandled step %d", int(s)))
}

// clamp forces s into the step bounds.
func clamp(s Step) Step {
	switch {
	case s < FirstStep:
		return FirstStep
	case s > LastStep:
		return LastStep
	default:
		return s
	}
}
