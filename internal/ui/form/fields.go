package form

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/wizard"
)

var validate = validator.New()

// fields is the editable text of one Draft.
type fields struct {
	Title       string
	Category    grant.Category
	Description string
	Eligibility string
	Documents   []grant.DocumentType

	TotalFunding     string
	MaxAmount        string
	MinAmount        string
	OpenDate         string
	CloseDate        string
	AssessmentPeriod string
	FundingStart     string
	FundingEnd       string

	Sections []string

	AutoPublish   bool
	Notifications []string
}

func fromDraft(d grant.Draft) fields {
	f := fields{
		Title:        d.Title,
		Category:     d.Category,
		Description:  d.Description,
		Eligibility:  d.EligibilityCriteria,
		Documents:    slices.Clone(d.RequiredDocuments),
		TotalFunding: formatAmount(d.TotalFunding),
		MaxAmount:    formatAmount(d.MaxApplicationAmount),
		MinAmount:    formatAmount(d.MinApplicationAmount),
		OpenDate:     d.ApplicationOpenDate.String(),
		CloseDate:    d.ApplicationCloseDate.String(),
		FundingStart: d.FundingStartDate.String(),
		FundingEnd:   d.FundingEndDate.String(),
		AutoPublish:  d.AutoPublish,
	}
	if d.AssessmentPeriod != 0 {
		f.AssessmentPeriod = strconv.Itoa(d.AssessmentPeriod)
	}

	for key, on := range map[string]bool{
		sectionBudget:      d.BudgetRequirements,
		sectionTimeline:    d.ProjectTimeline,
		sectionImpact:      d.ImpactMeasurement,
		sectionPartnership: d.PartnershipDetails,
	} {
		if on {
			f.Sections = append(f.Sections, key)
		}
	}
	slices.Sort(f.Sections)

	n := d.NotificationSettings
	for key, on := range map[string]bool{
		notifyApplicants: n.EmailApplicants,
		notifyCommittee:  n.EmailCommittee,
		notifyPublic:     n.PublicAnnouncement,
	} {
		if on {
			f.Notifications = append(f.Notifications, key)
		}
	}
	slices.Sort(f.Notifications)
	return f
}

// apply writes the fields belonging to step into d.
func (f fields) apply(d grant.Draft, step wizard.Step) (grant.Draft, error) {
	var updates []fieldUpdate

	switch step {
	case wizard.StepBasicDetails:
		updates = []fieldUpdate{
			{grant.FieldTitle, strings.TrimSpace(f.Title)},
			{grant.FieldCategory, f.Category},
			{grant.FieldDescription, strings.TrimSpace(f.Description)},
			{grant.FieldEligibilityCriteria, strings.TrimSpace(f.Eligibility)},
			{grant.FieldRequiredDocuments, slices.Clone(f.Documents)},
		}

	case wizard.StepFundingDates:
		total, err := parseAmount(f.TotalFunding)
		if err != nil {
			return d, fmt.Errorf("total funding: %w", err)
		}
		maxAmount, err := parseAmount(f.MaxAmount)
		if err != nil {
			return d, fmt.Errorf("maximum amount: %w", err)
		}
		minAmount, err := parseAmount(f.MinAmount)
		if err != nil {
			return d, fmt.Errorf("minimum amount: %w", err)
		}
		weeks, err := parseWeeks(f.AssessmentPeriod)
		if err != nil {
			return d, fmt.Errorf("assessment period: %w", err)
		}
		dates := make([]grant.Date, 4)
		for i, s := range []string{f.OpenDate, f.CloseDate, f.FundingStart, f.FundingEnd} {
			if dates[i], err = grant.ParseDate(strings.TrimSpace(s)); err != nil {
				return d, err
			}
		}
		updates = []fieldUpdate{
			{grant.FieldTotalFunding, total},
			{grant.FieldMaxApplicationAmount, maxAmount},
			{grant.FieldMinApplicationAmount, minAmount},
			{grant.FieldAssessmentPeriod, weeks},
			{grant.FieldApplicationOpenDate, dates[0]},
			{grant.FieldApplicationCloseDate, dates[1]},
			{grant.FieldFundingStartDate, dates[2]},
			{grant.FieldFundingEndDate, dates[3]},
		}

	case wizard.StepApplicationForm:
		updates = []fieldUpdate{
			{grant.FieldBudgetRequirements, slices.Contains(f.Sections, sectionBudget)},
			{grant.FieldProjectTimeline, slices.Contains(f.Sections, sectionTimeline)},
			{grant.FieldImpactMeasurement, slices.Contains(f.Sections, sectionImpact)},
			{grant.FieldPartnershipDetails, slices.Contains(f.Sections, sectionPartnership)},
		}

	case wizard.StepReviewPublish:
		updates = []fieldUpdate{
			{grant.FieldAutoPublish, f.AutoPublish},
			{grant.FieldNotificationSettings, grant.NotificationSettings{
				EmailApplicants:    slices.Contains(f.Notifications, notifyApplicants),
				EmailCommittee:     slices.Contains(f.Notifications, notifyCommittee),
				PublicAnnouncement: slices.Contains(f.Notifications, notifyPublic),
			}},
		}
	}

	var err error
	for _, u := range updates {
		if d, err = d.Set(u.field, u.value); err != nil {
			return d, err
		}
	}
	return d, nil
}

type fieldUpdate struct {
	field string
	value any
}

// parseAmount accepts plain and currency formatted amounts. Empty means zero.
func parseAmount(s string) (float64, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errAmountInvalid
	}
	return v, nil
}

func parseWeeks(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, errWeeksInvalid
	}
	return v, nil
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Input validators used by the huh fields. They only check the format; the
// wizard rules decide whether a value is acceptable.

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func validateWeeks(s string) error {
	_, err := parseWeeks(s)
	return err
}

func validateDate(s string) error {
	if _, err := grant.ParseDate(strings.TrimSpace(s)); err != nil {
		return errDateInvalid
	}
	return nil
}

func validateEmail(s string) error {
	if err := validate.Var(strings.TrimSpace(s), "required,email"); err != nil {
		return errEmailInvalid
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}
