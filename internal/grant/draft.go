package grant

import "slices"

// BasicDetails holds the fields of the first wizard step.
type BasicDetails struct {
	Title               string         `json:"title" yaml:"title" validate:"required"`
	Category            Category       `json:"category" yaml:"category" validate:"required,grant_category"`
	Description         string         `json:"description" yaml:"description" validate:"required"`
	EligibilityCriteria string         `json:"eligibilityCriteria" yaml:"eligibility_criteria" validate:"required"`
	RequiredDocuments   []DocumentType `json:"requiredDocuments" yaml:"required_documents,omitempty"`
}

// FundingDates holds the fields of the second wizard step.
// Zero amounts and dates mean the value has not been entered.
type FundingDates struct {
	TotalFunding         float64 `json:"totalFunding" yaml:"total_funding,omitempty" validate:"required,gt=0"`
	MaxApplicationAmount float64 `json:"maxApplicationAmount" yaml:"max_application_amount,omitempty" validate:"gte=0"`
	MinApplicationAmount float64 `json:"minApplicationAmount" yaml:"min_application_amount,omitempty" validate:"gte=0"`
	ApplicationOpenDate  Date    `json:"applicationOpenDate" yaml:"application_open_date,omitempty" validate:"required"`
	ApplicationCloseDate Date    `json:"applicationCloseDate" yaml:"application_close_date,omitempty" validate:"required"`
	AssessmentPeriod     int     `json:"assessmentPeriod" yaml:"assessment_period,omitempty" validate:"gte=0"`
	FundingStartDate     Date    `json:"fundingStartDate" yaml:"funding_start_date,omitempty"`
	FundingEndDate       Date    `json:"fundingEndDate" yaml:"funding_end_date,omitempty"`
}

// ApplicationForm holds the fields of the third wizard step.
type ApplicationForm struct {
	CustomQuestions    []Question `json:"customQuestions" yaml:"custom_questions,omitempty"`
	BudgetRequirements bool       `json:"budgetRequirements" yaml:"budget_requirements"`
	ProjectTimeline    bool       `json:"projectTimeline" yaml:"project_timeline"`
	ImpactMeasurement  bool       `json:"impactMeasurement" yaml:"impact_measurement"`
	PartnershipDetails bool       `json:"partnershipDetails" yaml:"partnership_details"`
}

// ReviewPublish holds the fields of the fourth wizard step.
type ReviewPublish struct {
	ReviewCommittee      []Reviewer           `json:"reviewCommittee" yaml:"review_committee,omitempty" validate:"min=1"`
	ScoringCriteria      []string             `json:"scoringCriteria" yaml:"scoring_criteria,omitempty"`
	AutoPublish          bool                 `json:"autoPublish" yaml:"auto_publish"`
	NotificationSettings NotificationSettings `json:"notificationSettings" yaml:"notification_settings"`
}

// Section is one of the four Draft sections. The set of implementations is closed.
type Section interface {
	isSection()
}

func (BasicDetails) isSection()    {}
func (FundingDates) isSection()    {}
func (ApplicationForm) isSection() {}
func (ReviewPublish) isSection()   {}

// Draft is an in-progress grant program definition.
type Draft struct {
	BasicDetails    `yaml:",inline"`
	FundingDates    `yaml:",inline"`
	ApplicationForm `yaml:",inline"`
	ReviewPublish   `yaml:",inline"`
}

// NewDraft returns an empty Draft with the form defaults applied.
func NewDraft() Draft {
	return Draft{
		ApplicationForm: ApplicationForm{
			BudgetRequirements: true,
			ProjectTimeline:    true,
			ImpactMeasurement:  true,
		},
		ReviewPublish: ReviewPublish{
			NotificationSettings: NotificationSettings{
				EmailApplicants: true,
				EmailCommittee:  true,
			},
		},
	}
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	d.RequiredDocuments = slices.Clone(d.RequiredDocuments)
	d.CustomQuestions = slices.Clone(d.CustomQuestions)
	d.ReviewCommittee = slices.Clone(d.ReviewCommittee)
	d.ScoringCriteria = slices.Clone(d.ScoringCriteria)
	return d
}

// AddQuestion appends q to the custom questions.
func (d Draft) AddQuestion(q Question) Draft {
	out := d.Clone()
	if q.Type == "" {
		q.Type = AnswerText
	}
	out.CustomQuestions = append(out.CustomQuestions, q)
	return out
}

// RemoveQuestion removes the custom question at position i.
func (d Draft) RemoveQuestion(i int) (Draft, error) {
	qs, err := removeAt(d.CustomQuestions, i)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.CustomQuestions = qs
	return out, nil
}

// AddReviewer appends r to the review committee.
func (d Draft) AddReviewer(r Reviewer) Draft {
	out := d.Clone()
	if r.Role == "" {
		r.Role = RoleReviewer
	}
	out.ReviewCommittee = append(out.ReviewCommittee, r)
	return out
}

// RemoveReviewer removes the committee member at position i.
func (d Draft) RemoveReviewer(i int) (Draft, error) {
	rs, err := removeAt(d.ReviewCommittee, i)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.ReviewCommittee = rs
	return out, nil
}

// AddScoringCriterion appends a scoring criterion.
func (d Draft) AddScoringCriterion(c string) Draft {
	out := d.Clone()
	out.ScoringCriteria = append(out.ScoringCriteria, c)
	return out
}

// RemoveScoringCriterion removes the scoring criterion at position i.
func (d Draft) RemoveScoringCriterion(i int) (Draft, error) {
	cs, err := removeAt(d.ScoringCriteria, i)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.ScoringCriteria = cs
	return out, nil
}

// ToggleDocument adds doc to the required documents, or removes it if present.
func (d Draft) ToggleDocument(doc DocumentType) Draft {
	out := d.Clone()
	if i := slices.Index(out.RequiredDocuments, doc); i >= 0 {
		out.RequiredDocuments = slices.Delete(out.RequiredDocuments, i, i+1)
		return out
	}
	out.RequiredDocuments = append(out.RequiredDocuments, doc)
	return out
}

// removeAt returns a copy of items without the element at i.
func removeAt[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, &IndexError{Index: i, Len: len(items)}
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}
