package grant

import (
	"fmt"
	"slices"
	"time"
)

// Field names accepted by Draft.Set. They match the JSON field names.
const (
	FieldTitle                = "title"
	FieldCategory             = "category"
	FieldDescription          = "description"
	FieldEligibilityCriteria  = "eligibilityCriteria"
	FieldRequiredDocuments    = "requiredDocuments"
	FieldTotalFunding         = "totalFunding"
	FieldMaxApplicationAmount = "maxApplicationAmount"
	FieldMinApplicationAmount = "minApplicationAmount"
	FieldApplicationOpenDate  = "applicationOpenDate"
	FieldApplicationCloseDate = "applicationCloseDate"
	FieldAssessmentPeriod     = "assessmentPeriod"
	FieldFundingStartDate     = "fundingStartDate"
	FieldFundingEndDate       = "fundingEndDate"
	FieldCustomQuestions      = "customQuestions"
	FieldBudgetRequirements   = "budgetRequirements"
	FieldProjectTimeline      = "projectTimeline"
	FieldImpactMeasurement    = "impactMeasurement"
	FieldPartnershipDetails   = "partnershipDetails"
	FieldReviewCommittee      = "reviewCommittee"
	FieldScoringCriteria      = "scoringCriteria"
	FieldAutoPublish          = "autoPublish"
	FieldNotificationSettings = "notificationSettings"
)

// Set returns a copy of d with the named field replaced by value.
// The value must match the field's declared shape; numeric fields also accept
// int values and date fields accept time.Time.
func (d Draft) Set(field string, value any) (Draft, error) {
	out := d.Clone()
	var err error

	switch field {
	case FieldTitle:
		err = assign(&out.Title, value)
	case FieldCategory:
		out.Category, err = asCategory(value)
	case FieldDescription:
		err = assign(&out.Description, value)
	case FieldEligibilityCriteria:
		err = assign(&out.EligibilityCriteria, value)
	case FieldRequiredDocuments:
		err = assign(&out.RequiredDocuments, value)
		out.RequiredDocuments = slices.Clone(out.RequiredDocuments)
	case FieldTotalFunding:
		out.TotalFunding, err = asAmount(value)
	case FieldMaxApplicationAmount:
		out.MaxApplicationAmount, err = asAmount(value)
	case FieldMinApplicationAmount:
		out.MinApplicationAmount, err = asAmount(value)
	case FieldApplicationOpenDate:
		out.ApplicationOpenDate, err = asDate(value)
	case FieldApplicationCloseDate:
		out.ApplicationCloseDate, err = asDate(value)
	case FieldAssessmentPeriod:
		err = assign(&out.AssessmentPeriod, value)
	case FieldFundingStartDate:
		out.FundingStartDate, err = asDate(value)
	case FieldFundingEndDate:
		out.FundingEndDate, err = asDate(value)
	case FieldCustomQuestions:
		err = assign(&out.CustomQuestions, value)
		out.CustomQuestions = slices.Clone(out.CustomQuestions)
	case FieldBudgetRequirements:
		err = assign(&out.BudgetRequirements, value)
	case FieldProjectTimeline:
		err = assign(&out.ProjectTimeline, value)
	case FieldImpactMeasurement:
		err = assign(&out.ImpactMeasurement, value)
	case FieldPartnershipDetails:
		err = assign(&out.PartnershipDetails, value)
	case FieldReviewCommittee:
		err = assign(&out.ReviewCommittee, value)
		out.ReviewCommittee = slices.Clone(out.ReviewCommittee)
	case FieldScoringCriteria:
		err = assign(&out.ScoringCriteria, value)
		out.ScoringCriteria = slices.Clone(out.ScoringCriteria)
	case FieldAutoPublish:
		err = assign(&out.AutoPublish, value)
	case FieldNotificationSettings:
		err = assign(&out.NotificationSettings, value)
	default:
		return d, &FieldError{Field: field, Err: ErrUnknownField}
	}

	if err != nil {
		return d, &FieldError{Field: field, Err: err}
	}
	return out, nil
}

// assign stores value in dst when it has exactly the type of *dst.
func assign[T any](dst *T, value any) error {
	v, ok := value.(T)
	if !ok {
		return fmt.Errorf("%w: got %T, want %T", ErrFieldType, value, *dst)
	}
	*dst = v
	return nil
}

func asCategory(value any) (Category, error) {
	switch v := value.(type) {
	case Category:
		return v, nil
	case string:
		return Category(v), nil
	default:
		return "", fmt.Errorf("%w: got %T, want Category", ErrFieldType, value)
	}
}

func asAmount(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: got %T, want float64", ErrFieldType, value)
	}
}

func asDate(value any) (Date, error) {
	switch v := value.(type) {
	case Date:
		return v, nil
	case time.Time:
		return DateOf(v), nil
	default:
		return Date{}, fmt.Errorf("%w: got %T, want Date", ErrFieldType, value)
	}
}
