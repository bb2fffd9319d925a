package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/grantthrive/grantctl/internal/grant"
)

var validate = newValidator()

// messages holds the user-facing text per field and failed tag.
var messages = map[string]string{
	"title.required":                  "Grant title is required",
	"category.required":               "Category is required",
	"category.grant_category":         "Select a category from the list",
	"description.required":            "Description is required",
	"eligibilityCriteria.required":    "Eligibility criteria is required",
	"totalFunding.required":           "Total funding is required",
	"totalFunding.gt":                 "Total funding must be greater than zero",
	"applicationOpenDate.required":    "Open date is required",
	"applicationCloseDate.required":   "Close date is required",
	"applicationCloseDate.after_open": "Close date must be after the open date",
	"maxApplicationAmount.lte_total":  "Maximum application amount cannot exceed total funding",
	"minApplicationAmount.lte_max":    "Minimum application amount cannot exceed the maximum",
	"fundingEndDate.after_start":      "Funding end date must be after the start date",
	"reviewCommittee.min":             "At least one reviewer is required",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("grant_category", func(fl validator.FieldLevel) bool {
		return grant.Category(fl.Field().String()).Known()
	}); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(fundingRules, grant.FundingDates{})
	return v
}

// fundingRules checks the relations between step 2 fields. Unset values are
// left to the field rules.
func fundingRules(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(grant.FundingDates)
	if !ok {
		return
	}

	if !f.ApplicationOpenDate.IsZero() && !f.ApplicationCloseDate.IsZero() &&
		!f.ApplicationCloseDate.After(f.ApplicationOpenDate) {
		sl.ReportError(f.ApplicationCloseDate, grant.FieldApplicationCloseDate, "ApplicationCloseDate", "after_open", "")
	}
	if f.TotalFunding > 0 && f.MaxApplicationAmount > f.TotalFunding {
		sl.ReportError(f.MaxApplicationAmount, grant.FieldMaxApplicationAmount, "MaxApplicationAmount", "lte_total", "")
	}
	if f.MaxApplicationAmount > 0 && f.MinApplicationAmount > f.MaxApplicationAmount {
		sl.ReportError(f.MinApplicationAmount, grant.FieldMinApplicationAmount, "MinApplicationAmount", "lte_max", "")
	}
	if !f.FundingStartDate.IsZero() && !f.FundingEndDate.IsZero() &&
		!f.FundingEndDate.After(f.FundingStartDate) {
		sl.ReportError(f.FundingEndDate, grant.FieldFundingEndDate, "FundingEndDate", "after_start", "")
	}
}

// ValidateStep runs the rules of step against d. Steps outside the bounds
// are clamped. It never mutates d.
func ValidateStep(d grant.Draft, step Step) Errors {
	errs := Errors{}

	err := validate.Struct(step.Section(d))
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fe.Tag())
	}
	return errs
}

// ValidateAll validates every step and returns the failures keyed by step.
func ValidateAll(d grant.Draft) map[Step]Errors {
	out := make(map[Step]Errors)
	for _, s := range Steps {
		if errs := ValidateStep(d, s); !errs.Empty() {
			out[s] = errs
		}
	}
	return out
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s cannot be negative", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
