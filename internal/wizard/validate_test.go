package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grantthrive/grantctl/internal/grant"
	testutil "github.com/grantthrive/grantctl/internal/testing"
)

func TestValidateStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		step   Step
		modify func(d *grant.Draft)
		want   Errors
	}{
		{
			name: "complete draft passes step 1",
			step: StepBasicDetails,
			want: Errors{},
		},
		{
			name:   "unknown category",
			step:   StepBasicDetails,
			modify: func(d *grant.Draft) { d.Category = "Space Travel" },
			want:   Errors{"category": "Select a category from the list"},
		},
		{
			name: "close date before open date",
			step: StepFundingDates,
			modify: func(d *grant.Draft) {
				d.ApplicationCloseDate = grant.NewDate(2026, time.February, 1)
			},
			want: Errors{"applicationCloseDate": "Close date must be after the open date"},
		},
		{
			name:   "close date equal to open date",
			step:   StepFundingDates,
			modify: func(d *grant.Draft) { d.ApplicationCloseDate = d.ApplicationOpenDate },
			want:   Errors{"applicationCloseDate": "Close date must be after the open date"},
		},
		{
			name:   "max above total",
			step:   StepFundingDates,
			modify: func(d *grant.Draft) { d.MaxApplicationAmount = 60000 },
			want:   Errors{"maxApplicationAmount": "Maximum application amount cannot exceed total funding"},
		},
		{
			name:   "min above max",
			step:   StepFundingDates,
			modify: func(d *grant.Draft) { d.MinApplicationAmount = 6000 },
			want:   Errors{"minApplicationAmount": "Minimum application amount cannot exceed the maximum"},
		},
		{
			name:   "negative total",
			step:   StepFundingDates,
			modify: func(d *grant.Draft) { d.TotalFunding = -5 },
			want:   Errors{"totalFunding": "Total funding must be greater than zero"},
		},
		{
			name:   "negative assessment period",
			step:   StepFundingDates,
			modify: func(d *grant.Draft) { d.AssessmentPeriod = -1 },
			want:   Errors{"assessmentPeriod": "assessmentPeriod cannot be negative"},
		},
		{
			name: "funding end before start",
			step: StepFundingDates,
			modify: func(d *grant.Draft) {
				d.FundingStartDate = grant.NewDate(2026, time.July, 1)
				d.FundingEndDate = grant.NewDate(2026, time.June, 1)
			},
			want: Errors{"fundingEndDate": "Funding end date must be after the start date"},
		},
		{
			name: "funding end equal to start",
			step: StepFundingDates,
			modify: func(d *grant.Draft) {
				d.FundingStartDate = grant.NewDate(2026, time.July, 1)
				d.FundingEndDate = grant.NewDate(2026, time.July, 1)
			},
			want: Errors{"fundingEndDate": "Funding end date must be after the start date"},
		},
		{
			name: "step 3 has no rules",
			step: StepApplicationForm,
			modify: func(d *grant.Draft) {
				*d = grant.Draft{}
			},
			want: Errors{},
		},
		{
			name:   "no reviewers",
			step:   StepReviewPublish,
			modify: func(d *grant.Draft) { d.ReviewCommittee = []grant.Reviewer{} },
			want:   Errors{"reviewCommittee": "At least one reviewer is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := testutil.ReadyDraft()
			if tt.modify != nil {
				tt.modify(&d)
			}
			assert.Equal(t, tt.want, ValidateStep(d, tt.step))
		})
	}
}

func TestValidateStepDoesNotMutate(t *testing.T) {
	t.Parallel()

	d := grant.NewDraft()
	before := d.Clone()
	_ = ValidateStep(d, StepBasicDetails)
	_ = ValidateStep(d, StepReviewPublish)
	assert.Equal(t, before, d)
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateAll(testutil.ReadyDraft()))

	failures := ValidateAll(grant.NewDraft())
	assert.Contains(t, failures, StepBasicDetails)
	assert.Contains(t, failures, StepFundingDates)
	assert.NotContains(t, failures, StepApplicationForm)
	assert.Contains(t, failures, StepReviewPublish)
}

func TestStepMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Funding & Dates", StepFundingDates.Title())
	assert.Equal(t, 25, StepBasicDetails.Completion())
	assert.Equal(t, 100, StepReviewPublish.Completion())
	assert.Equal(t, 4, StepBasicDetails.RemainingMinutes())
	assert.Len(t, StepApplicationForm.Tips(), 4)
	assert.False(t, Step(0).Valid())
	assert.IsType(t, grant.ReviewPublish{}, StepReviewPublish.Section(testutil.ReadyDraft()))
}
