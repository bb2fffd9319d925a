package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantthrive/grantctl/internal/grant"
)

func TestDraftBuilderIsImmutable(t *testing.T) {
	base := NewDraftBuilder()
	renamed := base.WithTitle("Youth Arts Fund").WithReviewer("Ben Ng", "ben@council.gov.au")

	assert.Equal(t, "Community Garden Grants", base.Build().Title)
	assert.Len(t, base.Build().ReviewCommittee, 1)
	assert.Equal(t, "Youth Arts Fund", renamed.Build().Title)
	assert.Len(t, renamed.Build().ReviewCommittee, 2)
}

func TestDraftBuilderOptions(t *testing.T) {
	open := grant.NewDate(2026, time.June, 1)
	closes := grant.NewDate(2026, time.July, 1)

	d := NewDraftBuilder().
		WithCategory(grant.CategoryArtsCulture).
		WithFunding(20000, 2500).
		WithDates(open, closes).
		WithQuestion("Describe your project", true).
		WithoutReviewers().
		WithAutoPublish(true).
		Build()

	assert.Equal(t, grant.CategoryArtsCulture, d.Category)
	assert.InDelta(t, 20000, d.TotalFunding, 0.001)
	assert.InDelta(t, 2500, d.MaxApplicationAmount, 0.001)
	assert.Equal(t, open, d.ApplicationOpenDate)
	assert.Equal(t, closes, d.ApplicationCloseDate)
	require.Len(t, d.CustomQuestions, 1)
	assert.True(t, d.CustomQuestions[0].Required)
	assert.Empty(t, d.ReviewCommittee)
	assert.True(t, d.AutoPublish)
}

func TestWriteDraftFile(t *testing.T) {
	path := WriteDraftFile(t, ReadyDraft())

	d, err := grant.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ReadyDraft().Title, d.Title)
}
