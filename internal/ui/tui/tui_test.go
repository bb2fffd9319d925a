package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/wizard"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), "formatDuration(%v)", tt.d)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "", formatAmount(0))
	assert.Equal(t, "$500", formatAmount(500))
	assert.Equal(t, "$5,000", formatAmount(5000))
	assert.Equal(t, "$1,250,000", formatAmount(1250000))

	assert.Equal(t, "", formatRange(0, 0))
	assert.Equal(t, "up to $5,000", formatRange(0, 5000))
	assert.Equal(t, "from $100", formatRange(100, 0))
	assert.Equal(t, "$100 - $5,000", formatRange(100, 5000))
}

func TestProgressBar(t *testing.T) {
	bar := progressBar(50, 10)
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))

	assert.Equal(t, 10, strings.Count(progressBar(150, 10), "█"))
	assert.Equal(t, 10, strings.Count(progressBar(-5, 10), "░"))
}

func TestCurrentSpinner(t *testing.T) {
	assert.Equal(t, spinnerFrames[0], currentSpinner(0))
	assert.Equal(t, spinnerFrames[1], currentSpinner(len(spinnerFrames)+1))
	assert.Equal(t, spinnerFrames[3], currentSpinner(-3))
}

func TestRenderHeader(t *testing.T) {
	s := wizard.New()
	s.Step = wizard.StepFundingDates

	out := RenderHeader(s)
	assert.Contains(t, out, "Step 2 of 4: Funding & Dates")
	assert.Contains(t, out, "50% complete")
	assert.Contains(t, out, "about 3 min remaining")
	assert.Contains(t, out, checkMark+" Basic Details")

	s.Step = wizard.StepReviewPublish
	assert.Contains(t, RenderHeader(s), "about 1 min remaining")
}

func TestRenderErrors(t *testing.T) {
	assert.Empty(t, RenderErrors(nil))

	out := RenderErrors(wizard.Errors{
		"title":    "Grant title is required",
		"category": "Category is required",
	})
	assert.Contains(t, out, "Please fix the following")
	assert.Less(t, strings.Index(out, "Category is required"), strings.Index(out, "Grant title is required"))
}

func TestRenderNotice(t *testing.T) {
	assert.Empty(t, RenderNotice(wizard.Notice{}))
	assert.Contains(t, RenderNotice(wizard.Notice{Kind: wizard.NoticeSuccess, Message: "Draft saved successfully!"}), checkMark)
	assert.Contains(t, RenderNotice(wizard.Notice{Kind: wizard.NoticeError, Message: "Failed"}), crossMark)
}

func TestRenderTips(t *testing.T) {
	out := RenderTips(wizard.StepBasicDetails)
	for _, tip := range wizard.StepBasicDetails.Tips() {
		assert.Contains(t, out, tip)
	}
}

func TestRenderSummary(t *testing.T) {
	d := grant.NewDraft()
	d.Title = "Community Garden Grants"
	d.TotalFunding = 50000
	d.MaxApplicationAmount = 5000
	d.ApplicationOpenDate = grant.NewDate(2026, time.March, 1)
	d.AssessmentPeriod = 4

	out := RenderSummary(d)
	assert.Contains(t, out, "Community Garden Grants")
	assert.Contains(t, out, "$50,000")
	assert.Contains(t, out, "up to $5,000")
	assert.Contains(t, out, "2026-03-01")
	assert.Contains(t, out, "4 weeks")
	assert.Contains(t, out, "No reviewers assigned")
	assert.Contains(t, out, "Submit for review")

	d = d.AddReviewer(grant.NewReviewer("Ana Lee", "ana@council.gov.au"))
	d.AutoPublish = true
	out = RenderSummary(d)
	assert.Contains(t, out, "Ana Lee <ana@council.gov.au>")
	assert.Contains(t, out, "Publish immediately")
}

func TestRenderFooter(t *testing.T) {
	s := wizard.New()
	s.Saving = true
	out := RenderFooter(s)
	assert.Contains(t, out, s.SessionID.String()[:8])
	assert.Contains(t, out, "saving")
	assert.NotContains(t, out, "publishing")
}

func TestModelUpdate(t *testing.T) {
	m := NewSubmissionModel("Youth Arts", wizard.IntentPublish)
	assert.Contains(t, m.View(), "Publishing")
	assert.Contains(t, m.View(), "Youth Arts")

	next, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, next.(Model).SpinnerFrame)

	next, _ = next.Update(tea.WindowSizeMsg{Width: 120})
	assert.Equal(t, 120, next.(Model).Width)

	res := wizard.Result{Intent: wizard.IntentPublish, AutoPublish: true, Receipt: wizard.Receipt{Status: grant.StatusPublished}}
	next, cmd = next.Update(ResultMsg{Result: res})
	require.NotNil(t, cmd)
	fm := next.(Model)
	assert.True(t, fm.Done)
	assert.Contains(t, fm.View(), "Grant published successfully!")

	_, cmd = fm.Update(TickMsg{})
	assert.Nil(t, cmd, "no ticks after completion")
}

func TestModelQuit(t *testing.T) {
	m := NewSubmissionModel("", wizard.IntentDraft)
	assert.Contains(t, m.View(), "untitled grant")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.ErrorIs(t, next.(Model).Err, ErrInterrupted)
}

func TestRunSubmission(t *testing.T) {
	results := make(chan wizard.Result, 1)
	results <- wizard.Result{Intent: wizard.IntentDraft, Receipt: wizard.Receipt{ID: "7"}}
	close(results)

	var out bytes.Buffer
	res, err := RunSubmission(context.Background(), "Youth Arts", wizard.IntentDraft, results,
		tea.WithInput(nil), tea.WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, "7", res.Receipt.ID)
}

func TestRunSubmissionClosedChannel(t *testing.T) {
	results := make(chan wizard.Result)
	close(results)

	_, err := RunSubmission(context.Background(), "Youth Arts", wizard.IntentDraft, results,
		tea.WithInput(nil), tea.WithOutput(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a result")
}

func TestRunSubmissionFailure(t *testing.T) {
	results := make(chan wizard.Result, 1)
	results <- wizard.Result{Intent: wizard.IntentPublish, Err: errors.New("boom")}

	res, err := RunSubmission(context.Background(), "Youth Arts", wizard.IntentPublish, results,
		tea.WithInput(nil), tea.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err, "submission errors are carried in the result")
	assert.Equal(t, wizard.NoticeError, res.Notice().Kind)
}
