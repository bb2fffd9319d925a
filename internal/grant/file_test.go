package grant

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDraft = `version: grantctl/v1
title: Community Garden Grants
category: Community Development
description: Seed funding for community gardens.
eligibility_criteria: Incorporated not-for-profits in the council area.
required_documents:
  - Project Budget
  - Insurance Certificate
total_funding: 50000
max_application_amount: 5000
application_open_date: 2026-03-01
application_close_date: "2026-04-15"
custom_questions:
  - question: How many residents will use the garden?
    type: number
    required: true
review_committee:
  - name: Ana Lee
    email: ana@council.gov.au
    role: lead
auto_publish: true
`

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(sampleDraft))
	require.NoError(t, err)

	assert.Equal(t, "Community Garden Grants", d.Title)
	assert.Equal(t, CategoryCommunityDevelopment, d.Category)
	assert.Equal(t, []DocumentType{DocProjectBudget, DocInsuranceCertificate}, d.RequiredDocuments)
	assert.InDelta(t, 50000.0, d.TotalFunding, 0.001)
	assert.Equal(t, NewDate(2026, time.March, 1), d.ApplicationOpenDate)
	assert.Equal(t, NewDate(2026, time.April, 15), d.ApplicationCloseDate)
	require.Len(t, d.CustomQuestions, 1)
	assert.Equal(t, AnswerNumber, d.CustomQuestions[0].Type)
	require.Len(t, d.ReviewCommittee, 1)
	assert.Equal(t, RoleLead, d.ReviewCommittee[0].Role)
	assert.True(t, d.AutoPublish)

	// Defaults survive for fields absent from the file.
	assert.True(t, d.BudgetRequirements)
	assert.True(t, d.NotificationSettings.EmailApplicants)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "   \n", errEmptyDraftFile},
		{"bad version", "version: other/v9\ntitle: x\n", errDraftFileVersion},
		{"bad category", "category: Space Travel\n", ErrUnknownCategory},
		{"bad document", "required_documents: [Passport]\n", ErrUnknownDocument},
		{"bad answer type", "custom_questions:\n  - question: q\n    type: video\n", ErrUnknownAnswer},
		{"bad role", "review_committee:\n  - name: a\n    role: boss\n", ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("application_open_date: 01/03/2026\n"))
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(sampleDraft))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, WriteFile(d, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# grantctl draft")
	assert.Contains(t, string(raw), "application_open_date: \"2026-03-01\"")
	assert.NotContains(t, string(raw), "funding_start_date")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-05-04"`), &d))
	assert.Equal(t, "2026-05-04", d.String())

	require.NoError(t, json.Unmarshal([]byte(`"2026-05-04T10:00:00Z"`), &d))
	assert.Equal(t, "2026-05-04", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`12`), &d))
	assert.True(t, NewDate(2026, 1, 1).Before(NewDate(2026, 1, 2)))
}
