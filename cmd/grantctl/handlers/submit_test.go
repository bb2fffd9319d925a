package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/grantthrive/grantctl/internal/testing"
	"github.com/grantthrive/grantctl/internal/wizard"
)

func TestSubmitSaveDraft(t *testing.T) {
	stubInteractive(t, false)

	var body map[string]any
	ctx, _ := testEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/grants", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":5,"status":"draft"}}`))
	})

	path := testutil.WriteDraftFile(t, testutil.ReadyDraft())
	var err error
	out := captureOutput(func() {
		err = Submit(ctx, SubmitOptions{DraftPath: path})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Draft saved successfully!")
	assert.Contains(t, out, "Grant ID: 5")
	assert.Equal(t, "draft", body["status"])
}

func TestSubmitOutlastsRequestTimeout(t *testing.T) {
	stubInteractive(t, false)

	ctx, cfg := testEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(400 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":8,"status":"draft"}}`))
	})
	cfg.Timeouts.Request = 100 * time.Millisecond
	cfg.Timeouts.Submit = 5 * time.Second

	path := testutil.WriteDraftFile(t, testutil.ReadyDraft())
	var err error
	out := captureOutput(func() {
		err = Submit(ctx, SubmitOptions{DraftPath: path})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Draft saved successfully!")
	assert.Contains(t, out, "Grant ID: 8")
}

func TestSubmitHonoursSubmitTimeout(t *testing.T) {
	stubInteractive(t, false)

	ctx, cfg := testEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(400 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":8,"status":"draft"}}`))
	})
	cfg.Timeouts.Submit = 100 * time.Millisecond

	path := testutil.WriteDraftFile(t, testutil.ReadyDraft())
	var err error
	_ = captureOutput(func() {
		err = Submit(ctx, SubmitOptions{DraftPath: path})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitPublishAutoPublishOverride(t *testing.T) {
	stubInteractive(t, false)

	var body map[string]any
	ctx, _ := testEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"grant":{"id":"g-9","status":"published"}}`))
	})

	path := testutil.WriteDraftFile(t, testutil.ReadyDraft())
	auto := true
	var err error
	out := captureOutput(func() {
		err = Submit(ctx, SubmitOptions{DraftPath: path, Publish: true, AutoPublish: &auto})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Grant published successfully!")
	assert.Equal(t, "published", body["status"])
	assert.Equal(t, true, body["autoPublish"])
}

func TestSubmitPublishInvalidDraft(t *testing.T) {
	stubInteractive(t, false)

	var calls atomic.Int32
	ctx, _ := testEnv(t, func(http.ResponseWriter, *http.Request) { calls.Add(1) })

	d := testutil.ReadyDraft()
	d.ReviewCommittee = nil
	path := testutil.WriteDraftFile(t, d)

	var err error
	out := captureOutput(func() {
		err = Submit(ctx, SubmitOptions{DraftPath: path, Publish: true})
	})
	var verr *wizard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, out, "At least one reviewer is required")
	assert.Equal(t, int32(0), calls.Load())
}

func TestSubmitServerError(t *testing.T) {
	stubInteractive(t, false)

	ctx, _ := testEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database unavailable"}`))
	})

	path := testutil.WriteDraftFile(t, testutil.ReadyDraft())
	var err error
	out := captureOutput(func() {
		err = Submit(ctx, SubmitOptions{DraftPath: path})
	})
	var serr *wizard.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, err.Error(), "database unavailable")
	assert.Contains(t, out, "Failed to save draft. Please try again.")
}

func TestSubmitMissingFile(t *testing.T) {
	err := Submit(t.Context(), SubmitOptions{DraftPath: "does-not-exist.yaml"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	path := testutil.WriteDraftFile(t, testutil.ReadyDraft())
	var err error
	out := captureOutput(func() { err = Validate(path) })
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Step 4: Review & Publish")
	assert.Contains(t, out, "Draft is ready to publish.")

	d := testutil.ReadyDraft()
	d.Title = ""
	d.TotalFunding = 0
	path = testutil.WriteDraftFile(t, d)
	out = captureOutput(func() { err = Validate(path) })
	require.ErrorIs(t, err, ErrDraftInvalid)
	assert.Contains(t, err.Error(), "2 of 4 steps")
	assert.Contains(t, out, "[!!] Step 1: Basic Details")
	assert.Contains(t, out, "Grant title is required")
	assert.Contains(t, out, "Total funding is required")
}
