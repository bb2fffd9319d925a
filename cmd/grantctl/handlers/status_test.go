package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHealthy(t *testing.T) {
	ctx, _ := testEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"healthy","database":"connected","version":"1.4.0"}`))
		case "/status":
			_, _ = w.Write([]byte(`{"api_version":"v1","status":"operational"}`))
		case "/users/me":
			w.WriteHeader(http.StatusUnauthorized)
		}
	})

	var err error
	out := captureOutput(func() { err = Status(ctx, false) })
	require.NoError(t, err)
	assert.Contains(t, out, "[OK]  Health       healthy")
	assert.Contains(t, out, "[OK]  API version  v1")
	assert.Contains(t, out, "[!!]  Signed in    run 'grantctl login'")
	assert.NotContains(t, out, "user:", "unauthenticated is not reported as an error")
}

func TestStatusUnhealthy(t *testing.T) {
	ctx, _ := testEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database down"}`))
		case "/status":
			w.WriteHeader(http.StatusBadGateway)
		case "/users/me":
			_, _ = w.Write([]byte(`{"user":{"email":"ana@council.gov.au","role":"council_admin"}}`))
		}
	})

	var err error
	out := captureOutput(func() { err = Status(ctx, true) })
	require.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, out, `"status": "unhealthy"`)
	assert.Contains(t, out, `"email": "ana@council.gov.au"`)
	assert.Contains(t, out, "status: api status")
}

func TestPrintRow(t *testing.T) {
	out := captureOutput(func() { printRow("Health", true, "") })
	assert.Equal(t, "  [OK]  Health\n", out)

	out = captureOutput(func() { printRow("Database", false, "disconnected") })
	assert.Contains(t, out, "[!!]")
	assert.Contains(t, out, "disconnected")
}
