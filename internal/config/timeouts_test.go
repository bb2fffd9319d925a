package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearTimeoutEnvVars(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		"GRANTCTL_TIMEOUT_SUBMIT",
		"GRANTCTL_TIMEOUT_REQUEST",
		"GRANTCTL_RETRY_MAX_ATTEMPTS",
		"GRANTCTL_RETRY_INITIAL_DELAY",
	} {
		t.Setenv(env, "")
	}
}

func TestLoadTimeouts_Defaults(t *testing.T) {
	clearTimeoutEnvVars(t)

	timeouts := LoadTimeouts()

	assert.Equal(t, 30*time.Second, timeouts.Submit)
	assert.Equal(t, 15*time.Second, timeouts.Request)
	assert.Equal(t, 3, timeouts.RetryMaxAttempts)
	assert.Equal(t, 500*time.Millisecond, timeouts.RetryInitialDelay)
}

func TestLoadTimeouts_CustomValues(t *testing.T) {
	clearTimeoutEnvVars(t)
	t.Setenv("GRANTCTL_TIMEOUT_SUBMIT", "1m")
	t.Setenv("GRANTCTL_TIMEOUT_REQUEST", "2s")
	t.Setenv("GRANTCTL_RETRY_MAX_ATTEMPTS", "0")
	t.Setenv("GRANTCTL_RETRY_INITIAL_DELAY", "1s")

	timeouts := LoadTimeouts()

	assert.Equal(t, time.Minute, timeouts.Submit)
	assert.Equal(t, 2*time.Second, timeouts.Request)
	assert.Equal(t, 0, timeouts.RetryMaxAttempts)
	assert.Equal(t, time.Second, timeouts.RetryInitialDelay)
}

func TestLoadTimeouts_InvalidValues(t *testing.T) {
	clearTimeoutEnvVars(t)
	t.Setenv("GRANTCTL_TIMEOUT_SUBMIT", "soon")
	t.Setenv("GRANTCTL_TIMEOUT_REQUEST", "-3s")
	t.Setenv("GRANTCTL_RETRY_MAX_ATTEMPTS", "many")

	timeouts := LoadTimeouts()

	assert.Equal(t, 30*time.Second, timeouts.Submit)
	assert.Equal(t, 15*time.Second, timeouts.Request)
	assert.Equal(t, 3, timeouts.RetryMaxAttempts)
}
