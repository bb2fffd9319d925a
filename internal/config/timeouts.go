package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the configurable time limits of API calls.
type Timeouts struct {
	Submit            time.Duration `validate:"gt=0"`  // Limit for one save or publish call
	Request           time.Duration `validate:"gt=0"`  // Limit for every other API request
	RetryMaxAttempts  int           `validate:"gte=0"` // Retries after the first GET attempt
	RetryInitialDelay time.Duration `validate:"gte=0"` // Delay before the first GET retry
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - GRANTCTL_TIMEOUT_SUBMIT (default: 30s)
//   - GRANTCTL_TIMEOUT_REQUEST (default: 15s)
//   - GRANTCTL_RETRY_MAX_ATTEMPTS (default: 3)
//   - GRANTCTL_RETRY_INITIAL_DELAY (default: 500ms)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Submit:            parseDuration("GRANTCTL_TIMEOUT_SUBMIT", 30*time.Second),
		Request:           parseDuration("GRANTCTL_TIMEOUT_REQUEST", 15*time.Second),
		RetryMaxAttempts:  parseInt("GRANTCTL_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: parseDuration("GRANTCTL_RETRY_INITIAL_DELAY", 500*time.Millisecond),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}
	return d
}

// parseInt parses a non-negative integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i < 0 {
		return defaultVal
	}
	return i
}
