package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithExponentialBackoff_Success(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	var retried []int

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("502 bad gateway")
		}
		return nil
	},
		WithInitialDelay(time.Millisecond),
		WithOnRetry(func(attempt int, _ error) { retried = append(retried, attempt) }),
	)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestWithExponentialBackoff_MaxRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	cause := errors.New("persistent error")

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return cause
	}, WithMaxRetries(2), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestWithExponentialBackoff_ZeroRetries(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return errors.New("boom")
	}, WithMaxRetries(0))

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_Fatal(t *testing.T) {
	t.Parallel()
	attempts := 0
	cause := errors.New("401")

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return Fatal(cause)
	}, WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, cause)
}

func TestWithExponentialBackoff_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		cancel()
		return errors.New("timeout")
	}, WithInitialDelay(time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_MaxDelay(t *testing.T) {
	t.Parallel()
	var stamps []time.Time

	err := WithExponentialBackoff(context.Background(), func() error {
		stamps = append(stamps, time.Now())
		return errors.New("again")
	},
		WithMaxRetries(3),
		WithInitialDelay(5*time.Millisecond),
		WithMultiplier(10),
		WithMaxDelay(10*time.Millisecond),
	)

	require.Error(t, err)
	require.Len(t, stamps, 4)
	assert.Less(t, stamps[3].Sub(stamps[2]), 500*time.Millisecond)
}

func TestFatal(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Fatal(nil))
	assert.False(t, IsFatal(errors.New("plain")))

	err := Fatal(errors.New("bad request"))
	assert.Equal(t, "bad request", err.Error())
	assert.True(t, IsFatal(err))
}
