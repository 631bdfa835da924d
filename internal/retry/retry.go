// Package retry provides a bounded retry combinator for transient HTTP failures.
package retry

import (
	"context"
	"errors"
	"net"
	"time"
)

// DefaultMaxAttempts is the total number of attempts (initial call plus retries).
const DefaultMaxAttempts = 3

// HTTPStatusError carries an HTTP status for retryability decisions.
type HTTPStatusError struct {
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	return e.Message
}

// Policy controls how an operation is retried.
type Policy struct {
	// MaxAttempts is the total attempt count. Zero means DefaultMaxAttempts.
	MaxAttempts int
	// Retryable reports whether a failed attempt should be retried.
	// Nil means DefaultRetryable.
	Retryable func(error) bool
	// Delay returns the wait before retry number attempt (0-based).
	// Nil means DefaultDelay.
	Delay func(attempt int) time.Duration
	// Sleep suspends between attempts. Nil means a context-aware wait.
	// Tests inject a recorder here.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryable retries on HTTP 429, HTTP 5xx, and transport-level failures.
// All other HTTP errors are terminal.
func DefaultRetryable(err error) bool {
	if err == nil {
		return false
	}
	var se *HTTPStatusError
	if errors.As(err, &se) {
		return se.StatusCode == 429 || se.StatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

// DefaultDelay is exponential backoff: 1s, 2s, 4s, ...
func DefaultDelay(attempt int) time.Duration {
	return time.Second * (1 << attempt)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs fn until it succeeds, exhausts the attempt limit, or fails with a
// non-retryable error. The returned error is the last attempt's error.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = DefaultRetryable
	}
	delay := p.Delay
	if delay == nil {
		delay = DefaultDelay
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) || attempt == maxAttempts-1 {
			return zero, lastErr
		}
		if err := sleep(ctx, delay(attempt)); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}
