package store

import (
	"context"
	"errors"
	"time"
)

// Connection attempts made by the network backends before giving up.
const (
	connectAttempts = 3
	connectDelay    = 250 * time.Millisecond
)

// transientError marks a failure worth retrying, such as a refused
// connection while a database container is still starting.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// retry calls fn up to attempts times, doubling delay after each failure.
// Only errors wrapped in transientError are retried; the last error is
// returned unwrapped.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		var t *transientError
		if !errors.As(err, &t) {
			return err
		}
		lastErr = t.err

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
