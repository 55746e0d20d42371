// Package retry re-runs operations that fail with transient errors, such as
// a task store that briefly drops connections.
package retry

import (
	"context"
	"errors"
	"time"
)

// TransientError marks an error as worth another attempt. Wrap network
// timeouts and lost connections with [Transient]; every other error stops
// [Policy.Do] at once.
type TransientError struct{ Err error }

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as a TransientError. A nil err stays nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err, or anything it wraps, is a TransientError.
func IsTransient(err error) bool {
	return errors.As(err, new(*TransientError))
}

// Policy bounds how often and how patiently an operation is retried.
type Policy struct {
	Attempts int           // total tries, at least 1
	Delay    time.Duration // wait before the second try; doubles afterwards
}

// DefaultPolicy makes 3 attempts starting with a 1 second delay.
var DefaultPolicy = Policy{Attempts: 3, Delay: time.Second}

// Do runs fn until it succeeds, returns a non-transient error, or the
// attempts run out. It returns the last error, or ctx.Err() when ctx ends
// while waiting.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsTransient(err) {
			return err
		}

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

// Do runs fn under [DefaultPolicy].
func Do(ctx context.Context, fn func() error) error {
	return DefaultPolicy.Do(ctx, fn)
}
