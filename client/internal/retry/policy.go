// Package retry runs one logical request as a sequence of attempts with a
// bounded, linearly growing backoff between them.
package retry

import (
	"errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// retryable is implemented by errors that know whether another attempt may succeed.
type retryable interface {
	Retryable() bool
}

// ShouldRetry decides whether the chain continues after a failed attempt.
// attemptsSoFar counts attempts already made, including the one that produced err.
func ShouldRetry(err error, attemptsSoFar, maxAttempts int) bool {
	if err == nil || attemptsSoFar >= maxAttempts {
		return false
	}
	var r retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}

// Linear is a backoff.BackOff that waits Delay, 2*Delay, 3*Delay, ...
type Linear struct {
	Delay time.Duration
	n     int
}

var _ backoff.BackOff = (*Linear)(nil)

// NewLinear returns a linear backoff starting at delay.
func NewLinear(delay time.Duration) *Linear {
	return &Linear{Delay: delay}
}

// NextBackOff returns the wait before the next retry.
func (l *Linear) NextBackOff() time.Duration {
	l.n++
	return l.Delay * time.Duration(l.n)
}

// Reset restarts the sequence.
func (l *Linear) Reset() { l.n = 0 }
