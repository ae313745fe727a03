package retry

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// State is a step of an attempt chain.
type State int

const (
	Attempting State = iota
	Backoff
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Attempting:
		return "Attempting"
	case Backoff:
		return "Backoff"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition describes one state change. Wait is set when leaving Backoff.
type Transition struct {
	From    State
	To      State
	Attempt int
	Wait    time.Duration
	Err     error
}

// Operation performs attempt number attempt (1-based).
type Operation func(ctx context.Context, attempt int) error

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Machine drives an Operation through Attempting, Backoff, Succeeded and
// Failed. Attempts never overlap: the next one starts only after the previous
// outcome is known and the backoff has elapsed.
type Machine struct {
	MaxAttempts  int
	BackOff      backoff.BackOff
	Sleep        Sleeper
	OnTransition func(Transition)
}

// Run executes op until it succeeds, fails with a non-retryable error, runs out
// of attempts, or ctx is done. It returns the number of attempts made and the
// last error (nil on success).
func (m *Machine) Run(ctx context.Context, op Operation) (int, error) {
	maxAttempts := m.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	bo := m.BackOff
	if bo == nil {
		bo = &backoff.ZeroBackOff{}
	}
	bo.Reset()
	sleep := m.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	state := Attempting
	attempt := 0
	var lastErr error

	for {
		switch state {
		case Attempting:
			attempt++
			lastErr = op(ctx, attempt)
			next := Failed
			switch {
			case lastErr == nil:
				next = Succeeded
			case ctx.Err() == nil && ShouldRetry(lastErr, attempt, maxAttempts):
				next = Backoff
			}
			m.emit(Transition{From: state, To: next, Attempt: attempt, Err: lastErr})
			state = next

		case Backoff:
			wait := bo.NextBackOff()
			if wait == backoff.Stop {
				m.emit(Transition{From: state, To: Failed, Attempt: attempt, Err: lastErr})
				state = Failed
				continue
			}
			if err := sleep(ctx, wait); err != nil {
				m.emit(Transition{From: state, To: Failed, Attempt: attempt, Wait: wait, Err: lastErr})
				state = Failed
				continue
			}
			m.emit(Transition{From: state, To: Attempting, Attempt: attempt, Wait: wait})
			state = Attempting

		case Succeeded:
			return attempt, nil

		default:
			return attempt, lastErr
		}
	}
}

func (m *Machine) emit(t Transition) {
	if m.OnTransition != nil {
		m.OnTransition(t)
	}
}

// SleepContext waits for d unless ctx is done first.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
