package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy bounds a retried operation: up to MaxAttempts calls, waiting
// Delay plus up to Jitter between failures.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Jitter      time.Duration
}

// Do runs op until it succeeds or the policy is exhausted, returning the
// last error. onFailure is invoked with the running count of failed
// attempts before each wait and after the final failure. The wait
// honors ctx, so callers can cancel mid-retry; the op itself receives
// ctx and is expected to do the same.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error, onFailure func(failed int)) error {
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if onFailure != nil {
			onFailure(attempt)
		}
		if attempt == p.MaxAttempts {
			break
		}

		wait := p.Delay
		if p.Jitter > 0 {
			wait += time.Duration(rand.Int63n(int64(p.Jitter)))
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
