// Package retry provides a bounded retry combinator with linear backoff.
package retry

import (
	"context"
	"time"
)

// Do runs fn up to attempts times, sleeping base*n after the n-th
// failure. It returns the last error once attempts are exhausted, or
// the context error if the context is cancelled while backing off.
func Do(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(base * time.Duration(attempt)):
		}
	}
	return err
}
