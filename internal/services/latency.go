package services

import (
	"context"
	"time"
)

// wait sleeps for the configured artificial delay before a storage operation,
// imitating a remote API. A zero or negative delay returns immediately.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
