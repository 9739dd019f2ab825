// Package clock paces the scan loop: interval sleeps and failure back-off.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for one scan interval or back-off delay d and
// returns ctx.Err() as soon as the scanner is stopped. With d <= 0 it does
// not block.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
