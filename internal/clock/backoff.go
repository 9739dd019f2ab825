package clock

import "time"

// Backoff doubles a delay per consecutive failure, bounded by Max.
// Without Max the delay stays at Min.
type Backoff struct {
	Min time.Duration
	Max time.Duration
}

// Delay returns the wait after the given number of consecutive failures.
// Zero failures yields Min.
func (b Backoff) Delay(failures int) time.Duration {
	d := b.Min
	for i := 0; i < failures && d < b.Max; i++ {
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}
