package engine

import "time"

// TimeProvider supplies wall-clock time and one-shot timers
// Injected so tests can drive accrual and simulated delays deterministically
type TimeProvider interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a system time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// After waits for the duration to elapse and then sends the current time
func (p *MonotonicTimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
