package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Timers created with After fire only when Advance or SetTime reaches their deadline
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []mockTimer
}

type mockTimer struct {
	deadline time.Time
	ch       chan time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// After returns a channel that receives once mocked time passes now+d
func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan time.Time, 1)
	deadline := m.currentTime.Add(d)
	if d <= 0 {
		ch <- m.currentTime
		return ch
	}
	m.timers = append(m.timers, mockTimer{deadline: deadline, ch: ch})
	return ch
}

// SetTime sets the current time for the mock and fires due timers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
	m.fireLocked()
}

// Advance advances the current time by the given duration and fires due timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.fireLocked()
}

// PendingTimers returns the number of timers not yet fired
func (m *MockTimeProvider) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *MockTimeProvider) fireLocked() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !m.currentTime.Before(t.deadline) {
			t.ch <- m.currentTime
			continue
		}
		kept = append(kept, t)
	}
	m.timers = kept
}
