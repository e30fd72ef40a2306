package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	select {
	case <-provider.After(time.Millisecond):
	case <-time.After(time.Second):
		t.Fatal("After did not fire within a second")
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	if now, expected := mock.Now(), newTime.Add(time.Hour); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}
}

// TestMockTimerFiresOnDeadline verifies timers fire exactly when time reaches the deadline
func TestMockTimerFiresOnDeadline(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ch := mock.After(2 * time.Second)

	mock.Advance(1999 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("Timer fired before deadline")
	default:
	}
	if mock.PendingTimers() != 1 {
		t.Errorf("Expected 1 pending timer, got %d", mock.PendingTimers())
	}

	mock.Advance(time.Millisecond)
	select {
	case <-ch:
	default:
		t.Fatal("Timer did not fire at deadline")
	}
	if mock.PendingTimers() != 0 {
		t.Errorf("Expected no pending timers, got %d", mock.PendingTimers())
	}
}

func TestMockTimerZeroDuration(t *testing.T) {
	mock := NewMockTimeProvider(time.Now())
	select {
	case <-mock.After(0):
	default:
		t.Fatal("Zero-duration timer should fire immediately")
	}
}
