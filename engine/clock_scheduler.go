package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/abcedion/core"
)

// Ticker is driven by the scheduler once per interval
type Ticker interface {
	Tick()
}

// ClockScheduler drives the game tick on a fixed interval
// Deadlines advance by the interval so ticks do not drift; a scheduler that
// falls far behind resynchronizes instead of bursting
type ClockScheduler struct {
	target   Ticker
	time     TimeProvider
	interval time.Duration

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler for target with the given interval
func NewClockScheduler(target Ticker, tp TimeProvider, interval time.Duration) *ClockScheduler {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{
		target:   target,
		time:     tp,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks delivered
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	deadline := cs.time.Now().Add(cs.interval)
	for {
		wait := deadline.Sub(cs.time.Now())
		select {
		case <-cs.stopChan:
			return
		case <-cs.time.After(wait):
		}

		// Stop wins over a timer that fired at the same moment
		select {
		case <-cs.stopChan:
			return
		default:
		}

		cs.target.Tick()
		cs.tickCount.Add(1)

		now := cs.time.Now()
		deadline = deadline.Add(cs.interval)
		if now.Sub(deadline) > cs.interval*2 {
			deadline = now.Add(cs.interval)
		}
	}
}
