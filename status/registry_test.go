package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	r.Inc(Taps)
	r.Inc(Taps)
	r.Inc(Mints)

	assert.Equal(t, int64(2), r.Value(Taps))
	assert.Equal(t, int64(1), r.Value(Mints))
	assert.Equal(t, int64(0), r.Value(Saves))
}

// TestRegistryNilSafe verifies components can run without a registry
func TestRegistryNilSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.Inc(Ticks)
		_ = r.Value(Ticks)
		_ = r.Lines()
	})
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Inc(Ticks)
	r.Inc(Taps)
	r.Gauges.Get(LastElapsed).Set(1.5)

	lines := r.Lines()
	assert.Equal(t, []string{"engine.taps=1", "engine.ticks=1", "engine.last_elapsed_s=1.500"}, lines)
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Inc(Taps)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(5000), r.Value(Taps))
	assert.Equal(t, 1, r.Ints.Count())
}
