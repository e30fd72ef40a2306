// Package status keeps in-process counters for the debug overlay.
package status

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Counter names written by the engine and persistence layer
const (
	Ticks          = "engine.ticks"
	Taps           = "engine.taps"
	TapsRejected   = "engine.taps_rejected"
	MotesSpawned   = "motes.spawned"
	MotesCollected = "motes.collected"
	MotesExpired   = "motes.expired"
	Upgrades       = "economy.upgrades"
	Mints          = "economy.mints"
	Payments       = "economy.payments"
	TaskClaims     = "economy.task_claims"
	Saves          = "persist.saves"
	SaveFailures   = "persist.failures"
	SoundsPlayed   = "audio.played"

	LastElapsed = "engine.last_elapsed_s"
)

// Gauge is a float64 updated atomically through its bit pattern
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Registry holds all counters and gauges
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
	}
}

// Inc increments a named counter
func (r *Registry) Inc(name string) {
	if r == nil {
		return
	}
	r.Ints.Get(name).Add(1)
}

// Value reads a named counter
func (r *Registry) Value(name string) int64 {
	if r == nil {
		return 0
	}
	return r.Ints.Get(name).Load()
}

// Lines renders every metric as "name=value", sorted, counters first
func (r *Registry) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, r.Ints.Count()+r.Gauges.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Gauges.Range(func(k string, v *Gauge) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	return lines
}
