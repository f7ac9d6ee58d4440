package engine

import (
	"sort"
	"sync"
	"sync/atomic"
)

// StatsRegistry hands out named atomic counters. Systems publish what
// they did (kills, teleports, dropped commands); tests and the frontend
// read them without reaching into system internals.
type StatsRegistry struct {
	mu       sync.Mutex
	counters map[string]*atomic.Int64
}

func NewStatsRegistry() *StatsRegistry {
	return &StatsRegistry{
		counters: make(map[string]*atomic.Int64),
	}
}

// Counter returns the counter with the given name, creating it on
// first use. The returned pointer stays valid for the world's lifetime.
func (r *StatsRegistry) Counter(name string) *atomic.Int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counters[name]
	if !ok {
		c = &atomic.Int64{}
		r.counters[name] = c
	}
	return c
}

// Names returns all registered counter names, sorted
func (r *StatsRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.counters))
	for name := range r.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
