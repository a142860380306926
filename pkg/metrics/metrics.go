// Package metrics records how many assertions an engine evaluated,
// per assertion type and outcome, and how long they took.
package metrics

import (
	"sort"
	"sync"
	"time"
)

// Recorder defines the interface for recording assertion
// evaluations.
type Recorder interface {
	// RecordAssertion records one evaluation of assertionType.
	RecordAssertion(assertionType string, passed bool, duration time.Duration)
}

// NoopRecorder is a no-op implementation of Recorder, used when
// metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordAssertion(_ string, _ bool, _ time.Duration) {}

// Counts summarizes the evaluations of one assertion type.
type Counts struct {
	Passed   int
	Failed   int
	Duration time.Duration
}

// Total returns Passed + Failed.
func (c Counts) Total() int { return c.Passed + c.Failed }

// Counters implements Recorder with in-memory counters. It is safe
// for concurrent use.
type Counters struct {
	mu     sync.Mutex
	counts map[string]Counts
}

// NewCounters creates an empty Counters.
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]Counts)}
}

func (m *Counters) RecordAssertion(assertionType string, passed bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.counts[assertionType]
	if passed {
		c.Passed++
	} else {
		c.Failed++
	}
	c.Duration += duration
	m.counts[assertionType] = c
}

// Get returns the counts for assertionType.
func (m *Counters) Get(assertionType string) Counts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[assertionType]
}

// Total returns the counts summed over every assertion type.
func (m *Counters) Total() Counts {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total Counts
	for _, c := range m.counts {
		total.Passed += c.Passed
		total.Failed += c.Failed
		total.Duration += c.Duration
	}
	return total
}

// Types returns the recorded assertion types in sorted order.
func (m *Counters) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	types := make([]string, 0, len(m.counts))
	for t := range m.counts {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Reset clears all counters.
func (m *Counters) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]Counts)
}
