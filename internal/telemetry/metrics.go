// Package telemetry provides in-process metrics collection for monitoring
// tool invocations and upstream call latency. Metrics live in memory only and
// surface through local diagnostic logging.
package telemetry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Metric names for the tool dispatcher.
const (
	// Invocation counts per tool
	MetricCallsGetUser             = "tools.calls.get_user"
	MetricCallsGetUserStats        = "tools.calls.get_user_stats"
	MetricCallsGetUserTrips        = "tools.calls.get_user_trips"
	MetricCallsGetUserSocialStatus = "tools.calls.get_user_social_status"
	MetricCallsGetTrip             = "tools.calls.get_trip"
	MetricCallsSearchTrips         = "tools.calls.search_trips"

	// Outcome counts across all tools
	MetricCallsSuccess = "tools.calls.success"
	MetricCallsError   = "tools.calls.error"

	// Upstream latency per client operation
	MetricUpstreamUserLatency = "upstream.latency.user_by_username"
	MetricUpstreamTripLatency = "upstream.latency.trip_by_id"
)

// maxTimerSamples bounds per-timer memory.
const maxTimerSamples = 100

// MetricsCollector provides a thread-safe interface for collecting
// application metrics for monitoring and troubleshooting.
type MetricsCollector struct {
	counters map[string]int64
	timers   map[string][]time.Duration
	mu       sync.RWMutex
}

// NewMetricsCollector creates a new MetricsCollector instance
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters: make(map[string]int64),
		timers:   make(map[string][]time.Duration),
	}
}

// IncrementCounter increments a named counter by one
func (m *MetricsCollector) IncrementCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[name]++
}

// RecordTimer records a duration for the specified timer
func (m *MetricsCollector) RecordTimer(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	samples := append(m.timers[name], duration)
	if len(samples) > maxTimerSamples {
		samples = samples[1:]
	}
	m.timers[name] = samples
}

// GetCounter retrieves the current value of a counter
func (m *MetricsCollector) GetCounter(name string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.counters[name]
}

// GetTimerAverage calculates the average duration for a timer
func (m *MetricsCollector) GetTimerAverage(name string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return average(m.timers[name])
}

// GetTimerP95 calculates the 95th percentile duration for a timer
func (m *MetricsCollector) GetTimerP95(name string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	samples := m.timers[name]
	if len(samples) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(float64(len(sorted)) * 0.95)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Report generates a human-readable report of all collected metrics
func (m *MetricsCollector) Report() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Metrics Report:\n")

	b.WriteString("Counters:\n")
	for _, name := range sortedKeys(m.counters) {
		fmt.Fprintf(&b, "  %s: %d\n", name, m.counters[name])
	}

	b.WriteString("Timers:\n")
	for _, name := range sortedKeys(m.timers) {
		fmt.Fprintf(&b, "  %s: avg=%v count=%d\n", name, average(m.timers[name]), len(m.timers[name]))
	}

	return b.String()
}

// Reset clears all collected metrics
func (m *MetricsCollector) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters = make(map[string]int64)
	m.timers = make(map[string][]time.Duration)
}

func average(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range samples {
		total += d
	}
	return total / time.Duration(len(samples))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
