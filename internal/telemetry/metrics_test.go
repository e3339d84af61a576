package telemetry

import (
	"strings"
	"testing"
	"time"
)

func TestCounters(t *testing.T) {
	m := NewMetricsCollector()

	m.IncrementCounter(MetricCallsGetUser)
	m.IncrementCounter(MetricCallsGetUser)
	m.IncrementCounter(MetricCallsSuccess)

	if got := m.GetCounter(MetricCallsGetUser); got != 2 {
		t.Errorf("Expected counter 2, got %d", got)
	}
	if got := m.GetCounter("tools.calls.never_used"); got != 0 {
		t.Errorf("Expected zero for unknown counter, got %d", got)
	}
}

func TestTimers(t *testing.T) {
	m := NewMetricsCollector()

	m.RecordTimer(MetricUpstreamUserLatency, 10*time.Millisecond)
	m.RecordTimer(MetricUpstreamUserLatency, 30*time.Millisecond)

	if got := m.GetTimerAverage(MetricUpstreamUserLatency); got != 20*time.Millisecond {
		t.Errorf("Expected average 20ms, got %v", got)
	}
	if got := m.GetTimerAverage("upstream.latency.never_used"); got != 0 {
		t.Errorf("Expected zero average for unknown timer, got %v", got)
	}
}

func TestTimerSampleBound(t *testing.T) {
	m := NewMetricsCollector()

	for i := 0; i < maxTimerSamples+50; i++ {
		m.RecordTimer(MetricUpstreamTripLatency, time.Millisecond)
	}

	m.mu.RLock()
	n := len(m.timers[MetricUpstreamTripLatency])
	m.mu.RUnlock()

	if n != maxTimerSamples {
		t.Errorf("Expected samples capped at %d, got %d", maxTimerSamples, n)
	}
}

func TestTimerP95(t *testing.T) {
	m := NewMetricsCollector()

	for i := 1; i <= 100; i++ {
		m.RecordTimer(MetricUpstreamTripLatency, time.Duration(i)*time.Millisecond)
	}

	p95 := m.GetTimerP95(MetricUpstreamTripLatency)
	if p95 < 90*time.Millisecond || p95 > 100*time.Millisecond {
		t.Errorf("Expected p95 near the top of the distribution, got %v", p95)
	}
}

func TestReportAndReset(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricCallsSearchTrips)
	m.RecordTimer(MetricUpstreamUserLatency, time.Millisecond)

	report := m.Report()
	if !strings.Contains(report, MetricCallsSearchTrips) {
		t.Errorf("Expected report to mention %s, got:\n%s", MetricCallsSearchTrips, report)
	}

	m.Reset()
	if got := m.GetCounter(MetricCallsSearchTrips); got != 0 {
		t.Errorf("Expected counter reset to zero, got %d", got)
	}
}
