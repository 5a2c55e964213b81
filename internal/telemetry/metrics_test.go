package telemetry

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCounters(t *testing.T) {
	m := NewMetricsCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrementCounter(MetricSummarizeCalls, 1)
		}()
	}
	wg.Wait()

	if got := m.GetCounter(MetricSummarizeCalls); got != 10 {
		t.Errorf("GetCounter() = %d, want 10", got)
	}
	if got := m.GetCounter("missing"); got != 0 {
		t.Errorf("GetCounter(missing) = %d, want 0", got)
	}
}

func TestTimers(t *testing.T) {
	m := NewMetricsCollector()
	for i := 1; i <= 20; i++ {
		m.RecordTimer(MetricRankTime, time.Duration(i)*time.Millisecond)
	}

	if got := m.GetTimerAverage(MetricRankTime); got != 10500*time.Microsecond {
		t.Errorf("GetTimerAverage() = %v, want 10.5ms", got)
	}
	if got := m.GetTimerP95(MetricRankTime); got != 20*time.Millisecond {
		t.Errorf("GetTimerP95() = %v, want 20ms", got)
	}
	if got := m.GetTimerAverage("missing"); got != 0 {
		t.Errorf("GetTimerAverage(missing) = %v, want 0", got)
	}
}

func TestTimerSampleBound(t *testing.T) {
	m := NewMetricsCollector()
	for i := 0; i < maxTimerSamples+25; i++ {
		m.RecordTimer(MetricTotalTime, time.Millisecond)
	}
	if got := len(m.timers[MetricTotalTime]); got != maxTimerSamples {
		t.Errorf("kept %d samples, want %d", got, maxTimerSamples)
	}
}

func TestReportAndReset(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricNotConverged, 2)
	m.SetGauge(MetricSentences, 12)
	m.RecordTimer(MetricTotalTime, 3*time.Millisecond)
	m.RecordTimestamp(MetricLastSummary)

	report := m.GetReport()
	for _, want := range []string{"lexrank.not_converged: 2", "document.sentences: 12.00", "summarizer.total_time", "summarizer.last_summary"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if m.GetTimeSince(MetricLastSummary) < 0 {
		t.Error("GetTimeSince() negative")
	}

	m.Reset()
	if m.GetCounter(MetricNotConverged) != 0 || m.GetGauge(MetricSentences) != 0 {
		t.Error("Reset() did not clear metrics")
	}
	if m.GetTimeSince(MetricLastSummary) != 0 {
		t.Error("Reset() did not clear timestamps")
	}
}
