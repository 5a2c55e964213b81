package summarizer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/localrivet/dragonsumm/internal/telemetry"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	// StatusHealthy indicates a component is fully operational
	StatusHealthy HealthStatus = "healthy"

	// StatusDegraded indicates the summarizer works but some rankings hit
	// the iteration bound before converging
	StatusDegraded HealthStatus = "degraded"

	// StatusUnhealthy indicates a component is not operational
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthReport contains information about the current health of the summarizer
type HealthReport struct {
	Status         HealthStatus       `json:"status"`
	Timestamp      time.Time          `json:"timestamp"`
	Language       string             `json:"language"`
	Initialized    bool               `json:"initialized"`
	ResponseTimes  map[string]float64 `json:"response_times_ms"`
	Counters       map[string]int64   `json:"counters"`
	SuccessRate    float64            `json:"success_rate"`
	TotalRequests  int64              `json:"total_requests"`
	LastSentences  int                `json:"last_sentences"`
	LastIterations int                `json:"last_iterations"`
}

// CreateHealthReport generates a health report for the summarizer.
// Rejected levels are caller errors and do not count as failures.
func CreateHealthReport(summarizer *LexRankSummarizer) (*HealthReport, error) {
	if summarizer == nil {
		return nil, fmt.Errorf("summarizer is nil")
	}

	m := summarizer.GetMetrics()
	if m == nil {
		return nil, fmt.Errorf("metrics collector is nil")
	}

	totalSuccess := m.GetCounter(telemetry.MetricSummarizeSuccess)
	totalFailure := m.GetCounter(telemetry.MetricSummarizeFailure)
	notConverged := m.GetCounter(telemetry.MetricNotConverged)
	totalRequests := totalSuccess + totalFailure
	initialized := summarizer.IsInitialized()

	var successRate float64
	if totalRequests > 0 {
		successRate = float64(totalSuccess) / float64(totalRequests) * 100.0
	}

	status := StatusHealthy
	switch {
	case !initialized || totalFailure > totalSuccess:
		status = StatusUnhealthy
	case notConverged > 0:
		status = StatusDegraded
	}

	responseTimes := map[string]float64{
		"total":     float64(m.GetTimerAverage(telemetry.MetricTotalTime)) / float64(time.Millisecond),
		"total_p95": float64(m.GetTimerP95(telemetry.MetricTotalTime)) / float64(time.Millisecond),
		"rank":      float64(m.GetTimerAverage(telemetry.MetricRankTime)) / float64(time.Millisecond),
	}

	counters := map[string]int64{
		"calls":           m.GetCounter(telemetry.MetricSummarizeCalls),
		"invalid_level":   m.GetCounter(telemetry.MetricInvalidLevel),
		"empty_documents": m.GetCounter(telemetry.MetricEmptyDocuments),
		"not_converged":   notConverged,
	}

	return &HealthReport{
		Status:         status,
		Timestamp:      time.Now(),
		Language:       summarizer.Language(),
		Initialized:    initialized,
		ResponseTimes:  responseTimes,
		Counters:       counters,
		SuccessRate:    successRate,
		TotalRequests:  totalRequests,
		LastSentences:  int(m.GetGauge(telemetry.MetricSentences)),
		LastIterations: int(m.GetGauge(telemetry.MetricIterations)),
	}, nil
}

// CreateHealthReportJSON generates a JSON health report for the summarizer
func CreateHealthReportJSON(summarizer *LexRankSummarizer) (string, error) {
	report, err := CreateHealthReport(summarizer)
	if err != nil {
		return "", err
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal health report: %w", err)
	}

	return string(reportJSON), nil
}

// ResetMetrics resets all metrics for the summarizer
func ResetMetrics(summarizer *LexRankSummarizer) error {
	if summarizer == nil {
		return fmt.Errorf("summarizer is nil")
	}

	m := summarizer.GetMetrics()
	if m == nil {
		return fmt.Errorf("metrics collector is nil")
	}

	m.Reset()
	return nil
}

// HealthReportJSON returns the JSON health report of s.
func (s *LexRankSummarizer) HealthReportJSON() (string, error) {
	return CreateHealthReportJSON(s)
}
