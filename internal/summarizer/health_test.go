package summarizer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/localrivet/dragonsumm/internal/lexrank"
)

func TestCreateHealthReport_Nil(t *testing.T) {
	if _, err := CreateHealthReport(nil); err == nil {
		t.Error("CreateHealthReport(nil) error = nil")
	}
	if err := ResetMetrics(nil); err == nil {
		t.Error("ResetMetrics(nil) error = nil")
	}
}

func TestCreateHealthReport_Status(t *testing.T) {
	t.Run("uninitialized", func(t *testing.T) {
		report, err := CreateHealthReport(NewLexRankSummarizer(nil))
		if err != nil {
			t.Fatalf("CreateHealthReport() error = %v", err)
		}
		if report.Status != StatusUnhealthy {
			t.Errorf("Status = %q, want %q", report.Status, StatusUnhealthy)
		}
	})

	t.Run("healthy", func(t *testing.T) {
		s := newTestSummarizer(t, nil)
		if _, err := s.Summarize(longText(8)); err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}
		// Rejected levels are caller errors and leave the status alone.
		if _, err := s.SummarizeLevel(context.Background(), "a. b.", "medium", 0); err == nil {
			t.Fatal("expected invalid level error")
		}

		report, err := CreateHealthReport(s)
		if err != nil {
			t.Fatalf("CreateHealthReport() error = %v", err)
		}
		if report.Status != StatusHealthy {
			t.Errorf("Status = %q, want %q", report.Status, StatusHealthy)
		}
		if report.TotalRequests != 1 || report.SuccessRate != 100 {
			t.Errorf("TotalRequests = %d, SuccessRate = %v", report.TotalRequests, report.SuccessRate)
		}
		if report.Counters["invalid_level"] != 1 || report.Counters["calls"] != 2 {
			t.Errorf("Counters = %v", report.Counters)
		}
		if report.LastSentences != 8 {
			t.Errorf("LastSentences = %d, want 8", report.LastSentences)
		}
	})

	t.Run("degraded", func(t *testing.T) {
		s := newTestSummarizer(t, &LexRankConfig{
			Ranker: lexrank.Options{Solver: lexrank.SolverOptions{MaxIterations: 1}},
		})
		if _, err := s.Summarize("cat chase dog. dog chase cat. ocean deep."); err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}

		report, err := CreateHealthReport(s)
		if err != nil {
			t.Fatalf("CreateHealthReport() error = %v", err)
		}
		if report.Status != StatusDegraded {
			t.Errorf("Status = %q, want %q", report.Status, StatusDegraded)
		}
	})
}

func TestCreateHealthReportJSON(t *testing.T) {
	s := newTestSummarizer(t, &LexRankConfig{Language: "english"})

	raw, err := CreateHealthReportJSON(s)
	if err != nil {
		t.Fatalf("CreateHealthReportJSON() error = %v", err)
	}

	var report HealthReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if report.Language != "english" || !report.Initialized {
		t.Errorf("report = %+v", report)
	}
}

func TestResetMetrics(t *testing.T) {
	s := newTestSummarizer(t, nil)
	if _, err := s.Summarize(longText(5)); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if err := ResetMetrics(s); err != nil {
		t.Fatalf("ResetMetrics() error = %v", err)
	}

	report, err := CreateHealthReport(s)
	if err != nil {
		t.Fatalf("CreateHealthReport() error = %v", err)
	}
	if report.TotalRequests != 0 {
		t.Errorf("TotalRequests = %d after reset, want 0", report.TotalRequests)
	}
}
