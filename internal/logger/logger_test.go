package logger

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{
		Level:       "debug",
		Format:      FormatText,
		Output:      &buf,
		DefaultTags: map[string]interface{}{"test": true},
	})

	logger.Debug("This is a debug message")
	if !strings.Contains(buf.String(), "level=DEBUG") || !strings.Contains(buf.String(), "This is a debug message") {
		t.Errorf("Expected debug message in log output, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "test=true") {
		t.Errorf("Expected default tag in log output, got: %s", buf.String())
	}

	buf.Reset()
	Component(logger, "lexrank").Warn("did not converge", "iterations", 100)
	if !strings.Contains(buf.String(), "component=lexrank") || !strings.Contains(buf.String(), "iterations=100") {
		t.Errorf("Expected component and field in log output, got: %s", buf.String())
	}

	buf.Reset()
	jsonLogger := New(&Config{
		Level:  "info",
		Format: FormatJSON,
		Output: &buf,
	})
	jsonLogger.Info("JSON message")
	if !strings.Contains(buf.String(), `"level":"INFO"`) || !strings.Contains(buf.String(), `"msg":"JSON message"`) {
		t.Errorf("Expected JSON formatted log, got: %s", buf.String())
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: "info", Output: &buf})
	logger.Debug("Should not appear")
	if buf.Len() > 0 {
		t.Errorf("DEBUG message should not have been logged, got: %s", buf.String())
	}

	logger.Info("Should appear")
	if buf.Len() == 0 {
		t.Errorf("INFO message should have been logged")
	}

	buf.Reset()
	disabled := New(&Config{Level: "disabled", Output: &buf})
	disabled.Error("Should not appear either")
	if buf.Len() > 0 {
		t.Errorf("disabled logger wrote: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func ExampleComponent() {
	var buf bytes.Buffer
	logger := New(&Config{Level: "debug", Output: &buf})

	Component(logger, "summarizer").Info("summary ready")

	fmt.Println("Contains component:", strings.Contains(buf.String(), "component=summarizer"))
	// Output: Contains component: true
}
