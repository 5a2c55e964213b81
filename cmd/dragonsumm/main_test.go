package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/localrivet/dragonsumm/internal/summarizer"
)

func writeTextFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func useMissingConfig(t *testing.T) {
	t.Helper()
	old := configPath
	configPath = filepath.Join(t.TempDir(), "missing.json")
	t.Cleanup(func() { configPath = old })
}

func TestRunSummarize_PromptsForLevel(t *testing.T) {
	useMissingConfig(t)
	text := "Кошка сидит на ковре. Кошка любит ковер. Собака спит во дворе."
	path := writeTextFile(t, text)

	var out bytes.Buffer
	err := runSummarize(context.Background(), &summarizeOptions{file: path}, strings.NewReader("strong\n"), &out)
	if err != nil {
		t.Fatalf("runSummarize() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Compression level (strong/weak): Result: ") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunSummarize_PromptsForFile(t *testing.T) {
	useMissingConfig(t)
	path := writeTextFile(t, "Одно предложение.")

	var out bytes.Buffer
	err := runSummarize(context.Background(), &summarizeOptions{}, strings.NewReader(path+"\nweak\n"), &out)
	if err != nil {
		t.Fatalf("runSummarize() error = %v", err)
	}
	if !strings.Contains(out.String(), "Result: Одно предложение.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunSummarize_InvalidLevel(t *testing.T) {
	useMissingConfig(t)
	path := writeTextFile(t, "Some text.")

	err := runSummarize(context.Background(), &summarizeOptions{file: path, level: "medium"}, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, summarizer.ErrInvalidLevel) {
		t.Errorf("runSummarize() error = %v, want ErrInvalidLevel", err)
	}
}

func TestRunSummarize_MissingFile(t *testing.T) {
	err := runSummarize(context.Background(), &summarizeOptions{file: filepath.Join(t.TempDir(), "nope.txt"), level: "strong"}, strings.NewReader(""), &bytes.Buffer{})
	if !errortypes.IsType(err, errortypes.ErrorTypeExternal) {
		t.Errorf("runSummarize() error = %v, want external error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("runSummarize() error = %v, want os.ErrNotExist", err)
	}
}

func TestRunSummarize_Both(t *testing.T) {
	useMissingConfig(t)
	path := writeTextFile(t, "Кошка сидит на ковре. Собака спит во дворе.")

	var out bytes.Buffer
	if err := runSummarize(context.Background(), &summarizeOptions{file: path, both: true}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runSummarize() error = %v", err)
	}
	if !strings.Contains(out.String(), "Strong: ") || !strings.Contains(out.String(), "Weak: ") {
		t.Errorf("unexpected output %q", out.String())
	}
}
