package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/localrivet/dragonsumm/internal/lexrank"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Summarizer.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", cfg.Summarizer.Language, DefaultLanguage)
	}
	if cfg.Summarizer.SentenceCount != 5 {
		t.Errorf("SentenceCount = %d, want 5", cfg.Summarizer.SentenceCount)
	}
	if !cfg.Tokenizer.CaseFold || !cfg.Tokenizer.RemoveStopwords || !cfg.Tokenizer.Stem {
		t.Errorf("Tokenizer = %+v, want everything enabled", cfg.Tokenizer)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"damping too high", func(c *Config) { c.LexRank.Damping = 1 }, "lexrank.damping"},
		{"damping zero", func(c *Config) { c.LexRank.Damping = 0 }, "lexrank.damping"},
		{"tolerance", func(c *Config) { c.LexRank.Tolerance = 0 }, "lexrank.tolerance"},
		{"idf floor", func(c *Config) { c.LexRank.IDFFloor = -1 }, "lexrank.idf_floor"},
		{"threshold", func(c *Config) { c.LexRank.Threshold = 1 }, "lexrank.threshold"},
		{"iterations", func(c *Config) { c.LexRank.MaxIterations = 0 }, "lexrank.max_iterations"},
		{"sentence count", func(c *Config) { c.Summarizer.SentenceCount = 0 }, "summarizer.sentence_count"},
		{"language", func(c *Config) { c.Summarizer.Language = "" }, "summarizer.language"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := NewConfig()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, test.wantErr)
			}
		})
	}
}

func TestRankerOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.LexRank.Damping = 0.9
	cfg.LexRank.MaxIterations = 42

	opts := cfg.RankerOptions()
	if opts.Solver.Damping != 0.9 || opts.Solver.MaxIterations != 42 {
		t.Errorf("Solver = %+v", opts.Solver)
	}
	if opts.IDFFloor != lexrank.DefaultIDFFloor || opts.Threshold != lexrank.DefaultThreshold {
		t.Errorf("Options = %+v", opts)
	}
}

func TestTokenizerOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Summarizer.Language = "english"
	cfg.Tokenizer.Stem = false

	opts := cfg.TokenizerOptions()
	if opts.Language != "english" || opts.Stem || !opts.CaseFold || !opts.RemoveStopwords {
		t.Errorf("TokenizerOptions() = %+v", opts)
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	lc := cfg.LoggerConfig()
	if lc.Level != "debug" || lc.Format != "json" {
		t.Errorf("LoggerConfig() = %+v", lc)
	}
}

func TestLoadConfigWithPath_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	cfg, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPath() error = %v", err)
	}
	if cfg.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q, want %q", cfg.GetConfigPath(), path)
	}
	if cfg.LexRank.Damping != lexrank.DefaultDamping {
		t.Errorf("Damping = %v, want default", cfg.LexRank.Damping)
	}
}
