package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/localrivet/configurator"
	"github.com/localrivet/dragonsumm/internal/document"
	"github.com/localrivet/dragonsumm/internal/lexrank"
	"github.com/localrivet/dragonsumm/internal/logger"
)

// Config represents the dragonsumm configuration
type Config struct {
	// Summarizer contains summarization-related configuration.
	Summarizer struct {
		// Language drives sentence splitting, stopwords and stemming.
		Language string `json:"language" env:"SUMMARIZER_LANGUAGE" validate:"required"`

		// SentenceCount is the strong-level summary length. The weak level
		// uses twice as many sentences.
		SentenceCount int `json:"sentence_count" env:"SUMMARIZER_SENTENCE_COUNT" validate:"min:1"`
	} `json:"summarizer"`

	// Tokenizer is the word normalization policy.
	Tokenizer struct {
		CaseFold        bool `json:"case_fold" env:"TOKENIZER_CASE_FOLD"`
		RemoveStopwords bool `json:"remove_stopwords" env:"TOKENIZER_REMOVE_STOPWORDS"`
		Stem            bool `json:"stem" env:"TOKENIZER_STEM"`
	} `json:"tokenizer"`

	// LexRank contains the ranking parameters.
	LexRank struct {
		Threshold     float64 `json:"threshold" env:"LEXRANK_THRESHOLD"`
		IDFFloor      float64 `json:"idf_floor" env:"LEXRANK_IDF_FLOOR"`
		Damping       float64 `json:"damping" env:"LEXRANK_DAMPING"`
		Tolerance     float64 `json:"tolerance" env:"LEXRANK_TOLERANCE"`
		MaxIterations int     `json:"max_iterations" env:"LEXRANK_MAX_ITERATIONS" validate:"min:1"`
	} `json:"lexrank"`

	// Logging contains logging-related configuration.
	Logging struct {
		// Level is the minimum log level to display ("debug", "info", "warn", "error").
		Level string `json:"level" env:"LOG_LEVEL" validate:"required"`

		// Format is the log format to use ("text", "json").
		Format string `json:"format" env:"LOG_FORMAT"`
	} `json:"logging"`

	// Internal state (not saved to config file)
	configPath     string       `json:"-"`
	mutex          sync.RWMutex `json:"-"`
	lastModifiedAt time.Time    `json:"-"`
}

// Default configuration values
const (
	DefaultConfigFilename = ".dragonsummconfig"
	DefaultLanguage       = "russian"
	DefaultSentenceCount  = 5
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	EnvPrefix             = "DRAGONSUMM"
)

// NewConfig creates a new Config instance with default values
func NewConfig() *Config {
	config := &Config{}
	config.Summarizer.Language = DefaultLanguage
	config.Summarizer.SentenceCount = DefaultSentenceCount
	config.Tokenizer.CaseFold = true
	config.Tokenizer.RemoveStopwords = true
	config.Tokenizer.Stem = true
	config.LexRank.Threshold = lexrank.DefaultThreshold
	config.LexRank.IDFFloor = lexrank.DefaultIDFFloor
	config.LexRank.Damping = lexrank.DefaultDamping
	config.LexRank.Tolerance = lexrank.DefaultTolerance
	config.LexRank.MaxIterations = lexrank.DefaultMaxIterations
	config.Logging.Level = DefaultLogLevel
	config.Logging.Format = DefaultLogFormat
	return config
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath(DefaultConfigFilename)
}

// LoadConfigWithPath loads the configuration from a specific path. A missing
// file is not an error: defaults plus environment overrides are used.
func LoadConfigWithPath(configPath string) (*Config, error) {
	// Stdout may be the MCP channel, so config loading logs to stderr.
	stdLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg := NewConfig()

	if configPath == "" {
		configPath = DefaultConfigFilename
	}
	if configPath == DefaultConfigFilename {
		foundPath, err := configurator.FindConfigFile(configPath)
		if err == nil {
			configPath = foundPath
			stdLogger.Debug("Found config file at " + foundPath)
		}
	}

	loader := configurator.New(stdLogger).
		WithProvider(configurator.NewDefaultProvider())

	if _, err := os.Stat(configPath); err == nil {
		stdLogger.Info("Loading configuration", "path", configPath)
		loader = loader.WithProvider(configurator.NewFileProvider(configPath))
	} else {
		stdLogger.Info("Config file not found, using defaults and environment", "path", configPath)
	}

	loader = loader.
		WithProvider(configurator.NewEnvProvider(EnvPrefix)).
		WithValidator(configurator.NewDefaultValidator())

	if err := loader.Load(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.configPath = configPath
	cfg.lastModifiedAt = time.Now()

	return cfg, nil
}

// Validate checks the numeric ranges the configurator tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Summarizer.Language == "" {
		errs = append(errs, errors.New("summarizer.language is required"))
	}
	if c.Summarizer.SentenceCount < 1 {
		errs = append(errs, fmt.Errorf("summarizer.sentence_count must be at least 1, got %d", c.Summarizer.SentenceCount))
	}
	if c.LexRank.Damping <= 0 || c.LexRank.Damping >= 1 {
		errs = append(errs, fmt.Errorf("lexrank.damping must be in (0,1), got %v", c.LexRank.Damping))
	}
	if c.LexRank.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("lexrank.tolerance must be positive, got %v", c.LexRank.Tolerance))
	}
	if c.LexRank.IDFFloor <= 0 {
		errs = append(errs, fmt.Errorf("lexrank.idf_floor must be positive, got %v", c.LexRank.IDFFloor))
	}
	if c.LexRank.Threshold < 0 || c.LexRank.Threshold >= 1 {
		errs = append(errs, fmt.Errorf("lexrank.threshold must be in [0,1), got %v", c.LexRank.Threshold))
	}
	if c.LexRank.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("lexrank.max_iterations must be at least 1, got %d", c.LexRank.MaxIterations))
	}
	return errors.Join(errs...)
}

// RankerOptions converts the LexRank section into ranker options.
func (c *Config) RankerOptions() lexrank.Options {
	return lexrank.Options{
		Threshold: c.LexRank.Threshold,
		IDFFloor:  c.LexRank.IDFFloor,
		Solver: lexrank.SolverOptions{
			Damping:       c.LexRank.Damping,
			Tolerance:     c.LexRank.Tolerance,
			MaxIterations: c.LexRank.MaxIterations,
		},
	}
}

// TokenizerOptions converts the Tokenizer section into the word tokenizer
// policy for the configured language.
func (c *Config) TokenizerOptions() document.TokenizerOptions {
	return document.TokenizerOptions{
		Language:        c.Summarizer.Language,
		CaseFold:        c.Tokenizer.CaseFold,
		RemoveStopwords: c.Tokenizer.RemoveStopwords,
		Stem:            c.Tokenizer.Stem,
	}
}

// LoggerConfig converts the Logging section into a logger configuration.
func (c *Config) LoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	return lc
}

// SaveToFile saves the configuration to the specified file
func (c *Config) SaveToFile(path string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := configurator.SaveToFile(c, path, configurator.FormatJSON); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	c.configPath = path
	c.lastModifiedAt = time.Now()

	return nil
}

// Save saves the configuration to the last used file path
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = DefaultConfigFilename
	}
	return c.SaveToFile(c.configPath)
}

// GetConfigPath returns the path of the currently loaded configuration file
func (c *Config) GetConfigPath() string {
	return c.configPath
}
