// Package dragonsumm extracts summaries from text by ranking its sentences
// with LexRank, and serves that summarizer as an MCP tool server.
package dragonsumm

import (
	"context"
	"log/slog"
	"sync"

	"github.com/localrivet/dragonsumm/internal/config"
	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/localrivet/dragonsumm/internal/preprocess"
	"github.com/localrivet/dragonsumm/internal/server"
	"github.com/localrivet/dragonsumm/internal/summarizer"
)

// Config represents the configuration for the dragonsumm service.
type Config = config.Config

// Compression levels accepted by Summarize.
const (
	LevelStrong = string(summarizer.LevelStrong)
	LevelWeak   = string(summarizer.LevelWeak)
)

// ErrInvalidLevel is returned by Summarize for a level other than
// LevelStrong or LevelWeak.
var ErrInvalidLevel = summarizer.ErrInvalidLevel

// Server represents the dragonsumm service.
type Server struct {
	config     *config.Config
	summarizer *summarizer.LexRankSummarizer
	toolServer server.SummaryToolServer
	logger     *slog.Logger // Logger for this Server instance
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new dragonsumm Server with the given options.
// If opts.Config is provided, it will be used directly.
// Otherwise, if opts.ConfigPath is provided, configuration will be loaded from that path.
// If neither is provided, DefaultConfig() will be used.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Info("Using provided Config object for server initialization")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Warn("No Config object or ConfigPath provided, using default configuration for server initialization")
		cfg = DefaultConfig()
	}

	sum, err := CreateComponents(cfg, logger)
	if err != nil {
		logger.Error("Failed to create components during server initialization", "error", err)
		return nil, err
	}

	logger.Info("Initializing summary tool server component")
	mcpServer := server.NewSummaryToolServer(sum)
	if err := mcpServer.Initialize(); err != nil {
		logger.Error("Failed to initialize MCP summary tool server component", "error", err)
		return nil, errortypes.ConfigError(err, "Failed to initialize MCP summary tool server component")
	}

	logger.Info("dragonsumm server successfully initialized", "language", cfg.Summarizer.Language)
	return &Server{
		config:     cfg,
		summarizer: sum,
		toolServer: mcpServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the dragonsumm service.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// Start starts the dragonsumm service on stdio. It blocks until stdin closes.
func (s *Server) Start() error {
	s.logger.Info("Starting dragonsumm service")
	return s.toolServer.Start()
}

// Stop stops the dragonsumm service.
func (s *Server) Stop() error {
	s.logger.Info("Stopping dragonsumm service")
	if err := s.toolServer.Stop(); err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}
	s.logger.Info("dragonsumm service stopped")
	return nil
}

// Summarize summarizes text at the given level with the server's
// configuration. A positive count overrides the level's sentence count.
func (s *Server) Summarize(ctx context.Context, text, level string, count int) (*summarizer.Result, error) {
	return s.summarizer.SummarizeLevel(ctx, text, level, count)
}

// SummarizeBoth returns the strong and the weak summary of text from a
// single ranking.
func (s *Server) SummarizeBoth(ctx context.Context, text string) (strong, weak string, err error) {
	return s.summarizer.SummarizeBoth(ctx, text)
}

// HealthReport returns the summarizer's health report.
func (s *Server) HealthReport() (*summarizer.HealthReport, error) {
	return summarizer.CreateHealthReport(s.summarizer)
}

// GetConfig returns the configuration the server was built with.
func (s *Server) GetConfig() *Config {
	return s.config
}

// GetSummarizer returns the summarizer instance used by the server.
func (s *Server) GetSummarizer() *summarizer.LexRankSummarizer {
	return s.summarizer
}

// CreateComponents creates and initializes the summarizer described by cfg
// without creating a server instance.
func CreateComponents(cfg *Config, logger *slog.Logger) (*summarizer.LexRankSummarizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger.Info("Initializing summarizer",
		"language", cfg.Summarizer.Language,
		"sentence_count", cfg.Summarizer.SentenceCount)

	tokenizerOpts := cfg.TokenizerOptions()
	sum := summarizer.NewLexRankSummarizer(&summarizer.LexRankConfig{
		Language:      cfg.Summarizer.Language,
		SentenceCount: cfg.Summarizer.SentenceCount,
		Ranker:        cfg.RankerOptions(),
		Tokenizer:     &tokenizerOpts,
		Logger:        logger,
	})
	if err := sum.Initialize(); err != nil {
		logger.Error("Failed to initialize summarizer", "error", err)
		return nil, err
	}

	logger.Info("Components successfully initialized")
	return sum, nil
}

// Normalize replaces semicolons and colons with periods and collapses
// three-period ellipses, as done before sentence splitting.
func Normalize(text string) string {
	return preprocess.Normalize(text)
}

var (
	defaultSummarizer     *summarizer.LexRankSummarizer
	defaultSummarizerErr  error
	defaultSummarizerOnce sync.Once
)

// Summarize returns the summary of text at level, "strong" or "weak", using
// the default configuration. A positive count overrides the level's
// sentence count. Any other level fails with ErrInvalidLevel.
func Summarize(text, level string, count int) (string, error) {
	defaultSummarizerOnce.Do(func() {
		defaultSummarizer, defaultSummarizerErr = CreateComponents(DefaultConfig(), slog.Default())
	})
	if defaultSummarizerErr != nil {
		return "", defaultSummarizerErr
	}

	result, err := defaultSummarizer.SummarizeLevel(context.Background(), text, level, count)
	if err != nil {
		return "", err
	}
	return result.Summary, nil
}
