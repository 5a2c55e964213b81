package summarizer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/localrivet/dragonsumm/internal/document"
	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/localrivet/dragonsumm/internal/lexrank"
	"github.com/localrivet/dragonsumm/internal/preprocess"
	"github.com/localrivet/dragonsumm/internal/telemetry"
)

// Errors
var (
	ErrNotInitialized      = errors.New("summarizer not initialized")
	ErrUnsupportedLanguage = document.ErrUnsupportedLanguage
)

// LexRankConfig holds configuration for the LexRankSummarizer
type LexRankConfig struct {
	// Language selects the sentence splitter, stemmer and stopwords.
	Language string

	// SentenceCount is the strong-level summary length. Weak doubles it.
	SentenceCount int

	// Ranker configures the LexRank scoring.
	Ranker lexrank.Options

	// Tokenizer overrides the default normalization policy for Language.
	Tokenizer *document.TokenizerOptions

	// Splitter and WordTokenizer replace the default collaborators.
	Splitter      document.SentenceSplitter
	WordTokenizer document.WordTokenizer

	Metrics *telemetry.MetricsCollector
	Logger  *slog.Logger
}

// Result is the outcome of one summarization.
type Result struct {
	Summary        string
	Level          Level
	SentenceCount  int
	TotalSentences int
	Indices        []int
	Converged      bool
	Iterations     int
}

// LexRankSummarizer is an implementation of the Summarizer interface that
// extracts the most central sentences of a text.
type LexRankSummarizer struct {
	language      string
	sentenceCount int
	tokenizerOpts document.TokenizerOptions
	ranker        *lexrank.Ranker
	splitter      document.SentenceSplitter
	tokenizer     document.WordTokenizer
	metrics       *telemetry.MetricsCollector
	logger        *slog.Logger
	initialized   bool
	mu            sync.RWMutex
}

// NewLexRankSummarizer creates a new LexRankSummarizer. Initialize must be
// called before summarizing.
func NewLexRankSummarizer(config *LexRankConfig) *LexRankSummarizer {
	if config == nil {
		config = &LexRankConfig{}
	}

	language := config.Language
	if language == "" {
		language = DefaultLanguage
	}
	sentenceCount := config.SentenceCount
	if sentenceCount <= 0 {
		sentenceCount = DefaultSentenceCount
	}
	tokenizerOpts := document.DefaultTokenizerOptions(language)
	if config.Tokenizer != nil {
		tokenizerOpts = *config.Tokenizer
		tokenizerOpts.Language = language
	}
	metrics := config.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &LexRankSummarizer{
		language:      language,
		sentenceCount: sentenceCount,
		tokenizerOpts: tokenizerOpts,
		ranker:        lexrank.NewRanker(config.Ranker),
		splitter:      config.Splitter,
		tokenizer:     config.WordTokenizer,
		metrics:       metrics,
		logger:        logger.With("component", "summarizer", "language", language),
	}
}

// Initialize builds the sentence splitter and word tokenizer for the
// configured language, unless they were supplied.
func (s *LexRankSummarizer) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if s.splitter == nil {
		splitter, err := document.NewPunktSplitter(s.language)
		if err != nil {
			return errortypes.ConfigError(err, "failed to create sentence splitter").
				WithField("language", s.language)
		}
		s.splitter = splitter
	}
	if s.tokenizer == nil {
		tokenizer, err := document.NewSnowballTokenizer(s.tokenizerOpts)
		if err != nil {
			return errortypes.ConfigError(err, "failed to create word tokenizer").
				WithField("language", s.language)
		}
		s.tokenizer = tokenizer
	}

	s.initialized = true
	s.logger.Debug("Summarizer initialized", "sentence_count", s.sentenceCount)
	return nil
}

// IsInitialized reports whether Initialize has completed.
func (s *LexRankSummarizer) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Language returns the configured language.
func (s *LexRankSummarizer) Language() string {
	return s.language
}

// SentenceCount returns the strong-level summary length.
func (s *LexRankSummarizer) SentenceCount() int {
	return s.sentenceCount
}

// GetMetrics returns the metrics collector.
func (s *LexRankSummarizer) GetMetrics() *telemetry.MetricsCollector {
	return s.metrics
}

// Summarize returns the strong-level summary of text.
func (s *LexRankSummarizer) Summarize(text string) (string, error) {
	result, err := s.SummarizeLevel(context.Background(), text, string(LevelStrong), 0)
	if err != nil {
		return "", err
	}
	return result.Summary, nil
}

// SummarizeLevel summarizes text at the named level. A positive count
// overrides the level's sentence count for this call.
func (s *LexRankSummarizer) SummarizeLevel(ctx context.Context, text, level string, count int) (*Result, error) {
	startTime := time.Now()
	s.metrics.IncrementCounter(telemetry.MetricSummarizeCalls, 1)
	defer func() {
		s.metrics.RecordTimer(telemetry.MetricTotalTime, time.Since(startTime))
	}()

	lvl, err := ParseLevel(level)
	if err != nil {
		s.metrics.IncrementCounter(telemetry.MetricInvalidLevel, 1)
		return nil, err
	}

	doc, err := s.buildDocument(text)
	if err != nil {
		s.metrics.IncrementCounter(telemetry.MetricSummarizeFailure, 1)
		return nil, err
	}

	k := count
	if k <= 0 {
		k = lvl.SentenceCount(s.sentenceCount)
	}

	if doc.Len() == 0 {
		s.metrics.IncrementCounter(telemetry.MetricEmptyDocuments, 1)
		s.metrics.IncrementCounter(telemetry.MetricSummarizeSuccess, 1)
		return &Result{Level: lvl, Indices: []int{}, Converged: true}, nil
	}

	scores, err := s.rank(ctx, doc)
	if err != nil {
		s.metrics.IncrementCounter(telemetry.MetricSummarizeFailure, 1)
		return nil, err
	}

	summary := lexrank.Select(doc, scores.Scores, k)
	s.metrics.IncrementCounter(telemetry.MetricSummarizeSuccess, 1)
	s.metrics.RecordTimestamp(telemetry.MetricLastSummary)

	return &Result{
		Summary:        summary.String(),
		Level:          lvl,
		SentenceCount:  summary.Len(),
		TotalSentences: doc.Len(),
		Indices:        summary.Indices(),
		Converged:      scores.Converged,
		Iterations:     scores.Iterations,
	}, nil
}

// SummarizeBoth scores text once and returns both the strong and the weak
// summary.
func (s *LexRankSummarizer) SummarizeBoth(ctx context.Context, text string) (strong, weak string, err error) {
	s.metrics.IncrementCounter(telemetry.MetricSummarizeCalls, 1)

	doc, err := s.buildDocument(text)
	if err != nil {
		s.metrics.IncrementCounter(telemetry.MetricSummarizeFailure, 1)
		return "", "", err
	}
	if doc.Len() == 0 {
		s.metrics.IncrementCounter(telemetry.MetricEmptyDocuments, 1)
		s.metrics.IncrementCounter(telemetry.MetricSummarizeSuccess, 1)
		return "", "", nil
	}

	scores, err := s.rank(ctx, doc)
	if err != nil {
		s.metrics.IncrementCounter(telemetry.MetricSummarizeFailure, 1)
		return "", "", err
	}

	strong = lexrank.Select(doc, scores.Scores, LevelStrong.SentenceCount(s.sentenceCount)).String()
	weak = lexrank.Select(doc, scores.Scores, LevelWeak.SentenceCount(s.sentenceCount)).String()
	s.metrics.IncrementCounter(telemetry.MetricSummarizeSuccess, 1)
	s.metrics.RecordTimestamp(telemetry.MetricLastSummary)
	return strong, weak, nil
}

// buildDocument normalizes, splits and tokenizes text.
func (s *LexRankSummarizer) buildDocument(text string) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errortypes.InternalError(ErrNotInitialized, "summarizer used before Initialize")
	}

	doc := document.Build(preprocess.Normalize(text), s.splitter, s.tokenizer)
	s.metrics.SetGauge(telemetry.MetricSentences, float64(doc.Len()))
	return doc, nil
}

// rank scores doc, giving up early if ctx is already done.
func (s *LexRankSummarizer) rank(ctx context.Context, doc *document.Document) (lexrank.Result, error) {
	if err := ctx.Err(); err != nil {
		return lexrank.Result{}, errortypes.ExternalError(err, "summarization canceled")
	}

	startTime := time.Now()
	result := s.ranker.Rank(doc)
	s.metrics.RecordTimer(telemetry.MetricRankTime, time.Since(startTime))
	s.metrics.SetGauge(telemetry.MetricIterations, float64(result.Iterations))

	if !result.Converged {
		s.metrics.IncrementCounter(telemetry.MetricNotConverged, 1)
		s.logger.Warn("LexRank did not converge",
			"sentences", doc.Len(),
			"iterations", result.Iterations,
			"delta", result.Delta)
	}
	return result, nil
}
