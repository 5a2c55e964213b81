// Package summarizer turns raw text into extractive summaries by ranking
// its sentences with LexRank.
package summarizer

const (
	// DefaultSentenceCount is the strong-level summary length.
	DefaultSentenceCount = 5

	// WeakMultiplier scales the strong-level length to the weak level.
	WeakMultiplier = 2

	// DefaultLanguage is the language used when none is configured.
	DefaultLanguage = "russian"
)

// Summarizer defines the interface for summarizing text content.
type Summarizer interface {
	// Summarize takes a text input and returns a condensed summary.
	Summarize(text string) (string, error)

	// Initialize sets up the summarizer with any required configuration.
	Initialize() error
}
