package document

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedLanguage is returned when no stemmer exists for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// supportedLanguages lists the languages the snowball stemmer handles.
var supportedLanguages = map[string]struct{}{
	"english":   {},
	"french":    {},
	"hungarian": {},
	"norwegian": {},
	"russian":   {},
	"spanish":   {},
	"swedish":   {},
}

// SupportedLanguage reports whether language can be tokenized and split.
func SupportedLanguage(language string) bool {
	_, ok := supportedLanguages[strings.ToLower(strings.TrimSpace(language))]
	return ok
}

// nonWordRegex matches runs of anything that is not a letter or a digit.
var nonWordRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// WordTokenizer turns a sentence into normalized word tokens.
type WordTokenizer interface {
	Tokenize(sentence string) []string
}

// TokenizerOptions is the normalization policy applied by SnowballTokenizer.
type TokenizerOptions struct {
	// Language selects the stemmer and the stopword list.
	Language string

	// CaseFold folds tokens to a caseless form before anything else.
	CaseFold bool

	// RemoveStopwords drops tokens found in the language's stopword list.
	RemoveStopwords bool

	// Stem reduces tokens to their snowball stem.
	Stem bool
}

// DefaultTokenizerOptions returns the full normalization policy for language.
func DefaultTokenizerOptions(language string) TokenizerOptions {
	return TokenizerOptions{
		Language:        language,
		CaseFold:        true,
		RemoveStopwords: true,
		Stem:            true,
	}
}

// SnowballTokenizer is a WordTokenizer that splits on non-word characters,
// optionally case-folds, drops stopwords and stems with snowball.
type SnowballTokenizer struct {
	opts      TokenizerOptions
	stopwords map[string]struct{}
}

// NewSnowballTokenizer creates a tokenizer with the given options.
func NewSnowballTokenizer(opts TokenizerOptions) (*SnowballTokenizer, error) {
	opts.Language = strings.ToLower(strings.TrimSpace(opts.Language))
	if _, ok := supportedLanguages[opts.Language]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, opts.Language)
	}

	return &SnowballTokenizer{
		opts:      opts,
		stopwords: stopwordsFor(opts.Language),
	}, nil
}

// Tokenize returns the normalized tokens of sentence in order.
func (t *SnowballTokenizer) Tokenize(sentence string) []string {
	text := norm.NFC.String(sentence)
	if t.opts.CaseFold {
		// Casers carry state, so one is made per call.
		text = cases.Fold().String(text)
	}

	words := strings.Fields(nonWordRegex.ReplaceAllString(text, " "))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if t.opts.RemoveStopwords {
			if _, isStopword := t.stopwords[strings.ToLower(word)]; isStopword {
				continue
			}
		}
		if t.opts.Stem {
			stemmed, err := snowball.Stem(word, t.opts.Language, true)
			if err == nil && stemmed != "" {
				word = stemmed
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}
