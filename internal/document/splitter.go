package document

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// SentenceSplitter splits raw text into an ordered list of sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// PunktSplitter is a SentenceSplitter backed by the punkt algorithm.
// English uses the bundled trained model; every other language uses an
// untrained model, which still splits on terminal punctuation.
type PunktSplitter struct {
	language  string
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter creates a splitter for the given language.
func NewPunktSplitter(language string) (*PunktSplitter, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if _, ok := supportedLanguages[language]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	var tokenizer *sentences.DefaultSentenceTokenizer
	if language == "english" {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load english punkt model: %w", err)
		}
		tokenizer = tok
	} else {
		tokenizer = sentences.NewSentenceTokenizer(sentences.NewStorage())
	}

	return &PunktSplitter{
		language:  language,
		tokenizer: tokenizer,
	}, nil
}

// Language returns the language the splitter was built for.
func (p *PunktSplitter) Language() string {
	return p.language
}

// Split returns the non-blank sentences of text in order.
func (p *PunktSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var result []string
	for _, s := range p.tokenizer.Tokenize(text) {
		sentence := strings.TrimSpace(s.Text)
		if sentence != "" {
			result = append(result, sentence)
		}
	}
	return result
}
