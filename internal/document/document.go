// Package document holds the tokenized document model consumed by the
// LexRank pipeline, along with the sentence splitter and word tokenizer
// collaborators that produce it.
package document

// Sentence is one sentence of a document: its original text, used for the
// final summary, and its normalized word tokens, used for scoring.
type Sentence struct {
	// Text is the sentence as it appeared in the source text.
	Text string

	// Tokens are the normalized word tokens. A sentence with no tokens is
	// valid and simply has zero similarity to every other sentence.
	Tokens []string
}

// Document is an ordered, immutable sequence of sentences. A sentence's
// index is its original position.
type Document struct {
	sentences []Sentence
}

// New creates a Document from the given sentences. The input is copied so
// later changes by the caller do not leak into the document.
func New(sentences []Sentence) *Document {
	copied := make([]Sentence, len(sentences))
	for i, s := range sentences {
		copied[i] = Sentence{
			Text:   s.Text,
			Tokens: append([]string(nil), s.Tokens...),
		}
	}
	return &Document{sentences: copied}
}

// Build splits text into sentences and tokenizes each of them.
func Build(text string, splitter SentenceSplitter, tokenizer WordTokenizer) *Document {
	raw := splitter.Split(text)
	sentences := make([]Sentence, 0, len(raw))
	for _, s := range raw {
		sentences = append(sentences, Sentence{
			Text:   s,
			Tokens: tokenizer.Tokenize(s),
		})
	}
	return &Document{sentences: sentences}
}

// Len returns the number of sentences.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sentences)
}

// Sentence returns the sentence at position i.
func (d *Document) Sentence(i int) Sentence {
	return d.sentences[i]
}

// Text returns the original text of the sentence at position i.
func (d *Document) Text(i int) string {
	return d.sentences[i].Text
}

// Tokens returns the tokens of the sentence at position i. Callers must not
// modify the returned slice.
func (d *Document) Tokens(i int) []string {
	return d.sentences[i].Tokens
}
