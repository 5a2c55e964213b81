package lexrank

import (
	"math"

	"github.com/localrivet/dragonsumm/internal/document"
	"github.com/localrivet/dragonsumm/internal/vector"
)

// DefaultIDFFloor is the smallest IDF a term can get. A term found in every
// sentence would otherwise weigh log(1) = 0 and vanish from the vectors.
const DefaultIDFFloor = 1e-3

// Model holds the TF-IDF vectors of one document's sentences.
type Model struct {
	idf     map[string]float64
	vectors []vector.Sparse
}

// NewModel computes document frequencies over doc and the TF-IDF vector of
// every sentence. TF is the raw token count within the sentence.
func NewModel(doc *document.Document, idfFloor float64) *Model {
	if idfFloor <= 0 {
		idfFloor = DefaultIDFFloor
	}

	n := doc.Len()
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	for i := 0; i < n; i++ {
		tf := make(map[string]int)
		for _, token := range doc.Tokens(i) {
			tf[token]++
		}
		for token := range tf {
			df[token]++
		}
		counts[i] = tf
	}

	idf := make(map[string]float64, len(df))
	for token, freq := range df {
		idf[token] = math.Max(math.Log(float64(n)/float64(freq)), idfFloor)
	}

	vectors := make([]vector.Sparse, n)
	for i, tf := range counts {
		weights := make(map[string]float64, len(tf))
		for token, count := range tf {
			weights[token] = float64(count) * idf[token]
		}
		vectors[i] = vector.NewSparse(weights)
	}

	return &Model{idf: idf, vectors: vectors}
}

// Len returns the number of sentences in the model.
func (m *Model) Len() int {
	return len(m.vectors)
}

// IDF returns the inverse document frequency of term, or 0 for a term that
// does not occur in the document.
func (m *Model) IDF(term string) float64 {
	return m.idf[term]
}

// Vector returns the TF-IDF vector of sentence i.
func (m *Model) Vector(i int) vector.Sparse {
	return m.vectors[i]
}

// Similarity returns the TF-IDF cosine similarity of sentences i and j,
// in [0,1]. Sentences without tokens are similar to nothing.
func (m *Model) Similarity(i, j int) float64 {
	sim := vector.CosineSimilarity(m.vectors[i], m.vectors[j])
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	}
	return sim
}
