// Package vector provides sparse term-weight vectors and the similarity
// math the LexRank pipeline runs on them.
package vector

import (
	"math"
	"sort"
)

// Sparse is a term-weighted vector. Terms are kept sorted so every
// operation visits them in the same order and produces identical floating
// point results across runs.
type Sparse struct {
	terms   []string
	weights []float64
}

// NewSparse builds a Sparse vector from a term-to-weight map. Zero weights
// are dropped.
func NewSparse(weights map[string]float64) Sparse {
	terms := make([]string, 0, len(weights))
	for term, w := range weights {
		if w != 0 {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	values := make([]float64, len(terms))
	for i, term := range terms {
		values[i] = weights[term]
	}
	return Sparse{terms: terms, weights: values}
}

// Len returns the number of non-zero terms.
func (v Sparse) Len() int {
	return len(v.terms)
}

// Weight returns the weight of term, or 0 if the term is absent.
func (v Sparse) Weight(term string) float64 {
	i := sort.SearchStrings(v.terms, term)
	if i < len(v.terms) && v.terms[i] == term {
		return v.weights[i]
	}
	return 0
}

// Dot returns the dot product of two vectors.
func (v Sparse) Dot(o Sparse) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.terms) && j < len(o.terms) {
		switch {
		case v.terms[i] == o.terms[j]:
			sum += v.weights[i] * o.weights[j]
			i++
			j++
		case v.terms[i] < o.terms[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean norm.
func (v Sparse) Norm() float64 {
	var sum float64
	for _, w := range v.weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// CosineSimilarity calculates the cosine of the angle between two vectors.
// Unlike the dense form, a zero vector is not an error here: an empty
// sentence is simply similar to nothing, so the result is 0.
func CosineSimilarity(a, b Sparse) float64 {
	normA := a.Norm()
	normB := b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return a.Dot(b) / (normA * normB)
}
