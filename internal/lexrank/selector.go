package lexrank

import (
	"sort"
	"strings"

	"github.com/localrivet/dragonsumm/internal/document"
)

// Summary is a read-only view of the sentences selected from a document,
// in original document order.
type Summary struct {
	doc     *document.Document
	indices []int
}

// Select picks the k highest-scoring sentences of doc and returns them in
// document order. Equal scores are broken by position, earlier first.
// k larger than the document selects every sentence; k <= 0 selects none.
func Select(doc *document.Document, scores []float64, k int) Summary {
	n := doc.Len()
	if k > n {
		k = n
	}
	if k <= 0 {
		return Summary{doc: doc}
	}

	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	scoreOf := func(i int) float64 {
		if i < len(scores) {
			return scores[i]
		}
		return 0
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		sa, sb := scoreOf(ranked[a]), scoreOf(ranked[b])
		if sa != sb {
			return sa > sb
		}
		return ranked[a] < ranked[b]
	})

	selected := append([]int(nil), ranked[:k]...)
	sort.Ints(selected)
	return Summary{doc: doc, indices: selected}
}

// Len returns the number of selected sentences.
func (s Summary) Len() int {
	return len(s.indices)
}

// Indices returns the original positions of the selected sentences.
func (s Summary) Indices() []int {
	return append([]int(nil), s.indices...)
}

// Sentences returns the selected sentences in document order.
func (s Summary) Sentences() []document.Sentence {
	out := make([]document.Sentence, len(s.indices))
	for i, idx := range s.indices {
		out[i] = s.doc.Sentence(idx)
	}
	return out
}

// String joins the selected sentence texts with a single space.
func (s Summary) String() string {
	texts := make([]string, len(s.indices))
	for i, idx := range s.indices {
		texts[i] = s.doc.Text(idx)
	}
	return strings.Join(texts, " ")
}
