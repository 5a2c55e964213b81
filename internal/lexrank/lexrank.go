// Package lexrank ranks the sentences of a document by LexRank: TF-IDF
// cosine similarity between sentences, a row-stochastic similarity graph,
// and the stationary distribution of a damped random walk over that graph.
package lexrank

import (
	"github.com/localrivet/dragonsumm/internal/document"
)

// DefaultThreshold keeps every edge with a positive similarity.
const DefaultThreshold = 0.0

// Options configures a Ranker.
type Options struct {
	// Threshold is the similarity an edge must exceed to enter the graph.
	Threshold float64

	// IDFFloor is the minimum IDF of a term.
	IDFFloor float64

	// Solver configures the power iteration.
	Solver SolverOptions
}

// DefaultOptions returns the standard LexRank parameters.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		IDFFloor:  DefaultIDFFloor,
		Solver: SolverOptions{
			Damping:       DefaultDamping,
			Tolerance:     DefaultTolerance,
			MaxIterations: DefaultMaxIterations,
		},
	}
}

// Ranker scores the sentences of a document. It holds no per-document
// state and is safe for concurrent use.
type Ranker struct {
	opts Options
}

// NewRanker creates a Ranker with the given options.
func NewRanker(opts Options) *Ranker {
	if opts.IDFFloor <= 0 {
		opts.IDFFloor = DefaultIDFFloor
	}
	opts.Solver = opts.Solver.withDefaults()
	return &Ranker{opts: opts}
}

// Options returns the options in effect.
func (r *Ranker) Options() Options {
	return r.opts
}

// Rank returns the LexRank score of every sentence in doc. An empty
// document yields an empty, converged result.
func (r *Ranker) Rank(doc *document.Document) Result {
	if doc.Len() == 0 {
		return Result{Scores: []float64{}, Converged: true}
	}

	model := NewModel(doc, r.opts.IDFFloor)
	sim := SimilarityMatrix(model)
	transition := TransitionMatrix(sim, r.opts.Threshold)
	return Solve(transition, r.opts.Solver)
}
