package lexrank

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultDamping is the probability of following an edge rather than
	// teleporting to a random sentence.
	DefaultDamping = 0.85

	// DefaultTolerance is the L1 distance between successive score vectors
	// below which the iteration is considered converged.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations bounds the power iteration.
	DefaultMaxIterations = 100
)

// SolverOptions configures the power iteration.
type SolverOptions struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// withDefaults fills zero or out-of-range fields with the defaults.
func (o SolverOptions) withDefaults() SolverOptions {
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = DefaultDamping
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Result is the outcome of a centrality computation.
type Result struct {
	// Scores is the LexRank score of each sentence. It is a probability
	// distribution: non-negative and summing to 1.
	Scores []float64

	// Iterations is the number of power iteration steps taken.
	Iterations int

	// Converged is false when the iteration bound was reached before the
	// tolerance was met. Scores then holds the last iterate.
	Converged bool

	// Delta is the L1 distance between the last two iterates.
	Delta float64
}

// Solve computes the stationary distribution of the damped random walk over
// transition:
//
//	score' = d * (Tᵀ · score) + (1 - d) / N
//
// starting from the uniform distribution.
func Solve(transition mat.Matrix, opts SolverOptions) Result {
	opts = opts.withDefaults()

	n, _ := transition.Dims()
	if n == 0 {
		return Result{Scores: []float64{}, Converged: true}
	}

	uniform := 1 / float64(n)
	teleport := (1 - opts.Damping) * uniform

	score := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		score.SetVec(i, uniform)
	}
	next := mat.NewVecDense(n, nil)

	result := Result{}
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		next.MulVec(transition.T(), score)
		data := next.RawVector().Data
		floats.Scale(opts.Damping, data)
		floats.AddConst(teleport, data)

		result.Delta = floats.Distance(data, score.RawVector().Data, 1)
		result.Iterations = iter
		score, next = next, score

		if result.Delta < opts.Tolerance {
			result.Converged = true
			break
		}
	}

	scores := make([]float64, n)
	copy(scores, score.RawVector().Data)
	for i, s := range scores {
		if s < 0 {
			scores[i] = 0
		}
	}
	if sum := floats.Sum(scores); sum > 0 {
		floats.Scale(1/sum, scores)
	}
	result.Scores = scores
	return result
}
