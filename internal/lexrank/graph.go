package lexrank

import (
	"gonum.org/v1/gonum/mat"
)

// SimilarityMatrix builds the symmetric sentence similarity matrix. The
// diagonal is left at zero because a sentence never votes for itself.
// The model must hold at least one sentence.
func SimilarityMatrix(m *Model) *mat.SymDense {
	n := m.Len()
	sim := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim.SetSym(i, j, m.Similarity(i, j))
		}
	}
	return sim
}

// TransitionMatrix turns a similarity matrix into a row-stochastic
// transition matrix. Edges at or below threshold are dropped, the others
// keep their weight. A row with no edges left becomes uniform over all
// sentences so the random walk never gets stuck.
func TransitionMatrix(sim mat.Symmetric, threshold float64) *mat.Dense {
	n := sim.SymmetricDim()
	transition := mat.NewDense(n, n, nil)
	uniform := 1 / float64(n)

	for i := 0; i < n; i++ {
		row := transition.RawRowView(i)
		var sum float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if w := sim.At(i, j); w > threshold {
				row[j] = w
				sum += w
			}
		}

		if sum == 0 {
			for j := range row {
				row[j] = uniform
			}
			continue
		}
		for j := range row {
			row[j] /= sum
		}
	}
	return transition
}
