package perf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Score maps a contingency matrix to a single value. Every score below is NaN
// for an empty matrix.
type Score func(*ContingencyMatrix) float64

// ClusterScores are the external clustering validity indices by name.
var ClusterScores = map[string]Score{
	"purity": Purity,
	"ari":    AdjustedRandIndex,
	"nmi":    NormalizedMutualInformation,
	"vi":     VariationOfInformation,
}

// Accuracy is trace / total.
func Accuracy(m *ContingencyMatrix) float64 {
	total := m.Total()
	if total == 0 {
		return math.NaN()
	}
	return float64(m.Diagonal()) / float64(total)
}

// Purity assigns every predicted cluster to its most frequent true cluster
// and returns the share of trajectories that match.
func Purity(m *ContingencyMatrix) float64 {
	total := m.Total()
	if total == 0 {
		return math.NaN()
	}
	rows, cols := m.Dims()
	var hit int
	for j := 0; j < cols; j++ {
		best := 0
		for i := 0; i < rows; i++ {
			best = max(best, m.At(i, j))
		}
		hit += best
	}
	return float64(hit) / float64(total)
}

// AdjustedRandIndex compares the true and predicted partitions.
//
//	ARI = (Σ C(n_ij,2) - E) / (½(Σ C(a_i,2) + Σ C(b_j,2)) - E)
//	E   = Σ C(a_i,2) · Σ C(b_j,2) / C(n,2)
//
// 1 is perfect agreement, 0 is chance level.
func AdjustedRandIndex(m *ContingencyMatrix) float64 {
	total := m.Total()
	if total == 0 {
		return math.NaN()
	}

	rows, cols := m.Dims()
	var sumNij float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sumNij += comb2(float64(m.At(i, j)))
		}
	}

	var sumA, sumB float64
	for _, a := range m.RowSums() {
		sumA += comb2(a)
	}
	for _, b := range m.ColSums() {
		sumB += comb2(b)
	}

	nC2 := comb2(float64(total))
	if nC2 == 0 {
		return 1.0
	}

	expected := sumA * sumB / nC2
	maxIndex := 0.5 * (sumA + sumB)
	denominator := maxIndex - expected
	if math.Abs(denominator) < 1e-12 {
		return 1.0
	}
	return (sumNij - expected) / denominator
}

// NormalizedMutualInformation is I(T;P) divided by the arithmetic mean of the
// two entropies. Two single-cluster partitions score 1.
func NormalizedMutualInformation(m *ContingencyMatrix) float64 {
	total := m.Total()
	if total == 0 {
		return math.NaN()
	}
	n := float64(total)
	rowSums, colSums := m.RowSums(), m.ColSums()

	rows, cols := m.Dims()
	var mi float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			nij := float64(m.At(i, j))
			if nij == 0 {
				continue
			}
			mi += nij / n * math.Log2(nij*n/(rowSums[i]*colSums[j]))
		}
	}

	avg := (entropy(rowSums, n) + entropy(colSums, n)) / 2
	if avg == 0 {
		return 1.0
	}
	return mi / avg
}

// VariationOfInformation is H(T|P) + H(P|T) in bits. 0 means identical
// partitions.
func VariationOfInformation(m *ContingencyMatrix) float64 {
	total := m.Total()
	if total == 0 {
		return math.NaN()
	}
	n := float64(total)
	rowSums, colSums := m.RowSums(), m.ColSums()

	rows, cols := m.Dims()
	var vi float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			nij := float64(m.At(i, j))
			if nij == 0 {
				continue
			}
			p := nij / n
			vi -= p * (math.Log2(nij/colSums[j]) + math.Log2(nij/rowSums[i]))
		}
	}
	return vi
}

// entropy in bits of the distribution counts/n.
func entropy(counts []float64, n float64) float64 {
	p := floats.ScaleTo(make([]float64, len(counts)), 1/n, counts)
	terms := make([]float64, 0, len(p))
	for _, pi := range p {
		if pi > 0 {
			terms = append(terms, -pi*math.Log2(pi))
		}
	}
	return floats.Sum(terms)
}

func comb2(n float64) float64 {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
