package perf

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"gonum.org/v1/gonum/mat"
)

// ContingencyMatrix counts (true, predicted) pairs. Rows are true classes,
// columns are predicted classes. Counts only grow.
type ContingencyMatrix struct {
	m *mat.Dense
}

func NewContingencyMatrix(rows, cols int) (*ContingencyMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, apperr.NewValidation(fmt.Sprintf("contingency matrix dimensions must be positive, got %dx%d", rows, cols))
	}
	return &ContingencyMatrix{m: mat.NewDense(rows, cols, nil)}, nil
}

// NewContingencyMatrixFromCounts builds a matrix from row-major counts. Rows
// must be non-empty, of equal length and non-negative.
func NewContingencyMatrixFromCounts(counts [][]int) (*ContingencyMatrix, error) {
	if len(counts) == 0 || len(counts[0]) == 0 {
		return nil, apperr.NewValidation("contingency counts must be non-empty")
	}
	rows, cols := len(counts), len(counts[0])
	data := make([]float64, 0, rows*cols)
	for i, row := range counts {
		if len(row) != cols {
			return nil, apperr.NewValidation(fmt.Sprintf("row %d has %d columns, want %d", i, len(row), cols))
		}
		for j, v := range row {
			if v < 0 {
				return nil, apperr.NewValidation(fmt.Sprintf("negative count %d at [%d][%d]", v, i, j))
			}
			data = append(data, float64(v))
		}
	}
	return &ContingencyMatrix{m: mat.NewDense(rows, cols, data)}, nil
}

func (c *ContingencyMatrix) Dims() (rows, cols int) {
	return c.m.Dims()
}

func (c *ContingencyMatrix) At(trueIdx, predictedIdx int) int {
	return int(c.m.At(trueIdx, predictedIdx))
}

func (c *ContingencyMatrix) increment(trueIdx, predictedIdx int) {
	c.m.Set(trueIdx, predictedIdx, c.m.At(trueIdx, predictedIdx)+1)
}

// Total is the number of scored trajectories.
func (c *ContingencyMatrix) Total() int {
	return int(mat.Sum(c.m))
}

// Diagonal sums cells whose true and predicted index coincide.
func (c *ContingencyMatrix) Diagonal() int {
	rows, cols := c.m.Dims()
	var d float64
	for i := 0; i < min(rows, cols); i++ {
		d += c.m.At(i, i)
	}
	return int(d)
}

func (c *ContingencyMatrix) RowSums() []float64 {
	rows, _ := c.m.Dims()
	sums := make([]float64, rows)
	for i := range sums {
		sums[i] = mat.Sum(c.m.RowView(i))
	}
	return sums
}

func (c *ContingencyMatrix) ColSums() []float64 {
	_, cols := c.m.Dims()
	sums := make([]float64, cols)
	for j := range sums {
		sums[j] = mat.Sum(c.m.ColView(j))
	}
	return sums
}

func (c *ContingencyMatrix) Clone() *ContingencyMatrix {
	return &ContingencyMatrix{m: mat.DenseCopyOf(c.m)}
}

// Counts returns the matrix as row-major integer counts.
func (c *ContingencyMatrix) Counts() [][]int {
	rows, cols := c.m.Dims()
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
		for j := range out[i] {
			out[i][j] = int(c.m.At(i, j))
		}
	}
	return out
}

func (c *ContingencyMatrix) Equal(o *ContingencyMatrix) bool {
	if o == nil {
		return false
	}
	return mat.Equal(c.m, o.m)
}

func (c *ContingencyMatrix) sameShape(o *ContingencyMatrix) bool {
	r1, c1 := c.m.Dims()
	r2, c2 := o.m.Dims()
	return r1 == r2 && c1 == c2
}

func (c *ContingencyMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Counts())
}

func (c *ContingencyMatrix) UnmarshalJSON(data []byte) error {
	var counts [][]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return err
	}
	parsed, err := NewContingencyMatrixFromCounts(counts)
	if err != nil {
		return err
	}
	c.m = parsed.m
	return nil
}

// SumMatrices pools matrices elementwise. All matrices must share a shape.
func SumMatrices(ms ...*ContingencyMatrix) (*ContingencyMatrix, error) {
	if len(ms) == 0 {
		return nil, apperr.NewValidation("no matrices to sum")
	}
	sum := ms[0].Clone()
	for i, m := range ms[1:] {
		if !sum.sameShape(m) {
			r1, c1 := sum.Dims()
			r2, c2 := m.Dims()
			return nil, apperr.NewValidation(fmt.Sprintf("matrix %d is %dx%d, want %dx%d", i+1, r2, c2, r1, c1))
		}
		sum.m.Add(sum.m, m.m)
	}
	return sum, nil
}
