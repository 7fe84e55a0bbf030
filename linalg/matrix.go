package linalg

import "fmt"

// DenseMatrix is a dense Rows×Cols matrix backed by a flat column-major
// buffer: element (i, j) lives at Values[i + j*Rows]. Column-major matches
// the native BLAS convention so gemv can walk the buffer directly.
type DenseMatrix struct {
	Rows   int
	Cols   int
	Values []float64
}

// NewDenseMatrix creates a matrix over the given column-major buffer.
// The buffer length must equal rows*cols.
func NewDenseMatrix(rows, cols int, values []float64) (*DenseMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, &ErrShape{Reason: fmt.Sprintf("negative matrix dimensions %dx%d", rows, cols)}
	}
	if rows*cols != len(values) {
		return nil, &ErrShape{Reason: fmt.Sprintf("matrix buffer length %d does not match %dx%d", len(values), rows, cols)}
	}
	return &DenseMatrix{Rows: rows, Cols: cols, Values: values}, nil
}

// NewZeroMatrix creates a zero-initialized rows×cols matrix.
func NewZeroMatrix(rows, cols int) *DenseMatrix {
	return &DenseMatrix{Rows: rows, Cols: cols, Values: make([]float64, rows*cols)}
}

// At returns the element at row i, column j. No bounds check; callers index
// within [0, Rows)×[0, Cols).
func (m *DenseMatrix) At(i, j int) float64 {
	return m.Values[i+j*m.Rows]
}

// Set assigns the element at row i, column j.
func (m *DenseMatrix) Set(i, j int, v float64) {
	m.Values[i+j*m.Rows] = v
}

// Clone returns a deep copy of the matrix.
func (m *DenseMatrix) Clone() *DenseMatrix {
	values := make([]float64, len(m.Values))
	copy(values, m.Values)
	return &DenseMatrix{Rows: m.Rows, Cols: m.Cols, Values: values}
}
