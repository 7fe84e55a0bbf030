package linalg

import "fmt"

// Vector is a fixed-size vector of float64 values, either Dense or Sparse.
type Vector interface {
	// Size returns the logical dimension of the vector. O(1).
	Size() int
	// Clone returns a deep copy of the vector.
	Clone() Vector
	// ToDense materializes the vector as a Dense vector.
	ToDense() *Dense
}

// Dense is a vector backed by a contiguous float64 slice, explicit zeros
// included. The size is fixed at construction.
type Dense struct {
	Values []float64
}

// NewDense creates a zero-initialized dense vector of the given size.
func NewDense(size int) *Dense {
	return &Dense{Values: make([]float64, size)}
}

// NewDenseFromValues creates a dense vector owning the given values.
// The slice is not copied; the caller hands over ownership.
func NewDenseFromValues(values ...float64) *Dense {
	return &Dense{Values: values}
}

// Size returns the dimension of the vector.
func (d *Dense) Size() int {
	return len(d.Values)
}

// Clone returns a deep copy.
func (d *Dense) Clone() Vector {
	values := make([]float64, len(d.Values))
	copy(values, d.Values)
	return &Dense{Values: values}
}

// ToDense returns a dense copy of the vector.
func (d *Dense) ToDense() *Dense {
	return d.Clone().(*Dense)
}

// String returns a compact representation for logs and test failures.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense%v", d.Values)
}

// Sparse is a vector represented by its stored entries only. Indices must be
// strictly increasing and unique; this is a caller precondition and is NOT
// re-checked by the kernel. The merge-based algorithms in the blas package
// silently produce wrong results when it is violated, so construct sparse
// vectors from sorted data or use NewSparseFromBitmap.
type Sparse struct {
	// N is the logical dimension of the vector.
	N int
	// Indices holds the positions of the stored entries, sorted ascending.
	Indices []int
	// Values holds the stored entries, parallel to Indices.
	Values []float64
}

// NewSparse creates a sparse vector of dimension n with the given stored
// entries. It validates the structural shape (parallel lengths, indices in
// [0, n)) but does not sort or de-duplicate.
func NewSparse(n int, indices []int, values []float64) (*Sparse, error) {
	if len(indices) != len(values) {
		return nil, &ErrShape{Reason: fmt.Sprintf("sparse indices/values length mismatch: %d != %d", len(indices), len(values))}
	}
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, &ErrShape{Reason: fmt.Sprintf("sparse index %d out of range [0, %d)", idx, n)}
		}
	}
	return &Sparse{N: n, Indices: indices, Values: values}, nil
}

// Size returns the logical dimension of the vector.
func (s *Sparse) Size() int {
	return s.N
}

// Clone returns a deep copy.
func (s *Sparse) Clone() Vector {
	indices := make([]int, len(s.Indices))
	copy(indices, s.Indices)
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Sparse{N: s.N, Indices: indices, Values: values}
}

// ToDense materializes the vector, filling unstored positions with zero.
func (s *Sparse) ToDense() *Dense {
	d := NewDense(s.N)
	for i, idx := range s.Indices {
		d.Values[idx] = s.Values[i]
	}
	return d
}

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int {
	return len(s.Indices)
}

// String returns a compact representation for logs and test failures.
func (s *Sparse) String() string {
	return fmt.Sprintf("Sparse(n=%d, indices=%v, values=%v)", s.N, s.Indices, s.Values)
}
