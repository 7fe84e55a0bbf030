package blas

import "github.com/paramio/paramio/linalg"

// Asum returns the sum of absolute values of x.
func (k *Kernel) Asum(x *linalg.Dense) float64 {
	return k.backend.Dasum(x.Values)
}

// Dot returns the dot product of x and y.
func (k *Kernel) Dot(x, y *linalg.Dense) (float64, error) {
	if x.Size() != y.Size() {
		return 0, &ErrSizeMismatch{Op: "dot", Expected: x.Size(), Actual: y.Size()}
	}
	return k.backend.Ddot(x.Values, y.Values), nil
}

// Norm2 returns the Euclidean norm of x.
func (k *Kernel) Norm2(x *linalg.Dense) float64 {
	return k.backend.Dnrm2(x.Values)
}

// Scal scales x in place: x = a*x.
func (k *Kernel) Scal(a float64, x *linalg.Dense) {
	k.backend.Dscal(a, x.Values)
}

// Axpy accumulates y += a*x in place. A sparse x touches only its stored
// positions of y, so the cost is O(nnz(x)).
func (k *Kernel) Axpy(a float64, x linalg.Vector, y *linalg.Dense) error {
	if x.Size() != y.Size() {
		return &ErrSizeMismatch{Op: "axpy", Expected: y.Size(), Actual: x.Size()}
	}
	switch xv := x.(type) {
	case *linalg.Sparse:
		for i, idx := range xv.Indices {
			y.Values[idx] += a * xv.Values[i]
		}
	case *linalg.Dense:
		k.backend.Daxpy(a, xv.Values, y.Values)
	}
	return nil
}

// HDot computes the Hadamard product in place: y = y ⊙ x. The algorithm is
// chosen by the runtime variants of both operands; a sparse y stays sparse
// (its unstored positions are zero and a product with zero is zero).
func (k *Kernel) HDot(x, y linalg.Vector) error {
	if x.Size() != y.Size() {
		return &ErrSizeMismatch{Op: "hdot", Expected: y.Size(), Actual: x.Size()}
	}
	switch xv := x.(type) {
	case *linalg.Sparse:
		switch yv := y.(type) {
		case *linalg.Sparse:
			hDotSparseSparse(xv, yv)
		case *linalg.Dense:
			hDotSparseDense(xv, yv)
		}
	case *linalg.Dense:
		switch yv := y.(type) {
		case *linalg.Sparse:
			hDotDenseSparse(xv, yv)
		case *linalg.Dense:
			hDotDenseDense(xv, yv)
		}
	}
	return nil
}

// Gemv computes y = alpha*A*x + beta*y, or with A transposed. The dimension
// contract follows the flag: untransposed needs A.Rows==y.Size and
// A.Cols==x.Size, transposed needs A.Rows==x.Size and A.Cols==y.Size.
func (k *Kernel) Gemv(alpha float64, a *linalg.DenseMatrix, transA bool, x *linalg.Dense, beta float64, y *linalg.Dense) error {
	if transA {
		if a.Rows != x.Size() {
			return &ErrSizeMismatch{Op: "gemv", Expected: a.Rows, Actual: x.Size()}
		}
		if a.Cols != y.Size() {
			return &ErrSizeMismatch{Op: "gemv", Expected: a.Cols, Actual: y.Size()}
		}
	} else {
		if a.Rows != y.Size() {
			return &ErrSizeMismatch{Op: "gemv", Expected: a.Rows, Actual: y.Size()}
		}
		if a.Cols != x.Size() {
			return &ErrSizeMismatch{Op: "gemv", Expected: a.Cols, Actual: x.Size()}
		}
	}
	k.backend.Dgemv(transA, a.Rows, a.Cols, alpha, a.Values, x.Values, beta, y.Values)
	return nil
}

// hDotSparseSparse merges the two sorted index sequences with two pointers.
// y entries without a matching x index are zeroed (the implicit x value there
// is zero); matches multiply in place. O(nnz(x)+nnz(y)).
func hDotSparseSparse(x, y *linalg.Sparse) {
	idx, idy := 0, 0
	for idx < len(x.Indices) && idy < len(y.Indices) {
		indexX := x.Indices[idx]
		for idy < len(y.Indices) && y.Indices[idy] < indexX {
			y.Values[idy] = 0
			idy++
		}
		if idy < len(y.Indices) && y.Indices[idy] == indexX {
			y.Values[idy] *= x.Values[idx]
			idy++
		}
		idx++
	}
	for idy < len(y.Indices) {
		y.Values[idy] = 0
		idy++
	}
}

// hDotSparseDense walks y once, multiplying where x stores an index and
// zeroing everywhere else. O(size(y)).
func hDotSparseDense(x *linalg.Sparse, y *linalg.Dense) {
	idx := 0
	for i := range y.Values {
		if idx < len(x.Indices) && x.Indices[idx] == i {
			y.Values[i] *= x.Values[idx]
			idx++
		} else {
			y.Values[i] = 0
		}
	}
}

// hDotDenseSparse touches only y's stored positions. O(nnz(y)).
func hDotDenseSparse(x *linalg.Dense, y *linalg.Sparse) {
	for i := range y.Values {
		y.Values[i] *= x.Values[y.Indices[i]]
	}
}

func hDotDenseDense(x, y *linalg.Dense) {
	for i := range x.Values {
		y.Values[i] *= x.Values[i]
	}
}

// Package-level functions delegate to the process-wide default kernel.

// Asum returns the sum of absolute values of x.
func Asum(x *linalg.Dense) float64 { return defaultKernel.Asum(x) }

// Dot returns the dot product of x and y.
func Dot(x, y *linalg.Dense) (float64, error) { return defaultKernel.Dot(x, y) }

// Norm2 returns the Euclidean norm of x.
func Norm2(x *linalg.Dense) float64 { return defaultKernel.Norm2(x) }

// Scal scales x in place: x = a*x.
func Scal(a float64, x *linalg.Dense) { defaultKernel.Scal(a, x) }

// Axpy accumulates y += a*x in place.
func Axpy(a float64, x linalg.Vector, y *linalg.Dense) error { return defaultKernel.Axpy(a, x, y) }

// HDot computes y = y ⊙ x in place.
func HDot(x, y linalg.Vector) error { return defaultKernel.HDot(x, y) }

// Gemv computes y = alpha*A*x + beta*y, optionally with A transposed.
func Gemv(alpha float64, a *linalg.DenseMatrix, transA bool, x *linalg.Dense, beta float64, y *linalg.Dense) error {
	return defaultKernel.Gemv(alpha, a, transA, x, beta, y)
}
