package blas

import "fmt"

// ErrSizeMismatch indicates that the operands of a kernel call do not agree
// on dimensions. It is returned before any operand is mutated.
type ErrSizeMismatch struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("%s: vector size mismatched: expected %d, got %d", e.Op, e.Expected, e.Actual)
}
