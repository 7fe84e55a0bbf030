// Package blas provides double-precision BLAS-style routines over the linalg
// vector and matrix types: asum, dot, norm2, scal, axpy, the Hadamard product
// and gemv.
//
// All operations are synchronous and mutate only the destination buffer named
// in the call, so independent calls are safe to run concurrently as long as
// no two of them target the same destination. Size checks run before any
// mutation; a failed call leaves both operands untouched.
//
// Dense inner loops are delegated to a Backend. The process-wide default is
// the pure-Go reference backend; tests and callers with an optimized native
// implementation can construct a Kernel around their own Backend instead.
package blas
