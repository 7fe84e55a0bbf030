// Package linalg defines the dense and sparse vector and dense matrix value
// types shared by the blas kernel, the codec and the model artifacts.
//
// All types are passive data containers: they carry values and shape, nothing
// else. Numeric work on them lives in the blas package.
package linalg
