package model

import (
	"fmt"

	"github.com/paramio/paramio/linalg"
)

// Row is one result row handed over by the external execution runtime: typed
// fields in a fixed order. The runtime's own row abstraction is converted to
// this shape at the boundary; nothing here depends on its scheduling or
// table machinery.
type Row []any

// VectorAt extracts field i as a vector of either variant.
func (r Row) VectorAt(i int) (linalg.Vector, error) {
	if i < 0 || i >= len(r) {
		return nil, fmt.Errorf("row field %d out of range [0, %d)", i, len(r))
	}
	v, ok := r[i].(linalg.Vector)
	if !ok {
		return nil, fmt.Errorf("row field %d is %T, not a vector", i, r[i])
	}
	return v, nil
}

// DenseAt extracts field i as a dense vector.
func (r Row) DenseAt(i int) (*linalg.Dense, error) {
	v, err := r.VectorAt(i)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*linalg.Dense)
	if !ok {
		return nil, fmt.Errorf("row field %d is %T, not a dense vector", i, v)
	}
	return d, nil
}
