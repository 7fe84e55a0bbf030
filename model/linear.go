package model

import (
	"errors"
	"io"

	"github.com/paramio/paramio/codec"
	"github.com/paramio/paramio/linalg"
)

// LinearModelData holds the fitted parameters of a linear model: a single
// coefficient vector. The zero value is the decode-path shape; populate it
// with DecodeModelData.
type LinearModelData struct {
	Coefficient *linalg.Dense
}

// NewLinearModelData creates a fully populated artifact (the compute path).
func NewLinearModelData(coefficient *linalg.Dense) *LinearModelData {
	return &LinearModelData{Coefficient: coefficient}
}

// LinearModelDataFromRow extracts the coefficient vector from field 0 of a
// runtime row.
func LinearModelDataFromRow(row Row) (*LinearModelData, error) {
	coefficient, err := row.DenseAt(0)
	if err != nil {
		return nil, err
	}
	return NewLinearModelData(coefficient), nil
}

// EncodeModelData writes the artifact as one coefficient record.
func (m *LinearModelData) EncodeModelData(w io.Writer) error {
	return codec.NewWriter(w).WriteDense(m.Coefficient)
}

// DecodeModelData populates the artifact from the next record of r.
//
// It returns io.EOF when the stream is exhausted at an artifact boundary,
// which lets callers loop over a concatenated history of artifacts.
func (m *LinearModelData) DecodeModelData(r io.Reader) error {
	coefficient, err := codec.NewReader(r).ReadDense()
	if err != nil {
		return err
	}
	m.Coefficient = coefficient
	return nil
}

// Equal reports field-wise equality; artifacts have no identity beyond it.
func (m *LinearModelData) Equal(other *LinearModelData) bool {
	if other == nil {
		return false
	}
	return denseEqual(m.Coefficient, other.Coefficient)
}

func denseEqual(a, b *linalg.Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	return true
}

// ReadLinearModelData decodes artifacts from r until the stream is exhausted.
// The last artifact of a checkpoint history is the current one.
func ReadLinearModelData(r io.Reader) ([]*LinearModelData, error) {
	var out []*LinearModelData
	for {
		m := &LinearModelData{}
		if err := m.DecodeModelData(r); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, m)
	}
}
