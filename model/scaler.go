package model

import (
	"errors"
	"fmt"
	"io"

	"github.com/paramio/paramio/codec"
	"github.com/paramio/paramio/linalg"
)

// StandardScalerModelData holds the fitted parameters of a feature scaler.
// On the wire it is two records, mean then std; the order is significant and
// nothing is name-keyed.
type StandardScalerModelData struct {
	// Mean of each dimension.
	Mean *linalg.Dense
	// Std is the standard deviation of each dimension.
	Std *linalg.Dense
}

// NewStandardScalerModelData creates a fully populated artifact.
func NewStandardScalerModelData(mean, std *linalg.Dense) *StandardScalerModelData {
	return &StandardScalerModelData{Mean: mean, Std: std}
}

// StandardScalerModelDataFromRow extracts mean from field 0 and std from
// field 1 of a runtime row.
func StandardScalerModelDataFromRow(row Row) (*StandardScalerModelData, error) {
	mean, err := row.DenseAt(0)
	if err != nil {
		return nil, err
	}
	std, err := row.DenseAt(1)
	if err != nil {
		return nil, err
	}
	return NewStandardScalerModelData(mean, std), nil
}

// EncodeModelData writes the artifact as two back-to-back records.
func (m *StandardScalerModelData) EncodeModelData(w io.Writer) error {
	cw := codec.NewWriter(w)
	if err := cw.WriteDense(m.Mean); err != nil {
		return err
	}
	return cw.WriteDense(m.Std)
}

// DecodeModelData populates the artifact from the next two records of r.
//
// io.EOF before the first record is normal termination. A stream that ends
// between the two records holds half an artifact and is reported as
// corruption, not as a clean end.
func (m *StandardScalerModelData) DecodeModelData(r io.Reader) error {
	cr := codec.NewReader(r)
	mean, err := cr.ReadDense()
	if err != nil {
		return err
	}
	std, err := cr.ReadDense()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: artifact truncated after mean record", codec.ErrCorruptRecord)
		}
		return err
	}
	m.Mean = mean
	m.Std = std
	return nil
}

// Equal reports field-wise equality.
func (m *StandardScalerModelData) Equal(other *StandardScalerModelData) bool {
	if other == nil {
		return false
	}
	return denseEqual(m.Mean, other.Mean) && denseEqual(m.Std, other.Std)
}

// ReadStandardScalerModelData decodes artifacts from r until the stream is
// exhausted.
func ReadStandardScalerModelData(r io.Reader) ([]*StandardScalerModelData, error) {
	var out []*StandardScalerModelData
	for {
		m := &StandardScalerModelData{}
		if err := m.DecodeModelData(r); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, m)
	}
}
