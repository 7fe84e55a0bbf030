// Package scorer consumes trained model artifacts for inference: scaling
// feature vectors and scoring them against linear-model coefficients.
package scorer

import (
	"fmt"
	"math"

	"github.com/paramio/paramio/blas"
	"github.com/paramio/paramio/linalg"
	"github.com/paramio/paramio/model"
)

// LinearModel scores feature vectors against a fitted coefficient vector.
type LinearModel struct {
	kernel *blas.Kernel
	coeff  *linalg.Dense
}

// NewLinearModel creates a scorer over the artifact's coefficients. A nil
// kernel uses the process-wide default.
func NewLinearModel(data *model.LinearModelData, kernel *blas.Kernel) (*LinearModel, error) {
	if data == nil || data.Coefficient == nil {
		return nil, fmt.Errorf("linear model data has no coefficient vector")
	}
	if kernel == nil {
		kernel = blas.Default()
	}
	return &LinearModel{kernel: kernel, coeff: data.Coefficient}, nil
}

// Margin returns the raw score <features, coefficient>. Sparse features cost
// O(nnz) regardless of the model dimension.
func (m *LinearModel) Margin(features linalg.Vector) (float64, error) {
	switch fv := features.(type) {
	case *linalg.Dense:
		return m.kernel.Dot(fv, m.coeff)
	case *linalg.Sparse:
		if fv.Size() != m.coeff.Size() {
			return 0, &blas.ErrSizeMismatch{Op: "margin", Expected: m.coeff.Size(), Actual: fv.Size()}
		}
		var sum float64
		for i, idx := range fv.Indices {
			sum += fv.Values[i] * m.coeff.Values[idx]
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("unsupported vector variant %T", features)
	}
}

// Predict returns the positive-class probability, sigmoid of the margin.
func (m *LinearModel) Predict(features linalg.Vector) (float64, error) {
	margin, err := m.Margin(features)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + math.Exp(-margin)), nil
}

// Dimension returns the model's feature dimension.
func (m *LinearModel) Dimension() int {
	return m.coeff.Size()
}

// StandardScaler centers and scales feature vectors using fitted mean and
// standard deviation.
type StandardScaler struct {
	kernel *blas.Kernel
	mean   *linalg.Dense
	scale  *linalg.Dense
}

// NewStandardScaler creates a scaler over the artifact's statistics. The
// reciprocal of each std entry is precomputed; dimensions with zero std pass
// their centered value through unscaled (the convention for constant
// features).
func NewStandardScaler(data *model.StandardScalerModelData, kernel *blas.Kernel) (*StandardScaler, error) {
	if data == nil || data.Mean == nil || data.Std == nil {
		return nil, fmt.Errorf("scaler model data is not fully populated")
	}
	if data.Mean.Size() != data.Std.Size() {
		return nil, &blas.ErrSizeMismatch{Op: "scaler", Expected: data.Mean.Size(), Actual: data.Std.Size()}
	}
	if kernel == nil {
		kernel = blas.Default()
	}

	scale := linalg.NewDense(data.Std.Size())
	for i, std := range data.Std.Values {
		if std != 0 {
			scale.Values[i] = 1 / std
		} else {
			scale.Values[i] = 1
		}
	}

	return &StandardScaler{kernel: kernel, mean: data.Mean, scale: scale}, nil
}

// Transform standardizes features in place: x = (x - mean) ⊙ scale.
func (s *StandardScaler) Transform(features *linalg.Dense) error {
	if err := s.kernel.Axpy(-1, s.mean, features); err != nil {
		return err
	}
	return s.kernel.HDot(s.scale, features)
}

// Dimension returns the scaler's feature dimension.
func (s *StandardScaler) Dimension() int {
	return s.mean.Size()
}
