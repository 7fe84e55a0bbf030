package scorer

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramio/paramio/blas"
	"github.com/paramio/paramio/linalg"
	"github.com/paramio/paramio/model"
)

func TestLinearModelMargin(t *testing.T) {
	data := model.NewLinearModelData(linalg.NewDenseFromValues(1, -2, 0.5))
	m, err := NewLinearModel(data, nil)
	require.NoError(t, err)

	t.Run("Dense features", func(t *testing.T) {
		margin, err := m.Margin(linalg.NewDenseFromValues(2, 1, 4))
		require.NoError(t, err)
		assert.InDelta(t, 2.0, margin, 1e-12)
	})

	t.Run("Sparse features match dense", func(t *testing.T) {
		sparse, err := linalg.NewSparse(3, []int{0, 2}, []float64{2, 4})
		require.NoError(t, err)

		sparseMargin, err := m.Margin(sparse)
		require.NoError(t, err)
		denseMargin, err := m.Margin(sparse.ToDense())
		require.NoError(t, err)
		assert.InDelta(t, denseMargin, sparseMargin, 1e-12)
	})

	t.Run("Size mismatch", func(t *testing.T) {
		_, err := m.Margin(linalg.NewDense(2))
		var mismatch *blas.ErrSizeMismatch
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestLinearModelPredict(t *testing.T) {
	data := model.NewLinearModelData(linalg.NewDenseFromValues(1))
	m, err := NewLinearModel(data, nil)
	require.NoError(t, err)

	p, err := m.Predict(linalg.NewDenseFromValues(0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12, "zero margin is an even split")

	p, err = m.Predict(linalg.NewDenseFromValues(100))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestNewLinearModelRequiresCoefficient(t *testing.T) {
	_, err := NewLinearModel(&model.LinearModelData{}, nil)
	assert.Error(t, err)
	_, err = NewLinearModel(nil, nil)
	assert.Error(t, err)
}

func TestStandardScalerTransform(t *testing.T) {
	data := model.NewStandardScalerModelData(
		linalg.NewDenseFromValues(10, 20, 30),
		linalg.NewDenseFromValues(2, 5, 0),
	)
	s, err := NewStandardScaler(data, nil)
	require.NoError(t, err)

	x := linalg.NewDenseFromValues(14, 20, 31)
	require.NoError(t, s.Transform(x))

	assert.InDelta(t, 2.0, x.Values[0], 1e-12)
	assert.InDelta(t, 0.0, x.Values[1], 1e-12)
	assert.InDelta(t, 1.0, x.Values[2], 1e-12, "zero std passes the centered value through")
}

func TestStandardScalerValidation(t *testing.T) {
	_, err := NewStandardScaler(&model.StandardScalerModelData{}, nil)
	assert.Error(t, err)

	mismatched := model.NewStandardScalerModelData(linalg.NewDense(2), linalg.NewDense(3))
	_, err = NewStandardScaler(mismatched, nil)
	var mismatch *blas.ErrSizeMismatch
	assert.ErrorAs(t, err, &mismatch)

	s, err := NewStandardScaler(model.NewStandardScalerModelData(linalg.NewDense(2), linalg.NewDense(2)), nil)
	require.NoError(t, err)
	err = s.Transform(linalg.NewDense(5))
	assert.ErrorAs(t, err, &mismatch)
}

func TestBatchScorerPredict(t *testing.T) {
	data := model.NewLinearModelData(linalg.NewDenseFromValues(1, 1))
	m, err := NewLinearModel(data, nil)
	require.NoError(t, err)

	b := NewBatchScorer(m, BatchConfig{MaxConcurrent: 4})

	rows := make([]linalg.Vector, 32)
	expected := make([]float64, 32)
	for i := range rows {
		v := float64(i%7) - 3
		rows[i] = linalg.NewDenseFromValues(v, 0)
		expected[i] = 1 / (1 + math.Exp(-v))
	}

	got, err := b.Predict(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, got, len(rows))
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], 1e-12, "row %d", i)
	}
}

func TestBatchScorerRowErrorCancelsBatch(t *testing.T) {
	data := model.NewLinearModelData(linalg.NewDenseFromValues(1, 1))
	m, err := NewLinearModel(data, nil)
	require.NoError(t, err)

	b := NewBatchScorer(m, BatchConfig{MaxConcurrent: 2})

	rows := []linalg.Vector{
		linalg.NewDenseFromValues(1, 2),
		linalg.NewDense(5), // wrong dimension
		linalg.NewDenseFromValues(3, 4),
	}

	_, err = b.Predict(context.Background(), rows)
	var mismatch *blas.ErrSizeMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestBatchScorerContextCancellation(t *testing.T) {
	data := model.NewLinearModelData(linalg.NewDenseFromValues(1))
	m, err := NewLinearModel(data, nil)
	require.NoError(t, err)

	// A tiny rate forces the limiter to block, so cancellation surfaces.
	b := NewBatchScorer(m, BatchConfig{MaxConcurrent: 1, RowsPerSec: 0.001})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	rows := []linalg.Vector{
		linalg.NewDenseFromValues(1),
		linalg.NewDenseFromValues(2),
		linalg.NewDenseFromValues(3),
	}
	_, err = b.Predict(ctx, rows)
	assert.Error(t, err)
}
