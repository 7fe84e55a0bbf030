package linalg

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// NewSparseFromBitmap builds a sparse vector whose stored positions are the
// set bits of bm, paired with values in bitmap iteration order. Roaring
// bitmaps iterate in strictly increasing order without duplicates, so the
// result always satisfies the sorted-indices precondition.
func NewSparseFromBitmap(n int, bm *roaring.Bitmap, values []float64) (*Sparse, error) {
	card := int(bm.GetCardinality())
	if card != len(values) {
		return nil, &ErrShape{Reason: fmt.Sprintf("bitmap cardinality %d does not match %d values", card, len(values))}
	}
	indices := make([]int, 0, card)
	it := bm.Iterator()
	for it.HasNext() {
		idx := int(it.Next())
		if idx >= n {
			return nil, &ErrShape{Reason: fmt.Sprintf("bitmap index %d out of range [0, %d)", idx, n)}
		}
		indices = append(indices, idx)
	}
	return &Sparse{N: n, Indices: indices, Values: values}, nil
}
