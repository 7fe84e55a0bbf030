package linalg

// ErrShape indicates a structurally invalid construction: mismatched parallel
// slice lengths, out-of-range sparse indices, or a matrix buffer whose length
// disagrees with its declared dimensions.
type ErrShape struct {
	Reason string
}

func (e *ErrShape) Error() string {
	return "invalid shape: " + e.Reason
}
