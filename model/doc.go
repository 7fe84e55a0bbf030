// Package model defines trained-model artifacts: named bundles of vectors
// produced once by a training computation and consumed read-only by scoring
// and persistence.
//
// Artifacts encode to the codec package's record stream with one record per
// vector field, back-to-back in field-declaration order. The wire carries no
// field names or artifact framing; readers know the record count per artifact
// type out of band.
package model
