// Package paramio persists and serves trained-model parameters.
//
// The building blocks live in subpackages: linalg (vector and matrix types),
// blas (numeric kernel), codec (vector wire format), model (artifacts),
// blobstore (durable storage), checkpoint (snapshot container) and scorer
// (inference). This package ties them together behind a Manager that saves,
// checkpoints and reloads artifacts against any BlobStore.
//
//	store := blobstore.NewMemoryStore()
//	mgr := paramio.NewManager(store, paramio.WithCompression(checkpoint.CompressionZSTD))
//
//	data := model.NewLinearModelData(coefficients)
//	if _, err := mgr.Checkpoint(ctx, "linear", data); err != nil { ... }
//
//	var latest model.LinearModelData
//	if err := mgr.LoadLatest(ctx, "linear", &latest); err != nil { ... }
package paramio
