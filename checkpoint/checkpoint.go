package checkpoint

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/paramio/paramio/blobstore"
)

// WriteSnapshot writes one artifact as a snapshot (header plus one block)
// onto w.
func WriteSnapshot(w io.Writer, artifact Artifact, compression CompressionType) error {
	if !compression.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCompression, compression)
	}

	// Encode before emitting anything so a failed artifact never leaves a
	// half-written snapshot behind.
	var payload bytes.Buffer
	if err := artifact.EncodeModelData(&payload); err != nil {
		return err
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: compression,
	}
	if err := binary.Write(w, binary.BigEndian, &header); err != nil {
		return err
	}
	return writeBlock(w, payload.Bytes(), compression)
}

// ReadSnapshot reads one snapshot from r and decodes it into artifact.
func ReadSnapshot(r io.Reader, artifact Artifact) error {
	var header FileHeader
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return fmt.Errorf("reading snapshot header: %w", err)
	}
	if header.Magic != MagicNumber {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if !header.Compression.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCompression, header.Compression)
	}

	payload, err := readBlock(r, header.Compression)
	if err != nil {
		return err
	}
	return artifact.DecodeModelData(bytes.NewReader(payload))
}

// Save writes one artifact snapshot to the named blob. The snapshot is built
// in memory and stored with an atomic Put, so a failed encode never replaces
// an existing checkpoint.
func Save(ctx context.Context, store blobstore.BlobStore, name string, artifact Artifact, compression CompressionType) error {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, artifact, compression); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Load reads the named snapshot blob into artifact.
func Load(ctx context.Context, store blobstore.BlobStore, name string, artifact Artifact) error {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return err
	}
	defer func() { _ = blob.Close() }()

	r, err := blob.Reader(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	return ReadSnapshot(r, artifact)
}

// SequenceName returns the blob name of checkpoint seq under prefix. Names
// sort lexicographically in sequence order, so History needs no manifest.
func SequenceName(prefix string, seq uint64) string {
	return fmt.Sprintf("%s-%020d", prefix, seq)
}

// History lists the checkpoint blobs under prefix, oldest first.
func History(ctx context.Context, store blobstore.BlobStore, prefix string) ([]string, error) {
	names, err := store.List(ctx, prefix+"-")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads every named snapshot concurrently, preserving order. The
// factory produces one empty artifact per name for the decode path.
func LoadAll(ctx context.Context, store blobstore.BlobStore, names []string, factory func() Artifact) ([]Artifact, error) {
	artifacts := make([]Artifact, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			a := factory()
			if err := Load(gctx, store, name, a); err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
			artifacts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// LoadLatest loads the newest checkpoint under prefix into artifact. It
// returns blobstore.ErrNotFound when no checkpoint exists.
func LoadLatest(ctx context.Context, store blobstore.BlobStore, prefix string, artifact Artifact) error {
	names, err := History(ctx, store, prefix)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return blobstore.ErrNotFound
	}
	return Load(ctx, store, names[len(names)-1], artifact)
}
