package paramio

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paramio/paramio/blobstore"
	"github.com/paramio/paramio/checkpoint"
)

// Manager saves, checkpoints and reloads model artifacts against a blob
// store. It is immutable after construction and safe for concurrent use as
// long as distinct calls target distinct artifacts (the underlying stores
// are themselves thread-safe).
type Manager struct {
	store       blobstore.BlobStore
	compression checkpoint.CompressionType
	logger      *Logger
}

// NewManager creates a Manager over the given store.
func NewManager(store blobstore.BlobStore, optFns ...Option) *Manager {
	opts := options{
		compression: checkpoint.CompressionZSTD,
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Manager{
		store:       store,
		compression: opts.compression,
		logger:      opts.logger,
	}
}

// SaveModel writes one artifact snapshot under the given name, replacing any
// previous snapshot with that name.
func (m *Manager) SaveModel(ctx context.Context, name string, artifact checkpoint.Artifact) error {
	if err := checkpoint.Save(ctx, m.store, name, artifact, m.compression); err != nil {
		return fmt.Errorf("saving model %q: %w", name, err)
	}
	m.logger.InfoContext(ctx, "model saved", "name", name, "compression", int(m.compression))
	return nil
}

// LoadModel reads the named snapshot into artifact.
func (m *Manager) LoadModel(ctx context.Context, name string, artifact checkpoint.Artifact) error {
	if err := checkpoint.Load(ctx, m.store, name, artifact); err != nil {
		return fmt.Errorf("loading model %q: %w", name, err)
	}
	return nil
}

// Checkpoint appends a new snapshot to the named checkpoint sequence and
// returns its sequence number. Earlier snapshots are retained as history.
func (m *Manager) Checkpoint(ctx context.Context, prefix string, artifact checkpoint.Artifact) (uint64, error) {
	seq, err := m.nextSequence(ctx, prefix)
	if err != nil {
		return 0, err
	}

	name := checkpoint.SequenceName(prefix, seq)
	if err := checkpoint.Save(ctx, m.store, name, artifact, m.compression); err != nil {
		return 0, fmt.Errorf("checkpointing %q: %w", name, err)
	}
	m.logger.InfoContext(ctx, "checkpoint written", "prefix", prefix, "seq", seq)
	return seq, nil
}

// LoadLatest reads the newest snapshot of the named checkpoint sequence.
func (m *Manager) LoadLatest(ctx context.Context, prefix string, artifact checkpoint.Artifact) error {
	if err := checkpoint.LoadLatest(ctx, m.store, prefix, artifact); err != nil {
		return fmt.Errorf("loading latest %q: %w", prefix, err)
	}
	return nil
}

// History returns the names of all snapshots in the sequence, oldest first.
func (m *Manager) History(ctx context.Context, prefix string) ([]string, error) {
	return checkpoint.History(ctx, m.store, prefix)
}

// LoadHistory loads every snapshot of the sequence in parallel, oldest
// first. The factory produces one empty artifact per snapshot.
func (m *Manager) LoadHistory(ctx context.Context, prefix string, factory func() checkpoint.Artifact) ([]checkpoint.Artifact, error) {
	names, err := m.History(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return checkpoint.LoadAll(ctx, m.store, names, factory)
}

// Prune deletes all but the newest keep snapshots of the sequence.
func (m *Manager) Prune(ctx context.Context, prefix string, keep int) error {
	names, err := m.History(ctx, prefix)
	if err != nil {
		return err
	}
	if keep < 0 {
		keep = 0
	}
	if len(names) <= keep {
		return nil
	}
	for _, name := range names[:len(names)-keep] {
		if err := m.store.Delete(ctx, name); err != nil {
			return fmt.Errorf("pruning %q: %w", name, err)
		}
		m.logger.InfoContext(ctx, "checkpoint pruned", "name", name)
	}
	return nil
}

func (m *Manager) nextSequence(ctx context.Context, prefix string) (uint64, error) {
	names, err := m.History(ctx, prefix)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return 1, nil
		}
		return 0, err
	}
	if len(names) == 0 {
		return 1, nil
	}

	last := names[len(names)-1]
	raw := strings.TrimPrefix(last, prefix+"-")
	seq, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed checkpoint name %q: %w", last, err)
	}
	return seq + 1, nil
}
