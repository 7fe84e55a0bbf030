package paramio

import "github.com/paramio/paramio/checkpoint"

type options struct {
	compression checkpoint.CompressionType
	logger      *Logger
}

// Option configures a Manager.
type Option func(*options)

// WithCompression selects the block compression for saved snapshots.
// Snapshots written with any compression type can always be read back; the
// type is recorded in the snapshot header.
func WithCompression(c checkpoint.CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
