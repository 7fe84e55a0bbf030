// Package checkpoint persists model artifacts as compressed snapshot blobs
// and reads them back, including whole checkpoint histories.
//
// Snapshot layout:
//
//	header := magic:uint32 version:uint32 compression:uint8 reserved[7]
//	block  := uncompressedSize:uint32 compressedSize:uint32 data[...]
//
// All integers are big-endian, matching the vector record codec. A
// compressedSize of zero marks a block stored uncompressed.
package checkpoint

import (
	"errors"
	"io"
)

const (
	// MagicNumber identifies paramio snapshot blobs (ASCII: "PIO1").
	MagicNumber = 0x50494F31
	// Version is the current snapshot format version.
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported snapshot version")
	ErrInvalidCompression = errors.New("unknown compression type")
)

// FileHeader is the 16-byte header at the start of every snapshot blob.
type FileHeader struct {
	Magic       uint32
	Version     uint32
	Compression CompressionType
	Reserved    [7]byte
}

// Artifact is anything that serializes itself as a sequence of vector
// records. The model package's artifact types implement it.
type Artifact interface {
	EncodeModelData(w io.Writer) error
	DecodeModelData(r io.Reader) error
}
