package checkpoint

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType selects the block compression applied to snapshot payloads.
type CompressionType uint8

const (
	// CompressionNone stores payloads raw.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses zstd (better ratio, still fast to decode).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) valid() bool {
	return c <= CompressionZSTD
}

// zstd encoders/decoders are expensive to construct, so they are pooled.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

const blockHeaderSize = 8

// writeBlock compresses data with the given algorithm and writes one block
// (header plus payload) to w. Payloads that do not shrink are stored raw so
// decompression never pays for incompressible data.
func writeBlock(w io.Writer, data []byte, compression CompressionType) error {
	compressed, err := compressBlock(data, compression)
	if err != nil {
		return err
	}

	var header [blockHeaderSize]byte
	binary.BigEndian.PutUint32(header[0:], uint32(len(data)))
	if compressed == nil {
		binary.BigEndian.PutUint32(header[4:], 0)
		compressed = data
	} else {
		binary.BigEndian.PutUint32(header[4:], uint32(len(compressed)))
	}

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

// readBlock reads one block from r and returns the uncompressed payload.
func readBlock(r io.Reader, compression CompressionType) ([]byte, error) {
	var header [blockHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading block header: %w", err)
	}

	uncompressedSize := binary.BigEndian.Uint32(header[0:])
	compressedSize := binary.BigEndian.Uint32(header[4:])

	if compressedSize == 0 {
		data := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("reading raw block: %w", err)
		}
		return data, nil
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("reading compressed block: %w", err)
	}

	switch compression {
	case CompressionLZ4:
		data := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(compressed, data)
		if err != nil {
			return nil, err
		}
		if n != int(uncompressedSize) {
			return nil, fmt.Errorf("lz4 block decompressed to %d bytes, expected %d", n, uncompressedSize)
		}
		return data, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(compressed, make([]byte, 0, uncompressedSize))
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, compression)
	}
}

// compressBlock returns the compressed payload, or nil when the data should
// be stored raw (no compression requested or the result did not shrink).
func compressBlock(data []byte, compression CompressionType) ([]byte, error) {
	if compression == CompressionNone || len(data) == 0 {
		return nil, nil
	}

	switch compression {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		compressed := make([]byte, bound)
		n, err := lz4.CompressBlock(data, compressed, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 || n >= len(data) {
			return nil, nil // incompressible
		}
		return compressed[:n], nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		compressed := enc.EncodeAll(data, nil)
		if len(compressed) >= len(data) {
			return nil, nil
		}
		return compressed, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, compression)
	}
}
