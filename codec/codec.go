// Package codec implements the binary wire format for dense vector records.
//
// Each record is self-delimiting:
//
//	offset 0: int32   length  (big-endian)
//	offset 4: float64[length] (big-endian IEEE-754 bits)
//
// Records concatenate back-to-back with no separator, so a stream may hold
// zero, one or many of them (e.g. a history of checkpointed snapshots).
// Changing this layout is a breaking-change boundary: bytes persisted by
// older versions must keep decoding.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/paramio/paramio/linalg"
)

// ErrCorruptRecord is returned when a stream ends mid-record or a record
// header is malformed. The stream should not be trusted past this point.
//
// A clean end of stream at a record boundary is reported as io.EOF instead,
// so callers can loop "read until EOF" without mistaking truncation for
// legitimate completion.
var ErrCorruptRecord = errors.New("corrupt vector record")

const lengthSize = 4

// Writer encodes dense vectors onto an underlying stream. It keeps no state
// between records; a single Writer must not be shared by concurrent callers.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteDense writes exactly one record for v.
func (e *Writer) WriteDense(v *linalg.Dense) error {
	buf := make([]byte, lengthSize+8*len(v.Values))
	binary.BigEndian.PutUint32(buf, uint32(int32(len(v.Values))))
	for i, val := range v.Values {
		binary.BigEndian.PutUint64(buf[lengthSize+8*i:], math.Float64bits(val))
	}
	_, err := e.w.Write(buf)
	return err
}

// Reader decodes dense vector records from an underlying stream. A Reader
// must be driven by a single logical caller; concurrent ReadDense calls on
// the same Reader require external serialization.
type Reader struct {
	r       io.Reader
	scratch [lengthSize]byte
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadDense reads the next record and returns a freshly constructed vector.
//
// It returns io.EOF if the stream is exhausted at a record boundary (normal
// termination) and an error wrapping ErrCorruptRecord if the stream ends
// partway through a length field or payload.
func (d *Reader) ReadDense() (*linalg.Dense, error) {
	n, err := io.ReadFull(d.r, d.scratch[:])
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: truncated length field: %v", ErrCorruptRecord, err)
	}

	length := int32(binary.BigEndian.Uint32(d.scratch[:]))
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrCorruptRecord, length)
	}

	v := linalg.NewDense(int(length))
	if length == 0 {
		return v, nil
	}

	payload := make([]byte, 8*int(length))
	if _, err := io.ReadFull(d.r, payload); err != nil {
		return nil, fmt.Errorf("%w: truncated payload: %v", ErrCorruptRecord, err)
	}
	for i := range v.Values {
		v.Values[i] = math.Float64frombits(binary.BigEndian.Uint64(payload[8*i:]))
	}
	return v, nil
}
