package linear

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/realline/mathematics/utils/buffer"
	"github.com/realline/mathematics/utils/digest"
)

// BinarySize returns the size in bytes of the binary form of f.
func (f Function) BinarySize() int {
	return 16
}

// WriteTo writes the IEEE 754 bits of a and b on an io.Writer.
// It implements the io.WriterTo interface.
//
// Unless w implements the buffer.Writer interface it is wrapped into a
// bufio.Writer.
func (f Function) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint64(w, bits(f.a)); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, bits(f.b)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return f.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads a function written by WriteTo and recomputes its
// monotonicity. It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface it is wrapped into a
// bufio.Reader.
func (f *Function) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var a, b float64

		if inc, err = buffer.ReadFloat64(r, &a); err != nil {
			return inc, fmt.Errorf("buffer.ReadFloat64: %w", err)
		}

		n += inc

		if inc, err = buffer.ReadFloat64(r, &b); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadFloat64: %w", err)
		}

		n += inc

		*f = Of(a, b)

		return n, nil

	default:
		return f.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes f into a newly allocated slice of bytes.
func (f Function) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(f.BinarySize())
	_, err = f.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or WriteTo.
func (f *Function) UnmarshalBinary(p []byte) (err error) {
	_, err = f.ReadFrom(buffer.NewBuffer(p))
	return
}

// Hash returns a 64-bit digest of f consistent with Equal.
func (f Function) Hash() uint64 {
	var p [16]byte
	return digest.Sum64(f.appendBinary(p[:0]))
}

// appendBinary appends the encoding written by WriteTo to p.
func (f Function) appendBinary(p []byte) []byte {
	p = binary.LittleEndian.AppendUint64(p, bits(f.a))
	return binary.LittleEndian.AppendUint64(p, bits(f.b))
}
