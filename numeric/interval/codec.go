package interval

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/realline/mathematics/utils/buffer"
	"github.com/realline/mathematics/utils/digest"
)

const (
	flagEmpty   = 0
	flagBounded = 1
)

// BinarySize returns the size in bytes of the binary form of i.
func (i Interval) BinarySize() int {
	return 3 + 16
}

// WriteTo writes i on an io.Writer: a flag byte, the two endpoint types and
// the IEEE 754 bits of the two bounds. Every empty interval is written the
// same way. It implements the io.WriterTo interface.
//
// Unless w implements the buffer.Writer interface it is wrapped into a
// bufio.Writer.
func (i Interval) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		flag, lowerType, upperType, lower, upper := uint8(flagEmpty), BoundTypeOpen, BoundTypeOpen, math.NaN(), math.NaN()
		if i.bounded {
			flag, lowerType, upperType, lower, upper = flagBounded, i.lowerType, i.upperType, i.lower, i.upper
		}

		var inc int64

		for _, b := range []uint8{flag, uint8(lowerType), uint8(upperType)} {
			if inc, err = buffer.WriteUint8(w, b); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
			}
			n += inc
		}

		for _, f := range []float64{lower, upper} {
			if inc, err = buffer.WriteFloat64(w, f); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteFloat64: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return i.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads an interval written by WriteTo. The decoded endpoints go
// through New, so encodings violating the interval invariants are rejected.
// It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface it is wrapped into a
// bufio.Reader.
func (i *Interval) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var header [3]uint8

		for k := range header {
			if inc, err = buffer.ReadUint8(r, &header[k]); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
			}
			n += inc
		}

		var bounds [2]float64

		for k := range bounds {
			if inc, err = buffer.ReadFloat64(r, &bounds[k]); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadFloat64: %w", err)
			}
			n += inc
		}

		switch header[0] {
		case flagEmpty:
			*i = Empty()
			return n, nil
		case flagBounded:
			decoded, err := New(bounds[0], bounds[1], BoundType(header[1]), BoundType(header[2]))
			if err != nil {
				return n, fmt.Errorf("cannot ReadFrom: %w", err)
			}
			if !decoded.bounded {
				return n, fmt.Errorf("cannot ReadFrom: %w: bounded encoding of an empty interval", ErrInvalidArgument)
			}
			*i = decoded
			return n, nil
		default:
			return n, fmt.Errorf("cannot ReadFrom: unknown flag 0x%02x", header[0])
		}

	default:
		return i.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes i into a newly allocated slice of bytes.
func (i Interval) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(i.BinarySize())
	_, err = i.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or WriteTo.
func (i *Interval) UnmarshalBinary(p []byte) (err error) {
	_, err = i.ReadFrom(buffer.NewBuffer(p))
	return
}

// Hash returns a 64-bit digest of i consistent with Equal: all empty
// intervals share one hash.
func (i Interval) Hash() uint64 {
	var p [19]byte
	return digest.Sum64(i.appendBinary(p[:0]))
}

// appendBinary appends the encoding written by WriteTo to p.
func (i Interval) appendBinary(p []byte) []byte {
	if !i.bounded {
		p = append(p, flagEmpty, uint8(BoundTypeOpen), uint8(BoundTypeOpen))
		p = binary.LittleEndian.AppendUint64(p, math.Float64bits(math.NaN()))
		return binary.LittleEndian.AppendUint64(p, math.Float64bits(math.NaN()))
	}
	p = append(p, flagBounded, uint8(i.lowerType), uint8(i.upperType))
	p = binary.LittleEndian.AppendUint64(p, math.Float64bits(i.lower))
	return binary.LittleEndian.AppendUint64(p, math.Float64bits(i.upper))
}
