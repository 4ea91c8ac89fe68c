package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint8 writes a byte c to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {

	if w.Available() == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() == 0 {
			return 0, fmt.Errorf("cannot WriteUint8: available buffer is zero even after flush")
		}
	}

	nint, err := w.Write(append(w.AvailableBuffer(), c))

	return int64(nint), err
}

// WriteUint64 writes an uint64 c into w, little-endian.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	nint, err := w.Write(binary.LittleEndian.AppendUint64(w.AvailableBuffer(), c))

	return int64(nint), err
}

// WriteFloat64 writes the IEEE 754 bits of c into w.
// The bits are written as-is: NaN payloads and the sign of zero survive.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}
