package buffer

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteRead/Buffer", func(t *testing.T) {
		buf := NewBufferSize(17)

		_, err := WriteUint8(buf, 0x2a)
		require.NoError(t, err)
		_, err = WriteUint64(buf, 0x0102030405060708)
		require.NoError(t, err)
		_, err = WriteFloat64(buf, math.Copysign(0, -1))
		require.NoError(t, err)
		require.Equal(t, 0, buf.Available())

		var c8 uint8
		var c64 uint64
		var f64 float64

		_, err = ReadUint8(buf, &c8)
		require.NoError(t, err)
		_, err = ReadUint64(buf, &c64)
		require.NoError(t, err)
		_, err = ReadFloat64(buf, &f64)
		require.NoError(t, err)

		require.Equal(t, uint8(0x2a), c8)
		require.Equal(t, uint64(0x0102030405060708), c64)
		require.True(t, math.Signbit(f64))
		require.Equal(t, 0, buf.Buffered())
	})

	t.Run("WriteRead/Bufio", func(t *testing.T) {
		var out bytes.Buffer
		w := bufio.NewWriter(&out)

		_, err := WriteFloat64(w, math.Inf(-1))
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, 8, out.Len())

		var f64 float64
		_, err = ReadFloat64(bufio.NewReader(&out), &f64)
		require.NoError(t, err)
		require.True(t, math.IsInf(f64, -1))
	})

	t.Run("LittleEndian", func(t *testing.T) {
		buf := NewBufferSize(8)
		_, err := WriteUint64(buf, 1)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, buf.Bytes())
	})

	t.Run("Overflow", func(t *testing.T) {
		buf := NewBufferSize(7)
		_, err := WriteUint64(buf, 1)
		require.Error(t, err)
	})

	t.Run("ShortRead", func(t *testing.T) {
		var c uint64
		_, err := ReadUint64(NewBuffer([]byte{1, 2, 3}), &c)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("NilTarget", func(t *testing.T) {
		_, err := ReadFloat64(NewBuffer(make([]byte, 8)), nil)
		require.Error(t, err)
	})
}
