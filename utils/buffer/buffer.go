// Package buffer reads and writes fixed-width little-endian values, such as
// the IEEE 754 bits of a float64, on buffered writers and readers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is implemented by writers that let the caller append directly to
// their internal buffer, such as *bufio.Writer and *Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is implemented by readers that buffer their input, such as
// *bufio.Reader and *Buffer. Codecs wrap any other io.Reader into a
// bufio.Reader before decoding.
type Reader interface {
	io.Reader
	Buffered() int
}

// Buffer is a Writer and Reader over a fixed-size byte slice.
// Writing past the end of the slice fails instead of growing it.
type Buffer struct {
	buf []byte
	w   int
	r   int
}

// NewBuffer returns a Buffer reading from p. Writes overwrite p from its
// first byte.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// NewBufferSize returns an empty Buffer holding up to size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write appends p to the written part of b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if need := b.w + len(p); need > len(b.buf) {
		return 0, fmt.Errorf("cannot Write: buffer too small (%d > %d)", need, len(b.buf))
	}
	n = copy(b.buf[b.w:], p)
	b.w += n
	return n, nil
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns a zero-length slice over the unwritten part of b.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.w:b.w]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.w
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.w]
}

// Read copies the unread bytes of b into p and returns io.EOF if they do not
// fill p.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.r:])
	b.r += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Buffered returns the number of bytes left to read.
func (b *Buffer) Buffered() int {
	return len(b.buf) - b.r
}
