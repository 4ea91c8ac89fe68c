package sampling

import (
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG expands a key into an unbounded stream of bytes with the blake2b
// XOF. Two KeyedPRNG built from the same key yield the same stream, so a test
// seeded with a fixed key draws the same inputs on every run.
// The stream order is only reproducible if Read is not called concurrently.
type KeyedPRNG struct {
	mu  sync.Mutex
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG returns a KeyedPRNG seeded with key. A nil key behaves like
// an empty key.
func NewKeyedPRNG(key []byte) (prng *KeyedPRNG, err error) {
	prng = &KeyedPRNG{key: append([]byte{}, key...)}
	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key); err != nil {
		return nil, err
	}
	return prng, nil
}

// Key returns a copy of the seed of prng.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read fills p with the next bytes of the stream.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(p)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	prng.xof.Reset()
}
