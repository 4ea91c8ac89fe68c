// Package digest computes short blake3 digests of binary encodings, used to
// back the Hash methods of the value types.
package digest

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Sum64 hashes p with blake3 and returns the first 8 bytes of the digest
// as a little-endian uint64.
func Sum64(p []byte) uint64 {
	hasher := blake3.New()
	hasher.Write(p)
	return binary.LittleEndian.Uint64(hasher.Sum(nil)[:8])
}
