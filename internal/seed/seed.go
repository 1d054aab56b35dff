// Package seed derives independent deterministic seeds from a base
// seed, so generation steps that shuffle independently never share a
// random stream.
package seed

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Derive hashes the base seed together with a chain of labels into a
// new seed. The same inputs always produce the same output; changing
// any label, the label order, or the base produces an unrelated seed.
func Derive(base int64, labels ...string) int64 {
	h, _ := blake2b.New256(nil)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	h.Write(buf[:])
	for _, label := range labels {
		// Separator keeps ("ab","c") distinct from ("a","bc").
		h.Write([]byte{0})
		h.Write([]byte(label))
	}

	sum := h.Sum(nil)
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}
