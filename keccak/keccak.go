package keccak

import (
	"golang.org/x/crypto/sha3"

	"github.com/f3rmion/stark/felt"
)

// Size is the length of a Keccak-256 digest in bytes.
const Size = 32

// Selector names that map to the zero selector.
const (
	DefaultEntryPoint   = "__default__"
	L1DefaultEntryPoint = "__l1_default__"
)

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [Size]byte
	h.Sum(out[:0])
	return out
}

// Truncated returns the Keccak-256 digest of data with its 6 most
// significant bits cleared, as a field element.
func Truncated(data []byte) felt.Element {
	digest := Sum256(data)
	digest[0] &= 0x03
	var e felt.Element
	// 2^250 < P, so the masked digest is always canonical.
	if _, err := e.SetBytes(digest[:]); err != nil {
		panic("keccak: truncated digest is not a field element")
	}
	return e
}

// Selector returns the entry-point selector for a function name.
func Selector(name string) felt.Element {
	if name == DefaultEntryPoint || name == L1DefaultEntryPoint {
		return felt.Zero()
	}
	return Truncated([]byte(name))
}
