package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/stark/curve"
	"github.com/f3rmion/stark/felt"
)

// NonceGenerator supplies the per-signature nonce k.
// Different implementations trade determinism for resistance to fault
// and side-channel attacks.
type NonceGenerator interface {
	// Nonce returns k in [1, N) for signing msg with priv.
	// seed is 0 on the first attempt and counts up by one each time the
	// previous nonce produced an unusable signature.
	Nonce(priv *curve.Scalar, msg *felt.Element, seed uint64) (*curve.Scalar, error)
}

// RFC6979 implements NonceGenerator with the deterministic HMAC-SHA256
// construction of RFC 6979 section 3.2. The private key and the message
// hash are both encoded as 32 big-endian bytes, and a non-zero seed is
// passed as additional data with its leading zero bytes removed.
//
// The same key, message and seed always give the same nonce.
type RFC6979 struct{}

// Nonce implements NonceGenerator.Nonce.
func (RFC6979) Nonce(priv *curve.Scalar, msg *felt.Element, seed uint64) (*curve.Scalar, error) {
	return generateK(priv, msg, seedBytes(seed)), nil
}

const hedgeDomain = "stark-hedged-nonce"

// Hedged implements NonceGenerator by feeding fresh randomness into the
// RFC 6979 construction as additional data. Signatures stay valid if Rand
// is broken, but are no longer reproducible.
type Hedged struct {
	// Rand is the entropy source. It must not be nil.
	Rand io.Reader
}

// Nonce implements NonceGenerator.Nonce.
func (h *Hedged) Nonce(priv *curve.Scalar, msg *felt.Element, seed uint64) (*curve.Scalar, error) {
	var entropy [32]byte
	if _, err := io.ReadFull(h.Rand, entropy[:]); err != nil {
		return nil, fmt.Errorf("reading nonce entropy: %w", err)
	}
	data := make([]byte, 0, len(hedgeDomain)+len(entropy)+8)
	data = append(data, hedgeDomain...)
	data = append(data, entropy[:]...)
	data = binary.BigEndian.AppendUint64(data, seed)
	extra := blake2b.Sum256(data)
	return generateK(priv, msg, extra[:]), nil
}

// seedBytes returns the big-endian encoding of seed without leading zeros.
// A zero seed encodes as no data at all.
func seedBytes(seed uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	return bytes.TrimLeft(buf[:], "\x00")
}

// generateK runs the HMAC-DRBG of RFC 6979 section 3.2 with SHA-256.
// Candidates are the top 252 bits of each 256-bit output, and the first
// one in [1, N) is returned.
func generateK(priv *curve.Scalar, msg *felt.Element, extra []byte) *curve.Scalar {
	x := priv.Bytes()
	h := msg.Bytes()

	v := bytes.Repeat([]byte{0x01}, sha256.Size)
	k := make([]byte, sha256.Size)

	k = mac(k, v, []byte{0x00}, x[:], h[:], extra)
	v = mac(k, v)
	k = mac(k, v, []byte{0x01}, x[:], h[:], extra)
	v = mac(k, v)

	var candidate [curve.ScalarBytes]byte
	for {
		v = mac(k, v)
		shiftRight4(candidate[:], v)
		var s curve.Scalar
		if _, err := s.SetBytes(candidate[:]); err == nil && !s.IsZero() {
			return &s
		}
		k = mac(k, v, []byte{0x00})
		v = mac(k, v)
	}
}

func mac(key []byte, parts ...[]byte) []byte {
	m := hmac.New(sha256.New, key)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

// shiftRight4 writes src >> 4 into dst. Both are 32-byte big-endian.
func shiftRight4(dst, src []byte) {
	var carry byte
	for i := range src {
		dst[i] = carry<<4 | src[i]>>4
		carry = src[i] & 0x0f
	}
}
