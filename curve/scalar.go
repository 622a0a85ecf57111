package curve

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"

	"github.com/f3rmion/stark/felt"
)

// ScalarBytes is the length of the big-endian encoding of a scalar.
const ScalarBytes = fr.Bytes

// orderMinusTwo is the Fermat exponent used by Invert.
var orderMinusTwo [ScalarBytes]byte

func init() {
	new(big.Int).Sub(fr.Modulus(), big.NewInt(2)).FillBytes(orderMinusTwo[:])
}

// Scalar is an integer modulo the curve order N.
//
// The zero value is 0. Arithmetic is performed by gnark-crypto's
// stark-curve fr package and every result is reduced modulo N.
type Scalar struct {
	inner fr.Element
}

// Order returns a new copy of the curve order N.
func Order() *big.Int {
	return fr.Modulus()
}

// Add sets s to a + b (mod N) and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.inner.Add(&a.inner, &b.inner)
	return s
}

// Sub sets s to a - b (mod N) and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.inner.Sub(&a.inner, &b.inner)
	return s
}

// Mul sets s to a * b (mod N) and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.inner.Mul(&a.inner, &b.inner)
	return s
}

// Negate sets s to -a (mod N) and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.inner.Neg(&a.inner)
	return s
}

// Invert sets s to a^-1 (mod N) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
//
// The inverse is a^(N-2), computed with a fixed square-and-multiply ladder
// so that nonces and keys can be inverted without leaking their value.
func (s *Scalar) Invert(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, ErrZeroScalar
	}
	base := a.inner
	var acc, t fr.Element
	acc.SetOne()
	for _, byt := range orderMinusTwo {
		for i := 7; i >= 0; i-- {
			acc.Square(&acc)
			t.Mul(&acc, &base)
			acc.Select(int(byt>>uint(i))&1, &acc, &t)
		}
	}
	s.inner = acc
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.inner = a.inner
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	s.inner.SetUint64(v)
	return s
}

// SetBigInt sets s to v (mod N) and returns s.
func (s *Scalar) SetBigInt(v *big.Int) *Scalar {
	s.inner.SetBigInt(v)
	return s
}

// BigInt returns the integer value of s in [0, N).
func (s *Scalar) BigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// The encoded value must be below N.
func (s *Scalar) SetBytes(data []byte) (*Scalar, error) {
	if len(data) != ScalarBytes {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(data), ScalarBytes)
	}
	var v fr.Element
	if err := v.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("%w: value is not below the curve order", ErrInvalidScalar)
	}
	s.inner = v
	return s, nil
}

// SetFelt sets s to the integer value of a field element and returns s.
// Since N < P, field elements at or above N are rejected.
func (s *Scalar) SetFelt(a *felt.Element) (*Scalar, error) {
	b := a.Bytes()
	return s.SetBytes(b[:])
}

// Felt returns s as a field element. Every scalar is a valid field
// element because N < P.
func (s *Scalar) Felt() felt.Element {
	b := s.inner.Bytes()
	var e felt.Element
	if _, err := e.SetBytes(b[:]); err != nil {
		panic("curve: scalar does not fit in the base field")
	}
	return e
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() [ScalarBytes]byte {
	return s.inner.Bytes()
}

// Select sets s to a if c == 0 and to b otherwise, in constant time.
func (s *Scalar) Select(c int, a, b *Scalar) *Scalar {
	s.inner.Select(c, &a.inner, &b.inner)
	return s
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b *Scalar) bool {
	return s.inner.Equal(&b.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// String returns s as 0x-prefixed hexadecimal.
func (s Scalar) String() string {
	return "0x" + s.inner.Text(16)
}
