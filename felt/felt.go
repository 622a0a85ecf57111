package felt

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Bytes is the length of the canonical big-endian encoding of an element.
const Bytes = fp.Bytes

var (
	// ErrInvalidEncoding is returned when input is not a canonical
	// encoding of a value below the modulus.
	ErrInvalidEncoding = errors.New("felt: invalid encoding")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("felt: division by zero")

	// ErrNoInverse is returned by Inverse for the zero element.
	ErrNoInverse = errors.New("felt: zero has no multiplicative inverse")

	// ErrNoSquareRoot is returned by Sqrt for a quadratic non-residue.
	ErrNoSquareRoot = errors.New("felt: no square root")
)

// Element is an element of the STARK prime field.
//
// The zero value is 0 and is ready to use.
type Element struct {
	inner fp.Element
}

// Modulus returns a new copy of the field modulus P.
func Modulus() *big.Int {
	return fp.Modulus()
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// New returns the element with value v.
func New(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// MustHex parses a hexadecimal constant and panics if it is not canonical.
// It is intended for package-level tables and tests.
func MustHex(s string) Element {
	var e Element
	if _, err := e.SetHex(s); err != nil {
		panic(fmt.Sprintf("felt: bad constant %q: %v", s, err))
	}
	return e
}

// FromFp wraps a gnark-crypto field element.
func FromFp(v *fp.Element) Element {
	return Element{inner: *v}
}

// Fp returns the underlying gnark-crypto field element.
func (z *Element) Fp() *fp.Element {
	return &z.inner
}

// Set copies a into z and returns z.
func (z *Element) Set(a *Element) *Element {
	z.inner = a.inner
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	z.inner.SetZero()
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	z.inner.SetOne()
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	z.inner.SetUint64(v)
	return z
}

// SetBigInt sets z to v mod P and returns z. Negative values are reduced
// into [0, P).
func (z *Element) SetBigInt(v *big.Int) *Element {
	z.inner.SetBigInt(v)
	return z
}

// BigInt returns the canonical integer value of z.
func (z *Element) BigInt() *big.Int {
	return z.inner.BigInt(new(big.Int))
}

// SetBytes sets z from a 32-byte big-endian encoding and returns z.
// The value must be strictly below P.
func (z *Element) SetBytes(data []byte) (*Element, error) {
	if len(data) != Bytes {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidEncoding, len(data), Bytes)
	}
	var v fp.Element
	if err := v.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("%w: value is not below the modulus", ErrInvalidEncoding)
	}
	z.inner = v
	return z, nil
}

// Bytes returns the 32-byte big-endian encoding of z.
func (z *Element) Bytes() [Bytes]byte {
	return z.inner.Bytes()
}

// SetHex sets z from a hexadecimal string, with or without a 0x prefix,
// and returns z. The value must be strictly below P.
func (z *Element) SetHex(s string) (*Element, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, ok := new(big.Int).SetString(h, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is not a hex number", ErrInvalidEncoding, s)
	}
	if v.Cmp(fp.Modulus()) >= 0 {
		return nil, fmt.Errorf("%w: value is not below the modulus", ErrInvalidEncoding)
	}
	z.inner.SetBigInt(v)
	return z, nil
}

// Text returns z as a 0x-prefixed lowercase hexadecimal string without
// leading zeros.
func (z *Element) Text() string {
	return "0x" + z.inner.Text(16)
}

// String implements fmt.Stringer.
func (z Element) String() string {
	return z.Text()
}

// Add sets z to a + b and returns z.
func (z *Element) Add(a, b *Element) *Element {
	z.inner.Add(&a.inner, &b.inner)
	return z
}

// Sub sets z to a - b and returns z.
func (z *Element) Sub(a, b *Element) *Element {
	z.inner.Sub(&a.inner, &b.inner)
	return z
}

// Mul sets z to a * b and returns z.
func (z *Element) Mul(a, b *Element) *Element {
	z.inner.Mul(&a.inner, &b.inner)
	return z
}

// Square sets z to a * a and returns z.
func (z *Element) Square(a *Element) *Element {
	z.inner.Square(&a.inner)
	return z
}

// Double sets z to 2a and returns z.
func (z *Element) Double(a *Element) *Element {
	z.inner.Double(&a.inner)
	return z
}

// Neg sets z to -a and returns z. The negation of 0 is 0.
func (z *Element) Neg(a *Element) *Element {
	z.inner.Neg(&a.inner)
	return z
}

// Div sets z to a / b and returns z.
func (z *Element) Div(a, b *Element) (*Element, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	var inv Element
	if _, err := inv.Inverse(b); err != nil {
		return nil, err
	}
	return z.Mul(a, &inv), nil
}

// Select sets z to a if c == 0 and to b otherwise, in constant time.
func (z *Element) Select(c int, a, b *Element) *Element {
	z.inner.Select(c, &a.inner, &b.inner)
	return z
}

// Equal reports whether z and a are the same element.
func (z *Element) Equal(a *Element) bool {
	return z.inner.Equal(&a.inner)
}

// Cmp compares the canonical integer values of z and a and returns -1, 0
// or +1.
func (z *Element) Cmp(a *Element) int {
	return z.inner.Cmp(&a.inner)
}

// IsZero reports whether z is 0.
func (z *Element) IsZero() bool {
	return z.inner.IsZero()
}

// IsOne reports whether z is 1.
func (z *Element) IsOne() bool {
	return z.inner.IsOne()
}

// IsOdd reports whether the canonical integer value of z is odd.
func (z *Element) IsOdd() bool {
	b := z.inner.Bytes()
	return b[Bytes-1]&1 == 1
}

// BitLen returns the bit length of the canonical integer value of z.
func (z *Element) BitLen() int {
	b := z.inner.Bytes()
	for i, v := range b {
		if v != 0 {
			return (Bytes-1-i)*8 + bits.Len8(v)
		}
	}
	return 0
}
