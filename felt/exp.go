package felt

import (
	"math/big"
)

// P - 1 = 2^twoAdicity * q with q odd.
const twoAdicity = 192

// nonResidue generates the multiplicative group of the field.
const nonResidue = 3

var (
	inverseExp  [Bytes]byte // P - 2
	eulerExp    [Bytes]byte // (P - 1) / 2
	oddPart     [Bytes]byte // q
	oddPartHalf [Bytes]byte // (q + 1) / 2

	// rootOfUnity = nonResidue^q has order exactly 2^twoAdicity.
	rootOfUnity Element
)

func init() {
	one := big.NewInt(1)
	p := Modulus()
	pm1 := new(big.Int).Sub(p, one)

	new(big.Int).Sub(pm1, one).FillBytes(inverseExp[:])
	new(big.Int).Rsh(pm1, 1).FillBytes(eulerExp[:])

	q := new(big.Int).Rsh(pm1, twoAdicity)
	if q.Bit(0) != 1 || new(big.Int).Lsh(q, twoAdicity).Cmp(pm1) != 0 {
		panic("felt: unexpected two-adicity of P - 1")
	}
	q.FillBytes(oddPart[:])
	new(big.Int).Rsh(new(big.Int).Add(q, one), 1).FillBytes(oddPartHalf[:])

	g := New(nonResidue)
	rootOfUnity.pow(&g, oddPart[:])
}

// pow sets z to base^e, with e given as big-endian bytes. Every bit of e
// costs one squaring and one multiplication, and the product is kept or
// dropped with a constant-time select.
func (z *Element) pow(base *Element, e []byte) *Element {
	b := *base
	var acc, t Element
	acc.SetOne()
	for _, byt := range e {
		for i := 7; i >= 0; i-- {
			acc.Square(&acc)
			t.Mul(&acc, &b)
			acc.Select(int(byt>>uint(i))&1, &acc, &t)
		}
	}
	return z.Set(&acc)
}

// Pow sets z to base^exp and returns z. The exponent is read as the
// canonical integer value of exp, and 0^0 is 1.
func (z *Element) Pow(base, exp *Element) *Element {
	e := exp.Bytes()
	return z.pow(base, e[:])
}

// PowBigInt sets z to base^e for a non-negative e of at most 256 bits and
// returns z.
func (z *Element) PowBigInt(base *Element, e *big.Int) *Element {
	var buf [Bytes]byte
	e.FillBytes(buf[:])
	return z.pow(base, buf[:])
}

// Inverse sets z to a^-1 and returns z. The inverse is computed as
// a^(P-2) so that the running time does not depend on a.
func (z *Element) Inverse(a *Element) (*Element, error) {
	if a.IsZero() {
		return nil, ErrNoInverse
	}
	return z.pow(a, inverseExp[:]), nil
}

// Legendre returns 1 if a is a non-zero square, -1 if a is not a square and
// 0 if a is zero.
func (z *Element) Legendre() int {
	if z.IsZero() {
		return 0
	}
	var e Element
	if e.pow(z, eulerExp[:]); e.IsOne() {
		return 1
	}
	return -1
}

// Sqrt sets z to a square root of a and returns z. Of the two roots s and
// P - s, the smaller integer is returned. Sqrt is variable time.
func (z *Element) Sqrt(a *Element) (*Element, error) {
	switch a.Legendre() {
	case 0:
		return z.SetZero(), nil
	case -1:
		return nil, ErrNoSquareRoot
	}

	// Tonelli-Shanks.
	var (
		c = rootOfUnity
		t Element
		r Element
		b Element
		m = twoAdicity
	)
	t.pow(a, oddPart[:])
	r.pow(a, oddPartHalf[:])
	for !t.IsOne() {
		i := 0
		for s := t; !s.IsOne(); i++ {
			s.Square(&s)
		}
		b = c
		for j := 0; j < m-i-1; j++ {
			b.Square(&b)
		}
		m = i
		c.Square(&b)
		t.Mul(&t, &c)
		r.Mul(&r, &b)
	}

	var neg Element
	neg.Neg(&r)
	if neg.Cmp(&r) < 0 {
		r = neg
	}
	return z.Set(&r), nil
}
