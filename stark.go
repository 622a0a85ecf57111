package stark

import (
	"errors"
	"fmt"

	"github.com/f3rmion/stark/ecdsa"
	"github.com/f3rmion/stark/felt"
	"github.com/f3rmion/stark/keccak"
	"github.com/f3rmion/stark/pedersen"
	"github.com/f3rmion/stark/poseidon"
)

// FeltSize is the length of every field element at this boundary.
const FeltSize = felt.Bytes

// ErrNoInputs is returned by PoseidonHashMany for an empty input list.
var ErrNoInputs = errors.New("stark: no inputs to hash")

// Signature is an ECDSA signature in boundary form.
type Signature struct {
	R, S []byte
	// V is the recovery parity, 0 or 1.
	V byte
}

func decode(name string, b []byte) (felt.Element, error) {
	var e felt.Element
	if _, err := e.SetBytes(b); err != nil {
		return e, fmt.Errorf("%s: %w", name, err)
	}
	return e, nil
}

func decode2(a, b []byte) (x, y felt.Element, err error) {
	if x, err = decode("a", a); err != nil {
		return
	}
	y, err = decode("b", b)
	return
}

func encode(e *felt.Element) []byte {
	b := e.Bytes()
	return b[:]
}

func binaryOp(a, b []byte, op func(z, x, y *felt.Element) *felt.Element) ([]byte, error) {
	x, y, err := decode2(a, b)
	if err != nil {
		return nil, err
	}
	var z felt.Element
	op(&z, &x, &y)
	return encode(&z), nil
}

// FeltAdd returns a + b mod P.
func FeltAdd(a, b []byte) ([]byte, error) {
	return binaryOp(a, b, (*felt.Element).Add)
}

// FeltSub returns a - b mod P.
func FeltSub(a, b []byte) ([]byte, error) {
	return binaryOp(a, b, (*felt.Element).Sub)
}

// FeltMul returns a * b mod P.
func FeltMul(a, b []byte) ([]byte, error) {
	return binaryOp(a, b, (*felt.Element).Mul)
}

// FeltPow returns base^exp mod P, reading exp as an integer.
func FeltPow(base, exp []byte) ([]byte, error) {
	return binaryOp(base, exp, (*felt.Element).Pow)
}

// FeltDiv returns a / b mod P. Division by zero is reported as such
// regardless of a.
func FeltDiv(a, b []byte) ([]byte, error) {
	x, y, err := decode2(a, b)
	if err != nil {
		return nil, err
	}
	var z felt.Element
	if _, err := z.Div(&x, &y); err != nil {
		return nil, err
	}
	return encode(&z), nil
}

// FeltNeg returns -a mod P.
func FeltNeg(a []byte) ([]byte, error) {
	x, err := decode("a", a)
	if err != nil {
		return nil, err
	}
	x.Neg(&x)
	return encode(&x), nil
}

// FeltInverse returns a^-1 mod P.
func FeltInverse(a []byte) ([]byte, error) {
	x, err := decode("a", a)
	if err != nil {
		return nil, err
	}
	if _, err := x.Inverse(&x); err != nil {
		return nil, err
	}
	return encode(&x), nil
}

// FeltSqrt returns the smaller square root of a.
func FeltSqrt(a []byte) ([]byte, error) {
	x, err := decode("a", a)
	if err != nil {
		return nil, err
	}
	if _, err := x.Sqrt(&x); err != nil {
		return nil, err
	}
	return encode(&x), nil
}

// PedersenHash returns the Pedersen hash of a and b.
func PedersenHash(a, b []byte) ([]byte, error) {
	x, y, err := decode2(a, b)
	if err != nil {
		return nil, err
	}
	h := pedersen.Hash(&x, &y)
	return encode(&h), nil
}

// PoseidonHash returns the Poseidon hash of a and b.
func PoseidonHash(a, b []byte) ([]byte, error) {
	x, y, err := decode2(a, b)
	if err != nil {
		return nil, err
	}
	h := poseidon.Hash(&x, &y)
	return encode(&h), nil
}

// PoseidonHashMany returns the Poseidon sponge hash of inputs, which must
// not be empty.
func PoseidonHashMany(inputs [][]byte) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	var h poseidon.Hasher
	for i, in := range inputs {
		x, err := decode(fmt.Sprintf("inputs[%d]", i), in)
		if err != nil {
			return nil, err
		}
		h.Update(&x)
	}
	d := h.Finalize()
	return encode(&d), nil
}

// Keccak256 returns the full Keccak-256 digest of data.
func Keccak256(data []byte) []byte {
	d := keccak.Sum256(data)
	return d[:]
}

// StarknetKeccak256 returns the Keccak-256 digest of data truncated to
// 250 bits.
func StarknetKeccak256(data []byte) []byte {
	d := keccak.Truncated(data)
	return encode(&d)
}

// GetPublicKey returns the public key of priv.
func GetPublicKey(priv []byte) ([]byte, error) {
	d, err := decode("private key", priv)
	if err != nil {
		return nil, err
	}
	pub, err := ecdsa.PublicKey(&d)
	if err != nil {
		return nil, err
	}
	return encode(&pub), nil
}

// Sign signs the message hash msg with priv using RFC 6979 nonces.
func Sign(priv, msg []byte) (*Signature, error) {
	d, err := decode("private key", priv)
	if err != nil {
		return nil, err
	}
	m, err := decode("message", msg)
	if err != nil {
		return nil, err
	}
	sig, err := ecdsa.Sign(&d, &m)
	if err != nil {
		return nil, err
	}
	return &Signature{R: encode(&sig.R), S: encode(&sig.S), V: sig.V}, nil
}

// Verify checks the signature (r, s) of msg under pub. It returns nil for
// a valid signature.
func Verify(pub, msg, r, s []byte) error {
	q, err := decode("public key", pub)
	if err != nil {
		return err
	}
	m, err := decode("message", msg)
	if err != nil {
		return err
	}
	rs, err := decode("r", r)
	if err != nil {
		return err
	}
	ss, err := decode("s", s)
	if err != nil {
		return err
	}
	return ecdsa.Verify(&q, &m, &rs, &ss)
}

// Recover returns the public key that produced (r, s) over msg. v is a
// field element that must be 0 or 1.
func Recover(msg, r, s, v []byte) ([]byte, error) {
	m, err := decode("message", msg)
	if err != nil {
		return nil, err
	}
	rs, err := decode("r", r)
	if err != nil {
		return nil, err
	}
	ss, err := decode("s", s)
	if err != nil {
		return nil, err
	}
	ve, err := decode("v", v)
	if err != nil {
		return nil, err
	}
	parity := uint8(2)
	switch {
	case ve.IsZero():
		parity = 0
	case ve.IsOne():
		parity = 1
	}
	pub, err := ecdsa.Recover(&m, &rs, &ss, parity)
	if err != nil {
		return nil, err
	}
	return encode(&pub), nil
}
