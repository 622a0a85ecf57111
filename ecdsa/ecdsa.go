package ecdsa

import (
	"errors"
	"fmt"

	"github.com/f3rmion/stark/curve"
	"github.com/f3rmion/stark/felt"
)

// boundBits is the bit length bound for message hashes, r and s: all must
// be below 2^251.
const boundBits = 251

// maxSignAttempts bounds the seed counter of Sign. An attempt fails only
// when R.x or s is zero or at least 2^251, with probability around 2^-55.
const maxSignAttempts = 256

// errRetry reports that a nonce gave r or s outside [1, 2^251).
var errRetry = errors.New("ecdsa: nonce produced an out-of-range signature")

// Signature is a Starknet ECDSA signature.
type Signature struct {
	R, S felt.Element
	// V is the parity of the y-coordinate of the nonce point k*G. It is
	// only needed to recover the public key.
	V uint8
}

func inBound(x *felt.Element) bool {
	return x.BitLen() <= boundBits
}

func inRange(x *felt.Element) bool {
	return !x.IsZero() && inBound(x)
}

// privateScalar checks that priv is in [1, N) and converts it.
func privateScalar(priv *felt.Element) (*curve.Scalar, error) {
	var d curve.Scalar
	if _, err := d.SetFelt(priv); err != nil || d.IsZero() {
		return nil, ErrInvalidKey
	}
	return &d, nil
}

// messageScalar checks that msg is below 2^251 and converts it.
func messageScalar(msg *felt.Element) (*curve.Scalar, error) {
	if !inBound(msg) {
		return nil, ErrInvalidMessage
	}
	var m curve.Scalar
	if _, err := m.SetFelt(msg); err != nil {
		return nil, ErrInvalidMessage
	}
	return &m, nil
}

// PublicKey returns the public key of priv: the x-coordinate of priv*G.
func PublicKey(priv *felt.Element) (felt.Element, error) {
	d, err := privateScalar(priv)
	if err != nil {
		return felt.Element{}, err
	}
	return publicKey(d), nil
}

func publicKey(d *curve.Scalar) felt.Element {
	var q curve.Point
	q.ScalarBaseMult(d)
	return q.X()
}

// Sign signs msg with priv using RFC 6979 nonces.
func Sign(priv, msg *felt.Element) (*Signature, error) {
	return SignWith(priv, msg, RFC6979{})
}

// SignWith signs msg with priv using nonces from gen. When a nonce
// produces an unusable signature, gen is asked again with the next seed.
func SignWith(priv, msg *felt.Element, gen NonceGenerator) (*Signature, error) {
	d, err := privateScalar(priv)
	if err != nil {
		return nil, err
	}
	m, err := messageScalar(msg)
	if err != nil {
		return nil, err
	}
	return sign(d, m, gen)
}

func sign(d, m *curve.Scalar, gen NonceGenerator) (*Signature, error) {
	msg := m.Felt()
	for seed := uint64(0); seed < maxSignAttempts; seed++ {
		k, err := gen.Nonce(d, &msg, seed)
		if err != nil {
			return nil, fmt.Errorf("generating nonce: %w", err)
		}
		sig, err := signWithK(d, m, k)
		if errors.Is(err, errRetry) {
			continue
		}
		return sig, err
	}
	return nil, fmt.Errorf("%w: no usable nonce after %d attempts", ErrNoNonce, maxSignAttempts)
}

// SignWithK signs msg with priv using the caller's nonce k. The same k
// must never be used for two different messages.
//
// Returns ErrInvalidK if k is not in [1, N) or if it yields r or s
// outside [1, 2^251).
func SignWithK(priv, msg, k *felt.Element) (*Signature, error) {
	d, err := privateScalar(priv)
	if err != nil {
		return nil, err
	}
	m, err := messageScalar(msg)
	if err != nil {
		return nil, err
	}
	var ks curve.Scalar
	if _, err := ks.SetFelt(k); err != nil || ks.IsZero() {
		return nil, ErrInvalidK
	}
	sig, err := signWithK(d, m, &ks)
	if errors.Is(err, errRetry) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidK, err)
	}
	return sig, err
}

// signWithK computes r = x(kG) and s = k^-1 (m + r d).
func signWithK(d, m, k *curve.Scalar) (*Signature, error) {
	var rp curve.Point
	rp.ScalarBaseMult(k)
	x, y := rp.Affine()
	if !inRange(&x) {
		return nil, errRetry
	}

	var r curve.Scalar
	if _, err := r.SetFelt(&x); err != nil {
		return nil, errRetry
	}
	kInv, err := new(curve.Scalar).Invert(k)
	if err != nil {
		return nil, ErrInvalidK
	}
	var s curve.Scalar
	s.Mul(&r, d)
	s.Add(&s, m)
	s.Mul(&s, kInv)

	sig := &Signature{R: x, S: s.Felt()}
	if !inRange(&sig.S) {
		return nil, errRetry
	}
	if y.IsOdd() {
		sig.V = 1
	}
	return sig, nil
}

// Verify checks that (r, s) is a signature of msg by the holder of pub.
//
// Returns ErrInvalidMessage or ErrInvalidPublicKey when the inputs are
// malformed, and ErrInvalidSignature when r or s is out of range or the
// signature does not match.
func Verify(pub, msg, r, s *felt.Element) error {
	m, err := messageScalar(msg)
	if err != nil {
		return err
	}
	if !inRange(r) || !inRange(s) {
		return ErrInvalidSignature
	}
	var q curve.Point
	if _, err := q.Decompress(pub, false); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return verify(&q, m, r, s)
}

func verify(q *curve.Point, m *curve.Scalar, r, s *felt.Element) error {
	var rs, ss curve.Scalar
	if _, err := rs.SetFelt(r); err != nil {
		return ErrInvalidSignature
	}
	if _, err := ss.SetFelt(s); err != nil {
		return ErrInvalidSignature
	}
	w, err := new(curve.Scalar).Invert(&ss)
	if err != nil {
		return ErrInvalidSignature
	}
	wf := w.Felt()
	if !inRange(&wf) {
		return ErrInvalidSignature
	}

	var u1, u2 curve.Scalar
	u1.Mul(m, w)
	u2.Mul(&rs, w)

	// Only x is known for the key, so accept either of its points.
	var sum, diff, negQ curve.Point
	sum.MulPublic(&u1, q, &u2)
	negQ.Neg(q)
	diff.MulPublic(&u1, &negQ, &u2)
	if matchesR(&sum, &rs) || matchesR(&diff, &rs) {
		return nil
	}
	return ErrInvalidSignature
}

// matchesR reports whether x(p) mod N equals r.
func matchesR(p *curve.Point, r *curve.Scalar) bool {
	if p.IsIdentity() {
		return false
	}
	x := p.X()
	var xs curve.Scalar
	xs.SetBigInt(x.BigInt())
	return xs.Equal(r)
}

// Recover returns the public key that produced the signature (r, s) with
// recovery parity v over msg.
//
// All failures wrap ErrRecoveryFailed.
func Recover(msg, r, s *felt.Element, v uint8) (felt.Element, error) {
	pub, err := recoverKey(msg, r, s, v)
	if err != nil {
		return felt.Element{}, fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}
	return pub, nil
}

func recoverKey(msg, r, s *felt.Element, v uint8) (felt.Element, error) {
	var zero felt.Element
	if v > 1 {
		return zero, fmt.Errorf("recovery parity %d is not 0 or 1", v)
	}
	m, err := messageScalar(msg)
	if err != nil {
		return zero, err
	}
	if !inRange(r) || !inRange(s) {
		return zero, ErrInvalidSignature
	}

	var rp curve.Point
	if _, err := rp.Decompress(r, v == 1); err != nil {
		return zero, err
	}
	var rs, ss curve.Scalar
	if _, err := rs.SetFelt(r); err != nil {
		return zero, ErrInvalidSignature
	}
	if _, err := ss.SetFelt(s); err != nil {
		return zero, ErrInvalidSignature
	}
	rInv, err := new(curve.Scalar).Invert(&rs)
	if err != nil {
		return zero, ErrInvalidSignature
	}

	// Q = r^-1 (s R - m G)
	var u1, u2 curve.Scalar
	u1.Negate(m)
	u1.Mul(&u1, rInv)
	u2.Mul(&ss, rInv)
	var q curve.Point
	q.MulPublic(&u1, &rp, &u2)
	if q.IsIdentity() {
		return zero, errors.New("recovered point is the identity")
	}
	if err := verify(&q, m, r, s); err != nil {
		return zero, err
	}
	return q.X(), nil
}
