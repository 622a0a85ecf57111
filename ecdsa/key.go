package ecdsa

import (
	"io"

	"github.com/f3rmion/stark/curve"
	"github.com/f3rmion/stark/felt"
)

// PrivateKey is a Starknet signing key together with its public key.
type PrivateKey struct {
	d   curve.Scalar
	pub felt.Element

	// Nonces is the nonce source used by Sign. A nil value means RFC6979.
	Nonces NonceGenerator
}

// NewPrivateKey returns the key with secret scalar priv, which must be in
// [1, N).
func NewPrivateKey(priv *felt.Element) (*PrivateKey, error) {
	d, err := privateScalar(priv)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{d: *d, pub: publicKey(d)}, nil
}

// GenerateKey returns a new key drawn uniformly from [1, N) using r.
func GenerateKey(r io.Reader) (*PrivateKey, error) {
	d, err := (&curve.Stark{}).RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{d: *d, pub: publicKey(d)}, nil
}

// Public returns the public key.
func (k *PrivateKey) Public() felt.Element {
	return k.pub
}

// Secret returns the private scalar as a field element.
func (k *PrivateKey) Secret() felt.Element {
	return k.d.Felt()
}

// Sign signs msg, which must be below 2^251.
func (k *PrivateKey) Sign(msg *felt.Element) (*Signature, error) {
	m, err := messageScalar(msg)
	if err != nil {
		return nil, err
	}
	gen := k.Nonces
	if gen == nil {
		gen = RFC6979{}
	}
	return sign(&k.d, m, gen)
}
