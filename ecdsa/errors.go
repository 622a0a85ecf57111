package ecdsa

import "errors"

var (
	// ErrInvalidKey is returned for a private key outside [1, N).
	ErrInvalidKey = errors.New("ecdsa: private key out of range")

	// ErrInvalidMessage is returned for a message hash of 2^251 or more.
	ErrInvalidMessage = errors.New("ecdsa: message hash out of range")

	// ErrInvalidK is returned by SignWithK when the nonce is outside
	// [1, N) or produces an out-of-range r or s.
	ErrInvalidK = errors.New("ecdsa: invalid nonce")

	// ErrNoNonce is returned by Sign when every nonce up to the attempt
	// limit produced an out-of-range r or s.
	ErrNoNonce = errors.New("ecdsa: no usable nonce")

	// ErrInvalidPublicKey is returned when a public key is not the
	// x-coordinate of a curve point.
	ErrInvalidPublicKey = errors.New("ecdsa: public key is not on the curve")

	// ErrInvalidSignature is returned when a signature is malformed or
	// does not verify.
	ErrInvalidSignature = errors.New("ecdsa: invalid signature")

	// ErrRecoveryFailed is returned when no public key can be recovered
	// from a signature.
	ErrRecoveryFailed = errors.New("ecdsa: public key recovery failed")
)
