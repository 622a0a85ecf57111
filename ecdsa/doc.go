// Package ecdsa implements Starknet ECDSA signatures over the STARK curve.
//
// Keys, message hashes and signature components are field elements. A
// public key is the x-coordinate of d*G for a private key d in [1, N);
// since only x is kept, both points with that abscissa are accepted as the
// key during verification.
//
// # Bounds
//
// Message hashes must be below 2^251, and r and s must lie in [1, 2^251).
// Because 2^251 < N, this also keeps r and s below the curve order.
//
// # Nonces
//
// Signing draws its nonce from a [NonceGenerator]. The default, [RFC6979],
// derives the nonce deterministically from the key and the message with
// HMAC-SHA256 as described in RFC 6979 section 3.2, and produces the same
// signatures as starknet-crypto. When a nonce yields an out-of-range r or
// s, signing retries with a seed counter of 1, 2, and so on. [Hedged]
// additionally mixes caller-supplied randomness into every nonce.
//
// # Recovery
//
// A [Signature] carries V, the parity of the y-coordinate of the nonce
// point. Together with r, s and the message it is enough to recover the
// signer's public key with [Recover].
//
// # Example
//
//	key, err := ecdsa.GenerateKey(rand.Reader)
//	if err != nil {
//		return err
//	}
//	sig, err := key.Sign(&msg)
//	if err != nil {
//		return err
//	}
//	pub := key.Public()
//	err = ecdsa.Verify(&pub, &msg, &sig.R, &sig.S)
package ecdsa
