// Package stark exposes Starknet's cryptographic primitives through a
// byte-oriented API.
//
// Every field element crosses this boundary as exactly 32 big-endian bytes
// holding a value below the field modulus P = 2^251 + 17*2^192 + 1. Inputs
// of the wrong length or with a value at or above P are rejected, never
// reduced. Results are always 32 bytes.
//
// The typed building blocks live in subpackages:
//
//   - felt: field arithmetic
//   - curve: the STARK curve group
//   - pedersen, poseidon, keccak: hash functions
//   - ecdsa: key derivation, signing, verification and recovery
//
// # Status codes
//
// Every error returned by this package maps to a [Status] through
// [StatusOf]. The numeric values are stable and match the C interface of
// starknet-crypto-ffi, so callers that forward results across a process or
// language boundary can use them directly.
//
//	out, err := stark.FeltDiv(a, b)
//	switch stark.StatusOf(err) {
//	case stark.Success:
//		use(out)
//	case stark.DivisionByZero:
//		...
//	}
package stark
