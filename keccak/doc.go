// Package keccak computes Keccak-256 digests and Starknet's truncated
// variant.
//
// Keccak-256 here is the original Keccak submission with 0x01 padding, as
// used by Ethereum, not the standardised SHA3-256. The truncated form keeps
// the low 250 bits of the big-endian digest so that the result is always a
// field element; it is the hash behind Starknet entry-point selectors.
package keccak
