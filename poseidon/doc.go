// Package poseidon implements the Starknet Poseidon hash.
//
// The permutation is Hades over the STARK field with a state of three
// elements: 8 full rounds split 4 before and 4 after 83 partial rounds,
// the cube S-box, and the MDS matrix
//
//	| 3  1  1 |
//	| 1 -1  1 |
//	| 1  1 -2 |
//
// Each round first adds three round constants to the state. The 273
// constants are the values sha256("Hades" || i) mod P for i = 0..272,
// derived when the package is initialised.
//
// # Hash functions
//
//   - [Hash] hashes two elements: Permute([x, y, 2])[0].
//   - [HashSingle] hashes one element: Permute([x, 0, 1])[0].
//   - [HashMany] is the sponge over a list with rate 2: the list is padded
//     with 1 and then 0 to an even length and absorbed two elements at a
//     time. The padding block is always absorbed, so an even-length list
//     gets one extra permutation and the digest differs from a sponge that
//     absorbs a trailing partial block unpadded.
//   - [Hasher] is the streaming form of HashMany.
//
// The same inputs always produce the same digest, and all functions are
// safe for concurrent use.
package poseidon
