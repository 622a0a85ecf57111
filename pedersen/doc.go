// Package pedersen implements the Starknet Pedersen hash.
//
// The hash of two field elements a and b is the x-coordinate of
//
//	shift + a_low*P0 + a_high*P1 + b_low*P2 + b_high*P3
//
// where x_low is the low 248 bits of x, x_high its remaining top 4 bits,
// and shift, P0..P3 are fixed points of the STARK curve published with
// cairo-lang. Every pair of field elements has a hash; no input is
// rejected.
//
// Multiples of the four generators are precomputed per 4-bit window when
// the package is initialised, so a hash costs at most 126 point additions.
// Table lookups are indexed by the input, which is fine for the public data
// this hash is used on but means it must not be fed secrets.
package pedersen
