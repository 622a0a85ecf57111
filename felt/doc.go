// Package felt implements arithmetic in the STARK prime field.
//
// The field modulus is
//
//	P = 2^251 + 17*2^192 + 1
//	  = 3618502788666131213697322783095070105623107215331596699973092056135872020481
//
// Elements are stored in Montgomery form using gnark-crypto's stark-curve
// fp package. Every operation returns a canonical value in [0, P), and the
// zero value of [Element] is the field element 0.
//
// # Usage
//
// Arithmetic follows the mutable-receiver convention of math/big and
// gnark-crypto: the receiver is overwritten with the result and returned,
// so calls can be chained.
//
//	var a, b, c felt.Element
//	a.SetUint64(7)
//	b.SetUint64(5)
//	c.Mul(&a, &b).Add(&c, &a)
//
// Operations that can fail ([Element.Div], [Element.Inverse],
// [Element.Sqrt], [Element.SetBytes], [Element.SetHex]) return an error and
// leave the receiver unchanged.
//
// # Encoding
//
// The canonical encoding is 32 bytes, big-endian, holding a value strictly
// below P. Non-canonical encodings are rejected with [ErrInvalidEncoding]
// rather than silently reduced.
//
// # Side channels
//
// [Element.Pow] and [Element.Inverse] run a square-and-multiply ladder over
// all 256 exponent bits with constant-time selection, so their running time
// does not depend on the exponent. [Element.Sqrt] is variable time and must
// only be applied to public values.
package felt
