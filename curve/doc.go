// Package curve implements the STARK elliptic curve group.
//
// The curve is the short Weierstrass curve
//
//	y^2 = x^3 + alpha*x + beta
//
// over the field of package felt, with alpha = 1 and
//
//	beta = 3141592653589793238462643383279502884197169399375105820974944592307816406665
//
// The group of points has prime order
//
//	N = 3618502788666131213697322783095070105526743751716087489154079457884512865583
//
// so every point other than the identity generates the whole group.
// Curve constants are taken from gnark-crypto's stark-curve package.
//
// # Points and scalars
//
// [Point] stores projective coordinates and uses complete addition
// formulas, so the identity and doubling need no special handling.
// [Scalar] holds integers modulo N and backs private keys and nonces.
//
//	var k curve.Scalar
//	k.SetUint64(42)
//	var p curve.Point
//	p.ScalarBaseMult(&k)
//	x := p.X()
//
// # Security
//
// [Point.ScalarMult] and [Point.ScalarBaseMult] are constant time with
// respect to the scalar and are meant for secret values. [Point.MulPublic]
// and [Point.Decompress] are variable time and must only see public data.
package curve
