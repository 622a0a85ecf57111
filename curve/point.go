package curve

import (
	"fmt"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"

	"github.com/f3rmion/stark/felt"
)

var (
	// beta is the constant term of y^2 = x^3 + x + beta. The linear
	// coefficient alpha is 1, so multiplications by it are omitted below.
	beta felt.Element

	// b3 = 3 * beta, as used by the complete addition formulas.
	b3 felt.Element

	generator Point
)

func init() {
	a, b := starkcurve.CurveCoefficients()
	if !a.IsOne() {
		panic("curve: expected alpha = 1")
	}
	beta = felt.FromFp(&b)
	var two felt.Element
	two.Double(&beta)
	b3.Add(&two, &beta)

	_, g := starkcurve.Generators()
	gx, gy := felt.FromFp(&g.X), felt.FromFp(&g.Y)
	if _, err := generator.SetAffine(&gx, &gy); err != nil {
		panic("curve: generator is not on the curve")
	}
}

// Point is a point on the STARK curve in homogeneous projective
// coordinates (X : Y : Z), representing the affine point (X/Z, Y/Z).
//
// The identity is (0 : 1 : 0). The zero value of Point is not a valid
// point; use [Identity], [Generator] or one of the setters.
//
// Add, Double and ScalarMult use the complete formulas of Renes, Costello
// and Batina (https://eprint.iacr.org/2015/1060), which have no exceptional
// cases and no data-dependent branches.
type Point struct {
	x, y, z felt.Element
}

// Identity returns the point at infinity.
func Identity() Point {
	var p Point
	return *p.SetIdentity()
}

// Generator returns the standard base point G.
func Generator() Point {
	return generator
}

// SetIdentity sets p to the point at infinity and returns p.
func (p *Point) SetIdentity() *Point {
	p.x.SetZero()
	p.y.SetOne()
	p.z.SetZero()
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a *Point) *Point {
	*p = *a
	return p
}

// SetAffine sets p to the affine point (x, y) and returns p.
// Returns ErrNotOnCurve if (x, y) does not satisfy the curve equation.
func (p *Point) SetAffine(x, y *felt.Element) (*Point, error) {
	if !isOnCurveAffine(x, y) {
		return nil, ErrNotOnCurve
	}
	p.x.Set(x)
	p.y.Set(y)
	p.z.SetOne()
	return p, nil
}

// Affine returns the affine coordinates of p. The identity, which has no
// affine form, is returned as (0, 0).
func (p *Point) Affine() (x, y felt.Element) {
	if p.IsIdentity() {
		return
	}
	var zInv felt.Element
	if _, err := zInv.Inverse(&p.z); err != nil {
		return
	}
	x.Mul(&p.x, &zInv)
	y.Mul(&p.y, &zInv)
	return
}

// X returns the affine x-coordinate of p, or 0 for the identity.
func (p *Point) X() felt.Element {
	x, _ := p.Affine()
	return x
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.z.IsZero()
}

// IsOnCurve reports whether p satisfies Y^2 Z = X^3 + X Z^2 + beta Z^3.
// The identity is on the curve.
func (p *Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return !p.y.IsZero() && p.x.IsZero()
	}
	var lhs, rhs, z2, t felt.Element
	lhs.Square(&p.y)
	lhs.Mul(&lhs, &p.z)

	z2.Square(&p.z)
	rhs.Square(&p.x)
	rhs.Mul(&rhs, &p.x)
	t.Mul(&p.x, &z2)
	rhs.Add(&rhs, &t)
	t.Mul(&z2, &p.z)
	t.Mul(&t, &beta)
	rhs.Add(&rhs, &t)
	return lhs.Equal(&rhs)
}

// Equal reports whether p and q represent the same point.
func (p *Point) Equal(q *Point) bool {
	pInf, qInf := p.IsIdentity(), q.IsIdentity()
	if pInf || qInf {
		return pInf == qInf
	}
	var l, r felt.Element
	l.Mul(&p.x, &q.z)
	r.Mul(&q.x, &p.z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.y, &q.z)
	r.Mul(&q.y, &p.z)
	return l.Equal(&r)
}

// Neg sets p to -a and returns p.
func (p *Point) Neg(a *Point) *Point {
	p.x.Set(&a.x)
	p.y.Neg(&a.y)
	p.z.Set(&a.z)
	return p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	var t0, t1, t2, t3, t4, t5, x3, y3, z3 felt.Element

	t0.Mul(&a.x, &b.x)
	t1.Mul(&a.y, &b.y)
	t2.Mul(&a.z, &b.z)
	t3.Add(&a.x, &a.y)
	t4.Add(&b.x, &b.y)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)
	t4.Add(&a.x, &a.z)
	t5.Add(&b.x, &b.z)
	t4.Mul(&t4, &t5)
	t5.Add(&t0, &t2)
	t4.Sub(&t4, &t5)
	t5.Add(&a.y, &a.z)
	x3.Add(&b.y, &b.z)
	t5.Mul(&t5, &x3)
	x3.Add(&t1, &t2)
	t5.Sub(&t5, &x3)
	z3.Set(&t4) // a * t4
	x3.Mul(&b3, &t2)
	z3.Add(&x3, &z3)
	x3.Sub(&t1, &z3)
	z3.Add(&t1, &z3)
	y3.Mul(&x3, &z3)
	t1.Double(&t0)
	t1.Add(&t1, &t0)
	// t2 = a * t2
	t4.Mul(&b3, &t4)
	t1.Add(&t1, &t2)
	t2.Sub(&t0, &t2)
	// t2 = a * t2
	t4.Add(&t4, &t2)
	t0.Mul(&t1, &t4)
	y3.Add(&y3, &t0)
	t0.Mul(&t5, &t4)
	x3.Mul(&t3, &x3)
	x3.Sub(&x3, &t0)
	t0.Mul(&t3, &t1)
	z3.Mul(&t5, &z3)
	z3.Add(&z3, &t0)

	p.x, p.y, p.z = x3, y3, z3
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b *Point) *Point {
	var nb Point
	nb.Neg(b)
	return p.Add(a, &nb)
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a *Point) *Point {
	var t0, t1, t2, t3, x3, y3, z3 felt.Element

	t0.Square(&a.x)
	t1.Square(&a.y)
	t2.Square(&a.z)
	t3.Mul(&a.x, &a.y)
	t3.Double(&t3)
	z3.Mul(&a.x, &a.z)
	z3.Double(&z3)
	x3.Set(&z3) // a * z3
	y3.Mul(&b3, &t2)
	y3.Add(&x3, &y3)
	x3.Sub(&t1, &y3)
	y3.Add(&t1, &y3)
	y3.Mul(&x3, &y3)
	x3.Mul(&t3, &x3)
	z3.Mul(&b3, &z3)
	// t2 = a * t2
	t3.Sub(&t0, &t2)
	// t3 = a * t3
	t3.Add(&t3, &z3)
	z3.Double(&t0)
	t0.Add(&z3, &t0)
	t0.Add(&t0, &t2)
	t0.Mul(&t0, &t3)
	y3.Add(&y3, &t0)
	t2.Mul(&a.y, &a.z)
	t2.Double(&t2)
	t0.Mul(&t2, &t3)
	x3.Sub(&x3, &t0)
	z3.Mul(&t2, &t1)
	z3.Double(&z3)
	z3.Double(&z3)

	p.x, p.y, p.z = x3, y3, z3
	return p
}

// Select sets p to a if c == 0 and to b otherwise, in constant time.
func (p *Point) Select(c int, a, b *Point) *Point {
	p.x.Select(c, &a.x, &b.x)
	p.y.Select(c, &a.y, &b.y)
	p.z.Select(c, &a.z, &b.z)
	return p
}

// condSwap exchanges a and b when c == 1, in constant time.
func condSwap(c int, a, b *Point) {
	var ta, tb Point
	ta.Select(c, a, b)
	tb.Select(c, b, a)
	*a, *b = ta, tb
}

// ScalarMult sets p to k * a and returns p.
//
// A Montgomery ladder runs over all bits of the 32-byte encoding of k, so
// the sequence of field operations does not depend on k. Use it for
// secret scalars.
func (p *Point) ScalarMult(a *Point, k *Scalar) *Point {
	var r0, r1 Point
	r0.SetIdentity()
	r1.Set(a)
	kb := k.Bytes()
	for _, byt := range kb {
		for i := 7; i >= 0; i-- {
			bit := int(byt>>uint(i)) & 1
			condSwap(bit, &r0, &r1)
			r1.Add(&r0, &r1)
			r0.Double(&r0)
			condSwap(bit, &r0, &r1)
		}
	}
	return p.Set(&r0)
}

// ScalarBaseMult sets p to k * G and returns p.
func (p *Point) ScalarBaseMult(k *Scalar) *Point {
	return p.ScalarMult(&generator, k)
}

// MulPublic sets p to u1 * G + u2 * q and returns p.
//
// The joint multiplication is delegated to gnark-crypto's Straus-Shamir
// implementation, which is variable time. It must only be used with
// public inputs such as signature verification data.
func (p *Point) MulPublic(u1 *Scalar, q *Point, u2 *Scalar) *Point {
	g := p.toJac(&generator)
	qj := p.toJac(q)
	var res starkcurve.G1Jac
	res.JointScalarMultiplication(&g, &qj, u1.BigInt(), u2.BigInt())
	return p.fromJac(&res)
}

func (p *Point) toJac(a *Point) starkcurve.G1Jac {
	var aff starkcurve.G1Affine
	if !a.IsIdentity() {
		x, y := a.Affine()
		aff.X, aff.Y = *x.Fp(), *y.Fp()
	}
	var j starkcurve.G1Jac
	j.FromAffine(&aff)
	return j
}

func (p *Point) fromJac(j *starkcurve.G1Jac) *Point {
	if j.Z.IsZero() {
		return p.SetIdentity()
	}
	var aff starkcurve.G1Affine
	aff.FromJacobian(j)
	p.x = felt.FromFp(&aff.X)
	p.y = felt.FromFp(&aff.Y)
	p.z.SetOne()
	return p
}

// Decompress sets p to the point with abscissa x whose ordinate has the
// requested parity, and returns p. The ordinate is the canonical square
// root of x^3 + x + beta, negated when its parity differs from odd.
func (p *Point) Decompress(x *felt.Element, odd bool) (*Point, error) {
	rhs := curveRHS(x)
	var y felt.Element
	if _, err := y.Sqrt(&rhs); err != nil {
		return nil, fmt.Errorf("%w: x = %s", ErrNotOnCurve, x.Text())
	}
	if y.IsOdd() != odd {
		y.Neg(&y)
	}
	p.x.Set(x)
	p.y.Set(&y)
	p.z.SetOne()
	return p, nil
}

// IsOnCurveX reports whether x is the abscissa of a curve point.
func IsOnCurveX(x *felt.Element) bool {
	rhs := curveRHS(x)
	return rhs.Legendre() >= 0
}

// curveRHS returns x^3 + x + beta.
func curveRHS(x *felt.Element) felt.Element {
	var r felt.Element
	r.Square(x)
	r.Mul(&r, x)
	r.Add(&r, x)
	r.Add(&r, &beta)
	return r
}

func isOnCurveAffine(x, y *felt.Element) bool {
	rhs := curveRHS(x)
	var lhs felt.Element
	lhs.Square(y)
	return lhs.Equal(&rhs)
}

// String returns the affine form of p, or "O" for the identity.
func (p Point) String() string {
	if p.IsIdentity() {
		return "O"
	}
	x, y := p.Affine()
	return "(" + x.Text() + ", " + y.Text() + ")"
}
