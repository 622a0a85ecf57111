package curve

import "io"

// Stark gives access to the STARK curve through a single value, in the
// same shape as the other group implementations built on gnark-crypto.
//
// Stark is a zero-sized type. Create an instance with &Stark{} or
// new(Stark).
type Stark struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *Stark) NewScalar() *Scalar {
	return new(Scalar)
}

// NewPoint returns a new point initialized to the identity element.
func (g *Stark) NewPoint() *Point {
	return new(Point).SetIdentity()
}

// Generator returns the standard base point.
func (g *Stark) Generator() *Point {
	p := generator
	return &p
}

// RandomScalar draws a uniformly random non-zero scalar from r.
// Candidates are 252-bit values read from r and rejected until one falls
// in [1, N).
func (g *Stark) RandomScalar(r io.Reader) (*Scalar, error) {
	var buf [ScalarBytes]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		buf[0] &= 0x0f
		s, err := new(Scalar).SetBytes(buf[:])
		if err != nil || s.IsZero() {
			continue
		}
		return s, nil
	}
}

// Order returns the order of the curve's group as a big-endian byte slice.
func (g *Stark) Order() []byte {
	return Order().Bytes()
}
