package curve

import "errors"

var (
	// ErrNotOnCurve is returned when coordinates do not describe a point
	// of the curve, or when an abscissa has no matching ordinate.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrInvalidScalar is returned when an encoding is not a canonical
	// scalar below the curve order.
	ErrInvalidScalar = errors.New("curve: invalid scalar")

	// ErrZeroScalar is returned when inverting the zero scalar.
	ErrZeroScalar = errors.New("curve: cannot invert zero scalar")
)
