package stark

import (
	"errors"
	"strconv"

	"github.com/f3rmion/stark/ecdsa"
	"github.com/f3rmion/stark/felt"
)

// Status classifies the outcome of an operation.
type Status int

// Status values. They are part of the wire contract and must not change.
const (
	Success          Status = 0
	InvalidInput     Status = 1
	InvalidSignature Status = 2
	RecoveryFailed   Status = 3
	DivisionByZero   Status = 4
	NoInverse        Status = 5
	NoSquareRoot     Status = 6
)

var statusNames = [...]string{
	Success:          "success",
	InvalidInput:     "invalid input",
	InvalidSignature: "invalid signature",
	RecoveryFailed:   "recovery failed",
	DivisionByZero:   "division by zero",
	NoInverse:        "no inverse",
	NoSquareRoot:     "no square root",
}

// String returns a short description of s.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// StatusOf returns the status matching err. A nil error is Success;
// malformed input and any unrecognised error are InvalidInput.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, felt.ErrDivisionByZero):
		return DivisionByZero
	case errors.Is(err, felt.ErrNoInverse):
		return NoInverse
	case errors.Is(err, felt.ErrNoSquareRoot):
		return NoSquareRoot
	case errors.Is(err, ecdsa.ErrRecoveryFailed):
		return RecoveryFailed
	case errors.Is(err, ecdsa.ErrInvalidSignature):
		return InvalidSignature
	default:
		return InvalidInput
	}
}
