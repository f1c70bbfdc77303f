package intfloat

import (
	"errors"

	"github.com/zeebo/errs"

	"github.com/calebcase/intfloat/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("intfloat")

var (
	// ErrInvalidInput is returned for non-finite floats, malformed text and
	// out of range scales given at construction.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverflow is returned when a conversion, rescale or arithmetic
	// result does not fit the mantissa or exceeds MaxScale.
	ErrOverflow = integer.ErrOverflow

	// ErrPrecisionLoss is returned when rescaling to a smaller scale.
	ErrPrecisionLoss = errors.New("precision loss rejected")

	// ErrDivisionByZero is returned when dividing by a zero value.
	ErrDivisionByZero = errors.New("division by zero")
)
