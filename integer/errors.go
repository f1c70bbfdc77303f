package integer

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// ErrOverflow indicates a result outside the range of int64.
var ErrOverflow = errors.New("overflow")
