package intfloat

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/intfloat/integer"
)

// Quotients with a decimal exponent outside (divMinExp, divMaxExp) are known
// without computing them: below they round to zero, above they overflow.
const (
	divMinExp = -20
	divMaxExp = 38
)

// align rescales the operand with the smaller scale to the larger one.
func align(v, w Value) (_, _ Value, err error) {
	switch {
	case v.scale < w.scale:
		v, err = v.Rescale(w.scale)
	case w.scale < v.scale:
		w, err = w.Rescale(v.scale)
	}

	return v, w, err
}

// Add returns v + w at the larger of the two scales.
func (v Value) Add(w Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	v, w, err = align(v, w)
	if err != nil {
		return Value{}, err
	}

	m, err := integer.Add(v.mantissa, w.mantissa)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: m, scale: v.scale}, nil
}

// Sub returns v - w at the larger of the two scales.
func (v Value) Sub(w Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	v, w, err = align(v, w)
	if err != nil {
		return Value{}, err
	}

	m, err := integer.Sub(v.mantissa, w.mantissa)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: m, scale: v.scale}, nil
}

// Mul returns v * w. The scale of the product is the sum of the scales; use
// Round to bound it when multiplying repeatedly.
func (v Value) Mul(w Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	scale := uint64(v.scale) + uint64(w.scale)
	if scale > MaxScale {
		return Value{}, Error.New("%w: scale %d > %d", ErrOverflow, scale, MaxScale)
	}

	m, err := integer.Mul(v.mantissa, w.mantissa)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: m, scale: uint32(scale)}, nil
}

// Div returns v / w at the given scale, rounded half away from zero.
func (v Value) Div(w Value, scale uint32) (_ Value, err error) {
	defer Error.WrapP(&err)

	if w.mantissa == 0 {
		return Value{}, oops.Trace(fmt.Errorf("%w: %s / %s", ErrDivisionByZero, v, w))
	}

	if scale > MaxScale {
		return Value{}, Error.New("%w: scale %d > %d", ErrOverflow, scale, MaxScale)
	}

	if v.mantissa == 0 {
		return Value{scale: scale}, nil
	}

	// v/w * 10^scale = v.mantissa * 10^exp / w.mantissa
	exp := int64(scale) + int64(w.scale) - int64(v.scale)

	switch {
	case exp <= divMinExp:
		return Value{scale: scale}, nil
	case exp >= divMaxExp:
		return Value{}, Error.New("%w: %s / %s at scale %d", ErrOverflow, v, w, scale)
	}

	num := big.NewInt(v.mantissa)
	den := big.NewInt(w.mantissa)

	if exp >= 0 {
		num.Mul(num, pow10Big(exp))
	} else {
		den.Mul(den, pow10Big(-exp))
	}

	m, err := roundQuo(num, den)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: m, scale: scale}, nil
}

// Rem returns the remainder of v / w truncated toward zero, at the larger of
// the two scales. The result has the sign of v.
func (v Value) Rem(w Value) (_ Value, err error) {
	defer Error.WrapP(&err)

	if w.mantissa == 0 {
		return Value{}, oops.Trace(fmt.Errorf("%w: %s %% %s", ErrDivisionByZero, v, w))
	}

	v, w, err = align(v, w)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: v.mantissa % w.mantissa, scale: v.scale}, nil
}

// Neg returns -v.
func (v Value) Neg() (_ Value, err error) {
	defer Error.WrapP(&err)

	m, err := integer.Neg(v.mantissa)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: m, scale: v.scale}, nil
}

// Abs returns |v|.
func (v Value) Abs() (Value, error) {
	if v.mantissa < 0 {
		return v.Neg()
	}

	return v, nil
}

// Sum adds vs starting from zero. The result has the largest scale of vs.
func Sum(vs ...Value) (sum Value, err error) {
	for _, v := range vs {
		sum, err = sum.Add(v)
		if err != nil {
			return Value{}, err
		}
	}

	return sum, nil
}
