package intfloat

import (
	"fmt"
	"math"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/intfloat/decimal"
	"github.com/calebcase/intfloat/integer"
)

// MaxScale is the largest scale a Value may have.
const MaxScale = decimal.MaxScale

// A float64 product below exactFloat is off by at most half a unit before
// rounding. Products at or above overflowFloat cannot fit the mantissa.
const (
	exactFloat    = 1 << 53
	overflowFloat = 1 << 64
)

// maxFloatScale is the largest scale at which a non-zero float64 can still
// fit the mantissa: the smallest subnormal times 10^343 exceeds 2^63.
const maxFloatScale = 342

// pow10f holds the powers of ten that are exact in float64.
var pow10f = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// Value is a fixed point base 10 number: mantissa * 10^-scale.
//
// The zero Value is 0 at scale 0.
type Value struct {
	mantissa int64
	scale    uint32
}

// New returns mantissa * 10^-scale. It panics if scale exceeds MaxScale.
func New(mantissa int64, scale uint32) Value {
	if scale > MaxScale {
		panic(Error.New("%w: scale %d > %d", ErrInvalidInput, scale, MaxScale))
	}

	return Value{
		mantissa: mantissa,
		scale:    scale,
	}
}

// FromInt64 returns i at scale 0.
func FromInt64(i int64) Value {
	return Value{mantissa: i}
}

// From converts f to a Value with the given scale, rounding half away from
// zero. See the package documentation for the precision of the conversion.
func From(f float64, scale uint32) (v Value, err error) {
	defer Error.WrapP(&err)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, Error.New("%w: %v", ErrInvalidInput, f)
	}

	if scale > MaxScale {
		return Value{}, Error.New("%w: scale %d > %d", ErrInvalidInput, scale, MaxScale)
	}

	if f == 0 {
		return Value{scale: scale}, nil
	}

	if int(scale) < len(pow10f) {
		p := f * pow10f[scale]

		switch {
		case math.Abs(p) < exactFloat:
			return Value{mantissa: int64(math.Round(p)), scale: scale}, nil
		case math.Abs(p) >= overflowFloat:
			return Value{}, Error.New("%w: %v at scale %d", ErrOverflow, f, scale)
		}
	} else if scale > maxFloatScale {
		return Value{}, Error.New("%w: %v at scale %d", ErrOverflow, f, scale)
	}

	r := new(big.Rat).SetFloat64(f)
	r.Mul(r, new(big.Rat).SetInt(pow10Big(int64(scale))))

	m, err := roundQuo(r.Num(), r.Denom())
	if err != nil {
		return Value{}, Error.New("%w: %v at scale %d", ErrOverflow, f, scale)
	}

	return Value{mantissa: m, scale: scale}, nil
}

// MustFrom is like From but panics on error.
func MustFrom(f float64, scale uint32) Value {
	v, err := From(f, scale)
	if err != nil {
		panic(err)
	}

	return v
}

// Mantissa returns the unscaled integer.
func (v Value) Mantissa() int64 { return v.mantissa }

// Scale returns the number of decimal digits after the point.
func (v Value) Scale() uint32 { return v.scale }

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	switch {
	case v.mantissa < 0:
		return -1
	case v.mantissa > 0:
		return 1
	}

	return 0
}

// IsZero reports whether v is zero at any scale.
func (v Value) IsZero() bool { return v.mantissa == 0 }

// Rescale returns v with the given scale. The number represented does not
// change. Scales smaller than v.Scale() are rejected with ErrPrecisionLoss;
// use Round to drop digits.
func (v Value) Rescale(scale uint32) (_ Value, err error) {
	defer Error.WrapP(&err)

	if scale < v.scale {
		return Value{}, oops.Trace(fmt.Errorf("%w: scale %d to %d", ErrPrecisionLoss, v.scale, scale))
	}

	if scale > MaxScale {
		return Value{}, Error.New("%w: scale %d > %d", ErrOverflow, scale, MaxScale)
	}

	m, err := integer.MulPow10(v.mantissa, scale-v.scale)
	if err != nil {
		return Value{}, err
	}

	return Value{mantissa: m, scale: scale}, nil
}

// Round returns v at the given scale, rounding half away from zero when
// digits are dropped. Raising the scale is the same as Rescale.
func (v Value) Round(scale uint32) (Value, error) {
	if scale >= v.scale {
		return v.Rescale(scale)
	}

	return Value{
		mantissa: integer.DivPow10(v.mantissa, v.scale-scale),
		scale:    scale,
	}, nil
}

// roundQuo returns num / den rounded half away from zero.
func roundQuo(num, den *big.Int) (int64, error) {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))

	r.Abs(r).Lsh(r, 1)
	if r.CmpAbs(den) >= 0 {
		if num.Sign()*den.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}

	if !q.IsInt64() {
		return 0, Error.New("%w: %s", ErrOverflow, q)
	}

	return q.Int64(), nil
}

func pow10Big(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
