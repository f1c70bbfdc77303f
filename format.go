package intfloat

import (
	"math"
	"strconv"
	"strings"

	"github.com/calebcase/intfloat/integer"
)

// maxExactFloat is the largest mantissa magnitude float64 holds exactly.
const maxExactFloat = 1 << 53

// Float64 returns the float64 nearest to v.
func (v Value) Float64() float64 {
	if int(v.scale) < len(pow10f) && v.mantissa >= -maxExactFloat && v.mantissa <= maxExactFloat {
		return float64(v.mantissa) / pow10f[v.scale]
	}

	// Both operands of the division above would be rounded. Let strconv do
	// the correctly rounded conversion instead.
	s := strconv.FormatInt(v.mantissa, 10) + "e-" + strconv.FormatUint(uint64(v.scale), 10)

	// The exponent is never positive, so the only range error is an
	// underflow to zero.
	f, _ := strconv.ParseFloat(s, 64)

	return f
}

// Int64 returns the integer part of v, truncated toward zero.
func (v Value) Int64() int64 {
	if v.scale == 0 {
		return v.mantissa
	}

	// |mantissa| < 10^19 <= 10^scale
	if v.scale > integer.MaxPow10 {
		return 0
	}

	p, _ := integer.Pow10(v.scale)

	return v.mantissa / p
}

// String returns v as a decimal with exactly Scale digits after the point.
func (v Value) String() string {
	digits := strconv.FormatUint(magnitude(v.mantissa), 10)
	scale := int(v.scale)

	sb := &strings.Builder{}
	sb.Grow(len(digits) + scale + 3)

	if v.mantissa < 0 {
		sb.WriteByte('-')
	}

	switch {
	case scale == 0:
		sb.WriteString(digits)
	case scale >= len(digits):
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", scale-len(digits)))
		sb.WriteString(digits)
	default:
		sb.WriteString(digits[:len(digits)-scale])
		sb.WriteByte('.')
		sb.WriteString(digits[len(digits)-scale:])
	}

	return sb.String()
}

// Parse parses a decimal literal of the form [+-]digits[.digits]. The scale
// of the result is the number of digits after the point, so Parse(v.String())
// returns v with its scale intact.
func Parse(s string) (v Value, err error) {
	defer Error.WrapP(&err)

	input := s

	negative := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, fraction := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, fraction = s[:i], s[i+1:]

		if len(fraction) == 0 {
			return Value{}, Error.New("%w: %q: no digits after point", ErrInvalidInput, input)
		}
	}

	if len(whole) == 0 {
		return Value{}, Error.New("%w: %q: no digits before point", ErrInvalidInput, input)
	}

	if len(fraction) > MaxScale {
		return Value{}, Error.New("%w: %q: scale %d > %d", ErrInvalidInput, input, len(fraction), MaxScale)
	}

	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}

	var m uint64

	for _, part := range [2]string{whole, fraction} {
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c < '0' || c > '9' {
				return Value{}, Error.New("%w: %q: unexpected %q", ErrInvalidInput, input, c)
			}

			d := uint64(c - '0')
			if m > (limit-d)/10 {
				return Value{}, Error.New("%w: %q", ErrOverflow, input)
			}

			m = m*10 + d
		}
	}

	mantissa := int64(m)
	if negative {
		mantissa = -mantissa
	}

	return Value{mantissa: mantissa, scale: uint32(len(fraction))}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// magnitude returns |m|. The result is exact for math.MinInt64.
func magnitude(m int64) uint64 {
	if m < 0 {
		return uint64(-m)
	}

	return uint64(m)
}
