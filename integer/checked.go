package integer

import (
	"math"
	"math/bits"
)

// MaxPow10 is the largest n for which 10^n fits in an int64.
const MaxPow10 = 18

// pow10 holds every power of ten that fits in a uint64.
var pow10 = [MaxPow10 + 2]uint64{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000,
	100000000000000000, 1000000000000000000, 10000000000000000000,
}

// Add returns a + b.
func Add(a, b int64) (int64, error) {
	c := a + b
	if (a >= 0) == (b >= 0) && (c >= 0) != (a >= 0) {
		return 0, Error.New("%w: %d + %d", ErrOverflow, a, b)
	}

	return c, nil
}

// Sub returns a - b.
func Sub(a, b int64) (int64, error) {
	c := a - b
	if (a >= 0) != (b >= 0) && (c >= 0) != (a >= 0) {
		return 0, Error.New("%w: %d - %d", ErrOverflow, a, b)
	}

	return c, nil
}

// Mul returns a * b.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if hi != 0 {
		return 0, Error.New("%w: %d * %d", ErrOverflow, a, b)
	}

	c, err := fromMagnitude(lo, (a < 0) != (b < 0))
	if err != nil {
		return 0, Error.New("%w: %d * %d", ErrOverflow, a, b)
	}

	return c, nil
}

// Neg returns -a. Only math.MinInt64 overflows.
func Neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, Error.New("%w: -(%d)", ErrOverflow, a)
	}

	return -a, nil
}

// Pow10 returns 10^n.
func Pow10(n uint32) (int64, error) {
	if n > MaxPow10 {
		return 0, Error.New("%w: 10^%d", ErrOverflow, n)
	}

	return int64(pow10[n]), nil
}

// MulPow10 returns a * 10^n. Zero stays zero for every n.
func MulPow10(a int64, n uint32) (int64, error) {
	if a == 0 || n == 0 {
		return a, nil
	}

	if n > MaxPow10 {
		return 0, Error.New("%w: %d * 10^%d", ErrOverflow, a, n)
	}

	c, err := Mul(a, int64(pow10[n]))
	if err != nil {
		return 0, Error.New("%w: %d * 10^%d", ErrOverflow, a, n)
	}

	return c, nil
}

// DivPow10 returns a / 10^n rounded half away from zero.
func DivPow10(a int64, n uint32) int64 {
	if n == 0 {
		return a
	}

	// 10^20 / 2 is beyond every int64 magnitude.
	if n > MaxPow10+1 {
		return 0
	}

	p := pow10[n]
	q, r := magnitude(a)/p, magnitude(a)%p
	if r >= p-r {
		q++
	}

	if a < 0 {
		return -int64(q)
	}

	return int64(q)
}

// CmpPow10 compares a * 10^n with b and returns -1, 0 or +1. The product is
// formed in 128 bits so the result is exact for every input.
func CmpPow10(a int64, n uint32, b int64) int {
	sa, sb := sign(a), sign(b)
	if sa != sb {
		if sa < sb {
			return -1
		}

		return 1
	}

	if sa == 0 {
		return 0
	}

	// Compare magnitudes, then flip for negatives.
	c := 1
	if n <= MaxPow10+1 {
		hi, lo := bits.Mul64(magnitude(a), pow10[n])
		mb := magnitude(b)

		switch {
		case hi != 0 || lo > mb:
			c = 1
		case lo < mb:
			c = -1
		default:
			c = 0
		}
	}

	return sa * c
}

// Strip removes up to limit trailing decimal zeros from a and reports how
// many were removed, such that a == stripped * 10^n. Zero strips to (0, 0).
func Strip(a int64, limit uint32) (stripped int64, n uint32) {
	if a == 0 {
		return 0, 0
	}

	for n < limit && a%10 == 0 {
		a /= 10
		n++
	}

	return a, n
}

func sign(a int64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}

	return 0
}

// magnitude returns |a|. The result is exact for math.MinInt64.
func magnitude(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}

	return uint64(a)
}

// fromMagnitude applies the sign to m.
func fromMagnitude(m uint64, negative bool) (int64, error) {
	if negative {
		if m > 1<<63 {
			return 0, Error.New("%w: -%d", ErrOverflow, m)
		}

		return -int64(m), nil
	}

	if m > math.MaxInt64 {
		return 0, Error.New("%w: %d", ErrOverflow, m)
	}

	return int64(m), nil
}
