package integer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecked(t *testing.T) {
	type TC struct {
		name     string
		fn       func() (int64, error)
		expect   int64
		overflow bool
	}

	tcs := []TC{
		{name: "add", fn: func() (int64, error) { return Add(2, 3) }, expect: 5},
		{name: "add negative", fn: func() (int64, error) { return Add(-2, -3) }, expect: -5},
		{name: "add max", fn: func() (int64, error) { return Add(math.MaxInt64, 1) }, overflow: true},
		{name: "add min", fn: func() (int64, error) { return Add(math.MinInt64, -1) }, overflow: true},
		{name: "add mixed", fn: func() (int64, error) { return Add(math.MinInt64, math.MaxInt64) }, expect: -1},
		{name: "sub", fn: func() (int64, error) { return Sub(2, 3) }, expect: -1},
		{name: "sub min", fn: func() (int64, error) { return Sub(math.MinInt64, 1) }, overflow: true},
		{name: "sub max", fn: func() (int64, error) { return Sub(math.MaxInt64, -1) }, overflow: true},
		{name: "sub zero min", fn: func() (int64, error) { return Sub(0, math.MinInt64) }, overflow: true},
		{name: "sub same", fn: func() (int64, error) { return Sub(math.MinInt64, math.MinInt64) }, expect: 0},
		{name: "mul", fn: func() (int64, error) { return Mul(-4, 5) }, expect: -20},
		{name: "mul zero", fn: func() (int64, error) { return Mul(0, math.MinInt64) }, expect: 0},
		{name: "mul min", fn: func() (int64, error) { return Mul(math.MinInt64, 1) }, expect: math.MinInt64},
		{name: "mul min neg", fn: func() (int64, error) { return Mul(math.MinInt64, -1) }, overflow: true},
		{name: "mul large", fn: func() (int64, error) { return Mul(1<<32, 1<<31) }, overflow: true},
		{name: "mul edge", fn: func() (int64, error) { return Mul(-(1 << 32), 1<<31) }, expect: math.MinInt64},
		{name: "neg", fn: func() (int64, error) { return Neg(7) }, expect: -7},
		{name: "neg min", fn: func() (int64, error) { return Neg(math.MinInt64) }, overflow: true},
		{name: "pow10 0", fn: func() (int64, error) { return Pow10(0) }, expect: 1},
		{name: "pow10 18", fn: func() (int64, error) { return Pow10(18) }, expect: 1_000_000_000_000_000_000},
		{name: "pow10 19", fn: func() (int64, error) { return Pow10(19) }, overflow: true},
		{name: "mulpow10", fn: func() (int64, error) { return MulPow10(5, 2) }, expect: 500},
		{name: "mulpow10 negative", fn: func() (int64, error) { return MulPow10(-5, 18) }, expect: -5_000_000_000_000_000_000},
		{name: "mulpow10 zero", fn: func() (int64, error) { return MulPow10(0, 1000) }, expect: 0},
		{name: "mulpow10 large n", fn: func() (int64, error) { return MulPow10(1, 19) }, overflow: true},
		{name: "mulpow10 overflow", fn: func() (int64, error) { return MulPow10(10, 18) }, overflow: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.fn()
			if tc.overflow {
				require.ErrorIs(t, err, ErrOverflow)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expect, v)
		})
	}
}

func TestStrip(t *testing.T) {
	type TC struct {
		in       int64
		limit    uint32
		stripped int64
		n        uint32
	}

	tcs := []TC{
		{in: 0, limit: 10, stripped: 0, n: 0},
		{in: 5, limit: 10, stripped: 5, n: 0},
		{in: 500, limit: 10, stripped: 5, n: 2},
		{in: 500, limit: 1, stripped: 50, n: 1},
		{in: 500, limit: 0, stripped: 500, n: 0},
		{in: -1200, limit: 10, stripped: -12, n: 2},
		{in: 1_000_000_000_000_000_000, limit: 100, stripped: 1, n: 18},
		{in: math.MinInt64, limit: 100, stripped: math.MinInt64, n: 0},
	}

	for _, tc := range tcs {
		stripped, n := Strip(tc.in, tc.limit)
		require.Equal(t, tc.stripped, stripped, "in=%d limit=%d", tc.in, tc.limit)
		require.Equal(t, tc.n, n, "in=%d limit=%d", tc.in, tc.limit)
	}
}

func TestDivPow10(t *testing.T) {
	type TC struct {
		in     int64
		n      uint32
		expect int64
	}

	tcs := []TC{
		{in: 52, n: 0, expect: 52},
		{in: 52, n: 1, expect: 5},
		{in: 55, n: 1, expect: 6},
		{in: -55, n: 1, expect: -6},
		{in: -54, n: 1, expect: -5},
		{in: 1249, n: 2, expect: 12},
		{in: 1250, n: 2, expect: 13},
		{in: math.MaxInt64, n: 18, expect: 9},
		{in: math.MinInt64, n: 1, expect: -922337203685477581},
		{in: math.MinInt64, n: 19, expect: -1},
		{in: 4_999_999_999_999_999_999, n: 19, expect: 0},
		{in: 5_000_000_000_000_000_000, n: 19, expect: 1},
		{in: math.MaxInt64, n: 20, expect: 0},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.expect, DivPow10(tc.in, tc.n), "in=%d n=%d", tc.in, tc.n)
	}
}

func TestCmpPow10(t *testing.T) {
	type TC struct {
		a      int64
		n      uint32
		b      int64
		expect int
	}

	tcs := []TC{
		{a: 0, n: 5, b: 0, expect: 0},
		{a: 0, n: 5, b: 1, expect: -1},
		{a: -1, n: 5, b: 0, expect: -1},
		{a: 5, n: 2, b: 500, expect: 0},
		{a: 5, n: 2, b: 501, expect: -1},
		{a: -5, n: 2, b: -501, expect: 1},
		{a: -5, n: 2, b: -499, expect: -1},
		{a: 1, n: 19, b: math.MaxInt64, expect: 1},
		{a: -1, n: 19, b: math.MinInt64, expect: -1},
		{a: math.MaxInt64, n: 18, b: math.MaxInt64, expect: 1},
		{a: math.MinInt64, n: 0, b: math.MinInt64, expect: 0},
		{a: 1, n: 1000, b: math.MaxInt64, expect: 1},
		{a: -1, n: 1000, b: math.MinInt64, expect: -1},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.expect, CmpPow10(tc.a, tc.n, tc.b), "a=%d n=%d b=%d", tc.a, tc.n, tc.b)
	}
}
