// Package intfloat provides a hashable fixed point base 10 number.
//
// Floats make poor map keys: NaN is not equal to itself, and two computations
// of the "same" number rarely agree to the last bit. A Value instead stores
//
//  number = mantissa * 10 ^ -scale
//
// where mantissa is an int64 and scale is the number of decimal digits kept.
// For example:
//
//  5.20 = 520 * 10^-2
//
// Values convert from float64 by rounding to the requested scale, half away
// from zero:
//
//  From(5.2, 0)  // 5
//  From(5.2, 1)  // 5.2
//  From(-2.5, 0) // -3
//
// Precision
//
// The scale of a value only grows. Add and Sub align both operands to the
// larger scale, Mul sums the scales, and Rescale refuses to lower a scale
// (ErrPrecisionLoss). Lowering a scale is only done explicitly with Round or
// Div, which round half away from zero.
//
// Equality
//
// Values compare by the number they represent, not by their parts, so 5 and
// 5.00 are Equal. Go's == operator compares the parts, so a Value must not be
// used directly as a map key. Use Key, which strips trailing zeros into a
// canonical comparable form:
//
//  seen := map[intfloat.Key]bool{}
//  seen[a.Key()] = true
//
// Hash is derived from the same canonical form, so Equal values always hash
// alike regardless of scale.
//
// Tradeoffs
//
// A Value is fast because it is a plain int64 and a scale, and that is also
// its limit. Every operation whose result does not fit an int64 mantissa (or
// whose scale would pass MaxScale) fails with ErrOverflow instead of wrapping.
// Converting 1e30 at scale 10 fails rather than producing a wrong mantissa.
//
// Conversion from float64 multiplies by an exact power of ten in float64
// arithmetic and then rounds, as long as the product stays below 2^53 and the
// scale is at most 22. The multiplication may itself round, so an input within
// an ulp of a rounding tie can land on either side of it. All other
// conversions are exact. For exact decimal arithmetic on
// arbitrary magnitudes use a decimal library instead.
//
// Values are immutable and safe for concurrent use.
package intfloat
