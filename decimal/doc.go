// Package decimal provides the binary layout of a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is fixed point number, value is an unscaled signed integer, and
// scale is a non-negative base 10 exponent. For example:
//
//  5.20 = 520 * 10^-2
//
// Scale may be up to 2^30 - 1.
//
// Encoding
//
// The decimal is laid out first by the unscaled integer value (with sign bit),
// then the scale, and finally the last 2 bits are the scale size.
//
// Decoding reads the scale size from the last two bits, extracts the scale
// trailer (up to 4 bytes total), and then the remaining bytes are the value.
//
// Encoding always uses the smallest trailer that can hold the scale.
//
// The value is encoded big-endian with a trailing sign bit (aka zigzag) as in
// the integer package. The scale trailer is big-endian with the scale shifted
// left by two bits.
//
// The scale size is encoded as two bits:
//
//  | 0 | 1 | Available Scale |
//  |-------|-----------------|
//  | 0 . 1 | 0 to 2^6 - 1    | 1 byte
//  | 1 . 0 | 2^6 to 2^14 - 1 | 2 bytes
//  | 1 . 1 | 2^14 to 2^22 - 1| 3 bytes
//  | 0 . 0 | 2^22 to 2^30 - 1| 4 bytes
//  |-------|-----------------|
//  | 0 | 1 |
//
// Examples
//
// Zero (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 | 0 | Value of +0.
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 | 0 . 1 | 1 byte scale with scale of 0.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// -0.05 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 0 . 1 | 1 | Value of -5.
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 0 | 0 . 1 | 1 byte scale with scale of 2.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 5.20 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 | Value of +520.
//  | 0 . 0 . 0 . 1 . 0 . 0 . 0 | 0 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 . 0 | 0 . 1 | 1 byte scale with scale of 2.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 10^-100 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | Value of +1.
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 | 2 byte scale with scale of 100.
//  | 1 . 0 . 0 . 1 . 0 . 0 | 1 . 0 |
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
package decimal
