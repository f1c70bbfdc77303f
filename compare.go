package intfloat

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/calebcase/intfloat/integer"
)

// Key is the canonical form of a Value: trailing zeros are stripped from the
// mantissa as far as the scale allows. Values are Equal exactly when their
// keys are ==, which makes Key suitable as a map key.
type Key struct {
	mantissa int64
	scale    uint32
}

// Value returns the canonical Value for k.
func (k Key) Value() Value {
	return Value{mantissa: k.mantissa, scale: k.scale}
}

// Hash returns a 64 bit hash of the key.
func (k Key) Hash() uint64 {
	var buf [12]byte

	binary.BigEndian.PutUint64(buf[:8], uint64(k.mantissa))
	binary.BigEndian.PutUint32(buf[8:], k.scale)

	return xxhash.Sum64(buf[:])
}

// Key returns the canonical form of v.
func (v Value) Key() Key {
	m, n := integer.Strip(v.mantissa, v.scale)
	if m == 0 {
		return Key{}
	}

	return Key{mantissa: m, scale: v.scale - n}
}

// Hash returns a hash of the number v represents. Equal values hash alike.
func (v Value) Hash() uint64 {
	return v.Key().Hash()
}

// Cmp compares the numbers represented by v and w and returns -1, 0 or +1.
//
// Neither operand is rescaled in place; the comparison is exact even where
// aligning the scales would overflow the mantissa.
func (v Value) Cmp(w Value) int {
	if v.scale <= w.scale {
		return integer.CmpPow10(v.mantissa, w.scale-v.scale, w.mantissa)
	}

	return -integer.CmpPow10(w.mantissa, v.scale-w.scale, v.mantissa)
}

// Equal reports whether v and w represent the same number.
func (v Value) Equal(w Value) bool { return v.Cmp(w) == 0 }

// Less reports whether v is smaller than w.
func (v Value) Less(w Value) bool { return v.Cmp(w) < 0 }
