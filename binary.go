package intfloat

import (
	"github.com/calebcase/intfloat/decimal"
	"github.com/calebcase/intfloat/integer"
)

// MarshalBinary implements encoding.BinaryMarshaler using the layout of the
// decimal package.
func (v Value) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	return decimal.Block{
		Value: integer.FromInt64(v.mantissa),
		Scale: v.scale,
	}.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	blk := decimal.Block{}

	err = blk.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	m, err := blk.Value.Int64()
	if err != nil {
		return err
	}

	*v = Value{mantissa: m, scale: blk.Scale}

	return nil
}
