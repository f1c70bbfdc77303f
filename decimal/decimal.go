package decimal

import (
	"errors"

	"github.com/zeebo/errs"

	"github.com/calebcase/intfloat/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// ErrInvalidEncoding indicates data that is not a valid decimal block.
var ErrInvalidEncoding = errors.New("invalid encoding")

// MaxScale is the largest scale that fits in the 4 byte trailer.
const MaxScale = 1<<30 - 1

// Scale sizes as stored in the low two bits of the last byte.
const (
	scaleSize4 byte = 0b00
	scaleSize1 byte = 0b01
	scaleSize2 byte = 0b10
	scaleSize3 byte = 0b11

	scaleSizeMask byte = 0b11
)

// trailerSize is the number of trailer bytes for each scale size.
var trailerSize = [4]int{
	scaleSize4: 4,
	scaleSize1: 1,
	scaleSize2: 2,
	scaleSize3: 3,
}

// trailerMin is the smallest scale that requires the given trailer size.
var trailerMin = [5]uint32{
	1: 0,
	2: 1 << 6,
	3: 1 << 14,
	4: 1 << 22,
}

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value integer.Block
	Scale uint32
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if b.Scale > MaxScale {
		return nil, Error.New("scale too large: %d > %d", b.Scale, MaxScale)
	}

	data, err = b.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}

	t := b.Scale << 2

	switch {
	case b.Scale < trailerMin[2]:
		data = append(data, byte(t)|scaleSize1)
	case b.Scale < trailerMin[3]:
		data = append(data, byte(t>>8), byte(t)|scaleSize2)
	case b.Scale < trailerMin[4]:
		data = append(data, byte(t>>16), byte(t>>8), byte(t)|scaleSize3)
	default:
		data = append(data, byte(t>>24), byte(t>>16), byte(t>>8), byte(t)|scaleSize4)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Only the shortest trailer for a scale and the shortest value without a
// negative zero are accepted, so that every block has exactly one encoding.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return Error.New("%w: %d bytes", ErrInvalidEncoding, len(data))
	}

	size := trailerSize[data[len(data)-1]&scaleSizeMask]
	if len(data) < size+1 {
		return Error.New("%w: %d bytes for %d byte scale", ErrInvalidEncoding, len(data), size)
	}

	var t uint32
	for _, c := range data[len(data)-size:] {
		t = t<<8 | uint32(c)
	}

	scale := t >> 2
	if scale < trailerMin[size] {
		return Error.New("%w: scale %d in %d bytes", ErrInvalidEncoding, scale, size)
	}

	payload := data[:len(data)-size]

	switch {
	case len(payload) > 1 && payload[0] == 0:
		return Error.New("%w: leading zero byte in %d byte value", ErrInvalidEncoding, len(payload))
	case len(payload) == 1 && payload[0] == 1:
		return Error.New("%w: negative zero", ErrInvalidEncoding)
	}

	value := integer.Block{}

	err = value.UnmarshalBinary(payload)
	if err != nil {
		return err
	}

	b.Value = value
	b.Scale = scale

	return nil
}
