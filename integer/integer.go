package integer

import (
	"math/big"
)

// Block is a signed integer number stored as a big-endian magnitude and a
// sign flag.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block form of i.
func FromInt64(i int64) Block {
	data := new(big.Int).SetUint64(magnitude(i)).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return Block{
		Value:    data,
		Negative: i < 0,
	}
}

// Int64 returns the block as an int64. Magnitudes outside the int64 range
// fail with ErrOverflow.
func (b Block) Int64() (i int64, err error) {
	defer Error.WrapP(&err)

	v := new(big.Int).SetBytes(b.Value)
	if !v.IsUint64() {
		return 0, Error.New("%w: %d bytes of magnitude", ErrOverflow, len(b.Value))
	}

	return fromMagnitude(v.Uint64(), b.Negative)
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign stored in the lowest bit
// (aka zigzag), so small values of either sign stay small.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty block")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}
