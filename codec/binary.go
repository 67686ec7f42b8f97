package codec

import (
	"errors"
	"fmt"
)

var (
	ErrNotByteSlice = errors.New("decider: value is not a byte slice")

	// Binary passes through values that are already encoded.
	Binary Codec = &binaryCodec{}
)

type binaryCodec struct{}

func (*binaryCodec) Name() string {
	return "binary"
}

func (*binaryCodec) Marshal(v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotByteSlice, v)
	}
	return b, nil
}

func (*binaryCodec) Unmarshal(b []byte, v any) error {
	p, ok := v.(*[]byte)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotByteSlice, v)
	}
	*p = b
	return nil
}
