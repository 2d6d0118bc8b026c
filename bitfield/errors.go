package bitfield

import (
	"errors"
	"fmt"

	"Bitfield/bits"
)

var (
	ErrInvalidMask     = errors.New("invalid field mask")
	ErrValueOutOfRange = errors.New("value out of field range")
)

// MaskError reports a mask that is zero or not a single contiguous run of bits.
type MaskError struct {
	Mask uint64
	Size int // container size in bits
}

func (e *MaskError) Error() string {
	if e.Mask == 0 {
		return fmt.Sprintf("bitfield: zero mask for u%d container", e.Size)
	}
	return fmt.Sprintf("bitfield: mask %#x is not contiguous in u%d container", e.Mask, e.Size)
}

func (e *MaskError) Unwrap() error { return ErrInvalidMask }

// RangeError reports a value that does not fit the field described by Mask.
type RangeError struct {
	Value uint64
	Mask  uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bitfield: value %#x does not fit mask %#x (max %#x)",
		e.Value, e.Mask, bits.FieldMax(e.Mask))
}

func (e *RangeError) Unwrap() error { return ErrValueOutOfRange }
