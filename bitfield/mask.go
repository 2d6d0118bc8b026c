package bitfield

import (
	"fmt"

	"Bitfield/bits"
	"Bitfield/errutil"
)

// Mask is a field mask validated once at construction. The zero Mask holds a
// zero mask and is rejected like one: Encode fails, Prep, Get and Replace panic.
type Mask[T Container] struct {
	bits  T
	shift uint8
	width uint8
}

func NewMask[T Container](m T) (Mask[T], error) {
	shift, width, ok := bits.Analyze(m)
	if !ok {
		return Mask[T]{}, &MaskError{Mask: uint64(m), Size: bits.Size[T]()}
	}
	return Mask[T]{bits: m, shift: uint8(shift), width: uint8(width)}, nil
}

// MustMask is NewMask for masks known to be valid, typically package-level
// constants. It panics with *MaskError otherwise.
func MustMask[T Container](m T) Mask[T] {
	mask, err := NewMask(m)
	if err != nil {
		panic(err)
	}
	return mask
}

// check panics with *MaskError for the zero Mask.
func (m Mask[T]) check() {
	if m.width == 0 {
		panic(m.zeroErr())
	}
}

func (m Mask[T]) zeroErr() error {
	return &MaskError{Size: bits.Size[T]()}
}

func (m Mask[T]) Bits() T    { return m.bits }
func (m Mask[T]) Shift() int { return int(m.shift) }
func (m Mask[T]) Width() int { return int(m.width) }
func (m Mask[T]) Max() T     { return m.bits >> m.shift }

func (m Mask[T]) Fits(value T) bool {
	return m.width != 0 && value <= m.Max()
}

// Encode places value in the field, failing with *RangeError when it does not fit.
func (m Mask[T]) Encode(value T) (T, error) {
	if m.width == 0 {
		return 0, m.zeroErr()
	}
	if !m.Fits(value) {
		return 0, &RangeError{Value: uint64(value), Mask: uint64(m.bits)}
	}
	return value << m.shift, nil
}

// Prep places value in the field with the same truncation policy as EncodeBits.
func (m Mask[T]) Prep(value T) T {
	m.check()
	errutil.BugOn(!m.Fits(value), "bitfield: value %#x does not fit mask %#x", uint64(value), uint64(m.bits))
	return (value << m.shift) & m.bits
}

func (m Mask[T]) Get(container T) T {
	m.check()
	return (container & m.bits) >> m.shift
}

func (m Mask[T]) Replace(container, value T) T {
	m.check()
	return container&^m.bits | m.Prep(value)
}

func (m Mask[T]) String() string {
	if m.width == 0 {
		return fmt.Sprintf("0x%0*x[invalid]", bits.Size[T]()/4, 0)
	}
	return fmt.Sprintf("0x%0*x[%d:%d]", bits.Size[T]()/4, uint64(m.bits), int(m.shift)+int(m.width)-1, m.shift)
}
