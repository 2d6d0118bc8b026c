// Package bitfield encodes small unsigned values into contiguous runs of bits
// of a wider unsigned container and extracts them back.
//
// A mask selects the field: its lowest set bit is the shift, its population
// count the field width. Masks must be non-zero and contiguous. Encoding
// always zeroes every container bit outside the mask.
//
// Invalid masks panic with *MaskError. A value wider than its field is
// truncated by EncodeBits; builds tagged bitfield_debug abort instead. Use
// Encode or Mask.Encode when the value comes from untrusted data, and run the
// bitfieldcheck analyzer to reject constant misuse before the program is built.
package bitfield

import (
	"Bitfield/bits"
	"Bitfield/errutil"
)

// Container is the set of unsigned integer types a field can be packed into.
type Container interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// analyze returns the shift of a valid mask and panics otherwise.
func analyze[T Container](mask T) uint {
	shift, _, ok := bits.Analyze(mask)
	if !ok {
		panic(&MaskError{Mask: uint64(mask), Size: bits.Size[T]()})
	}
	return uint(shift)
}

// EncodeBits returns value placed at mask's position with all other bits
// zero. A value exceeding the field is truncated to its low bits.
func EncodeBits[T Container](value, mask T) T {
	shift := analyze(mask)
	errutil.BugOn(value > mask>>shift, "bitfield: value %#x does not fit mask %#x", uint64(value), uint64(mask))
	return (value << shift) & mask
}

// Encode is EncodeBits that reports an out-of-range value instead of
// truncating it.
func Encode[T Container](value, mask T) (T, error) {
	shift := analyze(mask)
	if value > mask>>shift {
		return 0, &RangeError{Value: uint64(value), Mask: uint64(mask)}
	}
	return value << shift, nil
}

// GetBits extracts the field selected by mask from container.
func GetBits[T Container](container, mask T) T {
	return (container & mask) >> analyze(mask)
}

// ReplaceBits returns old with the field selected by mask set to value.
func ReplaceBits[T Container](old, value, mask T) T {
	return old&^mask | EncodeBits(value, mask)
}

// ReplaceBitsP is ReplaceBits operating in place.
func ReplaceBitsP[T Container](p *T, value, mask T) {
	*p = ReplaceBits(*p, value, mask)
}

// FieldMax returns the largest value the field selected by mask can hold.
func FieldMax[T Container](mask T) T {
	return mask >> analyze(mask)
}

// FieldFit reports whether value fits the field selected by mask.
func FieldFit[T Container](mask, value T) bool {
	return value <= FieldMax(mask)
}
