package bits

import "golang.org/x/exp/constraints"

// Analyze derives the shift and width of a field mask. ok is false when the
// mask is zero or its set bits do not form a single contiguous run.
func Analyze[T constraints.Unsigned](mask T) (shift, width int, ok bool) {
	if mask == 0 {
		return 0, 0, false
	}
	shift = LowestSetBit(mask)
	width = OnesCount(mask)
	return shift, width, mask>>uint(shift) == LowMask[T](width)
}

// IsContiguous reports whether mask is non-zero with exactly one run of set bits.
func IsContiguous[T constraints.Unsigned](mask T) bool {
	_, _, ok := Analyze(mask)
	return ok
}

// FieldMax is mask shifted down to bit 0, the largest value the field holds.
// Zero for a zero mask.
func FieldMax[T constraints.Unsigned](mask T) T {
	if mask == 0 {
		return 0
	}
	return mask >> uint(LowestSetBit(mask))
}

// ContiguousMasks calls fn for every contiguous mask of T, ordered by shift
// then width. It stops early when fn returns false.
func ContiguousMasks[T constraints.Unsigned](fn func(mask T) bool) {
	size := Size[T]()
	for shift := 0; shift < size; shift++ {
		for width := 1; shift+width <= size; width++ {
			if !fn(LowMask[T](width) << uint(shift)) {
				return
			}
		}
	}
}
