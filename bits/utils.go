package bits

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Size returns the number of bits in T.
func Size[T constraints.Unsigned]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// MostSignificantBit returns the index of the most significant bit.
func MostSignificantBit[T constraints.Unsigned](x T) int {
	if x == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(uint64(x))
}

// LowestSetBit returns the index of the least significant set bit, or -1 for zero.
func LowestSetBit[T constraints.Unsigned](x T) int {
	if x == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(x))
}

func OnesCount[T constraints.Unsigned](x T) int {
	return bits.OnesCount64(uint64(x))
}

// LowMask returns a T with the n low bits set. n >= Size[T]() yields all ones.
func LowMask[T constraints.Unsigned](n int) T {
	if n <= 0 {
		return 0
	}
	if n >= Size[T]() {
		return ^T(0)
	}
	return T(1)<<uint(n) - 1
}
