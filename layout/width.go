package layout

import (
	"Bitfield/errutil"
)

const (
	Width8  = 8
	Width16 = 16
	Width32 = 32
	Width64 = 64
)

var supportedWidths = []int{Width8, Width16, Width32, Width64}

// WidthForMaxValue returns the minimum container width (in bits) required to
// represent values in [0..maxInclusive].
func WidthForMaxValue(maxInclusive uint64) int {
	switch {
	case maxInclusive <= 0xFF:
		return Width8
	case maxInclusive <= 0xFFFF:
		return Width16
	case maxInclusive <= 0xFFFFFFFF:
		return Width32
	default:
		return Width64
	}
}

// WidthForMask returns the smallest container width that holds every bit of mask.
func WidthForMask(mask uint64) int {
	return WidthForMaxValue(mask)
}

// WidthCandidates returns supported widths >= minBits.
func WidthCandidates(minBits int) []int {
	errutil.BugOn(minBits <= 0, "minBits must be positive, got %d", minBits)

	out := make([]int, 0, len(supportedWidths))
	for _, w := range supportedWidths {
		if w >= minBits {
			out = append(out, w)
		}
	}
	return out
}

func IsSupportedWidth(width int) bool {
	for _, w := range supportedWidths {
		if w == width {
			return true
		}
	}
	return false
}
