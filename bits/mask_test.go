package bits

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	t.Parallel()
	require.Equal(t, 8, Size[uint8]())
	require.Equal(t, 16, Size[uint16]())
	require.Equal(t, 32, Size[uint32]())
	require.Equal(t, 64, Size[uint64]())
	require.Equal(t, bits.UintSize, Size[uint]())
}

func TestBitIndexes(t *testing.T) {
	t.Parallel()
	if MostSignificantBit(uint8(0)) != -1 {
		t.Fatal("MostSignificantBit(0) failed")
	}
	if LowestSetBit(uint16(0)) != -1 {
		t.Fatal("LowestSetBit(0) failed")
	}
	if got := MostSignificantBit(uint16(0x8000)); got != 15 {
		t.Fatalf("MostSignificantBit(0x8000)=%d, want 15", got)
	}
	if got := LowestSetBit(uint32(0x00f00000)); got != 20 {
		t.Fatalf("LowestSetBit(0x00f00000)=%d, want 20", got)
	}
	if got := LowestSetBit(uint64(0x8000000000000000)); got != 63 {
		t.Fatalf("LowestSetBit(1<<63)=%d, want 63", got)
	}
	if got := OnesCount(uint8(0x38)); got != 3 {
		t.Fatalf("OnesCount(0x38)=%d, want 3", got)
	}
}

func TestLowMask(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint8(0), LowMask[uint8](0))
	require.Equal(t, uint8(0x0f), LowMask[uint8](4))
	require.Equal(t, uint8(0xff), LowMask[uint8](8))
	require.Equal(t, uint8(0xff), LowMask[uint8](9))
	require.Equal(t, uint32(0x7fffffff), LowMask[uint32](31))
	require.Equal(t, ^uint64(0), LowMask[uint64](64))
}

func TestAnalyze(t *testing.T) {
	t.Parallel()
	cases := []struct {
		mask  uint64
		shift int
		width int
		ok    bool
	}{
		{mask: 0x000f, shift: 0, width: 4, ok: true},
		{mask: 0x0038, shift: 3, width: 3, ok: true},
		{mask: 0x8000, shift: 15, width: 1, ok: true},
		{mask: 0x07e00000, shift: 21, width: 6, ok: true},
		{mask: 0x0000001f8000000, shift: 27, width: 6, ok: true},
		{mask: ^uint64(0), shift: 0, width: 64, ok: true},
		{mask: 0xf000000000000000, shift: 60, width: 4, ok: true},
		{mask: 0x0101, shift: 0, width: 2, ok: false},
		{mask: 0x0f0f0000, shift: 16, width: 8, ok: false},
	}

	for _, tc := range cases {
		shift, width, ok := Analyze(tc.mask)
		require.Equal(t, tc.ok, ok, "mask %#x", tc.mask)
		require.Equal(t, tc.shift, shift, "mask %#x", tc.mask)
		require.Equal(t, tc.width, width, "mask %#x", tc.mask)
	}

	_, _, ok := Analyze(uint16(0))
	require.False(t, ok, "zero mask must be rejected")
}

func TestFieldMax(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint16(0x0f), FieldMax(uint16(0x0f00)))
	require.Equal(t, uint32(0x7f), FieldMax(uint32(0x7f000000)))
	require.Equal(t, uint8(1), FieldMax(uint8(0x80)))
	require.Equal(t, uint64(0), FieldMax(uint64(0)))
}

func TestContiguousMasks_Exhaustive8Bit(t *testing.T) {
	t.Parallel()
	var got []uint8
	ContiguousMasks(func(m uint8) bool {
		got = append(got, m)
		return true
	})

	var want []uint8
	for m := 1; m < 256; m++ {
		if IsContiguous(uint8(m)) {
			want = append(want, uint8(m))
		}
	}

	// 8 + 7 + ... + 1
	require.Len(t, got, 36)
	require.ElementsMatch(t, want, got)
}

func TestContiguousMasks_StopsEarly(t *testing.T) {
	t.Parallel()
	n := 0
	ContiguousMasks(func(uint64) bool {
		n++
		return n < 5
	})
	require.Equal(t, 5, n)
}
