package a

import "Bitfield/bitfield"

const statusMask = 0x0f00

func constants() {
	bitfield.EncodeBits16(1, 0x000f)
	bitfield.EncodeBits16(15, 0x00f0)
	bitfield.EncodeBits16(16, 0x0f00)     // want `EncodeBits16: value 16 does not fit mask 0xf00 \(max 15\)`
	bitfield.EncodeBits16(16, statusMask) // want `value 16 does not fit`
	bitfield.EncodeBits32(7, 0x06000000)  // want `EncodeBits32: value 7 does not fit mask 0x6000000 \(max 3\)`
	bitfield.EncodeBits32(3, 0x06000000)
	bitfield.GetBits16(0xffff, 0)                  // want `GetBits16: zero mask selects no field`
	bitfield.GetBits16(0xffff, 0x0101)             // want `GetBits16: mask 0x101 is not a contiguous run of bits`
	bitfield.BEEncodeBits64(2, 0x8000000000000000) // want `value 2 does not fit`
	bitfield.ReplaceBits8(0xff, 8, 0x38)           // want `ReplaceBits8: value 8 does not fit mask 0x38 \(max 7\)`
}

func generic() {
	bitfield.EncodeBits(uint8(4), 0x03) // want `EncodeBits: value 4 does not fit mask 0x3 \(max 3\)`
	bitfield.EncodeBits[uint32](1, 0x80000000)
	bitfield.FieldMax[uint16](0x0f0f)     // want `FieldMax: mask 0xf0f is not a contiguous run of bits`
	bitfield.FieldFit[uint16](0x00f0, 99) // want `FieldFit: value 99 does not fit`
	bitfield.MustMask[uint64](0)          // want `MustMask: zero mask selects no field`
	_, _ = bitfield.NewMask[uint32](0x00018000)
	_, _ = bitfield.Encode(uint16(0x20), 0x01f0) // want `Encode: value 32 does not fit`
	bitfield.LEEncodeBits(uint64(1), 0x0000001f8000000)
	bitfield.LEGetBits(bitfield.LE[uint16]{}, 0x8001) // want `LEGetBits: mask 0x8001 is not a contiguous run of bits`

	var reg uint32
	bitfield.ReplaceBitsP(&reg, 4, 0x00018000) // want `ReplaceBitsP: value 4 does not fit`
}

func runtime(v uint16, m uint16) {
	bitfield.EncodeBits16(v, 0x0f00)
	bitfield.EncodeBits16(16, m)
	bitfield.GetBits16(v, m)

	mask := bitfield.MustMask[uint16](0x0f00)
	_, _ = mask.Encode(16)
}
