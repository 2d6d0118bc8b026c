package bitfield

// Fixed-width entry points. Each is the generic function instantiated for one
// container size; the bitfieldcheck analyzer knows them by name.

func EncodeBits8(value, mask uint8) uint8              { return EncodeBits(value, mask) }
func GetBits8(container, mask uint8) uint8             { return GetBits(container, mask) }
func ReplaceBits8(old, value, mask uint8) uint8        { return ReplaceBits(old, value, mask) }
func LEEncodeBits8(value, mask uint8) LE[uint8]        { return LEEncodeBits(value, mask) }
func LEGetBits8(container LE[uint8], mask uint8) uint8 { return LEGetBits(container, mask) }
func BEEncodeBits8(value, mask uint8) BE[uint8]        { return BEEncodeBits(value, mask) }
func BEGetBits8(container BE[uint8], mask uint8) uint8 { return BEGetBits(container, mask) }

func EncodeBits16(value, mask uint16) uint16               { return EncodeBits(value, mask) }
func GetBits16(container, mask uint16) uint16              { return GetBits(container, mask) }
func ReplaceBits16(old, value, mask uint16) uint16         { return ReplaceBits(old, value, mask) }
func LEEncodeBits16(value, mask uint16) LE[uint16]         { return LEEncodeBits(value, mask) }
func LEGetBits16(container LE[uint16], mask uint16) uint16 { return LEGetBits(container, mask) }
func BEEncodeBits16(value, mask uint16) BE[uint16]         { return BEEncodeBits(value, mask) }
func BEGetBits16(container BE[uint16], mask uint16) uint16 { return BEGetBits(container, mask) }

func EncodeBits32(value, mask uint32) uint32               { return EncodeBits(value, mask) }
func GetBits32(container, mask uint32) uint32              { return GetBits(container, mask) }
func ReplaceBits32(old, value, mask uint32) uint32         { return ReplaceBits(old, value, mask) }
func LEEncodeBits32(value, mask uint32) LE[uint32]         { return LEEncodeBits(value, mask) }
func LEGetBits32(container LE[uint32], mask uint32) uint32 { return LEGetBits(container, mask) }
func BEEncodeBits32(value, mask uint32) BE[uint32]         { return BEEncodeBits(value, mask) }
func BEGetBits32(container BE[uint32], mask uint32) uint32 { return BEGetBits(container, mask) }

func EncodeBits64(value, mask uint64) uint64               { return EncodeBits(value, mask) }
func GetBits64(container, mask uint64) uint64              { return GetBits(container, mask) }
func ReplaceBits64(old, value, mask uint64) uint64         { return ReplaceBits(old, value, mask) }
func LEEncodeBits64(value, mask uint64) LE[uint64]         { return LEEncodeBits(value, mask) }
func LEGetBits64(container LE[uint64], mask uint64) uint64 { return LEGetBits(container, mask) }
func BEEncodeBits64(value, mask uint64) BE[uint64]         { return BEEncodeBits(value, mask) }
func BEGetBits64(container BE[uint64], mask uint64) uint64 { return BEGetBits(container, mask) }
