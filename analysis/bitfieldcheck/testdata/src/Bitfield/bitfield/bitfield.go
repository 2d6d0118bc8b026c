package bitfield

type Container interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type LE[T Container] struct{ raw T }

type BE[T Container] struct{ raw T }

type Mask[T Container] struct{ bits T }

func (m Mask[T]) Encode(value T) (T, error) { return value, nil }

func EncodeBits[T Container](value, mask T) T          { return value & mask }
func Encode[T Container](value, mask T) (T, error)     { return value & mask, nil }
func GetBits[T Container](container, mask T) T         { return container & mask }
func ReplaceBits[T Container](old, value, mask T) T    { return old | value&mask }
func ReplaceBitsP[T Container](p *T, value, mask T)    {}
func FieldMax[T Container](mask T) T                   { return mask }
func FieldFit[T Container](mask, value T) bool         { return true }
func NewMask[T Container](m T) (Mask[T], error)        { return Mask[T]{m}, nil }
func MustMask[T Container](m T) Mask[T]                { return Mask[T]{m} }
func LEEncodeBits[T Container](value, mask T) LE[T]    { return LE[T]{value} }
func LEGetBits[T Container](container LE[T], mask T) T { return container.raw }
func EncodeBits16(value, mask uint16) uint16           { return value }
func GetBits16(container, mask uint16) uint16          { return container }
func EncodeBits32(value, mask uint32) uint32           { return value }
func BEEncodeBits64(value, mask uint64) BE[uint64]     { return BE[uint64]{value} }
func ReplaceBits8(old, value, mask uint8) uint8        { return old }
