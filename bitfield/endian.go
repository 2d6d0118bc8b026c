package bitfield

import (
	"encoding/binary"
	mathbits "math/bits"

	"golang.org/x/sys/cpu"

	"Bitfield/bits"
)

// LE is a container stored in little-endian byte order. It is a distinct type
// from T so that stored and host-order values cannot be mixed by accident.
type LE[T Container] struct {
	raw T
}

// BE is a container stored in big-endian byte order.
type BE[T Container] struct {
	raw T
}

func ToLE[T Container](host T) LE[T] { return LE[T]{raw: hostToLittle(host)} }
func ToBE[T Container](host T) BE[T] { return BE[T]{raw: hostToBig(host)} }

// LEFromBytes reads a stored container. It panics if b is shorter than T.
func LEFromBytes[T Container](b []byte) LE[T] {
	return ToLE(readUint[T](binary.LittleEndian, b))
}

// BEFromBytes reads a stored container. It panics if b is shorter than T.
func BEFromBytes[T Container](b []byte) BE[T] {
	return ToBE(readUint[T](binary.BigEndian, b))
}

// Host returns the container in host byte order.
func (c LE[T]) Host() T { return hostToLittle(c.raw) }

// Raw returns the stored integer as the host sees it in memory.
func (c LE[T]) Raw() T { return c.raw }

// Bytes returns the stored byte representation.
func (c LE[T]) Bytes() []byte { return appendUint(nil, binary.LittleEndian, c.Host()) }

func (c BE[T]) Host() T       { return hostToBig(c.raw) }
func (c BE[T]) Raw() T        { return c.raw }
func (c BE[T]) Bytes() []byte { return appendUint(nil, binary.BigEndian, c.Host()) }

func LEEncodeBits[T Container](value, mask T) LE[T] {
	return ToLE(EncodeBits(value, mask))
}

func LEGetBits[T Container](container LE[T], mask T) T {
	return GetBits(container.Host(), mask)
}

func LEReplaceBits[T Container](old LE[T], value, mask T) LE[T] {
	return ToLE(ReplaceBits(old.Host(), value, mask))
}

func BEEncodeBits[T Container](value, mask T) BE[T] {
	return ToBE(EncodeBits(value, mask))
}

func BEGetBits[T Container](container BE[T], mask T) T {
	return GetBits(container.Host(), mask)
}

func BEReplaceBits[T Container](old BE[T], value, mask T) BE[T] {
	return ToBE(ReplaceBits(old.Host(), value, mask))
}

// Byte order conversions are involutions, so each helper converts both ways.

func hostToLittle[T Container](x T) T {
	if cpu.IsBigEndian {
		return byteSwap(x)
	}
	return x
}

func hostToBig[T Container](x T) T {
	if cpu.IsBigEndian {
		return x
	}
	return byteSwap(x)
}

func byteSwap[T Container](x T) T {
	switch bits.Size[T]() {
	case 16:
		return T(mathbits.ReverseBytes16(uint16(x)))
	case 32:
		return T(mathbits.ReverseBytes32(uint32(x)))
	case 64:
		return T(mathbits.ReverseBytes64(uint64(x)))
	}
	return x
}

func appendUint[T Container](b []byte, order binary.AppendByteOrder, v T) []byte {
	switch bits.Size[T]() {
	case 16:
		return order.AppendUint16(b, uint16(v))
	case 32:
		return order.AppendUint32(b, uint32(v))
	case 64:
		return order.AppendUint64(b, uint64(v))
	}
	return append(b, byte(v))
}

func readUint[T Container](order binary.ByteOrder, b []byte) T {
	switch bits.Size[T]() {
	case 16:
		return T(order.Uint16(b))
	case 32:
		return T(order.Uint32(b))
	case 64:
		return T(order.Uint64(b))
	}
	return T(b[0])
}
