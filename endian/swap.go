package endian

import "encoding/binary"

// Swap16 reverses the byte order of a 16-bit word.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of a 32-bit word.
func Swap32(v uint32) uint32 {
	return binary.BigEndian.Uint32(reverse4(v)[:])
}

func reverse4(v uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)

	return b
}

// Swap64 reverses the byte order of a 64-bit word.
func Swap64(v uint64) uint64 {
	return uint64(Swap32(uint32(v)))<<32 | uint64(Swap32(uint32(v>>32)))
}

// UInt128 is a 128-bit unsigned integer represented as two 64-bit halves, Lo
// holding the least-significant 64 bits.
type UInt128 struct {
	Lo uint64
	Hi uint64
}

// Swap128 reverses the byte order of a 128-bit word.
//
// Each 64-bit half is byte-swapped independently and the halves are then
// exchanged with a plain temporary-variable swap. This is deliberately not
// the in-place XOR-swap trick the original implementation used: XOR-swap on
// overlapping or SIMD-vectorized lanes is a well known footgun, and a temp
// variable costs nothing on a 128-bit value.
func Swap128(v UInt128) UInt128 {
	lo := Swap64(v.Lo)
	hi := Swap64(v.Hi)

	return UInt128{Lo: hi, Hi: lo}
}
