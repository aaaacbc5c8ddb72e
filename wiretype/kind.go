// Package wiretype defines the ROBN type tag byte: the kind in its low 7 bits,
// the endianness of the following payload in its high bit.
package wiretype

import "github.com/binaryrobn/robn/endian"

// Kind identifies the shape of the payload that follows a Type Tag on the wire.
//
// Numeric values match the original RogueLib ROBN codes exactly; they are part
// of the wire contract and must never be renumbered.
type Kind uint8

const (
	Undefined Kind = 0

	String Kind = 1
	Bool   Kind = 2

	Int8  Kind = 4
	Int16 Kind = 5
	Int32 Kind = 6
	Int64 Kind = 7

	UInt8  Kind = 8
	UInt16 Kind = 9
	UInt32 Kind = 10
	UInt64 Kind = 11

	Float  Kind = 12
	Double Kind = 13

	Vector Kind = 15
	Pair   Kind = 16
	Map    Kind = 17

	Int128  Kind = 18
	UInt128 Kind = 19

	// LongDouble, BigInt and BigFloat are reserved: no encoder in this package
	// ever produces them, and no decoder dispatch recognizes them as a target.
	LongDouble Kind = 20
	BigInt     Kind = 21
	BigFloat   Kind = 22

	// SublistStart, SublistEnd, SublistElementCount and SublistSize are reserved
	// framing codes from the original format that this codec never emits or
	// accepts; any occurrence on the wire is treated as an unknown kind.
	SublistStart        Kind = 123
	SublistEnd          Kind = 124
	SublistElementCount Kind = 125
	SublistSize         Kind = 126
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "Undefined"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case Vector:
		return "Vector"
	case Pair:
		return "Pair"
	case Map:
		return "Map"
	case Int128:
		return "Int128"
	case UInt128:
		return "UInt128"
	default:
		return "Reserved"
	}
}

// Numeric reports whether kind identifies a fixed-width integer or float.
func (k Kind) Numeric() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Int128,
		UInt8, UInt16, UInt32, UInt64, UInt128,
		Float, Double:
		return true
	default:
		return false
	}
}

// PrimitiveWidth returns the on-wire payload width in bytes for a fixed-width
// primitive kind, or 0 for kinds with no fixed width (String, Vector, Pair,
// Map, Undefined, and the reserved kinds).
func PrimitiveWidth(k Kind) int {
	switch k {
	case Bool, Int8, UInt8:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float:
		return 4
	case Int64, UInt64, Double:
		return 8
	case Int128, UInt128:
		return 16
	default:
		return 0
	}
}

// Endianness is the bit stamped into the high bit of a Type Tag.
type Endianness uint8

const (
	Little Endianness = 0
	Big    Endianness = 1 << 7
)

// endiannessMask isolates the high bit of a Type Tag; kindMask isolates the
// low 7 bits.
const (
	endiannessMask = 0x80
	kindMask       = 0x7F
)

// Tag packs kind and endianness into a single Type Tag byte.
func Tag(k Kind, e Endianness) byte {
	return byte(k)&kindMask | byte(e)
}

// KindOf extracts the Kind from a Type Tag byte.
func KindOf(tag byte) Kind {
	return Kind(tag & kindMask)
}

// EndiannessOf extracts the Endianness from a Type Tag byte.
func EndiannessOf(tag byte) Endianness {
	return Endianness(tag & endiannessMask)
}

// NativeEndianness resolves the host's byte order into a wire Endianness.
func NativeEndianness() Endianness {
	if endian.IsNativeBigEndian() {
		return Big
	}

	return Little
}
