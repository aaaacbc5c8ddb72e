package codec

import (
	"github.com/binaryrobn/robn/endian"
	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/internal/pool"
	"github.com/binaryrobn/robn/wiretype"
)

// Int128 is a 128-bit two's-complement integer, represented as two 64-bit
// halves since Go has no native 128-bit integer type. The wire layout is
// identical for Int128 and UInt128; only the Type Tag's kind bits and the
// caller's interpretation of Hi's sign differ.
type Int128 = endian.UInt128

// EncodeInt128 emits an Int128 Type Tag followed by v's 16 raw payload
// bytes.
func EncodeInt128(v Int128) []byte {
	return encode128(v, wiretype.Int128)
}

// EncodeUInt128 emits a UInt128 Type Tag followed by v's 16 raw payload
// bytes.
func EncodeUInt128(v Int128) []byte {
	return encode128(v, wiretype.UInt128)
}

func encode128(v Int128, kind wiretype.Kind) []byte {
	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	ne := wiretype.NativeEndianness()
	buf.AppendByte(wiretype.Tag(kind, ne))

	var b [16]byte
	le := endian.GetLittleEndianEngine()
	le.PutUint64(b[0:8], v.Lo)
	le.PutUint64(b[8:16], v.Hi)
	buf.AppendBytes(b[:])

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// DecodeInt128 decodes a 128-bit payload (Int128 or UInt128 tag accepted)
// whose Type Tag has already been consumed into tag.
func DecodeInt128(c *Cursor, tag byte) (Int128, error) {
	kind := wiretype.KindOf(tag)
	if kind != wiretype.Int128 && kind != wiretype.UInt128 {
		return Int128{}, errs.IncompatibleBinary(tag, c.Pos(), "expected Int128/UInt128 tag")
	}

	raw, err := readFixed(c, 16, wiretype.EndiannessOf(tag))
	if err != nil {
		return Int128{}, err
	}

	le := endian.GetLittleEndianEngine()

	return Int128{Lo: le.Uint64(raw[0:8]), Hi: le.Uint64(raw[8:16])}, nil
}
