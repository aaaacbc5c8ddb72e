package codec

import (
	"fmt"
	"math"

	"github.com/binaryrobn/robn/endian"
	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/internal/pool"
	"github.com/binaryrobn/robn/wiretype"
)

// Primitive is the set of Go types with a direct ROBN primitive encoding.
type Primitive interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64 | string
}

// EncodePrimitive emits v's Type Tag (stamped with native endianness)
// followed by its raw payload bytes.
func EncodePrimitive[T Primitive](v T) []byte {
	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	appendPrimitive(buf, v)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func appendPrimitive[T Primitive](buf *pool.ByteBuffer, v T) {
	ne := wiretype.NativeEndianness()

	switch x := any(v).(type) {
	case bool:
		b := byte(0)
		if x {
			b = 1
		}
		buf.AppendByte(wiretype.Tag(wiretype.Bool, ne))
		buf.AppendByte(b)
	case string:
		buf.AppendByte(wiretype.Tag(wiretype.String, ne))
		buf.AppendString(x)
		buf.AppendByte(0)
	case int8:
		buf.AppendByte(wiretype.Tag(wiretype.Int8, ne))
		buf.AppendByte(byte(x))
	case uint8:
		buf.AppendByte(wiretype.Tag(wiretype.UInt8, ne))
		buf.AppendByte(x)
	case int16:
		buf.AppendByte(wiretype.Tag(wiretype.Int16, ne))
		appendU16(buf, uint16(x))
	case uint16:
		buf.AppendByte(wiretype.Tag(wiretype.UInt16, ne))
		appendU16(buf, x)
	case int32:
		buf.AppendByte(wiretype.Tag(wiretype.Int32, ne))
		appendU32(buf, uint32(x))
	case uint32:
		buf.AppendByte(wiretype.Tag(wiretype.UInt32, ne))
		appendU32(buf, x)
	case int64:
		buf.AppendByte(wiretype.Tag(wiretype.Int64, ne))
		appendU64(buf, uint64(x))
	case uint64:
		buf.AppendByte(wiretype.Tag(wiretype.UInt64, ne))
		appendU64(buf, x)
	case float32:
		buf.AppendByte(wiretype.Tag(wiretype.Float, ne))
		appendU32(buf, math.Float32bits(x))
	case float64:
		buf.AppendByte(wiretype.Tag(wiretype.Double, ne))
		appendU64(buf, math.Float64bits(x))
	default:
		panic(fmt.Sprintf("codec: unreachable primitive type %T", v))
	}
}

// appendPayload writes v's raw bytes without a leading Type Tag. Used by the
// container codec, where a Vector's element tag is written once and shared
// by every element.
func appendPayload[T Primitive](buf *pool.ByteBuffer, v T) {
	switch x := any(v).(type) {
	case bool:
		b := byte(0)
		if x {
			b = 1
		}
		buf.AppendByte(b)
	case string:
		buf.AppendString(x)
		buf.AppendByte(0)
	case int8:
		buf.AppendByte(byte(x))
	case uint8:
		buf.AppendByte(x)
	case int16:
		appendU16(buf, uint16(x))
	case uint16:
		appendU16(buf, x)
	case int32:
		appendU32(buf, uint32(x))
	case uint32:
		appendU32(buf, x)
	case int64:
		appendU64(buf, uint64(x))
	case uint64:
		appendU64(buf, x)
	case float32:
		appendU32(buf, math.Float32bits(x))
	case float64:
		appendU64(buf, math.Float64bits(x))
	}
}

// kindOfT returns the wiretype.Kind that EncodePrimitive/appendPayload use
// for the Primitive type T.
func kindOfT[T Primitive]() wiretype.Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return wiretype.Bool
	case string:
		return wiretype.String
	case int8:
		return wiretype.Int8
	case uint8:
		return wiretype.UInt8
	case int16:
		return wiretype.Int16
	case uint16:
		return wiretype.UInt16
	case int32:
		return wiretype.Int32
	case uint32:
		return wiretype.UInt32
	case int64:
		return wiretype.Int64
	case uint64:
		return wiretype.UInt64
	case float32:
		return wiretype.Float
	case float64:
		return wiretype.Double
	default:
		return wiretype.Undefined
	}
}

func appendU16(buf *pool.ByteBuffer, v uint16) {
	var b [2]byte
	endian.GetLittleEndianEngine().PutUint16(b[:], v)
	buf.AppendBytes(b[:])
}

func appendU32(buf *pool.ByteBuffer, v uint32) {
	var b [4]byte
	endian.GetLittleEndianEngine().PutUint32(b[:], v)
	buf.AppendBytes(b[:])
}

func appendU64(buf *pool.ByteBuffer, v uint64) {
	var b [8]byte
	endian.GetLittleEndianEngine().PutUint64(b[:], v)
	buf.AppendBytes(b[:])
}

// readFixed reads n payload bytes from c for a tag whose endianness is e,
// byte-swapping into native order when e disagrees with the
// host. All multi-byte primitive reads funnel through here so the swap
// happens exactly once, before any widening or narrowing cast.
func readFixed(c *Cursor, n int, e wiretype.Endianness) ([]byte, error) {
	raw, err := c.readN(n)
	if err != nil {
		return nil, err
	}

	native := wiretype.NativeEndianness()
	if e == native || n == 1 {
		return raw, nil
	}

	swapped := make([]byte, n)
	copy(swapped, raw)
	switch n {
	case 2:
		v := endian.GetLittleEndianEngine().Uint16(swapped)
		endian.GetLittleEndianEngine().PutUint16(swapped, endian.Swap16(v))
	case 4:
		v := endian.GetLittleEndianEngine().Uint32(swapped)
		endian.GetLittleEndianEngine().PutUint32(swapped, endian.Swap32(v))
	case 8:
		v := endian.GetLittleEndianEngine().Uint64(swapped)
		endian.GetLittleEndianEngine().PutUint64(swapped, endian.Swap64(v))
	case 16:
		lo := endian.GetLittleEndianEngine().Uint64(swapped[0:8])
		hi := endian.GetLittleEndianEngine().Uint64(swapped[8:16])
		r := endian.Swap128(endian.UInt128{Lo: lo, Hi: hi})
		endian.GetLittleEndianEngine().PutUint64(swapped[0:8], r.Lo)
		endian.GetLittleEndianEngine().PutUint64(swapped[8:16], r.Hi)
	}

	return swapped, nil
}

// DecodePrimitive reads the payload that follows tag, returning a value of
// type T. tag has already been read by the caller's outer dispatch; pass the
// consumed tag in.
func DecodePrimitive[T Primitive](c *Cursor, tag byte) (T, error) {
	var zero T
	kind := wiretype.KindOf(tag)
	e := wiretype.EndiannessOf(tag)

	switch any(zero).(type) {
	case string:
		if kind != wiretype.String {
			return zero, errs.IncompatibleBinary(tag, c.pos, "expected String tag")
		}
		s, err := decodeNulString(c)

		return any(s).(T), err
	case bool:
		if !kind.Numeric() && kind != wiretype.Bool {
			return zero, errs.IncompatibleBinary(tag, c.pos, "expected Bool-compatible tag")
		}
		u, f, isFloat, err := readNumeric(c, kind, e)
		if err != nil {
			return zero, err
		}
		if isFloat {
			return any(f != 0).(T), nil
		}

		return any(u != 0).(T), nil
	}

	if !kind.Numeric() {
		return zero, errs.IncompatibleBinary(tag, c.pos, "expected numeric tag")
	}

	u, f, isFloat, err := readNumeric(c, kind, e)
	if err != nil {
		return zero, err
	}

	return castNumeric[T](u, f, isFloat), nil
}

func decodeNulString(c *Cursor) (string, error) {
	start := c.pos
	for i := c.pos; i < c.end; i++ {
		if c.buf[i] == 0 {
			s := string(c.buf[start:i])
			c.pos = i + 1

			return s, nil
		}
	}

	return "", errs.Truncated(c.pos, "unterminated string")
}

// readNumeric reads the payload of a numeric kind and returns it either as a
// uint64-widened bit pattern (isFloat=false) or as a float64 (isFloat=true),
// ready for castNumeric to narrow/convert into the requested Go type.
func readNumeric(c *Cursor, kind wiretype.Kind, e wiretype.Endianness) (uint64, float64, bool, error) {
	width := wiretype.PrimitiveWidth(kind)
	raw, err := readFixed(c, width, e)
	if err != nil {
		return 0, 0, false, err
	}

	return decodeNumericBytes(kind, raw)
}

// decodeNumericBytes interprets raw as a native-byte-order payload of kind,
// widening it the same way readNumeric does. The container codec's
// fast/swap vector paths call this directly once they've already resolved
// byte order themselves, so a vector decode pays for one swap per element
// instead of one swap plus one bounds-checked cursor read per element.
func decodeNumericBytes(kind wiretype.Kind, raw []byte) (uint64, float64, bool, error) {
	le := endian.GetLittleEndianEngine()
	switch kind {
	case wiretype.Bool:
		return uint64(raw[0]), 0, false, nil
	case wiretype.Int8:
		return uint64(int64(int8(raw[0]))), 0, false, nil
	case wiretype.UInt8:
		return uint64(raw[0]), 0, false, nil
	case wiretype.Int16:
		return uint64(int64(int16(le.Uint16(raw)))), 0, false, nil
	case wiretype.UInt16:
		return uint64(le.Uint16(raw)), 0, false, nil
	case wiretype.Int32:
		return uint64(int64(int32(le.Uint32(raw)))), 0, false, nil
	case wiretype.UInt32:
		return uint64(le.Uint32(raw)), 0, false, nil
	case wiretype.Int64:
		return uint64(int64(le.Uint64(raw))), 0, false, nil
	case wiretype.UInt64:
		return le.Uint64(raw), 0, false, nil
	case wiretype.Float:
		return 0, float64(math.Float32frombits(le.Uint32(raw))), true, nil
	case wiretype.Double:
		return 0, math.Float64frombits(le.Uint64(raw)), true, nil
	default:
		return 0, 0, false, errs.InvalidType(fmt.Sprintf("unsupported numeric kind %s", kind))
	}
}

// swapRawNumeric byte-swaps a single numeric payload of kind in place and
// returns it. Used by the container codec's swap-path vector decode, where
// the per-element swap must happen before decodeNumericBytes widens it.
func swapRawNumeric(kind wiretype.Kind, raw []byte) []byte {
	switch len(raw) {
	case 2:
		le := endian.GetLittleEndianEngine()
		le.PutUint16(raw, endian.Swap16(le.Uint16(raw)))
	case 4:
		le := endian.GetLittleEndianEngine()
		le.PutUint32(raw, endian.Swap32(le.Uint32(raw)))
	case 8:
		le := endian.GetLittleEndianEngine()
		le.PutUint64(raw, endian.Swap64(le.Uint64(raw)))
	}

	return raw
}

func castNumeric[T Primitive](u uint64, f float64, isFloat bool) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		if isFloat {
			return any(int8(f)).(T)
		}

		return any(int8(int64(u))).(T)
	case uint8:
		if isFloat {
			return any(uint8(f)).(T)
		}

		return any(uint8(u)).(T)
	case int16:
		if isFloat {
			return any(int16(f)).(T)
		}

		return any(int16(int64(u))).(T)
	case uint16:
		if isFloat {
			return any(uint16(f)).(T)
		}

		return any(uint16(u)).(T)
	case int32:
		if isFloat {
			return any(int32(f)).(T)
		}

		return any(int32(int64(u))).(T)
	case uint32:
		if isFloat {
			return any(uint32(f)).(T)
		}

		return any(uint32(u)).(T)
	case int64:
		if isFloat {
			return any(int64(f)).(T)
		}

		return any(int64(u)).(T)
	case uint64:
		if isFloat {
			return any(uint64(f)).(T)
		}

		return any(u).(T)
	case float32:
		if isFloat {
			return any(float32(f)).(T)
		}

		return any(float32(int64(u))).(T)
	case float64:
		if isFloat {
			return any(f).(T)
		}

		return any(float64(int64(u))).(T)
	}

	return zero
}
