package codec

import (
	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/internal/pool"
	"github.com/binaryrobn/robn/wiretype"
)

// EncodeVector emits a Vector tag, a typed UInt64 element count, a single
// shared element Type Tag, and then every element's raw payload back to
// back, with no per-element tag.
func EncodeVector[T Primitive](v []T) []byte {
	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	ne := wiretype.NativeEndianness()
	buf.AppendByte(wiretype.Tag(wiretype.Vector, ne))
	appendPrimitive(buf, uint64(len(v)))
	buf.AppendByte(wiretype.Tag(kindOfT[T](), ne))

	for _, x := range v {
		appendPayload(buf, x)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// DecodeVector reads a Vector whose outer tag has already been consumed into
// tag. It picks one of three decode paths depending on how the vector's
// shared element tag relates to T:
//
//   - fast path: element kind matches T and the source endianness is native,
//     so the whole payload is read in one bounds check and decoded in place.
//   - swap path: element kind matches T but the source endianness differs,
//     so each element is byte-swapped before it's widened.
//   - cross-kind path: element kind differs from T. The cursor is rewound to
//     the vector's start and re-decoded as a vector of the source kind, then
//     cast element-wise, reusing the scalar cast rules DecodePrimitive uses.
//
// Non-numeric elements (strings) always go through the per-element scalar
// decoder, since they have no fixed width to bulk-copy.
func DecodeVector[T Primitive](c *Cursor, tag byte) ([]T, error) {
	if wiretype.KindOf(tag) != wiretype.Vector {
		return nil, errs.IncompatibleBinary(tag, c.Pos(), "expected Vector tag")
	}

	vectorStart := c.Pos() - 1

	lengthTag, err := c.ReadTag()
	if err != nil {
		return nil, err
	}

	length, err := DecodePrimitive[uint64](c, lengthTag)
	if err != nil {
		return nil, err
	}

	elemTag, err := c.ReadTag()
	if err != nil {
		return nil, err
	}
	elemKind := wiretype.KindOf(elemTag)

	if !elemKind.Numeric() {
		if err := c.checkLength(length, 1); err != nil {
			return nil, err
		}

		return decodeVectorScalar[T](c, elemTag, length)
	}

	destKind := kindOfT[T]()
	if elemKind != destKind {
		if err := c.checkLength(length, wiretype.PrimitiveWidth(elemKind)); err != nil {
			return nil, err
		}
		c.Rewind(vectorStart)

		return decodeVectorCrossKind[T](c, elemKind)
	}

	width := wiretype.PrimitiveWidth(elemKind)
	if err := c.checkLength(length, width); err != nil {
		return nil, err
	}
	swap := wiretype.EndiannessOf(elemTag) != wiretype.NativeEndianness()

	span := int(length) * width
	raw, err := c.readN(span)
	if err != nil {
		return nil, err
	}

	out := make([]T, length)
	var scratch [16]byte
	for i := range out {
		elemRaw := raw[i*width : (i+1)*width]
		if swap {
			n := copy(scratch[:], elemRaw)
			elemRaw = swapRawNumeric(elemKind, scratch[:n])
		}
		u, f, isFloat, err := decodeNumericBytes(elemKind, elemRaw)
		if err != nil {
			return nil, err
		}
		out[i] = castNumeric[T](u, f, isFloat)
	}

	return out, nil
}

// decodeVectorScalar decodes length elements through DecodePrimitive against
// a shared element tag, one at a time. Used for non-numeric element kinds
// (strings and bools), which the bulk paths do not handle.
func decodeVectorScalar[T Primitive](c *Cursor, elemTag byte, length uint64) ([]T, error) {
	out := make([]T, 0, length)
	for i := uint64(0); i < length; i++ {
		v, err := DecodePrimitive[T](c, elemTag)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// decodeVectorCrossKind decodes a vector whose element kind differs from T.
// The cursor must already be positioned at the vector's outer Vector tag
// (DecodeVector rewinds it there). It re-reads the vector as its source Go
// type, then casts every element to T with the same widen/narrow rules
// castNumeric applies to scalars.
func decodeVectorCrossKind[T Primitive](c *Cursor, srcKind wiretype.Kind) ([]T, error) {
	tag, err := c.ReadTag()
	if err != nil {
		return nil, err
	}

	switch srcKind {
	case wiretype.Int8:
		return crossKindInto[T, int8](c, tag)
	case wiretype.UInt8:
		return crossKindInto[T, uint8](c, tag)
	case wiretype.Int16:
		return crossKindInto[T, int16](c, tag)
	case wiretype.UInt16:
		return crossKindInto[T, uint16](c, tag)
	case wiretype.Int32:
		return crossKindInto[T, int32](c, tag)
	case wiretype.UInt32:
		return crossKindInto[T, uint32](c, tag)
	case wiretype.Int64:
		return crossKindInto[T, int64](c, tag)
	case wiretype.UInt64:
		return crossKindInto[T, uint64](c, tag)
	case wiretype.Float:
		return crossKindInto[T, float32](c, tag)
	case wiretype.Double:
		return crossKindInto[T, float64](c, tag)
	default:
		return nil, errs.IncompatibleBinary(tag, c.Pos(), "unsupported cross-kind vector element")
	}
}

// crossKindInto decodes a vector of source kind S and casts every element
// to T.
func crossKindInto[T Primitive, S Primitive](c *Cursor, tag byte) ([]T, error) {
	src, err := DecodeVector[S](c, tag)
	if err != nil {
		return nil, err
	}

	return castSlice[T](src), nil
}

// castSlice converts a decoded source-kind slice to the requested
// destination kind, element by element, via the same bit-widening
// castNumeric uses for scalar cross-kind decodes.
func castSlice[T Primitive, S Primitive](src []S) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = castElement[T](v)
	}

	return out
}

func castElement[T Primitive, S Primitive](v S) T {
	u, f, isFloat := primitiveBits(v)

	return castNumeric[T](u, f, isFloat)
}

// primitiveBits widens a decoded numeric Go value back into the
// uint64/float64 pair castNumeric expects, mirroring castNumeric's own
// switch in reverse.
func primitiveBits[S Primitive](v S) (uint64, float64, bool) {
	switch x := any(v).(type) {
	case int8:
		return uint64(int64(x)), 0, false
	case uint8:
		return uint64(x), 0, false
	case int16:
		return uint64(int64(x)), 0, false
	case uint16:
		return uint64(x), 0, false
	case int32:
		return uint64(int64(x)), 0, false
	case uint32:
		return uint64(x), 0, false
	case int64:
		return uint64(x), 0, false
	case uint64:
		return x, 0, false
	case float32:
		return 0, float64(x), true
	case float64:
		return 0, x, true
	default:
		return 0, 0, false
	}
}

// Pair is the codec's representation of a ROBN Pair Value: two independently
// typed values, each fully self-describing on the wire.
type Pair[A, B any] struct {
	First  A
	Second B
}

// encodeROBNChecked lets Pair plug into the generic Encode/Decode dispatcher
// in serializable.go without requiring every Pair element type to satisfy
// the panic-free Serializable contract.
func (p Pair[A, B]) encodeROBNChecked() ([]byte, error) {
	return EncodePair(p)
}

func (p *Pair[A, B]) decodeROBNChecked(c *Cursor, tag byte) error {
	decoded, err := DecodePair[A, B](c, tag)
	if err != nil {
		return err
	}
	*p = decoded

	return nil
}

// EncodePair emits a Pair tag followed by the fully typed encoding of First
// and then Second.
func EncodePair[A, B any](p Pair[A, B]) ([]byte, error) {
	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	buf.AppendByte(wiretype.Tag(wiretype.Pair, wiretype.NativeEndianness()))

	firstBytes, err := Encode(p.First)
	if err != nil {
		return nil, err
	}
	buf.AppendBytes(firstBytes)

	secondBytes, err := Encode(p.Second)
	if err != nil {
		return nil, err
	}
	buf.AppendBytes(secondBytes)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodePair reads a Pair whose outer tag has already been consumed into tag.
func DecodePair[A, B any](c *Cursor, tag byte) (Pair[A, B], error) {
	var zero Pair[A, B]
	if wiretype.KindOf(tag) != wiretype.Pair {
		return zero, errs.IncompatibleBinary(tag, c.Pos(), "expected Pair tag")
	}

	first, err := decodeTagged[A](c)
	if err != nil {
		return zero, err
	}

	second, err := decodeTagged[B](c)
	if err != nil {
		return zero, err
	}

	return Pair[A, B]{First: first, Second: second}, nil
}

// decodeTagged reads the next Type Tag and decodes the value that follows
// it via the generic dispatcher.
func decodeTagged[T any](c *Cursor) (T, error) {
	var zero T
	tag, err := c.ReadTag()
	if err != nil {
		return zero, err
	}

	return decodeValue[T](c, tag)
}
