package codec

import (
	"fmt"
	"reflect"

	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/internal/pool"
	"github.com/binaryrobn/robn/wiretype"
)

// Serializable is implemented by aggregate types that know how to turn
// themselves into, and rebuild themselves from, a ROBN blob. EncodeROBN
// returns a self-contained blob including its own Type Tag; DecodeROBN is
// handed a cursor positioned just past an outer Type Tag the caller has
// already consumed; the caller passes that tag through without checking it
// against this type.
type Serializable interface {
	EncodeROBN() []byte
	DecodeROBN(c *Cursor, outerTag byte) error
}

// FixedSizer is an optional capability a Serializable type can implement to
// let callers preallocate an exact-size buffer before encoding.
type FixedSizer interface {
	FixedSizeBytes() (uint64, bool)
}

// robnEncodable/robnDecodable are the internal hooks Pair and OrderedMap use
// to plug into the generic dispatcher without forcing every nested value to
// satisfy the public, error-free Serializable contract.
type robnEncodable interface {
	encodeROBNChecked() ([]byte, error)
}

type robnDecodable interface {
	decodeROBNChecked(c *Cursor, tag byte) error
}

// Encode produces the full ROBN encoding (Type Tag plus payload) of v.
//
// Dispatch order: a user Serializable implementation, then the built-in Pair/
// OrderedMap container hooks, then reflection over primitive kinds, slices
// (encoded as Vector, requiring primitive-kind elements) and pointers.
func Encode[T any](v T) ([]byte, error) {
	if s, ok := any(v).(Serializable); ok {
		return s.EncodeROBN(), nil
	}
	if e, ok := any(v).(robnEncodable); ok {
		return e.encodeROBNChecked()
	}

	return encodeReflect(reflect.ValueOf(v))
}

// Decode reads a single ROBN-encoded value (Type Tag plus payload) from blob.
func Decode[T any](blob []byte) (T, error) {
	var zero T
	c := NewCursor(blob)
	tag, err := c.ReadTag()
	if err != nil {
		return zero, err
	}

	return decodeValue[T](c, tag)
}

// DecodeTagged decodes a value of type T given a Type Tag the caller has
// already read off the cursor. Exported for packages (autostruct, value)
// that manage their own framing around a field's or entry's encoded bytes.
func DecodeTagged[T any](c *Cursor, tag byte) (T, error) {
	return decodeValue[T](c, tag)
}

// decodeValue decodes a value of type T given an already-consumed outer tag.
func decodeValue[T any](c *Cursor, tag byte) (T, error) {
	rv := reflect.New(reflect.TypeOf((*T)(nil)).Elem()).Elem()
	if s, ok := rv.Addr().Interface().(Serializable); ok {
		if err := s.DecodeROBN(c, tag); err != nil {
			var zero T
			return zero, err
		}

		return rv.Interface().(T), nil
	}
	if d, ok := rv.Addr().Interface().(robnDecodable); ok {
		if err := d.decodeROBNChecked(c, tag); err != nil {
			var zero T
			return zero, err
		}

		return rv.Interface().(T), nil
	}

	if err := decodeReflectInto(rv, c, tag); err != nil {
		var zero T
		return zero, err
	}

	return rv.Interface().(T), nil
}

func encodeReflect(rv reflect.Value) ([]byte, error) {
	if rv.IsValid() {
		if s, ok := rv.Interface().(Serializable); ok {
			return s.EncodeROBN(), nil
		}
		if e, ok := rv.Interface().(robnEncodable); ok {
			return e.encodeROBNChecked()
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return EncodePrimitive(rv.Bool()), nil
	case reflect.Int8:
		return EncodePrimitive(int8(rv.Int())), nil
	case reflect.Int16:
		return EncodePrimitive(int16(rv.Int())), nil
	case reflect.Int32:
		return EncodePrimitive(int32(rv.Int())), nil
	case reflect.Int64, reflect.Int:
		return EncodePrimitive(rv.Int()), nil
	case reflect.Uint8:
		return EncodePrimitive(uint8(rv.Uint())), nil
	case reflect.Uint16:
		return EncodePrimitive(uint16(rv.Uint())), nil
	case reflect.Uint32:
		return EncodePrimitive(uint32(rv.Uint())), nil
	case reflect.Uint64, reflect.Uint:
		return EncodePrimitive(rv.Uint()), nil
	case reflect.Float32:
		return EncodePrimitive(float32(rv.Float())), nil
	case reflect.Float64:
		return EncodePrimitive(rv.Float()), nil
	case reflect.String:
		return EncodePrimitive(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return encodeReflectSlice(rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, errs.InvalidType("cannot encode nil pointer")
		}

		return encodeReflect(rv.Elem())
	default:
		return nil, errs.InvalidType(fmt.Sprintf("no codec for type %s", rv.Type()))
	}
}

func decodeReflectInto(rv reflect.Value, c *Cursor, tag byte) error {
	if rv.CanAddr() {
		if s, ok := rv.Addr().Interface().(Serializable); ok {
			return s.DecodeROBN(c, tag)
		}
		if d, ok := rv.Addr().Interface().(robnDecodable); ok {
			return d.decodeROBNChecked(c, tag)
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		v, err := DecodePrimitive[bool](c, tag)
		if err != nil {
			return err
		}
		rv.SetBool(v)
	case reflect.Int8:
		v, err := DecodePrimitive[int8](c, tag)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case reflect.Int16:
		v, err := DecodePrimitive[int16](c, tag)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case reflect.Int32:
		v, err := DecodePrimitive[int32](c, tag)
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
	case reflect.Int64, reflect.Int:
		v, err := DecodePrimitive[int64](c, tag)
		if err != nil {
			return err
		}
		rv.SetInt(v)
	case reflect.Uint8:
		v, err := DecodePrimitive[uint8](c, tag)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case reflect.Uint16:
		v, err := DecodePrimitive[uint16](c, tag)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case reflect.Uint32:
		v, err := DecodePrimitive[uint32](c, tag)
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case reflect.Uint64, reflect.Uint:
		v, err := DecodePrimitive[uint64](c, tag)
		if err != nil {
			return err
		}
		rv.SetUint(v)
	case reflect.Float32:
		v, err := DecodePrimitive[float32](c, tag)
		if err != nil {
			return err
		}
		rv.SetFloat(float64(v))
	case reflect.Float64:
		v, err := DecodePrimitive[float64](c, tag)
		if err != nil {
			return err
		}
		rv.SetFloat(v)
	case reflect.String:
		v, err := DecodePrimitive[string](c, tag)
		if err != nil {
			return err
		}
		rv.SetString(v)
	case reflect.Slice:
		return decodeReflectSliceInto(rv, c, tag)
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}

		return decodeReflectInto(rv.Elem(), c, tag)
	default:
		return errs.InvalidType(fmt.Sprintf("no codec for type %s", rv.Type()))
	}

	return nil
}

// reflectElemKind maps a slice element's reflect.Kind to the wiretype.Kind
// used as its shared Vector element tag. Only primitive element kinds are
// supported through the reflective Vector path; aggregate elements must
// implement Serializable on the slice type itself.
func reflectElemKind(t reflect.Type) (wiretype.Kind, error) {
	switch t.Kind() {
	case reflect.Bool:
		return wiretype.Bool, nil
	case reflect.Int8:
		return wiretype.Int8, nil
	case reflect.Int16:
		return wiretype.Int16, nil
	case reflect.Int32:
		return wiretype.Int32, nil
	case reflect.Int64, reflect.Int:
		return wiretype.Int64, nil
	case reflect.Uint8:
		return wiretype.UInt8, nil
	case reflect.Uint16:
		return wiretype.UInt16, nil
	case reflect.Uint32:
		return wiretype.UInt32, nil
	case reflect.Uint64, reflect.Uint:
		return wiretype.UInt64, nil
	case reflect.Float32:
		return wiretype.Float, nil
	case reflect.Float64:
		return wiretype.Double, nil
	case reflect.String:
		return wiretype.String, nil
	default:
		return wiretype.Undefined, errs.InvalidType(fmt.Sprintf("unsupported vector element type %s", t))
	}
}

func encodeReflectSlice(rv reflect.Value) ([]byte, error) {
	elemKind, err := reflectElemKind(rv.Type().Elem())
	if err != nil {
		return nil, err
	}

	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	ne := wiretype.NativeEndianness()
	buf.AppendByte(wiretype.Tag(wiretype.Vector, ne))
	appendPrimitive(buf, uint64(rv.Len()))
	buf.AppendByte(wiretype.Tag(elemKind, ne))

	for i := 0; i < rv.Len(); i++ {
		if err := appendPayloadReflect(buf, rv.Index(i)); err != nil {
			return nil, err
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func appendPayloadReflect(buf *pool.ByteBuffer, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		appendPayload(buf, rv.Bool())
	case reflect.Int8:
		appendPayload(buf, int8(rv.Int()))
	case reflect.Int16:
		appendPayload(buf, int16(rv.Int()))
	case reflect.Int32:
		appendPayload(buf, int32(rv.Int()))
	case reflect.Int64, reflect.Int:
		appendPayload(buf, rv.Int())
	case reflect.Uint8:
		appendPayload(buf, uint8(rv.Uint()))
	case reflect.Uint16:
		appendPayload(buf, uint16(rv.Uint()))
	case reflect.Uint32:
		appendPayload(buf, uint32(rv.Uint()))
	case reflect.Uint64, reflect.Uint:
		appendPayload(buf, rv.Uint())
	case reflect.Float32:
		appendPayload(buf, float32(rv.Float()))
	case reflect.Float64:
		appendPayload(buf, rv.Float())
	case reflect.String:
		appendPayload(buf, rv.String())
	default:
		return errs.InvalidType(fmt.Sprintf("unsupported vector element type %s", rv.Type()))
	}

	return nil
}

func decodeReflectSliceInto(rv reflect.Value, c *Cursor, tag byte) error {
	if wiretype.KindOf(tag) != wiretype.Vector {
		return errs.IncompatibleBinary(tag, c.Pos(), "expected Vector tag")
	}

	lengthTag, err := c.ReadTag()
	if err != nil {
		return err
	}

	length, err := DecodePrimitive[uint64](c, lengthTag)
	if err != nil {
		return err
	}

	elemTag, err := c.ReadTag()
	if err != nil {
		return err
	}

	elemKind := wiretype.KindOf(elemTag)
	minElemSize := wiretype.PrimitiveWidth(elemKind)
	if minElemSize == 0 {
		minElemSize = 1
	}
	if err := c.checkLength(length, minElemSize); err != nil {
		return err
	}

	elemType := rv.Type().Elem()
	out := reflect.MakeSlice(rv.Type(), 0, int(length))
	for i := uint64(0); i < length; i++ {
		ev := reflect.New(elemType).Elem()
		if err := decodeReflectInto(ev, c, elemTag); err != nil {
			return err
		}
		out = reflect.Append(out, ev)
	}

	rv.Set(out)

	return nil
}
