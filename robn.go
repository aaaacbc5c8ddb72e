// Package robn provides a self-describing binary serialization codec for Go
// values: every encoded value carries its own type tag, so decoding never
// needs an out-of-band schema.
//
// # Core Features
//
//   - Primitive codec for bools, fixed-width integers (including 128-bit),
//     floats, and UTF-8 strings
//   - Homogeneous vectors, two-element pairs, and ordered maps, each fully
//     self-describing on the wire
//   - Cross-endian decode: a value encoded on a big-endian host decodes
//     correctly on a little-endian one and vice versa
//   - A Serializable interface for user-defined aggregate types
//   - An auto-struct layer that derives Map-based encoding from named,
//     dependency-ordered field registrations
//   - An opaque Value container that holds an encoded blob and answers
//     typed reads against it on demand, with a defined total order
//   - An archive format for persisting named collections of opaque values
//     with optional compression and hash-indexed lookup
//
// # Basic Usage
//
// Encoding and decoding a primitive value:
//
//	import "github.com/binaryrobn/robn"
//
//	blob, _ := robn.Encode(int32(42))
//	v, _ := robn.Decode[int32](blob)
//
// Encoding a vector:
//
//	blob := robn.EncodeVector([]float64{1, 2, 3})
//	xs, _ := robn.DecodeVectorFrom[float64](blob)
//
// Building an auto-struct:
//
//	s := robn.NewStruct()
//	var name string
//	var age int32
//	_ = robn.RegisterField(s, "name", &name)
//	_ = robn.RegisterField(s, "age", &age, robn.RequiredIf(func() bool { return age != 0 }))
//
// # Package Structure
//
// This package re-exports the most commonly used entry points from codec,
// autostruct, value and archive for callers who don't need fine-grained
// package access. For advanced usage, import those packages directly.
package robn

import (
	"cmp"

	"github.com/binaryrobn/robn/archive"
	"github.com/binaryrobn/robn/autostruct"
	"github.com/binaryrobn/robn/codec"
	"github.com/binaryrobn/robn/value"
)

// Encode produces the full ROBN encoding of v.
func Encode[T any](v T) ([]byte, error) {
	return codec.Encode(v)
}

// Decode reads a single ROBN-encoded value from blob.
func Decode[T any](blob []byte) (T, error) {
	return codec.Decode[T](blob)
}

// EncodeVector encodes a homogeneous slice as a ROBN Vector.
func EncodeVector[T codec.Primitive](v []T) []byte {
	return codec.EncodeVector(v)
}

// DecodeVectorFrom decodes a ROBN Vector from blob.
func DecodeVectorFrom[T codec.Primitive](blob []byte) ([]T, error) {
	c := codec.NewCursor(blob)
	tag, err := c.ReadTag()
	if err != nil {
		return nil, err
	}

	return codec.DecodeVector[T](c, tag)
}

// Pair is the two-element, independently-typed ROBN Pair Value.
type Pair[A, B any] = codec.Pair[A, B]

// OrderedMap is the ROBN Map Value: an insertion-ordered association list
// that encodes in ascending key order.
type OrderedMap[K cmp.Ordered, V any] = codec.OrderedMap[K, V]

// NewStruct returns an empty auto-struct ready for field registration.
func NewStruct() *autostruct.Struct {
	return autostruct.New()
}

// RegisterField adds a named field to s.
func RegisterField[T any](s *autostruct.Struct, name string, val *T, opts ...autostruct.FieldOption) error {
	return autostruct.RegisterField(s, name, val, opts...)
}

// DependsOn declares that a field's encode/decode order must follow the
// named fields.
func DependsOn(names ...string) autostruct.FieldOption {
	return autostruct.DependsOn(names...)
}

// RequiredIf marks a field as conditionally required.
func RequiredIf(pred func() bool) autostruct.FieldOption {
	return autostruct.RequiredIf(pred)
}

// Value is the opaque ROBN value container.
type Value = value.Value

// NewValue builds a Value by encoding x.
func NewValue[T any](x T) (*Value, error) {
	return value.Of(x)
}

// ValueAs decodes v's blob as T.
func ValueAs[T any](v *Value) (T, error) {
	return value.As[T](v)
}

// CompareValues implements the opaque value total order: shorter blobs sort
// first, equal-length blobs compare lexicographically.
func CompareValues(a, b *Value) int {
	return value.Compare(a, b)
}

// ArchiveWriter accumulates named opaque values into one archive blob.
type ArchiveWriter = archive.Writer

// NewArchiveWriter returns an empty ArchiveWriter ready to accept entries.
func NewArchiveWriter(opts ...archive.WriterOption) *ArchiveWriter {
	return archive.NewWriter(opts...)
}

// ArchiveReader provides indexed lookup over an archive blob.
type ArchiveReader = archive.Reader

// OpenArchive parses an archive blob produced by an ArchiveWriter.
func OpenArchive(blob []byte) (*ArchiveReader, error) {
	return archive.Open(blob)
}
