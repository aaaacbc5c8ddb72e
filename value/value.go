// Package value implements the ROBN opaque value container: a comparable
// wrapper around an encoded blob that can be assigned from, and read back
// as, any codable Go value, without its caller ever needing to know that
// value's concrete type up front.
package value

import (
	"bytes"

	"github.com/binaryrobn/robn/codec"
)

// Value owns a ROBN-encoded blob (including its own Type Tag) and answers
// typed reads from it on demand. The zero Value holds an empty blob.
type Value struct {
	blob []byte
}

// FromBytes wraps an already ROBN-encoded blob (Type Tag included) as a
// Value without re-encoding it. Used by readers that have located an
// entry's encoded bytes some other way (e.g. an archive's hash index) and
// need a Value handle over them.
func FromBytes(blob []byte) *Value {
	out := make([]byte, len(blob))
	copy(out, blob)

	return &Value{blob: out}
}

// Of builds a Value by encoding x.
func Of[T any](x T) (*Value, error) {
	v := &Value{}
	if err := v.Set(x); err != nil {
		return nil, err
	}

	return v, nil
}

// Set replaces v's blob with the ROBN encoding of x.
func (v *Value) Set(x any) error {
	blob, err := codec.Encode(x)
	if err != nil {
		return err
	}
	v.blob = blob

	return nil
}

// Bytes returns v's underlying blob. The returned slice must not be
// modified by the caller.
func (v *Value) Bytes() []byte {
	return v.blob
}

// As decodes v's blob as T.
func As[T any](v *Value) (T, error) {
	return codec.Decode[T](v.blob)
}

// Compare implements the total order over opaque values: shorter blobs sort
// first; blobs of equal length compare lexicographically byte by byte.
func Compare(a, b *Value) int {
	if len(a.blob) != len(b.blob) {
		if len(a.blob) < len(b.blob) {
			return -1
		}

		return 1
	}

	return bytes.Compare(a.blob, b.blob)
}

// Equal reports byte-identity of a and b's blobs.
func Equal(a, b *Value) bool {
	return bytes.Equal(a.blob, b.blob)
}

// EncodeROBN implements codec.Serializable by returning a copy of v's own
// blob verbatim: an opaque Value re-serializes to exactly the bytes it was
// built from, with no additional framing of its own.
func (v *Value) EncodeROBN() []byte {
	out := make([]byte, len(v.blob))
	copy(out, v.blob)

	return out
}

// DecodeROBN implements codec.Serializable. A Value has no Type Tag of its
// own on the wire: it is transparent packaging around whatever value it
// holds. DecodeROBN therefore treats outerTag as the start of a nested,
// fully self-delimiting ROBN value, decodes that value generically to learn
// its length, and stores the bytes it consumed (tag included) as v's blob.
func (v *Value) DecodeROBN(c *codec.Cursor, outerTag byte) error {
	start := c.Pos() - 1 // outerTag was already consumed by the caller
	if _, err := codec.DecodeTagged[Opaque](c, outerTag); err != nil {
		return err
	}
	v.blob = append([]byte(nil), c.BufferSlice(start, c.Pos())...)

	return nil
}

// Opaque is an internal marker type whose sole purpose is to make
// codec.DecodeTagged walk a nested value purely for its side effect of
// advancing the cursor past exactly one self-delimiting ROBN value, without
// caring what Go type that value decodes to.
type Opaque struct{}

func (Opaque) EncodeROBN() []byte { return nil }

func (*Opaque) DecodeROBN(c *codec.Cursor, outerTag byte) error {
	return c.SkipValue(outerTag)
}
