package codec

import (
	"fmt"

	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/wiretype"
)

// Cursor is a bounds-checked read position into a decode buffer. Cursor is
// the Go analogue of the position/end byte-pointer pair used throughout the
// original format: every read advances pos monotonically and never past end.
type Cursor struct {
	buf []byte
	pos int
	end int
}

// NewCursor wraps buf for decoding, starting at its first byte.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, pos: 0, end: len(buf)}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return c.end - c.pos }

// AtEnd reports whether the cursor has consumed the whole buffer.
func (c *Cursor) AtEnd() bool { return c.pos >= c.end }

// readN returns the next n bytes and advances the cursor, or fails with
// ErrTruncated if fewer than n bytes remain.
func (c *Cursor) readN(n int) ([]byte, error) {
	if c.pos+n > c.end {
		return nil, errs.Truncated(c.pos, fmt.Sprintf("need %d bytes, have %d", n, c.Remaining()))
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// ReadTag consumes and returns the next Type Tag byte.
func (c *Cursor) ReadTag() (byte, error) {
	b, err := c.readN(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// BufferSlice returns the bytes of the backing buffer between start and end,
// both absolute offsets previously observed via Pos. It does not move the
// cursor.
func (c *Cursor) BufferSlice(start, end int) []byte {
	return c.buf[start:end]
}

// SkipValue advances the cursor past exactly one value whose outer Type Tag
// has already been consumed into tag, without materializing it as any Go
// type. Used by the opaque value container to discover where a nested,
// self-delimiting value ends.
func (c *Cursor) SkipValue(tag byte) error {
	kind := wiretype.KindOf(tag)

	if kind == wiretype.String {
		_, err := decodeNulString(c)

		return err
	}

	if width := wiretype.PrimitiveWidth(kind); width > 0 {
		_, err := c.readN(width)

		return err
	}

	switch kind {
	case wiretype.Vector:
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
		for i := uint64(0); i < length; i++ {
			if elemKind == wiretype.String {
				if _, err := decodeNulString(c); err != nil {
					return err
				}

				continue
			}
			width := wiretype.PrimitiveWidth(elemKind)
			if width == 0 {
				return errs.IncompatibleBinary(elemTag, c.pos, "unsupported vector element kind")
			}
			if _, err := c.readN(width); err != nil {
				return err
			}
		}

		return nil
	case wiretype.Pair:
		for i := 0; i < 2; i++ {
			elemTag, err := c.ReadTag()
			if err != nil {
				return err
			}
			if err := c.SkipValue(elemTag); err != nil {
				return err
			}
		}

		return nil
	case wiretype.Map:
		lengthTag, err := c.ReadTag()
		if err != nil {
			return err
		}
		length, err := DecodePrimitive[uint64](c, lengthTag)
		if err != nil {
			return err
		}
		for i := uint64(0); i < length; i++ {
			pairTag, err := c.ReadTag()
			if err != nil {
				return err
			}
			if err := c.SkipValue(pairTag); err != nil {
				return err
			}
		}

		return nil
	default:
		return errs.IncompatibleBinary(tag, c.pos, "unsupported kind for skip")
	}
}

// checkLength validates a wire-supplied element count against the bytes
// actually remaining in the buffer before it is used for allocation or
// bulk-read arithmetic. minElemSize is the smallest possible on-wire size of
// one element (the primitive width for fixed-width kinds, 1 for a
// variable-width kind like String, whose shortest encoding is a single NUL).
// Dividing remaining by minElemSize, rather than multiplying length by it,
// keeps the comparison free of overflow regardless of how large length is.
func (c *Cursor) checkLength(length uint64, minElemSize int) error {
	if minElemSize <= 0 {
		minElemSize = 1
	}
	if length > uint64(c.Remaining())/uint64(minElemSize) {
		return errs.Truncated(c.pos, fmt.Sprintf("declared length %d cannot fit in %d remaining bytes", length, c.Remaining()))
	}

	return nil
}

// Rewind moves the cursor back to an earlier position captured via Pos.
// Used by the container codec's cross-kind vector decode path, which must
// re-read a vector's header after discovering its element kind differs from
// the requested destination type.
func (c *Cursor) Rewind(pos int) {
	c.pos = pos
}
