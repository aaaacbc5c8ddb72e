package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/wiretype"
)

func TestCursorReadTagAdvances(t *testing.T) {
	c := NewCursor([]byte{0x0A, 0x01, 0x02, 0x03, 0x04})
	require.Equal(t, 5, c.Remaining())
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.Equal(t, byte(0x0A), tag)
	require.Equal(t, 1, c.Pos())
	require.Equal(t, 4, c.Remaining())
	require.False(t, c.AtEnd())
}

func TestCursorReadTagTruncated(t *testing.T) {
	c := NewCursor(nil)
	_, err := c.ReadTag()
	require.ErrorIs(t, err, errs.ErrTruncated)
	require.True(t, c.AtEnd())
}

func TestCursorRewind(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	_, _ = c.ReadTag()
	pos := c.Pos()
	_, _ = c.ReadTag()
	require.Equal(t, 2, c.Pos())
	c.Rewind(pos)
	require.Equal(t, pos, c.Pos())
}

func TestCursorSkipValuePrimitive(t *testing.T) {
	blob := EncodePrimitive(uint32(7))
	c := NewCursor(blob)
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.NoError(t, c.SkipValue(tag))
	require.True(t, c.AtEnd())
}

func TestCursorSkipValueString(t *testing.T) {
	blob := EncodePrimitive("abc")
	c := NewCursor(blob)
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.NoError(t, c.SkipValue(tag))
	require.True(t, c.AtEnd())
}

func TestCursorSkipValueVector(t *testing.T) {
	blob := EncodeVector([]int32{1, 2, 3})
	c := NewCursor(blob)
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.NoError(t, c.SkipValue(tag))
	require.True(t, c.AtEnd())
}

func TestCursorSkipValuePair(t *testing.T) {
	blob, err := EncodePair(Pair[int32, string]{First: 1, Second: "x"})
	require.NoError(t, err)

	c := NewCursor(blob)
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.NoError(t, c.SkipValue(tag))
	require.True(t, c.AtEnd())
}

func TestCursorSkipValueMap(t *testing.T) {
	m := NewOrderedMap[string, int32]()
	m.Set("a", 1)
	blob, err := EncodeOrderedMap(m)
	require.NoError(t, err)

	c := NewCursor(blob)
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.NoError(t, c.SkipValue(tag))
	require.True(t, c.AtEnd())
}

func TestCursorSkipValueUnknownKind(t *testing.T) {
	c := NewCursor([]byte{0})
	err := c.SkipValue(wiretype.Tag(wiretype.SublistStart, wiretype.Little))
	require.ErrorIs(t, err, errs.ErrIncompatibleBinary)
}

func TestCursorBufferSlice(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	require.Equal(t, []byte{2, 3, 4}, c.BufferSlice(1, 4))
}
