package value

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryrobn/robn/codec"
)

func TestValueSetAndAsRoundtrip(t *testing.T) {
	v := &Value{}
	require.NoError(t, v.Set(int32(42)))

	got, err := As[int32](v)
	require.NoError(t, err)
	require.Equal(t, int32(42), got)
}

func TestValueOfConstructor(t *testing.T) {
	v, err := Of("hello")
	require.NoError(t, err)

	got, err := As[string](v)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestValueReassignmentOverwritesBlob(t *testing.T) {
	v, err := Of(int32(1))
	require.NoError(t, err)
	require.NoError(t, v.Set(int32(2)))

	got, err := As[int32](v)
	require.NoError(t, err)
	require.Equal(t, int32(2), got)
}

func TestValueFromBytesWrapsVerbatim(t *testing.T) {
	inner, err := Of(uint16(7))
	require.NoError(t, err)

	v := FromBytes(inner.Bytes())
	got, err := As[uint16](v)
	require.NoError(t, err)
	require.Equal(t, uint16(7), got)
}

func TestCompareTotalOrder(t *testing.T) {
	// Testable Property 6: compare by length ascending, then lexicographic.
	short, err := Of(uint8(1))
	require.NoError(t, err)
	long, err := Of(uint64(1))
	require.NoError(t, err)

	require.Equal(t, -1, Compare(short, long))
	require.Equal(t, 1, Compare(long, short))
	require.Equal(t, 0, Compare(short, short))
}

func TestCompareLexicographicAtEqualLength(t *testing.T) {
	a, err := Of(uint8(1))
	require.NoError(t, err)
	b, err := Of(uint8(2))
	require.NoError(t, err)

	require.Equal(t, -1, Compare(a, b))
	require.Equal(t, 1, Compare(b, a))
}

func TestCompareIsStrictTotalOrder(t *testing.T) {
	vals := []*Value{}
	for _, x := range []int32{5, -3, 0, 100, 1} {
		v, err := Of(x)
		require.NoError(t, err)
		vals = append(vals, v)
	}

	sort.Slice(vals, func(i, j int) bool { return Compare(vals[i], vals[j]) < 0 })
	for i := 0; i+1 < len(vals); i++ {
		require.LessOrEqual(t, Compare(vals[i], vals[i+1]), 0)
	}
}

func TestEqualByteIdentity(t *testing.T) {
	a, err := Of("same")
	require.NoError(t, err)
	b, err := Of("same")
	require.NoError(t, err)
	c, err := Of("different")
	require.NoError(t, err)

	require.True(t, Equal(a, b))
	require.False(t, Equal(a, c))
}

func TestValueImplementsSerializableRoundtrip(t *testing.T) {
	inner, err := Of([]int32{1, 2, 3})
	require.NoError(t, err)

	blob := inner.EncodeROBN()

	outer := &Value{}
	c := codec.NewCursor(blob)
	tag, err := c.ReadTag()
	require.NoError(t, err)
	require.NoError(t, outer.DecodeROBN(c, tag))
	require.True(t, Equal(inner, outer))
}
