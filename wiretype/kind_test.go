package wiretype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagRoundtrip(t *testing.T) {
	for _, k := range []Kind{Undefined, String, Bool, Int8, UInt8, Int64, UInt64, Vector, Pair, Map, Int128, UInt128} {
		for _, e := range []Endianness{Little, Big} {
			tag := Tag(k, e)
			require.Equal(t, k, KindOf(tag))
			require.Equal(t, e, EndiannessOf(tag))
		}
	}
}

func TestTagHighBitReservedForEndianness(t *testing.T) {
	tag := Tag(UInt32, Big)
	require.Equal(t, byte(0x80), tag&0x80)
	require.Equal(t, UInt32, KindOf(tag))
}

func TestPrimitiveWidth(t *testing.T) {
	cases := map[Kind]int{
		Bool: 1, Int8: 1, UInt8: 1,
		Int16: 2, UInt16: 2,
		Int32: 4, UInt32: 4, Float: 4,
		Int64: 8, UInt64: 8, Double: 8,
		Int128: 16, UInt128: 16,
		String: 0, Vector: 0, Pair: 0, Map: 0, Undefined: 0,
	}
	for k, want := range cases {
		require.Equal(t, want, PrimitiveWidth(k), "kind %v", k)
	}
}

func TestNumeric(t *testing.T) {
	require.True(t, Int32.Numeric())
	require.True(t, Double.Numeric())
	require.False(t, String.Numeric())
	require.False(t, Vector.Numeric())
	require.False(t, Undefined.Numeric())
}

func TestReservedKindsHaveNoWidth(t *testing.T) {
	for _, k := range []Kind{LongDouble, BigInt, BigFloat, SublistStart, SublistEnd, SublistElementCount, SublistSize} {
		require.Equal(t, 0, PrimitiveWidth(k))
		require.Equal(t, "Reserved", k.String())
	}
}

func TestNativeEndiannessMatchesHost(t *testing.T) {
	ne := NativeEndianness()
	require.Contains(t, []Endianness{Little, Big}, ne)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "UInt32", UInt32.String())
	require.Equal(t, "Vector", Vector.String())
	require.Equal(t, "Undefined", Undefined.String())
}
