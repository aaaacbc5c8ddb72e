package robn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryrobn/robn/archive"
)

// TestEncodeDecodeRoundtrip verifies the root package's Encode/Decode
// re-exports behave identically to codec.Encode/Decode.
func TestEncodeDecodeRoundtrip(t *testing.T) {
	blob, err := Encode(int32(7))
	require.NoError(t, err)

	got, err := Decode[int32](blob)
	require.NoError(t, err)
	require.Equal(t, int32(7), got)
}

// TestEncodeVectorDecodeVectorFrom verifies the root package's vector
// helpers round-trip a homogeneous slice.
func TestEncodeVectorDecodeVectorFrom(t *testing.T) {
	blob := EncodeVector([]float64{1, 2, 3})
	out, err := DecodeVectorFrom[float64](blob)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, out)
}

// TestAutoStructRoundtrip exercises the auto-struct re-exports end to end,
// including a dependent, conditionally-required field.
func TestAutoStructRoundtrip(t *testing.T) {
	s := NewStruct()
	var name string
	var age int32
	require.NoError(t, RegisterField(s, "name", &name))
	require.NoError(t, RegisterField(s, "age", &age, DependsOn("name"), RequiredIf(func() bool { return name != "" })))

	name, age = "grace", 85
	blob, err := s.Encode()
	require.NoError(t, err)

	s2 := NewStruct()
	var gotName string
	var gotAge int32
	require.NoError(t, RegisterField(s2, "name", &gotName))
	require.NoError(t, RegisterField(s2, "age", &gotAge, DependsOn("name"), RequiredIf(func() bool { return gotName != "" })))
	require.NoError(t, s2.Decode(blob))
	require.Equal(t, "grace", gotName)
	require.Equal(t, int32(85), gotAge)
}

// TestValueRoundtripAndOrder exercises the opaque value re-exports,
// including their total order.
func TestValueRoundtripAndOrder(t *testing.T) {
	v1, err := NewValue(uint8(1))
	require.NoError(t, err)
	v2, err := NewValue(uint64(1))
	require.NoError(t, err)

	require.Less(t, CompareValues(v1, v2), 0)

	got, err := ValueAs[uint8](v1)
	require.NoError(t, err)
	require.Equal(t, uint8(1), got)
}

// TestArchiveWriterReaderRoundtrip exercises the root package's archive
// re-exports end to end.
func TestArchiveWriterReaderRoundtrip(t *testing.T) {
	w := NewArchiveWriter(archive.WithCompression(0x1))
	v, err := NewValue(int32(42))
	require.NoError(t, err)
	require.NoError(t, w.Put("answer", v))

	blob, err := w.Finish()
	require.NoError(t, err)

	r, err := OpenArchive(blob)
	require.NoError(t, err)
	got, ok := r.Get("answer")
	require.True(t, ok)

	n, err := ValueAs[int32](got)
	require.NoError(t, err)
	require.Equal(t, int32(42), n)
}
