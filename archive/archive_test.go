package archive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryrobn/robn/format"
	"github.com/binaryrobn/robn/value"
)

func TestWriterReaderRoundtrip(t *testing.T) {
	w := NewWriter()
	v1, err := value.Of(int32(42))
	require.NoError(t, err)
	v2, err := value.Of("hello")
	require.NoError(t, err)

	require.NoError(t, w.Put("answer", v1))
	require.NoError(t, w.Put("greeting", v2))

	blob, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(blob)
	require.NoError(t, err)
	require.Equal(t, 2, r.EntryCount())

	got1, ok := r.Get("answer")
	require.True(t, ok)
	n, err := value.As[int32](got1)
	require.NoError(t, err)
	require.Equal(t, int32(42), n)

	got2, ok := r.Get("greeting")
	require.True(t, ok)
	s, err := value.As[string](got2)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestWriterPutEmptyNameFails(t *testing.T) {
	w := NewWriter()
	v, err := value.Of(int32(1))
	require.NoError(t, err)
	err = w.Put("", v)
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestWriterPutDuplicateNameFails(t *testing.T) {
	w := NewWriter()
	v, err := value.Of(int32(1))
	require.NoError(t, err)
	require.NoError(t, w.Put("x", v))
	err = w.Put("x", v)
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestReaderGetMissingName(t *testing.T) {
	w := NewWriter()
	v, err := value.Of(int32(1))
	require.NoError(t, err)
	require.NoError(t, w.Put("x", v))
	blob, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(blob)
	require.NoError(t, err)
	_, ok := r.Get("ghost")
	require.False(t, ok)
}

func TestReaderAllIteratesEveryEntry(t *testing.T) {
	w := NewWriter()
	names := []string{"a", "b", "c"}
	for i, n := range names {
		v, err := value.Of(int32(i))
		require.NoError(t, err)
		require.NoError(t, w.Put(n, v))
	}
	blob, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(blob)
	require.NoError(t, err)

	seen := map[string]int32{}
	for name, v := range r.All() {
		n, err := value.As[int32](v)
		require.NoError(t, err)
		seen[name] = n
	}
	require.Len(t, seen, 3)
}

func TestOpenRejectsInvalidHeader(t *testing.T) {
	_, err := Open([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	junk := make([]byte, HeaderSize)
	_, err := Open(junk)
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestArchiveWithCompression(t *testing.T) {
	for _, c := range []format.CompressionType{
		format.CompressionNone, format.CompressionS2, format.CompressionLZ4,
	} {
		w := NewWriter(WithCompression(c))
		v, err := value.Of([]byte("payload data for compression"))
		require.NoError(t, err)
		require.NoError(t, w.Put("entry", v))
		blob, err := w.Finish()
		require.NoError(t, err, "compression %v", c)

		r, err := Open(blob)
		require.NoError(t, err, "compression %v", c)
		got, ok := r.Get("entry")
		require.True(t, ok)
		require.NotNil(t, got)
	}
}

func TestArchiveEmpty(t *testing.T) {
	w := NewWriter()
	blob, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(blob)
	require.NoError(t, err)
	require.Equal(t, 0, r.EntryCount())
}
