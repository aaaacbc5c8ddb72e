package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryrobn/robn/format"
)

func TestCreateCodecRoundtripAllTypes(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "test")
		require.NoError(t, err, "type %v", ct)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "type %v", ct)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, "type %v", ct)
		require.Equal(t, payload, decompressed, "type %v", ct)
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "test")
	require.Error(t, err)
}

func TestGetCodecBuiltins(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		c, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, c)
	}
}

func TestGetCodecUnsupportedType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestNoOpCompressorIsIdentity(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("unchanged")
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCompressionStatsRatioAndSavings(t *testing.T) {
	stats := CompressionStats{OriginalSize: 100, CompressedSize: 25}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)
}

func TestCompressionStatsZeroOriginalSize(t *testing.T) {
	stats := CompressionStats{OriginalSize: 0, CompressedSize: 0}
	require.Equal(t, 0.0, stats.CompressionRatio())
}

func TestS2CompressorEmptyInput(t *testing.T) {
	c := NewS2Compressor()
	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	decompressed, err := c.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestLZ4CompressorEmptyInput(t *testing.T) {
	c := NewLZ4Compressor()
	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	decompressed, err := c.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestLZ4CompressorRoundtripLargerPayload(t *testing.T) {
	c := NewLZ4Compressor()
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	compressed, err := c.Compress(payload)
	require.NoError(t, err)
	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}
