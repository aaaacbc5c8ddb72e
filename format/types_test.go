package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestCompressionTypeValuesAreDistinct(t *testing.T) {
	types := []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}
	seen := make(map[CompressionType]bool)
	for _, ty := range types {
		require.False(t, seen[ty], "duplicate compression type value %v", ty)
		seen[ty] = true
	}
}
