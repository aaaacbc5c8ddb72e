package compress

// ZstdCompressor provides Zstandard compression for an archive's payload
// section.
//
// This compressor favors compression ratio over speed, making it suited to
// archives written once and read rarely: cold storage, long-term retention,
// and bandwidth-constrained transmission.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
