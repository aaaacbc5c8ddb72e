// Package compress provides compression and decompression codecs for the
// whole-payload section of an archive.
//
// Archive entries are ROBN-encoded independently; compress operates one
// level up, on the concatenation of those encoded bytes, layering
// general-purpose compression on top of the codec's own encoding step.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): no compression, zero overhead.
//   - Zstd (format.CompressionZstd): best compression ratio, moderate speed.
//     Uses the cgo binding (github.com/valyala/gozstd) when cgo is enabled,
//     falling back to the pure-Go github.com/klauspost/compress/zstd
//     otherwise (see zstd_cgo.go / zstd_pure.go build tags).
//   - S2 (format.CompressionS2): Snappy-compatible, fast with good ratio.
//   - LZ4 (format.CompressionLZ4): very fast decompression, moderate ratio.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec and GetCodec construct a Codec from a format.CompressionType,
// so an archive.Writer can pick one via the same functional-option pattern
// used for its own configuration.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use across goroutines.
package compress
