// Package archive persists a named collection of ROBN opaque values
// (value.Value) as one contiguous byte blob: a fixed-size header, a
// hash-indexed table of entries, an optional name payload for collision
// fallback, and a (optionally compressed) section holding the concatenation
// of each entry's ROBN-encoded bytes.
//
// # Layout
//
//	[Header: 24 bytes][Index: 16 bytes * EntryCount][Names?][Payload]
//
// The header records a magic number, format version, an endianness/flags
// byte, the whole-payload compression codec, the entry count, and the byte
// offsets of the index, name payload and payload sections. Each index entry
// is a fixed 16 bytes: the xxHash64 of the entry's name, and the entry's
// offset and length within the decompressed payload section.
//
// Entry names collide under a 64-bit hash with vanishing probability;
// Writer detects a collision via internal/collision.Tracker and, when one
// occurs, falls back to storing the full ordered list of names so Reader
// can resolve entries by exact name instead of by hash alone.
//
// # Usage
//
//	w := archive.NewWriter(archive.WithCompression(format.CompressionZstd))
//	v, _ := value.Of(int32(42))
//	_ = w.Put("answer", v)
//	blob, _ := w.Finish()
//
//	r, _ := archive.Open(blob)
//	v, ok := r.Get("answer")
//	n, _ := value.As[int32](v)
package archive
