package archive

import "github.com/binaryrobn/robn/endian"

// indexEntry records one archive entry's location in the payload section.
// Fixed 16 bytes on the wire: hash/offset/length fields packed into one
// struct, a single contiguous array of them following the header.
type indexEntry struct {
	Hash   uint64 // xxHash64 of the entry name
	Offset uint32 // byte offset within the decompressed payload section
	Length uint32 // byte length of this entry's ROBN-encoded bytes
}

func (e indexEntry) bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, IndexEntrySize)
	engine.PutUint64(b[0:8], e.Hash)
	engine.PutUint32(b[8:12], e.Offset)
	engine.PutUint32(b[12:16], e.Length)

	return b
}

func parseIndexEntry(data []byte, engine endian.EndianEngine) indexEntry {
	return indexEntry{
		Hash:   engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Length: engine.Uint32(data[12:16]),
	}
}
