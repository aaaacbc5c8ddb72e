package archive

import (
	"iter"

	"github.com/binaryrobn/robn/compress"
	"github.com/binaryrobn/robn/endian"
	"github.com/binaryrobn/robn/internal/hash"
	"github.com/binaryrobn/robn/value"
)

// Reader provides indexed lookup and sequential iteration over an archive
// blob produced by Writer.Finish: an O(1) hash-keyed map, with an
// exact-name fallback populated only when the writer detected a hash
// collision.
type Reader struct {
	header  header
	entries []indexEntry
	byHash  map[uint64]indexEntry
	byName  map[string]indexEntry
	names   []string // entry order names, only populated when header.hasNames()
	payload []byte   // decompressed payload section
}

// Open parses an archive blob and decompresses its payload section.
func Open(data []byte) (*Reader, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	engine := h.engine()
	r := &Reader{
		header: h,
		byHash: make(map[uint64]indexEntry, h.EntryCount),
	}

	idxEnd := int(h.IndexOffset) + int(h.EntryCount)*IndexEntrySize
	if idxEnd > len(data) {
		return nil, ErrTruncatedIndex
	}

	r.entries = make([]indexEntry, h.EntryCount)
	for i := 0; i < int(h.EntryCount); i++ {
		start := int(h.IndexOffset) + i*IndexEntrySize
		e := parseIndexEntry(data[start:start+IndexEntrySize], engine)
		r.entries[i] = e
		r.byHash[e.Hash] = e
	}

	if h.hasNames() {
		if int(h.PayloadOffset) > len(data) {
			return nil, ErrTruncatedIndex
		}
		names, err := decodeNames(data[h.NamesOffset:h.PayloadOffset], engine, int(h.EntryCount))
		if err != nil {
			return nil, err
		}
		r.names = names
		r.byName = make(map[string]indexEntry, len(names))
		for i, n := range names {
			r.byName[n] = r.entries[i]
		}
	}

	payloadCodec, err := compress.CreateCodec(h.Compression, "archive payload")
	if err != nil {
		return nil, err
	}
	payload, err := payloadCodec.Decompress(data[h.PayloadOffset:])
	if err != nil {
		return nil, err
	}
	r.payload = payload

	return r, nil
}

// EntryCount returns the number of entries in the archive.
func (r *Reader) EntryCount() int {
	return len(r.entries)
}

// Get looks up name and returns its decoded value.Value. When the writer
// never recorded a hash collision, lookup is a single hash-map hit; when it
// did, Get resolves against the stored exact-name map instead, avoiding the
// ambiguity a shared hash would otherwise introduce.
func (r *Reader) Get(name string) (*value.Value, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return nil, false
	}

	return value.FromBytes(r.payload[e.Offset : e.Offset+e.Length]), true
}

func (r *Reader) lookup(name string) (indexEntry, bool) {
	if r.byName != nil {
		e, ok := r.byName[name]

		return e, ok
	}

	e, ok := r.byHash[hash.ID(name)]

	return e, ok
}

// All returns an iterator over every (name, value.Value) pair in the
// archive, in write order. When the writer never recorded a hash collision
// (the common case), names were never persisted, so All renders each
// entry's hash as a hex string instead of its original name.
func (r *Reader) All() iter.Seq2[string, *value.Value] {
	return func(yield func(string, *value.Value) bool) {
		for i, e := range r.entries {
			name := hashName(e.Hash)
			if r.names != nil {
				name = r.names[i]
			}
			if !yield(name, value.FromBytes(r.payload[e.Offset:e.Offset+e.Length])) {
				return
			}
		}
	}
}

func hashName(h uint64) string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = hexDigits[h&0xF]
		h >>= 4
	}

	return string(b)
}

// decodeNames reads count length-prefixed (uint32) names back to back.
func decodeNames(data []byte, engine endian.EndianEngine, count int) ([]string, error) {
	names := make([]string, 0, count)
	pos := 0
	for i := 0; i < count; i++ {
		if pos+4 > len(data) {
			return nil, ErrTruncatedIndex
		}
		n := int(engine.Uint32(data[pos : pos+4]))
		pos += 4
		if pos+n > len(data) {
			return nil, ErrTruncatedIndex
		}
		names = append(names, string(data[pos:pos+n]))
		pos += n
	}

	return names, nil
}
