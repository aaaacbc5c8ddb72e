package archive

import (
	"github.com/binaryrobn/robn/compress"
	"github.com/binaryrobn/robn/endian"
	"github.com/binaryrobn/robn/format"
	"github.com/binaryrobn/robn/internal/collision"
	"github.com/binaryrobn/robn/internal/hash"
	"github.com/binaryrobn/robn/internal/options"
	"github.com/binaryrobn/robn/value"
)

// Writer accumulates named value.Value entries and assembles them into one
// archive blob on Finish. A Writer is not reusable: call Finish once and
// build a new Writer for the next archive.
type Writer struct {
	compression format.CompressionType
	tracker     *collision.Tracker
	entries     []writerEntry
}

type writerEntry struct {
	name string
	hash uint64
	blob []byte
}

// NewWriter returns an empty Writer ready to accept entries.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		compression: format.CompressionNone,
		tracker:     collision.NewTracker(),
	}
	_ = options.Apply(w, opts...)

	return w
}

// Put adds a named entry. name must be non-empty and must not have been
// used already on this Writer.
func (w *Writer) Put(name string, v *value.Value) error {
	if name == "" {
		return ErrEmptyName
	}

	id := hash.ID(name)
	if err := w.tracker.TrackName(name, id); err != nil {
		if err == collision.ErrDuplicateName {
			return ErrDuplicateName
		}

		return err
	}

	w.entries = append(w.entries, writerEntry{name: name, hash: id, blob: v.Bytes()})

	return nil
}

// Finish compresses the payload section, builds the index and header, and
// returns the complete archive blob. After Finish, the Writer must not be
// reused.
func (w *Writer) Finish() ([]byte, error) {
	engine := endian.GetLittleEndianEngine()
	if endian.IsNativeBigEndian() {
		engine = endian.GetBigEndianEngine()
	}

	entries := make([]indexEntry, len(w.entries))
	var payload []byte
	for i, e := range w.entries {
		entries[i] = indexEntry{Hash: e.hash, Offset: uint32(len(payload)), Length: uint32(len(e.blob))} //nolint: gosec
		payload = append(payload, e.blob...)
	}

	payloadCodec, err := compress.CreateCodec(w.compression, "archive payload")
	if err != nil {
		return nil, err
	}
	compressed, err := payloadCodec.Compress(payload)
	if err != nil {
		return nil, err
	}

	h := header{
		Magic:       Magic,
		Version:     Version,
		Compression: w.compression,
		EntryCount:  uint32(len(entries)), //nolint: gosec
	}
	if endian.IsNativeBigEndian() {
		h.Flags |= flagBigEndian
	}

	indexOffset := uint32(HeaderSize) //nolint: gosec
	h.IndexOffset = indexOffset

	var namesPayload []byte
	if w.tracker.HasCollision() {
		h.Flags |= flagHasNames
		namesPayload = encodeNames(w.namesInEntryOrder())
		h.NamesOffset = indexOffset + uint32(len(entries))*IndexEntrySize //nolint: gosec
		h.PayloadOffset = h.NamesOffset + uint32(len(namesPayload))       //nolint: gosec
	} else {
		h.PayloadOffset = indexOffset + uint32(len(entries))*IndexEntrySize //nolint: gosec
	}

	out := make([]byte, 0, int(h.PayloadOffset)+len(compressed))
	out = append(out, h.bytes()...)
	for _, e := range entries {
		out = append(out, e.bytes(engine)...)
	}
	out = append(out, namesPayload...)
	out = append(out, compressed...)

	return out, nil
}

// namesInEntryOrder returns entry names in the same order as the index, so
// Reader can pair decoded names with index entries positionally.
func (w *Writer) namesInEntryOrder() []string {
	names := make([]string, len(w.entries))
	for i, e := range w.entries {
		names[i] = e.name
	}

	return names
}

// encodeNames packs names as length-prefixed (uint32) UTF-8 strings,
// concatenated in order; a minimal framing, distinct from the ROBN wire
// format itself, since the archive's own container format is not part of
// the ROBN codec's wire contract.
func encodeNames(names []string) []byte {
	engine := endian.GetLittleEndianEngine()
	if endian.IsNativeBigEndian() {
		engine = endian.GetBigEndianEngine()
	}

	var buf []byte
	for _, n := range names {
		var lenBuf [4]byte
		engine.PutUint32(lenBuf[:], uint32(len(n))) //nolint: gosec
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, n...)
	}

	return buf
}
