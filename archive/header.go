package archive

import (
	"github.com/binaryrobn/robn/endian"
	"github.com/binaryrobn/robn/format"
)

// Layout constants for the fixed archive sections, following the same
// fixed-size header/index-entry sizing convention used elsewhere in this
// codebase's binary formats.
const (
	HeaderSize     = 24 // fixed header size in bytes
	IndexEntrySize = 16 // fixed index entry size in bytes
	Magic          = 0x524F424E // "ROBN" in ASCII, big-endian order
	Version        = 1
)

// Header flag bits packed into the single Flags byte at offset 5.
const (
	flagBigEndian = 0x01 // 0 = little-endian payload/index, 1 = big-endian
	flagHasNames  = 0x02 // 1 = a name payload section follows the index
)

// header is the fixed 24-byte archive header.
//
//	offset 0:  Magic           uint32
//	offset 4:  Version         uint8
//	offset 5:  Flags           uint8
//	offset 6:  Compression     uint8 (format.CompressionType)
//	offset 7:  reserved        uint8
//	offset 8:  EntryCount      uint32
//	offset 12: IndexOffset     uint32
//	offset 16: NamesOffset     uint32 (0 if flagHasNames unset)
//	offset 20: PayloadOffset   uint32
type header struct {
	Magic         uint32
	Version       uint8
	Flags         uint8
	Compression   format.CompressionType
	EntryCount    uint32
	IndexOffset   uint32
	NamesOffset   uint32
	PayloadOffset uint32
}

func (h header) bigEndian() bool { return h.Flags&flagBigEndian != 0 }
func (h header) hasNames() bool  { return h.Flags&flagHasNames != 0 }

func (h header) engine() endian.EndianEngine {
	if h.bigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// bytes serializes h into a fresh HeaderSize-byte slice using the native
// endian engine, exactly as a fresh archive is always written native-endian
// and decoded endian-tolerantly (the same convention the ROBN wire format
// itself uses for Type Tags).
func (h header) bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()
	if endian.IsNativeBigEndian() {
		engine = endian.GetBigEndianEngine()
	}

	engine.PutUint32(b[0:4], h.Magic)
	b[4] = h.Version
	b[5] = h.Flags
	b[6] = byte(h.Compression)
	b[7] = 0
	engine.PutUint32(b[8:12], h.EntryCount)
	engine.PutUint32(b[12:16], h.IndexOffset)
	engine.PutUint32(b[16:20], h.NamesOffset)
	engine.PutUint32(b[20:24], h.PayloadOffset)

	return b
}

// parseHeader reads a header from the first HeaderSize bytes of data,
// tolerating either endianness the way every other ROBN decoder does.
func parseHeader(data []byte) (header, error) {
	if len(data) < HeaderSize {
		return header{}, ErrInvalidHeader
	}

	// Try the magic in little-endian order first, then big-endian,
	// mirroring the codec's own "tolerate either endianness bit" decode
	// rule for multi-byte primitives.
	var h header
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		magic := engine.Uint32(data[0:4])
		if magic == Magic {
			h.Magic = magic
			break
		}
	}
	if h.Magic != Magic {
		return header{}, ErrInvalidHeader
	}

	h.Version = data[4]
	h.Flags = data[5]
	h.Compression = format.CompressionType(data[6])

	engine := h.engine()
	h.EntryCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.NamesOffset = engine.Uint32(data[16:20])
	h.PayloadOffset = engine.Uint32(data[20:24])

	if h.Version != Version {
		return header{}, ErrUnsupportedVersion
	}

	return h, nil
}
