package archive

import (
	"github.com/binaryrobn/robn/format"
	"github.com/binaryrobn/robn/internal/options"
)

// WriterOption configures a Writer, using the same functional-option style
// as the rest of this codebase's configurable constructors.
type WriterOption = options.Option[*Writer]

// WithCompression selects the whole-payload compression codec Finish uses
// for the entry section. The default, if this option is never applied, is
// format.CompressionNone.
func WithCompression(c format.CompressionType) WriterOption {
	return options.NoError(func(w *Writer) {
		w.compression = c
	})
}
