// Package autostruct implements the ROBN auto-struct layer: a named-field
// aggregate that encodes to a Map of field name to field blob, walking its
// fields in dependency order and honoring per-field conditional-required
// predicates, in the spirit of the original RogueLib macro-built
// AutoSerializable but expressed as an explicit Go registration API instead
// of a macro family.
package autostruct

import (
	"github.com/binaryrobn/robn/codec"
	"github.com/binaryrobn/robn/internal/options"
)

type fieldSpec struct {
	name      string
	dependsOn []string
	required  func() bool
	encode    func() ([]byte, error)
	decode    func(c *codec.Cursor, tag byte) error
}

// FieldOption configures an individual field registration.
type FieldOption = options.Option[*fieldSpec]

// DependsOn declares that a field's encode/decode order must come after the
// named fields. A cycle among dependencies is reported as
// errs.ErrInvalidConfiguration when the Struct is encoded or decoded.
func DependsOn(names ...string) FieldOption {
	return options.NoError[*fieldSpec](func(f *fieldSpec) {
		f.dependsOn = append(f.dependsOn, names...)
	})
}

// RequiredIf marks a field as required only when pred returns true at encode/
// decode time. A field with no RequiredIf option is always required.
func RequiredIf(pred func() bool) FieldOption {
	return options.NoError[*fieldSpec](func(f *fieldSpec) {
		f.required = pred
	})
}
