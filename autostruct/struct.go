package autostruct

import (
	"github.com/binaryrobn/robn/codec"
	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/internal/options"
)

// Struct is a named-field aggregate that encodes to, and decodes from, a
// ROBN Map keyed by field name. Build one with New, register fields with
// RegisterField, then call Encode/Decode.
type Struct struct {
	fields []*fieldSpec
	byName map[string]*fieldSpec
}

// New returns an empty Struct ready for field registration.
func New() *Struct {
	return &Struct{byName: make(map[string]*fieldSpec)}
}

// RegisterField adds a named field to s. val must remain valid for the
// lifetime of every subsequent Encode/Decode call: encode reads through it,
// decode writes through it.
func RegisterField[T any](s *Struct, name string, val *T, opts ...FieldOption) error {
	if _, exists := s.byName[name]; exists {
		return errs.InvalidConfiguration("duplicate field " + name)
	}

	f := &fieldSpec{name: name}
	if err := options.Apply(f, opts...); err != nil {
		return err
	}

	f.encode = func() ([]byte, error) {
		return codec.Encode[T](*val)
	}
	f.decode = func(c *codec.Cursor, tag byte) error {
		v, err := decodeFieldValue[T](c, tag)
		if err != nil {
			return err
		}
		*val = v

		return nil
	}

	s.fields = append(s.fields, f)
	s.byName[name] = f

	return nil
}

// decodeFieldValue decodes a field's value from a cursor positioned past its
// own Type Tag, which the Map decode in Struct.Decode has already consumed.
func decodeFieldValue[T any](c *codec.Cursor, tag byte) (T, error) {
	return codec.DecodeTagged[T](c, tag)
}

// topoOrder returns field indices in dependency order (a field always comes
// after every field it depends on), ties broken by registration order.
// Returns errs.ErrInvalidConfiguration if the dependency graph has a cycle
// or names a field that was never registered.
func (s *Struct) topoOrder() ([]int, error) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make([]int, len(s.fields))
	order := make([]int, 0, len(s.fields))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case black:
			return nil
		case gray:
			return errs.InvalidConfiguration("dependency cycle at field " + s.fields[i].name)
		}
		state[i] = gray
		for _, dep := range s.fields[i].dependsOn {
			j, ok := s.byName[dep]
			if !ok {
				return errs.InvalidConfiguration("unknown dependency " + dep + " for field " + s.fields[i].name)
			}
			if err := visit(s.indexOf(j)); err != nil {
				return err
			}
		}
		state[i] = black
		order = append(order, i)

		return nil
	}

	for i := range s.fields {
		if err := visit(i); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (s *Struct) indexOf(f *fieldSpec) int {
	for i, c := range s.fields {
		if c == f {
			return i
		}
	}

	return -1
}

// Encode walks fields in dependency order and emits a Map<string, blob> of
// every field whose required predicate (default: always required)
// evaluates true.
func (s *Struct) Encode() ([]byte, error) {
	order, err := s.topoOrder()
	if err != nil {
		return nil, err
	}

	m := codec.NewOrderedMap[string, []byte]()
	for _, i := range order {
		f := s.fields[i]
		if f.required != nil && !f.required() {
			continue
		}
		fieldBytes, err := f.encode()
		if err != nil {
			return nil, err
		}
		m.Set(f.name, fieldBytes)
	}

	return codec.EncodeOrderedMap(m)
}

// Decode requires blob's outer tag to be Map. Fields present in the decoded
// map are piped through their decode closure in dependency order; fields
// absent and required fail with errs.ErrMissingRequiredField; fields absent
// and not required are left untouched. Unknown map keys are ignored.
func (s *Struct) Decode(blob []byte) error {
	c := codec.NewCursor(blob)
	tag, err := c.ReadTag()
	if err != nil {
		return err
	}

	m, err := codec.DecodeOrderedMap[string, []byte](c, tag)
	if err != nil {
		return err
	}

	order, err := s.topoOrder()
	if err != nil {
		return err
	}

	for _, i := range order {
		f := s.fields[i]
		raw, present := m.Get(f.name)
		if !present {
			if f.required == nil || f.required() {
				return errs.MissingRequiredField(f.name)
			}

			continue
		}

		fc := codec.NewCursor(raw)
		fieldTag, err := fc.ReadTag()
		if err != nil {
			return err
		}
		if err := f.decode(fc, fieldTag); err != nil {
			return err
		}
	}

	return nil
}
