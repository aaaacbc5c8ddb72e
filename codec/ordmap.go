package codec

import (
	"cmp"
	"slices"

	"github.com/binaryrobn/robn/errs"
	"github.com/binaryrobn/robn/internal/pool"
	"github.com/binaryrobn/robn/wiretype"
)

// OrderedMap is the codec's in-memory representation of a ROBN Map Value: an
// insertion-ordered association list that walks its entries in ascending
// key order whenever it encodes.
type OrderedMap[K cmp.Ordered, V any] struct {
	entries []mapEntry[K, V]
	index   map[K]int
}

type mapEntry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Set inserts or overwrites the value for key.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value

		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, mapEntry[K, V]{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	var zero V
	if m.index == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}

	return m.entries[i].Value, true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.entries) }

// Keys returns the map's keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	slices.Sort(keys)

	return keys
}

// sortedEntries returns entries in ascending key order without mutating m.
func (m *OrderedMap[K, V]) sortedEntries() []mapEntry[K, V] {
	out := make([]mapEntry[K, V], len(m.entries))
	copy(out, m.entries)
	slices.SortFunc(out, func(a, b mapEntry[K, V]) int { return cmp.Compare(a.Key, b.Key) })

	return out
}

func (m *OrderedMap[K, V]) encodeROBNChecked() ([]byte, error) {
	return EncodeOrderedMap(m)
}

func (m *OrderedMap[K, V]) decodeROBNChecked(c *Cursor, tag byte) error {
	decoded, err := DecodeOrderedMap[K, V](c, tag)
	if err != nil {
		return err
	}
	*m = *decoded

	return nil
}

// EncodeOrderedMap emits a Map tag, a typed UInt64 entry count, and then
// each entry as a full Pair element, walked in ascending key order.
func EncodeOrderedMap[K cmp.Ordered, V any](m *OrderedMap[K, V]) ([]byte, error) {
	buf := pool.GetByteBuffer()
	defer pool.PutByteBuffer(buf)

	buf.AppendByte(wiretype.Tag(wiretype.Map, wiretype.NativeEndianness()))
	appendPrimitive(buf, uint64(m.Len()))

	for _, e := range m.sortedEntries() {
		pairBytes, err := EncodePair(Pair[K, V]{First: e.Key, Second: e.Value})
		if err != nil {
			return nil, err
		}
		buf.AppendBytes(pairBytes)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeOrderedMap reads a Map whose outer tag has already been consumed
// into tag. Duplicate keys resolve last-insert-wins; this is not reported as
// an error.
func DecodeOrderedMap[K cmp.Ordered, V any](c *Cursor, tag byte) (*OrderedMap[K, V], error) {
	if wiretype.KindOf(tag) != wiretype.Map {
		return nil, errs.IncompatibleBinary(tag, c.Pos(), "expected Map tag")
	}

	lengthTag, err := c.ReadTag()
	if err != nil {
		return nil, err
	}

	length, err := DecodePrimitive[uint64](c, lengthTag)
	if err != nil {
		return nil, err
	}

	out := NewOrderedMap[K, V]()
	for i := uint64(0); i < length; i++ {
		pairTag, err := c.ReadTag()
		if err != nil {
			return nil, err
		}
		pair, err := DecodePair[K, V](c, pairTag)
		if err != nil {
			return nil, err
		}
		out.Set(pair.First, pair.Second)
	}

	return out, nil
}
