package value

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// A Map is the storage of map cells: an array of key and value pairs along
// with a hash index of the keys. Keys are compared case-insensitively, and
// all word kinds of the same spelling are the same key.
type Map struct {
	node
	pairs *Array
	index *swiss.Map[string, int] // hash key to pair index
}

// NewMap returns an empty map with room for capacity pairs.
func NewMap(capacity int) *Map {
	return &Map{
		pairs: NewArray(capacity * 2),
		index: swiss.NewMap[string, int](uint32(capacity)),
	}
}

func hashKey(k *Cell) string {
	switch kind := k.Kind(); {
	case kind.IsWord():
		return "word:" + k.Symbol().Canon().String()
	case kind.IsString():
		return kind.String() + ":" + Fold(k.Text().From(k.Index()))
	default:
		return kind.String() + ":" + Mold(k, MoldAll)
	}
}

// Len returns the number of keys.
func (m *Map) Len() int { return m.pairs.Len() / 2 }

// Pairs returns the key and value pairs, interleaved, in insertion order.
func (m *Map) Pairs() *Array { return m.pairs }

// Get returns the value of the key k.
func (m *Map) Get(k *Cell) (*Cell, bool) {
	i, ok := m.index.Get(hashKey(k))
	if !ok {
		return nil, false
	}
	return m.pairs.At(i*2 + 1), true
}

// Put sets the value of the key k. Putting a null removes the key.
func (m *Map) Put(k, v *Cell) error {
	if err := m.pairs.CheckWritable(); err != nil {
		return err
	}
	if k.Kind() == KindNull {
		return fmt.Errorf("map key: %w", ErrInvalidArg)
	}
	if v.Kind() == KindNull {
		m.Delete(k)
		return nil
	}

	hk := hashKey(k)
	if i, ok := m.index.Get(hk); ok {
		return m.pairs.Set(i*2+1, v)
	}
	m.index.Put(hk, m.Len())
	return m.pairs.Append(k, v)
}

// Delete removes the key k, returning true if it existed.
func (m *Map) Delete(k *Cell) bool {
	hk := hashKey(k)
	i, ok := m.index.Get(hk)
	if !ok {
		return false
	}
	if err := m.pairs.Remove(i*2, 2); err != nil {
		return false
	}
	m.index.Delete(hk)
	for j := i; j < m.Len(); j++ {
		m.index.Put(hashKey(m.pairs.At(j*2)), j)
	}
	return true
}
