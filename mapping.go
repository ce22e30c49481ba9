package reaktor

import (
	"fmt"
	"iter"
	"maps"

	"github.com/go-reaktor/reaktor/internal/iterutil"
)

// Mapping is a reactive, key-addressable container with string or integer
// keys. It wraps a plain Go map; construct one with NewMapping and use it
// in place of the map in your object graph.
type Mapping[K comparable, V any] struct {
	rk    *Reaktor
	data  map[K]V
	toKey func(K) Key
}

// NewMapping builds a Mapping from an existing map, copying its entries.
// toKey converts a K to the Key used in emitted Changes and composed
// paths; pass StringKeyOf or IntKeyOf for the common cases.
func NewMapping[K comparable, V any](data map[K]V, toKey func(K) Key) *Mapping[K, V] {
	cp := make(map[K]V, len(data))
	for k, v := range data {
		cp[k] = v
	}
	return &Mapping[K, V]{data: cp, toKey: toKey}
}

// StringKeyOf adapts a string-keyed Mapping's toKey parameter.
func StringKeyOf(s string) Key { return StringKey(s) }

// IntKeyOf adapts an int-keyed Mapping's toKey parameter.
func IntKeyOf(i int) Key { return IntKey(i) }

func (m *Mapping[K, V]) bind(rk *Reaktor) { m.rk = rk }

func (m *Mapping[K, V]) mapKeys() []Key {
	out := make([]Key, 0, len(m.data))
	for k := range iterutil.Left(maps.All(m.data)) {
		out = append(out, m.toKey(k))
	}
	return out
}

func (m *Mapping[K, V]) mapAt(target Key) any {
	for k, v := range maps.All(m.data) {
		if m.toKey(k) == target {
			return v
		}
	}
	return nil
}

// Len returns the number of entries.
func (m *Mapping[K, V]) Len() int { return len(m.data) }

// Values iterates the mapping's current values in unspecified order.
func (m *Mapping[K, V]) Values() iter.Seq[V] {
	return iterutil.Right(maps.All(m.data))
}

// Get returns the value for key and whether it was present.
func (m *Mapping[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Set assigns value to key, emitting a Change with Source == SourceItem.
// A value displaced by overwriting an existing key is deactivated at this
// key before the new value is activated into it.
func (m *Mapping[K, V]) Set(key K, value V) {
	old, had := m.data[key]
	m.data[key] = value
	var oldAny any
	if had {
		oldAny = old
		if m.rk != nil {
			m.rk.deactivateChild(m, m.toKey(key), SourceItem, oldAny)
		}
	}
	m.emit(m.toKey(key), oldAny, value)
}

// Delete removes key, emitting a Change whose New is nil.
func (m *Mapping[K, V]) Delete(key K) {
	old, had := m.data[key]
	if !had {
		return
	}
	delete(m.data, key)
	if m.rk != nil {
		m.rk.deactivateChild(m, m.toKey(key), SourceItem, old)
	}
	m.emit(m.toKey(key), old, nil)
}

// Update replaces the mapping's entries with data one key at a time (via
// Set/Delete), so each addition, overwrite or removal emits its own
// Change rather than a single bulk one.
func (m *Mapping[K, V]) Update(data map[K]V) {
	for k := range m.data {
		if _, keep := data[k]; !keep {
			m.Delete(k)
		}
	}
	for k, v := range data {
		m.Set(k, v)
	}
}

// Clear removes every entry, one Delete at a time.
func (m *Mapping[K, V]) Clear() {
	for k := range maps.Clone(m.data) {
		m.Delete(k)
	}
}

func (m *Mapping[K, V]) String() string {
	return fmt.Sprintf("Mapping[%d]", len(m.data))
}

func (m *Mapping[K, V]) emit(k Key, old, new any) {
	if m.rk == nil {
		return
	}
	_ = m.rk.activate(m, k, SourceItem, new)
	m.rk.notify(m, Change{Target: m, Key: k, Old: old, New: new, Source: SourceItem})
}
