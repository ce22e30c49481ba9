package reaktor

import (
	"fmt"

	"github.com/go-reaktor/reaktor/internal/diffutil"
)

// Set is a reactive, unordered collection of comparable elements. It wraps
// a plain Go map[T]struct{}; construct one with NewSet and use it in place
// of a set-like map in your object graph. Element changes emit
// Source == SourceSet, whose composed path segment is always "{}" — set
// members are identified by presence, not by position or name.
type Set[T comparable] struct {
	rk   *Reaktor
	data map[T]struct{}
}

// NewSet builds a Set from an existing slice of elements, ignoring
// duplicates.
func NewSet[T comparable](items []T) *Set[T] {
	data := make(map[T]struct{}, len(items))
	for _, v := range items {
		data[v] = struct{}{}
	}
	return &Set[T]{data: data}
}

func (s *Set[T]) bind(rk *Reaktor) { s.rk = rk }

func (s *Set[T]) setElems() []any {
	out := make([]any, 0, len(s.data))
	for v := range s.data {
		out = append(out, v)
	}
	return out
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.data) }

// Contains reports whether value is a member.
func (s *Set[T]) Contains(value T) bool {
	_, ok := s.data[value]
	return ok
}

// Add inserts value, emitting a Change with Old == nil if it wasn't
// already a member. Adding an existing member is a no-op and emits
// nothing.
func (s *Set[T]) Add(value T) {
	if _, ok := s.data[value]; ok {
		return
	}
	s.data[value] = struct{}{}
	s.emit(nil, value)
}

// Discard removes value, emitting a Change with New == nil if it was a
// member. Discarding an absent value is a no-op and emits nothing.
func (s *Set[T]) Discard(value T) {
	if _, ok := s.data[value]; !ok {
		return
	}
	delete(s.data, value)
	if s.rk != nil {
		s.rk.deactivateChild(s, StringKey(""), SourceSet, value)
	}
	s.emit(value, nil)
}

// Update replaces the set's contents with items, emitting one Change per
// added and per removed element, rather than a single bulk Change.
func (s *Set[T]) Update(items []T) {
	old := s.Slice()
	added, removed := diffutil.Symmetric(old, items)
	for _, v := range added {
		s.Add(v)
	}
	for _, v := range removed {
		s.Discard(v)
	}
}

// Slice returns the set's elements in unspecified order.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, len(s.data))
	for v := range s.data {
		out = append(out, v)
	}
	return out
}

func (s *Set[T]) String() string {
	return fmt.Sprintf("Set[%d]", len(s.data))
}

// eventKey renders a set member's identity for an emitted Change's Key:
// reaktor has no general structural-equality key for an arbitrary
// comparable T, so the member's %v form stands in for one. This is a
// documented limitation: two distinct elements that format identically
// are indistinguishable in the emitted path.
func eventKey[T any](value T) Key {
	return StringKey(fmt.Sprintf("%v", value))
}

func (s *Set[T]) emit(old, new any) {
	if s.rk == nil {
		return
	}
	var k Key
	if new != nil {
		k = eventKey(new)
		_ = s.rk.activate(s, StringKey(""), SourceSet, new)
	} else {
		k = eventKey(old)
	}
	s.rk.notify(s, Change{Target: s, Key: k, Old: old, New: new, Source: SourceSet})
}
