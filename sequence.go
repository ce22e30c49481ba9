package reaktor

import "fmt"

// Sequence is a reactive, order-preserving, index-addressable container.
// It wraps a plain Go slice; construct one with NewSequence and use it in
// place of the slice in your object graph so element mutations and
// structural changes (Append, Insert, Delete) are observed. Reads are
// pure passthroughs; every write calls the owning Reaktor's dispatch
// after mutating the backing slice.
type Sequence[T any] struct {
	rk    *Reaktor
	items []T
}

// NewSequence builds a Sequence from an existing slice. The slice is
// copied; subsequent mutations go through the Sequence's own methods.
func NewSequence[T any](items []T) *Sequence[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &Sequence[T]{items: cp}
}

func (s *Sequence[T]) bind(rk *Reaktor) { s.rk = rk }

func (s *Sequence[T]) seqLen() int { return len(s.items) }

func (s *Sequence[T]) seqAt(i int) any { return s.items[i] }

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return len(s.items) }

// Get returns the element at index i.
func (s *Sequence[T]) Get(i int) T { return s.items[i] }

// Set replaces the element at index i, emitting a Change with
// Source == SourceItem and Key == IntKey(i). The displaced value is
// deactivated at this slot before the new value is activated into it.
func (s *Sequence[T]) Set(i int, value T) {
	old := s.items[i]
	s.items[i] = value
	if s.rk != nil {
		s.rk.deactivateChild(s, IntKey(i), SourceItem, old)
	}
	s.emit(IntKey(i), old, value)
}

// Append adds value to the end of the sequence, emitting a Change whose
// Key is the new element's index and whose Old is nil.
func (s *Sequence[T]) Append(value T) {
	i := len(s.items)
	s.items = append(s.items, value)
	s.emit(IntKey(i), nil, value)
}

// Extend appends every element of values in order, emitting one Change
// per inserted slot.
func (s *Sequence[T]) Extend(values []T) {
	for _, v := range values {
		s.Append(v)
	}
}

// Insert places value at index i, shifting subsequent elements right, and
// emits a Change whose Old is nil. Elements displaced by the shift keep
// their own BackRef but gain a new Name reflecting their new index, so a
// later bubble from one of them still composes the correct path.
func (s *Sequence[T]) Insert(i int, value T) {
	s.items = append(s.items, value)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = value
	if s.rk != nil {
		for j := len(s.items) - 1; j > i; j-- {
			s.rk.rekeyChild(s, IntKey(j-1), IntKey(j), SourceItem, s.items[j])
		}
	}
	s.emit(IntKey(i), nil, value)
}

// Delete removes the element at index i, emitting a Change whose New is
// nil and whose Old is the removed value. The removed value's BackRef at
// this slot is dropped, and every element that shifts down a position is
// rekeyed to its new index.
func (s *Sequence[T]) Delete(i int) T {
	old := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	if s.rk != nil {
		s.rk.deactivateChild(s, IntKey(i), SourceItem, old)
		for j := i; j < len(s.items); j++ {
			s.rk.rekeyChild(s, IntKey(j+1), IntKey(j), SourceItem, s.items[j])
		}
	}
	s.emit(IntKey(i), old, nil)
	return old
}

// Pop removes and returns the last element, equivalent to
// Delete(Len()-1).
func (s *Sequence[T]) Pop() T {
	return s.Delete(len(s.items) - 1)
}

// Clear removes every element, highest index first, so each removal's
// emitted index still refers to the pre-removal slice.
func (s *Sequence[T]) Clear() {
	for i := len(s.items) - 1; i >= 0; i-- {
		s.Delete(i)
	}
}

// SliceReplace replaces the entire backing slice with items, emitting one
// Change per overwritten index and one per appended or truncated slot,
// rather than a single bulk Change. Indices whose value is unchanged still
// emit: writes, not diffs.
func (s *Sequence[T]) SliceReplace(items []T) {
	for len(s.items) > len(items) {
		s.Pop()
	}
	for i := range s.items {
		s.Set(i, items[i])
	}
	for i := len(s.items); i < len(items); i++ {
		s.Append(items[i])
	}
}

// Slice returns a copy of the underlying elements.
func (s *Sequence[T]) Slice() []T {
	cp := make([]T, len(s.items))
	copy(cp, s.items)
	return cp
}

func (s *Sequence[T]) String() string {
	return fmt.Sprintf("Sequence[%d]", len(s.items))
}

func (s *Sequence[T]) emit(k Key, old, new any) {
	if s.rk == nil {
		return
	}
	_ = s.rk.activate(s, k, SourceItem, new)
	s.rk.notify(s, Change{Target: s, Key: k, Old: old, New: new, Source: SourceItem})
}
