// Package shape implements the variant storage engine: a tagged set of
// fixed inline capacities with an exactly-sized heap fallback.
package shape

import (
	"errors"
)

var (
	// ErrConsumed is returned when a storage value is accessed after
	// its allocation was transferred out.
	ErrConsumed = errors.New("storage already consumed")

	// ErrUnsupportedShapeForTransfer is returned when a zero-copy
	// ownership transfer is requested on a kind that has no separate
	// heap allocation to hand over.
	ErrUnsupportedShapeForTransfer = errors.New("storage kind does not support zero-copy transfer")
)

// Storage holds up to MaxInline elements directly in its own memory
// and falls back to an exactly-sized heap allocation beyond that.
//
// Like a tagged union, the struct is sized for its largest inline
// variant; kind records which logical capacity class is active. Only
// the first n slots of the active variant hold meaningful data,
// trailing inline slots are never exposed through the public contract.
//
// A Storage is a single-owner value. Copying one after a View or Ptr
// was taken leaves those references pointing at the original, not the
// copy; treat values as moved once constructed.
type Storage[E any] struct {
	kind Kind
	n    int
	heap []E // active when kind == KindHeap; len == cap == n
	arr  [MaxInline]E
}

// Build copies the source into the smallest variant that fits it.
func Build[E any](src []E) Storage[E] {
	n := len(src)
	st := Storage[E]{kind: Select(n), n: n}
	if st.kind == KindHeap {
		st.heap = make([]E, n)
		copy(st.heap, src)
		return st
	}
	copy(st.arr[:n], src)
	return st
}

// BuildOwned is like Build, but the caller hands over ownership of
// src: when it exceeds the largest inline capacity the slice becomes
// the heap allocation directly, without copying. The caller must not
// retain or reuse src afterwards.
func BuildOwned[E any](src []E) Storage[E] {
	n := len(src)
	if n > MaxInline {
		return Storage[E]{kind: KindHeap, n: n, heap: src[:n:n]}
	}
	return Build(src)
}

// Len returns the number of stored elements. Consumed storage reports 0.
func (s *Storage[E]) Len() int {
	if s.kind == KindConsumed {
		return 0
	}
	return s.n
}

// Kind returns the active storage variant.
func (s *Storage[E]) Kind() Kind {
	return s.kind
}

// Ptr returns a pointer to the first element slot, or nil once the
// storage is consumed. The pointer stays valid only while s is neither
// mutated, consumed, nor copied.
func (s *Storage[E]) Ptr() *E {
	switch {
	case s.kind == KindHeap:
		return &s.heap[0]
	case s.kind.Inline():
		return &s.arr[0]
	}
	return nil
}

// MutPtr is the mutable counterpart of Ptr. The caller must not write
// past Len() elements and must not hold the pointer across a consuming
// operation.
func (s *Storage[E]) MutPtr() *E {
	return s.Ptr()
}

// View returns the first Len() elements as a slice sharing the
// container's storage. The view is read-only by contract and valid
// only until s is mutated, consumed, or copied.
func (s *Storage[E]) View() []E {
	switch {
	case s.kind == KindHeap:
		return s.heap
	case s.kind.Inline():
		return s.arr[:s.n:s.n]
	}
	return nil
}

// MutView returns the first Len() elements for in-place mutation. The
// caller must not alias it with a concurrently held View and must keep
// any element-type invariants intact across the full mutated range.
func (s *Storage[E]) MutView() []E {
	return s.View()
}

// TakeHeap transfers ownership of the heap allocation to the caller
// and marks the storage consumed so it can never be handed out twice.
// Inline kinds have no separate allocation and fail with
// ErrUnsupportedShapeForTransfer.
func (s *Storage[E]) TakeHeap() ([]E, error) {
	switch s.kind {
	case KindConsumed:
		return nil, ErrConsumed
	case KindHeap:
		h := s.heap
		s.heap = nil
		s.n = 0
		s.kind = KindConsumed
		return h, nil
	}
	return nil, ErrUnsupportedShapeForTransfer
}

// Take returns the contents and marks the storage consumed: heap
// storage hands over its allocation without copying, inline storage is
// copied out into a fresh exactly-sized slice.
func (s *Storage[E]) Take() ([]E, error) {
	switch {
	case s.kind == KindConsumed:
		return nil, ErrConsumed
	case s.kind == KindHeap:
		return s.TakeHeap()
	}
	out := make([]E, s.n)
	copy(out, s.arr[:s.n])
	s.n = 0
	s.kind = KindConsumed
	return out, nil
}
