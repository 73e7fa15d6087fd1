// Package buffer exposes the generic small-buffer-optimized container
// built on the shape storage engine.
package buffer

import (
	"cmp"

	"github.com/Pavez7274/kaff-sso/shape"
)

// Buffer owns exactly one storage variant: element data lives inline
// for up to shape.MaxInline elements and in an exactly-sized heap
// allocation beyond that. The variant is picked once, at construction.
//
// Buffers are single-owner values and should be passed by pointer once
// built; copying a buffer invalidates outstanding views into it.
type Buffer[E any] struct {
	st shape.Storage[E]
}

// FromSlice builds a buffer by copying src into the smallest fitting
// variant.
func FromSlice[E any](src []E) Buffer[E] {
	return Buffer[E]{st: shape.Build(src)}
}

// FromOwned builds a buffer taking ownership of src: sources longer
// than shape.MaxInline are adopted as the heap allocation without
// copying. The caller must not retain src.
func FromOwned[E any](src []E) Buffer[E] {
	return Buffer[E]{st: shape.BuildOwned(src)}
}

// Len returns the logical element count.
func (b *Buffer[E]) Len() int {
	return b.st.Len()
}

// Kind returns the active storage variant.
func (b *Buffer[E]) Kind() shape.Kind {
	return b.st.Kind()
}

// AsSlice returns the stored elements as a slice sharing the buffer's
// storage. The slice is valid only until b is mutated, consumed, or
// copied; elements past Len() are never part of the view.
func (b *Buffer[E]) AsSlice() []E {
	return b.st.View()
}

// AsMutSlice is the mutable counterpart of AsSlice. It must not alias
// a concurrently held AsSlice view, and the caller must preserve any
// invariants the element type carries across the mutated range.
func (b *Buffer[E]) AsMutSlice() []E {
	return b.st.MutView()
}

// AsPtr returns a raw pointer to the first element slot, or nil once
// consumed. Reading past Len() elements through it is the caller's
// contract violation: inline kinds expose unspecified trailing slots,
// heap kinds have no slack at all.
func (b *Buffer[E]) AsPtr() *E {
	return b.st.Ptr()
}

// AsMutPtr is the mutable counterpart of AsPtr, with the same bounds
// and aliasing obligations as AsMutSlice.
func (b *Buffer[E]) AsMutPtr() *E {
	return b.st.MutPtr()
}

// Take consumes the buffer and returns its contents: heap storage is
// handed over without copying, inline storage is copied out. Every
// later access observes the consumed state.
func (b *Buffer[E]) Take() ([]E, error) {
	return b.st.Take()
}

// TakeHeap consumes the buffer and hands over its heap allocation.
// Inline kinds fail with shape.ErrUnsupportedShapeForTransfer.
func (b *Buffer[E]) TakeHeap() ([]E, error) {
	return b.st.TakeHeap()
}

// Equal reports whether b and other hold the same number of elements.
// Comparison is length-only: stored contents never participate. Two
// buffers with different bytes but equal length compare equal. Callers
// that need content equality must compare the views themselves.
func (b *Buffer[E]) Equal(other *Buffer[E]) bool {
	return b.Len() == other.Len()
}

// Compare orders two buffers by length alone, returning -1, 0 or 1.
// Like Equal, it deliberately ignores contents.
func (b *Buffer[E]) Compare(other *Buffer[E]) int {
	return cmp.Compare(b.Len(), other.Len())
}
