package shape

import (
	"fmt"
	"math/bits"
)

// Kind identifies the active storage variant of a Storage value.
type Kind uint8

const (
	Kind8 Kind = iota
	Kind16
	Kind32
	Kind64
	Kind128
	Kind256
	KindHeap
	KindConsumed
)

// InlineCaps lists the inline capacity classes in selection order.
var InlineCaps = [...]int{8, 16, 32, 64, 128, 256}

// MaxInline is the largest element count stored without a separate
// heap allocation.
const MaxInline = 256

// Select returns the smallest inline kind whose capacity holds n
// elements, or KindHeap when n exceeds MaxInline. Selection is
// deterministic: equal lengths always map to the same kind.
func Select(n int) Kind {
	if n > MaxInline {
		return KindHeap
	}
	if n <= 8 {
		return Kind8
	}
	// Capacities are 2^3..2^8, so the class index is the bit length
	// of n-1 shifted down by the smallest exponent.
	return Kind(bits.Len(uint(n-1)) - 3)
}

// Inline reports whether k stores its elements inside the container.
func (k Kind) Inline() bool {
	return k <= Kind256
}

// Cap returns the capacity of an inline kind's backing array. Heap
// storage is exactly sized, so KindHeap (and KindConsumed) report -1.
func (k Kind) Cap() int {
	if k.Inline() {
		return InlineCaps[k]
	}
	return -1
}

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case Kind8:
		return "inline8"
	case Kind16:
		return "inline16"
	case Kind32:
		return "inline32"
	case Kind64:
		return "inline64"
	case Kind128:
		return "inline128"
	case Kind256:
		return "inline256"
	case KindHeap:
		return "heap"
	case KindConsumed:
		return "consumed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
