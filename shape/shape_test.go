package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		n      int
		expect Kind
	}{
		{0, Kind8}, {1, Kind8}, {7, Kind8}, {8, Kind8},
		{9, Kind16}, {16, Kind16},
		{17, Kind32}, {32, Kind32},
		{33, Kind64}, {64, Kind64},
		{65, Kind128}, {128, Kind128},
		{129, Kind256}, {255, Kind256}, {256, Kind256},
		{257, KindHeap}, {1000, KindHeap},
	}

	for _, tc := range cases {
		k := Select(tc.n)
		assert.Equal(t, tc.expect, k, "Select(%d)", tc.n)

		if k.Inline() {
			assert.GreaterOrEqual(t, k.Cap(), tc.n, "Cap of %v too small for n=%d", k, tc.n)
		}
	}
}

func TestSelectSmallestFitting(t *testing.T) {
	// Exhaustive over the whole inline range: the selected class must
	// fit n and the next smaller class must not.
	for n := 0; n <= MaxInline; n++ {
		k := Select(n)
		assert.True(t, k.Inline(), "Select(%d) = %v", n, k)
		assert.GreaterOrEqual(t, k.Cap(), n)
		if k > Kind8 {
			assert.Less(t, InlineCaps[k-1], n, "Select(%d) skipped class %v", n, k-1)
		}
	}
}

func TestKindCap(t *testing.T) {
	assert.Equal(t, 8, Kind8.Cap())
	assert.Equal(t, 256, Kind256.Cap())
	assert.Equal(t, -1, KindHeap.Cap())
	assert.Equal(t, -1, KindConsumed.Cap())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "inline8", Kind8.String())
	assert.Equal(t, "inline256", Kind256.String())
	assert.Equal(t, "heap", KindHeap.String())
	assert.Equal(t, "consumed", KindConsumed.String())
}
