package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestBuildRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 7, 8, 9, 16, 17, 32, 33, 64, 65, 128, 129, 255, 256, 257, 1000}

	for _, n := range lengths {
		src := pattern(n)
		st := Build(src)

		assert.Equal(t, Select(n), st.Kind(), "kind for n=%d", n)
		assert.Equal(t, n, st.Len(), "len for n=%d", n)
		assert.Equal(t, src, append([]byte(nil), st.View()...), "view for n=%d", n)
	}
}

func TestBuildCopiesSource(t *testing.T) {
	src := pattern(300)
	st := Build(src)

	src[0] = 0xFF
	assert.NotEqual(t, byte(0xFF), st.View()[0], "heap build must copy")

	src2 := pattern(5)
	st2 := Build(src2)
	src2[0] = 0xFF
	assert.NotEqual(t, byte(0xFF), st2.View()[0], "inline build must copy")
}

func TestBuildOwnedAdoptsLargeSlice(t *testing.T) {
	src := pattern(300)
	st := BuildOwned(src)

	require.Equal(t, KindHeap, st.Kind())
	assert.Same(t, &src[0], st.Ptr(), "heap storage must reuse the source allocation")

	small := pattern(12)
	st2 := BuildOwned(small)
	require.Equal(t, Kind16, st2.Kind())
	assert.NotSame(t, &small[0], st2.Ptr(), "inline storage copies the source")
}

func TestViewSharesStorage(t *testing.T) {
	st := Build(pattern(40))
	v := st.MutView()
	v[3] = 0xEE
	assert.Equal(t, byte(0xEE), st.View()[3])
}

func TestHeapExactSize(t *testing.T) {
	st := Build(pattern(257))
	v := st.View()
	assert.Equal(t, 257, len(v))
	assert.Equal(t, 257, cap(v), "heap allocation carries no spare capacity")
}

func TestTakeHeap(t *testing.T) {
	src := pattern(500)
	st := Build(src)

	h, err := st.TakeHeap()
	require.NoError(t, err)
	assert.Equal(t, src, h)

	// The storage is consumed: no second transfer, no views.
	assert.Equal(t, KindConsumed, st.Kind())
	assert.Equal(t, 0, st.Len())
	assert.Nil(t, st.View())
	assert.Nil(t, st.Ptr())

	_, err = st.TakeHeap()
	assert.ErrorIs(t, err, ErrConsumed)
	_, err = st.Take()
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestTakeHeapInlineFails(t *testing.T) {
	st := Build(pattern(20))
	_, err := st.TakeHeap()
	assert.ErrorIs(t, err, ErrUnsupportedShapeForTransfer)
	// A failed transfer leaves the value usable.
	assert.Equal(t, Kind32, st.Kind())
	assert.Equal(t, 20, st.Len())
}

func TestTakeInlineCopies(t *testing.T) {
	src := pattern(20)
	st := Build(src)

	out, err := st.Take()
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.Equal(t, KindConsumed, st.Kind())
}

func TestTakeHeapZeroCopy(t *testing.T) {
	st := Build(pattern(300))
	p := st.Ptr()

	out, err := st.Take()
	require.NoError(t, err)
	assert.Same(t, p, &out[0], "heap take must hand over the allocation")
}

func TestGenericElements(t *testing.T) {
	src := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	st := Build(src)

	assert.Equal(t, Kind16, st.Kind())
	assert.Equal(t, src, append([]int64(nil), st.View()...))
}
