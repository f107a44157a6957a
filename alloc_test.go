package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testStruct struct {
	A int64
	B int64
	C [16]byte
}

func TestAlloc(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	p, err := Alloc[testStruct](r)
	require.NoError(t, err)

	// Alloc zeroes the memory.
	require.Equal(t, testStruct{}, *p)

	p.A = 42
	p.B = -7
	require.Equal(t, int64(42), p.A)
	require.Equal(t, int64(-7), p.B)
}

func TestAllocUninitialized(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	p, err := AllocUninitialized[int64](r)
	require.NoError(t, err)
	*p = 1234
	require.Equal(t, int64(1234), *p)
}

func TestAllocSlice(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	s, err := AllocSlice[int32](r, 10)
	require.NoError(t, err)
	require.Len(t, s, 10)

	for i := range s {
		s[i] = int32(i * 2)
	}
	for i := range s {
		require.Equal(t, int32(i*2), s[i])
	}

	// Slice allocations count as one aligned request.
	require.Equal(t, alignUp(10*4, DefaultAlignment), r.SizeInUse())
}

func TestAllocSliceZeroed(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	s, err := AllocSliceZeroed[int64](r, 8)
	require.NoError(t, err)
	for _, v := range s {
		require.Zero(t, v)
	}
}

func TestAllocSliceInvalidCount(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, n := range []int{0, -3} {
		s, err := AllocSlice[int64](r, n)
		require.ErrorIs(t, err, ErrEmptyRequest)
		require.Nil(t, s)
	}
}

func TestAllocTooLarge(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	type huge struct {
		data [DefaultMinBlockSize + 1]byte
	}
	p, err := Alloc[huge](r)
	require.ErrorIs(t, err, ErrRequestTooLarge)
	require.Nil(t, p)
}

func TestAllocManyCrossesBlocks(t *testing.T) {
	r, err := New(WithMinBlockSize(64))
	require.NoError(t, err)

	ptrs := make([]*int64, 0, 32)
	for i := 0; i < 32; i++ {
		p, err := Alloc[int64](r)
		require.NoError(t, err)
		*p = int64(i)
		ptrs = append(ptrs, p)
	}

	require.Greater(t, r.Count(), 1)

	// Earlier grants stay valid and distinct after the chain grows.
	for i, p := range ptrs {
		require.Equal(t, int64(i), *PtrAndKeepAlive(r, p))
	}
}
