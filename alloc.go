package region

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a T stored inside the region with zeroed
// memory. The pointer is valid until the region is disposed. Fails for
// zero-sized types and for types larger than the minimum block size.
func Alloc[T any](r *Region) (*T, error) {
	var zero T
	b, err := r.Request(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocUninitialized returns a *T located in the region without zeroing
// memory. Faster than Alloc but the contents are undefined; initialize
// every field before use.
func AllocUninitialized[T any](r *Region) (*T, error) {
	var zero T
	b, err := r.Request(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice allocates a slice of n elements of type T inside the region.
// The elements are not initialized. The whole slice counts as one request,
// so n*sizeof(T) must not exceed the minimum block size.
func AllocSlice[T any](r *Region, n int) ([]T, error) {
	var zero T
	b, err := r.Request(n * int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory.
func AllocSliceZeroed[T any](r *Region, n int) ([]T, error) {
	var zero T
	b, err := r.Request(n * int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the region.
// This prevents the region from being garbage collected while the pointer
// is still in use in unsafe code.
func PtrAndKeepAlive[T any](r *Region, t *T) *T {
	runtime.KeepAlive(r)
	return t
}
