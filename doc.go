// Package region implements a region-based (arena) memory allocator for Go.
//
// # Overview
//
// A region allocator services many small, short-lived allocation requests
// by carving them out of larger preallocated blocks. This amortizes the
// cost of the underlying allocator and lets all memory of one lifetime be
// released with a single call. This is particularly useful for:
//
//   - Parser or AST nodes that live and die together
//   - Per-request scratch data in servers
//   - Reducing garbage collection pressure
//   - Workloads with many same-lifetime objects
//
// # Basic Usage
//
//	r, err := region.New() // default 1 KiB blocks, 16-byte alignment
//	if err != nil {
//		return err
//	}
//	defer r.Dispose() // release every block at once
//
//	// Allocate raw bytes
//	buf, err := r.Request(64)
//
//	// Allocate typed values
//	ptr, err := region.Alloc[MyStruct](r)
//	slice, err := region.AllocSlice[int](r, 100)
//
// # Memory Layout
//
// A region owns an ordered chain of blocks and always allocates from the
// chain's tail, bumping an offset within that block. When the tail cannot
// satisfy a request, a fresh block of the default capacity is linked at the
// end of the chain and the request is served from its start. Granted sizes
// are rounded up to the configured alignment (default 16 bytes), so a span
// may be longer than asked for. A single request may never exceed the
// minimum block size.
//
// # Lifetime and Safety
//
//   - Granted spans are views into a block and stay valid until Dispose
//   - There is no individual deallocation and no reuse of space within a block
//   - Dispose is terminal; any later operation fails with ErrRegionDisposed
//   - A Region is not goroutine-safe; synchronize externally if shared
//
// # Observability
//
// Block lifecycle events (block_created, block_disposed) are emitted on an
// injectable github.com/go-kit/log sink at debug level:
//
//	r, err := region.New(region.WithLogger(logger))
//
// Metrics() returns a point-in-time snapshot, and NewCollector adapts a
// region to a prometheus.Collector for scraping:
//
//	reg.MustRegister(region.NewCollector(r, "myapp"))
package region
