package region

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

// Region is the allocator handle: an ordered chain of blocks that only ever
// grows at the tail, with new requests serviced by the tail block. Not
// goroutine-safe; callers needing concurrent access must synchronize
// externally.
type Region struct {
	root    *block // first block ever created, chain traversal starts here
	current *block // chain tail, services new requests; nil once disposed
	count   int    // number of blocks in the chain
	cfg     Config
	logger  log.Logger
}

// New creates a region with the default configuration adjusted by opts.
// The region starts with one block of the default capacity; if that block
// cannot be constructed no region is returned.
func New(opts ...Option) (*Region, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a region from a fully explicit configuration.
func NewWithConfig(cfg Config) (*Region, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	b, err := newBlock(cfg.blockSize(), logger)
	if err != nil {
		return nil, traceError(logger, errors.Wrap(err, "region: creating initial block"))
	}
	return &Region{
		root:    b,
		current: b,
		count:   1,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Request grants nbytes of memory from the region. The size is rounded up
// to the configured alignment, so the returned span may be longer than
// asked for. The span remains valid until Dispose; there is no way to free
// it individually.
//
// Request fails, leaving the region untouched, if the region is disposed,
// nbytes is not positive, or nbytes exceeds the minimum block size (a
// single request may never demand more than one fresh block can supply).
func (r *Region) Request(nbytes int) ([]byte, error) {
	if r == nil {
		return nil, ErrRegionDisposed
	}
	if r.current == nil {
		return nil, traceError(r.logger, ErrRegionDisposed)
	}
	if nbytes <= 0 {
		return nil, traceError(r.logger, ErrEmptyRequest)
	}
	if nbytes > r.cfg.MinBlockSize {
		return nil, traceError(r.logger, errors.Wrapf(ErrRequestTooLarge, "%d bytes, max %d", nbytes, r.cfg.MinBlockSize))
	}

	aligned := alignUp(nbytes, r.cfg.Alignment)

	// Grant from the current block only while it has strictly more room
	// than the request. The exact-fit case deliberately overflows to a
	// fresh block so a full block is never left with zero remaining bytes.
	cur := r.current
	if cur.available() > aligned {
		off := cur.offset
		cur.offset += aligned
		return cur.buf[off : off+aligned : off+aligned], nil
	}

	// Overflow: the new block is linked only after it is fully built, so
	// a failed construction leaves the chain as it was.
	next, err := newBlock(r.cfg.blockSize(), r.logger)
	if err != nil {
		return nil, traceError(r.logger, errors.Wrap(err, "region: growing"))
	}
	next.offset = aligned
	cur.next = next
	r.current = next
	r.count++
	return next.buf[0:aligned:aligned], nil
}

// Dispose releases every block in the chain and marks the region disposed.
// It is terminal: all spans granted by this region become invalid and every
// later operation, including a second Dispose, fails with ErrRegionDisposed.
func (r *Region) Dispose() error {
	if r == nil {
		return ErrRegionDisposed
	}
	if r.current == nil {
		return traceError(r.logger, ErrRegionDisposed)
	}
	cursor := r.root
	for cursor != nil {
		next := cursor.next
		cursor.next = nil
		cursor.buf = nil
		r.count--
		traceEvent(r.logger, eventBlockDisposed)
		cursor = next
	}
	r.root = nil
	r.current = nil
	return nil
}
