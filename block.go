package region

import "github.com/go-kit/log"

// block is one node in a region's chain: a single owned allocation with a
// bump cursor. Blocks are created and mutated only by their owning Region;
// the offset increases monotonically and never decreases.
type block struct {
	next   *block // exclusive ownership link, nil at the chain tail
	buf    []byte // backing memory, fixed capacity
	offset int    // bytes already handed out, 0 <= offset <= len(buf)
}

// newBlock creates a block with the given usable capacity. The backing
// buffer is a single allocation; disposal drops the whole block, never the
// buffer separately.
func newBlock(capacity int, logger log.Logger) (*block, error) {
	if capacity <= 0 {
		return nil, traceError(logger, ErrBlockCapacity)
	}
	b := &block{buf: make([]byte, capacity)}
	traceEvent(logger, eventBlockCreated, "capacity", capacity)
	return b, nil
}

// available returns how many bytes the block can still hand out.
func (b *block) available() int {
	return len(b.buf) - b.offset
}

// alignUp rounds n up to the next multiple of alignment.
func alignUp(n, alignment int) int {
	return (n + alignment - 1) / alignment * alignment
}
