package region

// Count returns the number of blocks currently in the region's chain.
// A disposed region reports 0.
func (r *Region) Count() int {
	return r.count
}

// SizeInUse returns the total number of bytes handed out by the region,
// including internal fragmentation due to alignment.
func (r *Region) SizeInUse() int {
	sum := 0
	for b := r.root; b != nil; b = b.next {
		sum += b.offset
	}
	return sum
}

// Capacity returns the total usable capacity (in bytes) of all blocks in
// the region.
func (r *Region) Capacity() int {
	sum := 0
	for b := r.root; b != nil; b = b.next {
		sum += len(b.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to
// 1.0). Returns 0.0 if the region has no capacity.
func (r *Region) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.SizeInUse()) / float64(capacity)
}

// MinBlockSize returns the configured usable capacity floor for new blocks.
func (r *Region) MinBlockSize() int {
	return r.cfg.MinBlockSize
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	return RegionMetrics{
		Blocks:        r.Count(),
		SizeInUse:     r.SizeInUse(),
		Capacity:      r.Capacity(),
		MinBlockSize:  r.MinBlockSize(),
		MaxBlockCount: r.cfg.MaxBlockCount,
		Utilization:   r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	Blocks        int     // Number of blocks in the chain
	SizeInUse     int     // Bytes currently handed out
	Capacity      int     // Total usable capacity in bytes
	MinBlockSize  int     // Configured minimum block size
	MaxBlockCount int     // Configured (unenforced) block count cap
	Utilization   float64 // Ratio of used to total capacity (0.0-1.0)
}
