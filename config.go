package region

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

// Defaults for Config. They mirror the classic region allocator layout:
// 1 KiB of usable space per block, 16-byte aligned grants.
const (
	DefaultMinBlockSize  = 1024
	DefaultAlignment     = 16
	DefaultMaxBlockCount = 3
)

// headerSize is the space reserved per block for its own metadata.
// A freshly created block's usable capacity is headerSize + MinBlockSize,
// so a request of exactly MinBlockSize bytes always fits a fresh block.
const headerSize = 16

// Config carries the per-region build-time constants of the allocator.
// The zero value is not usable; start from DefaultConfig or use New with
// options.
type Config struct {
	// MinBlockSize is the usable capacity floor for new blocks, and the
	// largest size a single Request may ask for.
	MinBlockSize int

	// Alignment is the boundary every granted span's size is rounded
	// up to.
	Alignment int

	// MaxBlockCount caps how many blocks a region may grow to. The cap
	// is currently not enforced by Request; it is carried as
	// configuration and reported in Metrics only.
	MaxBlockCount int

	// Logger receives block_created/block_disposed trace events and
	// error diagnostics at debug level. Nil means no tracing.
	Logger log.Logger
}

// DefaultConfig returns the allocator's default configuration with
// tracing disabled.
func DefaultConfig() Config {
	return Config{
		MinBlockSize:  DefaultMinBlockSize,
		Alignment:     DefaultAlignment,
		MaxBlockCount: DefaultMaxBlockCount,
		Logger:        log.NewNopLogger(),
	}
}

func (c Config) validate() error {
	if c.MinBlockSize <= 0 {
		return errors.Wrapf(ErrConfig, "min block size %d", c.MinBlockSize)
	}
	if c.Alignment <= 0 {
		return errors.Wrapf(ErrConfig, "alignment %d", c.Alignment)
	}
	if c.MaxBlockCount <= 0 {
		return errors.Wrapf(ErrConfig, "max block count %d", c.MaxBlockCount)
	}
	return nil
}

// blockSize is the usable capacity of a freshly created block: the
// configured minimum plus room for the block's own header. The header
// share grows with the alignment so a maximally padded request still fits.
func (c Config) blockSize() int {
	h := headerSize
	if c.Alignment > h {
		h = c.Alignment
	}
	return h + c.MinBlockSize
}

// Option overrides one Config field when constructing a region with New.
type Option func(*Config)

// WithMinBlockSize sets the usable capacity floor for new blocks.
func WithMinBlockSize(n int) Option {
	return func(c *Config) { c.MinBlockSize = n }
}

// WithAlignment sets the grant size alignment.
func WithAlignment(n int) Option {
	return func(c *Config) { c.Alignment = n }
}

// WithMaxBlockCount sets the (currently unenforced) block count cap.
func WithMaxBlockCount(n int) Option {
	return func(c *Config) { c.MaxBlockCount = n }
}

// WithLogger sets the trace sink for block lifecycle events.
func WithLogger(l log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
