package chainsync

import "time"

const (
	defaultRetryDelay       = 2 * time.Second
	defaultNoHeadersDelay   = 30 * time.Second
	defaultNoBlocksDelay    = 10 * time.Second
	defaultIBDThreshold     = 13_000
	defaultHeaderChunkSize  = 40
	defaultHeaderWorkers    = 4
	defaultHeaderQueueMark  = 10_000
	defaultBlockChunkSize   = 10
	defaultBlockWorkers     = 4
	defaultBlockQueueMark   = 500
	defaultMaxPendingHashes = 50
)

// Config tunes catch-up and block range processing. Zero values select the defaults.
type Config struct {
	// RetryDelay separates catch-up attempts after a failure.
	RetryDelay time.Duration
	// NoHeadersDelay is the wait while the node has no headers or blocks yet.
	NoHeadersDelay time.Duration
	// NoBlocksDelay is the wait while the node has headers but no new block bodies.
	NoBlocksDelay time.Duration
	// IBDThreshold is the distance to the node's header tip above which startup runs
	// header-only initial sync.
	IBDThreshold uint64
	// BootstrapHeight forces initial sync while the store is below it.
	BootstrapHeight uint64

	HeaderChunkSize int
	HeaderWorkers   int
	HeaderQueueMark int

	BlockChunkSize int
	BlockWorkers   int
	BlockQueueMark int

	// MaxPendingHashes bounds block hash events waiting for the reorg lock.
	MaxPendingHashes int
}

func (c Config) withDefaults() Config {
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	if c.NoHeadersDelay <= 0 {
		c.NoHeadersDelay = defaultNoHeadersDelay
	}
	if c.NoBlocksDelay <= 0 {
		c.NoBlocksDelay = defaultNoBlocksDelay
	}
	if c.IBDThreshold == 0 {
		c.IBDThreshold = defaultIBDThreshold
	}
	if c.HeaderChunkSize <= 0 {
		c.HeaderChunkSize = defaultHeaderChunkSize
	}
	if c.HeaderWorkers <= 0 {
		c.HeaderWorkers = defaultHeaderWorkers
	}
	if c.HeaderQueueMark <= 0 {
		c.HeaderQueueMark = defaultHeaderQueueMark
	}
	if c.BlockChunkSize <= 0 {
		c.BlockChunkSize = defaultBlockChunkSize
	}
	if c.BlockWorkers <= 0 {
		c.BlockWorkers = defaultBlockWorkers
	}
	if c.BlockQueueMark <= 0 {
		c.BlockQueueMark = defaultBlockQueueMark
	}
	if c.MaxPendingHashes <= 0 {
		c.MaxPendingHashes = defaultMaxPendingHashes
	}
	return c
}
