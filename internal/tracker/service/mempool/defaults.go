package mempool

import "time"

const (
	defaultMempoolInterval     = 2 * time.Second
	defaultUnconfirmedInterval = 5 * time.Minute
	defaultActiveTolerance     = 6
	defaultStatusChunkSize     = 10
	defaultStatusWorkers       = 3
)

// Config tunes the mempool tracker. Zero values select the defaults.
type Config struct {
	// MempoolInterval is the period of buffered mempool evaluation.
	MempoolInterval time.Duration
	// UnconfirmedInterval is the period of unconfirmed transaction reconciliation.
	UnconfirmedInterval time.Duration
	// BootstrapHeight is the node header height below which live mempool ingestion stays off.
	BootstrapHeight uint64
	// ActiveTolerance is how many blocks the store may lag the node's headers while
	// live mempool ingestion is on.
	ActiveTolerance uint64

	StatusChunkSize int
	StatusWorkers   int
}

func (c Config) withDefaults() Config {
	if c.MempoolInterval <= 0 {
		c.MempoolInterval = defaultMempoolInterval
	}
	if c.UnconfirmedInterval <= 0 {
		c.UnconfirmedInterval = defaultUnconfirmedInterval
	}
	if c.ActiveTolerance == 0 {
		c.ActiveTolerance = defaultActiveTolerance
	}
	if c.StatusChunkSize <= 0 {
		c.StatusChunkSize = defaultStatusChunkSize
	}
	if c.StatusWorkers <= 0 {
		c.StatusWorkers = defaultStatusWorkers
	}
	return c
}
