package relevance

const (
	defaultTxChunkSize       = 5000
	defaultOutpointChunkSize = 1000
	defaultConcurrency       = 3
)

// Config bounds the size and parallelism of store lookups.
type Config struct {
	// TxChunkSize is the number of transactions whose addresses go into one lookup.
	TxChunkSize int
	// OutpointChunkSize is the number of previous outputs per spend lookup.
	OutpointChunkSize int
	// Concurrency caps lookups in flight per pass.
	Concurrency int
}

func (c Config) withDefaults() Config {
	if c.TxChunkSize <= 0 {
		c.TxChunkSize = defaultTxChunkSize
	}
	if c.OutpointChunkSize <= 0 {
		c.OutpointChunkSize = defaultOutpointChunkSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	return c
}
