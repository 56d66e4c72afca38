package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainsyncCatchupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "catchup_total",
		Help:      "Count of catch-up attempts.",
	}, []string{"network", "status"})

	chainsyncCatchupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "catchup_duration_seconds",
		Help:      "Duration of a catch-up attempt.",
		Buckets:   []float64{1, 5, 15, 60, 300, 900, 3600, 4 * 3600, 12 * 3600},
	}, []string{"network", "status"})

	chainsyncBlockHashTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "block_hash_total",
		Help:      "Count of handled block hash notifications.",
	}, []string{"network", "status"})

	chainsyncBlockHashDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "block_hash_duration_seconds",
		Help:      "Duration of handling a block hash notification.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	chainsyncBlockRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "block_range_total",
		Help:      "Count of processed block ranges.",
	}, []string{"network", "status"})

	chainsyncBlockRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "block_range_duration_seconds",
		Help:      "Duration of processing a block range.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	chainsyncBlockRangeSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "block_range_size",
		Help:      "Number of blocks per processed range.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	chainsyncRewindsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "rewinds_total",
		Help:      "Count of chain rewinds caused by reorganizations.",
	}, []string{"network"})

	chainsyncUnconfirmedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "rewind_unconfirmed_transactions_total",
		Help:      "Count of transactions moved back to unconfirmed by rewinds.",
	}, []string{"network"})

	chainsyncHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "height",
		Help:      "Height of the highest stored block.",
	}, []string{"network"})

	chainsyncRewindHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chainsync",
		Name:      "last_rewind_height",
		Help:      "Height the chain was last rewound to.",
	}, []string{"network"})
)

// ChainSync tracks metrics for the chain synchronizer.
type ChainSync struct {
	network string
}

// NewChainSync constructs a ChainSync collector.
func NewChainSync(network model.Network) *ChainSync {
	return &ChainSync{network: networkLabel(network)}
}

// ObserveCatchup records one catch-up attempt.
func (m ChainSync) ObserveCatchup(err error, started time.Time) {
	s := status(err)
	chainsyncCatchupTotal.WithLabelValues(m.network, s).Inc()
	chainsyncCatchupDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveBlockHash records one block hash notification.
func (m ChainSync) ObserveBlockHash(err error, started time.Time) {
	s := status(err)
	chainsyncBlockHashTotal.WithLabelValues(m.network, s).Inc()
	chainsyncBlockHashDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveBlockRange records one processed range of blocks.
func (m ChainSync) ObserveBlockRange(err error, blocks int, started time.Time) {
	s := status(err)
	chainsyncBlockRangeTotal.WithLabelValues(m.network, s).Inc()
	chainsyncBlockRangeDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	chainsyncBlockRangeSize.WithLabelValues(m.network).Observe(float64(blocks))
}

// ObserveRewind records a rewind to height.
func (m ChainSync) ObserveRewind(height uint64, unconfirmed int) {
	chainsyncRewindsTotal.WithLabelValues(m.network).Inc()
	chainsyncUnconfirmedTotal.WithLabelValues(m.network).Add(float64(unconfirmed))
	chainsyncRewindHeight.WithLabelValues(m.network).Set(float64(height))
}

// SetHeight publishes the highest stored height.
func (m ChainSync) SetHeight(height uint64) {
	chainsyncHeight.WithLabelValues(m.network).Set(float64(height))
}
