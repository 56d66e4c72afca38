package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_processor",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"network", "status"})

	blockProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_processor",
		Name:      "block_duration_seconds",
		Help:      "Duration of filtering and persisting a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	blockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_processor",
		Name:      "block_transactions",
		Help:      "Number of transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"network"})

	blockRelevantTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_processor",
		Name:      "relevant_transactions_total",
		Help:      "Count of block transactions that touched a tracked address.",
	}, []string{"network"})
)

// BlockProcessor tracks metrics for block filtering.
type BlockProcessor struct {
	network string
}

// NewBlockProcessor constructs a BlockProcessor collector.
func NewBlockProcessor(network model.Network) *BlockProcessor {
	return &BlockProcessor{network: networkLabel(network)}
}

// ObserveBlock records one processed block.
func (m BlockProcessor) ObserveBlock(err error, txs, relevant int, started time.Time) {
	s := status(err)
	blockProcessedTotal.WithLabelValues(m.network, s).Inc()
	blockProcessDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	blockTransactions.WithLabelValues(m.network).Observe(float64(txs))
	blockRelevantTotal.WithLabelValues(m.network).Add(float64(relevant))
}
