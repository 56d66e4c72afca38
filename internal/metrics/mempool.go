package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mempoolProcessTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "process_total",
		Help:      "Count of mempool buffer flushes.",
	}, []string{"network", "status"})

	mempoolProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "process_duration_seconds",
		Help:      "Duration of a mempool buffer flush.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	mempoolTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "transactions_total",
		Help:      "Count of mempool transactions evaluated, by relevance.",
	}, []string{"network", "relevant"})

	mempoolPushTxTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "pushtx_total",
		Help:      "Count of handled push-tx messages.",
	}, []string{"network", "status"})

	mempoolPushTxDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "pushtx_duration_seconds",
		Help:      "Duration of handling a push-tx message.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	mempoolUnconfirmedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "unconfirmed_check_total",
		Help:      "Count of unconfirmed transaction checks.",
	}, []string{"network", "status"})

	mempoolUnconfirmedDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "unconfirmed_check_duration_seconds",
		Help:      "Duration of an unconfirmed transaction check.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 300},
	}, []string{"network", "status"})

	mempoolUnconfirmed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "unconfirmed_transactions",
		Help:      "Number of unconfirmed transactions seen by the last check.",
	}, []string{"network"})

	mempoolReconciledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "reconciled_transactions_total",
		Help:      "Count of unconfirmed transactions resolved by a check.",
	}, []string{"network", "outcome"})

	mempoolActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mempool",
		Name:      "active",
		Help:      "1 while the mempool is tracked, 0 while the chain is catching up.",
	}, []string{"network"})
)

// Mempool tracks metrics for the mempool tracker.
type Mempool struct {
	network string
}

// NewMempool constructs a Mempool collector.
func NewMempool(network model.Network) *Mempool {
	return &Mempool{network: networkLabel(network)}
}

// ObserveMempool records one flush of buffered mempool transactions.
func (m Mempool) ObserveMempool(err error, txs, relevant int, started time.Time) {
	s := status(err)
	mempoolProcessTotal.WithLabelValues(m.network, s).Inc()
	mempoolProcessDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	mempoolTransactionsTotal.WithLabelValues(m.network, "true").Add(float64(relevant))
	mempoolTransactionsTotal.WithLabelValues(m.network, "false").Add(float64(txs - relevant))
}

func (m Mempool) ObservePushTx(err error, started time.Time) {
	s := status(err)
	mempoolPushTxTotal.WithLabelValues(m.network, s).Inc()
	mempoolPushTxDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveUnconfirmed records one unconfirmed transaction check over txs transactions.
func (m Mempool) ObserveUnconfirmed(err error, txs int, started time.Time) {
	s := status(err)
	mempoolUnconfirmedTotal.WithLabelValues(m.network, s).Inc()
	mempoolUnconfirmedDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		mempoolUnconfirmed.WithLabelValues(m.network).Set(float64(txs))
	}
}

func (m Mempool) ObserveReconciled(confirmed, dropped int) {
	mempoolReconciledTotal.WithLabelValues(m.network, "confirmed").Add(float64(confirmed))
	mempoolReconciledTotal.WithLabelValues(m.network, "dropped").Add(float64(dropped))
}

// SetActive publishes whether mempool tracking is active.
func (m Mempool) SetActive(active bool) {
	v := 0.0
	if active {
		v = 1
	}
	mempoolActive.WithLabelValues(m.network).Set(v)
}
