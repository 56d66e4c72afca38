package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var zmqMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "zmq",
	Name:      "messages_total",
	Help:      "Count of node notifications received.",
}, []string{"topic", "network", "status"})

// ZMQ tracks node notification receipt.
type ZMQ struct {
	network string
}

func NewZMQ(network model.Network) *ZMQ {
	return &ZMQ{network: networkLabel(network)}
}

// ObserveReceive records one received notification or receive failure.
func (m ZMQ) ObserveReceive(topic string, err error) {
	zmqMessagesTotal.WithLabelValues(topic, m.network, status(err)).Inc()
}
