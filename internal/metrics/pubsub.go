package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pubsubMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pubsub",
		Name:      "messages_total",
		Help:      "Count of published and consumed messages.",
	}, []string{"direction", "topic", "network", "status"})
	pubsubMessageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pubsub",
		Name:      "message_duration_seconds",
		Help:      "Duration of publishing or handling a message.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"direction", "topic", "network", "status"})
)

const (
	directionOut = "out"
	directionIn  = "in"
)

// Publisher tracks outgoing notifications.
type Publisher struct {
	network string
}

func NewPublisher(network model.Network) *Publisher {
	return &Publisher{network: networkLabel(network)}
}

// Observe records one published message.
func (m Publisher) Observe(topic string, err error, started time.Time) {
	observeMessage(directionOut, topic, m.network, err, started)
}

// Subscriber tracks consumed messages.
type Subscriber struct {
	network string
}

func NewSubscriber(network model.Network) *Subscriber {
	return &Subscriber{network: networkLabel(network)}
}

// Observe records one handled message.
func (m Subscriber) Observe(topic string, err error, started time.Time) {
	observeMessage(directionIn, topic, m.network, err, started)
}

func observeMessage(direction, topic, network string, err error, started time.Time) {
	s := status(err)
	pubsubMessagesTotal.WithLabelValues(direction, topic, network, s).Inc()
	pubsubMessageDuration.WithLabelValues(direction, topic, network, s).Observe(time.Since(started).Seconds())
}
