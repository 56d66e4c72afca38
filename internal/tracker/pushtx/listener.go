// Package pushtx consumes transactions submitted to the node by upstream services.
package pushtx

import (
	"context"
	"errors"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/pubsub"
	"go.uber.org/zap"
)

// DefaultTopics are the two submission channels. A transaction may arrive on both.
var DefaultTopics = []string{"pushtx", "pushtx-orchestrator"}

// Listener routes messages of every topic to the handler. Messages are always acked:
// a payload that fails once is not retried.
type Listener struct {
	router  *message.Router
	handler Handler
	metrics Metrics
	logger  *zap.Logger
}

// NewListener subscribes to topics through sub.
func NewListener(sub message.Subscriber, topics []string, handler Handler, metrics Metrics, logger *zap.Logger) (*Listener, error) {
	if sub == nil {
		return nil, errors.New("message subscriber is required")
	}
	if len(topics) == 0 {
		topics = DefaultTopics
	}
	logger = logger.Named("pushtx")

	router, err := message.NewRouter(message.RouterConfig{}, pubsub.NewLogger(logger))
	if err != nil {
		return nil, err
	}

	l := &Listener{
		router:  router,
		handler: handler,
		metrics: metrics,
		logger:  logger,
	}
	for _, topic := range topics {
		router.AddNoPublisherHandler("pushtx-"+topic, topic, sub, l.handle(topic))
	}
	return l, nil
}

func (l *Listener) handle(topic string) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		started := time.Now()
		err := l.handler.OnPushTx(msg.Context(), msg.Payload)
		l.metrics.Observe(topic, err, started)
		if err != nil {
			l.logger.Warn("dropping pushed transaction",
				zap.String("topic", topic),
				zap.String("msg_uuid", msg.UUID),
				zap.Int("len", len(msg.Payload)),
				zap.Error(err))
		}
		return nil
	}
}

// Run consumes messages until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	return l.router.Run(ctx)
}

// Running is closed once every handler is subscribed.
func (l *Listener) Running() chan struct{} {
	return l.router.Running()
}

// Close stops the router.
func (l *Listener) Close() error {
	return l.router.Close()
}
